package imagex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholder_Deterministic(t *testing.T) {
	a := Placeholder("Basketball Tournament")
	b := Placeholder("Basketball Tournament")
	assert.Equal(t, a, b)
}

func TestPlaceholder_EncodesText(t *testing.T) {
	got := Placeholder("Spring Cultural Festival")
	require.True(t, strings.HasPrefix(got, "https://via.placeholder.com/400x200/"))
	assert.Contains(t, got, "text=Spring+Cultural+Festival")
	// The color segment must not carry the leading '#'.
	assert.NotContains(t, got, "#")
}

func TestPlaceholder_EmptyText(t *testing.T) {
	got := Placeholder("")
	assert.Contains(t, got, "text=")
}
