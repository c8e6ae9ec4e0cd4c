// Package imagex generates fallback image URLs for events without one.
package imagex

import (
	"fmt"
	"net/url"
)

// FallbackURL is used at render time for events whose stored image URL is empty.
const FallbackURL = "https://via.placeholder.com/400x200?text=Event"

// palette of background colors the placeholder service is asked to use.
var palette = []string{
	"#6C63FF", "#FF6584", "#08D9D6", "#E84A5F", "#FFC75F",
	"#845EC2", "#D65DB1", "#FF6F91", "#FF9671", "#FFC75F", "#F9F871",
}

// Placeholder returns a deterministic placeholder image URL for the given
// text. The color is picked by summing the text's byte values into the
// palette, so the same title always yields the same image.
func Placeholder(text string) string {
	var hash int
	for _, b := range []byte(text) {
		hash += int(b)
	}
	color := palette[hash%len(palette)]
	return fmt.Sprintf("https://via.placeholder.com/400x200/%s?text=%s", color[1:], url.QueryEscape(text))
}
