// Package notify is the fire-and-forget notification side-channel: stores
// emit short title/description messages on state changes and the view layer
// decides how to surface them. Delivery is advisory; no store operation
// depends on it.
package notify

import (
	"context"
	"fmt"
	"io"
)

// Variant selects the message styling.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Message is a single toast-style notification.
type Message struct {
	Title       string
	Description string
	Variant     Variant
}

// Notifier consumes messages. Implementations must not block.
type Notifier interface {
	Notify(ctx context.Context, msg Message)
}

// WriterNotifier prints messages as toast lines to an io.Writer.
type WriterNotifier struct {
	w io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(ctx context.Context, msg Message) {
	prefix := "*"
	if msg.Variant == VariantDestructive {
		prefix = "!"
	}
	// Write errors are deliberately dropped: notifications are advisory.
	fmt.Fprintf(n.w, "%s %s: %s\n", prefix, msg.Title, msg.Description)
}

// Nop discards all messages.
type Nop struct{}

func (Nop) Notify(ctx context.Context, msg Message) {}
