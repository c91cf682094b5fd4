package chat

import (
	"context"
	"errors"

	"github.com/ncruces/zenity"
)

// ErrCanceled is returned when the user dismisses the prompt.
var ErrCanceled = errors.New("prompt canceled")

// Prompter asks the user for a line of text.
type Prompter interface {
	Prompt(ctx context.Context) (string, error)
}

// DialogPrompter shows a native text entry dialog.
type DialogPrompter struct {
	Title string
}

func (p DialogPrompter) Prompt(ctx context.Context) (string, error) {
	text, err := zenity.Entry("Say something to your companion:",
		zenity.Title(p.Title),
		zenity.Context(ctx),
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", ErrCanceled
	}
	return text, err
}
