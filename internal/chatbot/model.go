// Package chatbot drives a chat bot menu: it sends a command, lists the
// inline buttons of the reply, and clicks the one with a given label.
package chatbot

import (
	"context"
	"errors"
)

// ButtonKind is the kind of a button.
type ButtonKind int

const (
	// ButtonCallback is an inline button sending callback data to the bot.
	ButtonCallback ButtonKind = iota

	// ButtonText is a keyboard button sending its label as a message.
	ButtonText

	// ButtonURL is an inline button opening a URL.
	ButtonURL

	// ButtonOther is any other button kind.
	ButtonOther
)

// Button is a button attached to a message.
type Button struct {
	// Text is the button label.
	Text string

	// Kind is the button kind.
	Kind ButtonKind

	// Data is the callback data of a [ButtonCallback].
	Data []byte

	// URL is the URL of a [ButtonURL].
	URL string

	// MessageID is the ID of the message owning the button.
	MessageID int

	// Row and Column locate the button in the keyboard.
	Row, Column int
}

// Message is a chat message.
type Message struct {
	// ID is the message ID. IDs grow over time.
	ID int

	// Text is the message text.
	Text string

	// Outgoing is true for messages we sent.
	Outgoing bool

	// Buttons contains the rows of buttons.
	Buttons [][]Button
}

// Labels returns the labels of all the buttons, row by row.
func (m *Message) Labels() []string {
	var out []string
	for _, row := range m.Buttons {
		for _, button := range row {
			out = append(out, button.Text)
		}
	}
	return out
}

// ErrNoMessages indicates that the chat contains no messages.
var ErrNoMessages = errors.New("chatbot: no messages")

// ErrNoReply indicates that the bot did not reply in time.
var ErrNoReply = errors.New("chatbot: no reply")

// ErrUnsupportedButton indicates that we don't know how to click a button.
var ErrUnsupportedButton = errors.New("chatbot: unsupported button")

// Client is the chat capability set we need.
type Client interface {
	// SendText sends a text message to the bot.
	SendText(ctx context.Context, text string) error

	// LatestMessage returns the most recent message of the chat or
	// [ErrNoMessages] if the chat is empty.
	LatestMessage(ctx context.Context) (*Message, error)

	// Click clicks the given button.
	Click(ctx context.Context, button Button) error
}

// FindButton scans the rows in order and returns the first button whose
// label is exactly label. Scanning stops at the first match.
func FindButton(rows [][]Button, label string) (Button, bool) {
	for _, row := range rows {
		for _, button := range row {
			if button.Text == label {
				return button, true
			}
		}
	}
	return Button{}, false
}
