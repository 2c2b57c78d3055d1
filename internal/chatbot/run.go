package chatbot

import (
	"context"
	"errors"

	"github.com/apex/log"
	"github.com/nadia-api/nadia-cli/internal/output"
)

// DefaultCommand is the default command sent to the bot.
const DefaultCommand = "/start"

// Options configures [Run].
type Options struct {
	// Command is the OPTIONAL command; empty means [DefaultCommand].
	Command string

	// TargetButton is the OPTIONAL label of the button to click.
	TargetButton string

	// Wait configures how we wait for replies.
	Wait WaitOptions
}

// Result is the result of [Run].
type Result struct {
	// Menu contains the labels of the buttons of the first reply.
	Menu []string

	// Clicked is the button we clicked, if any.
	Clicked *Button

	// Reply is the message we got after clicking, if any.
	Reply *Message
}

// Run sends the command, prints the labels of the buttons of the reply,
// clicks the first button whose label is exactly opts.TargetButton, and
// prints the bot's reply to the click.
func Run(ctx context.Context, client Client, opts *Options) (*Result, error) {
	command := opts.Command
	if command == "" {
		command = DefaultCommand
	}

	var afterID int
	switch last, err := client.LatestMessage(ctx); {
	case errors.Is(err, ErrNoMessages):
	case err != nil:
		return nil, err
	default:
		afterID = last.ID
	}

	log.Infof("Sending %s to the bot", command)
	if err := client.SendText(ctx, command); err != nil {
		return nil, err
	}

	log.Info("Reading the bot reply")
	reply, err := WaitForReply(ctx, client, afterID, opts.Wait)
	if errors.Is(err, ErrNoReply) {
		log.Warn("The bot did not reply")
		return &Result{}, nil
	}
	if err != nil {
		return nil, err
	}

	result := &Result{Menu: reply.Labels()}
	if len(result.Menu) > 0 {
		output.List("Main menu", result.Menu)
	} else {
		log.Warn("No buttons found in this message")
	}

	if opts.TargetButton == "" {
		return result, nil
	}
	log.Infof("Looking for button %q", opts.TargetButton)
	button, found := FindButton(reply.Buttons, opts.TargetButton)
	if !found {
		log.Warnf("Button %q not found", opts.TargetButton)
		return result, nil
	}

	log.Info("Button found, clicking")
	if err := client.Click(ctx, button); err != nil {
		return nil, err
	}
	result.Clicked = &button

	reply, err = WaitForReply(ctx, client, reply.ID, opts.Wait)
	if errors.Is(err, ErrNoReply) {
		log.Warn("No new reply after clicking")
		return result, nil
	}
	if err != nil {
		return nil, err
	}
	result.Reply = reply
	output.SectionTitle("Reply after clicking")
	output.Paragraph(reply.Text)
	return result, nil
}
