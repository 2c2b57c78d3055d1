package chatbot

import (
	"context"
	"errors"
	"time"
)

// WaitOptions configures [WaitForReply].
type WaitOptions struct {
	// Timeout is the maximum time to wait. Zero means [DefaultReplyTimeout].
	Timeout time.Duration

	// Interval is the polling interval. Zero means [DefaultPollInterval].
	Interval time.Duration
}

const (
	// DefaultReplyTimeout is the default [WaitOptions] Timeout.
	DefaultReplyTimeout = 10 * time.Second

	// DefaultPollInterval is the default [WaitOptions] Interval.
	DefaultPollInterval = 500 * time.Millisecond
)

// WaitForReply polls the latest message until the bot sends a message
// newer than afterID or the timeout expires. On timeout it returns the
// latest message if it comes from the bot (it may have been edited in
// place) and [ErrNoReply] otherwise.
func WaitForReply(ctx context.Context, client Client, afterID int, opts WaitOptions) (*Message, error) {
	timeout, interval := opts.Timeout, opts.Interval
	if timeout <= 0 {
		timeout = DefaultReplyTimeout
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var latest *Message
	for {
		msg, err := client.LatestMessage(ctx)
		switch {
		case errors.Is(err, ErrNoMessages):
			// keep waiting
		case err != nil:
			return nil, err
		default:
			latest = msg
			if msg.ID > afterID && !msg.Outgoing {
				return msg, nil
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			if latest != nil && !latest.Outgoing {
				return latest, nil
			}
			return nil, ErrNoReply
		case <-ticker.C:
		}
	}
}
