// Package tgchat implements [chatbot.Client] on top of a Telegram user
// session using MTProto.
package tgchat

import (
	"context"
	"strings"

	"github.com/gotd/td/session"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/telegram/message"
	"github.com/gotd/td/telegram/message/peer"
	"github.com/gotd/td/tg"
	"github.com/nadia-api/nadia-cli/internal/chatbot"
	"github.com/pkg/errors"
)

// CodePrompt asks the user for the login code Telegram sent them.
type CodePrompt func(ctx context.Context) (string, error)

// Options contains the options for [Run].
type Options struct {
	// AppID is the MANDATORY application ID.
	AppID int

	// AppHash is the MANDATORY application hash.
	AppHash string

	// Phone is the MANDATORY phone number used to log in.
	Phone string

	// Password is the OPTIONAL two-factor authentication password.
	Password string

	// SessionFile is the MANDATORY session file path.
	SessionFile string

	// Bot is the MANDATORY bot username, with or without "@".
	Bot string

	// Code is the MANDATORY prompt for the login code.
	Code CodePrompt
}

// Run connects to Telegram, logs in if the session is not authorized yet,
// resolves the bot, and calls fn with a [chatbot.Client] talking to it. The
// connection is closed when fn returns.
func Run(ctx context.Context, opts *Options, fn func(ctx context.Context, client chatbot.Client) error) error {
	client := telegram.NewClient(opts.AppID, opts.AppHash, telegram.Options{
		SessionStorage: &session.FileStorage{Path: opts.SessionFile},
	})
	return client.Run(ctx, func(ctx context.Context) error {
		codeAuth := auth.CodeAuthenticatorFunc(func(ctx context.Context, _ *tg.AuthSentCode) (string, error) {
			return opts.Code(ctx)
		})
		flow := auth.NewFlow(auth.Constant(opts.Phone, opts.Password, codeAuth), auth.SendCodeOptions{})
		if err := client.Auth().IfNecessary(ctx, flow); err != nil {
			return errors.Wrap(err, "telegram: login")
		}

		api := client.API()
		botPeer, err := peer.DefaultResolver(api).ResolveDomain(ctx, strings.TrimPrefix(opts.Bot, "@"))
		if err != nil {
			return errors.Wrapf(err, "telegram: resolving %s", opts.Bot)
		}
		return fn(ctx, &Conn{
			api:    api,
			peer:   botPeer,
			sender: message.NewSender(api),
		})
	})
}

// Conn is a [chatbot.Client] talking to a single bot.
type Conn struct {
	api    *tg.Client
	peer   tg.InputPeerClass
	sender *message.Sender
}

var _ chatbot.Client = &Conn{}

// SendText implements chatbot.Client.
func (c *Conn) SendText(ctx context.Context, text string) error {
	_, err := c.sender.To(c.peer).Text(ctx, text)
	return err
}

// LatestMessage implements chatbot.Client.
func (c *Conn) LatestMessage(ctx context.Context) (*chatbot.Message, error) {
	history, err := c.api.MessagesGetHistory(ctx, &tg.MessagesGetHistoryRequest{
		Peer:  c.peer,
		Limit: 1,
	})
	if err != nil {
		return nil, err
	}
	var messages []tg.MessageClass
	switch v := history.(type) {
	case *tg.MessagesMessages:
		messages = v.Messages
	case *tg.MessagesMessagesSlice:
		messages = v.Messages
	case *tg.MessagesChannelMessages:
		messages = v.Messages
	}
	for _, entry := range messages {
		if msg, ok := entry.(*tg.Message); ok {
			return convertMessage(msg), nil
		}
	}
	return nil, chatbot.ErrNoMessages
}

// Click implements chatbot.Client.
func (c *Conn) Click(ctx context.Context, button chatbot.Button) error {
	switch button.Kind {
	case chatbot.ButtonCallback:
		_, err := c.api.MessagesGetBotCallbackAnswer(ctx, &tg.MessagesGetBotCallbackAnswerRequest{
			Peer:  c.peer,
			MsgID: button.MessageID,
			Data:  button.Data,
		})
		return err
	case chatbot.ButtonText:
		return c.SendText(ctx, button.Text)
	default:
		return errors.Wrapf(chatbot.ErrUnsupportedButton, "%q", button.Text)
	}
}

func convertMessage(msg *tg.Message) *chatbot.Message {
	out := &chatbot.Message{
		ID:       msg.ID,
		Text:     msg.Message,
		Outgoing: msg.Out,
	}
	markup, ok := msg.GetReplyMarkup()
	if !ok {
		return out
	}
	var rows []tg.KeyboardButtonRow
	switch v := markup.(type) {
	case *tg.ReplyInlineMarkup:
		rows = v.Rows
	case *tg.ReplyKeyboardMarkup:
		rows = v.Rows
	}
	for r, row := range rows {
		var buttons []chatbot.Button
		for col, button := range row.Buttons {
			buttons = append(buttons, convertButton(msg.ID, r, col, button))
		}
		out.Buttons = append(out.Buttons, buttons)
	}
	return out
}

func convertButton(msgID, row, col int, button tg.KeyboardButtonClass) chatbot.Button {
	out := chatbot.Button{
		Text:      button.GetText(),
		Kind:      chatbot.ButtonOther,
		MessageID: msgID,
		Row:       row,
		Column:    col,
	}
	switch v := button.(type) {
	case *tg.KeyboardButtonCallback:
		out.Kind = chatbot.ButtonCallback
		out.Data = v.Data
	case *tg.KeyboardButton:
		out.Kind = chatbot.ButtonText
	case *tg.KeyboardButtonURL:
		out.Kind = chatbot.ButtonURL
		out.URL = v.URL
	}
	return out
}
