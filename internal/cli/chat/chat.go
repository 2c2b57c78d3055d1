package chat

import (
	"context"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/nadia-api/nadia-cli/internal/chatbot"
	"github.com/nadia-api/nadia-cli/internal/cli/root"
	"github.com/nadia-api/nadia-cli/internal/prompt"
	"github.com/nadia-api/nadia-cli/internal/tgchat"
	"github.com/pkg/errors"
)

func init() {
	cmd := root.Command("chat", "Open the bot menu on Telegram and click a button.")
	bot := cmd.Flag("bot", "Bot username; defaults to telegram.bot.").String()
	button := cmd.Flag("button", "Label of the button to click; defaults to telegram.target_button.").String()
	command := cmd.Flag("command", "Command to send; defaults to telegram.command.").String()

	cmd.Action(func(_ *kingpin.ParseContext) error {
		nctx, err := root.Init()
		if err != nil {
			log.WithError(err).Error("failed to initialize")
			return err
		}
		settings := nctx.Config.Telegram
		if *bot != "" {
			settings.Bot = *bot
		}
		if *button != "" {
			settings.TargetButton = *button
		}
		if *command != "" {
			settings.Command = *command
		}
		if settings.AppID == 0 || settings.AppHash == "" || settings.Phone == "" {
			return errors.New("missing telegram.app_id, telegram.app_hash, or telegram.phone")
		}
		if settings.Bot == "" {
			return errors.New("missing bot: use --bot or set telegram.bot")
		}

		opts := &tgchat.Options{
			AppID:       settings.AppID,
			AppHash:     settings.AppHash,
			Phone:       settings.Phone,
			Password:    settings.Password,
			SessionFile: settings.SessionFile,
			Bot:         settings.Bot,
			Code:        prompt.TelegramCode,
		}
		log.Infof("Connecting to Telegram as %s", settings.Phone)
		err = tgchat.Run(root.Context, opts, func(ctx context.Context, client chatbot.Client) error {
			log.Info("Session started")
			_, err := chatbot.Run(ctx, client, &chatbot.Options{
				Command:      settings.Command,
				TargetButton: settings.TargetButton,
				Wait:         chatbot.WaitOptions{Timeout: nctx.Config.ReplyTimeout()},
			})
			return err
		})
		if err != nil {
			log.WithError(err).Error("chat failed")
			return err
		}
		log.Info("Done")
		return nil
	})
}
