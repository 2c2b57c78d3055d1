package tgchat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gotd/td/tg"
	"github.com/nadia-api/nadia-cli/internal/chatbot"
)

func TestConvertMessage(t *testing.T) {
	msg := &tg.Message{
		ID:      42,
		Message: "Selamat datang",
	}
	msg.SetReplyMarkup(&tg.ReplyInlineMarkup{
		Rows: []tg.KeyboardButtonRow{{
			Buttons: []tg.KeyboardButtonClass{
				&tg.KeyboardButtonCallback{Text: "🌐 Beli Akun VPN", Data: []byte("vpn")},
				&tg.KeyboardButtonURL{Text: "Web", URL: "https://example.com/"},
			},
		}, {
			Buttons: []tg.KeyboardButtonClass{
				&tg.KeyboardButton{Text: "Saldo"},
			},
		}},
	})

	got := convertMessage(msg)

	expect := &chatbot.Message{
		ID:   42,
		Text: "Selamat datang",
		Buttons: [][]chatbot.Button{{
			{Text: "🌐 Beli Akun VPN", Kind: chatbot.ButtonCallback, Data: []byte("vpn"), MessageID: 42},
			{Text: "Web", Kind: chatbot.ButtonURL, URL: "https://example.com/", MessageID: 42, Column: 1},
		}, {
			{Text: "Saldo", Kind: chatbot.ButtonText, MessageID: 42, Row: 1},
		}},
	}
	if diff := cmp.Diff(expect, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestConvertMessageWithoutMarkup(t *testing.T) {
	got := convertMessage(&tg.Message{ID: 1, Message: "hi", Out: true})
	if !got.Outgoing || got.Buttons != nil || got.Text != "hi" {
		t.Fatal("unexpected message", got)
	}
}
