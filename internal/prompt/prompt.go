// Package prompt asks the user for one-time codes on the terminal.
package prompt

import (
	"context"
	"regexp"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pkg/errors"
)

// askOne is overridden in tests.
var askOne = func(message string, answer *string) error {
	prompt := &survey.Input{
		Message: message,
	}
	return survey.AskOne(prompt, answer, survey.WithValidator(survey.Required))
}

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// Code asks for a numeric code using the given message.
func Code(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var answer string
	if err := askOne(message, &answer); err != nil {
		return "", errors.Wrap(err, "prompt")
	}
	answer = strings.TrimSpace(answer)
	if !digitsOnly.MatchString(answer) {
		return "", errors.Errorf("prompt: %q is not a numeric code", answer)
	}
	return answer, nil
}

// Terminal implements flow.OTPSource by asking the user for the code
// they received on the given phone number.
type Terminal struct{}

// OTP asks for the OTP sent to phone.
func (Terminal) OTP(ctx context.Context, phone string) (string, error) {
	return Code(ctx, "Enter the OTP sent to "+phone+":")
}

// TelegramCode asks for the Telegram login code.
func TelegramCode(ctx context.Context) (string, error) {
	return Code(ctx, "Enter the Telegram login code:")
}
