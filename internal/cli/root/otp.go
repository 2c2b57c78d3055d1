package root

import (
	"github.com/nadia-api/nadia-cli/internal/flow"
	"github.com/nadia-api/nadia-cli/internal/prompt"
)

// OTPSource returns a fixed OTP source when code is not empty and a
// terminal prompt otherwise.
func OTPSource(code string) flow.OTPSource {
	if code != "" {
		return flow.FixedOTP(code)
	}
	return prompt.Terminal{}
}
