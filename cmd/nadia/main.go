package main

import (
	// commands
	"github.com/apex/log"

	_ "github.com/nadia-api/nadia-cli/internal/cli/balance"
	_ "github.com/nadia-api/nadia-cli/internal/cli/card"
	_ "github.com/nadia-api/nadia-cli/internal/cli/chat"
	_ "github.com/nadia-api/nadia-cli/internal/cli/demo"
	_ "github.com/nadia-api/nadia-cli/internal/cli/fetch"
	_ "github.com/nadia-api/nadia-cli/internal/cli/login"
	_ "github.com/nadia-api/nadia-cli/internal/cli/otp"
	_ "github.com/nadia-api/nadia-cli/internal/cli/paymentmethods"
	_ "github.com/nadia-api/nadia-cli/internal/cli/purchase"
	_ "github.com/nadia-api/nadia-cli/internal/cli/search"
	_ "github.com/nadia-api/nadia-cli/internal/cli/stock"
	_ "github.com/nadia-api/nadia-cli/internal/cli/transaction"
	_ "github.com/nadia-api/nadia-cli/internal/cli/version"
	_ "github.com/nadia-api/nadia-cli/internal/cli/wallet"

	"github.com/nadia-api/nadia-cli/internal/cli/app"
)

func main() {
	err := app.Run()
	if err == nil {
		return
	}
	log.WithError(err).Fatal("main exit")
}
