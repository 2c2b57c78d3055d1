package output

//
// nadia.go - summaries of the Nadia API results.
//

import (
	"encoding/json"
	"fmt"

	"github.com/apex/log"
	"github.com/nadia-api/nadia-cli/internal/nadiaapi"
)

// PackageSearch prints the result of a package search.
func PackageSearch(result nadiaapi.Result[[]nadiaapi.Package]) {
	if !result.OK() {
		log.Errorf("Search failed: %s", result.Message())
		return
	}
	packages := result.Data()
	log.Infof("Found %d packages", len(packages))
	if len(packages) <= 0 {
		return
	}
	first := packages[0]
	Table("First package",
		Row{"Package", first.Name},
		Row{"Price", Rupiah(first.Price)},
		Row{"Code", first.Code},
	)
}

// OTPRequest prints the result of an OTP request.
func OTPRequest(result nadiaapi.Result[nadiaapi.OTPData]) {
	if !result.OK() {
		log.Errorf("OTP request failed: %s", result.Message())
		return
	}
	log.Info("OTP sent successfully!")
	log.Info("Please check your SMS for the OTP code")
	log.Infof("OTP expires in %d seconds", result.Data().Expiry())
}

// OTPVerify prints the result of an OTP verification.
func OTPVerify(result nadiaapi.Result[map[string]any]) {
	if !result.OK() {
		log.Errorf("OTP verification failed: %s", result.Message())
		return
	}
	log.Info("OTP verified!")
}

// Purchase prints the result of a purchase.
func Purchase(result nadiaapi.Result[nadiaapi.PurchaseData]) {
	if !result.OK() {
		log.Errorf("Purchase failed: %s", result.Message())
		return
	}
	log.Info("Purchase successful!")
	data := result.Data()
	rows := []Row{
		{"Package", data.PackageName},
		{"Phone", data.MSISDN},
		{"Transaction ID", data.TrxID},
	}
	if data.ProcessingFee > 0 {
		rows = append(rows, Row{"Processing fee", Rupiah(data.ProcessingFee)})
	}
	Table("Purchase", rows...)
}

// CardStatus prints the status of a SIM card.
func CardStatus(result nadiaapi.Result[nadiaapi.CardStatus]) {
	if !result.OK() {
		log.Errorf("Status check failed: %s", result.Message())
		return
	}
	log.Info("Card status retrieved!")
	data := result.Data()
	Table("Card status",
		Row{"Phone", data.MSISDN},
		Row{"Status", data.SubscriptionStatus},
		Row{"Balance", RawString(data.Balance)},
		Row{"Active until", data.ActiveUntil},
		Row{"Location", data.Location},
	)
}

// ActivePackages prints the packages active on a SIM card.
func ActivePackages(result nadiaapi.Result[nadiaapi.ActivePackages]) {
	if !result.OK() {
		log.Errorf("Package check failed: %s", result.Message())
		return
	}
	log.Info("Active packages retrieved!")
	quotas := result.Data().Quotas
	var items []string
	for _, quota := range quotas {
		items = append(items, fmt.Sprintf("%s - Expires: %s", quota.Name, quota.ExpiredAt))
	}
	List(fmt.Sprintf("Found %d active packages", len(quotas)), items)
}

// Balance prints the account balance.
func Balance(result nadiaapi.Result[nadiaapi.Balance]) {
	if !result.OK() {
		log.Errorf("Failed to get balance: %s", result.Message())
		return
	}
	log.Infof("Current balance: %s", RawString(result.Data().Balance))
}

// Transaction prints the status of a transaction.
func Transaction(result nadiaapi.Result[json.RawMessage]) {
	if !result.OK() {
		log.Errorf("Transaction check failed: %s", result.Message())
		return
	}
	log.Info("Transaction status retrieved!")
	log.Infof("Status: %s", RawString(result.Data()))
}

// PackageStock prints the stock summary.
func PackageStock(result nadiaapi.Result[[]nadiaapi.PackageStock]) {
	if !result.OK() {
		log.Errorf("Failed to get stock: %s", result.Message())
		return
	}
	stocks := result.Data()
	log.Infof("Found stock info for %d packages", len(stocks))
	var available int
	for _, stock := range stocks {
		if stock.Stock > 0 {
			available++
		}
	}
	log.Infof("%d packages available in stock", available)
}

// PaymentMethods prints the accepted payment methods.
func PaymentMethods(result nadiaapi.Result[[]nadiaapi.PaymentMethod]) {
	if !result.OK() {
		log.Errorf("Failed to get payment methods: %s", result.Message())
		return
	}
	var items []string
	for _, method := range result.Data() {
		items = append(items, fmt.Sprintf("%s (%s)", method.DisplayName, method.Method))
	}
	List(fmt.Sprintf("Found %d payment methods", len(items)), items)
}
