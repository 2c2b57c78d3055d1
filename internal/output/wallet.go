package output

import (
	"encoding/json"
	"fmt"

	"github.com/apex/log"
	"github.com/montanaflynn/stats"
	"github.com/nadia-api/nadia-cli/internal/walletapi"
)

// WalletBalance prints the raw balance document.
func WalletBalance(raw json.RawMessage) {
	JSON("Balance", raw)
}

// WalletProducts prints the number of products and the first limit ones.
func WalletProducts(products []walletapi.Product, limit int) {
	log.Infof("Found %d products", len(products))
	if limit > len(products) {
		limit = len(products)
	}
	if limit <= 0 {
		return
	}
	var items []string
	for _, product := range products[:limit] {
		items = append(items, fmt.Sprintf("Code: %s, Name: %s, Price: %s",
			product.Code, product.Name, Rupiah(product.Price)))
	}
	List(fmt.Sprintf("First %d products", limit), items)
	priceSummary(products)
}

func priceSummary(products []walletapi.Product) {
	prices := make(stats.Float64Data, 0, len(products))
	for _, product := range products {
		prices = append(prices, float64(product.Price))
	}
	minimum, err := prices.Min()
	if err != nil {
		return
	}
	median, _ := prices.Median()
	maximum, _ := prices.Max()
	Table("Prices",
		Row{"Min", Rupiah(int(minimum))},
		Row{"Median", Rupiah(int(median))},
		Row{"Max", Rupiah(int(maximum))},
	)
}
