package flow

import (
	"context"

	"github.com/nadia-api/nadia-cli/internal/nadiaapi"
	"github.com/nadia-api/nadia-cli/internal/output"
)

// Basic runs the read-only calls: balance, package search, and stock.
type Basic struct {
	// API is the MANDATORY API.
	API API

	// Query is the OPTIONAL package search query.
	Query nadiaapi.SearchQuery
}

// Run runs the basic flow. Envelope failures do not stop the flow because
// each call is independent from the previous ones.
func (f *Basic) Run(ctx context.Context) (*Report, error) {
	p := &Pipeline{}

	p.Then("balance", func(ctx context.Context) (Outcome, error) {
		result, err := f.API.GetBalance(ctx)
		if err != nil {
			return Outcome{}, err
		}
		output.Balance(result)
		return Continue(), nil
	})

	p.Then("search", func(ctx context.Context) (Outcome, error) {
		result, err := f.API.SearchPackages(ctx, &f.Query)
		if err != nil {
			return Outcome{}, err
		}
		output.PackageSearch(result)
		return Continue(), nil
	})

	p.Then("stock", func(ctx context.Context) (Outcome, error) {
		result, err := f.API.GetPackageStock(ctx)
		if err != nil {
			return Outcome{}, err
		}
		output.PackageStock(result)
		return Continue(), nil
	})

	return p.Run(ctx)
}
