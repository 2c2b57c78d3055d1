// Package bulkfetch fetches a set of JSON endpoints and saves each
// response body to a file.
package bulkfetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	"github.com/apex/log"
	"github.com/hashicorp/go-multierror"
	"github.com/nadia-api/nadia-cli/internal/httpclientx"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
)

// DefaultEndpoints maps the logical name of each endpoint to its path.
var DefaultEndpoints = map[string]string{
	"balance_response":         "/api/user/wallet/balance.json",
	"payment_methods_response": "/api/user/wallet/payment-methods.json",
	"products_response":        "/api/user/limited/xl/package-list-all.json",
}

// Fetcher fetches endpoints and saves the responses.
type Fetcher struct {
	// BaseURL is the MANDATORY base URL.
	BaseURL *httpclientx.BaseURL

	// Config is the MANDATORY transport config.
	Config *httpclientx.Config

	// Endpoints maps logical names to paths. Nil means [DefaultEndpoints].
	Endpoints map[string]string

	// OutputDir is the MANDATORY output directory, created if missing.
	OutputDir string

	// Progress is the OPTIONAL writer where to draw a progress bar.
	Progress io.Writer
}

// Report is the outcome of [*Fetcher.Run].
type Report struct {
	// Written contains the paths of the files we wrote.
	Written []string

	// Errors contains one error per failed endpoint, or nil.
	Errors *multierror.Error
}

// Err returns the aggregated per-endpoint error, if any.
func (r *Report) Err() error {
	return r.Errors.ErrorOrNil()
}

// EndpointError is the error of a single endpoint.
type EndpointError struct {
	Name string
	URL  string
	Err  error
}

// Error implements error.
func (err *EndpointError) Error() string {
	return fmt.Sprintf("%s: %s", err.Name, err.Err.Error())
}

// Unwrap returns the underlying error.
func (err *EndpointError) Unwrap() error {
	return err.Err
}

// Run fetches each endpoint in name order. A failing endpoint is logged and
// recorded in the report and does not prevent fetching the others. The
// returned error is only non-nil when we cannot create the output directory.
func (f *Fetcher) Run(ctx context.Context) (*Report, error) {
	if err := os.MkdirAll(f.OutputDir, 0755); err != nil {
		return nil, errors.Wrap(err, "creating output directory")
	}

	endpoints := f.Endpoints
	if endpoints == nil {
		endpoints = DefaultEndpoints
	}
	names := make([]string, 0, len(endpoints))
	for name := range endpoints {
		names = append(names, name)
	}
	sort.Strings(names)

	var bar *progressbar.ProgressBar
	if f.Progress != nil {
		bar = progressbar.NewOptions(
			len(names),
			progressbar.OptionSetWriter(f.Progress),
			progressbar.OptionSetDescription("fetching"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionClearOnFinish(),
		)
	}

	report := &Report{}
	for _, name := range names {
		URL := f.BaseURL.WithPath(endpoints[name])
		if bar != nil {
			bar.Describe(name)
		}
		filename, err := f.fetchOne(ctx, name, endpoints[name])
		if bar != nil {
			bar.Add(1)
		}
		if err != nil {
			logFailure(name, URL, err)
			report.Errors = multierror.Append(report.Errors, &EndpointError{Name: name, URL: URL, Err: err})
			continue
		}
		log.Infof("Saved %s to %s", URL, filename)
		report.Written = append(report.Written, filename)
	}
	return report, nil
}

func (f *Fetcher) fetchOne(ctx context.Context, name, path string) (string, error) {
	log.Infof("Fetching %s", f.BaseURL.WithPath(path))
	raw, err := httpclientx.Call(ctx, f.BaseURL, http.MethodGet, path, nil, f.Config)
	if err != nil {
		return "", err
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return "", &httpclientx.ErrParseFailed{Err: err}
	}
	pretty.WriteString("\n")
	filename := filepath.Join(f.OutputDir, name+".json")
	if err := writeFileAtomic(filename, pretty.Bytes()); err != nil {
		return "", errors.Wrapf(err, "writing %s", filename)
	}
	return filename, nil
}

func logFailure(name, URL string, err error) {
	entry := log.WithError(err).WithField("endpoint", name)
	switch code := httpclientx.StatusCode(err); {
	case code == http.StatusUnauthorized:
		entry.Error("HTTP 401 Unauthorized: the token has most likely expired, please renew it")
	case code != 0:
		entry.WithField("status", code).Errorf("HTTP error fetching %s", URL)
	default:
		var parseerr *httpclientx.ErrParseFailed
		if errors.As(err, &parseerr) {
			entry.Errorf("cannot parse the JSON returned by %s", URL)
			return
		}
		entry.Errorf("request to %s failed", URL)
	}
}
