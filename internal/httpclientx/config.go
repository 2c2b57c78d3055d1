package httpclientx

import "github.com/nadia-api/nadia-cli/internal/model"

// Config contains configuration shared by [Call], [GetJSON], and [PostJSON].
//
// The zero value is invalid; initialize the MANDATORY fields.
type Config struct {
	// AuthHeader is the OPTIONAL name of the header carrying AuthToken. When
	// empty we use the Authorization header with the "Bearer" scheme.
	AuthHeader string

	// AuthToken is the OPTIONAL opaque authentication token.
	AuthToken string

	// Client is the MANDATORY [model.HTTPClient] to use.
	Client model.HTTPClient

	// Headers contains OPTIONAL extra headers attached to every request
	// (e.g., the Referer expected by some services).
	Headers map[string]string

	// Logger is the MANDATORY [model.Logger] to use.
	Logger model.Logger

	// UserAgent is the MANDATORY User-Agent header value to use.
	UserAgent string
}
