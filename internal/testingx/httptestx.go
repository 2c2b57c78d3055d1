package testingx

//
// httptestx.go - HTTP servers and handlers for tests.
//

import (
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
)

// MustNewHTTPServer constructs and starts a new [*httptest.Server] using
// the given handler. The caller is responsible for closing it.
func MustNewHTTPServer(handler http.Handler) *httptest.Server {
	return httptest.NewServer(handler)
}

// HTTPHandlerReset returns a handler that closes the connection without
// writing any response, causing a transport error on the client side.
func HTTPHandlerReset() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hijacker, ok := w.(http.Hijacker)
		if !ok {
			panic("testingx: response writer is not an http.Hijacker")
		}
		conn, _, err := hijacker.Hijack()
		if err != nil {
			panic(err)
		}
		if tcpConn, ok := conn.(*net.TCPConn); ok {
			_ = tcpConn.SetLinger(0)
		}
		conn.Close()
	})
}

// HTTPHandlerStatus returns a handler writing the given status code and body.
func HTTPHandlerStatus(code int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		io.WriteString(w, body)
	})
}

// HTTPRecordedRequest is a request observed by [*HTTPRequestRecorder].
type HTTPRecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// HTTPRequestRecorder is an [http.Handler] that records each incoming
// request and delegates the response to Handler.
//
// This struct is safe to use concurrently with incoming HTTP requests.
type HTTPRequestRecorder struct {
	// Handler is the MANDATORY handler writing the response.
	Handler http.Handler

	mu       sync.Mutex
	requests []*HTTPRecordedRequest
}

var _ http.Handler = &HTTPRequestRecorder{}

// ServeHTTP implements http.Handler.
func (rr *HTTPRequestRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	rr.mu.Lock()
	rr.requests = append(rr.requests, &HTTPRecordedRequest{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     body,
	})
	rr.mu.Unlock()
	rr.Handler.ServeHTTP(w, r)
}

// Requests returns a copy of the requests recorded so far.
func (rr *HTTPRequestRecorder) Requests() []*HTTPRecordedRequest {
	defer rr.mu.Unlock()
	rr.mu.Lock()
	return append([]*HTTPRecordedRequest{}, rr.requests...)
}

// Paths returns the paths of the requests recorded so far.
func (rr *HTTPRequestRecorder) Paths() []string {
	var out []string
	for _, req := range rr.Requests() {
		out = append(out, req.Path)
	}
	return out
}
