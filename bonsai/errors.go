package bonsai

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Sentinel errors classifying every failure the SDK surfaces. All returned
// errors wrap exactly one of these, so callers can branch with [errors.Is].
// The SDK never retries on its own.
var (
	// ErrConfiguration marks missing or invalid connection configuration.
	ErrConfiguration = errors.New("invalid client configuration")

	// ErrServer marks a non-2xx response outside the documented special
	// cases; the wrapped message carries the stringified response body.
	ErrServer = errors.New("server error")

	// ErrNotFound marks the one distinguished 404: a receipt lookup for a
	// session whose proof does not exist (yet).
	ErrNotFound = errors.New("receipt not found")

	// ErrDownload marks a transport-level failure during a raw binary
	// fetch, as opposed to a well-formed non-2xx HTTP response.
	ErrDownload = errors.New("download failed")

	// ErrUnexpectedVariant marks an internal contract violation, such as
	// an upload outcome that is neither "exists" nor "new".
	ErrUnexpectedVariant = errors.New("unexpected response variant")
)

// mapServerError is the shared response validator: it returns nil for any
// 2xx response and an error wrapping [ErrServer] otherwise, with the
// trimmed response body as the message. Status codes listed in special are
// mapped to their sentinel instead, letting call sites declare their
// documented special cases (e.g. 404 on receipt lookup).
func mapServerError(resp *resty.Response, special map[int]error) error {
	if resp.IsSuccess() {
		return nil
	}

	code := resp.StatusCode()
	if sentinel, ok := special[code]; ok {
		return fmt.Errorf("%w: http %d", sentinel, code)
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}
	return fmt.Errorf("%w: http %d: %s", ErrServer, code, body)
}
