// Package http provides the HTTP client used to fetch remote song catalogs.
//
// The Client in this package handles:
//   - User-Agent and Accept headers
//   - Timeout handling
//   - Typed status errors, so callers can decide whether to retry
//
// # Basic Usage
//
//	client := http.NewClient()
//
//	body, err := client.Get(ctx, "https://example.com/catalog.json")
//
//	var status *http.StatusError
//	if errors.As(err, &status) && status.Temporary() {
//	    // worth retrying
//	}
package http
