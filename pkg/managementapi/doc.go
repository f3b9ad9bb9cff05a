// Package managementapi is an HTTP client for an API management service's
// Management API.
//
// Authentication is a basic-auth login that returns a bearer token kept by
// the Client for subsequent calls:
//
//	c := managementapi.New("http://localhost:8083/management",
//	    managementapi.WithTimeout(10*time.Second))
//	if _, err := c.Login(ctx, "admin", "admin"); err != nil {
//	    return err
//	}
//	apis, err := c.ListAPIs(ctx, selection.MatchAll())
//
// The client never retries. Non-2xx responses and connection failures are
// returned as *APIError.
package managementapi
