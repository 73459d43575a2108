// Package testutil provides shared test helpers for cookieserver.
//
// # HTTP Helpers
//
// The http.go file builds requests and inspects responses:
//
//   - NewPostRequest(name) - POST with a yourname form body
//   - NewGetRequest(cookieHeader) - GET with an optional Cookie header
//   - ResponseCookie(t, resp, name) - finds a Set-Cookie by name or fails
//   - EchoCookieHeader(t, resp, name) - turns a Set-Cookie into the Cookie
//     header a browser would send back
//
// # Timeouts
//
// The timeout.go file provides contexts bounded by the test deadline:
//
//   - ContextWithTestDeadline(t, fallback)
//   - ShortOperationContext(t)
package testutil
