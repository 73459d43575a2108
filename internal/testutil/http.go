package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// FormBody encodes name as the yourname form field.
func FormBody(name string) string {
	return url.Values{"yourname": {name}}.Encode()
}

// NewPostRequest builds a form POST to / carrying name.
func NewPostRequest(name string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(FormBody(name)))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// NewGetRequest builds a GET to /. An empty cookieHeader sends no Cookie header.
func NewGetRequest(cookieHeader string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookieHeader != "" {
		req.Header.Set("Cookie", cookieHeader)
	}
	return req
}

// ResponseCookie returns the Set-Cookie named name from resp, failing the
// test if there is none.
func ResponseCookie(t *testing.T, resp *http.Response, name string) *http.Cookie {
	t.Helper()

	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	require.Failf(t, "cookie not set", "no Set-Cookie for %q in %v", name, resp.Header.Values("Set-Cookie"))
	return nil
}

// EchoCookieHeader returns the Cookie header a browser would send after
// receiving resp: name=value with the attributes stripped.
func EchoCookieHeader(t *testing.T, resp *http.Response, name string) string {
	t.Helper()

	c := ResponseCookie(t, resp, name)
	return c.Name + "=" + c.Value
}
