package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/thruflo/cookieserver/internal/config"
)

// ErrKeyNotFound is returned when the Cookie header parses but carries no
// cookie with the requested name.
var ErrKeyNotFound = errors.New("cookie not found")

// CookieParseError reports a Cookie header, or a cookie value, that could
// not be decoded.
type CookieParseError struct {
	Header string
	Err    error
}

func (e *CookieParseError) Error() string {
	return fmt.Sprintf("invalid cookie header %q: %v", e.Header, e.Err)
}

func (e *CookieParseError) Unwrap() error {
	return e.Err
}

// EncodeName makes a raw name safe to carry in a cookie value. Characters
// outside the cookie-octet set (';', '"', ',', spaces, non-ASCII) would
// otherwise be dropped by net/http or break the Set-Cookie header.
func EncodeName(name string) string {
	return url.QueryEscape(name)
}

// DecodeName reverses EncodeName.
func DecodeName(value string) (string, error) {
	return url.QueryUnescape(value)
}

// NewNameCookie builds the cookie that remembers name.
func NewNameCookie(cfg config.CookieConfig, name string) *http.Cookie {
	return &http.Cookie{
		Name:   cfg.Name,
		Value:  EncodeName(name),
		Domain: cfg.Domain,
		MaxAge: cfg.MaxAgeSeconds,
	}
}

// ReadName extracts and decodes the cookie called cookieName from a raw
// Cookie header. If the name repeats, the last occurrence wins. It returns
// a *CookieParseError when the header or value is malformed and
// ErrKeyNotFound when the cookie is absent.
func ReadName(header, cookieName string) (string, error) {
	cookies, err := http.ParseCookie(strings.TrimSpace(header))
	if err != nil {
		return "", &CookieParseError{Header: header, Err: err}
	}

	var found *http.Cookie
	for _, c := range cookies {
		if c.Name == cookieName {
			found = c
		}
	}
	if found == nil {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, cookieName)
	}

	name, err := DecodeName(found.Value)
	if err != nil {
		return "", &CookieParseError{Header: header, Err: err}
	}
	return name, nil
}
