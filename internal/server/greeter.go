package server

import (
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/thruflo/cookieserver/internal/config"
	"github.com/thruflo/cookieserver/internal/logging"
	"github.com/thruflo/cookieserver/web"
)

// Greeting messages shown above the form.
const (
	MessageUnknown  = "I don't know you yet!"
	MessageUnsure   = "I'm not sure who you are!"
	MessageGreeting = "Hey there, "
)

// FormField is the form input that carries the visitor's name.
const FormField = "yourname"

// ErrMissingField is returned when a submitted form has no yourname value.
var ErrMissingField = errors.New("missing form field")

// Greeter remembers a visitor's name in a cookie. It holds configuration
// only; every request is handled independently.
type Greeter struct {
	cookie       config.CookieConfig
	maxFormBytes int64
	log          *logging.Logger
}

// NewGreeter creates a Greeter. A nil logger uses the package default.
func NewGreeter(cookie config.CookieConfig, maxFormBytes int64, log *logging.Logger) *Greeter {
	if log == nil {
		log = logging.Default()
	}
	if maxFormBytes <= 0 {
		maxFormBytes = config.DefaultMaxFormBytes
	}
	return &Greeter{
		cookie:       cookie,
		maxFormBytes: maxFormBytes,
		log:          log.With("component", "greeter"),
	}
}

// ServeHTTP dispatches on method. The path is ignored.
func (g *Greeter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.log.Debug("request", "method", r.Method, "path", r.URL.Path)

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		g.handleGet(w, r)
	case http.MethodPost:
		g.handlePost(w, r)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// Message returns the greeting for a raw Cookie header value. present
// reports whether the request carried a Cookie header at all.
func (g *Greeter) Message(header string, present bool) string {
	if !present {
		return MessageUnknown
	}

	name, err := ReadName(header, g.cookie.Name)
	if err != nil {
		var parseErr *CookieParseError
		switch {
		case errors.As(err, &parseErr):
			g.log.Warn("unreadable cookie header", "error", err)
		case errors.Is(err, ErrKeyNotFound):
			g.log.Warn("name cookie absent", "error", err)
		default:
			g.log.Error("cookie lookup failed", "error", err)
		}
		return MessageUnsure
	}

	return MessageGreeting + html.EscapeString(name)
}

// handleGet renders the form page with a greeting taken from the cookie.
func (g *Greeter) handleGet(w http.ResponseWriter, r *http.Request) {
	values, present := r.Header["Cookie"]
	header := strings.Join(values, "; ")

	body := web.RenderPage(g.Message(header, present))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, body)
}

// handlePost stores the submitted name in a cookie and redirects to /.
func (g *Greeter) handlePost(w http.ResponseWriter, r *http.Request) {
	name, err := g.readName(w, r)
	if err != nil {
		status := http.StatusBadRequest
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			status = http.StatusRequestEntityTooLarge
		}
		g.log.Warn("rejected form", "error", err, "status", status)
		http.Error(w, http.StatusText(status), status)
		return
	}

	cookie := NewNameCookie(g.cookie, name)
	http.SetCookie(w, cookie)
	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusSeeOther)

	expires := time.Now().Add(time.Duration(cookie.MaxAge) * time.Second)
	g.log.Debug("name cookie set", "cookie", cookie.Name, "expires", expires.Format(time.RFC3339))
}

// readName reads the form body and returns the first non-blank yourname
// value. Blank values count as absent.
func (g *Greeter) readName(w http.ResponseWriter, r *http.Request) (string, error) {
	if r.Body == nil {
		return "", fmt.Errorf("%w: %s", ErrMissingField, FormField)
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, g.maxFormBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read form body: %w", err)
	}

	form, err := url.ParseQuery(string(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse form body: %w", err)
	}

	for _, v := range form[FormField] {
		if v != "" {
			return v, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrMissingField, FormField)
}
