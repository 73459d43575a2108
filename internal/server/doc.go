// Package server serves a form that remembers the visitor's name in a
// cookie.
//
// All state lives in the client. The server keeps nothing between
// requests: a POST turns the submitted name into a Set-Cookie header, and
// a GET reads it back out of the Cookie header.
//
// # Endpoints
//
//   - GET (any path) - the form page, greeting the visitor by name if the
//     cookie is present
//   - POST (any path) - form field yourname; responds 303 See Other to /
//     with the name cookie set
//
// # Cookie
//
// The cookie defaults to yourname with Domain=localhost and Max-Age=600.
// Values are query-escaped on the way out and unescaped on the way in so
// names containing ';', '"' or spaces survive the header. The greeting
// is always HTML-escaped before it is written into the page.
package server
