package transport

import (
	"net/url"
	"strings"
)

// Endpoint joins base and path segments. Segments are opaque: each is
// path-escaped whole, slashes included. base is used as given apart from
// trailing slashes.
func Endpoint(base string, segments ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// Query is an ordered list of query parameters. url.Values sorts keys on
// Encode; the upscale lookup and load-balanced poll keep insertion order.
type Query struct {
	keys   []string
	values []string
}

// Add appends a parameter.
func (q *Query) Add(key, value string) *Query {
	q.keys = append(q.keys, key)
	q.values = append(q.values, value)
	return q
}

// Encode renders the parameters in insertion order.
func (q *Query) Encode() string {
	var b strings.Builder
	for i, k := range q.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q.values[i]))
	}
	return b.String()
}

// WithQuery appends q to endpoint, if q is non-empty.
func WithQuery(endpoint string, q *Query) string {
	if q == nil || len(q.keys) == 0 {
		return endpoint
	}
	return endpoint + "?" + q.Encode()
}
