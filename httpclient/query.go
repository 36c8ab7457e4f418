package httpclient

import (
	"net/url"
	"strconv"
	"strings"
)

// Query builds a query string that keeps parameters in the order they were added.
// Empty strings and zero integers are skipped.
type Query struct {
	parts []string
}

func (q *Query) Add(key, value string) *Query {
	if value == "" {
		return q
	}
	q.parts = append(q.parts, url.QueryEscape(key)+"="+url.QueryEscape(value))
	return q
}

func (q *Query) AddInt(key string, value int) *Query {
	if value == 0 {
		return q
	}
	return q.Add(key, strconv.Itoa(value))
}

// Encode returns the query without the leading "?".
func (q *Query) Encode() string {
	return strings.Join(q.parts, "&")
}

// Path appends the query to path, leaving path untouched when there are no parameters.
func (q *Query) Path(path string) string {
	if len(q.parts) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
