package fetch

import (
	"net/url"
	"strings"
)

// Value is a single query parameter value: unset, one scalar, or a list of
// scalars. The zero value is unset; unset values are skipped by Encode.
type Value struct {
	kind   valueKind
	scalar string
	list   []string
}

type valueKind int

const (
	valueUnset valueKind = iota
	valueScalar
	valueList
)

// Scalar returns a single-valued query parameter value.
func Scalar(v string) Value {
	return Value{kind: valueScalar, scalar: v}
}

// List returns a multi-valued query parameter value. Each element is encoded
// as its own key=value pair, in order.
func List(vs ...string) Value {
	return Value{kind: valueList, list: vs}
}

// IsSet reports whether the value holds a scalar or a list.
func (v Value) IsSet() bool {
	return v.kind != valueUnset
}

// Values returns the encoded elements of the value, or nil when unset.
func (v Value) Values() []string {
	switch v.kind {
	case valueScalar:
		return []string{v.scalar}
	case valueList:
		return v.list
	default:
		return nil
	}
}

// EncodeFunc encodes a query into a string with no leading "?".
type EncodeFunc func(*Query) string

// Query is an ordered set of query parameters. Unlike url.Values, encoding
// preserves insertion order instead of sorting keys.
type Query struct {
	params []queryParam
}

type queryParam struct {
	key   string
	value Value
}

// NewQuery creates an empty query.
func NewQuery() *Query {
	return &Query{}
}

// Set stores a value for a key. An existing key keeps its position; a new
// key is appended.
func (q *Query) Set(key string, value Value) *Query {
	for i := range q.params {
		if q.params[i].key == key {
			q.params[i].value = value
			return q
		}
	}
	q.params = append(q.params, queryParam{key: key, value: value})
	return q
}

// Get returns the value stored for a key. The zero Value is returned for
// missing keys.
func (q *Query) Get(key string) Value {
	for _, p := range q.params {
		if p.key == key {
			return p.value
		}
	}
	return Value{}
}

// Len returns the number of keys in the query, including unset ones.
func (q *Query) Len() int {
	return len(q.params)
}

// Encode encodes the query as application/x-www-form-urlencoded pairs in
// insertion order, with no leading "?". Unset values are skipped; list
// values emit one pair per element. An empty query encodes to "".
func (q *Query) Encode() string {
	var b strings.Builder
	for _, p := range q.params {
		for _, v := range p.value.Values() {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(p.key))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}
