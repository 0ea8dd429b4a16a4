package fetch

import (
	"net/url"
	"reflect"
	"testing"
)

func TestQuery_Encode(t *testing.T) {
	tests := []struct {
		name     string
		build    func() *Query
		expected string
	}{
		{
			name:     "Empty query",
			build:    func() *Query { return NewQuery() },
			expected: "",
		},
		{
			name: "Single scalar",
			build: func() *Query {
				return NewQuery().Set("a", Scalar("1"))
			},
			expected: "a=1",
		},
		{
			name: "Insertion order preserved",
			build: func() *Query {
				return NewQuery().
					Set("z", Scalar("last")).
					Set("a", Scalar("first"))
			},
			expected: "z=last&a=first",
		},
		{
			name: "List emits one pair per element",
			build: func() *Query {
				return NewQuery().Set("tag", List("go", "http", "json"))
			},
			expected: "tag=go&tag=http&tag=json",
		},
		{
			name: "Unset values skipped",
			build: func() *Query {
				return NewQuery().
					Set("a", Scalar("1")).
					Set("skip", Value{}).
					Set("b", Scalar("2"))
			},
			expected: "a=1&b=2",
		},
		{
			name: "All values unset",
			build: func() *Query {
				return NewQuery().Set("a", Value{}).Set("b", Value{})
			},
			expected: "",
		},
		{
			name: "Empty scalar still emitted",
			build: func() *Query {
				return NewQuery().Set("empty", Scalar(""))
			},
			expected: "empty=",
		},
		{
			name: "Keys and values form-encoded",
			build: func() *Query {
				return NewQuery().Set("q key", Scalar("a value&more"))
			},
			expected: "q+key=a+value%26more",
		},
		{
			name: "Set replaces in place",
			build: func() *Query {
				return NewQuery().
					Set("a", Scalar("1")).
					Set("b", Scalar("2")).
					Set("a", Scalar("3"))
			},
			expected: "a=3&b=2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.build().Encode()
			if got != tt.expected {
				t.Errorf("Encode() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// Encoding then decoding must reconstruct the same key -> values multiset,
// with per-key value order preserved.
func TestQuery_EncodeRoundTrip(t *testing.T) {
	q := NewQuery().
		Set("name", Scalar("Ada Lovelace")).
		Set("tags", List("b", "a", "c")).
		Set("page", Scalar("2"))

	decoded, err := url.ParseQuery(q.Encode())
	if err != nil {
		t.Fatalf("ParseQuery() error: %v", err)
	}

	expected := url.Values{
		"name": {"Ada Lovelace"},
		"tags": {"b", "a", "c"},
		"page": {"2"},
	}
	if !reflect.DeepEqual(decoded, expected) {
		t.Errorf("round trip = %v, want %v", decoded, expected)
	}
}

func TestQuery_GetAndLen(t *testing.T) {
	q := NewQuery().
		Set("a", Scalar("1")).
		Set("b", List("x", "y"))

	if q.Len() != 2 {
		t.Errorf("Len() = %d, want 2", q.Len())
	}

	if got := q.Get("a").Values(); !reflect.DeepEqual(got, []string{"1"}) {
		t.Errorf("Get(a).Values() = %v, want [1]", got)
	}
	if got := q.Get("b").Values(); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Errorf("Get(b).Values() = %v, want [x y]", got)
	}
	if q.Get("missing").IsSet() {
		t.Errorf("Get(missing).IsSet() = true, want false")
	}
}
