// Package filter builds the query strings accepted by football-data.org
// collection endpoints.
package filter

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Keys understood by the API. They are passed through untouched, the client
// does not validate them.
const (
	Areas    = "areas"
	Matchday = "matchday"
	Season   = "season"
	Date     = "date"
	DateFrom = "dateFrom"
	DateTo   = "dateTo"
	Status   = "status"
	Stage    = "stage"
	Group    = "group"
	Limit    = "limit"
)

// Param is a single filter. One value is rendered as a scalar, several values
// as a comma separated list.
type Param struct {
	Key    string
	Values []string
}

// Set is an ordered collection of filters. The zero value is an empty set.
type Set []Param

// Add returns s with a new param appended. Values are formatted with fmt.Sprint.
func (s Set) Add(key string, values ...any) Set {
	p := Param{Key: key, Values: make([]string, 0, len(values))}
	for _, v := range values {
		p.Values = append(p.Values, fmt.Sprint(v))
	}
	return append(s, p)
}

// Encode renders the set, see Encode.
func (s Set) Encode() string {
	return Encode(s)
}

// Encode renders s as "key=value&" pairs in order. Every pair is followed by
// '&', including the last one, and nothing is URL-escaped. An empty set
// encodes to "".
func Encode(s Set) string {
	if len(s) == 0 {
		return ""
	}

	var b strings.Builder
	for _, p := range s {
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(strings.Join(p.Values, ","))
		b.WriteByte('&')
	}
	return b.String()
}

// FromMap converts m to a Set ordered by key. Slice and array values become
// lists, anything else a scalar.
func FromMap(m map[string]any) Set {
	if len(m) == 0 {
		return nil
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	s := make(Set, 0, len(keys))
	for _, k := range keys {
		s = s.Add(k, flatten(m[k])...)
	}
	return s
}

func flatten(v any) []any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{v}
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// Parse reads "key=v1,v2" pairs, as given on a command line, into a Set
// preserving their order.
func Parse(pairs []string) (Set, error) {
	var s Set
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("filter %q: missing '='", pair)
		}
		if key == "" {
			return nil, errors.New("filter with empty key")
		}
		s = append(s, Param{Key: key, Values: strings.Split(value, ",")})
	}
	return s, nil
}
