// Package types holds value types shared between the URI packages.
package types

import (
	"slices"
)

// Values maps a decoded query key to the list of its decoded values.
// Keys are case-sensitive, repeated keys keep every value in order of appearance.
// A bare key without "=" is stored with an empty value.
type Values map[string][]string

// Get returns values associated with the given key.
// If there are no values associated with the key, Get returns the empty slice.
func (vals Values) Get(key string) []string { return vals[key] }

// First returns the first value associated with the key.
func (vals Values) First(key string) (string, bool) {
	v := vals[key]
	if len(v) == 0 {
		return "", false
	}
	return v[0], true
}

// Set sets the key to value. It replaces any existing values.
func (vals Values) Set(key, value string) Values {
	vals[key] = []string{value}
	return vals
}

// Append adds the value to the key's values.
func (vals Values) Append(key, value string) Values {
	vals[key] = append(vals[key], value)
	return vals
}

// Del deletes the values associated with the key.
func (vals Values) Del(key string) Values {
	delete(vals, key)
	return vals
}

// Has checks whether a given key is in the map.
func (vals Values) Has(key string) bool {
	_, ok := vals[key]
	return ok
}

// Len returns the total number of key/value pairs.
func (vals Values) Len() int {
	var n int
	for _, vs := range vals {
		n += len(vs)
	}
	return n
}

// Clone returns a copy of the map.
func (vals Values) Clone() Values {
	var vals2 Values
	for k, vs := range vals {
		if vals2 == nil {
			vals2 = make(Values, len(vals))
		}
		vals2[k] = slices.Clone(vs)
	}
	return vals2
}

// Equal compares two maps as multisets of key/value pairs:
// the order of keys and of the values of one key does not matter,
// the number of repetitions does.
func (vals Values) Equal(val any) bool {
	var other Values
	switch v := val.(type) {
	case Values:
		other = v
	case *Values:
		if v == nil {
			return false
		}
		other = *v
	case map[string][]string:
		other = v
	default:
		return false
	}

	if vals.Len() != other.Len() {
		return false
	}
	for k, vs := range vals {
		ovs := other[k]
		if len(vs) != len(ovs) {
			return false
		}
		if len(vs) == 1 {
			if vs[0] != ovs[0] {
				return false
			}
			continue
		}
		a, b := slices.Clone(vs), slices.Clone(ovs)
		slices.Sort(a)
		slices.Sort(b)
		if !slices.Equal(a, b) {
			return false
		}
	}
	return true
}
