package core

import (
	"sort"
	"strings"
)

type Attr struct {
	Key   string
	Value string
}

// Attributes keeps insertion order so serialized markup is stable. Builder
// methods never modify the receiver; each returns a fresh slice, so several
// sets can be derived from one base.
type Attributes []Attr

// Get looks key up case-insensitively, as HTML attribute names are.
func (a Attributes) Get(key string) (string, bool) {
	if i := a.index(key); i >= 0 {
		return a[i].Value, true
	}
	return "", false
}

func (a Attributes) Has(key string) bool {
	return a.index(key) >= 0
}

func (a Attributes) index(key string) int {
	for i, attr := range a {
		if strings.EqualFold(attr.Key, key) {
			return i
		}
	}
	return -1
}

func (a Attributes) clone(extra int) Attributes {
	out := make(Attributes, len(a), len(a)+extra)
	copy(out, a)
	return out
}

func (a Attributes) Set(key, value string) Attributes {
	if i := a.index(key); i >= 0 {
		out := a.clone(0)
		out[i].Value = value
		return out
	}
	return append(a.clone(1), Attr{Key: key, Value: value})
}

// SetIf sets a boolean attribute (rendered with an empty value) when cond holds.
func (a Attributes) SetIf(cond bool, key string) Attributes {
	if !cond {
		return a
	}
	return a.Set(key, "")
}

// SetNonEmpty skips the attribute when value is empty.
func (a Attributes) SetNonEmpty(key, value string) Attributes {
	if value == "" {
		return a
	}
	return a.Set(key, value)
}

// Merge appends pass-through attributes after the explicit ones, in sorted
// key order. Keys already present, compared case-insensitively, keep their
// explicit value. Keys are trusted markup: names that are not valid HTML
// attribute names are dropped, values are escaped by the serializer.
func (a Attributes) Merge(rest map[string]string) Attributes {
	if len(rest) == 0 {
		return a
	}
	keys := make([]string, 0, len(rest))
	for k := range rest {
		if ValidAttrName(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := a.clone(len(keys))
	for _, k := range keys {
		if out.Has(k) {
			continue
		}
		out = append(out, Attr{Key: k, Value: rest[k]})
	}
	return out
}

// ValidAttrName rejects names the HTML tokenizer would split or end early:
// empty names and names holding whitespace, quotes, '=', '<', '>' or '/'.
func ValidAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r <= ' ', r == 0x7f:
			return false
		case strings.ContainsRune("\"'=<>/`", r):
			return false
		}
	}
	return true
}
