package core

import "strings"

// StyleTable maps an enum key to its class string. Unknown keys resolve to
// the entry stored under Default.
type StyleTable struct {
	Entries map[string]string
	Default string
}

func (t StyleTable) Resolve(key string) string {
	if classes, ok := t.Entries[key]; ok {
		return classes
	}
	return t.Entries[t.Default]
}

// Has reports whether key has its own entry.
func (t StyleTable) Has(key string) bool {
	_, ok := t.Entries[key]
	return ok
}

// Classes joins class fragments in order, skipping empty ones.
func Classes(parts ...string) string {
	var b strings.Builder
	for _, part := range parts {
		for _, field := range strings.Fields(part) {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(field)
		}
	}
	return b.String()
}

func DisabledClasses(disabled bool, on, off string) string {
	if disabled {
		return on
	}
	return off
}
