package telegram

import (
	"sort"
	"strings"
)

// Canonicalize renders fields as the data-check-string Telegram signs: every
// entry as key=value, sorted by key in byte order, joined by a newline.
// The hash field must already be removed.
func Canonicalize(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(fields[k])
	}
	return b.String()
}
