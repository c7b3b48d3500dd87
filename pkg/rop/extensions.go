package rop

import (
	"log/slog"
	"maps"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const badKey = "!BADKEY"

// Extensions is the key-value metadata attached to an Error.
type Extensions map[string]any

// Ext builds Extensions from slog-style arguments: alternating key/value pairs
// or slog.Attr values. A lone key or a non-string key is stored under "!BADKEY".
//
//	rop.Ext("userId", 7, slog.String("tenant", "acme"))
func Ext(args ...any) Extensions {
	ext := make(Extensions, len(args)/2)
	for i := 0; i < len(args); {
		switch v := args[i].(type) {
		case slog.Attr:
			ext[v.Key] = v.Value.Any()
			i++
		case string:
			if i+1 < len(args) {
				ext[v] = args[i+1]
				i += 2
			} else {
				ext[badKey] = v
				i++
			}
		default:
			ext[badKey] = v
			i++
		}
	}
	return ext
}

// Set returns a copy of ext with key set to value.
func (ext Extensions) Set(key string, value any) Extensions {
	cp := ext.clone()
	cp[key] = value
	return cp
}

// Merge returns a copy of ext with every entry of other applied on top.
func (ext Extensions) Merge(other Extensions) Extensions {
	cp := ext.clone()
	maps.Copy(cp, other)
	return cp
}

func (ext Extensions) clone() Extensions {
	cp := make(Extensions, len(ext))
	maps.Copy(cp, ext)
	return cp
}

// NormalizeCode rewrites s in SCREAMING_SNAKE_CASE: word boundaries
// (separators, lower-to-upper transitions, acronym ends) become a single
// underscore. "user.not-found", "userNotFound" and "USER_NOT_FOUND" all
// normalize to "USER_NOT_FOUND".
func NormalizeCode(s string) string {
	rs := []rune(strings.TrimSpace(s))
	var b strings.Builder
	sep := false
	for i, r := range rs {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			sep = b.Len() > 0
			continue
		}
		if unicode.IsUpper(r) && i > 0 && b.Len() > 0 {
			prev := rs[i-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				sep = true
			}
		}
		if sep {
			b.WriteByte('_')
			sep = false
		}
		b.WriteRune(r)
	}
	return cases.Upper(language.Und).String(b.String())
}
