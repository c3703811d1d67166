package certification

import (
	"strings"
	"unicode"
)

// SectionDisplayName turns a camelCase section name into words:
// "intendedUse" becomes "Intended Use".
func SectionDisplayName(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RoleDisplayName turns "SYSTEM_OWNER" into "System Owner".
func RoleDisplayName(rt RoleType) string {
	words := strings.Split(string(rt), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		lower := strings.ToLower(w)
		words[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(words, " ")
}
