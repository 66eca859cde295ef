package domain

// MaxIDLength bounds identifiers accepted from callers.
const MaxIDLength = 128

// ValidID reports whether id can be placed in a URL path as one segment:
// 1 to MaxIDLength characters from [A-Za-z0-9._:-], and not "." or "..",
// which path cleaning would resolve against the parent.
func ValidID(id string) bool {
	if id == "" || len(id) > MaxIDLength || id == "." || id == ".." {
		return false
	}
	for i := range len(id) {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.', c == ':':
		default:
			return false
		}
	}
	return true
}
