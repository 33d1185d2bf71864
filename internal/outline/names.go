package outline

import "strings"

// ExtractCategory splits name at its first underscore. When the underscore
// exists and is not the first character, tag is everything before it and
// remainder starts at the underscore itself. Otherwise there is no tag and
// remainder is the whole name.
func ExtractCategory(name string) (tag, remainder string) {
	idx := strings.IndexByte(name, '_')
	if idx <= 0 {
		return "", name
	}
	return name[:idx], name[idx:]
}

// TrimOrderingPrefix strips leading ASCII digits and dots from name.
// A name made only of digits and dots trims to "".
func TrimOrderingPrefix(name string) string {
	i := 0
	for i < len(name) && (isDigit(name[i]) || name[i] == '.') {
		i++
	}
	return name[i:]
}

// DisplayName is the name shown for an entry or group: the ordering prefix
// is stripped, but a name that would trim to nothing is kept as is.
func DisplayName(name string) string {
	if trimmed := TrimOrderingPrefix(name); trimmed != "" {
		return trimmed
	}
	return name
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
