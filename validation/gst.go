package validation

import "regexp"

// GST format: 2 digits (state code) + 10 alphanumeric + 1 digit + 1 letter + 1 digit
var gstPattern = regexp.MustCompile(`^[0-9]{2}[A-Z0-9]{10}[0-9]{1}[A-Z]{1}[0-9]{1}$`)

// ValidGST reports whether s is a well-formed 15-character GST number
// (e.g. 22AAAAA0000A1Z5)
func ValidGST(s string) bool {
	return len(s) == 15 && gstPattern.MatchString(s)
}
