package utils

import "regexp"

var cnicPattern = regexp.MustCompile(`^\d{5}-\d{7}-\d$`)

// ValidCNIC reports whether a national identity card number follows the
// XXXXX-XXXXXXX-X format.
func ValidCNIC(cnic string) bool {
	return cnicPattern.MatchString(cnic)
}
