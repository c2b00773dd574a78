package validate

import (
	"regexp"

	"github.com/ShiraazMoollatjie/goluhn"
)

var cedulaDigits = regexp.MustCompile(`^\d{11}$`)

// IsCedula reports whether s is a well-formed Dominican cedula: eleven digits
// whose verification digit satisfies the Luhn checksum.
func IsCedula(s string) bool {
	if !cedulaDigits.MatchString(s) {
		return false
	}
	return goluhn.Validate(s) == nil
}
