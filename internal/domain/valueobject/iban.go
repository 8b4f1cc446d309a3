package valueobject

import (
	"fmt"
	"regexp"
)

// ibanLikeRe is the structural account-identifier pattern: country letters, check
// digits, then 10-30 alphanumerics. Checksums are not verified.
var ibanLikeRe = regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z0-9]{10,30}$`)

// IBAN is an IBAN-like account identifier.
type IBAN struct {
	value string
}

// NewIBAN validates s against the structural pattern.
func NewIBAN(s string) (IBAN, error) {
	if !IsIBANLike(s) {
		return IBAN{}, fmt.Errorf("invalid IBAN %q", s)
	}
	return IBAN{value: s}, nil
}

// IsIBANLike reports whether s matches the structural pattern.
func IsIBANLike(s string) bool {
	return ibanLikeRe.MatchString(s)
}

// String returns the identifier.
func (i IBAN) String() string {
	return i.value
}
