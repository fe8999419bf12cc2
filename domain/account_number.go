package domain

import "regexp"

// accountNumberPattern is the fixed account number format: ddd-dddd-dddd
var accountNumberPattern = regexp.MustCompile(`^\d{3}-\d{4}-\d{4}$`)

// AccountNumber identifies an account. It is validated on construction and
// compared by value; its lexicographic ordering is the canonical lock order
// for two-account operations.
type AccountNumber string

// NewAccountNumber creates an AccountNumber from its string form.
// Returns ErrInvalidAccountNumber if the value is blank or malformed.
func NewAccountNumber(value string) (AccountNumber, error) {
	if !accountNumberPattern.MatchString(value) {
		return "", ErrInvalidAccountNumber
	}
	return AccountNumber(value), nil
}

// String returns the string form of the account number.
func (n AccountNumber) String() string {
	return string(n)
}

// Less reports whether n orders before other in the canonical lock order.
func (n AccountNumber) Less(other AccountNumber) bool {
	return n < other
}
