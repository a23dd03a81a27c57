package valueobjects

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxCustomerNameLength = 60

// CustomerName is the optional display name announced when a ticket is
// called. It is normalized so counter displays and notifications render
// a consistent form.
type CustomerName struct {
	value string
}

// NewCustomerName creates a normalized customer name
func NewCustomerName(value string) (*CustomerName, error) {
	normalized := strings.Join(strings.Fields(value), " ")

	if normalized == "" {
		return nil, fmt.Errorf("customer name cannot be empty")
	}

	if len(normalized) > maxCustomerNameLength {
		return nil, fmt.Errorf("customer name cannot exceed %d characters", maxCustomerNameLength)
	}

	for _, r := range normalized {
		if unicode.IsControl(r) {
			return nil, fmt.Errorf("customer name contains invalid characters")
		}
	}

	return &CustomerName{value: normalized}, nil
}

// String returns the normalized name
func (n *CustomerName) String() string {
	return n.value
}

// Display returns the name in title case for announcements
func (n *CustomerName) Display() string {
	caser := cases.Title(language.Und)
	parts := strings.Fields(n.value)
	formatted := make([]string, 0, len(parts))
	for _, part := range parts {
		formatted = append(formatted, caser.String(strings.ToLower(part)))
	}
	return strings.Join(formatted, " ")
}

// Equals checks if two customer names are equal ignoring case
func (n *CustomerName) Equals(other *CustomerName) bool {
	if n == nil || other == nil {
		return n == other
	}
	return strings.EqualFold(n.value, other.value)
}
