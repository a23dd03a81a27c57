package notification

import "strings"

// Customer refs are opaque to the queue core. Refs of the form
// "email:addr" opt the customer into email notifications; anything
// else (phone numbers, loyalty IDs, random tokens) has no reachable
// contact and is skipped.

const emailRefPrefix = "email:"

// EmailFromRef extracts the address from an "email:" customer ref.
// Returns false when the ref carries no email contact.
func EmailFromRef(customerRef string) (string, bool) {
	if !strings.HasPrefix(customerRef, emailRefPrefix) {
		return "", false
	}

	addr := strings.TrimSpace(strings.TrimPrefix(customerRef, emailRefPrefix))
	if addr == "" || !strings.Contains(addr, "@") {
		return "", false
	}

	return addr, true
}
