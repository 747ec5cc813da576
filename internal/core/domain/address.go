package domain

import "strings"

// Address is the stored delivery address of an account.
type Address struct {
	AddressLine1 string `json:"address_line1,omitempty"`
	Brgy         string `json:"brgy,omitempty"`
	City         string `json:"city,omitempty"`
	Province     string `json:"province,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Country      string `json:"country,omitempty"`
}

// Format renders the address as a comma-joined sequence of its non-empty
// parts, in delivery order. Empty segments are skipped along with their
// separators, so a missing street line yields "<brgy>, <city>, <province>".
func (a Address) Format() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.AddressLine1, a.Brgy, a.City, a.Province} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
