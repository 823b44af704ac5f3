package model

import "strings"

// DefaultCountry is applied when the buyer leaves the country blank.
const DefaultCountry = "Zambia"

// ShippingAddress is the address block captured at checkout. It is
// stored on the order as a JSON document, so later profile edits do
// not alter historical orders.
type ShippingAddress struct {
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	AddressLine1  string `json:"address_line1"`
	AddressLine2  string `json:"address_line2,omitempty"`
	City          string `json:"city"`
	Province      string `json:"province"`
	PostalCode    string `json:"postal_code,omitempty"`
	Country       string `json:"country"`
	DeliveryNotes string `json:"delivery_notes,omitempty"`
}

// Validate performs presence checks on the required fields, returning
// a ValidationError for the first missing one. Checks are structural
// only: no phone or postal code format enforcement.
func (a ShippingAddress) Validate() error {
	checks := []struct {
		field string
		value string
	}{
		{"full_name", a.FullName},
		{"phone", a.Phone},
		{"address_line1", a.AddressLine1},
		{"city", a.City},
		{"province", a.Province},
	}
	for _, c := range checks {
		if strings.TrimSpace(c.value) == "" {
			return NewValidationError(c.field)
		}
	}
	return nil
}
