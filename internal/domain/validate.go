package domain

import (
	"fmt"
	"strings"
)

// ValidateOrder runs every structural check and returns all violations in check order:
// header, then contact, then lines by 1-based index. An empty result means the order
// may be assembled. Nothing is mutated.
func ValidateOrder(header *OrderHeader, contact *Contact, lines []*LineItem) []string {
	var violations []string

	if header == nil {
		violations = append(violations, "the order header is missing")
	} else {
		if header.ReferenceID == "" {
			violations = append(violations, "the reference_id field in the order header is empty")
		}
		if header.CurrencyCode == "" {
			violations = append(violations, "the currency_code field in the order header is empty")
		}
	}

	if contact == nil {
		violations = append(violations, "the contact is missing")
	} else {
		if strings.TrimSpace(contact.Address()) == "" {
			violations = append(violations, "either address or street and number must be set on the contact")
		}
		if contact.City == "" {
			violations = append(violations, "the city field on the contact is empty")
		}
		if contact.PostCode == "" {
			violations = append(violations, "the post_code field on the contact is empty")
		}
		if contact.FirstName == "" {
			violations = append(violations, "the first_name field on the contact is empty")
		}
		if contact.LastName == "" {
			violations = append(violations, "the last_name field on the contact is empty")
		}
	}

	for i, line := range lines {
		n := i + 1
		if line == nil {
			violations = append(violations, fmt.Sprintf("order line %d is not a line item", n))
			continue
		}
		if line.Name == "" {
			violations = append(violations, fmt.Sprintf("the name field in order line %d is empty", n))
		}
		if line.Description == "" {
			violations = append(violations, fmt.Sprintf("the description field in order line %d is empty", n))
		}
		if line.UnitPrice == 0 {
			violations = append(violations, fmt.Sprintf("the unit_price field in order line %d is empty", n))
		}
		switch {
		case line.Quantity == 0:
			violations = append(violations, fmt.Sprintf("the quantity field in order line %d is empty", n))
		case line.Quantity < 0:
			violations = append(violations, fmt.Sprintf("the quantity field in order line %d must be positive", n))
		}
		if line.TaxPercent < 0 {
			violations = append(violations, fmt.Sprintf("the tax_percent field in order line %d is negative", n))
		}
	}

	return violations
}
