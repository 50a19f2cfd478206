// Package checkout validates the customer checkout form and assembles the
// order-submission payload sent to the upstream API.
package checkout

import (
	"regexp"
	"strings"

	"github.com/Godtasan552/selling-shirts-backend/models"
)

// Field keys used in validation error maps. They match the JSON field names
// so the storefront can map errors straight onto inputs.
const (
	FieldCustomerName    = "customerName"
	FieldCustomerPhone   = "customerPhone"
	FieldCustomerEmail   = "customerEmail"
	FieldCustomerAddress = "customerAddress"
)

var (
	nonDigitRe = regexp.MustCompile(`\D`)
	// deliberately loose: local part, a domain, a dot and a TLD, no whitespace
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// ValidateForm checks every rule independently and returns a field→message
// map. An empty map means the form may be submitted. Re-running after an
// edit clears exactly the fields that now pass.
func ValidateForm(f models.CustomerForm) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.CustomerName) == "" {
		errs[FieldCustomerName] = "Name is required"
	}

	digits := nonDigitRe.ReplaceAllString(f.CustomerPhone, "")
	if strings.TrimSpace(f.CustomerPhone) == "" {
		errs[FieldCustomerPhone] = "Phone number is required"
	} else if len(digits) != 10 {
		errs[FieldCustomerPhone] = "Phone number must be 10 digits"
	}

	if strings.TrimSpace(f.CustomerEmail) == "" {
		errs[FieldCustomerEmail] = "Email is required"
	} else if !emailRe.MatchString(f.CustomerEmail) {
		errs[FieldCustomerEmail] = "Email format is invalid"
	}

	if strings.TrimSpace(f.CustomerAddress) == "" {
		errs[FieldCustomerAddress] = "Shipping address is required"
	}

	// note is never required
	return errs
}
