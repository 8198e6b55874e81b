package checkout

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/floraverde/storefront/internal/model"
)

// Field names a checkout form input
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldAddress Field = "address"
)

// Form is the customer data entered on the checkout page
type Form struct {
	Name     string
	Email    string
	Address  string
	Delivery model.DeliveryMethod
}

// ValidationError lists the form fields that are missing or malformed
type ValidationError struct {
	Fields []Field
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return fmt.Sprintf("invalid checkout form: %s", strings.Join(names, ", "))
}

// Has reports whether field failed validation
func (e *ValidationError) Has(field Field) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// Normalized trims the inputs, resolves the delivery method and drops the
// address for pickup orders
func (f Form) Normalized() Form {
	out := Form{
		Name:     strings.TrimSpace(f.Name),
		Email:    strings.TrimSpace(f.Email),
		Address:  strings.TrimSpace(f.Address),
		Delivery: f.Delivery,
	}
	if out.Delivery != model.DeliveryPickup {
		out.Delivery = model.DeliveryShipping
	}
	if !out.Delivery.RequiresAddress() {
		out.Address = ""
	}
	return out
}

// Validate checks the normalized form and returns a *ValidationError when a
// field is missing or the e-mail is malformed
func (f Form) Validate() error {
	n := f.Normalized()

	var invalid []Field
	if n.Name == "" {
		invalid = append(invalid, FieldName)
	}
	if !validEmail(n.Email) {
		invalid = append(invalid, FieldEmail)
	}
	if n.Delivery.RequiresAddress() && n.Address == "" {
		invalid = append(invalid, FieldAddress)
	}

	if len(invalid) > 0 {
		return &ValidationError{Fields: invalid}
	}
	return nil
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// Reject display-name forms like "Ana <ana@example.cl>"
	return addr.Address == email
}
