package checkout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floraverde/storefront/internal/model"
)

func TestFormValidate(t *testing.T) {
	tests := []struct {
		name    string
		form    Form
		invalid []Field
	}{
		{
			name: "valid shipping",
			form: Form{Name: "Ana", Email: "ana@example.cl", Address: "Los Aromos 12", Delivery: model.DeliveryShipping},
		},
		{
			name: "pickup without address",
			form: Form{Name: "Ana", Email: "ana@example.cl", Delivery: model.DeliveryPickup},
		},
		{
			name:    "everything missing",
			form:    Form{Delivery: model.DeliveryShipping},
			invalid: []Field{FieldName, FieldEmail, FieldAddress},
		},
		{
			name:    "blank strings count as missing",
			form:    Form{Name: "   ", Email: "ana@example.cl", Address: "\t"},
			invalid: []Field{FieldName, FieldAddress},
		},
		{
			name:    "malformed email",
			form:    Form{Name: "Ana", Email: "ana-at-example", Address: "x"},
			invalid: []Field{FieldEmail},
		},
		{
			name:    "display name email",
			form:    Form{Name: "Ana", Email: "Ana <ana@example.cl>", Address: "x"},
			invalid: []Field{FieldEmail},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.invalid == nil {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.invalid, validationErr.Fields)
			for _, f := range tt.invalid {
				assert.True(t, validationErr.Has(f))
			}
		})
	}
}

func TestFormNormalized(t *testing.T) {
	form := Form{Name: " Ana ", Email: " ana@example.cl ", Address: "Los Aromos 12", Delivery: model.DeliveryPickup}

	n := form.Normalized()
	assert.Equal(t, "Ana", n.Name)
	assert.Equal(t, "ana@example.cl", n.Email)
	assert.Empty(t, n.Address, "pickup orders carry no address")

	unknown := Form{Address: "x", Delivery: "drone"}.Normalized()
	assert.Equal(t, model.DeliveryShipping, unknown.Delivery)
	assert.Equal(t, "x", unknown.Address)
}
