package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/signup/modules/billing"
)

func TestDetectBrand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		number string
		want   billing.Brand
	}{
		{"4111 1111 1111 1111", billing.BrandVisa},
		{"4", billing.BrandVisa},
		{"5500 0000 0000 0004", billing.BrandMastercard},
		{"2221 0000 0000 0009", billing.BrandMastercard},
		{"3782 822463 10005", billing.BrandAmex},
		{"6011 1111 1111 1117", billing.BrandDiscover},
		{"65", billing.BrandDiscover},
		{"1234", billing.BrandUnknown},
		{"", billing.BrandUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.Equal(t, tt.want, billing.DetectBrand(tt.number))
		})
	}
}

func TestBrand_Label(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Visa", billing.BrandVisa.Label())
	assert.Equal(t, "American Express", billing.BrandAmex.Label())
	assert.Empty(t, billing.BrandUnknown.Label())
}
