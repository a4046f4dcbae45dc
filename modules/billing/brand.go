package billing

import (
	"regexp"

	"github.com/dmitrymomot/signup/pkg/sanitizer"
)

// Brand is the card network guessed from the number prefix. It is a display
// hint only and plays no part in validation.
type Brand string

const (
	BrandUnknown    Brand = "unknown"
	BrandVisa       Brand = "visa"
	BrandMastercard Brand = "mastercard"
	BrandAmex       Brand = "amex"
	BrandDiscover   Brand = "discover"
)

var brandPrefixes = []struct {
	brand Brand
	re    *regexp.Regexp
}{
	{BrandVisa, regexp.MustCompile(`^4`)},
	{BrandMastercard, regexp.MustCompile(`^(5[1-5]|2(2[2-9]|[3-6]\d|7[01]|720))`)},
	{BrandAmex, regexp.MustCompile(`^3[47]`)},
	{BrandDiscover, regexp.MustCompile(`^(6011|65|64[4-9])`)},
}

// DetectBrand works on partial input, so it can run on every keystroke.
func DetectBrand(number string) Brand {
	digits := sanitizer.KeepDigits(number)
	for _, p := range brandPrefixes {
		if p.re.MatchString(digits) {
			return p.brand
		}
	}
	return BrandUnknown
}

// Label is the human readable brand name.
func (b Brand) Label() string {
	switch b {
	case BrandVisa:
		return "Visa"
	case BrandMastercard:
		return "Mastercard"
	case BrandAmex:
		return "American Express"
	case BrandDiscover:
		return "Discover"
	default:
		return ""
	}
}
