package patient

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// normalizePhone canonicalizes a raw phone string to E.164 so the same
// number always matches in lookups regardless of how it was typed.
// defaultRegion resolves national-format numbers without a country code.
func normalizePhone(raw, defaultRegion string) (string, error) {
	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
