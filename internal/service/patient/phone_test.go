package patient

import (
	"errors"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		region  string
		want    string
		wantErr error
	}{
		{"national format", "09123456789", "IR", "+989123456789", nil},
		{"already e164", "+989123456789", "IR", "+989123456789", nil},
		{"spaces and dashes", "0912 345-6789", "IR", "+989123456789", nil},
		{"international overrides region", "+14155552671", "IR", "+14155552671", nil},
		{"garbage", "not a phone", "IR", "", ErrInvalidPhone},
		{"too short", "091", "IR", "", ErrInvalidPhone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := normalizePhone(tc.raw, tc.region)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("normalizePhone(%q) err = %v, want %v", tc.raw, err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("normalizePhone(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}
