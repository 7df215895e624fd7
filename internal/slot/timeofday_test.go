package slot

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:05", 545, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"garbage", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeOfDay(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestTimeOfDayJSONRoundTrip(t *testing.T) {
	in := MustTimeOfDay("14:30")
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"14:30"` {
		t.Errorf("marshal = %s, want \"14:30\"", b)
	}

	var out TimeOfDay
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %d, want %d", out, in)
	}
}

func TestTimeOfDayAt(t *testing.T) {
	d := time.Date(2024, 3, 15, 18, 45, 12, 0, time.UTC) // time part ignored
	got := MustTimeOfDay("09:30").At(d)
	want := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("At() = %s, want %s", got, want)
	}
}

func TestTimeOfDayAddCapsAtMidnight(t *testing.T) {
	got := MustTimeOfDay("23:30").Add(90)
	if got != TimeOfDay(minutesPerDay) {
		t.Errorf("Add past midnight = %d, want cap %d", got, minutesPerDay)
	}
}
