package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(1990, 7, 31)
	d2 := New(1990, 7, 31)

	if d1.time() != d2.time() {
		// usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	got := New(1990, time.February, 30)
	if want := New(1990, time.March, 2); got != want {
		t.Errorf("New(1990, 2, 30) = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		input   string
		want    Date
		wantErr bool
	}{
		{input: "1990-01-01", want: New(1990, time.January, 1)},
		{input: "1990-7-1", want: New(1990, time.July, 1)},
		{input: "01-01-1990", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestAge(t *testing.T) {
	birth := MustParse("1990-06-15")
	testCases := []struct {
		on   string
		want int
	}{
		{on: "1990-06-15", want: 0},
		{on: "2025-06-14", want: 34},
		{on: "2025-06-15", want: 35},
		{on: "2025-12-31", want: 35},
	}
	for _, tc := range testCases {
		if got := birth.Age(MustParse(tc.on)); got != tc.want {
			t.Errorf("Age(%s) = %d, want %d", tc.on, got, tc.want)
		}
	}
}

func TestJSON(t *testing.T) {
	d := MustParse("1990-1-1")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if want := `"1990-01-01"`; string(b) != want {
		t.Errorf("Marshal = %s, want %s", b, want)
	}
	var got Date
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if got != d {
		t.Errorf("Unmarshal = %v, want %v", got, d)
	}
	if !(Date{}).IsZero() || d.IsZero() {
		t.Error("IsZero mismatch")
	}
}
