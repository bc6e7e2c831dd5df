package engine

import (
	"testing"
	"time"
)

func TestParseDueDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2024-05-14T09:30", time.Date(2024, 5, 14, 9, 30, 0, 0, time.Local), true},
		{"2024-05-14T09:30:15", time.Date(2024, 5, 14, 9, 30, 15, 0, time.Local), true},
		{"2024-05-14 09:30", time.Date(2024, 5, 14, 9, 30, 0, 0, time.Local), true},
		{"2024-05-14", time.Date(2024, 5, 14, 0, 0, 0, 0, time.Local), true},
		{" 2024-05-14T09:30 ", time.Date(2024, 5, 14, 9, 30, 0, 0, time.Local), true},
		{"", time.Time{}, false},
		{"soon", time.Time{}, false},
		{"14/05/2024", time.Time{}, false},
	}

	for _, tc := range cases {
		got, ok := ParseDueDate(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseDueDate(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && !got.Equal(tc.want) {
			t.Errorf("ParseDueDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDueDateRFC3339(t *testing.T) {
	got, ok := ParseDueDate("2024-05-14T09:30:00+02:00")
	if !ok {
		t.Fatalf("expected RFC 3339 to parse")
	}
	want := time.Date(2024, 5, 14, 9, 30, 0, 0, time.FixedZone("", 2*3600))
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
