package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "01-01-2023", "2023/01/01", "", "abc"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		input    string
		ok       bool
		hour     int
		minute   int
		second   int
	}{
		{"08:00", true, 8, 0, 0},
		{"23:59", true, 23, 59, 0},
		{"07:30:15", true, 7, 30, 15},
		{"00:00", true, 0, 0, 0},
		{"24:00", false, 0, 0, 0},
		{"8h30", false, 0, 0, 0},
		{"", false, 0, 0, 0},
	}
	for _, c := range cases {
		got, ok := ParseTimeOfDay(c.input)
		if ok != c.ok {
			t.Errorf("ParseTimeOfDay(%q) ok = %v, want %v", c.input, ok, c.ok)
			continue
		}
		if !ok {
			continue
		}
		if got.Hour() != c.hour || got.Minute() != c.minute || got.Second() != c.second {
			t.Errorf("ParseTimeOfDay(%q) = %02d:%02d:%02d, want %02d:%02d:%02d",
				c.input, got.Hour(), got.Minute(), got.Second(), c.hour, c.minute, c.second)
		}
	}
}

func TestIsValidRegistration(t *testing.T) {
	valid := []string{"1234", "ABC123", "a1b2c3d4e5"}
	invalid := []string{"abc", "with space", "has-dash", "", "123456789012345678901"}
	for _, s := range valid {
		if !IsValidRegistration(s) {
			t.Errorf("IsValidRegistration(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidRegistration(s) {
			t.Errorf("IsValidRegistration(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	for m := 1; m <= 12; m++ {
		if !IsValidMonth(m) {
			t.Errorf("IsValidMonth(%d) = false, want true", m)
		}
	}
	for _, m := range []int{0, 13, -1, 100} {
		if IsValidMonth(m) {
			t.Errorf("IsValidMonth(%d) = true, want false", m)
		}
	}
}
