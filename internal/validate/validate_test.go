package validate

import (
	"testing"
	"time"
)

func TestPersonName(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"John", true},
		{"Mary Jane", true},
		{"  John  ", true},
		{"J", false},
		{"", false},
		{"John3", false},
		{"O'Brien", false},
		{"Jean-Luc", false},
		{"abcdefghijabcdefghijabcdefghijabcdefghijabcdefghijk", false},
	}
	for _, c := range cases {
		if got := PersonName(c.in); got != c.want {
			t.Errorf("PersonName(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLooseEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"user@example.com", true},
		{"  user@example.com  ", true},
		{"a@b.co", true},
		{"", false},
		{"user@example", false},
		{"user example@test.com", false},
		{"user@@example.com", false},
		{"@example.com", false},
	}
	for _, c := range cases {
		if got := LooseEmail(c.in); got != c.want {
			t.Errorf("LooseEmail(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLooseEmailTrimIdempotent(t *testing.T) {
	for _, in := range []string{"user@example.com", " user@example.com ", "bad@", ""} {
		trimmed := LooseEmail(in)
		if LooseEmail(in) != trimmed {
			t.Errorf("LooseEmail not stable for %q", in)
		}
	}
}

func TestMobile(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2345678901", true},
		{"(234) 567-8901", true},
		{"234-567-8901", true},
		{"12345", false},
		{"", false},
		{"23456789012", false},
		{"+1 234 567 8901", false},
	}
	for _, c := range cases {
		if got := Mobile(c.in); got != c.want {
			t.Errorf("Mobile(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestStudentPassword(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"Passw0rd", true},
		{"Aa1bcdef", true},
		{"password1", false},
		{"PASSWORD1", false},
		{"Password", false},
		{"Aa1", false},
		{"", false},
	}
	for _, c := range cases {
		if got := StudentPassword(c.in); got != c.want {
			t.Errorf("StudentPassword(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestAdminPassword(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"Passw0rd!", true},
		{"Aa1bcde?", true},
		{"Passw0rd", false},
		{"password1!", false},
		{"", false},
	}
	for _, c := range cases {
		if got := AdminPassword(c.in); got != c.want {
			t.Errorf("AdminPassword(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDateOfBirthAt(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		in   string
		want bool
	}{
		{"2000-01-01", true},
		{"2026-06-14", true},
		{"2026-06-16", false},
		{"1926-06-14", false},
		{"1926-06-16", true},
		{"not-a-date", false},
		{"", false},
	}
	for _, c := range cases {
		if got := dateOfBirthAt(c.in, now); got != c.want {
			t.Errorf("dateOfBirthAt(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestStructTranslatesFieldErrors(t *testing.T) {
	v, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	type form struct {
		FirstName string `validate:"required,person_name"`
		Email     string `validate:"required,loose_email"`
		Mobile    string `validate:"required,mobile_in"`
	}

	fields := v.Struct(form{FirstName: "J0hn", Email: "nope", Mobile: ""})
	if len(fields) != 3 {
		t.Fatalf("expected 3 field errors, got %v", fields)
	}
	if _, ok := fields["FirstName"]; !ok {
		t.Errorf("expected FirstName error, got %v", fields)
	}
	if _, ok := fields["Mobile"]; !ok {
		t.Errorf("expected Mobile error, got %v", fields)
	}

	if fields := v.Struct(form{FirstName: "John", Email: "user@example.com", Mobile: "2345678901"}); fields != nil {
		t.Errorf("expected valid form, got %v", fields)
	}
}
