// Package validate holds the domain validation rules shared by every
// service entry point, plus a validator.Validate instance with those
// rules registered as custom tags.
package validate

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	nameRegexp       = regexp.MustCompile(`^[a-zA-Z\s]{2,50}$`)
	looseEmailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitRegexp   = regexp.MustCompile(`\D`)
)

// adminPasswordSymbols is the punctuation set an admin password must
// draw at least one character from.
const adminPasswordSymbols = `!@#$%^&*(),.?":{}|<>`

const dateLayout = "2006-01-02"

// PersonName reports whether the trimmed value is 2-50 characters of
// letters and spaces only.
func PersonName(s string) bool {
	return nameRegexp.MatchString(strings.TrimSpace(s))
}

// LooseEmail reports whether the trimmed value has the shape
// something@something.something with no whitespace or extra "@".
func LooseEmail(s string) bool {
	return looseEmailRegexp.MatchString(strings.TrimSpace(s))
}

// Mobile strips every non-digit character and reports whether exactly
// ten digits remain, so formatted input like "(234) 567-8901" passes.
func Mobile(s string) bool {
	return len(nonDigitRegexp.ReplaceAllString(s, "")) == 10
}

// StudentPassword requires at least 8 characters with an upper-case
// letter, a lower-case letter and a digit.
func StudentPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

// AdminPassword requires everything StudentPassword does plus at least
// one symbol from the fixed punctuation set.
func AdminPassword(s string) bool {
	return StudentPassword(s) && strings.ContainsAny(s, adminPasswordSymbols)
}

// DateOfBirth reports whether the value is a YYYY-MM-DD date strictly
// in the past and strictly less than 100 years ago.
func DateOfBirth(s string) bool {
	return dateOfBirthAt(s, time.Now())
}

func dateOfBirthAt(s string, now time.Time) bool {
	d, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return d.Before(now) && d.After(now.AddDate(-100, 0, 0))
}

// Validator wraps a validator.Validate with the domain rules registered
// and an English translator for field error messages.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New builds a Validator with all custom tags and translations registered.
func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, err
	}

	rules := []struct {
		tag     string
		fn      validator.Func
		message string
	}{
		{"person_name", wrap(PersonName), "{0} must be 2-50 characters, letters and spaces only"},
		{"loose_email", wrap(LooseEmail), "{0} must be a valid email address"},
		{"mobile_in", wrap(Mobile), "{0} must be a valid 10-digit mobile number"},
		{"student_password", wrap(StudentPassword), "{0} must be at least 8 characters with upper case, lower case and a digit"},
		{"admin_password", wrap(AdminPassword), "{0} must be at least 8 characters with upper case, lower case, a digit and a symbol"},
		{"dob", wrap(DateOfBirth), "{0} must be a valid date of birth"},
	}
	for _, rule := range rules {
		if err := v.RegisterValidation(rule.tag, rule.fn); err != nil {
			return nil, err
		}
		if err := registerMessage(v, trans, rule.tag, rule.message); err != nil {
			return nil, err
		}
	}

	return &Validator{validate: v, trans: trans}, nil
}

// Struct validates s against its validate tags and returns a map of
// field name to translated message, or nil when s is valid.
func (v *Validator) Struct(s any) map[string]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = fe.Translate(v.trans)
	}
	return fields
}

func wrap(fn func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String())
	}
}

func registerMessage(v *validator.Validate, trans ut.Translator, tag, message string) error {
	return v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, message, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, err := ut.T(tag, fe.Field())
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
}
