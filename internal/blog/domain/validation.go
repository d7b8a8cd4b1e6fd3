package domain

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	TitleMinLen   = 3
	TitleMaxLen   = 200
	ContentMinLen = 10
	ContentMaxLen = 50000
	NameMinLen    = 2
	NameMaxLen    = 100
	PasswordMin   = 6

	MsgValidationFailed = "Validation failed"
)

// lengthRules bounds a string's rune count. RuneLength passes empty values,
// so Required reports them with the minimum-length message.
func lengthRules(lo, hi int, minMsg, maxMsg string) []validation.Rule {
	rules := []validation.Rule{
		validation.Required.Error(minMsg),
		validation.RuneLength(lo, 0).Error(minMsg),
	}
	if hi > 0 {
		rules = append(rules, validation.RuneLength(0, hi).Error(maxMsg))
	}
	return rules
}

var noSpam = validation.By(func(v interface{}) error {
	s, _ := v.(string)
	if strings.Contains(strings.ToLower(s), "spam") {
		return errors.New("Title contains illegal content")
	}
	return nil
})

var (
	titleRules = append(lengthRules(TitleMinLen, TitleMaxLen,
		"Title must be at least 3 characters long",
		"Title must be less than 200 characters long",
	), noSpam)
	contentRules = lengthRules(ContentMinLen, ContentMaxLen,
		"Content must be at least 10 characters long",
		"Content must be less than 50000 characters long",
	)
	nameRules = lengthRules(NameMinLen, NameMaxLen,
		"Name must be at least 2 characters long",
		"Name must be less than 100 characters long",
	)
	emailRules = []validation.Rule{
		validation.Required.Error("Email must be valid"),
		is.Email.Error("Email must be valid"),
	}
	passwordRules = lengthRules(PasswordMin, 0,
		"Password must be at least 6 characters long", "",
	)
)

type fieldCheck struct {
	value string
	rules []validation.Rule
}

// collect runs each check and returns the first failure of every field, in
// field order.
func collect(checks ...fieldCheck) error {
	var msgs []string
	for _, c := range checks {
		if err := validation.Validate(c.value, c.rules...); err != nil {
			msgs = append(msgs, err.Error())
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return Validation(MsgValidationFailed, msgs...)
}

// NormalizePostInput trims title and content and validates the result.
func NormalizePostInput(in PostInput) (PostInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)

	err := collect(
		fieldCheck{in.Title, titleRules},
		fieldCheck{in.Content, contentRules},
	)
	return in, err
}

// NormalizePostPatch trims and validates only the fields that are present.
func NormalizePostPatch(p PostPatch) (PostPatch, error) {
	var checks []fieldCheck
	if p.Title != nil {
		t := strings.TrimSpace(*p.Title)
		p.Title = &t
		checks = append(checks, fieldCheck{t, titleRules})
	}
	if p.Content != nil {
		c := strings.TrimSpace(*p.Content)
		p.Content = &c
		checks = append(checks, fieldCheck{c, contentRules})
	}
	return p, collect(checks...)
}

// NormalizeRegistration trims the name, normalizes the email and validates
// all three fields.
func NormalizeRegistration(r Registration) (Registration, error) {
	r.Name = NormalizeName(r.Name)
	r.Email = NormalizeEmail(r.Email)

	err := collect(
		fieldCheck{r.Name, nameRules},
		fieldCheck{r.Email, emailRules},
		fieldCheck{r.Password, passwordRules},
	)
	return r, err
}

// NormalizeProfileUpdate requires at least one field and validates the ones
// supplied.
func NormalizeProfileUpdate(u ProfileUpdate) (ProfileUpdate, error) {
	if u.Name == nil && u.Email == nil {
		return u, Validation("Please provide at least one field to update")
	}

	var checks []fieldCheck
	if u.Name != nil {
		n := NormalizeName(*u.Name)
		u.Name = &n
		checks = append(checks, fieldCheck{n, nameRules})
	}
	if u.Email != nil {
		e := NormalizeEmail(*u.Email)
		u.Email = &e
		checks = append(checks, fieldCheck{e, emailRules})
	}
	return u, collect(checks...)
}

// ValidateLogin only checks presence; credential checks happen later so that
// failures stay generic.
func ValidateLogin(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return Validation("Email and password are required")
	}
	return nil
}
