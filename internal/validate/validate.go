// Package validate holds the field-level checks handlers run before
// persistence.
package validate

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var emailRe = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

func Email(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRe.MatchString(email) {
		return errors.New("invalid email format")
	}
	return nil
}

// Password enforces the account password policy: 8..100 characters with at
// least one letter and one digit.
func Password(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if len(password) > 100 {
		return errors.New("password is too long")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return errors.New("password must contain at least one letter and one digit")
	}
	return nil
}

func Username(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 150 {
		return errors.New("username must be between 3 and 150 characters")
	}
	if !regexp.MustCompile(`^[a-zA-Z0-9_.\-]+$`).MatchString(username) {
		return errors.New("username can only contain letters, numbers, dots, dashes and underscores")
	}
	return nil
}

// YearsRange covers both experience_years and years_experience: [0, 50],
// boundary-inclusive.
func YearsRange(years int) error {
	if years < 0 || years > 50 {
		return errors.New("must be between 0 and 50")
	}
	return nil
}

// MaxLen limits by character count, not bytes; a multibyte rune counts once.
func MaxLen(s string, max int) error {
	if utf8.RuneCountInString(s) > max {
		return errors.New("too long")
	}
	return nil
}

// URL accepts empty (optional field) or an absolute http(s) URL.
func URL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("must be a valid http(s) URL")
	}
	return nil
}

func HourlyRate(rate float64) error {
	if rate < 0 {
		return errors.New("hourly rate cannot be negative")
	}
	if rate > 99999999.99 {
		return errors.New("hourly rate is too large")
	}
	return nil
}

func Phone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil
	}
	if len(phone) < 8 || len(phone) > 15 {
		return errors.New("invalid phone number")
	}
	return nil
}
