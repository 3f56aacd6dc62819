package validate

import (
	"errors"
	"regexp"
	"time"
	"unicode"
)

// MinAge is the youngest account holder the registration form accepts.
const MinAge = 15

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
)

func Email(email string) error {
	if !emailRe.MatchString(email) {
		return errors.New("Invalid email format.")
	}
	return nil
}

// Password requires at least 8 characters with an upper-case letter,
// a lower-case letter and a digit.
func Password(password string) error {
	if len(password) < 8 {
		return errors.New("Password must be at least 8 characters long.")
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return errors.New("Password must contain an upper-case letter, a lower-case letter and a digit.")
	}
	return nil
}

// Phone accepts an empty value; a present phone must be exactly 10 digits.
func Phone(phone string) error {
	if phone == "" {
		return nil
	}
	if !phoneRe.MatchString(phone) {
		return errors.New("Phone number must be exactly 10 digits.")
	}
	return nil
}

// DOB parses a YYYY-MM-DD date of birth and enforces the minimum age.
func DOB(dob string) error {
	born, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return errors.New("Invalid date of birth.")
	}
	if ageAt(born, time.Now()) < MinAge {
		return errors.New("You must be at least 15 years old.")
	}
	return nil
}

func ageAt(born, now time.Time) int {
	years := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		years--
	}
	return years
}
