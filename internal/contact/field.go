// Package contact holds the validated contact model: names, phone numbers
// and the Record that ties them together.
package contact

import (
	"regexp"
	"strings"
	"unicode"
)

// PhoneDigits is the exact number of digits a phone number must have.
const PhoneDigits = 10

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Name is a lower-cased, letters-only contact name. The zero value is not valid;
// use NewName.
type Name struct {
	value string
}

// NewName normalizes raw to lower case and rejects empty input or input
// containing anything other than letters.
func NewName(raw string) (Name, error) {
	v := strings.ToLower(raw)
	if v == "" {
		return Name{}, invalidFormat("Name must contain only alphabetic characters.")
	}
	for _, r := range v {
		if !unicode.IsLetter(r) {
			return Name{}, invalidFormat("Name must contain only alphabetic characters.")
		}
	}
	return Name{value: v}, nil
}

func (n Name) String() string { return n.value }

// Phone is a phone number of exactly PhoneDigits ASCII digits.
type Phone struct {
	value string
}

// NewPhone validates raw as a phone number.
func NewPhone(raw string) (Phone, error) {
	if !phonePattern.MatchString(raw) {
		return Phone{}, invalidFormat("Phone number must contain 10 digits.")
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string { return p.value }
