package contact

import (
	"fmt"
	"strings"
)

// Record is a single contact: a fixed name and an ordered list of phones.
// Duplicate phones are allowed.
type Record struct {
	name   Name
	phones []Phone
}

// NewRecord creates an empty Record for name.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the record's normalized name.
func (r *Record) Name() Name {
	return r.name
}

// AddPhone validates phone and appends it.
func (r *Record) AddPhone(phone string) error {
	p, err := NewPhone(phone)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// AddPhones validates every phone before appending any of them, so a single
// bad number leaves the record unchanged.
func (r *Record) AddPhones(phones ...string) error {
	valid := make([]Phone, 0, len(phones))
	for _, phone := range phones {
		p, err := NewPhone(phone)
		if err != nil {
			return err
		}
		valid = append(valid, p)
	}
	r.phones = append(r.phones, valid...)
	return nil
}

// RemovePhone removes the first phone equal to phone.
func (r *Record) RemovePhone(phone string) error {
	i := r.index(phone)
	if i < 0 {
		return notFound("Phone number not found")
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return nil
}

// EditPhone replaces the first phone equal to oldPhone with newPhone, keeping
// its position. newPhone must be a valid phone number.
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	i := r.index(oldPhone)
	if i < 0 {
		return notFound("Phone number not found")
	}
	p, err := NewPhone(newPhone)
	if err != nil {
		return err
	}
	r.phones[i] = p
	return nil
}

// FindPhone returns phone if the record has it.
func (r *Record) FindPhone(phone string) (string, error) {
	if r.index(phone) < 0 {
		return "", notFound("Phone number not found")
	}
	return phone, nil
}

// Phones returns all phone numbers in insertion order.
func (r *Record) Phones() []string {
	out := make([]string, len(r.phones))
	for i, p := range r.phones {
		out[i] = p.value
	}
	return out
}

// String renders the record as "Contact name: <name>, phone(s): <list>".
func (r *Record) String() string {
	word := "phones"
	if len(r.phones) == 1 {
		word = "phone"
	}
	return fmt.Sprintf("Contact name: %s, %s: %s", r.name, word, strings.Join(r.Phones(), ", "))
}

func (r *Record) index(phone string) int {
	for i, p := range r.phones {
		if p.value == phone {
			return i
		}
	}
	return -1
}
