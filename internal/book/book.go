// Package book implements the in-memory address book.
package book

import (
	"fmt"
	"strings"

	"github.com/smileynet/assistant/internal/contact"
)

// AddressBook maps normalized contact names to records.
// It is not safe for concurrent use; a session owns exactly one book.
type AddressBook struct {
	records map[string]*contact.Record
	order   []string // keys in first-insertion order
}

// New creates an empty AddressBook.
func New() *AddressBook {
	return &AddressBook{records: make(map[string]*contact.Record)}
}

// Add stores r under its own name, replacing any record already there.
// A replaced record keeps its listing position.
// Panics if r is nil (programmer error).
func (b *AddressBook) Add(r *contact.Record) {
	if r == nil {
		panic("book: Add called with nil record")
	}
	key := r.Name().String()
	if _, ok := b.records[key]; !ok {
		b.order = append(b.order, key)
	}
	b.records[key] = r
}

// Find looks up a record by name, ignoring case.
func (b *AddressBook) Find(name string) (*contact.Record, bool) {
	r, ok := b.records[strings.ToLower(name)]
	return r, ok
}

// Delete removes the record for name.
func (b *AddressBook) Delete(name string) error {
	key := strings.ToLower(name)
	if _, ok := b.records[key]; !ok {
		return &contact.Error{
			Kind: contact.ErrNotFound,
			Msg:  fmt.Sprintf("Contact '%s' not found.", name),
		}
	}
	delete(b.records, key)
	for i, k := range b.order {
		if k == key {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Records returns every record in the order it was first added.
func (b *AddressBook) Records() []*contact.Record {
	out := make([]*contact.Record, 0, len(b.order))
	for _, k := range b.order {
		out = append(out, b.records[k])
	}
	return out
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.records)
}
