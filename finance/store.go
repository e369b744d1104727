package finance

import "github.com/google/uuid"

// Store owns the ordered collection of transactions. Insertion order is
// preserved and all contained ids are unique. The store is mutated only
// through its own methods and assumes a single logical owner; it does no
// locking of its own.
type Store struct {
	transactions []*Transaction
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends a transaction and returns its id. A transaction without an
// id, or with an id that already exists in the store, is assigned a fresh
// one so the uniqueness invariant always holds. Add never fails; all
// validation happened at construction.
func (s *Store) Add(t *Transaction) string {
	if t.id == "" || s.Get(t.id) != nil {
		t.id = uuid.NewString()
	}
	s.transactions = append(s.transactions, t)
	return t.id
}

// Remove deletes the transaction with the given id. It reports whether a
// transaction was removed; a missing id is an expected no-op, not an error.
func (s *Store) Remove(id string) bool {
	for i, t := range s.transactions {
		if t.id == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the transaction with the given id, or nil if absent.
func (s *Store) Get(id string) *Transaction {
	for _, t := range s.transactions {
		if t.id == id {
			return t
		}
	}
	return nil
}

// All returns the transactions in insertion order. The returned slice is a
// read-only view; callers must not mutate it.
func (s *Store) All() []*Transaction {
	return s.transactions
}

// Filter returns the transactions matching keep, preserving insertion
// order.
func (s *Store) Filter(keep func(*Transaction) bool) []*Transaction {
	var matched []*Transaction
	for _, t := range s.transactions {
		if keep(t) {
			matched = append(matched, t)
		}
	}
	return matched
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	return len(s.transactions)
}
