package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store hands out repositories bound to the root connection or to a transaction
type Store struct {
	db *gorm.DB
}

// NewStore creates a new store
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func newRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Teams:       NewTeamRepository(db),
		CrewMembers: NewCrewMemberRepository(db),
		Bookings:    NewBookingRepository(db),
	}
}

// Repositories returns repositories outside of any transaction
func (s *Store) Repositories() Repositories {
	return newRepositories(s.db)
}

// WithinTransaction runs fn with repositories bound to a single transaction.
// The transaction is committed when fn returns nil and rolled back otherwise.
func (s *Store) WithinTransaction(ctx context.Context, fn func(repos Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newRepositories(tx))
	})
}
