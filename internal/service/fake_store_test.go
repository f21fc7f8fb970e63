package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"cleaning-scheduler-backend/internal/database/models"
	"cleaning-scheduler-backend/internal/repository"

	"gorm.io/gorm"
)

// memoryDB is an in-memory stand-in for Postgres. Its mutex only protects the
// maps; it does not serialize whole allocation decisions.
type memoryDB struct {
	mu       sync.Mutex
	nextID   uint
	teams    map[uint]*models.Team
	crew     map[uint]*models.CrewMember
	bookings map[uint]*models.Booking
	// readDelay widens the gap between reading conflicts and writing a booking
	readDelay time.Duration
	// staleLabelReads makes the next n GetByLabel calls miss, as if another
	// roster setup committed the label right after the lookup
	staleLabelReads int
	// onLock runs each time crew rows are locked, before the team re-read
	onLock func()
}

func newMemoryDB() *memoryDB {
	return &memoryDB{
		teams:    make(map[uint]*models.Team),
		crew:     make(map[uint]*models.CrewMember),
		bookings: make(map[uint]*models.Booking),
	}
}

func (db *memoryDB) id() uint {
	db.nextID++
	return db.nextID
}

type memoryStore struct{ db *memoryDB }

func (s *memoryStore) Repositories() repository.Repositories {
	return repository.Repositories{
		Teams:       &memoryTeams{db: s.db},
		CrewMembers: &memoryCrew{db: s.db},
		Bookings:    &memoryBookings{db: s.db},
	}
}

func (s *memoryStore) WithinTransaction(ctx context.Context, fn func(repos repository.Repositories) error) error {
	return fn(s.Repositories())
}

type memoryTeams struct{ db *memoryDB }

func (r *memoryTeams) Create(ctx context.Context, team *models.Team) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, t := range r.db.teams {
		if t.Label == team.Label {
			return gorm.ErrDuplicatedKey
		}
	}
	team.ID = r.db.id()
	for i := range team.CrewMembers {
		team.CrewMembers[i].ID = r.db.id()
		team.CrewMembers[i].TeamID = team.ID
		m := team.CrewMembers[i]
		r.db.crew[m.ID] = &m
	}
	t := *team
	r.db.teams[t.ID] = &t
	return nil
}

func (r *memoryTeams) GetByLabel(ctx context.Context, label string) (*models.Team, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.staleLabelReads > 0 {
		r.db.staleLabelReads--
		return nil, gorm.ErrRecordNotFound
	}
	for _, t := range r.db.teams {
		if t.Label == label {
			cp := *t
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryTeams) GetAllWithCrewMembers(ctx context.Context) ([]models.Team, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	teams := make([]models.Team, 0, len(r.db.teams))
	for _, t := range r.db.teams {
		cp := *t
		cp.CrewMembers = append([]models.CrewMember(nil), t.CrewMembers...)
		teams = append(teams, cp)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
	return teams, nil
}

func (r *memoryTeams) Count(ctx context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return int64(len(r.db.teams)), nil
}

type memoryCrew struct{ db *memoryDB }

func (r *memoryCrew) LockByTeamIDs(ctx context.Context, teamIDs []uint) ([]models.CrewMember, error) {
	if r.db.onLock != nil {
		r.db.onLock()
	}
	return nil, nil
}

type memoryBookings struct{ db *memoryDB }

func (r *memoryBookings) Create(ctx context.Context, booking *models.Booking) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	booking.ID = r.db.id()
	b := *booking
	r.db.bookings[b.ID] = &b
	return nil
}

func (r *memoryBookings) Update(ctx context.Context, booking *models.Booking) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	b, ok := r.db.bookings[booking.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	b.StartAt = booking.StartAt
	b.EndAt = booking.EndAt
	return nil
}

func (r *memoryBookings) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	b, ok := r.db.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *memoryBookings) FindConflicting(ctx context.Context, crewIDs []uint, windowStart, windowEnd time.Time) ([]models.Booking, error) {
	result := r.find(crewIDs, windowStart, windowEnd)
	if r.db.readDelay > 0 {
		time.Sleep(r.db.readDelay)
	}
	return result, nil
}

func (r *memoryBookings) FindForCrewOnDay(ctx context.Context, crewIDs []uint, dayStart, dayEnd time.Time) ([]models.Booking, error) {
	return r.find(crewIDs, dayStart, dayEnd), nil
}

func (r *memoryBookings) find(crewIDs []uint, from, to time.Time) []models.Booking {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	wanted := make(map[uint]bool, len(crewIDs))
	for _, id := range crewIDs {
		wanted[id] = true
	}

	result := make([]models.Booking, 0)
	for _, b := range r.db.bookings {
		if !(b.StartAt.Before(to) && b.EndAt.After(from)) {
			continue
		}
		for _, m := range b.CrewMembers {
			if wanted[m.ID] {
				result = append(result, *b)
				break
			}
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartAt.Before(result[j].StartAt) })
	return result
}
