package user

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

type InMemUserRepo struct {
	mu    sync.Mutex
	users map[string]userRow
}

func NewInMemUserRepo() *InMemUserRepo {
	return &InMemUserRepo{users: make(map[string]userRow)}
}

func (r *InMemUserRepo) Get(ctx context.Context, uid string) (*userRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if row, ok := r.users[uid]; ok {
		return &row, nil
	}
	return nil, nil
}

func (r *InMemUserRepo) GetByEmail(ctx context.Context, email string) (*userRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.users {
		if row.Email == email {
			return &row, nil
		}
	}
	return nil, nil
}

func (r *InMemUserRepo) Create(ctx context.Context, row *userRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[row.UID]; ok {
		return errUserExists
	}
	r.users[row.UID] = *row
	return nil
}

func (r *InMemUserRepo) SetField(ctx context.Context, uid string, field string, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.users[uid]
	if !ok {
		return fmt.Errorf("user %s not found", uid)
	}
	switch field {
	case FieldEmail:
		row.Email = value
	case FieldUsername:
		row.Username = value
	case FieldName:
		row.Name = value
	case FieldSchool:
		row.School = value
	default:
		return fmt.Errorf("unknown field %s", field)
	}
	r.users[uid] = row
	return nil
}

func (r *InMemUserRepo) AddToStats(ctx context.Context, uid string, problemID string, stats ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.users[uid]
	if !ok {
		return fmt.Errorf("user %s not found", uid)
	}
	add := func(set []string) []string {
		if slices.Contains(set, problemID) {
			return set
		}
		return append(slices.Clone(set), problemID)
	}
	for _, stat := range stats {
		switch stat {
		case StatAttempted:
			row.Attempted = add(row.Attempted)
		case StatAccepted:
			row.Accepted = add(row.Accepted)
		case StatWrong:
			row.Wrong = add(row.Wrong)
		case StatTLE:
			row.TLE = add(row.TLE)
		case StatRTE:
			row.RTE = add(row.RTE)
		default:
			return fmt.Errorf("unknown stat %s", stat)
		}
	}
	r.users[uid] = row
	return nil
}
