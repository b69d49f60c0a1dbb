package subm

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

type InMemSubmRepo struct {
	mu    sync.RWMutex
	subms map[string]Submission
}

func NewInMemSubmRepo() *InMemSubmRepo {
	return &InMemSubmRepo{
		subms: make(map[string]Submission),
	}
}

func (r *InMemSubmRepo) Create(ctx context.Context, subm *Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subms[subm.ID]; ok {
		return fmt.Errorf("submission %s already exists", subm.ID)
	}
	r.subms[subm.ID] = clone(*subm)
	return nil
}

func (r *InMemSubmRepo) Get(ctx context.Context, id string) (*Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if subm, ok := r.subms[id]; ok {
		res := clone(subm)
		return &res, nil
	}
	return nil, nil
}

func (r *InMemSubmRepo) SaveResult(ctx context.Context, id string, res Result) (*Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	subm, ok := r.subms[id]
	if !ok {
		return nil, fmt.Errorf("submission %s not found", id)
	}
	if !subm.Pending {
		return nil, ErrAlreadyResolved
	}
	subm.Verdict = res.Verdict
	subm.VerdictList = slices.Clone(res.VerdictList)
	subm.PassedCases = res.PassedCases
	subm.Pending = res.Pending
	subm.Time = res.Time
	subm.Memory = res.Memory
	subm.Version++
	r.subms[id] = subm
	updated := clone(subm)
	return &updated, nil
}

func (r *InMemSubmRepo) ListByUser(ctx context.Context, uid string) ([]Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []Submission
	for _, subm := range r.subms {
		if subm.UID == uid {
			res = append(res, clone(subm))
		}
	}
	return res, nil
}

func clone(s Submission) Submission {
	s.Tokens = slices.Clone(s.Tokens)
	s.VerdictList = slices.Clone(s.VerdictList)
	return s
}
