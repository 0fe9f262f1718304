// internal/matching/service.go
// Session-scoped selections and candidate ranking

package matching

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/aviato-app/aviato-backend/internal/users"
)

var ErrTooManySelections = errors.New("selection limit reached")

type Service interface {
	Interests() []string

	GetSelections(userID string) []string
	SetSelections(userID string, selections []string) ([]string, error)
	AddSelection(userID, item string) ([]string, error)
	RemoveSelection(userID, item string) []string
	ClearSelections(userID string)

	// FindMatches annotates every known user with a match percentage
	// against the session selections and ranks them descending; ties
	// keep directory order.
	FindMatches(ctx context.Context, userID string) ([]*users.MatchedUser, error)
}

type service struct {
	repo          users.Repository
	maxSelections int

	mu         sync.RWMutex
	selections map[string][]string
}

func NewService(repo users.Repository, maxSelections int) Service {
	return &service{
		repo:          repo,
		maxSelections: maxSelections,
		selections:    make(map[string][]string),
	}
}

func (s *service) Interests() []string {
	return append([]string(nil), users.Interests...)
}

func (s *service) GetSelections(userID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.selections[userID]...)
}

func (s *service) SetSelections(userID string, selections []string) ([]string, error) {
	if len(selections) > s.maxSelections {
		return nil, ErrTooManySelections
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selections[userID] = append([]string(nil), selections...)
	return append([]string(nil), s.selections[userID]...), nil
}

func (s *service) AddSelection(userID, item string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.selections[userID]
	for _, existing := range current {
		if existing == item {
			return append([]string(nil), current...), nil
		}
	}

	if len(current) >= s.maxSelections {
		return nil, ErrTooManySelections
	}

	s.selections[userID] = append(current, item)
	return append([]string(nil), s.selections[userID]...), nil
}

func (s *service) RemoveSelection(userID, item string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.selections[userID]
	filtered := current[:0]
	for _, existing := range current {
		if existing != item {
			filtered = append(filtered, existing)
		}
	}
	s.selections[userID] = filtered
	return append([]string(nil), filtered...)
}

func (s *service) ClearSelections(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.selections, userID)
}

func (s *service) FindMatches(ctx context.Context, userID string) ([]*users.MatchedUser, error) {
	query := s.GetSelections(userID)

	candidates, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*users.MatchedUser, 0, len(candidates))
	for _, candidate := range candidates {
		percentage := Score(query, candidate.Selections)
		recordMatchPercentage(percentage)
		matched = append(matched, &users.MatchedUser{
			User:            candidate,
			MatchPercentage: percentage,
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].MatchPercentage > matched[j].MatchPercentage
	})

	recordSearch()
	return matched, nil
}
