package members

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/gymkeeper/internal/common"
)

// Store is the ordered, in-memory collection of members. Every mutation is
// written through to the Repository before it becomes visible; if the write
// fails the store is left unchanged.
//
// Store is not safe for concurrent use.
type Store struct {
	repo    Repository
	members []Member
}

// NewStore loads the current member list from repo.
func NewStore(ctx context.Context, repo Repository) (*Store, error) {
	loaded, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}
	return &Store{repo: repo, members: loaded}, nil
}

// NextID returns the identifier the next Add will assign: one more than the
// highest identifier in the store, or 1 when it is empty.
func (s *Store) NextID() int {
	maxID := 0
	for _, m := range s.members {
		maxID = max(maxID, m.ID)
	}
	return maxID + 1
}

func (s *Store) Len() int { return len(s.members) }

// List returns a copy of all members in insertion order.
func (s *Store) List() []Member {
	return slices.Clone(s.members)
}

// Get returns the member with the given id or common.ErrorNotFound.
func (s *Store) Get(id int) (Member, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Member{}, fmt.Errorf("member %d: %w", id, common.ErrorNotFound)
	}
	return s.members[i], nil
}

// Add registers a new member and returns it with its assigned ID.
func (s *Store) Add(ctx context.Context, name string, tier Tier, height, weight float64) (Member, error) {
	if err := ValidateName(name); err != nil {
		return Member{}, err
	}
	tier, err := ParseTier(string(tier))
	if err != nil {
		return Member{}, err
	}
	if err := validateMeasurements(height, weight); err != nil {
		return Member{}, err
	}

	m := Member{
		ID:     s.NextID(),
		Name:   name,
		Tier:   tier,
		Height: height,
		Weight: weight,
	}

	next := append(slices.Clone(s.members), m)
	if err := s.commit(ctx, next); err != nil {
		return Member{}, err
	}
	return m, nil
}

// Remove deletes the member with the given id. It reports false, and does
// not touch the repository, when no such member exists.
func (s *Store) Remove(ctx context.Context, id int) (bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	next := slices.Delete(slices.Clone(s.members), i, i+1)
	if err := s.commit(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// SetWorkoutPlan assigns a goal to a member. An unknown id is reported as
// common.ErrorNotFound before the goal is looked at; the goal must be one of
// Goals.
func (s *Store) SetWorkoutPlan(ctx context.Context, id int, goal Goal) error {
	if s.indexOf(id) < 0 {
		return fmt.Errorf("member %d: %w", id, common.ErrorNotFound)
	}
	g, err := ParseGoal(string(goal))
	if err != nil {
		return err
	}
	return s.update(ctx, id, func(m *Member) {
		m.Plan = g
	})
}

// SetMeasurements records a member's height (m) and weight (kg).
func (s *Store) SetMeasurements(ctx context.Context, id int, height, weight float64) error {
	if err := validateMeasurements(height, weight); err != nil {
		return err
	}
	return s.update(ctx, id, func(m *Member) {
		m.Height = height
		m.Weight = weight
	})
}

// ComputeBMI returns the member's BMI, common.ErrorNotFound for unknown ids,
// or ErrMeasurementsUnset when height or weight is missing.
func (s *Store) ComputeBMI(id int) (BMI, error) {
	m, err := s.Get(id)
	if err != nil {
		return BMI{}, err
	}
	return CalculateBMI(m.Height, m.Weight)
}

func (s *Store) update(ctx context.Context, id int, fn func(*Member)) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("member %d: %w", id, common.ErrorNotFound)
	}
	next := slices.Clone(s.members)
	fn(&next[i])
	return s.commit(ctx, next)
}

func (s *Store) commit(ctx context.Context, next []Member) error {
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("save members: %w", err)
	}
	s.members = next
	return nil
}

func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.members, func(m Member) bool { return m.ID == id })
}

func validateMeasurements(height, weight float64) error {
	if err := ValidateHeight(height); err != nil {
		return err
	}
	if err := ValidateWeight(weight); err != nil {
		return err
	}
	return nil
}
