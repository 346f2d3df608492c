package plan

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/ohautala/fitplan/internal/errors"
	"github.com/ohautala/fitplan/internal/sqlite"
)

// Service handles the business logic for profile intake and plan generation.
type Service struct {
	repo   *repository
	logger *slog.Logger
	newRng func() *rand.Rand
}

// NewService creates a new plan service. Meal assembly draws randomness from
// a crypto-seeded source.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		repo:   newRepository(db, logger),
		logger: logger,
		newRng: func() *rand.Rand {
			return rand.New(rand.NewSource(cryptoSeed())) //nolint:gosec // plan variety, not security.
		},
	}
}

// NewServiceWithSeed creates a service whose meal assembly is deterministic.
// Intended for tests.
func NewServiceWithSeed(db *sqlite.Database, logger *slog.Logger, seed int64) *Service {
	svc := NewService(db, logger)
	svc.newRng = func() *rand.Rand {
		return rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic by design.
	}
	return svc
}

func cryptoSeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// crypto/rand.Read does not fail on supported platforms.
		panic(fmt.Sprintf("read crypto seed: %v", err))
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// CreateWithPlans validates and stores a profile, then generates and attaches
// its plans.
//
// Plan generation failure degrades gracefully: the error is logged and the
// bare record is returned without plans, so the submission itself never fails
// for a valid profile.
func (s *Service) CreateWithPlans(ctx context.Context, p Profile) (User, error) {
	if err := p.Validate(); err != nil {
		return User{}, err
	}

	user, err := s.repo.Create(ctx, p)
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}

	diet, exercise, err := generatePlans(ctx, user.Profile, s.newRng())
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "plan generation failed, returning bare record",
			slog.Int("user_id", user.ID), errors.SlogError(err))
		return user, nil
	}

	updated, err := s.repo.AttachPlans(ctx, user.ID, diet, exercise)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "attaching plans failed, returning bare record",
			slog.Int("user_id", user.ID), errors.SlogError(err))
		return user, nil
	}

	return updated, nil
}

// Get retrieves a record by identity. Returns ErrNotFound when absent.
func (s *Service) Get(ctx context.Context, id int) (User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// Regenerate rebuilds both plans for an existing record. Unlike the initial
// submission path, failures surface to the caller.
func (s *Service) Regenerate(ctx context.Context, id int) (User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return User{}, fmt.Errorf("get user: %w", err)
	}

	diet, exercise, err := generatePlans(ctx, user.Profile, s.newRng())
	if err != nil {
		return User{}, fmt.Errorf("regenerate plans for user %d: %w", id, err)
	}

	updated, err := s.repo.AttachPlans(ctx, id, diet, exercise)
	if err != nil {
		return User{}, fmt.Errorf("attach plans for user %d: %w", id, err)
	}

	return updated, nil
}

// AttachPlans stores caller-provided plans on an existing record.
func (s *Service) AttachPlans(ctx context.Context, id int, diet DietPlan, exercise ExercisePlan) (User, error) {
	updated, err := s.repo.AttachPlans(ctx, id, diet, exercise)
	if err != nil {
		return User{}, fmt.Errorf("attach plans for user %d: %w", id, err)
	}
	return updated, nil
}
