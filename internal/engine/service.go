package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// StorageKey is the fixed key the session record lives under.
const StorageKey = "leveling-king-data"

// Store persists opaque snapshots by key. Get returns (nil, nil) when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Service binds the progression engine to a Store. Every mutating call loads
// the full record, derives the next one and writes it back in full.
type Service struct {
	store Store
	log   *zap.Logger
	clock func() time.Time
	loc   *time.Location
	key   string
}

type Option func(*Service)

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.clock = now
		}
	}
}

// WithLocation sets the time zone that defines calendar days.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		log:   zap.NewNop(),
		clock: time.Now,
		loc:   time.Local,
		key:   StorageKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) now() time.Time {
	return s.clock().In(s.loc)
}

// Load reads the session record, upgrading legacy records in place.
// A missing, corrupt or not-yet-onboarded record yields ErrNoSession.
func (s *Service) Load(ctx context.Context) (*State, error) {
	data, err := s.store.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrNoSession
	}

	st, repairs, err := UpgradeRecord(data, s.loc)
	if err != nil {
		s.log.Warn("stored record unreadable, treating as no session", zap.Error(err))
		return nil, ErrNoSession
	}
	if len(repairs) > 0 {
		if err := s.save(ctx, st); err != nil {
			return nil, err
		}
		s.log.Info("upgraded stored record", zap.Strings("repairs", repairs))
	}
	if !st.OnboardingCompleted {
		return nil, ErrNoSession
	}
	return &st, nil
}

func (s *Service) save(ctx context.Context, st State) error {
	st.SchemaVersion = CurrentSchemaVersion
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	return s.store.Put(ctx, s.key, data)
}

// HasSession reports whether an onboarded record exists.
func (s *Service) HasSession(ctx context.Context) (bool, error) {
	_, err := s.Load(ctx)
	if errors.Is(err, ErrNoSession) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Initialize creates and persists the record at the end of onboarding,
// replacing any previous one.
func (s *Service) Initialize(ctx context.Context, in OnboardInput) (*State, error) {
	st, err := NewState(in, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, st); err != nil {
		return nil, err
	}
	s.log.Info("journey started",
		zap.String("class", string(st.Character.Class)),
		zap.String("path", string(st.Path)),
		zap.Int("goals", len(st.Goals)))
	return &st, nil
}

// Today returns the goals due today and today's aura.
func (s *Service) Today(ctx context.Context) (*State, TodayView, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, TodayView{}, err
	}
	return st, Today(*st, s.now()), nil
}

// ToggleGoal flips completion of the goal referenced by id or unique id prefix.
// An unknown reference is a no-op: the stored record is returned unchanged and
// result.Found is false. Only goals due today can be completed; a completed goal
// can always be un-completed.
func (s *Service) ToggleGoal(ctx context.Context, ref string) (*State, *ToggleResult, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	id, err := ResolveGoalID(*st, ref)
	if err != nil {
		id = ref
	}

	now := s.now()
	if i := st.FindGoal(id); i >= 0 {
		g := st.Goals[i]
		if !g.Completed && !IsActiveOn(g, now.Weekday()) {
			return nil, nil, ValidationError{Field: "goal", Reason: fmt.Sprintf("%q is not due today", g.Title)}
		}
	}

	next, res := ToggleGoal(*st, id, now)
	if !res.Found {
		s.log.Debug("toggle on unknown goal ignored", zap.String("goal", ref))
		return st, &res, nil
	}
	if err := s.save(ctx, next); err != nil {
		return nil, nil, err
	}

	s.log.Debug("goal toggled",
		zap.String("goal", id),
		zap.Bool("completed", res.Completed),
		zap.Int("xp", res.XPGained),
		zap.Int("aura", res.AuraLevel))
	if res.LevelUp {
		s.log.Info("level up", zap.Int("from", res.LevelBefore), zap.Int("to", res.LevelAfter))
	}
	for _, a := range res.NewAchievements {
		s.log.Info("achievement unlocked", zap.String("id", a.ID), zap.String("rarity", string(a.Rarity)))
	}
	if res.DayCompleted {
		s.log.Info("day completed", zap.Int("streak", res.StreakAfter))
	}
	return &next, &res, nil
}

// AddGoal validates and appends a goal.
func (s *Service) AddGoal(ctx context.Context, in NewGoalInput) (*Goal, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	g, err := NewGoal(in, now)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, AddGoal(*st, g, now)); err != nil {
		return nil, err
	}
	return &g, nil
}

// RemoveGoal deletes the goal referenced by id or unique id prefix.
func (s *Service) RemoveGoal(ctx context.Context, ref string) (*Goal, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	id, err := ResolveGoalID(*st, ref)
	if err != nil {
		return nil, err
	}
	removed := st.Goals[st.FindGoal(id)]
	next, err := RemoveGoal(*st, id, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	return &removed, nil
}

// ChangeClass applies the respec penalty and switches class.
func (s *Service) ChangeClass(ctx context.Context, to Class) (*RespecResult, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	ch, res, err := ChangeClass(st.Character, to)
	if err != nil {
		return nil, err
	}
	next := st.Clone()
	next.Character = ch
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	s.log.Info("class changed",
		zap.String("from", string(res.From)),
		zap.String("to", string(res.To)),
		zap.Int("level_before", res.LevelBefore),
		zap.Int("level_after", res.LevelAfter))
	return &res, nil
}

// ChangePath switches the cosmetic path.
func (s *Service) ChangePath(ctx context.Context, p Path) error {
	if !p.IsValid() {
		return ValidationError{Field: "path", Reason: string(p)}
	}
	st, err := s.Load(ctx)
	if err != nil {
		return err
	}
	next := st.Clone()
	next.Path = p
	return s.save(ctx, next)
}

// Reset deletes the session record.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.key); err != nil {
		return err
	}
	s.log.Info("journey reset")
	return nil
}

// Now exposes the service clock in its configured location.
func (s *Service) Now() time.Time {
	return s.now()
}
