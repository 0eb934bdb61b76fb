package presence

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/cmlabs-hris/presence-analyzer/internal/domain/directory"
	"github.com/cmlabs-hris/presence-analyzer/internal/domain/presence"
	"golang.org/x/sync/errgroup"
)

type PresenceServiceImpl struct {
	presenceRepo  presence.PresenceRepository
	directoryRepo directory.Repository
}

func NewPresenceService(presenceRepo presence.PresenceRepository, directoryRepo directory.Repository) presence.PresenceService {
	return &PresenceServiceImpl{
		presenceRepo:  presenceRepo,
		directoryRepo: directoryRepo,
	}
}

// userRecords loads a fresh table and picks one user out of it
func (s *PresenceServiceImpl) userRecords(ctx context.Context, userID int) (*presence.UserRecords, error) {
	table, err := s.presenceRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load presence data: %w", err)
	}

	items, ok := table[userID]
	if !ok {
		slog.DebugContext(ctx, "User not found", "user_id", userID)
		return nil, presence.ErrUserNotFound
	}
	return items, nil
}

// MeanTimeByWeekday implements presence.PresenceService.
func (s *PresenceServiceImpl) MeanTimeByWeekday(ctx context.Context, userID int) ([]presence.Row, error) {
	items, err := s.userRecords(ctx, userID)
	if err != nil {
		return nil, err
	}
	return MeanByWeekday(items), nil
}

// PresenceByWeekday implements presence.PresenceService.
func (s *PresenceServiceImpl) PresenceByWeekday(ctx context.Context, userID int) ([]presence.Row, error) {
	items, err := s.userRecords(ctx, userID)
	if err != nil {
		return nil, err
	}
	return TotalByWeekday(items), nil
}

// PresenceStartEnd implements presence.PresenceService.
func (s *PresenceServiceImpl) PresenceStartEnd(ctx context.Context, userID int) (map[string]presence.StartEndSummary, error) {
	items, err := s.userRecords(ctx, userID)
	if err != nil {
		return nil, err
	}
	return AverageTimeByWeekday(GroupByWeekdayStartEnd(items)), nil
}

// ListUsers implements presence.PresenceService.
// The presence table and the directory are read in parallel.
func (s *PresenceServiceImpl) ListUsers(ctx context.Context) ([]presence.User, error) {
	var (
		table presence.Table
		users map[int]directory.User
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		table, err = s.presenceRepo.Load(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load presence data: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		users, err = s.directoryRepo.Load(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load user directory: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(table))
	for id := range table {
		if _, ok := users[id]; ok {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	result := make([]presence.User, 0, len(ids))
	for _, id := range ids {
		user := users[id]
		result = append(result, presence.User{
			UserID: id,
			Name:   user.Name,
			Avatar: user.Avatar,
		})
	}
	return result, nil
}
