package presence

import (
	"context"
)

type PresenceService interface {
	// Mean presence per weekday, seven rows Monday first
	MeanTimeByWeekday(ctx context.Context, userID int) ([]Row, error)
	// Total presence per weekday, prefixed with PresenceHeader
	PresenceByWeekday(ctx context.Context, userID int) ([]Row, error)
	// Average start and end per populated weekday, keyed by weekday index
	PresenceStartEnd(ctx context.Context, userID int) (map[string]StartEndSummary, error)
	// Users present both in the data source and the directory
	ListUsers(ctx context.Context) ([]User, error)
}
