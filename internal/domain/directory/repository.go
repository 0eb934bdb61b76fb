package directory

import (
	"context"
)

type Repository interface {
	// Load returns directory users keyed by id
	Load(ctx context.Context) (map[int]User, error)
}
