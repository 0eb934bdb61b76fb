package presence

import (
	"context"
)

type PresenceRepository interface {
	// Load reads the whole presence source into a new Table
	Load(ctx context.Context) (Table, error)
}
