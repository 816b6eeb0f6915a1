// Package uid allocates collision-checked unique identifiers. Account
// registration and message persistence share it, each supplying its own
// existence check, so the allocator never knows which namespace it is
// allocating for.
package uid

import (
	"context"

	"github.com/google/uuid"
)

// ExistsFunc reports whether a candidate identifier is already taken.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// Generate draws random v4 UUIDs until exists reports a free one and
// returns it in canonical 36-character form.
//
// There is no iteration cap: termination is probabilistic, resting on the
// 128-bit identifier space making a repeated collision astronomically
// unlikely against any realistic population. A storage error from the
// exists check aborts the loop.
func Generate(ctx context.Context, exists ExistsFunc) (string, error) {
	for {
		candidate := uuid.New().String()
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}
