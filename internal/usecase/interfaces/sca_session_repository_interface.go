package interfaces

import (
	"context"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
)

// IScaSessionRepository keeps SCA sessions across the browser redirect.
// Take is get-and-delete: a session can complete phase 2 once. Get and Take
// return a zero ScaSession when the id is unknown or expired.
//
// Claim marks a session initiated in one atomic step and reports whether this
// caller won it; a session can run phase 1 once.
type IScaSessionRepository interface {
	Save(ctx context.Context, s entities.ScaSession) error
	Get(ctx context.Context, id string) (entities.ScaSession, error)
	Claim(ctx context.Context, id string) (entities.ScaSession, bool, error)
	Take(ctx context.Context, id string) (entities.ScaSession, error)
}
