package player

import "context"

// Repository is read-only access to the player catalog. List preserves catalog order.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	Find(ctx context.Context, filter Filter) ([]Player, error)
	GetByID(ctx context.Context, playerID int) (Player, bool, error)
}
