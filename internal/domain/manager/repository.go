package manager

import "context"

// Repository is read-only access to the manager catalog.
type Repository interface {
	List(ctx context.Context) ([]Manager, error)
	GetByID(ctx context.Context, managerID int) (Manager, bool, error)
}
