package formation

import "context"

// Repository is the formation catalog.
type Repository interface {
	List(ctx context.Context) ([]Formation, error)
	GetByID(ctx context.Context, formationID string) (Formation, bool, error)
}

// LayoutFor returns the ordered slot list of a formation. An unknown id yields an empty layout and
// exists=false; err is only set when the catalog itself cannot be read.
func LayoutFor(ctx context.Context, repo Repository, formationID string) (layout []string, exists bool, err error) {
	if repo == nil {
		return []string{}, false, nil
	}

	item, exists, err := repo.GetByID(ctx, formationID)
	if err != nil {
		return []string{}, false, err
	}
	if !exists {
		return []string{}, false, nil
	}

	return append([]string{}, item.Slots...), true, nil
}
