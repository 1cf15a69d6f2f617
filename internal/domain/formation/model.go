package formation

import (
	"fmt"
	"strings"
)

// Formation is a starting XI shape. Slots is the ordered layout, e.g. GK, LB, CB1, CB2, ...
type Formation struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	Slots       []string
}

func (f Formation) Validate() error {
	if strings.TrimSpace(f.ID) == "" {
		return fmt.Errorf("formation id is required")
	}
	if len(f.Slots) == 0 {
		return fmt.Errorf("formation layout is empty: id=%s", f.ID)
	}

	seen := make(map[string]struct{}, len(f.Slots))
	for _, slot := range f.Slots {
		if strings.TrimSpace(slot) == "" {
			return fmt.Errorf("formation slot cannot be empty: id=%s", f.ID)
		}
		if _, exists := seen[slot]; exists {
			return fmt.Errorf("duplicate slot %s in formation %s", slot, f.ID)
		}
		seen[slot] = struct{}{}
	}

	return nil
}
