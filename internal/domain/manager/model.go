package manager

import (
	"fmt"
	"strings"
)

// Manager is a catalog coach card that fills the single DT slot.
type Manager struct {
	ID           int
	Name         string
	Nationality  string
	ImageURL     string
	CardImageURL string
}

func (m Manager) Validate() error {
	if m.ID <= 0 {
		return fmt.Errorf("manager id must be greater than zero")
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("manager name is required: id=%d", m.ID)
	}

	return nil
}
