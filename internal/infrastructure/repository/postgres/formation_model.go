package postgres

import (
	"github.com/lib/pq"
	"github.com/riskibarqy/fut-draft/internal/domain/formation"
)

type formationTableModel struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	Image       string         `db:"image"`
	Slots       pq.StringArray `db:"slots"`
}

func newFormationTableModel(f formation.Formation) formationTableModel {
	slots := pq.StringArray{}
	slots = append(slots, f.Slots...)
	return formationTableModel{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Image:       f.ImageURL,
		Slots:       slots,
	}
}

func (m formationTableModel) toDomain() formation.Formation {
	return formation.Formation{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		ImageURL:    m.Image,
		Slots:       append([]string{}, m.Slots...),
	}
}
