package postgres

import "github.com/riskibarqy/fut-draft/internal/domain/manager"

type managerTableModel struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Nationality string `db:"nationality"`
	Image       string `db:"image"`
	BackupImage string `db:"backup_image"`
}

func newManagerTableModel(m manager.Manager) managerTableModel {
	return managerTableModel{
		ID:          int64(m.ID),
		Name:        m.Name,
		Nationality: m.Nationality,
		Image:       m.ImageURL,
		BackupImage: m.CardImageURL,
	}
}

func (m managerTableModel) toDomain() manager.Manager {
	return manager.Manager{
		ID:           int(m.ID),
		Name:         m.Name,
		Nationality:  m.Nationality,
		ImageURL:     m.Image,
		CardImageURL: m.BackupImage,
	}
}
