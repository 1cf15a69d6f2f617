package postgres

import (
	"github.com/lib/pq"
	"github.com/riskibarqy/fut-draft/internal/domain/player"
)

type playerTableModel struct {
	ID                   int64          `db:"id"`
	Name                 string         `db:"name"`
	RealName             string         `db:"real_name"`
	Position             string         `db:"position"`
	PositionAlternatives pq.StringArray `db:"position_alternatives"`
	Rating               int            `db:"rating"`
	Nationality          string         `db:"nationality"`
	Club                 string         `db:"club"`
	League               string         `db:"league"`
	Image                string         `db:"image"`
	BackupImage          string         `db:"backup_image"`
}

func newPlayerTableModel(p player.Player) playerTableModel {
	alternatives := pq.StringArray{}
	alternatives = append(alternatives, p.AlternativePositions...)
	return playerTableModel{
		ID:                   int64(p.ID),
		Name:                 p.Name,
		RealName:             p.RealName,
		Position:             p.Position,
		PositionAlternatives: alternatives,
		Rating:               p.Rating,
		Nationality:          p.Nationality,
		Club:                 p.Club,
		League:               p.League,
		Image:                p.ImageURL,
		BackupImage:          p.CardImageURL,
	}
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:                   int(m.ID),
		Name:                 m.Name,
		RealName:             m.RealName,
		Position:             m.Position,
		AlternativePositions: append([]string{}, m.PositionAlternatives...),
		Rating:               m.Rating,
		Nationality:          m.Nationality,
		Club:                 m.Club,
		League:               m.League,
		ImageURL:             m.Image,
		CardImageURL:         m.BackupImage,
	}
}
