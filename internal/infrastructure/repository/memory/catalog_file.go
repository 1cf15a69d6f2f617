package memory

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"github.com/riskibarqy/fut-draft/internal/domain/formation"
	"github.com/riskibarqy/fut-draft/internal/domain/manager"
	"github.com/riskibarqy/fut-draft/internal/domain/player"
)

// Catalog is the full read-only data set a draft runs against.
type Catalog struct {
	Players    []player.Player
	Managers   []manager.Manager
	Formations []formation.Formation
}

// SeedCatalog is the built-in catalog.
func SeedCatalog() Catalog {
	return Catalog{
		Players:    SeedPlayers(),
		Managers:   SeedManagers(),
		Formations: SeedFormations(),
	}
}

type catalogFile struct {
	Players    []playerRecord    `json:"players"`
	Managers   []managerRecord   `json:"managers"`
	Formations []formationRecord `json:"formations"`
}

type playerRecord struct {
	ID                   int      `json:"id"`
	Name                 string   `json:"name"`
	RealName             string   `json:"real_name"`
	Position             string   `json:"position"`
	PositionAlternatives []string `json:"position_alternatives"`
	Rating               int      `json:"rating"`
	Nationality          string   `json:"nationality"`
	Club                 string   `json:"club"`
	League               string   `json:"league"`
	Image                string   `json:"image"`
	BackupImage          string   `json:"backup_image"`
}

type managerRecord struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	Image       string `json:"image"`
	BackupImage string `json:"backup_image"`
}

type formationRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Slots       []string `json:"slots"`
}

// LoadCatalogFile reads a JSON catalog and validates every record.
func LoadCatalogFile(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog file %s: %w", path, err)
	}
	return ParseCatalog(raw)
}

func ParseCatalog(raw []byte) (Catalog, error) {
	var file catalogFile
	if err := sonic.Unmarshal(raw, &file); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	out := Catalog{
		Players:    make([]player.Player, 0, len(file.Players)),
		Managers:   make([]manager.Manager, 0, len(file.Managers)),
		Formations: make([]formation.Formation, 0, len(file.Formations)),
	}
	for _, rec := range file.Players {
		item := player.Player{
			ID:                   rec.ID,
			Name:                 rec.Name,
			RealName:             rec.RealName,
			Position:             rec.Position,
			AlternativePositions: rec.PositionAlternatives,
			Rating:               rec.Rating,
			Nationality:          rec.Nationality,
			Club:                 rec.Club,
			League:               rec.League,
			ImageURL:             rec.Image,
			CardImageURL:         rec.BackupImage,
		}
		if err := item.Validate(); err != nil {
			return Catalog{}, fmt.Errorf("invalid player record: %w", err)
		}
		out.Players = append(out.Players, item)
	}
	for _, rec := range file.Managers {
		item := manager.Manager{
			ID:           rec.ID,
			Name:         rec.Name,
			Nationality:  rec.Nationality,
			ImageURL:     rec.Image,
			CardImageURL: rec.BackupImage,
		}
		if err := item.Validate(); err != nil {
			return Catalog{}, fmt.Errorf("invalid manager record: %w", err)
		}
		out.Managers = append(out.Managers, item)
	}
	for _, rec := range file.Formations {
		item := formation.Formation{
			ID:          rec.ID,
			Name:        rec.Name,
			Description: rec.Description,
			ImageURL:    rec.Image,
			Slots:       rec.Slots,
		}
		if err := item.Validate(); err != nil {
			return Catalog{}, fmt.Errorf("invalid formation record: %w", err)
		}
		out.Formations = append(out.Formations, item)
	}

	return out, nil
}
