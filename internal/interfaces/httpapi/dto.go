package httpapi

import (
	"time"

	"github.com/riskibarqy/fut-draft/internal/domain/draft"
	"github.com/riskibarqy/fut-draft/internal/domain/formation"
	"github.com/riskibarqy/fut-draft/internal/domain/manager"
	"github.com/riskibarqy/fut-draft/internal/domain/player"
	"github.com/riskibarqy/fut-draft/internal/usecase"
)

type selectFormationRequest struct {
	FormationID string `json:"formation_id" validate:"required,max=32"`
}

type selectCaptainRequest struct {
	PlayerID int `json:"player_id" validate:"required,gt=0"`
}

type pickRequest struct {
	CandidateID int `json:"candidate_id" validate:"required,gt=0"`
}

type playerDTO struct {
	ID                   int      `json:"id"`
	Name                 string   `json:"name"`
	RealName             string   `json:"real_name,omitempty"`
	Position             string   `json:"position"`
	PositionAlternatives []string `json:"position_alternatives"`
	Rating               int      `json:"rating"`
	Nationality          string   `json:"nationality"`
	Club                 string   `json:"club"`
	League               string   `json:"league"`
	ImageURL             string   `json:"image_url,omitempty"`
	CardImageURL         string   `json:"card_image_url,omitempty"`
}

type managerDTO struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Nationality  string `json:"nationality"`
	ImageURL     string `json:"image_url,omitempty"`
	CardImageURL string `json:"card_image_url,omitempty"`
}

type formationDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Slots       []string `json:"slots"`
}

type playerPageDTO struct {
	Items      []playerDTO `json:"items"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	Total      int         `json:"total"`
	TotalPages int         `json:"total_pages"`
}

type slotDTO struct {
	ID           string      `json:"id"`
	Kind         string      `json:"kind"`
	BasePosition string      `json:"base_position,omitempty"`
	Player       *playerDTO  `json:"player,omitempty"`
	Manager      *managerDTO `json:"manager,omitempty"`
}

type draftDTO struct {
	ID                string       `json:"id"`
	Phase             string       `json:"phase"`
	FormationID       string       `json:"formation_id,omitempty"`
	Layout            []string     `json:"layout"`
	Slots             []slotDTO    `json:"slots"`
	Captain           *playerDTO   `json:"captain,omitempty"`
	CaptainSlot       string       `json:"captain_slot,omitempty"`
	Manager           *managerDTO  `json:"manager,omitempty"`
	PickingSlot       string       `json:"picking_slot,omitempty"`
	PlayerCandidates  []playerDTO  `json:"player_candidates"`
	ManagerCandidates []managerDTO `json:"manager_candidates"`
	CaptainCandidates []playerDTO  `json:"captain_candidates"`
	Complete          bool         `json:"complete"`
	StartedAt         string       `json:"started_at"`
	CompletedAt       string       `json:"completed_at,omitempty"`
}

type highlightsDTO struct {
	Goalkeeper *playerDTO `json:"goalkeeper,omitempty"`
	Defender   *playerDTO `json:"defender,omitempty"`
	Midfielder *playerDTO `json:"midfielder,omitempty"`
	Attacker   *playerDTO `json:"attacker,omitempty"`
}

type summaryDTO struct {
	Rating     int           `json:"rating"`
	Chemistry  int           `json:"chemistry"`
	Stars      float64       `json:"stars"`
	Players    int           `json:"players"`
	Highlights highlightsDTO `json:"highlights"`
}

func playerToDTO(p player.Player) playerDTO {
	alternatives := p.AlternativePositions
	if alternatives == nil {
		alternatives = []string{}
	}
	return playerDTO{
		ID:                   p.ID,
		Name:                 p.Name,
		RealName:             p.RealName,
		Position:             p.Position,
		PositionAlternatives: alternatives,
		Rating:               p.Rating,
		Nationality:          p.Nationality,
		Club:                 p.Club,
		League:               p.League,
		ImageURL:             p.ImageURL,
		CardImageURL:         p.CardImageURL,
	}
}

func playerPtrToDTO(p *player.Player) *playerDTO {
	if p == nil {
		return nil
	}
	out := playerToDTO(*p)
	return &out
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}
	return out
}

func managerToDTO(m manager.Manager) managerDTO {
	return managerDTO{
		ID:           m.ID,
		Name:         m.Name,
		Nationality:  m.Nationality,
		ImageURL:     m.ImageURL,
		CardImageURL: m.CardImageURL,
	}
}

func managerPtrToDTO(m *manager.Manager) *managerDTO {
	if m == nil {
		return nil
	}
	out := managerToDTO(*m)
	return &out
}

func managersToDTO(items []manager.Manager) []managerDTO {
	out := make([]managerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, managerToDTO(item))
	}
	return out
}

func formationToDTO(f formation.Formation) formationDTO {
	return formationDTO{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		ImageURL:    f.ImageURL,
		Slots:       append([]string{}, f.Slots...),
	}
}

func formationsToDTO(items []formation.Formation) []formationDTO {
	out := make([]formationDTO, 0, len(items))
	for _, item := range items {
		out = append(out, formationToDTO(item))
	}
	return out
}

func playerPageToDTO(page usecase.PlayerPage) playerPageDTO {
	return playerPageDTO{
		Items:      playersToDTO(page.Items),
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
}

func draftToDTO(snap draft.Snapshot) draftDTO {
	slots := make([]slotDTO, 0, len(snap.Slots))
	for _, slot := range snap.Slots {
		slots = append(slots, slotDTO{
			ID:           slot.ID,
			Kind:         string(slot.Kind),
			BasePosition: slot.BasePosition,
			Player:       playerPtrToDTO(slot.Player),
			Manager:      managerPtrToDTO(slot.Manager),
		})
	}

	out := draftDTO{
		ID:                snap.ID,
		Phase:             string(snap.Phase),
		FormationID:       snap.FormationID,
		Layout:            append([]string{}, snap.Layout...),
		Slots:             slots,
		Captain:           playerPtrToDTO(snap.Captain),
		CaptainSlot:       snap.CaptainSlot,
		Manager:           managerPtrToDTO(snap.Manager),
		PickingSlot:       snap.PickingSlot,
		PlayerCandidates:  playersToDTO(snap.PlayerCandidates),
		ManagerCandidates: managersToDTO(snap.ManagerCandidates),
		CaptainCandidates: playersToDTO(snap.CaptainCandidates),
		Complete:          snap.Complete,
		StartedAt:         formatTime(snap.StartedAt),
	}
	if snap.Complete {
		out.CompletedAt = formatTime(snap.CompletedAt)
	}
	return out
}

func summaryToDTO(s draft.Summary) summaryDTO {
	return summaryDTO{
		Rating:    s.Rating,
		Chemistry: s.Chemistry,
		Stars:     s.Stars,
		Players:   s.Players,
		Highlights: highlightsDTO{
			Goalkeeper: playerPtrToDTO(s.Highlights.Goalkeeper),
			Defender:   playerPtrToDTO(s.Highlights.Defender),
			Midfielder: playerPtrToDTO(s.Highlights.Midfielder),
			Attacker:   playerPtrToDTO(s.Highlights.Attacker),
		},
	}
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
