package mcpapi

import (
	"time"

	"github.com/riskibarqy/fut-draft/internal/domain/draft"
	"github.com/riskibarqy/fut-draft/internal/domain/formation"
	"github.com/riskibarqy/fut-draft/internal/domain/manager"
	"github.com/riskibarqy/fut-draft/internal/domain/player"
)

// Views are compact on purpose: tool output is read by a model, not rendered as cards.

type playerView struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Position     string   `json:"position"`
	Alternatives []string `json:"alternatives,omitempty"`
	Rating       int      `json:"rating"`
	Club         string   `json:"club"`
	Nationality  string   `json:"nationality,omitempty"`
}

type managerView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality,omitempty"`
}

type formationView struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Slots []string `json:"slots"`
}

type slotView struct {
	ID      string       `json:"id"`
	Kind    string       `json:"kind"`
	Player  *playerView  `json:"player,omitempty"`
	Manager *managerView `json:"manager,omitempty"`
}

type stateView struct {
	ID                string        `json:"id"`
	Phase             string        `json:"phase"`
	FormationID       string        `json:"formation_id,omitempty"`
	Captain           *playerView   `json:"captain,omitempty"`
	CaptainSlot       string        `json:"captain_slot,omitempty"`
	Slots             []slotView    `json:"slots"`
	OpenSlots         []string      `json:"open_slots"`
	PickingSlot       string        `json:"picking_slot,omitempty"`
	PlayerCandidates  []playerView  `json:"player_candidates,omitempty"`
	ManagerCandidates []managerView `json:"manager_candidates,omitempty"`
	Complete          bool          `json:"complete"`
	CompletedAt       string        `json:"completed_at,omitempty"`
}

type summaryView struct {
	Rating     int                    `json:"rating"`
	Chemistry  int                    `json:"chemistry"`
	Stars      float64                `json:"stars"`
	Players    int                    `json:"players"`
	Highlights map[string]*playerView `json:"highlights"`
}

func toPlayerView(p player.Player) playerView {
	return playerView{
		ID:           p.ID,
		Name:         p.Name,
		Position:     p.Position,
		Alternatives: p.AlternativePositions,
		Rating:       p.Rating,
		Club:         p.Club,
		Nationality:  p.Nationality,
	}
}

func toPlayerViewPtr(p *player.Player) *playerView {
	if p == nil {
		return nil
	}
	v := toPlayerView(*p)
	return &v
}

func toPlayerViews(items []player.Player) []playerView {
	out := make([]playerView, 0, len(items))
	for _, item := range items {
		out = append(out, toPlayerView(item))
	}
	return out
}

func toManagerViewPtr(m *manager.Manager) *managerView {
	if m == nil {
		return nil
	}
	return &managerView{ID: m.ID, Name: m.Name, Nationality: m.Nationality}
}

func toManagerViews(items []manager.Manager) []managerView {
	out := make([]managerView, 0, len(items))
	for _, item := range items {
		out = append(out, managerView{ID: item.ID, Name: item.Name, Nationality: item.Nationality})
	}
	return out
}

func toFormationViews(items []formation.Formation) []formationView {
	out := make([]formationView, 0, len(items))
	for _, item := range items {
		out = append(out, formationView{ID: item.ID, Name: item.Name, Slots: item.Slots})
	}
	return out
}

func toStateView(snap draft.Snapshot) stateView {
	view := stateView{
		ID:                snap.ID,
		Phase:             string(snap.Phase),
		FormationID:       snap.FormationID,
		Captain:           toPlayerViewPtr(snap.Captain),
		CaptainSlot:       snap.CaptainSlot,
		Slots:             make([]slotView, 0, len(snap.Slots)),
		OpenSlots:         []string{},
		PickingSlot:       snap.PickingSlot,
		PlayerCandidates:  toPlayerViews(snap.PlayerCandidates),
		ManagerCandidates: toManagerViews(snap.ManagerCandidates),
		Complete:          snap.Complete,
	}
	for _, slot := range snap.Slots {
		view.Slots = append(view.Slots, slotView{
			ID:      slot.ID,
			Kind:    string(slot.Kind),
			Player:  toPlayerViewPtr(slot.Player),
			Manager: toManagerViewPtr(slot.Manager),
		})
		if slot.Player == nil && slot.Manager == nil {
			view.OpenSlots = append(view.OpenSlots, slot.ID)
		}
	}
	if snap.Complete {
		view.CompletedAt = snap.CompletedAt.UTC().Format(time.RFC3339)
	}
	return view
}

func toSummaryView(s draft.Summary) summaryView {
	highlights := map[string]*playerView{}
	for key, p := range map[string]*player.Player{
		"goalkeeper": s.Highlights.Goalkeeper,
		"defender":   s.Highlights.Defender,
		"midfielder": s.Highlights.Midfielder,
		"attacker":   s.Highlights.Attacker,
	} {
		if p != nil {
			highlights[key] = toPlayerViewPtr(p)
		}
	}
	return summaryView{
		Rating:     s.Rating,
		Chemistry:  s.Chemistry,
		Stars:      s.Stars,
		Players:    s.Players,
		Highlights: highlights,
	}
}
