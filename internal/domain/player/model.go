package player

import (
	"fmt"
	"slices"
	"strings"
)

const (
	MinRating = 1
	MaxRating = 99
)

// Player is one catalog card that can be drafted into a slot.
type Player struct {
	ID                   int
	Name                 string
	RealName             string
	Position             string
	AlternativePositions []string
	Rating               int
	Nationality          string
	Club                 string
	League               string
	ImageURL             string
	CardImageURL         string
}

// PlaysPosition reports whether code is the primary position or one of the alternatives.
func (p Player) PlaysPosition(code string) bool {
	if code == "" {
		return false
	}
	if p.Position == code {
		return true
	}
	return slices.Contains(p.AlternativePositions, code)
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be greater than zero")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required: id=%d", p.ID)
	}
	if strings.TrimSpace(p.Position) == "" {
		return fmt.Errorf("player position is required: id=%d", p.ID)
	}
	if p.Rating < MinRating || p.Rating > MaxRating {
		return fmt.Errorf("player rating must be between %d and %d: id=%d rating=%d", MinRating, MaxRating, p.ID, p.Rating)
	}

	return nil
}

// Filter narrows catalog queries. Empty fields match everything.
type Filter struct {
	Position    string
	Club        string
	League      string
	Nationality string
}

func (f Filter) Matches(p Player) bool {
	if f.Position != "" && !p.PlaysPosition(f.Position) {
		return false
	}
	if f.Club != "" && !strings.EqualFold(f.Club, p.Club) {
		return false
	}
	if f.League != "" && !strings.EqualFold(f.League, p.League) {
		return false
	}
	if f.Nationality != "" && !strings.EqualFold(f.Nationality, p.Nationality) {
		return false
	}

	return true
}

func (f Filter) IsZero() bool {
	return f == Filter{}
}
