package draft

import (
	"math"

	"github.com/riskibarqy/fut-draft/internal/domain/player"
)

// MaxStars is the star rating of a squad averaging 100.
const MaxStars = 5.0

// PositionGroup buckets primary positions for squad highlights.
type PositionGroup string

const (
	GroupGoalkeeper PositionGroup = "GK"
	GroupDefender   PositionGroup = "DEF"
	GroupMidfielder PositionGroup = "MID"
	GroupAttacker   PositionGroup = "ATT"
)

var positionGroups = map[string]PositionGroup{
	"GK":  GroupGoalkeeper,
	"CB":  GroupDefender,
	"LB":  GroupDefender,
	"RB":  GroupDefender,
	"LCB": GroupDefender,
	"RCB": GroupDefender,
	"LWB": GroupDefender,
	"RWB": GroupDefender,
	"CDM": GroupMidfielder,
	"CM":  GroupMidfielder,
	"CAM": GroupMidfielder,
	"LM":  GroupMidfielder,
	"RM":  GroupMidfielder,
	"LWM": GroupMidfielder,
	"RWM": GroupMidfielder,
	"ST":  GroupAttacker,
	"CF":  GroupAttacker,
	"LW":  GroupAttacker,
	"RW":  GroupAttacker,
	"LF":  GroupAttacker,
	"RF":  GroupAttacker,
}

// GroupOf returns the group of a position code and false for unknown codes.
func GroupOf(position string) (PositionGroup, bool) {
	group, ok := positionGroups[position]
	return group, ok
}

// AverageRating is the rounded mean rating, 0 for an empty squad.
func AverageRating(players []player.Player) int {
	if len(players) == 0 {
		return 0
	}
	total := 0
	for _, p := range players {
		total += p.Rating
	}
	return int(math.Round(float64(total) / float64(len(players))))
}

// Chemistry is the rounded percentage of players sharing the club of the first player.
// Fewer than two players always score 100.
func Chemistry(players []player.Player) int {
	if len(players) < 2 {
		return 100
	}
	anchor := players[0].Club
	same := 0
	for _, p := range players {
		if p.Club == anchor {
			same++
		}
	}
	return int(math.Round(100 * float64(same) / float64(len(players))))
}

// Stars maps an average rating onto a five star scale.
func Stars(rating int) float64 {
	return float64(rating) / 100 * MaxStars
}

// Highlights are the showcase cards of a finished squad; nil when the group is empty.
type Highlights struct {
	Goalkeeper *player.Player
	Defender   *player.Player
	Midfielder *player.Player
	Attacker   *player.Player
}

// PickHighlights selects the first goalkeeper and the best rated defender, midfielder and
// attacker by primary position. Ties keep the earlier player.
func PickHighlights(players []player.Player) Highlights {
	var out Highlights
	for i := range players {
		p := players[i]
		group, ok := GroupOf(p.Position)
		if !ok {
			continue
		}
		switch group {
		case GroupGoalkeeper:
			if out.Goalkeeper == nil {
				out.Goalkeeper = &p
			}
		case GroupDefender:
			out.Defender = better(out.Defender, &p)
		case GroupMidfielder:
			out.Midfielder = better(out.Midfielder, &p)
		case GroupAttacker:
			out.Attacker = better(out.Attacker, &p)
		}
	}
	return out
}

func better(current, candidate *player.Player) *player.Player {
	if current == nil || candidate.Rating > current.Rating {
		return candidate
	}
	return current
}

// Summary aggregates the derived statistics of a squad.
type Summary struct {
	Rating     int
	Chemistry  int
	Stars      float64
	Players    int
	Highlights Highlights
}

func Summarize(players []player.Player) Summary {
	rating := AverageRating(players)
	return Summary{
		Rating:     rating,
		Chemistry:  Chemistry(players),
		Stars:      Stars(rating),
		Players:    len(players),
		Highlights: PickHighlights(players),
	}
}
