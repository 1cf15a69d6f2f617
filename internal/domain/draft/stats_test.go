package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fut-draft/internal/domain/player"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    int
	}{
		{name: "empty squad", ratings: nil, want: 0},
		{name: "single player", ratings: []int{77}, want: 77},
		{name: "exact mean", ratings: []int{80, 90}, want: 85},
		{name: "rounds half up", ratings: []int{80, 81}, want: 81},
		{name: "rounds down", ratings: []int{80, 80, 81}, want: 80},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			players := make([]player.Player, 0, len(tc.ratings))
			for i, rating := range tc.ratings {
				players = append(players, player.Player{ID: i + 1, Rating: rating})
			}
			assert.Equal(t, tc.want, AverageRating(players))
		})
	}
}

func TestChemistry(t *testing.T) {
	tests := []struct {
		name  string
		clubs []string
		want  int
	}{
		{name: "empty squad", clubs: nil, want: 100},
		{name: "single player", clubs: []string{"Alpha"}, want: 100},
		{name: "same club", clubs: []string{"Alpha", "Alpha"}, want: 100},
		{name: "different clubs", clubs: []string{"Alpha", "Beta"}, want: 50},
		{name: "anchored on first player", clubs: []string{"Beta", "Alpha", "Alpha"}, want: 33},
		{name: "majority with anchor", clubs: []string{"Alpha", "Alpha", "Beta"}, want: 67},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			players := make([]player.Player, 0, len(tc.clubs))
			for i, club := range tc.clubs {
				players = append(players, player.Player{ID: i + 1, Club: club, Rating: 80})
			}
			assert.Equal(t, tc.want, Chemistry(players))
		})
	}
}

func TestSummarize_TwoPlayerScenarios(t *testing.T) {
	sameClub := []player.Player{
		{ID: 1, Rating: 80, Club: "Alpha", Position: "ST"},
		{ID: 2, Rating: 90, Club: "Alpha", Position: "CM"},
	}
	summary := Summarize(sameClub)
	assert.Equal(t, 85, summary.Rating)
	assert.Equal(t, 100, summary.Chemistry)
	assert.InDelta(t, 4.25, summary.Stars, 1e-9)

	differentClubs := []player.Player{
		{ID: 1, Rating: 80, Club: "Alpha"},
		{ID: 2, Rating: 90, Club: "Beta"},
	}
	summary = Summarize(differentClubs)
	assert.Equal(t, 85, summary.Rating)
	assert.Equal(t, 50, summary.Chemistry)
}

func TestPickHighlights(t *testing.T) {
	players := []player.Player{
		{ID: 1, Position: "GK", Rating: 70},
		{ID: 2, Position: "GK", Rating: 90},
		{ID: 3, Position: "CB", Rating: 80},
		{ID: 4, Position: "RWB", Rating: 84},
		{ID: 5, Position: "CAM", Rating: 88},
		{ID: 6, Position: "CM", Rating: 88},
		{ID: 7, Position: "ST", Rating: 91},
		{ID: 8, Position: "XX", Rating: 99},
	}

	got := PickHighlights(players)

	require.NotNil(t, got.Goalkeeper)
	assert.Equal(t, 1, got.Goalkeeper.ID)
	require.NotNil(t, got.Defender)
	assert.Equal(t, 4, got.Defender.ID)
	require.NotNil(t, got.Midfielder)
	assert.Equal(t, 5, got.Midfielder.ID)
	require.NotNil(t, got.Attacker)
	assert.Equal(t, 7, got.Attacker.ID)

	assert.Equal(t, Highlights{}, PickHighlights(nil))
}
