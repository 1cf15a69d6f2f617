package draft

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fut-draft/internal/domain/manager"
	"github.com/riskibarqy/fut-draft/internal/domain/player"
)

func seededShuffler(seed uint64) Shuffler {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func sampleCatalog() []player.Player {
	return []player.Player{
		{ID: 1, Name: "Keeper A", Position: "GK", Rating: 85, Club: "Alpha"},
		{ID: 2, Name: "Keeper B", Position: "GK", Rating: 80, Club: "Beta"},
		{ID: 3, Name: "Back A", Position: "CB", Rating: 82, Club: "Alpha"},
		{ID: 4, Name: "Back B", Position: "CB", Rating: 78, Club: "Gamma"},
		{ID: 5, Name: "Back C", Position: "LB", AlternativePositions: []string{"CB"}, Rating: 77, Club: "Beta"},
		{ID: 6, Name: "Mid A", Position: "CM", Rating: 88, Club: "Alpha"},
		{ID: 7, Name: "Mid B", Position: "CDM", AlternativePositions: []string{"CM"}, Rating: 84, Club: "Gamma"},
		{ID: 8, Name: "Forward A", Position: "ST", Rating: 90, Club: "Beta"},
		{ID: 9, Name: "Forward B", Position: "ST", Rating: 86, Club: "Gamma"},
		{ID: 10, Name: "Winger A", Position: "LW", AlternativePositions: []string{"ST"}, Rating: 83, Club: "Alpha"},
		{ID: 11, Name: "Back D", Position: "CB", Rating: 75, Club: "Delta"},
		{ID: 12, Name: "Back E", Position: "CB", Rating: 74, Club: "Delta"},
		{ID: 13, Name: "Back F", Position: "CB", Rating: 73, Club: "Delta"},
	}
}

func TestSample_FiltersEligibleUnusedPlayers(t *testing.T) {
	catalog := sampleCatalog()
	assignments := map[string]player.Player{"CB1": catalog[2]}

	pool := Sample("CB2", assignments, catalog, seededShuffler(1), 5)

	require.NotEmpty(t, pool)
	assert.LessOrEqual(t, len(pool), 5)
	for _, candidate := range pool {
		assert.NotEqual(t, 3, candidate.ID, "used player offered again")
		assert.True(t, IsEligible(candidate, "CB"), "ineligible candidate %d", candidate.ID)
	}
}

func TestSample_BoundedToLimit(t *testing.T) {
	pool := Sample("SUB1", map[string]player.Player{}, sampleCatalog(), seededShuffler(2), 5)
	assert.Len(t, pool, 5)

	pool = Sample("SUB1", map[string]player.Player{}, sampleCatalog(), seededShuffler(2), 50)
	assert.Len(t, pool, MaxCandidatePoolSize)

	pool = Sample("SUB1", map[string]player.Player{}, sampleCatalog(), seededShuffler(2), 2)
	assert.Len(t, pool, 2)
}

func TestSample_DeterministicUnderFixedSeed(t *testing.T) {
	assignments := map[string]player.Player{"GK": sampleCatalog()[0]}

	first := Sample("RES1", assignments, sampleCatalog(), seededShuffler(42), 5)
	second := Sample("RES1", assignments, sampleCatalog(), seededShuffler(42), 5)

	assert.Equal(t, first, second)
}

func TestSample_DeduplicatesCatalog(t *testing.T) {
	catalog := []player.Player{
		{ID: 1, Position: "ST", Rating: 80},
		{ID: 1, Position: "ST", Rating: 80},
		{ID: 2, Position: "ST", Rating: 81},
	}

	pool := Sample("ST", map[string]player.Player{}, catalog, seededShuffler(3), 5)

	require.Len(t, pool, 2)
	assert.NotEqual(t, pool[0].ID, pool[1].ID)
}

func TestSample_EmptyWhenNoEligible(t *testing.T) {
	pool := Sample("RWB", map[string]player.Player{}, sampleCatalog(), seededShuffler(4), 5)
	assert.NotNil(t, pool)
	assert.Empty(t, pool)
}

func TestSample_OccupiedSlotIsNoop(t *testing.T) {
	catalog := sampleCatalog()
	assignments := map[string]player.Player{"ST": catalog[7]}

	pool := Sample("ST", assignments, catalog, seededShuffler(5), 5)

	assert.Empty(t, pool)
	assert.Len(t, assignments, 1)
	assert.Equal(t, 8, assignments["ST"].ID)
}

func TestSample_ManagerSlotHasNoPlayers(t *testing.T) {
	assert.Empty(t, Sample(ManagerSlot, map[string]player.Player{}, sampleCatalog(), seededShuffler(6), 5))
}

func TestSampleManagers(t *testing.T) {
	managers := []manager.Manager{
		{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 2, Name: "B"},
		{ID: 3, Name: "C"}, {ID: 4, Name: "D"}, {ID: 5, Name: "E"}, {ID: 6, Name: "F"},
	}

	pool := SampleManagers(managers, seededShuffler(7), 5)

	require.Len(t, pool, 5)
	seen := map[int]bool{}
	for _, m := range pool {
		assert.False(t, seen[m.ID], "duplicate manager %d", m.ID)
		seen[m.ID] = true
	}
}

func TestSampleCaptains_UsesLayoutBasePositions(t *testing.T) {
	layout := []string{"GK", "CB1", "CB2"}

	pool := SampleCaptains(layout, sampleCatalog(), seededShuffler(8), 5)

	require.NotEmpty(t, pool)
	for _, candidate := range pool {
		assert.True(t, candidate.PlaysPosition("GK") || candidate.PlaysPosition("CB"), "candidate %d cannot start", candidate.ID)
	}
	assert.Empty(t, SampleCaptains(nil, sampleCatalog(), seededShuffler(8), 5))
}
