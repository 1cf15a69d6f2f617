package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fut-draft/internal/domain/player"
)

func TestSeedCatalogIsValid(t *testing.T) {
	catalog := SeedCatalog()

	seen := map[int]bool{}
	for _, p := range catalog.Players {
		require.NoError(t, p.Validate())
		require.False(t, seen[p.ID], "duplicate player id %d", p.ID)
		seen[p.ID] = true
	}
	for _, m := range catalog.Managers {
		require.NoError(t, m.Validate())
	}
	for _, f := range catalog.Formations {
		require.NoError(t, f.Validate())
		assert.Len(t, f.Slots, 11, "formation %s", f.ID)
	}
}

func TestSeedFormation433Layout(t *testing.T) {
	repo := NewFormationRepository(SeedFormations())

	got, exists, err := repo.GetByID(context.Background(), FormationID433)

	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, []string{"GK", "LB", "CB1", "CB2", "RB", "CDM", "CM1", "CM2", "LW", "RW", "ST"}, got.Slots)

	got.Slots[0] = "XX"
	again, _, _ := repo.GetByID(context.Background(), FormationID433)
	assert.Equal(t, "GK", again.Slots[0], "repository must hand out copies")
}

func TestPlayerRepository(t *testing.T) {
	repo := NewPlayerRepository([]player.Player{
		{ID: 1, Name: "A", Position: "ST", Club: "Alpha", League: "L1", Nationality: "X"},
		{ID: 2, Name: "B", Position: "LW", AlternativePositions: []string{"ST"}, Club: "Beta", League: "L1"},
		{ID: 1, Name: "A again", Position: "GK"},
		{ID: 3, Name: "C", Position: "GK", Club: "alpha", League: "L2"},
	})
	ctx := context.Background()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "A", all[0].Name)

	strikers, err := repo.Find(ctx, player.Filter{Position: "ST"})
	require.NoError(t, err)
	assert.Len(t, strikers, 2)

	alpha, err := repo.Find(ctx, player.Filter{Club: "ALPHA"})
	require.NoError(t, err)
	assert.Len(t, alpha, 2)

	got, exists, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, "C", got.Name)

	_, exists, err = repo.GetByID(ctx, 99)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestManagerRepository(t *testing.T) {
	repo := NewManagerRepository(SeedManagers())

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, len(SeedManagers()))

	got, exists, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, "Pep Guardiola", got.Name)
	assert.Equal(t, "/imgs/managers/pep-guardiola.png", got.ImageURL)
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	raw := `{
		"players": [
			{"id": 7, "name": "Nine", "real_name": "Number Nine", "position": "ST", "position_alternatives": ["CF"],
			 "rating": 84, "nationality": "Spain", "club": "Alpha", "league": "L1", "image": "a.png", "backup_image": "b.png"}
		],
		"managers": [{"id": 1, "name": "Coach", "nationality": "Italy", "image": "c.png", "backup_image": "d.png"}],
		"formations": [{"id": "1-1", "name": "1-1", "description": "tiny", "image": "e.png", "slots": ["GK", "ST"]}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	catalog, err := LoadCatalogFile(path)

	require.NoError(t, err)
	require.Len(t, catalog.Players, 1)
	assert.Equal(t, []string{"CF"}, catalog.Players[0].AlternativePositions)
	assert.Equal(t, "b.png", catalog.Players[0].CardImageURL)
	require.Len(t, catalog.Managers, 1)
	require.Len(t, catalog.Formations, 1)
	assert.Equal(t, []string{"GK", "ST"}, catalog.Formations[0].Slots)
}

func TestParseCatalogRejectsInvalidRecords(t *testing.T) {
	tests := map[string]string{
		"bad json":       `{`,
		"rating range":   `{"players":[{"id":1,"name":"A","position":"ST","rating":120}]}`,
		"duplicate slot": `{"formations":[{"id":"x","slots":["CB1","CB1"]}]}`,
		"manager name":   `{"managers":[{"id":1}]}`,
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(raw))
			assert.Error(t, err)
		})
	}
}
