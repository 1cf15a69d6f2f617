package postgres

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/riskibarqy/fut-draft/internal/domain/formation"
	"github.com/riskibarqy/fut-draft/internal/domain/manager"
	"github.com/riskibarqy/fut-draft/internal/domain/player"
	"github.com/riskibarqy/fut-draft/internal/infrastructure/repository/memory"
)

const playerColumnList = "id, name, real_name, position, position_alternatives, rating, nationality, club, league, image, backup_image"

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows to be not found")
	}
	if !isNotFound(fmt.Errorf("get player: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(fmt.Errorf("pq: relation players does not exist")) {
		t.Fatalf("expected unrelated error to be false")
	}
}

func TestFindPlayersQuery(t *testing.T) {
	t.Run("no filter selects whole catalog in id order", func(t *testing.T) {
		query, args, err := findPlayersQuery(player.Filter{})
		if err != nil {
			t.Fatalf("build query: %v", err)
		}
		if query != "SELECT "+playerColumnList+" FROM players ORDER BY id" {
			t.Fatalf("unexpected query: %s", query)
		}
		if len(args) != 0 {
			t.Fatalf("expected no args, got %+v", args)
		}
	})

	t.Run("position matches primary or alternatives", func(t *testing.T) {
		query, args, err := findPlayersQuery(player.Filter{Position: "CB", Club: "Real Madrid"})
		if err != nil {
			t.Fatalf("build query: %v", err)
		}
		want := " WHERE (position = $1 OR $2 = ANY(position_alternatives)) AND LOWER(club) = LOWER($3) ORDER BY id"
		if !strings.HasSuffix(query, want) {
			t.Fatalf("unexpected query: %s", query)
		}
		if len(args) != 3 || args[0] != "CB" || args[1] != "CB" || args[2] != "Real Madrid" {
			t.Fatalf("unexpected args: %+v", args)
		}
	})

	t.Run("league and nationality", func(t *testing.T) {
		_, args, err := findPlayersQuery(player.Filter{League: "LaLiga", Nationality: "Spain"})
		if err != nil {
			t.Fatalf("build query: %v", err)
		}
		if len(args) != 2 || args[0] != "LaLiga" || args[1] != "Spain" {
			t.Fatalf("unexpected args: %+v", args)
		}
	})
}

func TestPlayerTableModelRoundTrip(t *testing.T) {
	in := player.Player{
		ID:                   7,
		Name:                 "Pedri",
		RealName:             "Pedro González López",
		Position:             "CM",
		AlternativePositions: []string{"CAM", "LM"},
		Rating:               86,
		Nationality:          "Spain",
		Club:                 "FC Barcelona",
		League:               "LaLiga",
		ImageURL:             "https://img/pedri.png",
		CardImageURL:         "https://img/pedri-card.png",
	}

	row := newPlayerTableModel(in)
	if len(row.PositionAlternatives) != 2 {
		t.Fatalf("expected alternatives to be stored, got %+v", row.PositionAlternatives)
	}

	out := row.toDomain()
	if out.ID != in.ID || out.Name != in.Name || out.Rating != in.Rating || out.CardImageURL != in.CardImageURL {
		t.Fatalf("unexpected player: %+v", out)
	}
	if !out.PlaysPosition("LM") {
		t.Fatalf("expected alternative position to survive conversion")
	}

	row.PositionAlternatives[0] = "ST"
	if out.AlternativePositions[0] != "CAM" {
		t.Fatalf("expected domain copy to be independent from row")
	}
}

func TestNilArraysBecomeEmpty(t *testing.T) {
	p := playerTableModel{ID: 1, PositionAlternatives: nil}.toDomain()
	if p.AlternativePositions == nil {
		t.Fatalf("expected empty alternatives slice")
	}

	f := formationTableModel{ID: "4-4-2", Slots: pq.StringArray(nil)}.toDomain()
	if f.Slots == nil || len(f.Slots) != 0 {
		t.Fatalf("expected empty slots slice, got %+v", f.Slots)
	}
}

func TestSeedStatements(t *testing.T) {
	catalog := memory.Catalog{
		Formations: []formation.Formation{{ID: "4-4-2", Name: "4-4-2", Slots: []string{"GK", "LB"}}},
		Managers:   []manager.Manager{{ID: 1, Name: "Pep Guardiola"}},
		Players:    []player.Player{{ID: 3, Name: "Rodri", Position: "CDM", Rating: 89}},
	}

	statements, err := seedStatements(catalog)
	if err != nil {
		t.Fatalf("seed statements: %v", err)
	}
	if len(statements) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(statements))
	}

	if !strings.HasPrefix(statements[0].query, "INSERT INTO formations (id, name, description, image, slots)") {
		t.Fatalf("unexpected formation insert: %s", statements[0].query)
	}
	if !strings.HasPrefix(statements[2].query, "INSERT INTO players ("+playerColumnList+")") {
		t.Fatalf("unexpected player insert: %s", statements[2].query)
	}
	for _, stmt := range statements {
		if !strings.HasSuffix(stmt.query, seedConflictSuffix) {
			t.Fatalf("expected conflict suffix on %s: %s", stmt.label, stmt.query)
		}
	}
	if statements[1].label != "manager 1" || len(statements[1].args) != 5 {
		t.Fatalf("unexpected manager statement: %+v", statements[1])
	}
}
