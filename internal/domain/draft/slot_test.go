package draft

import (
	"slices"
	"testing"

	"github.com/riskibarqy/fut-draft/internal/domain/player"
)

func TestBasePosition(t *testing.T) {
	tests := []struct {
		slot string
		want string
	}{
		{slot: "CB1", want: "CB"},
		{slot: "CB12", want: "CB"},
		{slot: "GK", want: "GK"},
		{slot: "ST2", want: "ST"},
		{slot: "SUB3", want: "SUB"},
		{slot: "123", want: "123"},
		{slot: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.slot, func(t *testing.T) {
			if got := BasePosition(tc.slot); got != tc.want {
				t.Fatalf("BasePosition(%q) = %q, want %q", tc.slot, got, tc.want)
			}
		})
	}
}

func TestIsEligible(t *testing.T) {
	p := player.Player{ID: 1, Position: "CM", AlternativePositions: []string{"CDM", "CAM"}}

	if !IsEligible(p, "CM") {
		t.Fatalf("expected primary position to be eligible")
	}
	if !IsEligible(p, "CAM") {
		t.Fatalf("expected alternative position to be eligible")
	}
	if IsEligible(p, "ST") {
		t.Fatalf("expected unrelated position to be ineligible")
	}
	if IsEligible(p, "") {
		t.Fatalf("expected empty position to be ineligible")
	}
}

func TestKindOf(t *testing.T) {
	tests := map[string]SlotKind{
		"DT":    SlotKindManager,
		"SUB1":  SlotKindSubstitute,
		"SUB12": SlotKindSubstitute,
		"RES5":  SlotKindReserve,
		"SUB":   SlotKindStarter,
		"RESX":  SlotKindStarter,
		"CB1":   SlotKindStarter,
		"GK":    SlotKindStarter,
	}

	for slot, want := range tests {
		if got := KindOf(slot); got != want {
			t.Fatalf("KindOf(%q) = %s, want %s", slot, got, want)
		}
	}
}

func TestAccepts(t *testing.T) {
	gk := player.Player{ID: 1, Position: "GK"}

	if !Accepts("SUB1", gk) || !Accepts("RES2", gk) {
		t.Fatalf("expected wildcard slots to accept any player")
	}
	if Accepts("DT", gk) {
		t.Fatalf("expected manager slot to reject players")
	}
	if Accepts("ST", gk) {
		t.Fatalf("expected goalkeeper to be rejected for ST")
	}
	if !IsWildcard("SUB7") || IsWildcard("CB1") {
		t.Fatalf("unexpected wildcard classification")
	}
}

func TestNumberedSlotIDs(t *testing.T) {
	if got := SubstituteSlotIDs(3); !slices.Equal(got, []string{"SUB1", "SUB2", "SUB3"}) {
		t.Fatalf("unexpected substitute slots: %v", got)
	}
	if got := ReserveSlotIDs(2); !slices.Equal(got, []string{"RES1", "RES2"}) {
		t.Fatalf("unexpected reserve slots: %v", got)
	}
	if got := ReserveSlotIDs(0); len(got) != 0 {
		t.Fatalf("expected no reserve slots, got %v", got)
	}
}
