package draft

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/fut-draft/internal/domain/player"
)

// ManagerSlot is the single slot filled by a manager instead of a player.
const ManagerSlot = "DT"

const (
	substitutePrefix = "SUB"
	reservePrefix    = "RES"
)

// SlotKind classifies a slot identifier.
type SlotKind string

const (
	SlotKindStarter    SlotKind = "starter"
	SlotKindSubstitute SlotKind = "substitute"
	SlotKindReserve    SlotKind = "reserve"
	SlotKindManager    SlotKind = "manager"
)

// BasePosition strips the trailing digits of a slot id (CB1 -> CB). An id made only of digits
// is returned unchanged.
func BasePosition(slotID string) string {
	base := strings.TrimRight(slotID, "0123456789")
	if base == "" {
		return slotID
	}
	return base
}

// IsEligible reports whether the player can fill a slot whose base position is basePosition.
func IsEligible(p player.Player, basePosition string) bool {
	return p.PlaysPosition(basePosition)
}

func KindOf(slotID string) SlotKind {
	switch {
	case slotID == ManagerSlot:
		return SlotKindManager
	case isNumbered(slotID, substitutePrefix):
		return SlotKindSubstitute
	case isNumbered(slotID, reservePrefix):
		return SlotKindReserve
	default:
		return SlotKindStarter
	}
}

// IsWildcard reports whether any player may fill the slot regardless of position.
func IsWildcard(slotID string) bool {
	kind := KindOf(slotID)
	return kind == SlotKindSubstitute || kind == SlotKindReserve
}

// Accepts applies the compatibility rule of the slot to one player.
func Accepts(slotID string, p player.Player) bool {
	switch KindOf(slotID) {
	case SlotKindSubstitute, SlotKindReserve:
		return true
	case SlotKindManager:
		return false
	default:
		return IsEligible(p, BasePosition(slotID))
	}
}

func SubstituteSlotIDs(count int) []string {
	return numberedSlots(substitutePrefix, count)
}

func ReserveSlotIDs(count int) []string {
	return numberedSlots(reservePrefix, count)
}

func numberedSlots(prefix string, count int) []string {
	if count <= 0 {
		return []string{}
	}
	out := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, prefix+strconv.Itoa(i))
	}
	return out
}

func isNumbered(slotID, prefix string) bool {
	suffix, ok := strings.CutPrefix(slotID, prefix)
	if !ok || suffix == "" {
		return false
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
