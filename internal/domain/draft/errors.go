package draft

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidTransition is returned when an operation is invoked outside the phase it belongs to.
	ErrInvalidTransition = errors.New("invalid draft transition")
	// ErrDuplicateAssignment is returned when the player already occupies another slot.
	ErrDuplicateAssignment = errors.New("player already assigned to another slot")
	ErrUnknownSlot         = errors.New("unknown slot")
	ErrSlotOccupied        = errors.New("slot already assigned")
	ErrCandidateNotOffered = errors.New("candidate not offered for slot")
)

func invalidTransition(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidTransition, format, args...)
}

// markInvalid keeps the specific cause while letting callers treat it as an invalid transition.
func markInvalid(cause error, format string, args ...any) error {
	return errors.Mark(errors.Wrapf(cause, format, args...), ErrInvalidTransition)
}
