package draft

import (
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/fut-draft/internal/domain/manager"
	"github.com/riskibarqy/fut-draft/internal/domain/player"
)

// Phase is the coarse state of a draft session.
type Phase string

const (
	PhaseAwaitingFormation Phase = "awaiting_formation"
	PhaseAwaitingCaptain   Phase = "awaiting_captain"
	PhaseBuilding          Phase = "building"
	PhaseComplete          Phase = "complete"
)

// Session is the single mutable draft aggregate. It is not safe for concurrent use; the owner
// serializes calls.
type Session struct {
	id    string
	rules Rules
	now   func() time.Time

	formationID  string
	hasFormation bool
	layout       []string
	slots        []string
	slotIndex    map[string]struct{}

	captain     *player.Player
	captainSlot string
	manager     *manager.Manager
	assignments map[string]player.Player

	picking           string
	playerCandidates  []player.Player
	managerCandidates []manager.Manager
	captainCandidates []player.Player

	complete    bool
	startedAt   time.Time
	completedAt time.Time
}

// NewSession returns an empty session in PhaseAwaitingFormation.
func NewSession(id string, rules Rules, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	s := &Session{rules: rules.normalized(), now: now}
	s.Reset(id)
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Rules() Rules {
	return s.rules
}

func (s *Session) Phase() Phase {
	switch {
	case !s.hasFormation:
		return PhaseAwaitingFormation
	case s.captain == nil:
		return PhaseAwaitingCaptain
	case s.complete:
		return PhaseComplete
	default:
		return PhaseBuilding
	}
}

func (s *Session) IsComplete() bool {
	return s.complete
}

// PickingSlot returns the slot awaiting a pick, if any.
func (s *Session) PickingSlot() (string, bool) {
	return s.picking, s.picking != ""
}

// Slots returns every slot of the squad: layout, substitutes, reserves, then the manager slot.
func (s *Session) Slots() []string {
	return slices.Clone(s.slots)
}

func (s *Session) HasSlot(slotID string) bool {
	_, ok := s.slotIndex[slotID]
	return ok
}

// SelectFormation records the formation and its layout and clears any previous assignment.
// An empty layout is accepted; such a draft can never complete.
func (s *Session) SelectFormation(formationID string, layout []string) error {
	phase := s.Phase()
	if phase != PhaseAwaitingFormation && phase != PhaseAwaitingCaptain {
		return invalidTransition("select formation in phase %s", phase)
	}

	s.formationID = formationID
	s.hasFormation = true
	s.layout = dedupeSlots(layout)
	s.slots = make([]string, 0, len(s.layout)+s.rules.SubstituteSlots+s.rules.ReserveSlots+1)
	s.slots = append(s.slots, s.layout...)
	s.slots = append(s.slots, SubstituteSlotIDs(s.rules.SubstituteSlots)...)
	s.slots = append(s.slots, ReserveSlotIDs(s.rules.ReserveSlots)...)
	s.slots = append(s.slots, ManagerSlot)
	s.slotIndex = make(map[string]struct{}, len(s.slots))
	for _, slotID := range s.slots {
		s.slotIndex[slotID] = struct{}{}
	}

	s.captain = nil
	s.captainSlot = ""
	s.manager = nil
	s.assignments = make(map[string]player.Player)
	s.clearPick()
	s.captainCandidates = nil
	s.complete = false
	s.completedAt = time.Time{}
	return nil
}

// SetCaptainCandidates stores the captain pool offered to the user.
func (s *Session) SetCaptainCandidates(pool []player.Player) error {
	if phase := s.Phase(); phase != PhaseAwaitingCaptain {
		return invalidTransition("captain candidates in phase %s", phase)
	}
	s.captainCandidates = slices.Clone(pool)
	return nil
}

// SelectCaptain places the captain into the first layout slot matching its primary or an
// alternative position. When no slot matches, the captain is recorded without an assignment and
// the returned slot is empty.
func (s *Session) SelectCaptain(captain player.Player) (string, error) {
	if phase := s.Phase(); phase != PhaseAwaitingCaptain {
		return "", invalidTransition("select captain in phase %s", phase)
	}

	c := captain
	s.captain = &c
	s.captainCandidates = nil
	s.captainSlot = ""
	for _, slotID := range s.layout {
		if KindOf(slotID) != SlotKindStarter {
			continue
		}
		if IsEligible(captain, BasePosition(slotID)) {
			s.captainSlot = slotID
			s.assignments[slotID] = captain
			break
		}
	}

	s.evaluateCompletion()
	return s.captainSlot, nil
}

// ClickSlot enters the picking sub-state for an unassigned slot and stores its candidate pool.
// Clicking another slot while picking retargets the pick.
func (s *Session) ClickSlot(slotID string, players []player.Player, managers []manager.Manager, shuffler Shuffler) error {
	if phase := s.Phase(); phase != PhaseBuilding {
		return invalidTransition("click slot %s in phase %s", slotID, phase)
	}
	if !s.HasSlot(slotID) {
		return errors.Wrapf(ErrUnknownSlot, "slot=%s", slotID)
	}
	if s.occupied(slotID) {
		return markInvalid(ErrSlotOccupied, "slot=%s", slotID)
	}

	s.clearPick()
	s.picking = slotID
	if slotID == ManagerSlot {
		s.managerCandidates = SampleManagers(managers, shuffler, s.rules.CandidatePoolSize)
		return nil
	}
	s.playerCandidates = Sample(slotID, s.assignments, players, shuffler, s.rules.CandidatePoolSize)
	return nil
}

// CancelPick leaves the picking sub-state without assigning anything.
func (s *Session) CancelPick() error {
	if s.picking == "" {
		return invalidTransition("cancel pick with no pending pick")
	}
	s.clearPick()
	return nil
}

// Assign writes p into the slot awaiting a pick. A player already present in another slot is
// rejected and the session is left unchanged.
func (s *Session) Assign(p player.Player) error {
	if s.picking == "" || s.Phase() != PhaseBuilding {
		return invalidTransition("assign player %d with no pending pick", p.ID)
	}
	if s.picking == ManagerSlot {
		return invalidTransition("assign player %d to manager slot", p.ID)
	}
	if slotID, ok := s.slotOf(p.ID); ok {
		return errors.Wrapf(ErrDuplicateAssignment, "player=%d slot=%s", p.ID, slotID)
	}

	s.assignments[s.picking] = p
	s.clearPick()
	s.evaluateCompletion()
	return nil
}

// AssignManager fills the manager slot while it awaits a pick.
func (s *Session) AssignManager(m manager.Manager) error {
	if s.picking != ManagerSlot || s.Phase() != PhaseBuilding {
		return invalidTransition("assign manager %d with no pending manager pick", m.ID)
	}

	item := m
	s.manager = &item
	s.clearPick()
	s.evaluateCompletion()
	return nil
}

// Pick assigns the offered candidate with the given id to the slot awaiting a pick.
func (s *Session) Pick(candidateID int) (string, error) {
	slotID := s.picking
	if slotID == "" {
		return "", invalidTransition("pick candidate %d with no pending pick", candidateID)
	}

	if slotID == ManagerSlot {
		for _, candidate := range s.managerCandidates {
			if candidate.ID == candidateID {
				return slotID, s.AssignManager(candidate)
			}
		}
		return "", markInvalid(ErrCandidateNotOffered, "slot=%s candidate=%d", slotID, candidateID)
	}

	for _, candidate := range s.playerCandidates {
		if candidate.ID == candidateID {
			return slotID, s.Assign(candidate)
		}
	}
	return "", markInvalid(ErrCandidateNotOffered, "slot=%s candidate=%d", slotID, candidateID)
}

// Reset discards the whole session and starts an empty one under newID.
func (s *Session) Reset(newID string) {
	rules, now := s.rules, s.now
	*s = Session{
		id:          newID,
		rules:       rules,
		now:         now,
		assignments: make(map[string]player.Player),
		slotIndex:   map[string]struct{}{},
		startedAt:   now(),
	}
}

// AssignedPlayers returns the assigned players in slot declaration order: layout, substitutes,
// then reserves. The manager is never included.
func (s *Session) AssignedPlayers() []player.Player {
	out := make([]player.Player, 0, len(s.assignments))
	for _, slotID := range s.slots {
		if assigned, ok := s.assignments[slotID]; ok {
			out = append(out, assigned)
		}
	}
	return out
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:                s.id,
		Phase:             s.Phase(),
		FormationID:       s.formationID,
		HasFormation:      s.hasFormation,
		Layout:            slices.Clone(s.layout),
		CaptainSlot:       s.captainSlot,
		PickingSlot:       s.picking,
		PlayerCandidates:  slices.Clone(s.playerCandidates),
		ManagerCandidates: slices.Clone(s.managerCandidates),
		CaptainCandidates: slices.Clone(s.captainCandidates),
		Assignments:       make(map[string]player.Player, len(s.assignments)),
		Complete:          s.complete,
		StartedAt:         s.startedAt,
		CompletedAt:       s.completedAt,
	}
	if s.captain != nil {
		c := *s.captain
		snap.Captain = &c
	}
	if s.manager != nil {
		m := *s.manager
		snap.Manager = &m
	}
	for slotID, assigned := range s.assignments {
		snap.Assignments[slotID] = assigned
	}

	snap.Slots = make([]SlotState, 0, len(s.slots))
	for _, slotID := range s.slots {
		state := SlotState{ID: slotID, Kind: KindOf(slotID), BasePosition: BasePosition(slotID)}
		if assigned, ok := s.assignments[slotID]; ok {
			p := assigned
			state.Player = &p
		}
		if slotID == ManagerSlot && snap.Manager != nil {
			state.Manager = snap.Manager
		}
		snap.Slots = append(snap.Slots, state)
	}
	return snap
}

func (s *Session) occupied(slotID string) bool {
	if slotID == ManagerSlot {
		return s.manager != nil
	}
	_, ok := s.assignments[slotID]
	return ok
}

func (s *Session) slotOf(playerID int) (string, bool) {
	for slotID, assigned := range s.assignments {
		if assigned.ID == playerID {
			return slotID, true
		}
	}
	return "", false
}

func (s *Session) clearPick() {
	s.picking = ""
	s.playerCandidates = nil
	s.managerCandidates = nil
}

func (s *Session) evaluateCompletion() {
	if s.complete || len(s.layout) == 0 {
		return
	}
	for _, slotID := range s.slots {
		if !s.occupied(slotID) {
			return
		}
	}
	s.complete = true
	s.completedAt = s.now()
}

func dedupeSlots(layout []string) []string {
	seen := make(map[string]struct{}, len(layout))
	out := make([]string, 0, len(layout))
	for _, slotID := range layout {
		if slotID == "" || KindOf(slotID) != SlotKindStarter {
			continue
		}
		if _, ok := seen[slotID]; ok {
			continue
		}
		seen[slotID] = struct{}{}
		out = append(out, slotID)
	}
	return out
}

// Snapshot is a detached copy of the session state for presentation layers.
type Snapshot struct {
	ID                string
	Phase             Phase
	FormationID       string
	HasFormation      bool
	Layout            []string
	Slots             []SlotState
	Assignments       map[string]player.Player
	Captain           *player.Player
	CaptainSlot       string
	Manager           *manager.Manager
	PickingSlot       string
	PlayerCandidates  []player.Player
	ManagerCandidates []manager.Manager
	CaptainCandidates []player.Player
	Complete          bool
	StartedAt         time.Time
	CompletedAt       time.Time
}

type SlotState struct {
	ID           string
	Kind         SlotKind
	BasePosition string
	Player       *player.Player
	Manager      *manager.Manager
}
