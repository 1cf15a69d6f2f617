package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/fut-draft/internal/domain/draft"
	"github.com/riskibarqy/fut-draft/internal/domain/formation"
	"github.com/riskibarqy/fut-draft/internal/domain/manager"
	"github.com/riskibarqy/fut-draft/internal/domain/player"
	"github.com/riskibarqy/fut-draft/internal/metrics"
	idgen "github.com/riskibarqy/fut-draft/internal/platform/id"
	"github.com/riskibarqy/fut-draft/internal/platform/logging"
)

const defaultFormationOptions = 5

// DraftConfig shapes the single draft session.
type DraftConfig struct {
	Rules            draft.Rules
	FormationOptions int
}

func DefaultDraftConfig() DraftConfig {
	return DraftConfig{
		Rules:            draft.DefaultRules(),
		FormationOptions: defaultFormationOptions,
	}
}

// DraftService owns the one active draft session. Every operation holds the session lock for its
// whole duration so transitions stay atomic under concurrent callers.
type DraftService struct {
	playerRepo    player.Repository
	managerRepo   manager.Repository
	formationRepo formation.Repository
	cfg           DraftConfig
	idGen         idgen.Generator
	metrics       *metrics.Recorder
	logger        *logging.Logger
	clock         clockwork.Clock
	shuffler      draft.Shuffler

	mu      sync.Mutex
	session *draft.Session
}

func NewDraftService(
	playerRepo player.Repository,
	managerRepo manager.Repository,
	formationRepo formation.Repository,
	cfg DraftConfig,
	idGen idgen.Generator,
	recorder *metrics.Recorder,
	logger *logging.Logger,
) *DraftService {
	if logger == nil {
		logger = logging.Default()
	}
	if idGen == nil {
		idGen = idgen.NewUUIDGenerator()
	}
	if cfg.FormationOptions <= 0 {
		cfg.FormationOptions = defaultFormationOptions
	}

	s := &DraftService{
		playerRepo:    playerRepo,
		managerRepo:   managerRepo,
		formationRepo: formationRepo,
		cfg:           cfg,
		idGen:         idGen,
		metrics:       recorder,
		logger:        logger,
		clock:         clockwork.NewRealClock(),
		shuffler:      draft.DefaultShuffler(),
	}
	s.session = draft.NewSession(s.nextID(), cfg.Rules, s.now)
	return s
}

func (s *DraftService) now() time.Time {
	return s.clock.Now().UTC()
}

func (s *DraftService) nextID() string {
	value, err := s.idGen.NewID()
	if err != nil {
		s.logger.Warn("generate draft id failed, using timestamp", "error", err)
		return fmt.Sprintf("draft-%d", s.now().UnixNano())
	}
	return value
}

// State returns a detached snapshot of the current session.
func (s *DraftService) State(ctx context.Context) draft.Snapshot {
	_, span := startUsecaseSpan(ctx, "usecase.DraftService.State")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session.Snapshot()
}

// FormationOptions offers up to the configured number of shuffled formations.
func (s *DraftService) FormationOptions(ctx context.Context) ([]formation.Formation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.FormationOptions")
	defer span.End()

	items, err := s.formationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list formations: %w", ErrDependencyUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	options := append([]formation.Formation{}, items...)
	s.shuffler.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	if len(options) > s.cfg.FormationOptions {
		options = options[:s.cfg.FormationOptions]
	}
	return options, nil
}

// SelectFormation records the formation and its layout. Unknown ids are accepted with an empty
// layout, leaving a draft that can never complete.
func (s *DraftService) SelectFormation(ctx context.Context, formationID string) (draft.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.SelectFormation", attribute.String("draft.formation_id", formationID))
	defer span.End()

	formationID = strings.TrimSpace(formationID)
	if formationID == "" {
		return draft.Snapshot{}, fmt.Errorf("%w: formation id is required", ErrInvalidInput)
	}

	layout, exists, err := formation.LayoutFor(ctx, s.formationRepo, formationID)
	if err != nil {
		return draft.Snapshot{}, fmt.Errorf("%w: get formation: %w", ErrDependencyUnavailable, err)
	}
	if !exists {
		s.logger.WarnContext(ctx, "unknown formation selected, layout is empty", "formation_id", formationID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.SelectFormation(formationID, layout); err != nil {
		return draft.Snapshot{}, s.rejected(ctx, "select formation", err)
	}

	s.logger.InfoContext(ctx, "formation selected",
		"draft_id", s.session.ID(),
		"formation_id", formationID,
		"layout_size", len(layout),
	)
	return s.session.Snapshot(), nil
}

// CaptainCandidates returns the captain pool for the chosen formation, sampling it on first use.
func (s *DraftService) CaptainCandidates(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.CaptainCandidates")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list players: %w", ErrDependencyUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.session.Snapshot()
	if snap.Phase != draft.PhaseAwaitingCaptain {
		return nil, s.rejected(ctx, "captain candidates", errors.Wrapf(draft.ErrInvalidTransition, "captain candidates in phase %s", snap.Phase))
	}
	if len(snap.CaptainCandidates) > 0 {
		return snap.CaptainCandidates, nil
	}

	pool := draft.SampleCaptains(snap.Layout, players, s.shuffler, s.session.Rules().CandidatePoolSize)
	if err := s.session.SetCaptainCandidates(pool); err != nil {
		return nil, s.rejected(ctx, "captain candidates", err)
	}
	s.metrics.ObserveCandidatePool(len(pool))
	return pool, nil
}

// SelectCaptain places the captain into the first compatible starting slot.
func (s *DraftService) SelectCaptain(ctx context.Context, playerID int) (draft.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.SelectCaptain", attribute.Int("draft.player_id", playerID))
	defer span.End()

	if playerID <= 0 {
		return draft.Snapshot{}, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}

	captain, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return draft.Snapshot{}, fmt.Errorf("%w: get player: %w", ErrDependencyUnavailable, err)
	}
	if !exists {
		return draft.Snapshot{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slotID, err := s.session.SelectCaptain(captain)
	if err != nil {
		return draft.Snapshot{}, s.rejected(ctx, "select captain", err)
	}
	if slotID != "" {
		s.metrics.RecordPick(string(draft.SlotKindStarter))
	}

	s.logger.InfoContext(ctx, "captain selected",
		"draft_id", s.session.ID(),
		"player_id", captain.ID,
		"slot_id", slotID,
		"placed", slotID != "",
	)
	return s.session.Snapshot(), nil
}

// OpenSlot enters the picking state for slotID and samples its candidate pool.
func (s *DraftService) OpenSlot(ctx context.Context, slotID string) (draft.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.OpenSlot", attribute.String("draft.slot_id", slotID))
	defer span.End()

	slotID = strings.TrimSpace(slotID)
	if slotID == "" {
		return draft.Snapshot{}, fmt.Errorf("%w: slot id is required", ErrInvalidInput)
	}

	var (
		players  []player.Player
		managers []manager.Manager
		err      error
	)
	if slotID == draft.ManagerSlot {
		managers, err = s.managerRepo.List(ctx)
		if err != nil {
			return draft.Snapshot{}, fmt.Errorf("%w: list managers: %w", ErrDependencyUnavailable, err)
		}
	} else {
		players, err = s.playerRepo.List(ctx)
		if err != nil {
			return draft.Snapshot{}, fmt.Errorf("%w: list players: %w", ErrDependencyUnavailable, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.ClickSlot(slotID, players, managers, s.shuffler); err != nil {
		return draft.Snapshot{}, s.rejected(ctx, "open slot", err)
	}

	snap := s.session.Snapshot()
	offered := len(snap.PlayerCandidates)
	if slotID == draft.ManagerSlot {
		offered = len(snap.ManagerCandidates)
	}
	s.metrics.ObserveCandidatePool(offered)
	if offered == 0 {
		s.logger.InfoContext(ctx, "no eligible candidates for slot", "draft_id", snap.ID, "slot_id", slotID)
	}
	return snap, nil
}

// Pick assigns one of the offered candidates to the slot awaiting a pick.
func (s *DraftService) Pick(ctx context.Context, candidateID int) (draft.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.Pick", attribute.Int("draft.candidate_id", candidateID))
	defer span.End()

	if candidateID <= 0 {
		return draft.Snapshot{}, fmt.Errorf("%w: candidate id must be greater than zero", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slotID, err := s.session.Pick(candidateID)
	if err != nil {
		return draft.Snapshot{}, s.rejected(ctx, "pick", err)
	}

	s.metrics.RecordPick(string(draft.KindOf(slotID)))
	s.logger.InfoContext(ctx, "slot assigned",
		"draft_id", s.session.ID(),
		"slot_id", slotID,
		"candidate_id", candidateID,
	)

	snap := s.session.Snapshot()
	if snap.Complete {
		s.metrics.RecordDraftCompleted()
		s.logger.InfoContext(ctx, "draft completed",
			"draft_id", snap.ID,
			"formation_id", snap.FormationID,
			"duration", snap.CompletedAt.Sub(snap.StartedAt).String(),
		)
	}
	return snap, nil
}

// CancelPick leaves the picking state without assigning.
func (s *DraftService) CancelPick(ctx context.Context) (draft.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.CancelPick")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.CancelPick(); err != nil {
		return draft.Snapshot{}, s.rejected(ctx, "cancel pick", err)
	}
	return s.session.Snapshot(), nil
}

// Summary computes the team statistics of the current assignment snapshot.
func (s *DraftService) Summary(ctx context.Context) draft.Summary {
	_, span := startUsecaseSpan(ctx, "usecase.DraftService.Summary")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	return draft.Summarize(s.session.AssignedPlayers())
}

// Reset discards the session and starts a new empty one.
func (s *DraftService) Reset(ctx context.Context) draft.Snapshot {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.Reset")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.session.ID()
	s.session.Reset(s.nextID())
	s.metrics.RecordDraftReset()
	s.logger.InfoContext(ctx, "draft reset", "previous_draft_id", previous, "draft_id", s.session.ID())
	return s.session.Snapshot()
}

func (s *DraftService) rejected(ctx context.Context, operation string, err error) error {
	reason := rejectionReason(err)
	s.metrics.RecordRejection(reason)
	s.logger.WarnContext(ctx, "draft operation rejected",
		"draft_id", s.session.ID(),
		"operation", operation,
		"reason", reason,
		"error", err,
	)
	return fmt.Errorf("%s: %w", operation, err)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, draft.ErrDuplicateAssignment):
		return "duplicate_assignment"
	case errors.Is(err, draft.ErrUnknownSlot):
		return "unknown_slot"
	case errors.Is(err, draft.ErrSlotOccupied):
		return "slot_occupied"
	case errors.Is(err, draft.ErrCandidateNotOffered):
		return "candidate_not_offered"
	case errors.Is(err, draft.ErrInvalidTransition):
		return "invalid_transition"
	default:
		return "unknown"
	}
}
