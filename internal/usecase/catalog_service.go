package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/fut-draft/internal/domain/formation"
	"github.com/riskibarqy/fut-draft/internal/domain/manager"
	"github.com/riskibarqy/fut-draft/internal/domain/player"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type ListPlayersInput struct {
	Page     int
	PageSize int
	Filter   player.Filter
}

// PlayerPage is one page of the filtered player catalog. Page is 1-based.
type PlayerPage struct {
	Items      []player.Player
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// CatalogService is the read-only browsing surface over the three catalogs.
type CatalogService struct {
	playerRepo    player.Repository
	managerRepo   manager.Repository
	formationRepo formation.Repository
}

func NewCatalogService(playerRepo player.Repository, managerRepo manager.Repository, formationRepo formation.Repository) *CatalogService {
	return &CatalogService{
		playerRepo:    playerRepo,
		managerRepo:   managerRepo,
		formationRepo: formationRepo,
	}
}

func (s *CatalogService) ListPlayers(ctx context.Context, input ListPlayersInput) (PlayerPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListPlayers")
	defer span.End()

	if input.Page < 0 {
		return PlayerPage{}, fmt.Errorf("%w: page must not be negative", ErrInvalidInput)
	}
	if input.PageSize < 0 || input.PageSize > MaxPageSize {
		return PlayerPage{}, fmt.Errorf("%w: page size must be between 1 and %d", ErrInvalidInput, MaxPageSize)
	}
	if input.Page == 0 {
		input.Page = 1
	}
	if input.PageSize == 0 {
		input.PageSize = DefaultPageSize
	}

	filter := player.Filter{
		Position:    strings.ToUpper(strings.TrimSpace(input.Filter.Position)),
		Club:        strings.TrimSpace(input.Filter.Club),
		League:      strings.TrimSpace(input.Filter.League),
		Nationality: strings.TrimSpace(input.Filter.Nationality),
	}

	var (
		players []player.Player
		err     error
	)
	if filter.IsZero() {
		players, err = s.playerRepo.List(ctx)
	} else {
		players, err = s.playerRepo.Find(ctx, filter)
	}
	if err != nil {
		return PlayerPage{}, fmt.Errorf("%w: list players: %w", ErrDependencyUnavailable, err)
	}

	total := len(players)
	page := PlayerPage{
		Items:      []player.Player{},
		Page:       input.Page,
		PageSize:   input.PageSize,
		Total:      total,
		TotalPages: (total + input.PageSize - 1) / input.PageSize,
	}

	start := (input.Page - 1) * input.PageSize
	if start >= total {
		return page, nil
	}
	end := min(start+input.PageSize, total)
	page.Items = append(page.Items, players[start:end]...)
	return page, nil
}

func (s *CatalogService) GetPlayer(ctx context.Context, playerID int) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.GetPlayer")
	defer span.End()

	if playerID <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("%w: get player: %w", ErrDependencyUnavailable, err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	return item, nil
}

func (s *CatalogService) ListManagers(ctx context.Context) ([]manager.Manager, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListManagers")
	defer span.End()

	items, err := s.managerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list managers: %w", ErrDependencyUnavailable, err)
	}
	return items, nil
}

func (s *CatalogService) ListFormations(ctx context.Context) ([]formation.Formation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListFormations")
	defer span.End()

	items, err := s.formationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list formations: %w", ErrDependencyUnavailable, err)
	}
	return items, nil
}

func (s *CatalogService) GetFormation(ctx context.Context, formationID string) (formation.Formation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.GetFormation")
	defer span.End()

	formationID = strings.TrimSpace(formationID)
	if formationID == "" {
		return formation.Formation{}, fmt.Errorf("%w: formation id is required", ErrInvalidInput)
	}

	item, exists, err := s.formationRepo.GetByID(ctx, formationID)
	if err != nil {
		return formation.Formation{}, fmt.Errorf("%w: get formation: %w", ErrDependencyUnavailable, err)
	}
	if !exists {
		return formation.Formation{}, fmt.Errorf("%w: formation=%s", ErrNotFound, formationID)
	}
	return item, nil
}
