package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/repositories"
)

type RegisterCompetitorInput struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	UserID *int   `json:"user_id,omitempty"`
}

// UpdateCompetitorInput changes only the fields that are set.
type UpdateCompetitorInput struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

type CompetitorService interface {
	RegisterCompetitor(ctx context.Context, userID, tournamentID int, input RegisterCompetitorInput) (*models.Competitor, error)
	UpdateCompetitor(ctx context.Context, userID, tournamentID, competitorID int, input UpdateCompetitorInput) (*models.Competitor, error)
	DeleteCompetitor(ctx context.Context, userID, tournamentID, competitorID int) error
}

type competitorService struct {
	transactor     repositories.Transactor
	tournamentRepo repositories.TournamentRepository
	competitorRepo repositories.CompetitorRepository
	pairingRepo    repositories.PairingRepository
	notifier       Notifier
	logger         *slog.Logger
}

func NewCompetitorService(
	transactor repositories.Transactor,
	tournamentRepo repositories.TournamentRepository,
	competitorRepo repositories.CompetitorRepository,
	pairingRepo repositories.PairingRepository,
	notifier Notifier,
	logger *slog.Logger,
) CompetitorService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &competitorService{
		transactor:     transactor,
		tournamentRepo: tournamentRepo,
		competitorRepo: competitorRepo,
		pairingRepo:    pairingRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

func (s *competitorService) RegisterCompetitor(ctx context.Context, userID, tournamentID int, input RegisterCompetitorInput) (*models.Competitor, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCompetitorNameRequired
	}
	if input.Rating < 0 {
		return nil, ErrCompetitorInvalidRating
	}
	if _, err := requireOrganizer(ctx, s.tournamentRepo, nil, userID, tournamentID); err != nil {
		return nil, err
	}

	competitor := &models.Competitor{
		TournamentID: tournamentID,
		UserID:       input.UserID,
		Name:         name,
		Rating:       input.Rating,
		Active:       true,
	}
	if err := s.competitorRepo.Create(ctx, competitor); err != nil {
		return nil, handleRepositoryError(err)
	}

	notify(ctx, s.notifier, s.logger, tournamentID)
	return competitor, nil
}

func (s *competitorService) UpdateCompetitor(ctx context.Context, userID, tournamentID, competitorID int, input UpdateCompetitorInput) (*models.Competitor, error) {
	if input.Name == nil && input.Active == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrValidationFailed)
	}
	if _, err := requireOrganizer(ctx, s.tournamentRepo, nil, userID, tournamentID); err != nil {
		return nil, err
	}
	competitor, err := s.competitorInTournament(ctx, nil, tournamentID, competitorID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrCompetitorNameRequired
		}
		// Pairings keep the name snapshotted when they were created.
		if err := s.competitorRepo.UpdateName(ctx, competitorID, name); err != nil {
			return nil, handleRepositoryError(err)
		}
		competitor.Name = name
	}
	if input.Active != nil {
		if err := s.competitorRepo.UpdateActive(ctx, competitorID, *input.Active); err != nil {
			return nil, handleRepositoryError(err)
		}
		competitor.Active = *input.Active
	}

	notify(ctx, s.notifier, s.logger, tournamentID)
	return competitor, nil
}

func (s *competitorService) DeleteCompetitor(ctx context.Context, userID, tournamentID, competitorID int) error {
	err := s.transactor.WithinTournament(ctx, tournamentID, func(exec repositories.SQLExecutor) error {
		if _, err := requireOrganizer(ctx, s.tournamentRepo, exec, userID, tournamentID); err != nil {
			return err
		}
		if _, err := s.competitorInTournament(ctx, exec, tournamentID, competitorID); err != nil {
			return err
		}
		// Удаление каскадно убирает пары, поэтому очки соперников пересчитываются.
		if err := s.competitorRepo.Delete(ctx, exec, competitorID); err != nil {
			return handleRepositoryError(err)
		}
		return recomputeScores(ctx, exec, s.competitorRepo, s.pairingRepo, tournamentID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("competitor deleted", slog.Int("tournament_id", tournamentID), slog.Int("competitor_id", competitorID))
	notify(ctx, s.notifier, s.logger, tournamentID)
	return nil
}

func (s *competitorService) competitorInTournament(ctx context.Context, exec repositories.SQLExecutor, tournamentID, competitorID int) (*models.Competitor, error) {
	competitor, err := s.competitorRepo.GetByID(ctx, exec, competitorID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if competitor.TournamentID != tournamentID {
		return nil, ErrCompetitorNotFound
	}
	return competitor, nil
}
