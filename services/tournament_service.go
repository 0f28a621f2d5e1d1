package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dosada05/swiss-tournament/brackets"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/repositories"
	"golang.org/x/sync/errgroup"
)

type CreateTournamentInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	MaxRounds   int     `json:"max_rounds"`
}

type TournamentService interface {
	CreateTournament(ctx context.Context, userID int, input CreateTournamentInput) (*models.Tournament, error)
	GetTournament(ctx context.Context, tournamentID int) (*models.Tournament, error)
	// EnsureExists returns ErrTournamentNotFound for unknown ids.
	EnsureExists(ctx context.Context, tournamentID int) error
	ListTournaments(ctx context.Context, filter repositories.ListTournamentsFilter) ([]models.Tournament, error)
	DeleteTournament(ctx context.Context, userID, tournamentID int) error
	// GetStandings ranks every competitor, inactive ones included.
	GetStandings(ctx context.Context, tournamentID int) ([]models.StandingRow, error)
}

type tournamentService struct {
	transactor     repositories.Transactor
	tournamentRepo repositories.TournamentRepository
	competitorRepo repositories.CompetitorRepository
	roundRepo      repositories.RoundRepository
	userRepo       repositories.UserRepository
	notifier       Notifier
	logger         *slog.Logger
}

func NewTournamentService(
	transactor repositories.Transactor,
	tournamentRepo repositories.TournamentRepository,
	competitorRepo repositories.CompetitorRepository,
	roundRepo repositories.RoundRepository,
	userRepo repositories.UserRepository,
	notifier Notifier,
	logger *slog.Logger,
) TournamentService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &tournamentService{
		transactor:     transactor,
		tournamentRepo: tournamentRepo,
		competitorRepo: competitorRepo,
		roundRepo:      roundRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

func (s *tournamentService) CreateTournament(ctx context.Context, userID int, input CreateTournamentInput) (*models.Tournament, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTournamentNameRequired
	}
	if input.MaxRounds < 0 {
		return nil, ErrTournamentInvalidMaxRounds
	}

	tournament := &models.Tournament{
		Name:        name,
		Description: input.Description,
		OrganizerID: userID,
		MaxRounds:   input.MaxRounds,
	}
	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		return nil, handleRepositoryError(err)
	}
	s.logger.Info("tournament created", slog.Int("tournament_id", tournament.ID), slog.Int("organizer_id", userID))
	return tournament, nil
}

func (s *tournamentService) GetTournament(ctx context.Context, tournamentID int) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, nil, tournamentID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}

	g, gCtx := errgroup.WithContext(ctx)

	var organizer *models.User
	g.Go(func() error {
		user, err := s.userRepo.GetByID(gCtx, tournament.OrganizerID)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return nil
			}
			return fmt.Errorf("failed to load organizer of tournament %d: %w", tournamentID, err)
		}
		user.PasswordHash = ""
		organizer = user
		return nil
	})

	// Участники и туры читаются в одной транзакции под блокировкой турнира,
	// чтобы очки не разошлись с только что записанным результатом.
	var (
		competitors []*models.Competitor
		rounds      []models.Round
	)
	g.Go(func() error {
		return s.transactor.WithinTournament(gCtx, tournamentID, func(exec repositories.SQLExecutor) error {
			list, err := s.competitorRepo.ListByTournament(gCtx, exec, tournamentID)
			if err != nil {
				return fmt.Errorf("failed to load competitors of tournament %d: %w", tournamentID, err)
			}
			competitors = list

			rounds, err = s.roundRepo.ListByTournament(gCtx, exec, tournamentID)
			if err != nil {
				return fmt.Errorf("failed to load rounds of tournament %d: %w", tournamentID, err)
			}
			return nil
		})
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	tournament.Organizer = organizer
	tournament.Competitors = make([]models.Competitor, 0, len(competitors))
	for _, c := range competitors {
		tournament.Competitors = append(tournament.Competitors, *c)
	}
	tournament.Rounds = rounds
	return tournament, nil
}

func (s *tournamentService) EnsureExists(ctx context.Context, tournamentID int) error {
	_, err := s.tournamentRepo.GetByID(ctx, nil, tournamentID)
	return handleRepositoryError(err)
}

func (s *tournamentService) ListTournaments(ctx context.Context, filter repositories.ListTournamentsFilter) ([]models.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return tournaments, nil
}

func (s *tournamentService) DeleteTournament(ctx context.Context, userID, tournamentID int) error {
	if _, err := requireOrganizer(ctx, s.tournamentRepo, nil, userID, tournamentID); err != nil {
		return err
	}
	if err := s.tournamentRepo.Delete(ctx, tournamentID); err != nil {
		return handleRepositoryError(err)
	}
	notify(ctx, s.notifier, s.logger, tournamentID)
	return nil
}

func (s *tournamentService) GetStandings(ctx context.Context, tournamentID int) ([]models.StandingRow, error) {
	if err := s.EnsureExists(ctx, tournamentID); err != nil {
		return nil, err
	}
	competitors, err := s.competitorRepo.ListByTournament(ctx, nil, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list competitors of tournament %d: %w", tournamentID, err)
	}
	return standingRows(brackets.RankStandings(competitors)), nil
}
