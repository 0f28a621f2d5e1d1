package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/swiss-tournament/brackets"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/repositories"
	"github.com/Dosada05/swiss-tournament/storage"
)

type RoundService interface {
	// GenerateNextRound pairs the active competitors for the next round and stores it.
	GenerateNextRound(ctx context.Context, userID, tournamentID int) (*models.Round, error)
	ListRounds(ctx context.Context, tournamentID int) ([]models.Round, error)
	// DeleteRound removes the latest round; earlier rounds cannot be deleted.
	DeleteRound(ctx context.Context, userID, tournamentID, number int) error
	// RecordResult stores (or clears, for nil) a result and recomputes all scores.
	RecordResult(ctx context.Context, userID, tournamentID int, pairingID string, result *models.PairingResult) (*models.Pairing, error)
	DeletePairing(ctx context.Context, userID, tournamentID int, pairingID string) error
}

type roundService struct {
	transactor     repositories.Transactor
	tournamentRepo repositories.TournamentRepository
	competitorRepo repositories.CompetitorRepository
	roundRepo      repositories.RoundRepository
	pairingRepo    repositories.PairingRepository
	generator      brackets.BracketGenerator
	notifier       Notifier
	archiver       RoundArchiver
	logger         *slog.Logger
	now            func() time.Time
}

// NewRoundService wires the round workflow. archiver may be nil to disable snapshots.
func NewRoundService(
	transactor repositories.Transactor,
	tournamentRepo repositories.TournamentRepository,
	competitorRepo repositories.CompetitorRepository,
	roundRepo repositories.RoundRepository,
	pairingRepo repositories.PairingRepository,
	generator brackets.BracketGenerator,
	notifier Notifier,
	archiver RoundArchiver,
	logger *slog.Logger,
) RoundService {
	if generator == nil {
		generator = brackets.NewSwissGenerator()
	}
	if notifier == nil {
		notifier = noopNotifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &roundService{
		transactor:     transactor,
		tournamentRepo: tournamentRepo,
		competitorRepo: competitorRepo,
		roundRepo:      roundRepo,
		pairingRepo:    pairingRepo,
		generator:      generator,
		notifier:       notifier,
		archiver:       archiver,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *roundService) GenerateNextRound(ctx context.Context, userID, tournamentID int) (*models.Round, error) {
	var round *models.Round

	err := s.transactor.WithinTournament(ctx, tournamentID, func(exec repositories.SQLExecutor) error {
		tournament, err := requireOrganizer(ctx, s.tournamentRepo, exec, userID, tournamentID)
		if err != nil {
			return err
		}

		competitors, err := s.competitorRepo.ListByTournament(ctx, exec, tournamentID)
		if err != nil {
			return fmt.Errorf("failed to list competitors: %w", err)
		}
		ranked := brackets.RankForPairing(competitors)
		if len(ranked) < 2 {
			return fmt.Errorf("%w (found %d)", ErrInsufficientCompetitors, len(ranked))
		}

		number, err := s.roundRepo.NextNumber(ctx, exec, tournamentID)
		if err != nil {
			return err
		}
		if tournament.MaxRounds > 0 && number > tournament.MaxRounds {
			return fmt.Errorf("%w: tournament %d is limited to %d rounds", ErrNoRoundNumberAvailable, tournamentID, tournament.MaxRounds)
		}

		previous, err := s.roundRepo.ListByTournament(ctx, exec, tournamentID)
		if err != nil {
			return fmt.Errorf("failed to load pairing history: %w", err)
		}

		pairings, err := s.generator.GenerateRound(ctx, brackets.GenerateRoundParams{
			RoundNumber: number,
			Competitors: ranked,
			History:     brackets.BuildHistory(previous),
		})
		if err != nil {
			if errors.Is(err, ErrInternalConsistency) {
				s.logger.Error("pairing engine left a competitor unpaired",
					slog.Int("tournament_id", tournamentID),
					slog.Int("round", number),
					slog.Any("error", err))
			}
			return err
		}

		round = &models.Round{TournamentID: tournamentID, Number: number}
		if err := s.roundRepo.Create(ctx, exec, round, pairings); err != nil {
			return handleRepositoryError(err)
		}
		// Бай сразу приносит очко.
		return recomputeScores(ctx, exec, s.competitorRepo, s.pairingRepo, tournamentID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("round generated",
		slog.Int("tournament_id", tournamentID),
		slog.Int("round", round.Number),
		slog.Int("pairings", len(round.Pairings)))

	notify(ctx, s.notifier, s.logger, tournamentID)
	s.archive(ctx, round)
	return round, nil
}

// archive uploads a standings snapshot; failures are logged only.
func (s *roundService) archive(ctx context.Context, round *models.Round) {
	if s.archiver == nil {
		return
	}
	competitors, err := s.competitorRepo.ListByTournament(ctx, nil, round.TournamentID)
	if err != nil {
		s.logger.Warn("failed to load standings for archive", slog.Int("tournament_id", round.TournamentID), slog.Any("error", err))
		return
	}

	result, err := s.archiver.ArchiveRound(ctx, storage.RoundSnapshot{
		TournamentID: round.TournamentID,
		RoundNumber:  round.Number,
		GeneratedAt:  s.now().UTC(),
		Standings:    standingRows(brackets.RankStandings(competitors)),
		Pairings:     round.Pairings,
	})
	if err != nil {
		s.logger.Warn("failed to archive round snapshot",
			slog.Int("tournament_id", round.TournamentID),
			slog.Int("round", round.Number),
			slog.Any("error", err))
		return
	}
	s.logger.Debug("round snapshot archived", slog.String("key", result.Key), slog.String("location", result.Location))
}

func (s *roundService) ListRounds(ctx context.Context, tournamentID int) ([]models.Round, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, nil, tournamentID); err != nil {
		return nil, handleRepositoryError(err)
	}
	rounds, err := s.roundRepo.ListByTournament(ctx, nil, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds of tournament %d: %w", tournamentID, err)
	}
	return rounds, nil
}

func (s *roundService) DeleteRound(ctx context.Context, userID, tournamentID, number int) error {
	err := s.transactor.WithinTournament(ctx, tournamentID, func(exec repositories.SQLExecutor) error {
		if _, err := requireOrganizer(ctx, s.tournamentRepo, exec, userID, tournamentID); err != nil {
			return err
		}

		next, err := s.roundRepo.NextNumber(ctx, exec, tournamentID)
		if err != nil {
			return err
		}
		if number < 1 || number >= next {
			return ErrRoundNotFound
		}
		if number != next-1 {
			return ErrRoundNotLatest
		}

		round, err := s.roundRepo.GetByNumber(ctx, exec, tournamentID, number)
		if err != nil {
			return handleRepositoryError(err)
		}
		if err := s.roundRepo.Delete(ctx, exec, round.ID); err != nil {
			return handleRepositoryError(err)
		}
		return recomputeScores(ctx, exec, s.competitorRepo, s.pairingRepo, tournamentID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("round deleted", slog.Int("tournament_id", tournamentID), slog.Int("round", number))
	notify(ctx, s.notifier, s.logger, tournamentID)
	if s.archiver != nil {
		if err := s.archiver.RemoveRound(ctx, tournamentID, number); err != nil {
			s.logger.Warn("failed to remove round snapshot",
				slog.Int("tournament_id", tournamentID),
				slog.Int("round", number),
				slog.Any("error", err))
		}
	}
	return nil
}

func (s *roundService) RecordResult(ctx context.Context, userID, tournamentID int, pairingID string, result *models.PairingResult) (*models.Pairing, error) {
	if result != nil && !result.Valid() {
		return nil, ErrInvalidResult
	}

	var pairing *models.Pairing
	err := s.transactor.WithinTournament(ctx, tournamentID, func(exec repositories.SQLExecutor) error {
		if _, err := requireOrganizer(ctx, s.tournamentRepo, exec, userID, tournamentID); err != nil {
			return err
		}

		p, err := s.pairingRepo.GetByID(ctx, exec, tournamentID, pairingID)
		if err != nil {
			return handleRepositoryError(err)
		}
		if p.IsBye() {
			return ErrByeResultImmutable
		}

		if err := s.pairingRepo.UpdateResult(ctx, exec, pairingID, result); err != nil {
			return handleRepositoryError(err)
		}
		p.Result = result
		pairing = p

		return recomputeScores(ctx, exec, s.competitorRepo, s.pairingRepo, tournamentID)
	})
	if err != nil {
		return nil, err
	}

	notify(ctx, s.notifier, s.logger, tournamentID)
	return pairing, nil
}

func (s *roundService) DeletePairing(ctx context.Context, userID, tournamentID int, pairingID string) error {
	err := s.transactor.WithinTournament(ctx, tournamentID, func(exec repositories.SQLExecutor) error {
		if _, err := requireOrganizer(ctx, s.tournamentRepo, exec, userID, tournamentID); err != nil {
			return err
		}
		if _, err := s.pairingRepo.GetByID(ctx, exec, tournamentID, pairingID); err != nil {
			return handleRepositoryError(err)
		}
		if err := s.pairingRepo.Delete(ctx, exec, pairingID); err != nil {
			return handleRepositoryError(err)
		}
		return recomputeScores(ctx, exec, s.competitorRepo, s.pairingRepo, tournamentID)
	})
	if err != nil {
		return err
	}

	notify(ctx, s.notifier, s.logger, tournamentID)
	return nil
}
