package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/swiss-tournament/brackets"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/repositories"
)

// handleRepositoryError translates repository sentinels into service errors.
func handleRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrTournamentNotFound):
		return ErrTournamentNotFound
	case errors.Is(err, repositories.ErrCompetitorNotFound):
		return ErrCompetitorNotFound
	case errors.Is(err, repositories.ErrRoundNotFound):
		return ErrRoundNotFound
	case errors.Is(err, repositories.ErrPairingNotFound):
		return ErrPairingNotFound
	case errors.Is(err, repositories.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, repositories.ErrTournamentNameConflict):
		return ErrTournamentNameConflict
	case errors.Is(err, repositories.ErrCompetitorNameConflict):
		return ErrCompetitorNameConflict
	case errors.Is(err, repositories.ErrCompetitorTournamentInvalid):
		return ErrTournamentNotFound
	case errors.Is(err, repositories.ErrUserEmailConflict):
		return ErrUserEmailConflict
	case errors.Is(err, repositories.ErrUserNicknameConflict):
		return ErrUserNicknameConflict
	case errors.Is(err, repositories.ErrRoundNumberConflict):
		return ErrRoundGenerationConflict
	case errors.Is(err, repositories.ErrTournamentInvalidOrg):
		// токен ссылается на удалённого пользователя
		return ErrAuthenticationFailed
	}
	return err
}

// requireOrganizer loads the tournament and checks that userID owns it.
func requireOrganizer(ctx context.Context, repo repositories.TournamentRepository, exec repositories.SQLExecutor, userID, tournamentID int) (*models.Tournament, error) {
	tournament, err := repo.GetByID(ctx, exec, tournamentID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if tournament.OrganizerID != userID {
		return nil, ErrForbiddenOperation
	}
	return tournament, nil
}

// recomputeScores rewrites every competitor's score from the full pairing history.
// Must run inside the same transaction as the write that changed the history.
func recomputeScores(ctx context.Context, exec repositories.SQLExecutor, competitorRepo repositories.CompetitorRepository, pairingRepo repositories.PairingRepository, tournamentID int) error {
	competitors, err := competitorRepo.ListByTournament(ctx, exec, tournamentID)
	if err != nil {
		return fmt.Errorf("failed to list competitors for score recompute: %w", err)
	}
	pairings, err := pairingRepo.ListByTournament(ctx, exec, tournamentID)
	if err != nil {
		return fmt.Errorf("failed to list pairings for score recompute: %w", err)
	}

	scores := brackets.RecomputeScores(competitors, pairings)
	for _, c := range competitors {
		if scores[c.ID] == c.Score {
			continue
		}
		if err := competitorRepo.UpdateScore(ctx, exec, c.ID, scores[c.ID]); err != nil {
			return fmt.Errorf("failed to update score of competitor %d: %w", c.ID, err)
		}
	}
	return nil
}

// standingRows numbers an already ranked list; equal score and rating share a rank.
func standingRows(ranked []*models.Competitor) []models.StandingRow {
	rows := make([]models.StandingRow, 0, len(ranked))
	for i, c := range ranked {
		rank := i + 1
		if i > 0 {
			prev := ranked[i-1]
			if prev.Score == c.Score && prev.Rating == c.Rating {
				rank = rows[i-1].Rank
			}
		}
		rows = append(rows, models.StandingRow{Rank: rank, Competitor: *c})
	}
	return rows
}

func notify(ctx context.Context, notifier Notifier, logger *slog.Logger, tournamentID int) {
	if err := notifier.TournamentChanged(ctx, tournamentID); err != nil {
		logger.Warn("failed to notify tournament viewers", slog.Int("tournament_id", tournamentID), slog.Any("error", err))
	}
}
