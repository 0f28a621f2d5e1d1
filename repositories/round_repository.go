package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/swiss-tournament/models"
)

var (
	ErrRoundNotFound       = errors.New("round not found")
	ErrRoundNumberConflict = errors.New("round number already allocated for this tournament")
)

type RoundRepository interface {
	// NextNumber returns the next unused round number. Call it while holding
	// the tournament lock (see Transactor), otherwise two callers can get the same number.
	NextNumber(ctx context.Context, exec SQLExecutor, tournamentID int) (int, error)
	// Create stores the round and its pairings verbatim.
	Create(ctx context.Context, exec SQLExecutor, round *models.Round, pairings []*models.Pairing) error
	GetByNumber(ctx context.Context, exec SQLExecutor, tournamentID, number int) (*models.Round, error)
	// ListByTournament returns all rounds with their pairings, ordered by number then board.
	ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]models.Round, error)
	Delete(ctx context.Context, exec SQLExecutor, roundID int) error
}

type postgresRoundRepository struct {
	db *sql.DB
}

func NewPostgresRoundRepository(db *sql.DB) RoundRepository {
	return &postgresRoundRepository{db: db}
}

func (r *postgresRoundRepository) NextNumber(ctx context.Context, exec SQLExecutor, tournamentID int) (int, error) {
	var next int
	query := `SELECT COALESCE(MAX(number), 0) + 1 FROM rounds WHERE tournament_id = $1`
	if err := executorOr(exec, r.db).QueryRowContext(ctx, query, tournamentID).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to allocate round number for tournament %d: %w", tournamentID, err)
	}
	return next, nil
}

func (r *postgresRoundRepository) Create(ctx context.Context, exec SQLExecutor, round *models.Round, pairings []*models.Pairing) error {
	executor := executorOr(exec, r.db)

	err := executor.QueryRowContext(ctx,
		`INSERT INTO rounds (tournament_id, number) VALUES ($1, $2) RETURNING id, created_at`,
		round.TournamentID, round.Number,
	).Scan(&round.ID, &round.CreatedAt)
	if err != nil {
		if pqErr, ok := pqError(err); ok && pqErr.Constraint == "rounds_tournament_id_number_key" {
			return ErrRoundNumberConflict
		}
		return fmt.Errorf("failed to insert round %d for tournament %d: %w", round.Number, round.TournamentID, err)
	}

	query := `
		INSERT INTO pairings (id, round_id, board, first_id, first_name, second_id, second_name, result)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	round.Pairings = make([]models.Pairing, 0, len(pairings))
	for _, p := range pairings {
		p.RoundID = round.ID
		p.TournamentID = round.TournamentID
		p.RoundNumber = round.Number
		if err := executor.QueryRowContext(ctx, query,
			p.ID, p.RoundID, p.Board, p.FirstID, p.FirstName, p.SecondID, p.SecondName, p.Result,
		).Scan(&p.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert pairing %s (board %d): %w", p.ID, p.Board, err)
		}
		round.Pairings = append(round.Pairings, *p)
	}
	return nil
}

func (r *postgresRoundRepository) GetByNumber(ctx context.Context, exec SQLExecutor, tournamentID, number int) (*models.Round, error) {
	round := &models.Round{}
	err := executorOr(exec, r.db).QueryRowContext(ctx,
		`SELECT id, tournament_id, number, created_at FROM rounds WHERE tournament_id = $1 AND number = $2`,
		tournamentID, number,
	).Scan(&round.ID, &round.TournamentID, &round.Number, &round.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to scan round %d of tournament %d: %w", number, tournamentID, err)
	}
	return round, nil
}

func (r *postgresRoundRepository) ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]models.Round, error) {
	executor := executorOr(exec, r.db)

	rows, err := executor.QueryContext(ctx,
		`SELECT id, tournament_id, number, created_at FROM rounds WHERE tournament_id = $1 ORDER BY number ASC`,
		tournamentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query rounds for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	rounds := make([]models.Round, 0)
	index := make(map[int]int)
	for rows.Next() {
		var round models.Round
		if err := rows.Scan(&round.ID, &round.TournamentID, &round.Number, &round.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan round row: %w", err)
		}
		round.Pairings = []models.Pairing{}
		index[round.ID] = len(rounds)
		rounds = append(rounds, round)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during round rows iteration: %w", err)
	}

	pairings, err := listPairings(ctx, executor, tournamentID)
	if err != nil {
		return nil, err
	}
	for _, p := range pairings {
		if i, ok := index[p.RoundID]; ok {
			rounds[i].Pairings = append(rounds[i].Pairings, p)
		}
	}
	return rounds, nil
}

// Delete removes the round; its pairings are removed by ON DELETE CASCADE.
func (r *postgresRoundRepository) Delete(ctx context.Context, exec SQLExecutor, roundID int) error {
	result, err := executorOr(exec, r.db).ExecContext(ctx, `DELETE FROM rounds WHERE id = $1`, roundID)
	if err != nil {
		return fmt.Errorf("failed to delete round %d: %w", roundID, err)
	}
	return checkAffectedRows(result, ErrRoundNotFound)
}
