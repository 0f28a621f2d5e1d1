package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/swiss-tournament/models"
)

var (
	ErrCompetitorNotFound          = errors.New("competitor not found")
	ErrCompetitorNameConflict      = errors.New("competitor name already used in this tournament")
	ErrCompetitorTournamentInvalid = errors.New("competitor tournament conflict or invalid")
)

type CompetitorRepository interface {
	Create(ctx context.Context, competitor *models.Competitor) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Competitor, error)
	// ListByTournament returns competitors in registration (id) order.
	ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]*models.Competitor, error)
	UpdateName(ctx context.Context, id int, name string) error
	UpdateActive(ctx context.Context, id int, active bool) error
	UpdateScore(ctx context.Context, exec SQLExecutor, id int, score float64) error
	Delete(ctx context.Context, exec SQLExecutor, id int) error
}

type postgresCompetitorRepository struct {
	db *sql.DB
}

func NewPostgresCompetitorRepository(db *sql.DB) CompetitorRepository {
	return &postgresCompetitorRepository{db: db}
}

const competitorColumns = `id, tournament_id, user_id, name, rating, score, active, created_at`

func (r *postgresCompetitorRepository) Create(ctx context.Context, c *models.Competitor) error {
	query := `
		INSERT INTO competitors (tournament_id, user_id, name, rating, score, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, c.TournamentID, c.UserID, c.Name, c.Rating, c.Score, c.Active).
		Scan(&c.ID, &c.CreatedAt)
	return r.handleCompetitorError(err)
}

func (r *postgresCompetitorRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Competitor, error) {
	query := `SELECT ` + competitorColumns + ` FROM competitors WHERE id = $1`
	c, err := scanCompetitor(executorOr(exec, r.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCompetitorNotFound
		}
		return nil, fmt.Errorf("failed to scan competitor %d: %w", id, err)
	}
	return c, nil
}

func (r *postgresCompetitorRepository) ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]*models.Competitor, error) {
	query := `SELECT ` + competitorColumns + ` FROM competitors WHERE tournament_id = $1 ORDER BY id ASC`
	rows, err := executorOr(exec, r.db).QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query competitors for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	competitors := make([]*models.Competitor, 0)
	for rows.Next() {
		c, scanErr := scanCompetitor(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan competitor row: %w", scanErr)
		}
		competitors = append(competitors, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during competitor rows iteration: %w", err)
	}
	return competitors, nil
}

func (r *postgresCompetitorRepository) UpdateName(ctx context.Context, id int, name string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE competitors SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return r.handleCompetitorError(err)
	}
	return checkAffectedRows(result, ErrCompetitorNotFound)
}

func (r *postgresCompetitorRepository) UpdateActive(ctx context.Context, id int, active bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE competitors SET active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrCompetitorNotFound)
}

func (r *postgresCompetitorRepository) UpdateScore(ctx context.Context, exec SQLExecutor, id int, score float64) error {
	result, err := executorOr(exec, r.db).ExecContext(ctx, `UPDATE competitors SET score = $1 WHERE id = $2`, score, id)
	if err != nil {
		return fmt.Errorf("UpdateScore: failed to execute query for competitor %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrCompetitorNotFound)
}

// Delete removes the competitor and, through the foreign keys, every pairing it took part in.
func (r *postgresCompetitorRepository) Delete(ctx context.Context, exec SQLExecutor, id int) error {
	result, err := executorOr(exec, r.db).ExecContext(ctx, `DELETE FROM competitors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrCompetitorNotFound)
}

func scanCompetitor(rowScanner interface{ Scan(...interface{}) error }) (*models.Competitor, error) {
	var c models.Competitor
	err := rowScanner.Scan(&c.ID, &c.TournamentID, &c.UserID, &c.Name, &c.Rating, &c.Score, &c.Active, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresCompetitorRepository) handleCompetitorError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := pqError(err); ok {
		switch pqErr.Constraint {
		case "competitors_tournament_id_name_key":
			return ErrCompetitorNameConflict
		case "competitors_tournament_id_fkey":
			return ErrCompetitorTournamentInvalid
		}
	}
	return err
}
