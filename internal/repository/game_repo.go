package repository

import (
	"context"
	"fmt"
	"time"

	"gamenight/internal/models"

	"github.com/jmoiron/sqlx"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository { return &GameRepository{db: db} }

var _ Games = (*GameRepository)(nil)

const gameColumns = `id, owner_id, name, description, location, starts_at, created_at`

const (
	insertGameSQL = `
		INSERT INTO games (owner_id, name, description, location, starts_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`
	selectGameByIDSQL     = `SELECT ` + gameColumns + ` FROM games WHERE id = ?`
	selectGamesSQL        = `SELECT ` + gameColumns + ` FROM games ORDER BY starts_at ASC, id ASC`
	selectGamesByOwnerSQL = `SELECT ` + gameColumns + ` FROM games WHERE owner_id = ? ORDER BY starts_at ASC, id ASC`
)

// Create inserts a game. A zero StartsAt is stored as the current time.
func (r *GameRepository) Create(ctx context.Context, g models.Game) (int64, error) {
	if g.StartsAt.IsZero() {
		g.StartsAt = time.Now().UTC()
	} else {
		g.StartsAt = g.StartsAt.UTC()
	}

	var id int64
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(insertGameSQL),
		g.OwnerID,
		g.Name,
		g.Description,
		g.Location,
		g.StartsAt,
	).Scan(&id)
	if err != nil {
		return 0, classify(err, "insert game %q", g.Name)
	}
	return id, nil
}

func (r *GameRepository) GetByID(ctx context.Context, id int64) (models.Game, error) {
	var g models.Game
	if err := r.db.GetContext(ctx, &g, r.db.Rebind(selectGameByIDSQL), id); err != nil {
		return models.Game{}, classify(err, "select game %d", id)
	}
	g.StartsAt = g.StartsAt.UTC()
	return g, nil
}

func (r *GameRepository) List(ctx context.Context) ([]models.Game, error) {
	return r.selectGames(ctx, selectGamesSQL)
}

// ListByOwner returns the games created by ownerID, soonest first.
func (r *GameRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Game, error) {
	return r.selectGames(ctx, r.db.Rebind(selectGamesByOwnerSQL), ownerID)
}

func (r *GameRepository) selectGames(ctx context.Context, q string, args ...any) ([]models.Game, error) {
	out := make([]models.Game, 0, 16)
	if err := r.db.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}
	for i := range out {
		out[i].StartsAt = out[i].StartsAt.UTC()
	}
	return out, nil
}
