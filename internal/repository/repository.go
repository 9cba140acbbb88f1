package repository

import (
	"context"
	"errors"

	"gamenight/internal/models"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned (wrapped) when a single-row lookup matches nothing.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned (wrapped) when a unique constraint rejects a write.
var ErrDuplicate = errors.New("duplicate")

type Users interface {
	Create(ctx context.Context, u models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, id int64, firstName, lastName, equipment string) error
	SetImage(ctx context.Context, id int64, img string) error
}

type Games interface {
	Create(ctx context.Context, g models.Game) (int64, error)
	GetByID(ctx context.Context, id int64) (models.Game, error)
	List(ctx context.Context) ([]models.Game, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Game, error)
}

type Posts interface {
	Create(ctx context.Context, p models.Post) (int64, error)
	GetByID(ctx context.Context, id int64) (models.Post, error)
	ListByGame(ctx context.Context, gameID int64) ([]models.Post, error)
}

type Comments interface {
	Create(ctx context.Context, c models.Comment) (int64, error)
	ListByPostIDs(ctx context.Context, postIDs []int64) ([]models.Comment, error)
}

type Repository struct {
	Users    Users
	Games    Games
	Posts    Posts
	Comments Comments
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Games:    NewGameRepository(db),
		Posts:    NewPostRepository(db),
		Comments: NewCommentRepository(db),
	}
}
