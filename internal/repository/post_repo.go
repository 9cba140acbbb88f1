package repository

import (
	"context"
	"fmt"

	"gamenight/internal/models"

	"github.com/jmoiron/sqlx"
)

type PostRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepository { return &PostRepository{db: db} }

var _ Posts = (*PostRepository)(nil)

const (
	insertPostSQL         = `INSERT INTO posts (game_id, user_id, body) VALUES (?, ?, ?) RETURNING id`
	selectPostByIDSQL     = `SELECT id, game_id, user_id, body, created_at FROM posts WHERE id = ?`
	selectPostsByGameSQL  = `SELECT id, game_id, user_id, body, created_at FROM posts WHERE game_id = ? ORDER BY id ASC`
	insertCommentSQL      = `INSERT INTO comments (post_id, user_id, body) VALUES (?, ?, ?) RETURNING id`
	selectCommentsByPosts = `SELECT id, post_id, user_id, body, created_at FROM comments WHERE post_id IN (?) ORDER BY id ASC`
)

func (r *PostRepository) Create(ctx context.Context, p models.Post) (int64, error) {
	var id int64
	if err := r.db.QueryRowxContext(ctx, r.db.Rebind(insertPostSQL), p.GameID, p.UserID, p.Body).Scan(&id); err != nil {
		return 0, classify(err, "insert post for game %d", p.GameID)
	}
	return id, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (models.Post, error) {
	var p models.Post
	if err := r.db.GetContext(ctx, &p, r.db.Rebind(selectPostByIDSQL), id); err != nil {
		return models.Post{}, classify(err, "select post %d", id)
	}
	return p, nil
}

// ListByGame returns the posts of one game in creation order. Comments are
// not loaded.
func (r *PostRepository) ListByGame(ctx context.Context, gameID int64) ([]models.Post, error) {
	out := make([]models.Post, 0, 16)
	if err := r.db.SelectContext(ctx, &out, r.db.Rebind(selectPostsByGameSQL), gameID); err != nil {
		return nil, fmt.Errorf("select posts of game %d: %w", gameID, err)
	}
	return out, nil
}

type CommentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) *CommentRepository { return &CommentRepository{db: db} }

var _ Comments = (*CommentRepository)(nil)

func (r *CommentRepository) Create(ctx context.Context, c models.Comment) (int64, error) {
	var id int64
	if err := r.db.QueryRowxContext(ctx, r.db.Rebind(insertCommentSQL), c.PostID, c.UserID, c.Body).Scan(&id); err != nil {
		return 0, classify(err, "insert comment for post %d", c.PostID)
	}
	return id, nil
}

// ListByPostIDs returns every comment whose post_id is in postIDs. An empty
// postIDs returns an empty slice without querying.
func (r *CommentRepository) ListByPostIDs(ctx context.Context, postIDs []int64) ([]models.Comment, error) {
	out := make([]models.Comment, 0, 32)
	if len(postIDs) == 0 {
		return out, nil
	}

	q, args, err := sqlx.In(selectCommentsByPosts, postIDs)
	if err != nil {
		return nil, fmt.Errorf("expand comment query: %w", err)
	}
	if err := r.db.SelectContext(ctx, &out, r.db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("select comments of %d posts: %w", len(postIDs), err)
	}
	return out, nil
}
