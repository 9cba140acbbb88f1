package repository

import (
	"context"
	"fmt"

	"gamenight/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const userColumns = `id, first_name, last_name, email, img, equipment, password_hash, created_at`

const (
	insertUserSQL = `INSERT INTO users (first_name, last_name, email, password_hash) VALUES (?, ?, ?, ?) RETURNING id`

	selectUserByIDSQL    = `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	selectUserByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	selectUsersSQL       = `SELECT ` + userColumns + ` FROM users ORDER BY id ASC`

	updateUserProfileSQL = `UPDATE users SET first_name = ?, last_name = ?, equipment = ? WHERE id = ?`
	updateUserImageSQL   = `UPDATE users SET img = ? WHERE id = ?`
)

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(ctx context.Context, u models.User) (int64, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(insertUserSQL),
		u.FirstName, u.LastName, u.Email, u.PasswordHash,
	).Scan(&id)
	if err != nil {
		return 0, classify(err, "insert user %q", u.Email)
	}
	return id, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	var u models.User
	if err := r.db.GetContext(ctx, &u, r.db.Rebind(selectUserByIDSQL), id); err != nil {
		return models.User{}, classify(err, "select user %d", id)
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	if err := r.db.GetContext(ctx, &u, r.db.Rebind(selectUserByEmailSQL), email); err != nil {
		return models.User{}, classify(err, "select user %q", email)
	}
	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0, 16)
	if err := r.db.SelectContext(ctx, &users, selectUsersSQL); err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	return users, nil
}

// UpdateProfile changes the editable profile fields. A missing user is ErrNotFound.
func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, firstName, lastName, equipment string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(updateUserProfileSQL), firstName, lastName, equipment, id)
	if err != nil {
		return fmt.Errorf("update user %d: %w", id, err)
	}
	return expectOneRow(res, "update user %d", id)
}

func (r *UserRepository) SetImage(ctx context.Context, id int64, img string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(updateUserImageSQL), img, id)
	if err != nil {
		return fmt.Errorf("update user %d image: %w", id, err)
	}
	return expectOneRow(res, "update user %d image", id)
}
