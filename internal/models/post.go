package models

import "time"

// Post is a discussion entry scoped to one game.
type Post struct {
	ID        int64     `json:"id" db:"id"`
	GameID    int64     `json:"game_id" db:"game_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Comments  []Comment `json:"comments" db:"-"`
}

// Comment is a reply scoped to one post.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"post_id" db:"post_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
