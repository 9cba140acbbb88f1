package service

import (
	"context"
	"io"
	"time"

	"gamenight"
	"gamenight/internal/models"
	"gamenight/internal/repository"
)

// Authorization covers credentials and the signed session token.
type Authorization interface {
	Register(ctx context.Context, in RegisterInput) (int64, error)
	Login(ctx context.Context, email, password string) (int64, error)
	IssueSession(userID int64) (string, error)
	ParseSession(token string) (int64, error)
}

// Users exposes user rows and profile edits.
type Users interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateProfile(ctx context.Context, actorID, userID int64, in ProfileInput) error
	SetPicture(ctx context.Context, userID int64, filename string, r io.Reader) (string, error)
}

// Games creates and reads games (events).
type Games interface {
	CreateGame(ctx context.Context, ownerID int64, in GameInput) (int64, error)
	GetGame(ctx context.Context, id int64) (models.Game, error)
	ListGames(ctx context.Context) ([]models.Game, error)
}

// Posts handles the discussion of a game.
type Posts interface {
	Thread(ctx context.Context, gameID int64) ([]models.Post, error)
	CreatePost(ctx context.Context, userID, gameID int64, body string) (models.Post, error)
	AddComment(ctx context.Context, userID, postID int64, body string) (models.Comment, error)
}

// Profiles builds the display data of a user.
type Profiles interface {
	Profile(ctx context.Context, userID int64) (gamenight.Profile, error)
}

// Events builds the event page payload.
type Events interface {
	EventView(ctx context.Context, viewerID, gameID int64) (gamenight.EventView, error)
}

// PictureStore persists uploaded pictures and returns their public URL.
type PictureStore interface {
	Save(originalName string, r io.Reader) (string, error)
}

// SessionOptions configure session token signing.
type SessionOptions struct {
	Secret string
	TTL    time.Duration
}

type Service struct {
	Authorization
	Users
	Games
	Posts
	Profiles
	Events
}

func NewService(repos *repository.Repository, pictures PictureStore, session SessionOptions) *Service {
	profiles := NewProfileService(repos.Users, repos.Games)
	posts := NewPostService(repos.Games, repos.Posts, repos.Comments)
	return &Service{
		Authorization: NewAuthService(repos.Users, session),
		Users:         NewUserService(repos.Users, pictures),
		Games:         NewGameService(repos.Games),
		Posts:         posts,
		Profiles:      profiles,
		Events:        NewEventService(profiles, posts),
	}
}
