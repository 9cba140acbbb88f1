package service

import (
	"context"
	"fmt"

	"gamenight"
	"gamenight/internal/repository"
)

type ProfileService struct {
	users repository.Users
	games repository.Games
}

func NewProfileService(users repository.Users, games repository.Games) *ProfileService {
	return &ProfileService{users: users, games: games}
}

// Profile returns the user and the games they own.
func (s *ProfileService) Profile(ctx context.Context, userID int64) (gamenight.Profile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return gamenight.Profile{}, translate(err, "user not found")
	}
	games, err := s.games.ListByOwner(ctx, userID)
	if err != nil {
		return gamenight.Profile{}, fmt.Errorf("load games of user %d: %w", userID, err)
	}
	return gamenight.Profile{User: u, Games: games}, nil
}
