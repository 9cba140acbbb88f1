package service

import (
	"context"
	"strings"

	"gamenight/internal/apperror"
	"gamenight/internal/models"
	"gamenight/internal/repository"
)

type GameService struct {
	games repository.Games
}

func NewGameService(games repository.Games) *GameService {
	return &GameService{games: games}
}

func (s *GameService) CreateGame(ctx context.Context, ownerID int64, in GameInput) (int64, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return 0, apperror.NewValidation("game name is required")
	}
	return s.games.Create(ctx, models.Game{
		OwnerID:     ownerID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		StartsAt:    in.StartsAt,
	})
}

func (s *GameService) GetGame(ctx context.Context, id int64) (models.Game, error) {
	g, err := s.games.GetByID(ctx, id)
	if err != nil {
		return models.Game{}, translate(err, "game not found")
	}
	return g, nil
}

func (s *GameService) ListGames(ctx context.Context) ([]models.Game, error) {
	return s.games.List(ctx)
}
