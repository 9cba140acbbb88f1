package service

import (
	"context"

	"gamenight"
	"gamenight/internal/models"

	"golang.org/x/sync/errgroup"
)

type EventService struct {
	profiles Profiles
	posts    Posts
}

func NewEventService(profiles Profiles, posts Posts) *EventService {
	return &EventService{profiles: profiles, posts: posts}
}

// EventView loads the viewer's profile and the game's thread concurrently.
// The first failure cancels the other branch and is returned.
func (s *EventService) EventView(ctx context.Context, viewerID, gameID int64) (gamenight.EventView, error) {
	var (
		profile gamenight.Profile
		posts   []models.Post
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.profiles.Profile(gctx, viewerID)
		if err != nil {
			return err
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		t, err := s.posts.Thread(gctx, gameID)
		if err != nil {
			return err
		}
		posts = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return gamenight.EventView{}, err
	}

	return gamenight.EventView{ID: gameID, Profile: profile, Posts: posts}, nil
}
