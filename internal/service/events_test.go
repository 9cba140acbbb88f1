package service

import (
	"context"
	"errors"
	"testing"

	"gamenight/internal/apperror"
	"gamenight/internal/models"
)

func newEventFixture() (*EventService, *fakeUserRepo, *fakeGameRepo, *fakeCommentRepo) {
	users := &fakeUserRepo{byID: map[int64]models.User{7: {ID: 7, FirstName: "Grace", Equipment: "racket"}}}
	games := &fakeGameRepo{
		byID:    map[int64]models.Game{5: {ID: 5, OwnerID: 7}},
		byOwner: map[int64][]models.Game{7: {{ID: 5, OwnerID: 7, Name: "Sunday doubles"}}},
	}
	posts := &fakePostRepo{posts: []models.Post{{ID: 1, GameID: 5}, {ID: 2, GameID: 5}}}
	comments := &fakeCommentRepo{comments: []models.Comment{
		{ID: 10, PostID: 1}, {ID: 11, PostID: 1}, {ID: 12, PostID: 2},
	}}

	profiles := NewProfileService(users, games)
	thread := NewPostService(games, posts, comments)
	return NewEventService(profiles, thread), users, games, comments
}

func TestEventService_EventView(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newEventFixture()

	view, err := svc.EventView(context.Background(), 7, 5)
	if err != nil {
		t.Fatalf("EventView: %v", err)
	}
	if view.ID != 5 {
		t.Fatalf("want id 5, got %d", view.ID)
	}
	if view.Profile.User.ID != 7 || len(view.Profile.Games) != 1 {
		t.Fatalf("unexpected profile: %+v", view.Profile)
	}
	if len(view.Posts) != 2 {
		t.Fatalf("want 2 posts, got %d", len(view.Posts))
	}
	if ids := commentIDs(view.Posts[0]); !equalIDs(ids, []int64{10, 11}) {
		t.Fatalf("post 1 comments: %v", ids)
	}
	if ids := commentIDs(view.Posts[1]); !equalIDs(ids, []int64{12}) {
		t.Fatalf("post 2 comments: %v", ids)
	}
}

func TestEventService_EventView_CommentFailure(t *testing.T) {
	t.Parallel()
	svc, _, _, comments := newEventFixture()
	comments.listErr = errors.New("connection reset")

	_, err := svc.EventView(context.Background(), 7, 5)
	if err == nil {
		t.Fatalf("expected error")
	}
	if apperror.KindOf(err) != apperror.Internal {
		t.Fatalf("data failures stay internal, got %v", err)
	}
}

func TestEventService_EventView_ProfileFailure(t *testing.T) {
	t.Parallel()
	svc, users, _, _ := newEventFixture()
	users.getErr = errors.New("users table locked")

	_, err := svc.EventView(context.Background(), 7, 5)
	if err == nil || !errors.Is(err, users.getErr) {
		t.Fatalf("expected the profile error, got %v", err)
	}
}

func TestEventService_EventView_CanceledContext(t *testing.T) {
	t.Parallel()
	svc, _, games, _ := newEventFixture()
	games.ownerHook = func(ctx context.Context) error { return ctx.Err() }

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.EventView(ctx, 7, 5); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestEventService_EventView_UnknownViewer(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newEventFixture()

	_, err := svc.EventView(context.Background(), 404, 5)
	if apperror.KindOf(err) != apperror.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}
