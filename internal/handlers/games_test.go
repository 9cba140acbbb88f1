package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"gamenight/internal/apperror"
	"gamenight/internal/models"
)

func TestCreateGame(t *testing.T) {
	s, m := newMockService(7)
	m.games.createID = 8
	r := newTestRouter(s)

	req := postForm("/api/games/new", url.Values{
		"name":      {"Sunday doubles"},
		"location":  {"Court 3"},
		"starts_at": {"2025-07-01T18:30"},
	})
	req.AddCookie(sessionCookie(testToken))
	w := serve(r, req)

	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/create_game/8" {
		t.Fatalf("create: %d -> %q body=%s", w.Code, w.Header().Get("Location"), w.Body.String())
	}
	if m.games.lastOwner != 7 || m.games.lastInput.Name != "Sunday doubles" {
		t.Fatalf("CreateGame got owner=%d %+v", m.games.lastOwner, m.games.lastInput)
	}
	if want := time.Date(2025, 7, 1, 18, 30, 0, 0, time.UTC); !m.games.lastInput.StartsAt.Equal(want) {
		t.Fatalf("starts_at: got %v, want %v", m.games.lastInput.StartsAt, want)
	}

	req = postForm("/api/games/new", url.Values{"name": {"x"}, "starts_at": {"next tuesday"}})
	req.AddCookie(sessionCookie(testToken))
	if w := serve(r, req); w.Code != http.StatusBadRequest {
		t.Fatalf("bad starts_at: got %d", w.Code)
	}
}

func TestGamesAPI_Read(t *testing.T) {
	s, m := newMockService(7)
	m.games.game = models.Game{ID: 5, Name: "Blitz night"}
	m.games.list = []models.Game{{ID: 5}, {ID: 6}}
	r := newTestRouter(s)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/event/5", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"name":"Blitz night"`) {
		t.Fatalf("get: %d %s", w.Code, w.Body.String())
	}

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/events", nil))
	if w.Code != http.StatusOK || strings.Count(w.Body.String(), `"owner_id"`) != 2 {
		t.Fatalf("list: %d %s", w.Code, w.Body.String())
	}

	m.games.getErr = apperror.NewNotFound("game not found", nil)
	if w := serve(r, httptest.NewRequest(http.MethodGet, "/api/event/9", nil)); w.Code != http.StatusNotFound {
		t.Fatalf("missing game: got %d", w.Code)
	}
}

func TestListPosts(t *testing.T) {
	s, m := newMockService(7)
	m.posts.thread = []models.Post{{ID: 1, GameID: 5, Comments: []models.Comment{}}}
	r := newTestRouter(s)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/posts?game_id=5", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"comments":[]`) {
		t.Fatalf("list: %d %s", w.Code, w.Body.String())
	}
	if m.posts.lastGameID != 5 {
		t.Fatalf("Thread got game %d", m.posts.lastGameID)
	}

	for _, q := range []string{"", "?game_id=x", "?game_id=0"} {
		if w := serve(r, httptest.NewRequest(http.MethodGet, "/api/posts"+q, nil)); w.Code != http.StatusBadRequest {
			t.Fatalf("query %q: got %d, want 400", q, w.Code)
		}
	}

	m.posts.threadErr = errors.New("database is locked")
	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/posts?game_id=5", nil))
	if w.Code != http.StatusInternalServerError || strings.Contains(w.Body.String(), "locked") {
		t.Fatalf("internal errors must be opaque: %d %s", w.Code, w.Body.String())
	}
}

func TestCreatePostAndComment(t *testing.T) {
	s, m := newMockService(7)
	m.posts.post = models.Post{ID: 21, GameID: 5, UserID: 7, Body: "hi", Comments: []models.Comment{}}
	m.posts.comment = models.Comment{ID: 30, PostID: 21, UserID: 7, Body: "me too"}
	r := newTestRouter(s)

	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{"game_id":5,"body":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(sessionCookie(testToken))
	w := serve(r, req)
	if w.Code != http.StatusCreated || !strings.Contains(w.Body.String(), `"id":21`) {
		t.Fatalf("create post: %d %s", w.Code, w.Body.String())
	}
	if m.posts.lastUserID != 7 || m.posts.lastGameID != 5 || m.posts.lastBody != "hi" {
		t.Fatalf("CreatePost got user=%d game=%d body=%q", m.posts.lastUserID, m.posts.lastGameID, m.posts.lastBody)
	}

	req = postForm("/api/posts/21/comments", url.Values{"body": {"me too"}})
	req.AddCookie(sessionCookie(testToken))
	w = serve(r, req)
	if w.Code != http.StatusCreated || m.posts.lastPostID != 21 {
		t.Fatalf("add comment: %d %s", w.Code, w.Body.String())
	}

	m.posts.commentErr = apperror.NewNotFound("post not found", nil)
	req = postForm("/api/posts/99/comments", url.Values{"body": {"?"}})
	req.AddCookie(sessionCookie(testToken))
	if w := serve(r, req); w.Code != http.StatusNotFound {
		t.Fatalf("unknown post: got %d, want 404", w.Code)
	}

	if w := serve(r, postForm("/api/posts", url.Values{"game_id": {"5"}, "body": {"x"}})); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous post: got %d, want 401", w.Code)
	}
}

func TestParseStartsAt(t *testing.T) {
	cases := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "", want: time.Time{}},
		{in: "2025-07-01T18:30:00+02:00", want: time.Date(2025, 7, 1, 16, 30, 0, 0, time.UTC)},
		{in: "2025-07-01T18:30", want: time.Date(2025, 7, 1, 18, 30, 0, 0, time.UTC)},
		{in: "tomorrow", wantErr: true},
	}
	for _, tc := range cases {
		got, err := parseStartsAt(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("%q: err=%v", tc.in, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("%q: got %v, want %v", tc.in, got, tc.want)
		}
	}
}
