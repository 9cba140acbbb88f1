package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"gamenight"
	"gamenight/internal/models"
	"gamenight/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerID  int64
	registerErr error
	loginID     int64
	loginErr    error
	issueToken  string
	issueErr    error

	// sessions maps cookie values to user ids for ParseSession.
	sessions map[string]int64

	lastRegister      service.RegisterInput
	lastLoginEmail    string
	lastLoginPassword string
	lastIssueID       int64
}

func (m *mockAuth) Register(ctx context.Context, in service.RegisterInput) (int64, error) {
	m.lastRegister = in
	return m.registerID, m.registerErr
}
func (m *mockAuth) Login(ctx context.Context, email, password string) (int64, error) {
	m.lastLoginEmail = email
	m.lastLoginPassword = password
	return m.loginID, m.loginErr
}
func (m *mockAuth) IssueSession(userID int64) (string, error) {
	m.lastIssueID = userID
	return m.issueToken, m.issueErr
}
func (m *mockAuth) ParseSession(token string) (int64, error) {
	if id, ok := m.sessions[token]; ok {
		return id, nil
	}
	return 0, errors.New("invalid session")
}

type mockUsers struct {
	list    []models.User
	user    models.User
	err     error
	calls   int
	lastGet int64

	updateErr   error
	lastActor   int64
	lastUpdated int64
	lastProfile service.ProfileInput

	pictureURL  string
	pictureErr  error
	pictureUser int64
	pictureName string
	pictureBody string
}

func (m *mockUsers) ListUsers(ctx context.Context) ([]models.User, error) {
	m.calls++
	return m.list, m.err
}
func (m *mockUsers) GetUser(ctx context.Context, id int64) (models.User, error) {
	m.calls++
	m.lastGet = id
	return m.user, m.err
}
func (m *mockUsers) UpdateProfile(ctx context.Context, actorID, userID int64, in service.ProfileInput) error {
	m.calls++
	m.lastActor, m.lastUpdated, m.lastProfile = actorID, userID, in
	return m.updateErr
}
func (m *mockUsers) SetPicture(ctx context.Context, userID int64, filename string, r io.Reader) (string, error) {
	m.calls++
	m.pictureUser, m.pictureName = userID, filename
	b, _ := io.ReadAll(r)
	m.pictureBody = string(b)
	return m.pictureURL, m.pictureErr
}

type mockGames struct {
	createID  int64
	createErr error
	lastOwner int64
	lastInput service.GameInput

	game   models.Game
	list   []models.Game
	getErr error
	calls  int
}

func (m *mockGames) CreateGame(ctx context.Context, ownerID int64, in service.GameInput) (int64, error) {
	m.calls++
	m.lastOwner, m.lastInput = ownerID, in
	return m.createID, m.createErr
}
func (m *mockGames) GetGame(ctx context.Context, id int64) (models.Game, error) {
	m.calls++
	return m.game, m.getErr
}
func (m *mockGames) ListGames(ctx context.Context) ([]models.Game, error) {
	m.calls++
	return m.list, m.getErr
}

type mockPosts struct {
	mu sync.Mutex

	thread      []models.Post
	threadErr   error
	threadCalls int
	lastGameID  int64

	post       models.Post
	postErr    error
	lastBody   string
	lastUserID int64

	comment    models.Comment
	commentErr error
	lastPostID int64
}

func (m *mockPosts) Thread(ctx context.Context, gameID int64) ([]models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.threadCalls++
	m.lastGameID = gameID
	return m.thread, m.threadErr
}
func (m *mockPosts) CreatePost(ctx context.Context, userID, gameID int64, body string) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastUserID, m.lastGameID, m.lastBody = userID, gameID, body
	return m.post, m.postErr
}
func (m *mockPosts) AddComment(ctx context.Context, userID, postID int64, body string) (models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastUserID, m.lastPostID, m.lastBody = userID, postID, body
	return m.comment, m.commentErr
}

func (m *mockPosts) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.threadCalls
}

type mockProfiles struct {
	profile gamenight.Profile
	err     error
	calls   int
	lastID  int64
}

func (m *mockProfiles) Profile(ctx context.Context, userID int64) (gamenight.Profile, error) {
	m.calls++
	m.lastID = userID
	return m.profile, m.err
}

type mockEvents struct {
	view       gamenight.EventView
	err        error
	calls      int
	lastViewer int64
	lastGame   int64
}

func (m *mockEvents) EventView(ctx context.Context, viewerID, gameID int64) (gamenight.EventView, error) {
	m.calls++
	m.lastViewer, m.lastGame = viewerID, gameID
	return m.view, m.err
}

// ---- Shared Test Helpers ----

const testToken = "valid-session"

// newMockService returns a Service where testToken resolves to userID.
func newMockService(userID int64) (*service.Service, *mocks) {
	m := &mocks{
		auth:     &mockAuth{sessions: map[string]int64{testToken: userID}},
		users:    &mockUsers{},
		games:    &mockGames{},
		posts:    &mockPosts{},
		profiles: &mockProfiles{},
		events:   &mockEvents{},
	}
	return &service.Service{
		Authorization: m.auth,
		Users:         m.users,
		Games:         m.games,
		Posts:         m.posts,
		Profiles:      m.profiles,
		Events:        m.events,
	}, m
}

type mocks struct {
	auth     *mockAuth
	users    *mockUsers
	games    *mockGames
	posts    *mockPosts
	profiles *mockProfiles
	events   *mockEvents
}

func (m *mocks) dataCalls() int {
	return m.users.calls + m.games.calls + m.posts.calls() + m.profiles.calls + m.events.calls
}

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, Options{})
	return h.InitRoutes()
}

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: "session", Value: token}
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
