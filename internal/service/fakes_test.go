package service

import (
	"context"
	"io"
	"sync"

	"gamenight/internal/models"
	"gamenight/internal/repository"
)

// fakeUserRepo satisfies repository.Users.
type fakeUserRepo struct {
	mu sync.Mutex

	createID  int64
	createErr error
	created   []models.User

	byID    map[int64]models.User
	byEmail *models.User
	getErr  error
	list    []models.User

	updateErr error
	updates   []models.User
	images    map[int64]string
}

func (f *fakeUserRepo) Create(ctx context.Context, u models.User) (int64, error) {
	f.created = append(f.created, u)
	return f.createID, f.createErr
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return models.User{}, f.getErr
	}
	u, ok := f.byID[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	if f.getErr != nil {
		return models.User{}, f.getErr
	}
	if f.byEmail == nil || f.byEmail.Email != email {
		return models.User{}, repository.ErrNotFound
	}
	return *f.byEmail, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]models.User, error) { return f.list, f.getErr }

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, id int64, firstName, lastName, equipment string) error {
	f.updates = append(f.updates, models.User{ID: id, FirstName: firstName, LastName: lastName, Equipment: equipment})
	return f.updateErr
}

func (f *fakeUserRepo) SetImage(ctx context.Context, id int64, img string) error {
	if f.images == nil {
		f.images = map[int64]string{}
	}
	f.images[id] = img
	return f.updateErr
}

// fakeGameRepo satisfies repository.Games.
type fakeGameRepo struct {
	mu sync.Mutex

	createID  int64
	created   []models.Game
	byID      map[int64]models.Game
	byOwner   map[int64][]models.Game
	listErr   error
	ownerErr  error
	ownerHook func(ctx context.Context) error
}

func (f *fakeGameRepo) Create(ctx context.Context, g models.Game) (int64, error) {
	f.created = append(f.created, g)
	return f.createID, nil
}

func (f *fakeGameRepo) GetByID(ctx context.Context, id int64) (models.Game, error) {
	g, ok := f.byID[id]
	if !ok {
		return models.Game{}, repository.ErrNotFound
	}
	return g, nil
}

func (f *fakeGameRepo) List(ctx context.Context) ([]models.Game, error) {
	out := make([]models.Game, 0, len(f.byID))
	for _, g := range f.byID {
		out = append(out, g)
	}
	return out, f.listErr
}

func (f *fakeGameRepo) ListByOwner(ctx context.Context, ownerID int64) ([]models.Game, error) {
	if f.ownerHook != nil {
		if err := f.ownerHook(ctx); err != nil {
			return nil, err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ownerErr != nil {
		return nil, f.ownerErr
	}
	return f.byOwner[ownerID], nil
}

// fakePostRepo satisfies repository.Posts.
type fakePostRepo struct {
	posts     []models.Post
	listErr   error
	createID  int64
	created   []models.Post
	listCalls int
}

func (f *fakePostRepo) Create(ctx context.Context, p models.Post) (int64, error) {
	f.created = append(f.created, p)
	return f.createID, nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, id int64) (models.Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Post{}, repository.ErrNotFound
}

func (f *fakePostRepo) ListByGame(ctx context.Context, gameID int64) ([]models.Post, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Post, 0, len(f.posts))
	for _, p := range f.posts {
		if p.GameID == gameID {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeCommentRepo satisfies repository.Comments.
type fakeCommentRepo struct {
	comments []models.Comment
	listErr  error
	gotIDs   [][]int64
	createID int64
	created  []models.Comment
}

func (f *fakeCommentRepo) Create(ctx context.Context, c models.Comment) (int64, error) {
	f.created = append(f.created, c)
	return f.createID, nil
}

func (f *fakeCommentRepo) ListByPostIDs(ctx context.Context, postIDs []int64) ([]models.Comment, error) {
	f.gotIDs = append(f.gotIDs, postIDs)
	if f.listErr != nil {
		return nil, f.listErr
	}
	want := make(map[int64]bool, len(postIDs))
	for _, id := range postIDs {
		want[id] = true
	}
	out := make([]models.Comment, 0, len(f.comments))
	for _, c := range f.comments {
		if want[c.PostID] {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakePictureStore satisfies PictureStore.
type fakePictureStore struct {
	url     string
	err     error
	gotName string
	gotBody string
}

func (f *fakePictureStore) Save(originalName string, r io.Reader) (string, error) {
	f.gotName = originalName
	b, _ := io.ReadAll(r)
	f.gotBody = string(b)
	return f.url, f.err
}
