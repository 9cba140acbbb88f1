package service

import (
	"context"
	"fmt"
	"strings"

	"gamenight/internal/apperror"
	"gamenight/internal/models"
	"gamenight/internal/repository"
)

const maxBodyLen = 4000

type PostService struct {
	games    repository.Games
	posts    repository.Posts
	comments repository.Comments
}

func NewPostService(games repository.Games, posts repository.Posts, comments repository.Comments) *PostService {
	return &PostService{games: games, posts: posts, comments: comments}
}

// Thread returns the posts of gameID with their comments attached. With no
// posts, comments are not queried.
func (s *PostService) Thread(ctx context.Context, gameID int64) ([]models.Post, error) {
	posts, err := s.posts.ListByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}
	if len(posts) == 0 {
		return []models.Post{}, nil
	}

	comments, err := s.comments.ListByPostIDs(ctx, postIDs(posts))
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	return AttachComments(posts, comments), nil
}

func (s *PostService) CreatePost(ctx context.Context, userID, gameID int64, body string) (models.Post, error) {
	body, err := cleanBody(body)
	if err != nil {
		return models.Post{}, err
	}
	if _, err := s.games.GetByID(ctx, gameID); err != nil {
		return models.Post{}, translate(err, "game not found")
	}

	p := models.Post{GameID: gameID, UserID: userID, Body: body}
	id, err := s.posts.Create(ctx, p)
	if err != nil {
		return models.Post{}, err
	}
	p.ID = id
	p.Comments = []models.Comment{}
	return p, nil
}

func (s *PostService) AddComment(ctx context.Context, userID, postID int64, body string) (models.Comment, error) {
	body, err := cleanBody(body)
	if err != nil {
		return models.Comment{}, err
	}
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return models.Comment{}, translate(err, "post not found")
	}

	c := models.Comment{PostID: postID, UserID: userID, Body: body}
	id, err := s.comments.Create(ctx, c)
	if err != nil {
		return models.Comment{}, err
	}
	c.ID = id
	return c, nil
}

func cleanBody(body string) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", apperror.NewValidation("body is required")
	}
	if len(body) > maxBodyLen {
		return "", apperror.NewValidation(fmt.Sprintf("body must be at most %d bytes", maxBodyLen))
	}
	return body, nil
}
