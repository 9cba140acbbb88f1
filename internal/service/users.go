package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gamenight/internal/apperror"
	"gamenight/internal/models"
	"gamenight/internal/repository"
	"gamenight/internal/storage"
)

type UserService struct {
	users    repository.Users
	pictures PictureStore
}

func NewUserService(users repository.Users, pictures PictureStore) *UserService {
	return &UserService{users: users, pictures: pictures}
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id int64) (models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return models.User{}, translate(err, "user not found")
	}
	return u, nil
}

// UpdateProfile edits userID's profile. Only the user themself may do it.
func (s *UserService) UpdateProfile(ctx context.Context, actorID, userID int64, in ProfileInput) error {
	if actorID != userID {
		return apperror.NewForbidden("you can only edit your own profile")
	}
	first := strings.TrimSpace(in.FirstName)
	if first == "" {
		return apperror.NewValidation("first name is required")
	}
	err := s.users.UpdateProfile(ctx, userID, first, strings.TrimSpace(in.LastName), strings.TrimSpace(in.Equipment))
	return translate(err, "user not found")
}

// SetPicture stores the upload and points the user's img at it.
func (s *UserService) SetPicture(ctx context.Context, userID int64, filename string, r io.Reader) (string, error) {
	url, err := s.pictures.Save(filename, r)
	if errors.Is(err, storage.ErrUnsupportedType) {
		return "", apperror.NewValidation("picture must be a jpg, png, gif or webp image")
	}
	if err != nil {
		return "", fmt.Errorf("store picture: %w", err)
	}
	if err := s.users.SetImage(ctx, userID, url); err != nil {
		return "", translate(err, "user not found")
	}
	return url, nil
}
