// internal/users/service.go

package users

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"github.com/aviato-app/aviato-backend/internal/availability"
)

var ErrInvalidSettings = errors.New("invalid availability settings")

type Service interface {
	GetUser(ctx context.Context, id string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)

	UpdateProfile(ctx context.Context, id string, patch *ProfilePatch) (*User, error)
	UpdateSelections(ctx context.Context, id string, selections []string) (*User, error)
	UploadProfilePicture(ctx context.Context, id string, file multipart.File, header *multipart.FileHeader) (*User, error)

	SetAvailability(ctx context.Context, id string, settings *availability.Settings) (*User, error)
	CheckAvailability(ctx context.Context, id string, now time.Time) availability.Verdict
}

type service struct {
	repo   Repository
	upload UploadService
}

func NewService(repo Repository, upload UploadService) Service {
	return &service{repo: repo, upload: upload}
}

func (s *service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListUsers(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateProfile(ctx context.Context, id string, patch *ProfilePatch) (*User, error) {
	return s.repo.Update(ctx, id, func(u *User) error {
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.ProfilePic != nil {
			u.ProfilePic = *patch.ProfilePic
		}
		if patch.Location != nil {
			u.Location = *patch.Location
		}
		return nil
	})
}

func (s *service) UpdateSelections(ctx context.Context, id string, selections []string) (*User, error) {
	if selections == nil {
		selections = []string{}
	}
	return s.repo.Update(ctx, id, func(u *User) error {
		u.Selections = append([]string(nil), selections...)
		return nil
	})
}

func (s *service) UploadProfilePicture(ctx context.Context, id string, file multipart.File, header *multipart.FileHeader) (*User, error) {
	url, err := s.upload.UploadFile(ctx, file, header, "profiles")
	if err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, func(u *User) error {
		u.ProfilePic = url
		return nil
	})
}

func (s *service) SetAvailability(ctx context.Context, id string, settings *availability.Settings) (*User, error) {
	if settings != nil {
		if err := settings.Validate(); err != nil {
			return nil, ErrInvalidSettings
		}
	}

	return s.repo.Update(ctx, id, func(u *User) error {
		u.Availability = settings
		return nil
	})
}

// CheckAvailability resolves the user and evaluates reachability; an
// unknown id yields the not-found verdict rather than an error
func (s *service) CheckAvailability(ctx context.Context, id string, now time.Time) availability.Verdict {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return availability.NotFound()
	}
	return availability.Evaluate(user.Availability, now)
}
