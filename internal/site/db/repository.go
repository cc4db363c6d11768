package db

import (
	"context"
	"errors"

	"github.com/xw1nchester/nailsite/internal/salon"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock.go

var (
	ErrSalonNotFound    = errors.New("salon not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrUnauthorized     = errors.New("unauthorized")
)

type Repository interface {
	GetSalon(ctx context.Context, sampleURL string) (*salon.Salon, error)
	GetPreview(ctx context.Context, templateID int) (*salon.PreviewPayload, error)
	GetTemplate(ctx context.Context, id int) (*salon.Template, error)
	Claim(ctx context.Context, salonID int, token string) (*salon.Salon, error)
	Me(ctx context.Context, token string) (*salon.Viewer, error)
	// ForgetSalon drops any locally kept copy of the salon.
	ForgetSalon(ctx context.Context, sampleURL string) error
}

// Client is the transport the repository talks to the backend through.
type Client interface {
	Get(ctx context.Context, endpoint, path, token string, out any) error
	Post(ctx context.Context, endpoint, path, token string, body, out any) error
}
