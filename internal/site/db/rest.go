package db

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/xw1nchester/nailsite/internal/salon"
	backendclient "github.com/xw1nchester/nailsite/pkg/client/backend"
)

type repository struct {
	client Client
	logger *zap.Logger
}

func NewRepository(client Client, logger *zap.Logger) Repository {
	return &repository{
		client: client,
		logger: logger,
	}
}

func (r *repository) GetSalon(ctx context.Context, sampleURL string) (*salon.Salon, error) {
	path := "/api/salons/sample/" + url.PathEscape(sampleURL) + "/"

	var s salon.Salon
	if err := r.client.Get(ctx, "salon", path, "", &s); err != nil {
		return nil, mapErr(err, ErrSalonNotFound, "get salon %q", sampleURL)
	}

	return &s, nil
}

func (r *repository) GetPreview(ctx context.Context, templateID int) (*salon.PreviewPayload, error) {
	path := fmt.Sprintf("/api/templates/%d/preview/", templateID)

	var p salon.PreviewPayload
	if err := r.client.Get(ctx, "preview", path, "", &p); err != nil {
		return nil, mapErr(err, ErrTemplateNotFound, "get preview %d", templateID)
	}

	return &p, nil
}

func (r *repository) GetTemplate(ctx context.Context, id int) (*salon.Template, error) {
	path := fmt.Sprintf("/api/templates/%d/", id)

	var t salon.Template
	if err := r.client.Get(ctx, "template", path, "", &t); err != nil {
		return nil, mapErr(err, ErrTemplateNotFound, "get template %d", id)
	}

	return &t, nil
}

func (r *repository) Claim(ctx context.Context, salonID int, token string) (*salon.Salon, error) {
	path := fmt.Sprintf("/api/salons/%d/claim/", salonID)

	var s salon.Salon
	if err := r.client.Post(ctx, "claim", path, token, struct{}{}, &s); err != nil {
		return nil, mapErr(err, ErrSalonNotFound, "claim salon %d", salonID)
	}

	return &s, nil
}

func (r *repository) Me(ctx context.Context, token string) (*salon.Viewer, error) {
	var v salon.Viewer
	if err := r.client.Get(ctx, "me", "/api/user/me/", token, &v); err != nil {
		return nil, mapErr(err, ErrUnauthorized, "get current user")
	}

	return &v, nil
}

func (r *repository) ForgetSalon(ctx context.Context, sampleURL string) error {
	return nil
}

func mapErr(err, notFound error, format string, args ...any) error {
	switch {
	case errors.Is(err, backendclient.ErrNotFound):
		return notFound
	case errors.Is(err, backendclient.ErrUnauthorized):
		return ErrUnauthorized
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}

	return fmt.Errorf(format+": %w", append(args, err)...)
}
