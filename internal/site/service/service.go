package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/xw1nchester/nailsite/internal/apperror"
	"github.com/xw1nchester/nailsite/internal/salon"
	"github.com/xw1nchester/nailsite/internal/site/db"
)

type pageData struct {
	salon    *salon.Salon
	template *salon.Template
}

type service struct {
	repository db.Repository
	mediaURL   string
	group      singleflight.Group
	logger     *zap.Logger
}

// New returns the site service. Image paths in loaded data are resolved
// against mediaURL.
func New(repository db.Repository, mediaURL string, logger *zap.Logger) *service {
	return &service{
		repository: repository,
		mediaURL:   mediaURL,
		logger:     logger,
	}
}

// LoadSite fetches a live salon and its template. The template is nil when
// the salon has no design attached or the attached one no longer exists.
func (s *service) LoadSite(ctx context.Context, siteID string) (*salon.Salon, *salon.Template, error) {
	data, err := s.shared(ctx, "site:"+siteID, func(ctx context.Context) (*pageData, error) {
		return s.loadSite(ctx, siteID)
	})
	if err != nil {
		return nil, nil, err
	}

	return data.salon, data.template, nil
}

func (s *service) loadSite(ctx context.Context, siteID string) (*pageData, error) {
	existingSalon, err := s.repository.GetSalon(ctx, siteID)
	if err != nil {
		return nil, s.translate(err, "fetching salon", zap.String("site_id", siteID))
	}

	var template *salon.Template
	switch ref := existingSalon.Template; {
	case ref.Resolved():
		template = ref.Template
	case ref.ID != 0:
		template, err = s.repository.GetTemplate(ctx, ref.ID)
		if err != nil {
			if !errors.Is(err, db.ErrTemplateNotFound) {
				return nil, s.translate(err, "fetching salon template", zap.Int("template_id", ref.ID))
			}
			s.logger.Warn("salon references a missing template",
				zap.String("site_id", siteID),
				zap.Int("template_id", ref.ID),
			)
		}
	}

	return s.withMedia(existingSalon, template), nil
}

// LoadPreview fetches the sample salon and the descriptor of a template
// concurrently.
func (s *service) LoadPreview(ctx context.Context, templateID int) (*salon.Salon, *salon.Template, error) {
	data, err := s.shared(ctx, "preview:"+strconv.Itoa(templateID), func(ctx context.Context) (*pageData, error) {
		return s.loadPreview(ctx, templateID)
	})
	if err != nil {
		return nil, nil, err
	}

	return data.salon, data.template, nil
}

func (s *service) loadPreview(ctx context.Context, templateID int) (*pageData, error) {
	var (
		payload  *salon.PreviewPayload
		template *salon.Template
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		payload, err = s.repository.GetPreview(gctx, templateID)
		return err
	})
	g.Go(func() error {
		var err error
		template, err = s.repository.GetTemplate(gctx, templateID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, s.translate(err, "fetching template preview", zap.Int("template_id", templateID))
	}

	return s.withMedia(payload.ToDomain(), template), nil
}

// Claim assigns the salon to the viewer behind token. The cached copy of the
// salon is dropped on success.
func (s *service) Claim(ctx context.Context, siteID, token string) (*salon.Salon, error) {
	existingSalon, err := s.repository.GetSalon(ctx, siteID)
	if err != nil {
		return nil, s.translate(err, "fetching salon to claim", zap.String("site_id", siteID))
	}

	if existingSalon.Claimed {
		return nil, apperror.ErrAlreadyClaimed
	}

	claimed, err := s.repository.Claim(ctx, existingSalon.ID, token)
	if err != nil {
		return nil, s.translate(err, "claiming salon", zap.Int("salon_id", existingSalon.ID))
	}

	s.group.Forget("site:" + siteID)
	if err := s.repository.ForgetSalon(ctx, siteID); err != nil {
		s.logger.Warn("failed to forget claimed salon", zap.String("site_id", siteID), zap.Error(err))
	}

	if claimed.ID == 0 {
		claimed.ID = existingSalon.ID
	}

	return claimed, nil
}

// Viewer returns the user behind token, nil for an empty token.
func (s *service) Viewer(ctx context.Context, token string) (*salon.Viewer, error) {
	if token == "" {
		return nil, nil
	}

	viewer, err := s.repository.Me(ctx, token)
	if err != nil {
		return nil, s.translate(err, "fetching current user")
	}

	return viewer, nil
}

func (s *service) withMedia(data *salon.Salon, template *salon.Template) *pageData {
	resolved := data.WithMediaBase(s.mediaURL)
	out := &pageData{salon: &resolved}

	if template != nil {
		t := template.WithMediaBase(s.mediaURL)
		out.template = &t
	}

	return out
}

// shared collapses concurrent loads of the same key into one. The load runs
// detached from the caller so one cancelled request does not fail the
// others waiting on it.
func (s *service) shared(ctx context.Context, key string, load func(context.Context) (*pageData, error)) (*pageData, error) {
	ch := s.group.DoChan(key, func() (any, error) {
		return load(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*pageData), nil
	}
}

func (s *service) translate(err error, action string, fields ...zap.Field) error {
	switch {
	case errors.Is(err, db.ErrSalonNotFound), errors.Is(err, db.ErrTemplateNotFound):
		return apperror.ErrNotFound
	case errors.Is(err, db.ErrUnauthorized):
		return apperror.ErrUnauthorized
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}

	s.logger.Error("unexpected error when "+action, append(fields, zap.Error(err))...)

	return fmt.Errorf("%w: %v", apperror.ErrUnavailable, err)
}
