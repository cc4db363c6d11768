package page

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/xw1nchester/nailsite/internal/apperror"
	"github.com/xw1nchester/nailsite/internal/layout"
	"github.com/xw1nchester/nailsite/internal/salon"
	"github.com/xw1nchester/nailsite/internal/section"
	"github.com/xw1nchester/nailsite/internal/theme"
)

//go:generate mockgen -source=host.go -destination=mocks/mock.go

// Loader fetches page data. The template may be nil when the salon has no
// design attached.
type Loader interface {
	LoadSite(ctx context.Context, siteID string) (*salon.Salon, *salon.Template, error)
	LoadPreview(ctx context.Context, templateID int) (*salon.Salon, *salon.Template, error)
}

// Observer is notified of every page built.
type Observer interface {
	PageView(state, layout string)
}

type Request struct {
	SiteID       string
	TemplateID   string
	Viewer       *salon.Viewer
	Path         string
	Notice       string
	HideAdminBar bool
}

type Options struct {
	URLs         URLs
	Placeholders theme.Placeholders
	ShowAdminBar bool
	Opener       section.Opener
	Now          func() time.Time
	Observer     Observer
}

type Host struct {
	loader   Loader
	registry *layout.Registry
	opts     Options
	logger   *zap.Logger
}

func NewHost(loader Loader, registry *layout.Registry, opts Options, logger *zap.Logger) *Host {
	if opts.Opener == nil {
		opts.Opener = section.OpenLink
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Host{
		loader:   loader,
		registry: registry,
		opts:     opts,
		logger:   logger,
	}
}

// Build drives a request through the page states and returns the terminal
// view. An error is returned only when ctx ends while loading; the caller
// must then discard the request without writing anything.
func (h *Host) Build(ctx context.Context, req Request) (*View, error) {
	v := &View{State: ResolvingMode, History: []State{ResolvingMode}, ListingURL: h.opts.URLs.Listing, ListingLabel: "Browse Salons"}

	mode, templateID, ok := resolveMode(req)
	v.Mode = mode
	if !ok {
		v.moveTo(MissingInfo)
		v.Title = "Missing information"
		v.Message = "A salon site or a template to preview is required to show this page."
		h.observe(v)
		return v, nil
	}

	v.moveTo(Loading)

	var (
		s   *salon.Salon
		t   *salon.Template
		err error
	)
	if mode == ModeSite {
		s, t, err = h.loader.LoadSite(ctx, req.SiteID)
	} else {
		s, t, err = h.loader.LoadPreview(ctx, templateID)
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	if err != nil {
		h.fail(v, req, err)
		h.observe(v)
		return v, nil
	}

	if s == nil || t == nil {
		v.moveTo(LayoutUnavailable)
		v.Title = "Design unavailable"
		v.Message = "The salon data loaded, but no design is attached to it yet."
		h.observe(v)
		return v, nil
	}

	res, err := h.registry.Resolve(t.Slug)
	if err != nil {
		h.logger.Error("unexpected error when resolving layout", zap.String("slug", t.Slug), zap.Error(err))
		v.moveTo(LayoutUnavailable)
		v.Title = "Design unavailable"
		v.Message = "The salon data loaded, but there is no layout to display it with."
		h.observe(v)
		return v, nil
	}

	h.render(v, req, s, t, res, templateID)
	h.observe(v)

	return v, nil
}

func resolveMode(req Request) (Mode, int, bool) {
	siteID := strings.TrimSpace(req.SiteID)
	templateID := strings.TrimSpace(req.TemplateID)

	switch {
	case siteID != "" && templateID == "":
		return ModeSite, 0, true
	case siteID == "" && templateID != "":
		id, err := strconv.Atoi(templateID)
		if err != nil || id <= 0 {
			return ModePreview, 0, false
		}
		return ModePreview, id, true
	}

	return ModeUnknown, 0, false
}

func (h *Host) fail(v *View, req Request, err error) {
	switch {
	case errors.Is(err, apperror.ErrNotFound), errors.Is(err, apperror.ErrUnauthorized):
		v.moveTo(NotFound)
		if v.Mode == ModePreview {
			v.Title = "Template not found"
			v.Message = "We couldn't find the template you're looking for."
			v.ListingURL = h.opts.URLs.Templates
			v.ListingLabel = "Browse Templates"
		} else {
			v.Title = "Salon not found"
			v.Message = "We couldn't find the salon you're looking for."
		}
	default:
		h.logger.Error("unexpected error when loading page data",
			zap.String("mode", v.Mode.String()),
			zap.String("site_id", req.SiteID),
			zap.String("template_id", req.TemplateID),
			zap.Error(err),
		)
		v.moveTo(Error)
		v.Title = "Something went wrong"
		v.Message = "We couldn't load this page right now. Please try again."
		v.RetryURL = req.Path
	}
}

func (h *Host) render(v *View, req Request, s *salon.Salon, t *salon.Template, res layout.Resolution, templateID int) {
	th := theme.Derive(s, t, h.opts.Placeholders)

	in := section.Input{
		Salon:    s,
		Template: t,
		Theme:    th,
		Open:     h.opts.Opener,
	}

	rows := res.Layout.Compose(in)
	ids := layout.Rendered(rows)

	v.moveTo(Rendered)
	v.Salon = s
	v.Template = t
	v.Theme = th
	v.Layout = res.Layout
	v.Fallback = res.Fallback
	v.Rows = rows
	v.Sections = ids
	v.Title = displayName(s)
	v.Header = buildHeader(s, th, ids)
	v.Footer = buildFooter(s, ids, h.opts.Opener, h.opts.Now().Year())

	if res.Fallback {
		h.logger.Debug("template slug has no dedicated layout",
			zap.String("slug", t.Slug),
			zap.String("layout", res.Layout.Kind.String()),
		)
	}

	switch v.Mode {
	case ModeSite:
		v.Notice = claimNotice(req.Notice)
		if h.opts.ShowAdminBar && !req.HideAdminBar {
			v.AdminBar = buildAdminBar(s, req.SiteID, req.Viewer, h.opts.URLs)
		}
	case ModePreview:
		v.PreviewBar = buildPreviewBar(t, templateID, h.opts.URLs)
	}
}

func (h *Host) observe(v *View) {
	if h.opts.Observer == nil {
		return
	}

	layoutName := "none"
	if v.Layout != nil {
		layoutName = v.Layout.Kind.String()
	}

	h.opts.Observer.PageView(v.State.String(), layoutName)
}

func claimNotice(code string) string {
	switch code {
	case "taken":
		return "This site has already been claimed."
	case "failed":
		return "We couldn't claim this site. Please try again."
	}
	return ""
}

// View is the outcome of a page request.
type View struct {
	State   State
	History []State
	Mode    Mode

	Title      string
	Message    string
	RetryURL   string
	ListingURL   string
	ListingLabel string
	Notice     string

	Salon    *salon.Salon
	Template *salon.Template
	Theme    theme.Theme
	Layout   *layout.Layout
	Fallback bool
	Rows     []layout.Row
	Sections []section.ID

	Header     Header
	Footer     Footer
	AdminBar   *AdminBar
	PreviewBar *PreviewBar
}

func (v *View) moveTo(s State) {
	if !canTransition(v.State, s) {
		panic(fmt.Sprintf("page: invalid transition %s -> %s", v.State, s))
	}
	v.State = s
	v.History = append(v.History, s)
}

func (v *View) Status() int {
	return v.State.HTTPStatus()
}
