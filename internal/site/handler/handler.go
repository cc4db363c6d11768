package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/xw1nchester/nailsite/internal/apperror"
	jwtauth "github.com/xw1nchester/nailsite/internal/auth/jwt"
	"github.com/xw1nchester/nailsite/internal/handlers"
	"github.com/xw1nchester/nailsite/internal/page"
	"github.com/xw1nchester/nailsite/internal/salon"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go
type PageHost interface {
	Build(ctx context.Context, req page.Request) (*page.View, error)
}

type Service interface {
	Claim(ctx context.Context, siteID, token string) (*salon.Salon, error)
}

type handler struct {
	host    PageHost
	service Service
	urls    page.URLs
	logger  *zap.Logger
}

func New(host PageHost, service Service, urls page.URLs, logger *zap.Logger) handlers.Handler {
	return &handler{
		host:    host,
		service: service,
		urls:    urls,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/salons/sample", func(siteRouter chi.Router) {
		siteRouter.Get("/", h.SiteHandler)
		siteRouter.Get("/{siteID}", h.SiteHandler)
		siteRouter.Post("/{siteID}/claim", h.ClaimHandler)
	})

	router.Route("/preview/template", func(previewRouter chi.Router) {
		previewRouter.Get("/", h.PreviewHandler)
		previewRouter.Get("/{templateID}", h.PreviewHandler)
		previewRouter.Get("/{templateID}/use", h.UseTemplateHandler)
	})
}

func (h *handler) SiteHandler(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, page.Request{
		SiteID:       urlParam(r, "siteID"),
		Notice:       r.URL.Query().Get("claim"),
		HideAdminBar: r.URL.Query().Get("bar") == "hide",
	})
}

func (h *handler) PreviewHandler(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, page.Request{
		TemplateID: urlParam(r, "templateID"),
	})
}

func (h *handler) serve(w http.ResponseWriter, r *http.Request, req page.Request) {
	req.Viewer = jwtauth.ViewerFromContext(r.Context())
	req.Path = r.URL.RequestURI()

	view, err := h.host.Build(r.Context(), req)
	if err != nil {
		h.logger.Debug("request ended before the page was built", zap.String("path", req.Path), zap.Error(err))
		return
	}

	var buf bytes.Buffer
	if err := page.Render(&buf, view); err != nil {
		h.logger.Error("unexpected error when rendering page", zap.String("path", req.Path), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if r.Context().Err() != nil {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(view.Status())
	buf.WriteTo(w)
}

// ClaimHandler claims the site for the current viewer and redirects to the
// owner portal, back to the site with a notice, or to login.
func (h *handler) ClaimHandler(w http.ResponseWriter, r *http.Request) {
	siteID := urlParam(r, "siteID")
	if err := validate.Var(siteID, "required,max=255"); err != nil {
		http.Redirect(w, r, h.urls.Listing, http.StatusSeeOther)
		return
	}

	if !trustedSubmission(r) {
		h.logger.Warn("cross-site claim rejected",
			zap.String("site_id", siteID),
			zap.String("origin", r.Header.Get("Origin")),
			zap.String("sec_fetch_site", r.Header.Get("Sec-Fetch-Site")),
		)
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	sitePath := page.SitePath(siteID)
	login := h.urls.LoginRedirect(sitePath)

	viewer := jwtauth.ViewerFromContext(r.Context())
	if viewer == nil {
		http.Redirect(w, r, login, http.StatusSeeOther)
		return
	}

	claimed, err := h.service.Claim(r.Context(), siteID, jwtauth.TokenFromContext(r.Context()))
	switch {
	case err == nil:
		http.Redirect(w, r, h.urls.PortalEdit(claimed.ID), http.StatusSeeOther)
	case errors.Is(err, apperror.ErrAlreadyClaimed):
		http.Redirect(w, r, sitePath+"?claim=taken", http.StatusSeeOther)
	case errors.Is(err, apperror.ErrUnauthorized):
		http.Redirect(w, r, login, http.StatusSeeOther)
	case r.Context().Err() != nil:
		return
	default:
		h.logger.Warn("claim failed", zap.String("site_id", siteID), zap.Int("user_id", viewer.ID), zap.Error(err))
		http.Redirect(w, r, sitePath+"?claim=failed", http.StatusSeeOther)
	}
}

// UseTemplateHandler starts a salon from the previewed template, or opens
// the viewer's existing salon when they already own one.
func (h *handler) UseTemplateHandler(w http.ResponseWriter, r *http.Request) {
	templateID, err := strconv.Atoi(urlParam(r, "templateID"))
	if err != nil || templateID <= 0 {
		http.Redirect(w, r, h.urls.Templates, http.StatusSeeOther)
		return
	}

	viewer := jwtauth.ViewerFromContext(r.Context())

	var target string
	switch {
	case viewer == nil:
		target = h.urls.LoginRedirect(page.UseTemplatePath(templateID))
	case viewer.OwnsSalon():
		target = h.urls.PortalEdit(int(viewer.Salon))
	default:
		target = h.urls.PortalCreate(templateID)
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}

// trustedSubmission reports whether a state-changing request may act for the
// viewer. Bearer requests are accepted as is. Cookie requests must be marked
// same-origin by the browser, or carry an Origin (or Referer) whose host is
// the request host.
func trustedSubmission(r *http.Request) bool {
	if strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		return true
	}

	switch r.Header.Get("Sec-Fetch-Site") {
	case "same-origin":
		return true
	case "":
	default:
		return false
	}

	source := r.Header.Get("Origin")
	if source == "" || source == "null" {
		source = r.Header.Get("Referer")
	}
	if source == "" {
		return false
	}

	u, err := url.Parse(source)
	if err != nil {
		return false
	}

	return u.Host != "" && strings.EqualFold(u.Host, r.Host)
}

func urlParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if value, err := url.PathUnescape(raw); err == nil {
		return value
	}
	return raw
}
