package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/xw1nchester/nailsite/internal/apperror"
	jwtauth "github.com/xw1nchester/nailsite/internal/auth/jwt"
	"github.com/xw1nchester/nailsite/internal/handlers"
	"github.com/xw1nchester/nailsite/internal/layout"
	"github.com/xw1nchester/nailsite/internal/page"
)

type apiHandler struct {
	host     PageHost
	registry *layout.Registry
	logger   *zap.Logger
}

// NewAPI serves the JSON description of how sites are laid out.
func NewAPI(host PageHost, registry *layout.Registry, logger *zap.Logger) handlers.Handler {
	return &apiHandler{
		host:     host,
		registry: registry,
		logger:   logger,
	}
}

func (h *apiHandler) Register(router chi.Router) {
	router.Get("/layouts", apperror.Middleware(h.LayoutsHandler))

	router.Route("/sites", func(siteRouter chi.Router) {
		siteRouter.Get("/{siteID}/plan", apperror.Middleware(h.PlanHandler))
	})
}

//	@Tags		layouts
//	@Success	200	{object}	LayoutsResponse
//	@Failure	500	{object}	apperror.AppError
//	@Router		/layouts [get]
func (h *apiHandler) LayoutsHandler(w http.ResponseWriter, r *http.Request) error {
	layouts := h.registry.Layouts()

	resp := LayoutsResponse{
		Default: layout.DefaultKind.String(),
		Layouts: make([]LayoutResponse, 0, len(layouts)),
	}
	for _, l := range layouts {
		resp.Layouts = append(resp.Layouts, newLayoutResponse(l))
	}

	render.JSON(w, r, resp)

	return nil
}

//	@Tags		sites
//	@Param		siteID	path		string	true	"salon sample url"
//	@Success	200		{object}	PlanResponse
//	@Failure	400,404	{object}	apperror.AppError
//	@Failure	500,502	{object}	apperror.AppError
//	@Router		/sites/{siteID}/plan [get]
func (h *apiHandler) PlanHandler(w http.ResponseWriter, r *http.Request) error {
	siteID := urlParam(r, "siteID")
	if err := validate.Var(siteID, "required,max=255"); err != nil {
		return apperror.ErrMissingRoute
	}

	view, err := h.host.Build(r.Context(), page.Request{
		SiteID: siteID,
		Viewer: jwtauth.ViewerFromContext(r.Context()),
		Path:   r.URL.RequestURI(),
	})
	if err != nil {
		return err
	}

	switch view.State {
	case page.Rendered:
	case page.NotFound:
		return apperror.ErrNotFound
	case page.LayoutUnavailable:
		return apperror.ErrLayoutUnavailable
	case page.MissingInfo:
		return apperror.ErrMissingRoute
	default:
		return apperror.ErrUnavailable
	}

	render.JSON(w, r, newPlanResponse(siteID, view))

	return nil
}
