package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/xw1nchester/nailsite/internal/apperror"
	jwtauth "github.com/xw1nchester/nailsite/internal/auth/jwt"
	"github.com/xw1nchester/nailsite/internal/layout"
	"github.com/xw1nchester/nailsite/internal/page"
	mock_page "github.com/xw1nchester/nailsite/internal/page/mocks"
	"github.com/xw1nchester/nailsite/internal/salon"
	mock_handler "github.com/xw1nchester/nailsite/internal/site/handler/mocks"
)

var testURLs = page.URLs{
	Listing:   "/salons",
	Templates: "/templates",
	Login:     "/login",
	Portal:    "/portal",
}

func glamNails() (*salon.Salon, *salon.Template) {
	tpl := &salon.Template{
		ID:       3,
		Slug:     "modern",
		Name:     "Modern",
		Features: map[string]json.RawMessage{"show_gallery": json.RawMessage("true")},
	}
	return &salon.Salon{
		ID:            7,
		Name:          "Glam Nails",
		SampleURL:     "glam-nails",
		GalleryImages: []string{"a.jpg", "b.jpg"},
		Template:      salon.TemplateRef{ID: 3, Template: tpl},
	}, tpl
}

func newRouter(host PageHost, service Service) chi.Router {
	r := chi.NewRouter()
	New(host, service, testURLs, zap.NewNop()).Register(r)
	return r
}

func withViewer(req *http.Request, viewer *salon.Viewer) *http.Request {
	if viewer == nil {
		return req
	}
	return req.WithContext(jwtauth.WithViewer(req.Context(), viewer, "tok"))
}

func TestSiteHandler(t *testing.T) {
	type mockBehavior func(l *mock_page.MockLoader)

	tests := []struct {
		name           string
		path           string
		mockBehavior   mockBehavior
		expectedStatus int
		expectedBody   []string
	}{
		{
			name: "Rendered",
			path: "/salons/sample/glam-nails",
			mockBehavior: func(l *mock_page.MockLoader) {
				l.EXPECT().LoadSite(gomock.Any(), "glam-nails").Return(glamNails())
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{"Glam Nails", "template-modern", "Login to Claim"},
		},
		{
			name: "Escaped site id",
			path: "/salons/sample/glam%20nails",
			mockBehavior: func(l *mock_page.MockLoader) {
				l.EXPECT().LoadSite(gomock.Any(), "glam nails").Return(glamNails())
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing site id",
			path:           "/salons/sample/",
			mockBehavior:   func(l *mock_page.MockLoader) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   []string{"Missing information"},
		},
		{
			name: "Not found",
			path: "/salons/sample/nope",
			mockBehavior: func(l *mock_page.MockLoader) {
				l.EXPECT().LoadSite(gomock.Any(), "nope").Return(nil, nil, apperror.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   []string{"Salon not found", `href="/salons"`},
		},
		{
			name: "Backend failure",
			path: "/salons/sample/glam-nails?x=1",
			mockBehavior: func(l *mock_page.MockLoader) {
				l.EXPECT().LoadSite(gomock.Any(), "glam-nails").Return(nil, nil, apperror.ErrUnavailable)
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   []string{"Retry", `href="/salons/sample/glam-nails?x=1"`},
		},
		{
			name: "No design",
			path: "/salons/sample/glam-nails",
			mockBehavior: func(l *mock_page.MockLoader) {
				s, _ := glamNails()
				l.EXPECT().LoadSite(gomock.Any(), "glam-nails").Return(s, nil, nil)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   []string{"Design unavailable"},
		},
		{
			name: "Claim notice without admin bar",
			path: "/salons/sample/glam-nails?claim=taken&bar=hide",
			mockBehavior: func(l *mock_page.MockLoader) {
				l.EXPECT().LoadSite(gomock.Any(), "glam-nails").Return(glamNails())
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{"This site has already been claimed."},
		},
		{
			name: "Preview",
			path: "/preview/template/3",
			mockBehavior: func(l *mock_page.MockLoader) {
				l.EXPECT().LoadPreview(gomock.Any(), 3).Return(glamNails())
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{"Back to Templates", "Use This Template", `href="/preview/template/3/use"`},
		},
		{
			name:           "Preview with bad id",
			path:           "/preview/template/abc",
			mockBehavior:   func(l *mock_page.MockLoader) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Preview without id",
			path:           "/preview/template/",
			mockBehavior:   func(l *mock_page.MockLoader) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			loader := mock_page.NewMockLoader(ctrl)
			tc.mockBehavior(loader)

			host := page.NewHost(loader, layout.DefaultRegistry(), page.Options{URLs: testURLs, ShowAdminBar: true}, zap.NewNop())
			r := newRouter(host, mock_handler.NewMockService(ctrl))

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			for _, s := range tc.expectedBody {
				assert.Contains(t, rec.Body.String(), s)
			}
			if tc.name == "Claim notice without admin bar" {
				assert.NotContains(t, rec.Body.String(), "Login to Claim")
			}
		})
	}
}

func TestSiteHandler_CanceledRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	host := mock_handler.NewMockPageHost(ctrl)
	host.EXPECT().Build(gomock.Any(), gomock.Any()).Return(nil, context.Canceled)

	rec := httptest.NewRecorder()
	newRouter(host, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/salons/sample/glam-nails", nil))

	assert.Empty(t, rec.Body.String())
	assert.Empty(t, rec.Header().Get("Content-Type"))
}

func TestSiteHandler_PassesViewer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	viewer := &salon.Viewer{ID: 5, Salon: 7}

	loader := mock_page.NewMockLoader(ctrl)
	loader.EXPECT().LoadSite(gomock.Any(), "glam-nails").Return(glamNails())

	host := page.NewHost(loader, layout.DefaultRegistry(), page.Options{URLs: testURLs, ShowAdminBar: true}, zap.NewNop())

	rec := httptest.NewRecorder()
	req := withViewer(httptest.NewRequest(http.MethodGet, "/salons/sample/glam-nails", nil), viewer)
	newRouter(host, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Edit Site")
	assert.Contains(t, rec.Body.String(), "/portal?salonId=7")
}

func TestClaimHandler(t *testing.T) {
	type mockBehavior func(s *mock_handler.MockService)

	tests := []struct {
		name             string
		viewer           *salon.Viewer
		mockBehavior     mockBehavior
		expectedLocation string
	}{
		{
			name:             "Anonymous",
			mockBehavior:     func(s *mock_handler.MockService) {},
			expectedLocation: "/login?redirect=%2Fsalons%2Fsample%2Fglam-nails",
		},
		{
			name:   "Claimed",
			viewer: &salon.Viewer{ID: 5},
			mockBehavior: func(s *mock_handler.MockService) {
				s.EXPECT().Claim(gomock.Any(), "glam-nails", "tok").Return(&salon.Salon{ID: 7, Claimed: true}, nil)
			},
			expectedLocation: "/portal?salonId=7",
		},
		{
			name:   "Already claimed",
			viewer: &salon.Viewer{ID: 5},
			mockBehavior: func(s *mock_handler.MockService) {
				s.EXPECT().Claim(gomock.Any(), "glam-nails", "tok").Return(nil, apperror.ErrAlreadyClaimed)
			},
			expectedLocation: "/salons/sample/glam-nails?claim=taken",
		},
		{
			name:   "Token rejected",
			viewer: &salon.Viewer{ID: 5},
			mockBehavior: func(s *mock_handler.MockService) {
				s.EXPECT().Claim(gomock.Any(), "glam-nails", "tok").Return(nil, apperror.ErrUnauthorized)
			},
			expectedLocation: "/login?redirect=%2Fsalons%2Fsample%2Fglam-nails",
		},
		{
			name:   "Failure",
			viewer: &salon.Viewer{ID: 5},
			mockBehavior: func(s *mock_handler.MockService) {
				s.EXPECT().Claim(gomock.Any(), "glam-nails", "tok").Return(nil, errors.New("boom"))
			},
			expectedLocation: "/salons/sample/glam-nails?claim=failed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mock_handler.NewMockService(ctrl)
			tc.mockBehavior(service)

			r := newRouter(mock_handler.NewMockPageHost(ctrl), service)

			rec := httptest.NewRecorder()
			req := withViewer(httptest.NewRequest(http.MethodPost, "/salons/sample/glam-nails/claim", nil), tc.viewer)
			req.Header.Set("Sec-Fetch-Site", "same-origin")
			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tc.expectedLocation, rec.Header().Get("Location"))
		})
	}
}

func TestClaimHandler_Origin(t *testing.T) {
	tests := []struct {
		name           string
		headers        map[string]string
		trusted        bool
		expectedStatus int
	}{
		{
			name:           "Same origin fetch metadata",
			headers:        map[string]string{"Sec-Fetch-Site": "same-origin"},
			trusted:        true,
			expectedStatus: http.StatusSeeOther,
		},
		{
			name:           "Matching origin",
			headers:        map[string]string{"Origin": "http://example.com"},
			trusted:        true,
			expectedStatus: http.StatusSeeOther,
		},
		{
			name:           "Matching referer",
			headers:        map[string]string{"Referer": "http://example.com/salons/sample/glam-nails"},
			trusted:        true,
			expectedStatus: http.StatusSeeOther,
		},
		{
			name:           "Bearer token",
			headers:        map[string]string{"Authorization": "Bearer tok", "Sec-Fetch-Site": "cross-site"},
			trusted:        true,
			expectedStatus: http.StatusSeeOther,
		},
		{
			name:           "Cross site fetch metadata",
			headers:        map[string]string{"Sec-Fetch-Site": "cross-site", "Origin": "http://example.com"},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Foreign origin",
			headers:        map[string]string{"Origin": "https://evil.test"},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Null origin",
			headers:        map[string]string{"Origin": "null"},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "No origin information",
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mock_handler.NewMockService(ctrl)
			if tc.trusted {
				service.EXPECT().Claim(gomock.Any(), "glam-nails", "tok").Return(&salon.Salon{ID: 7, Claimed: true}, nil)
			}

			r := newRouter(mock_handler.NewMockPageHost(ctrl), service)

			req := withViewer(httptest.NewRequest(http.MethodPost, "/salons/sample/glam-nails/claim", nil), &salon.Viewer{ID: 5})
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if tc.trusted {
				assert.Equal(t, "/portal?salonId=7", rec.Header().Get("Location"))
			}
		})
	}
}

func TestUseTemplateHandler(t *testing.T) {
	tests := []struct {
		name             string
		path             string
		viewer           *salon.Viewer
		expectedLocation string
	}{
		{
			name:             "Anonymous",
			path:             "/preview/template/3/use",
			expectedLocation: "/login?redirect=%2Fpreview%2Ftemplate%2F3%2Fuse",
		},
		{
			name:             "Owner",
			path:             "/preview/template/3/use",
			viewer:           &salon.Viewer{ID: 5, Salon: 7},
			expectedLocation: "/portal?salonId=7",
		},
		{
			name:             "New salon",
			path:             "/preview/template/3/use",
			viewer:           &salon.Viewer{ID: 5},
			expectedLocation: "/portal/create?templateId=3",
		},
		{
			name:             "Bad id",
			path:             "/preview/template/x/use",
			viewer:           &salon.Viewer{ID: 5},
			expectedLocation: "/templates",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := newRouter(mock_handler.NewMockPageHost(ctrl), mock_handler.NewMockService(ctrl))

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, withViewer(httptest.NewRequest(http.MethodGet, tc.path, nil), tc.viewer))

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tc.expectedLocation, rec.Header().Get("Location"))
		})
	}
}
