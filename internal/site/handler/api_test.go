package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/xw1nchester/nailsite/internal/apperror"
	"github.com/xw1nchester/nailsite/internal/layout"
	"github.com/xw1nchester/nailsite/internal/page"
	mock_page "github.com/xw1nchester/nailsite/internal/page/mocks"
)

func newAPIRouter(host PageHost, registry *layout.Registry) chi.Router {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		NewAPI(host, registry, zap.NewNop()).Register(r)
	})
	return r
}

func TestLayoutsHandler(t *testing.T) {
	r := newAPIRouter(nil, layout.DefaultRegistry())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/layouts", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp LayoutsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, "classic", resp.Default)
	require.Len(t, resp.Layouts, 10)
	assert.Equal(t, "classic", resp.Layouts[0].Kind)
	assert.Equal(t, []string{"hero"}, resp.Layouts[0].Slots[0])

	var elegant *LayoutResponse
	for i := range resp.Layouts {
		if resp.Layouts[i].Kind == "elegant" {
			elegant = &resp.Layouts[i]
		}
	}
	require.NotNil(t, elegant)
	assert.Contains(t, elegant.Slots, []string{"about", "info-strip"})
}

func TestPlanHandler(t *testing.T) {
	type mockBehavior func(l *mock_page.MockLoader)

	tests := []struct {
		name           string
		mockBehavior   mockBehavior
		expectedStatus int
		expectedError  string
	}{
		{
			name: "OK",
			mockBehavior: func(l *mock_page.MockLoader) {
				l.EXPECT().LoadSite(gomock.Any(), "glam-nails").Return(glamNails())
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Not found",
			mockBehavior: func(l *mock_page.MockLoader) {
				l.EXPECT().LoadSite(gomock.Any(), "glam-nails").Return(nil, nil, apperror.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "not found",
		},
		{
			name: "Backend down",
			mockBehavior: func(l *mock_page.MockLoader) {
				l.EXPECT().LoadSite(gomock.Any(), "glam-nails").Return(nil, nil, apperror.ErrUnavailable)
			},
			expectedStatus: http.StatusBadGateway,
			expectedError:  "backend unavailable",
		},
		{
			name: "No design",
			mockBehavior: func(l *mock_page.MockLoader) {
				s, _ := glamNails()
				l.EXPECT().LoadSite(gomock.Any(), "glam-nails").Return(s, nil, nil)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "layout unavailable",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			loader := mock_page.NewMockLoader(ctrl)
			tc.mockBehavior(loader)

			host := page.NewHost(loader, layout.DefaultRegistry(), page.Options{URLs: testURLs}, zap.NewNop())
			r := newAPIRouter(host, layout.DefaultRegistry())

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sites/glam-nails/plan", nil))

			assert.Equal(t, tc.expectedStatus, rec.Code)

			if tc.expectedError != "" {
				var appErr apperror.AppError
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&appErr))
				assert.Equal(t, tc.expectedError, appErr.Message)
				return
			}

			var plan PlanResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&plan))

			assert.Equal(t, "glam-nails", plan.SiteID)
			assert.Equal(t, "Glam Nails", plan.Name)
			assert.Equal(t, "modern", plan.Layout)
			assert.False(t, plan.Fallback)
			assert.Equal(t, []string{"hero", "gallery"}, plan.Sections)
			assert.Equal(t, "template-modern", plan.Theme.ClassName)
			assert.Contains(t, plan.Theme.CSSVariables, "--primary-color: #7E69AB;")
		})
	}
}
