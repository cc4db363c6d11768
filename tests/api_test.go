package tests

import (
	"io"
	"net/http"

	"github.com/xw1nchester/nailsite/internal/apperror"
	sitehandler "github.com/xw1nchester/nailsite/internal/site/handler"
)

func (s *APITestSuite) TestLayouts() {
	response, err := http.Get(s.apiUrl + "/layouts")
	s.Require().NoError(err)

	s.Equal(http.StatusOK, response.StatusCode)

	layouts, err := decodeResponseBody[sitehandler.LayoutsResponse](response)
	s.Require().NoError(err)

	s.Equal("classic", layouts.Default)
	s.Len(layouts.Layouts, 10)
}

func (s *APITestSuite) TestPlan() {
	response, err := http.Get(s.apiUrl + "/sites/glam-nails/plan")
	s.Require().NoError(err)

	s.Equal(http.StatusOK, response.StatusCode)

	plan, err := decodeResponseBody[sitehandler.PlanResponse](response)
	s.Require().NoError(err)

	s.Equal("Glam Nails", plan.Name)
	s.Equal("modern", plan.Template)
	s.Equal("modern", plan.Layout)
	s.False(plan.Fallback)
	s.Contains(plan.Sections, "gallery")
	s.Equal("template-modern", plan.Theme.ClassName)
}

func (s *APITestSuite) TestPlan_NotFound() {
	response, err := http.Get(s.apiUrl + "/sites/nope/plan")
	s.Require().NoError(err)

	s.Equal(http.StatusNotFound, response.StatusCode)

	appErr, err := decodeResponseBody[apperror.AppError](response)
	s.Require().NoError(err)

	s.Equal(apperror.ErrNotFound.Message, appErr.Message)
}

func (s *APITestSuite) TestMetrics() {
	_, _ = s.getPage("/salons/sample/glam-nails")

	response, err := http.Get(s.baseUrl + "/metrics")
	s.Require().NoError(err)
	defer response.Body.Close()

	byteBody, err := io.ReadAll(response.Body)
	s.Require().NoError(err)

	s.Equal(http.StatusOK, response.StatusCode)
	s.Contains(string(byteBody), `nailsite_page_views_total{layout="modern",state="rendered"}`)
	s.Contains(string(byteBody), `nailsite_backend_requests_total{endpoint="salon",outcome="ok"}`)
}
