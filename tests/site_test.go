package tests

import (
	"fmt"
	"io"
	"net/http"
	"time"

	jwtauth "github.com/xw1nchester/nailsite/internal/auth/jwt"
)

func (s *APITestSuite) getPage(path string) (int, string) {
	response, err := http.Get(s.baseUrl + path)
	s.Require().NoError(err)
	defer response.Body.Close()

	byteBody, err := io.ReadAll(response.Body)
	s.Require().NoError(err)

	s.Equal("text/html; charset=utf-8", response.Header.Get("Content-Type"))

	return response.StatusCode, string(byteBody)
}

func (s *APITestSuite) TestSitePage() {
	status, body := s.getPage("/salons/sample/glam-nails")

	s.Equal(http.StatusOK, status)
	s.Contains(body, "Glam Nails")
	s.Contains(body, "template-modern")
	s.Contains(body, "--primary-color: #7E69AB;")
	s.Contains(body, "https://cdn.salons.test/media/a.jpg")
	s.Contains(body, "Login to Claim")
}

func (s *APITestSuite) TestSitePage_NotFound() {
	status, body := s.getPage("/salons/sample/nope")

	s.Equal(http.StatusNotFound, status)
	s.Contains(body, "Salon not found")
}

func (s *APITestSuite) TestSitePage_BackendFailure() {
	status, body := s.getPage("/salons/sample/broken")

	s.Equal(http.StatusBadGateway, status)
	s.Contains(body, "Retry")
}

func (s *APITestSuite) TestPreviewPage() {
	status, body := s.getPage("/preview/template/3")

	s.Equal(http.StatusOK, status)
	s.Contains(body, "Sample Salon")
	s.Contains(body, "Back to Templates")
	s.Contains(body, "Use This Template")
}

func (s *APITestSuite) TestPreviewPage_BadID() {
	status, _ := s.getPage("/preview/template/abc")

	s.Equal(http.StatusBadRequest, status)
}

func (s *APITestSuite) claim(token string) *http.Response {
	req, err := http.NewRequest(http.MethodPost, s.baseUrl+"/salons/sample/glam-nails/claim", nil)
	s.Require().NoError(err)

	req.Header.Set("Origin", s.baseUrl)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := noRedirect().Do(req)
	s.Require().NoError(err)
	response.Body.Close()

	return response
}

func (s *APITestSuite) TestClaim() {
	token, err := jwtauth.NewTokenManager(testSecret).GenerateToken(ownerUserID, time.Hour)
	s.Require().NoError(err)

	response := s.claim(token)
	s.Equal(http.StatusSeeOther, response.StatusCode)
	s.Equal(fmt.Sprintf("%s?salonId=7", s.cfg.Site.PortalURL), response.Header.Get("Location"))
	s.Equal(1, s.backend.claimCount())

	response = s.claim(token)
	s.Equal(http.StatusSeeOther, response.StatusCode)
	s.Equal("/salons/sample/glam-nails?claim=taken", response.Header.Get("Location"))
	s.Equal(1, s.backend.claimCount())
}

func (s *APITestSuite) TestClaim_Anonymous() {
	response := s.claim("")

	s.Equal(http.StatusSeeOther, response.StatusCode)
	s.Equal(s.cfg.Site.LoginURL+"?redirect=%2Fsalons%2Fsample%2Fglam-nails", response.Header.Get("Location"))
	s.Equal(0, s.backend.claimCount())
}

func (s *APITestSuite) TestClaim_ForgedToken() {
	token, err := jwtauth.NewTokenManager("another-secret").GenerateToken(ownerUserID, time.Hour)
	s.Require().NoError(err)

	response := s.claim(token)

	s.Equal(http.StatusSeeOther, response.StatusCode)
	s.Equal(s.cfg.Site.LoginURL+"?redirect=%2Fsalons%2Fsample%2Fglam-nails", response.Header.Get("Location"))
	s.Equal(0, s.backend.claimCount())
}

func (s *APITestSuite) TestClaim_CrossSiteCookie() {
	token, err := jwtauth.NewTokenManager(testSecret).GenerateToken(ownerUserID, time.Hour)
	s.Require().NoError(err)

	req, err := http.NewRequest(http.MethodPost, s.baseUrl+"/salons/sample/glam-nails/claim", nil)
	s.Require().NoError(err)

	req.Header.Set("Origin", "https://evil.test")
	req.AddCookie(&http.Cookie{Name: s.cfg.Auth.CookieName, Value: token})

	response, err := noRedirect().Do(req)
	s.Require().NoError(err)
	response.Body.Close()

	s.Equal(http.StatusForbidden, response.StatusCode)
	s.Equal(0, s.backend.claimCount())
}
