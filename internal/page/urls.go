package page

import (
	"net/url"
	"strconv"
	"strings"
)

// URLs are the external pages the site links out to.
type URLs struct {
	Listing   string
	Templates string
	Login     string
	Portal    string
}

func SitePath(siteID string) string {
	return "/salons/sample/" + url.PathEscape(siteID)
}

func ClaimPath(siteID string) string {
	return SitePath(siteID) + "/claim"
}

func PreviewPath(templateID int) string {
	return "/preview/template/" + strconv.Itoa(templateID)
}

func UseTemplatePath(templateID int) string {
	return PreviewPath(templateID) + "/use"
}

// LoginRedirect sends the viewer to login and back to returnTo afterwards.
func (u URLs) LoginRedirect(returnTo string) string {
	return withQuery(u.Login, url.Values{"redirect": {returnTo}})
}

// PortalEdit opens the editing context for an owned salon.
func (u URLs) PortalEdit(salonID int) string {
	return withQuery(u.Portal, url.Values{"salonId": {strconv.Itoa(salonID)}})
}

// PortalCreate starts a new salon from a template.
func (u URLs) PortalCreate(templateID int) string {
	return withQuery(strings.TrimSuffix(u.Portal, "/")+"/create", url.Values{"templateId": {strconv.Itoa(templateID)}})
}

func withQuery(base string, q url.Values) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + q.Encode()
}
