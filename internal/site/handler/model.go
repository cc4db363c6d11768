package handler

import (
	"github.com/xw1nchester/nailsite/internal/layout"
	"github.com/xw1nchester/nailsite/internal/page"
	"github.com/xw1nchester/nailsite/internal/section"
)

type LayoutResponse struct {
	Kind            string     `json:"kind"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	HeroVariant     string     `json:"hero_variant"`
	ServicesDisplay string     `json:"services_display"`
	GalleryColumns  int        `json:"gallery_columns"`
	Slots           [][]string `json:"slots"`
}

type LayoutsResponse struct {
	Default string           `json:"default"`
	Layouts []LayoutResponse `json:"layouts"`
}

type ThemeResponse struct {
	ClassName    string `json:"class_name"`
	CSSVariables string `json:"css_variables"`
}

type PlanResponse struct {
	SiteID   string        `json:"site_id"`
	Name     string        `json:"name"`
	Template string        `json:"template"`
	Layout   string        `json:"layout"`
	Fallback bool          `json:"fallback"`
	Sections []string      `json:"sections"`
	Rows     [][]string    `json:"rows"`
	Theme    ThemeResponse `json:"theme"`
}

func newLayoutResponse(l *layout.Layout) LayoutResponse {
	slots := make([][]string, 0, len(l.Slots))
	for _, slot := range l.Slots {
		slots = append(slots, sectionNames(slot.Sections))
	}

	return LayoutResponse{
		Kind:            l.Kind.String(),
		Name:            l.Name,
		Description:     l.Description,
		HeroVariant:     l.HeroVariant,
		ServicesDisplay: l.ServicesDisplay,
		GalleryColumns:  l.GalleryColumns,
		Slots:           slots,
	}
}

func newPlanResponse(siteID string, v *page.View) PlanResponse {
	rows := make([][]string, 0, len(v.Rows))
	for _, row := range v.Rows {
		ids := make([]section.ID, 0, len(row.Blocks))
		for _, b := range row.Blocks {
			ids = append(ids, b.ID)
		}
		rows = append(rows, sectionNames(ids))
	}

	return PlanResponse{
		SiteID:   siteID,
		Name:     v.Title,
		Template: v.Template.Slug,
		Layout:   v.Layout.Kind.String(),
		Fallback: v.Fallback,
		Sections: sectionNames(v.Sections),
		Rows:     rows,
		Theme: ThemeResponse{
			ClassName:    v.Theme.ClassName(),
			CSSVariables: v.Theme.CSSVariables(),
		},
	}
}

func sectionNames(ids []section.ID) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, string(id))
	}
	return names
}
