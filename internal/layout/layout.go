package layout

import (
	"github.com/xw1nchester/nailsite/internal/section"
)

// Slot is one position in a layout: a single section, or several sections
// placed side by side.
type Slot struct {
	Sections []section.ID
}

func single(id section.ID) Slot {
	return Slot{Sections: []section.ID{id}}
}

func sideBySide(ids ...section.ID) Slot {
	return Slot{Sections: ids}
}

// Layout is the data describing one design: its section order and the
// per-section defaults. Layouts never render sections themselves.
type Layout struct {
	Kind            Kind
	Name            string
	Description     string
	HeroVariant     string
	ServicesDisplay string
	GalleryColumns  int
	Slots           []Slot
}

// Row is a composed slot. Group is true only when more than one section of
// a side-by-side slot survived gating.
type Row struct {
	Blocks []*section.Block
	Group  bool
}

// Compose renders the layout's slots in order, skipping declined sections.
// A group with no survivors disappears and a group with one survivor
// becomes a plain full-width row.
func (l *Layout) Compose(in section.Input) []Row {
	rows := make([]Row, 0, len(l.Slots))

	for _, slot := range l.Slots {
		blocks := make([]*section.Block, 0, len(slot.Sections))
		for _, id := range slot.Sections {
			if b := section.Build(id, in, l.config(id, in)); b != nil {
				blocks = append(blocks, b)
			}
		}

		if len(blocks) == 0 {
			continue
		}

		rows = append(rows, Row{Blocks: blocks, Group: len(blocks) > 1})
	}

	return rows
}

// config merges the layout defaults with the template's feature overrides.
func (l *Layout) config(id section.ID, in section.Input) section.Config {
	f := in.Theme.Features

	switch id {
	case section.Hero:
		return section.Config{Variant: firstNonEmpty(f.HeroLayout, l.HeroVariant)}
	case section.Services:
		return section.Config{Variant: firstNonEmpty(f.ServicesDisplay, l.ServicesDisplay)}
	case section.Gallery:
		cols := l.GalleryColumns
		if f.GalleryCols != 0 {
			cols = f.GalleryCols
		}
		return section.Config{Columns: cols}
	}

	return section.Config{}
}

// Rendered lists the ids of the sections Compose produced, in order.
func Rendered(rows []Row) []section.ID {
	var ids []section.ID
	for _, r := range rows {
		for _, b := range r.Blocks {
			ids = append(ids, b.ID)
		}
	}
	return ids
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
