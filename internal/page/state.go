package page

import (
	"fmt"
	"net/http"
)

type State int

const (
	ResolvingMode State = iota
	MissingInfo
	Loading
	Error
	NotFound
	LayoutUnavailable
	Rendered
)

var stateNames = map[State]string{
	ResolvingMode:     "resolving-mode",
	MissingInfo:       "missing-info",
	Loading:           "loading",
	Error:             "error",
	NotFound:          "not-found",
	LayoutUnavailable: "layout-unavailable",
	Rendered:          "rendered",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether a page can be written in this state.
func (s State) Terminal() bool {
	switch s {
	case MissingInfo, Error, NotFound, LayoutUnavailable, Rendered:
		return true
	}
	return false
}

func (s State) HTTPStatus() int {
	switch s {
	case Rendered:
		return http.StatusOK
	case MissingInfo:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Error:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

var transitions = map[State][]State{
	ResolvingMode: {MissingInfo, Loading},
	Loading:       {Error, NotFound, LayoutUnavailable, Rendered},
}

func canTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Mode int

const (
	ModeUnknown Mode = iota
	ModeSite
	ModePreview
)

func (m Mode) String() string {
	switch m {
	case ModeSite:
		return "site"
	case ModePreview:
		return "preview"
	}
	return "unknown"
}
