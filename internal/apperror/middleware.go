package apperror

import (
	"errors"
	"net/http"
)

type handler func(w http.ResponseWriter, r *http.Request) error

func Middleware(h handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		err := h(w, r)

		var appErr *AppError
		if err != nil {
			if errors.As(err, &appErr) {
				w.WriteHeader(StatusCode(err))

				w.Write(appErr.Marshal())

				return
			}

			w.WriteHeader(http.StatusInternalServerError)
			w.Write(internalError().Marshal())
		}
	}
}

// StatusCode maps an error to the HTTP status it is reported with.
func StatusCode(err error) int {
	var appErr *AppError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAlreadyClaimed):
		return http.StatusConflict
	case errors.Is(err, ErrUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, ErrLayoutUnavailable):
		return http.StatusInternalServerError
	case errors.As(err, &appErr):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
