package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/career-recommender/internal/recommend"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var verr *recommend.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
