package http

import (
	"errors"
	"net/http"

	"github.com/Dzrekey001/user-auth-service/internal/service"
	"github.com/Dzrekey001/user-auth-service/internal/store"
	"github.com/Dzrekey001/user-auth-service/internal/utils"
	"github.com/Dzrekey001/user-auth-service/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrUserAlreadyExists:   http.StatusBadRequest,
	service.ErrResetRequestFailed:  http.StatusForbidden,
	service.ErrInvalidResetToken:   http.StatusForbidden,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrAmbiguousCriteria:  http.StatusConflict,
	store.ErrInvalidCriteria:    http.StatusBadRequest,
	store.ErrInvalidUserID:      http.StatusBadRequest,
	store.ErrNoFieldsToUpdate:   http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError emits a JSON error payload with the given status. Marshal
// failures are already downgraded to a plain 500 inside WriteJSON.
func writeError(w http.ResponseWriter, response models.ErrorResponse, statusCode int) {
	utils.WriteJSON(w, response, statusCode)
}
