package utils

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// DBErrorStatus maps a GORM error to an HTTP status and a client message.
// what names the entity, e.g. "Brand".
func DBErrorStatus(err error, what string) (int, string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, what + " not found"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusConflict, what + " with this slug already exists"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return http.StatusConflict, what + " is still referenced by other records"
	default:
		return http.StatusInternalServerError, "Server error"
	}
}
