package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/alexh7799/coderr/internal/domain/errors"
	"github.com/alexh7799/coderr/internal/server/http/dto"
	"github.com/alexh7799/coderr/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// pathID parses a numeric path parameter; a non-numeric value yields
// false and a 400 response has to be written by the caller.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// writeError maps a domain error onto an HTTP status with a uniform
// {"error": ...} body.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domainErrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		status = http.StatusConflict
	}
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

// bindPatch decodes a partial-update body into target and rejects any
// key outside the allowed set before the payload reaches a use case.
func bindPatch(c *gin.Context, target any, allowed ...string) error {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWithJSON(&raw); err != nil {
		return fmt.Errorf("%w: invalid request body", domainErrors.ErrValidation)
	}
	for key := range raw {
		if !containsKey(allowed, key) {
			return fmt.Errorf("%w: field %q is not allowed", domainErrors.ErrValidation, key)
		}
	}
	if err := c.ShouldBindBodyWithJSON(target); err != nil {
		return fmt.Errorf("%w: invalid request body", domainErrors.ErrValidation)
	}
	return nil
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
