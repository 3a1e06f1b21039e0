package handlers

import (
	"errors"
	"net/http"

	"catalog-api/internal/apperrors"
	"catalog-api/internal/responses"
	"catalog-api/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// pathID reads the :id segment. Anything but a positive integer is answered
// with 404 "<entity> not found".
func pathID(c *gin.Context, entity string) (int64, bool) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		responses.Error(c, &apperrors.NotFoundError{Entity: entity}, entity)
		return 0, false
	}
	return id, true
}

// fail writes the error envelope and logs what the client cannot fix.
func fail(c *gin.Context, log *zap.Logger, err error, entities string) {
	status := responses.Error(c, err, entities)

	var pErr *apperrors.PersistenceError
	switch {
	case status >= http.StatusInternalServerError:
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	case errors.As(err, &pErr):
		log.Warn(pErr.Message, zap.String("path", c.FullPath()), zap.Error(pErr.Err))
	}
}
