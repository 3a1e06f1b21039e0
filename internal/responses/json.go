package responses

import (
	"errors"
	"net/http"

	"catalog-api/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every endpoint answers with. Error carries the
// underlying driver message when a write fails.
type APIResponse struct {
	Message string `json:"message"`
	Result  any    `json:"result,omitempty"`
	Results any    `json:"results,omitempty"`
	Error   string `json:"Error,omitempty"`
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{Message: message})
}

func Result(c *gin.Context, statusCode int, message string, result any) {
	c.JSON(statusCode, APIResponse{Message: message, Result: result})
}

func Results(c *gin.Context, statusCode int, message string, results any) {
	c.JSON(statusCode, APIResponse{Message: message, Results: results})
}

func Fail(c *gin.Context, statusCode int, err error, message string) {
	resp := APIResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(statusCode, resp)
}

// Error maps err onto a status code and envelope. Anything outside the
// apperrors kinds is a 500 "<entities> could not be retrieved".
func Error(c *gin.Context, err error, entities string) int {
	var (
		vErr *apperrors.ValidationError
		cErr *apperrors.ConflictError
		nErr *apperrors.NotFoundError
		pErr *apperrors.PersistenceError
	)
	switch {
	case errors.As(err, &vErr):
		Fail(c, http.StatusBadRequest, vErr.Err, vErr.Message)
		return http.StatusBadRequest
	case errors.As(err, &cErr):
		Message(c, http.StatusBadRequest, cErr.Error())
		return http.StatusBadRequest
	case errors.As(err, &nErr):
		Message(c, http.StatusNotFound, nErr.Error())
		return http.StatusNotFound
	case errors.As(err, &pErr):
		Fail(c, http.StatusBadRequest, pErr.Err, pErr.Message)
		return http.StatusBadRequest
	}
	Fail(c, http.StatusInternalServerError, err, entities+" could not be retrieved")
	return http.StatusInternalServerError
}
