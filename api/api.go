package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/schema"
	"github.com/integra/explorer/internal/storage"
	"github.com/rs/zerolog/log"
)

// Error codes follow the tRPC error code names.
const (
	CodeBadRequest          = "BAD_REQUEST"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeNotFound            = "NOT_FOUND"
	CodeTooManyRequests     = "TOO_MANY_REQUESTS"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
	CodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
	CodeTimeout             = "TIMEOUT"
)

type Error struct {
	Code       string `json:"code"`
	HttpStatus int    `json:"httpStatus"`
	Message    string `json:"message"`
}

type ErrorResponse struct {
	Error Error `json:"error"`
}

type Result struct {
	Data interface{} `json:"data"`
}

// QueryResponse is the success envelope: {"result": {"data": ...}}.
type QueryResponse struct {
	Result Result `json:"result"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, QueryResponse{Result: Result{Data: data}})
}

func writeError(c *gin.Context, code string, message string, status int) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: Error{
		Code:       code,
		HttpStatus: status,
		Message:    message,
	}})
}

var (
	BadRequestErrorHandler = func(c *gin.Context, err error) {
		writeError(c, CodeBadRequest, err.Error(), http.StatusBadRequest)
	}
	NotFoundErrorHandler = func(c *gin.Context, message string) {
		writeError(c, CodeNotFound, message, http.StatusNotFound)
	}
	InternalErrorHandler = func(c *gin.Context, message string) {
		if message == "" {
			message = "An unexpected error occurred."
		}
		writeError(c, CodeInternalServerError, message, http.StatusInternalServerError)
	}
	UnauthorizedErrorHandler = func(c *gin.Context, err error) {
		writeError(c, CodeUnauthorized, err.Error(), http.StatusUnauthorized)
	}
	TooManyRequestsErrorHandler = func(c *gin.Context) {
		writeError(c, CodeTooManyRequests, "Too many requests", http.StatusTooManyRequests)
	}
)

// StoreErrorHandler maps store failures to 503/504 without exposing driver errors.
func StoreErrorHandler(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrTimeout):
		writeError(c, CodeTimeout, "The data store did not respond in time", http.StatusGatewayTimeout)
	case errors.Is(err, storage.ErrStoreUnavailable):
		writeError(c, CodeServiceUnavailable, "The data store is unavailable", http.StatusServiceUnavailable)
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unexpected procedure error")
		InternalErrorHandler(c, "")
	}
}

var decoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// DecodeInput reads the procedure input into target. A JSON document in the
// "input" query parameter wins; otherwise plain query parameters are decoded.
// Required fields for the procedure are checked before decoding.
func DecodeInput(c *gin.Context, procedure string, target interface{}) error {
	if raw := c.Query("input"); raw != "" {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal([]byte(raw), &fields); err != nil {
			return fmt.Errorf("invalid input: %w", err)
		}
		if err := ValidateInputFields(procedure, presentJSONFields(fields)); err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(raw), target); err != nil {
			return fmt.Errorf("invalid input: %w", err)
		}
		return nil
	}

	values := c.Request.URL.Query()
	present := make(map[string]bool, len(values))
	for key, v := range values {
		if len(v) > 0 && strings.TrimSpace(v[0]) != "" {
			present[key] = true
		}
	}
	if err := ValidateInputFields(procedure, present); err != nil {
		return err
	}
	if err := decoder.Decode(target, values); err != nil {
		log.Debug().Err(err).Str("procedure", procedure).Msg("error parsing query params")
		return fmt.Errorf("invalid input: %w", err)
	}
	return nil
}

func presentJSONFields(fields map[string]json.RawMessage) map[string]bool {
	present := make(map[string]bool, len(fields))
	for key, value := range fields {
		if v := strings.TrimSpace(string(value)); v != "null" && v != `""` {
			present[key] = true
		}
	}
	return present
}
