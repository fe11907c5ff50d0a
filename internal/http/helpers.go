package http

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/studygroups/internal/api"
	"github.com/mrlokans/studygroups/internal/audit"
)

// --- Response Types ---

// ErrorResponse is the body of every response with a status of 400 or above.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse carries a plain message on success.
type SuccessResponse struct {
	Message string `json:"message"`
}

// --- Error Response Helpers ---

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondEnvelope writes the outcome of a handler operation. Entity bodies are
// written as-is; message bodies are wrapped by status class.
func respondEnvelope(c *gin.Context, resp api.Response, err error, context string) bool {
	if err != nil {
		respondInternalError(c, err, context)
		return false
	}

	switch body := resp.Body.(type) {
	case string:
		if resp.Status >= http.StatusBadRequest {
			c.JSON(resp.Status, ErrorResponse{Error: body})
		} else {
			c.JSON(resp.Status, SuccessResponse{Message: body})
		}
	default:
		c.JSON(resp.Status, body)
	}
	return resp.Status < http.StatusBadRequest
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// parseLimit reads ?limit=, falling back to def for missing or out-of-range values.
func parseLimit(c *gin.Context, def, max int) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 || limit > max {
		return def
	}
	return limit
}

// bindCreate decodes a create body. Missing required fields answer 400.
func bindCreate(c *gin.Context, req any, message string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondBadRequest(c, message)
		return false
	}
	return true
}

// bindPatch decodes an update body. An empty body is valid and leaves every
// field unset.
func bindPatch(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	respondBadRequest(c, "invalid request body")
	return false
}

// --- Audit ---

func requestInfo(c *gin.Context) audit.RequestInfo {
	return audit.RequestInfo{
		RequestID: c.GetString(requestIDKey),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

// auditTrail forwards to an optional AuditRecorder.
type auditTrail struct {
	recorder AuditRecorder
}

func (a auditTrail) created(c *gin.Context, entityType string, id uint, name string) {
	if a.recorder != nil {
		a.recorder.LogCreate(entityType, id, name, requestInfo(c))
	}
}

func (a auditTrail) updated(c *gin.Context, entityType string, id uint, name string) {
	if a.recorder != nil {
		a.recorder.LogUpdate(entityType, id, name, requestInfo(c))
	}
}

func (a auditTrail) deleted(c *gin.Context, entityType string, id uint) {
	if a.recorder != nil {
		a.recorder.LogDelete(entityType, id, requestInfo(c))
	}
}
