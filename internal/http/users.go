package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/studygroups/internal/api"
	"github.com/mrlokans/studygroups/internal/entities"
)

const auditEntityUser = "user"

type UsersController struct {
	handler *api.Handler
	audit   auditTrail
}

func NewUsersController(handler *api.Handler, recorder AuditRecorder) *UsersController {
	return &UsersController{handler: handler, audit: auditTrail{recorder: recorder}}
}

// CreateUser adds a user
// POST /api/users
func (uc *UsersController) CreateUser(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
	}
	if !bindCreate(c, &req, "username is required") {
		return
	}

	resp, err := uc.handler.CreateUser(req.Username)
	if respondEnvelope(c, resp, err, "create user") {
		if user, ok := resp.Body.(entities.SerializedUser); ok {
			uc.audit.created(c, auditEntityUser, user.ID, user.Username)
		}
	}
}

// GetUser returns one user
// GET /api/users/:id
func (uc *UsersController) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := uc.handler.GetUser(id)
	respondEnvelope(c, resp, err, "get user")
}

// UpdateUser renames a user
// PATCH /api/users/:id
func (uc *UsersController) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Username *string `json:"username"`
	}
	if !bindPatch(c, &req) {
		return
	}

	resp, err := uc.handler.UpdateUser(id, req.Username)
	if respondEnvelope(c, resp, err, "update user") {
		uc.audit.updated(c, auditEntityUser, id, *req.Username)
	}
}

// DeleteUser removes a user
// DELETE /api/users/:id
func (uc *UsersController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := uc.handler.DeleteUser(id)
	if respondEnvelope(c, resp, err, "delete user") {
		uc.audit.deleted(c, auditEntityUser, id)
	}
}
