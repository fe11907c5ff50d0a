package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/studygroups/internal/api"
	"github.com/mrlokans/studygroups/internal/entities"
)

const auditEntityStudyGroup = "study_group"

type GroupsController struct {
	handler *api.Handler
	audit   auditTrail
}

func NewGroupsController(handler *api.Handler, recorder AuditRecorder) *GroupsController {
	return &GroupsController{handler: handler, audit: auditTrail{recorder: recorder}}
}

// POST /api/groups
func (gc *GroupsController) CreateGroup(c *gin.Context) {
	var req struct {
		GroupName string `json:"groupName" binding:"required"`
	}
	if !bindCreate(c, &req, "groupName is required") {
		return
	}

	resp, err := gc.handler.CreateStudyGroup(req.GroupName)
	if respondEnvelope(c, resp, err, "create study group") {
		if group, ok := resp.Body.(entities.SerializedStudyGroup); ok {
			gc.audit.created(c, auditEntityStudyGroup, group.ID, group.GroupName)
		}
	}
}

// GET /api/groups/:id
func (gc *GroupsController) GetGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := gc.handler.GetStudyGroup(id)
	respondEnvelope(c, resp, err, "get study group")
}

// PATCH /api/groups/:id
func (gc *GroupsController) UpdateGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		GroupName *string `json:"groupName"`
	}
	if !bindPatch(c, &req) {
		return
	}

	resp, err := gc.handler.UpdateStudyGroup(id, req.GroupName)
	if respondEnvelope(c, resp, err, "update study group") {
		gc.audit.updated(c, auditEntityStudyGroup, id, *req.GroupName)
	}
}

// DELETE /api/groups/:id
func (gc *GroupsController) DeleteGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := gc.handler.DeleteStudyGroup(id)
	if respondEnvelope(c, resp, err, "delete study group") {
		gc.audit.deleted(c, auditEntityStudyGroup, id)
	}
}
