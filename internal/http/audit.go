package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/studygroups/internal/entities"
)

const (
	defaultAuditLimit = 25
	maxAuditLimit     = 100
)

type AuditController struct {
	reader AuditReader
}

func NewAuditController(reader AuditReader) *AuditController {
	return &AuditController{reader: reader}
}

// GetAuditEvents returns the most recent audit events as JSON
// GET /api/audit?limit=&type=
func (ac *AuditController) GetAuditEvents(c *gin.Context) {
	limit := parseLimit(c, defaultAuditLimit, maxAuditLimit)
	eventType := c.Query("type")

	var events []entities.AuditEvent
	var err error

	if eventType != "" {
		if !entities.IsValidAuditEventType(eventType) {
			respondBadRequest(c, "invalid type")
			return
		}
		events, err = ac.reader.GetEventsByType(entities.AuditEventType(eventType), limit)
	} else {
		events, err = ac.reader.GetEvents(limit)
	}

	if err != nil {
		respondInternalError(c, err, "get audit events")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"limit":  limit,
	})
}

// GetEntityHistory returns every recorded change of one entity
// GET /api/audit/:entity/:id
func (ac *AuditController) GetEntityHistory(c *gin.Context) {
	entityType := c.Param("entity")
	switch entityType {
	case auditEntityUser, auditEntityStudyGroup, auditEntityDeck, auditEntityFlashcard:
	default:
		respondBadRequest(c, "invalid entity")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	events, err := ac.reader.GetEventsForEntity(entityType, id)
	if err != nil {
		respondInternalError(c, err, "get entity history")
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}
