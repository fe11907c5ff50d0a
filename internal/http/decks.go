package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/studygroups/internal/api"
	"github.com/mrlokans/studygroups/internal/entities"
)

const auditEntityDeck = "deck"

type DecksController struct {
	handler *api.Handler
	audit   auditTrail
}

func NewDecksController(handler *api.Handler, recorder AuditRecorder) *DecksController {
	return &DecksController{handler: handler, audit: auditTrail{recorder: recorder}}
}

// CreateDeck adds a deck to a study group. creatorId and groupId are stored
// as given; nothing checks that they exist.
// POST /api/decks
func (dc *DecksController) CreateDeck(c *gin.Context) {
	var req struct {
		DeckName  string `json:"deckName" binding:"required"`
		CreatorID uint   `json:"creatorId" binding:"required"`
		GroupID   uint   `json:"groupId" binding:"required"`
	}
	if !bindCreate(c, &req, "deckName, creatorId and groupId are required") {
		return
	}

	resp, err := dc.handler.CreateDeck(req.DeckName, req.CreatorID, req.GroupID)
	if respondEnvelope(c, resp, err, "create deck") {
		if deck, ok := resp.Body.(entities.SerializedDeck); ok {
			dc.audit.created(c, auditEntityDeck, deck.ID, deck.DeckName)
		}
	}
}

// GET /api/decks/:id
func (dc *DecksController) GetDeck(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := dc.handler.GetDeck(id)
	respondEnvelope(c, resp, err, "get deck")
}

// PATCH /api/decks/:id
func (dc *DecksController) UpdateDeck(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		DeckName *string `json:"deckName"`
	}
	if !bindPatch(c, &req) {
		return
	}

	resp, err := dc.handler.UpdateDeck(id, req.DeckName)
	if respondEnvelope(c, resp, err, "update deck") {
		dc.audit.updated(c, auditEntityDeck, id, *req.DeckName)
	}
}

// DELETE /api/decks/:id
func (dc *DecksController) DeleteDeck(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := dc.handler.DeleteDeck(id)
	if respondEnvelope(c, resp, err, "delete deck") {
		dc.audit.deleted(c, auditEntityDeck, id)
	}
}
