package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/studygroups/internal/api"
	"github.com/mrlokans/studygroups/internal/entities"
)

const auditEntityFlashcard = "flashcard"

type FlashcardsController struct {
	handler *api.Handler
	audit   auditTrail
}

func NewFlashcardsController(handler *api.Handler, recorder AuditRecorder) *FlashcardsController {
	return &FlashcardsController{handler: handler, audit: auditTrail{recorder: recorder}}
}

// POST /api/flashcards
func (fc *FlashcardsController) CreateFlashcard(c *gin.Context) {
	var req struct {
		Question  string `json:"question" binding:"required"`
		Answer    string `json:"answer" binding:"required"`
		CreatorID uint   `json:"creatorId" binding:"required"`
		DeckID    uint   `json:"deckId" binding:"required"`
	}
	if !bindCreate(c, &req, "question, answer, creatorId and deckId are required") {
		return
	}

	resp, err := fc.handler.CreateFlashcard(req.Question, req.Answer, req.CreatorID, req.DeckID)
	if respondEnvelope(c, resp, err, "create flashcard") {
		if card, ok := resp.Body.(entities.SerializedFlashcard); ok {
			fc.audit.created(c, auditEntityFlashcard, card.ID, card.Question)
		}
	}
}

// GET /api/flashcards/:id
func (fc *FlashcardsController) GetFlashcard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := fc.handler.GetFlashcard(id)
	respondEnvelope(c, resp, err, "get flashcard")
}

// UpdateFlashcard revises the answer. Other fields in the body are ignored.
// PATCH /api/flashcards/:id
func (fc *FlashcardsController) UpdateFlashcard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Answer *string `json:"answer"`
	}
	if !bindPatch(c, &req) {
		return
	}

	resp, err := fc.handler.UpdateFlashcard(id, req.Answer)
	if respondEnvelope(c, resp, err, "update flashcard") {
		if card, ok := resp.Body.(entities.SerializedFlashcard); ok {
			fc.audit.updated(c, auditEntityFlashcard, id, card.Question)
		}
	}
}

// DELETE /api/flashcards/:id
func (fc *FlashcardsController) DeleteFlashcard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := fc.handler.DeleteFlashcard(id)
	if respondEnvelope(c, resp, err, "delete flashcard") {
		fc.audit.deleted(c, auditEntityFlashcard, id)
	}
}
