package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"messagehub/backend/internal/models"
	"messagehub/backend/internal/storage"
)

// ReceiveWebhook accepts an inbound message event posted by the automation
// workflow, stamps it and appends it to the relay store. Malformed bodies
// are rejected with 422 and never stored.
func (h *Handler) ReceiveWebhook(c *gin.Context) {
	var rec models.EventRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	// ReceivedAt is server-assigned; whatever the caller put there is discarded.
	rec.ReceivedAt = ""

	if err := h.Store.Ingest(&rec); err != nil {
		if errors.Is(err, storage.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		log.Printf("ERROR: Failed to ingest event for chat %s: %v", rec.ChatID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store message"})
		return
	}

	log.Printf("INFO: Message received from workflow: chat=%s patient=%s", rec.ChatID, rec.PatientPhone)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
