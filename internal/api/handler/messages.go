package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessagesByPhone returns every stored record for the given patient phone,
// in insertion order. Always 200 with an empty list when nothing matches.
func (h *Handler) MessagesByPhone(c *gin.Context) {
	phone := c.Query("patientPhone")
	if phone == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "patientPhone is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": h.Store.ByPatientPhone(phone)})
}

// Health is a liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Stats reports how many events the relay currently holds.
func (h *Handler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stored": h.Store.Len()})
}
