// Package handler contains the HTTP handlers.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Peculiar9/dojo/internal/logger"
	"github.com/Peculiar9/dojo/internal/types/interfaces"
)

// WarriorHandler serves the warrior routes. The warrior is injected at
// construction time; handlers resolve nothing per request.
type WarriorHandler struct {
	warrior interfaces.Warrior
}

// NewWarriorHandler creates a warrior handler backed by the bound Warrior.
func NewWarriorHandler(warrior interfaces.Warrior) *WarriorHandler {
	return &WarriorHandler{warrior: warrior}
}

// Fight handles GET /warrior/fight.
func (h *WarriorHandler) Fight(c *gin.Context) {
	action := h.warrior.Fight()
	logger.GetLogger(c).WithField("action", action).Debug("warrior fights")
	c.JSON(http.StatusOK, gin.H{"action": action})
}

// Sneak handles GET /warrior/sneak.
func (h *WarriorHandler) Sneak(c *gin.Context) {
	action := h.warrior.Sneak()
	logger.GetLogger(c).WithField("action", action).Debug("warrior sneaks")
	c.JSON(http.StatusOK, gin.H{"action": action})
}
