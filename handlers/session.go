package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"scheduly/services/session"
	"scheduly/utils"
)

// GetSessionHandler returns the stored state of one scheduling session.
func (hb *HandlerBundle) GetSessionHandler(c *gin.Context) {
	id := c.Param("id")
	rec, err := hb.Sessions.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Session not found", "Session "+id+" not found or expired")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Session lookup failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeleteSessionHandler removes a session.
func (hb *HandlerBundle) DeleteSessionHandler(c *gin.Context) {
	id := c.Param("id")
	if err := hb.Sessions.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Session not found", "Session "+id+" not found or expired")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Session delete failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
