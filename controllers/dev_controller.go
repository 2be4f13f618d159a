// controllers/dev_controller.go
package controllers

import (
	"net/http"

	"github.com/Himanagi/Calorie-tracker-app/services"

	"github.com/gin-gonic/gin"
)

// BackfillEntryDates fixes historical entries that predate the date column
// by deriving it from created_at.
func BackfillEntryDates(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	fixed, err := services.BackfillEntryDates(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"fixed": fixed})
}
