package controllers

import (
	"net/http"
	"strconv"

	"github.com/Himanagi/Calorie-tracker-app/services"

	"github.com/gin-gonic/gin"
)

func SearchFoods(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'q' query param"})
		return
	}

	svc := services.NewUSDAService()
	foods, err := svc.SearchFoods(query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": foods})
}

func GetFoodDetails(c *gin.Context) {
	fdcID, err := strconv.ParseInt(c.Param("fdcId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fdcId"})
		return
	}

	svc := services.NewUSDAService()
	details, err := svc.GetFoodDetails(fdcID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, details)
}
