package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dgf281219-blip/metodo/middlewares"
	"github.com/dgf281219-blip/metodo/services"
)

type ActivityController struct {
	activities *services.ActivityService
}

func NewActivityController(activities *services.ActivityService) *ActivityController {
	return &ActivityController{activities: activities}
}

// List is public, same as the food catalog.
func (ctl *ActivityController) List(c *gin.Context) {
	activities, err := ctl.activities.ListActivities(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (ctl *ActivityController) Add(c *gin.Context) {
	var input services.ActivityEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	entry, err := ctl.activities.Add(user.UserID, input)
	if err != nil {
		if errors.Is(err, services.ErrActivityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (ctl *ActivityController) Today(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	summary, err := ctl.activities.Today(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
