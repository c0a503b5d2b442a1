package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dgf281219-blip/metodo/middlewares"
	"github.com/dgf281219-blip/metodo/services"
)

type UserController struct {
	goals *services.GoalService
}

func NewUserController(goals *services.GoalService) *UserController {
	return &UserController{goals: goals}
}

func (ctl *UserController) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, middlewares.CurrentUser(c))
}

func (ctl *UserController) CreateGoals(c *gin.Context) {
	var input services.GoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	goals, err := ctl.goals.Upsert(user.UserID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}

// GetGoals returns null, not 404, when no goals were submitted yet.
func (ctl *UserController) GetGoals(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	goals, err := ctl.goals.Get(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}
