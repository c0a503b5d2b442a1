package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dgf281219-blip/metodo/middlewares"
	"github.com/dgf281219-blip/metodo/services"
)

type CalorieController struct {
	foods *services.FoodService
}

func NewCalorieController(foods *services.FoodService) *CalorieController {
	return &CalorieController{foods: foods}
}

// ListFoods is public: the catalog carries no per-user data.
func (ctl *CalorieController) ListFoods(c *gin.Context) {
	foods, err := ctl.foods.ListFoods(c.Query("category"), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (ctl *CalorieController) AddMeal(c *gin.Context) {
	var input services.FoodEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	entry, err := ctl.foods.AddMeal(user.UserID, input)
	if err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (ctl *CalorieController) Today(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	summary, err := ctl.foods.Today(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// DeleteEntry acknowledges without deleting. Entries carry no exposed id
// yet, so there is nothing the client could address; the stub keeps the
// endpoint contract stable.
func (ctl *CalorieController) DeleteEntry(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted"})
}
