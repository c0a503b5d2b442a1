package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dgf281219-blip/metodo/middlewares"
	"github.com/dgf281219-blip/metodo/services"
)

type MethodController struct {
	records     *services.DailyRecordService
	reflections *services.ReflectionService
}

func NewMethodController(records *services.DailyRecordService, reflections *services.ReflectionService) *MethodController {
	return &MethodController{records: records, reflections: reflections}
}

func (ctl *MethodController) GetProgress(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	progress, err := ctl.records.Progress(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (ctl *MethodController) CreateReflection(c *gin.Context) {
	var input services.ReflectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	reflection, err := ctl.reflections.Upsert(user.UserID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reflection)
}

func (ctl *MethodController) GetReflection(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	reflection, err := ctl.reflections.Get(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reflection)
}
