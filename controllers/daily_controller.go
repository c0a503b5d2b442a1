package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dgf281219-blip/metodo/middlewares"
	"github.com/dgf281219-blip/metodo/services"
)

type DailyController struct {
	records *services.DailyRecordService
}

func NewDailyController(records *services.DailyRecordService) *DailyController {
	return &DailyController{records: records}
}

func (ctl *DailyController) UpsertRecord(c *gin.Context) {
	var input services.DailyRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	record, err := ctl.records.Upsert(user.UserID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}

func (ctl *DailyController) GetRecord(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	record, err := ctl.records.Get(user.UserID, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}

func (ctl *DailyController) ListRecords(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	records, err := ctl.records.List(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

type waterInput struct {
	WaterML *int `json:"water_ml"`
}

// UpdateWater accepts water_ml in the JSON body or as a query parameter.
func (ctl *DailyController) UpdateWater(c *gin.Context) {
	var input waterInput
	_ = c.ShouldBindJSON(&input)

	if input.WaterML == nil {
		if raw := c.Query("water_ml"); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil {
				input.WaterML = &v
			}
		}
	}
	if input.WaterML == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "water_ml is required"})
		return
	}

	user := middlewares.CurrentUser(c)
	if err := ctl.records.SetWater(user.UserID, *input.WaterML); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"water_intake": *input.WaterML})
}
