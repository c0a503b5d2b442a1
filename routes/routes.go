package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dgf281219-blip/metodo/config"
	"github.com/dgf281219-blip/metodo/controllers"
	"github.com/dgf281219-blip/metodo/middlewares"
	"github.com/dgf281219-blip/metodo/services"
)

// SetupRouter wires services and controllers onto the /api surface.
func SetupRouter(cfg config.Config, db *gorm.DB) *gin.Engine {
	identity := services.NewIdentityService(cfg.SessionDataURL)
	authSvc := services.NewAuthService(db, identity)
	goalSvc := services.NewGoalService(db)
	recordSvc := services.NewDailyRecordService(db, goalSvc)
	reflectionSvc := services.NewReflectionService(db)
	foodSvc := services.NewFoodService(db)
	activitySvc := services.NewActivityService(db)

	authCtl := controllers.NewAuthController(authSvc, cfg.CookieSecure)
	userCtl := controllers.NewUserController(goalSvc)
	dailyCtl := controllers.NewDailyController(recordSvc)
	methodCtl := controllers.NewMethodController(recordSvc, reflectionSvc)
	calorieCtl := controllers.NewCalorieController(foodSvc)
	activityCtl := controllers.NewActivityController(activitySvc)

	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Session-ID"}
	r.Use(cors.New(corsCfg))

	api := r.Group("/api")
	requireAuth := middlewares.AuthMiddleware(authSvc)

	auth := api.Group("/auth")
	{
		auth.POST("/process-session", authCtl.ProcessSession)
		auth.GET("/me", requireAuth, authCtl.Me)
		auth.POST("/logout", requireAuth, authCtl.Logout)
	}

	user := api.Group("/user")
	user.Use(requireAuth)
	{
		user.GET("/profile", userCtl.GetProfile)
		user.POST("/goals", userCtl.CreateGoals)
		user.GET("/goals", userCtl.GetGoals)
	}

	daily := api.Group("/daily")
	daily.Use(requireAuth)
	{
		daily.POST("/record", dailyCtl.UpsertRecord)
		daily.GET("/record/:date", dailyCtl.GetRecord)
		daily.GET("/records", dailyCtl.ListRecords)
		daily.PUT("/water", dailyCtl.UpdateWater)
	}

	method := api.Group("/method")
	method.Use(requireAuth)
	{
		method.GET("/progress", methodCtl.GetProgress)
		method.POST("/final-reflection", methodCtl.CreateReflection)
		method.GET("/final-reflection", methodCtl.GetReflection)
	}

	calories := api.Group("/calories")
	{
		calories.GET("/foods", calorieCtl.ListFoods) // public catalog
		calories.POST("/add-meal", requireAuth, calorieCtl.AddMeal)
		calories.GET("/today", requireAuth, calorieCtl.Today)
		calories.DELETE("/:entry_id", requireAuth, calorieCtl.DeleteEntry)
	}

	activities := api.Group("/activities")
	{
		activities.GET("/list", activityCtl.List) // public catalog
		activities.POST("/add", requireAuth, activityCtl.Add)
		activities.GET("/today", requireAuth, activityCtl.Today)
	}

	return r
}
