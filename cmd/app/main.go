package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"sanchar/cmd/fx/chat_fx"
	"sanchar/cmd/fx/places_fx"
	"sanchar/cmd/fx/plan_fx"
	"sanchar/internal/api/controllers"
	"sanchar/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		places_fx.Module,
		plan_fx.Module,
		chat_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8000"
			}
			go func() {
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	planController *controllers.PlanController,
	chatController *controllers.ChatController,
	placesController *controllers.PlacesController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, planController, chatController, placesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	planController *controllers.PlanController,
	chatController *controllers.ChatController,
	placesController *controllers.PlacesController) {

	r.GET("/health", placesController.Health)
	r.POST("/generate-plan", planController.GeneratePlan)

	plansGroup := r.Group("/plans")
	plansGroup.POST("", planController.SharePlan)
	plansGroup.GET("/share/:code", planController.GetSharedPlan)

	chatGroup := r.Group("/chat")
	chatGroup.POST("/start", chatController.StartChat)
	chatGroup.POST("", chatController.Chat)

	placesGroup := r.Group("/places")
	placesGroup.POST("/hidden/explore", placesController.ExploreHiddenGems)
}
