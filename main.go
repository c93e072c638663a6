package main

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"dubby-site/config"
	"dubby-site/dubbing"
	"dubby-site/genai"
	"dubby-site/handlers"
)

func main() {

	initLogger()

	log.Infof("GitSHA: %s", config.GetGitSHA())
	log.Infof("BuildDate: %s", config.GetBuildDate())

	genai.Init(log)
	dubbing.Init(log)

	apiKey, err := config.GetAPIKey()
	if err != nil {
		panic(fmt.Sprintf("%v", err))
	}

	client := genai.NewClient(apiKey)
	orchestrator := dubbing.NewOrchestrator(client)
	registry := dubbing.NewRegistry()

	err = handlers.Init(log, registry, orchestrator)
	if err != nil {
		panic(fmt.Sprintf("%v", err))
	}

	go PeriodicCleanup(registry)

	// Initialize Echo
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Routes
	api := e.Group("/api", handlers.RunMiddleware)
	api.POST("/media", handlers.MediaPost)
	api.DELETE("/media", handlers.MediaDelete)
	api.POST("/dub", handlers.DubPost)
	api.GET("/status", handlers.StatusGet)

	// front-end assets
	e.Static("/", "static")

	// Start server
	e.Logger.Fatal(e.Start(config.GetAddr()))
}
