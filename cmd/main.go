package main

import (
	"net/http"
	_ "time/tzdata"

	"github.com/rs/cors"

	"github.com/motix/motix/internal/app"
	"github.com/motix/motix/internal/config"
	"github.com/motix/motix/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)

	// 1) Config
	cfg := config.LoadConfig()

	// 2) Core application (store, services)
	application := app.NewApp(cfg)
	defer application.Close()

	// 3) Router (controllers + middleware pipeline)
	router := app.NewRouter(application)

	// 4) CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-API-KEY"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on :%s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, c.Handler(router)); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
