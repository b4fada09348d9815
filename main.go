package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/ADITYAKUMARSINGH16/ai-judicial/api/handlers"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil { //initialize stores, seed data and router
		zap.S().With(err).Error("failed to initialize")
		os.Exit(1)
	}

	port := a.Config.Port
	if port == "" {
		port = "8080"
	}
	zap.S().Infow("ai-judicial is up and running",
		"port", port,
		"url", a.Config.BaseUrl,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), a.Router))
}
