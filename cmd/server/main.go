package main

import (
	"log"

	"github.com/ecotrip/backend-go/internal/api"
	"github.com/ecotrip/backend-go/internal/classifier"
	"github.com/ecotrip/backend-go/internal/config"
	"github.com/ecotrip/backend-go/internal/database"
	"github.com/ecotrip/backend-go/internal/handler"
	"github.com/ecotrip/backend-go/internal/logsink"
	"github.com/ecotrip/backend-go/internal/repository"
	"github.com/ecotrip/backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	// Classifier mode is decided once, here
	var client classifier.Client
	if cfg.MockClassifier {
		log.Println("Classifier running in mock mode")
		client = classifier.NewMockClient()
	} else {
		client = classifier.NewHTTPClient(cfg.ClassifierURL, cfg.PredictTimeout, cfg.HealthTimeout)
	}

	sensorLogRepo := repository.NewSensorLogRepository(db)
	sink := logsink.NewAsyncSink(sensorLogRepo, cfg.SinkQueueSize)
	defer sink.Close()

	handlers := api.Handlers{
		AI:       handler.NewAIHandler(service.NewPredictionService(client, sink)),
		Trip:     handler.NewTripHandler(service.NewTripService(repository.NewTripRepository(db))),
		Feedback: handler.NewFeedbackHandler(service.NewFeedbackService(repository.NewFeedbackRepository(db))),
		Emission: handler.NewEmissionHandler(service.NewEmissionService(repository.NewEmissionRepository(db))),
	}

	router := api.SetupRouter(cfg, handlers)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
