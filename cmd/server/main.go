package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/promptquest/backend/internal/database"
	"github.com/promptquest/backend/internal/feedback"
	"github.com/promptquest/backend/internal/hints"
	"github.com/promptquest/backend/internal/oracle"
	"github.com/promptquest/backend/internal/player"
	"github.com/promptquest/backend/internal/quests"
	"github.com/rs/cors"
)

func main() {
	// Initialize storage
	db, driver, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	var store player.Store
	if db != nil {
		defer db.Close()
		if err := database.Migrate(db, driver); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		store = player.NewSQLStore(db, driver)
		log.Printf("Storage: %s", driver)
	} else {
		store = player.NewMemStore()
		log.Println("Storage: in-memory (state is lost on restart)")
	}

	// Initialize services
	oracleClient := oracle.NewClient()
	feedbackService := feedback.NewService(oracleClient)
	playerService := player.NewService(store, feedbackService)

	feedbackHandler := feedback.NewHandler(feedbackService)
	hintHandler := hints.NewHandler(hints.NewService(oracleClient, nil))
	questHandler := quests.NewHandler()
	playerHandler := player.NewHandler(playerService)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/feedback", feedbackHandler.GetFeedback).Methods("POST")
	api.HandleFunc("/ai-hint", hintHandler.GetHint).Methods("POST")

	api.HandleFunc("/quests", questHandler.ListQuests).Methods("GET")
	api.HandleFunc("/quests/daily", questHandler.GetDailyQuest).Methods("GET")
	api.HandleFunc("/quests/{id}", questHandler.GetQuest).Methods("GET")

	api.HandleFunc("/players/{key}/progress", playerHandler.GetProgress).Methods("GET")
	api.HandleFunc("/players/{key}/progress", playerHandler.PutProgress).Methods("PUT")
	api.HandleFunc("/players/{key}/submissions", playerHandler.SubmitQuest).Methods("POST")
	api.HandleFunc("/players/{key}/submissions", playerHandler.ListSubmissions).Methods("GET")
	api.HandleFunc("/leaderboard", playerHandler.GetLeaderboard).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
