package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := mustConfig()

	app := newApp(cfg)
	if cfg.StrictBoot {
		if _, err := app.store.Dataset(); err != nil {
			log.Fatal("yield data load error: ", err)
		}
	}

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           app.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Println("ParcelYield API listening on :" + port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
