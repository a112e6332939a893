package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	httpSwagger "github.com/swaggo/http-swagger"
)

// routes wires middlewares and endpoints. Adjust CORS for your frontend hosts.
func (a *App) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=60")
		w.Write(openapiYAML)
	})

	r.Mount("/swagger", httpSwagger.Handler(
		httpSwagger.URL("/api/openapi.yaml"),
	))

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/login", a.handleLogin)

		api.Group(func(pr chi.Router) {
			pr.Use(a.authMiddleware)

			pr.Get("/overview", a.handleOverview)
			pr.Post("/reload", a.handleReload)

			pr.Get("/crops", a.handleListCrops)
			pr.Route("/crops/{crop}", func(cr chi.Router) {
				cr.Get("/summary", a.handleCropSummary)
				cr.Get("/boxplot", a.handleCropBoxplot)
				cr.Get("/trend", a.handleCropTrend)
			})

			pr.Get("/parcels", a.handleListParcels)
			pr.Route("/parcels/{name}", func(pa chi.Router) {
				pa.Get("/timeline", a.handleParcelTimeline)
				pa.Get("/crops", a.handleParcelCrops)
				pa.Get("/radar", a.handleParcelRadar)
				pa.Get("/map", a.handleParcelMapView)
			})

			pr.Route("/enterprise", func(er chi.Router) {
				er.Get("/ranking", a.handleRanking)
				er.Get("/map", a.handleParcelMap)
			})

			pr.Get("/stats/anova", a.handleAnova)

			pr.Route("/charts", func(ch chi.Router) {
				ch.Get("/crops/{crop}/boxplot.png", a.handleCropBoxplotPNG)
				ch.Get("/crops/{crop}/trend.png", a.handleCropTrendPNG)
				ch.Get("/enterprise/ranking.png", a.handleRankingPNG)
			})

			pr.Route("/export", func(ex chi.Router) {
				ex.Get("/csv", a.handleExportCSV)
				ex.Get("/xlsx", a.handleExportXLSX)
			})
		})
	})

	return r
}
