package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/tutor-api/internal/api"
	apiMiddleware "github.com/phrazzld/tutor-api/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	generateHandler := api.NewGenerateHandler(
		app.textService,
		app.codeService,
		app.audioService,
		app.imageService,
	)
	downloadHandler := api.NewDownloadHandler(app.fileStore)
	filesHandler := api.NewFilesHandler(app.fileStore, app.audioService)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-text", generateHandler.GenerateText)
		r.Post("/generate-code", generateHandler.GenerateCode)
		r.Post("/generate-audio", generateHandler.GenerateAudio)
		r.Post("/generate-image", generateHandler.GenerateImage)

		r.Get("/files/{kind}", filesHandler.ListFiles)
		r.Delete("/audio/{filename}", filesHandler.DeleteAudio)
	})

	r.Get("/download/{kind}/{filename}", downloadHandler.Download)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
