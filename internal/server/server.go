package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/covlens/covlens/internal/classify"
	"github.com/covlens/covlens/internal/dataset"
	"github.com/covlens/covlens/internal/feed"
	"github.com/covlens/covlens/internal/model"
	"github.com/covlens/covlens/internal/worker"
)

// Server is the dashboard API: classification, corpus browsing,
// stats, and the simulated feed. All shared state (store, lexicon) is
// immutable, so handlers need no coordination.
type Server struct {
	cfg        model.ServerConfig
	router     *gin.Engine
	classifier *classify.Classifier
	store      *dataset.Store
	stats      dataset.Stats
	simulator  *feed.Simulator    // nil: feed endpoints return empty
	fetcher    worker.PageFetcher // nil: URL classification disabled
}

// New assembles the server. The corpus stats are computed once up
// front since the store never changes.
func New(cfg model.ServerConfig, classifier *classify.Classifier, store *dataset.Store, simulator *feed.Simulator, fetcher worker.PageFetcher) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:        cfg,
		classifier: classifier,
		store:      store,
		stats:      dataset.ComputeStats(store, classifier),
		simulator:  simulator,
		fetcher:    fetcher,
	}

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	router.Use(cors.New(corsConfig))

	router.GET("/healthz", s.handleHealth)

	api := router.Group("/api")
	{
		api.POST("/classify", s.handleClassify)
		api.POST("/classify/url", s.handleClassifyURL)
		api.GET("/articles", s.handleListArticles)
		api.GET("/articles/:id", s.handleGetArticle)
		api.GET("/stats", s.handleStats)
		api.GET("/feed", s.handleFeed)
		api.GET("/dataset.csv", s.handleDatasetCSV)
	}

	s.router = router
	return s
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
