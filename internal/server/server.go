package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	checkoutdomain "github.com/soundshelf/soundshelf/internal/checkout/domain"
	"github.com/soundshelf/soundshelf/internal/config"
	listingdomain "github.com/soundshelf/soundshelf/internal/listing/domain"
	"github.com/soundshelf/soundshelf/internal/observability"
	obslogger "github.com/soundshelf/soundshelf/internal/observability/logger"
	obsmetrics "github.com/soundshelf/soundshelf/internal/observability/metrics"
	obstracing "github.com/soundshelf/soundshelf/internal/observability/tracing"
	songdomain "github.com/soundshelf/soundshelf/internal/song/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterRoutes() }),
	fx.Invoke(run),
)

// NewEngine builds the gin engine with the shared middleware chain and
// the rendered templates.
func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{Debug: obsCfg.Debug()}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.tmpl")))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Params struct {
	fx.In

	Engine      *gin.Engine
	Cfg         config.Config
	Log         *zap.Logger
	Metrics     *obsmetrics.HTTPMetrics
	SongSvc     songdomain.Service
	CheckoutSvc checkoutdomain.Service
	ListingSvc  listingdomain.Service
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	log         *zap.Logger
	metrics     *obsmetrics.HTTPMetrics
	songSvc     songdomain.Service
	checkoutSvc checkoutdomain.Service
	listingSvc  listingdomain.Service
}

func NewServer(p Params) *Server {
	return &Server{
		engine:      p.Engine,
		cfg:         p.Cfg,
		log:         p.Log.Named("server"),
		metrics:     p.Metrics,
		songSvc:     p.SongSvc,
		checkoutSvc: p.CheckoutSvc,
		listingSvc:  p.ListingSvc,
	}
}

func (s *Server) RegisterRoutes() {
	api := s.engine.Group("/api")
	api.POST("/upload", s.UploadSong)
	api.GET("/songs/all", s.ListAllSongs)
	api.GET("/songs/listen", s.ListSongsToPlay)
	api.GET("/songs/listen/:songtitle", s.CheckoutSong)
	api.GET("/songs/delete", s.ReleaseSlot)

	api.GET("/listings/countries", s.ListingCountries)
	api.GET("/listings", s.SearchListings)
	api.GET("/listings/:id", s.GetListing)

	// Static assets from the web root; gin cannot mount Static at "/"
	// next to registered routes.
	s.engine.NoRoute(gin.WrapH(http.FileServer(gin.Dir("./web/public", false))))
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = ctx
			go func() {
				log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
