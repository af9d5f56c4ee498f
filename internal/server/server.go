package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KianJanloo/burger-cafe-back/internal/config"
	"github.com/KianJanloo/burger-cafe-back/internal/database"
	"github.com/KianJanloo/burger-cafe-back/internal/events"
	"github.com/KianJanloo/burger-cafe-back/internal/media"
	"github.com/KianJanloo/burger-cafe-back/internal/metrics"
	custommiddleware "github.com/KianJanloo/burger-cafe-back/internal/middleware"
	"github.com/KianJanloo/burger-cafe-back/internal/repository"
	"github.com/KianJanloo/burger-cafe-back/internal/service"
	"github.com/KianJanloo/burger-cafe-back/internal/transport"
)

type orderPublisher interface {
	service.EventPublisher
	Close() error
}

type Server struct {
	*http.Server
	router    chi.Router
	config    *config.Config
	logger    *zap.Logger
	db        *sql.DB
	redis     *redis.Client
	publisher orderPublisher
}

func NewServer(cfg *config.Config, logger *zap.Logger, db *sql.DB) (*Server, error) {
	disk, err := media.New(context.Background(), cfg.Media)
	if err != nil {
		return nil, fmt.Errorf("failed to configure media disk: %w", err)
	}

	var publisher orderPublisher = events.NopPublisher{}
	if cfg.Kafka.Enabled() {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.OrdersTopic, logger)
		logger.Info("Publishing order events", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.OrdersTopic))
	}

	s := &Server{
		config:    cfg,
		logger:    logger,
		db:        db,
		publisher: publisher,
	}
	if cfg.Redis.Enabled() {
		s.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	s.router = s.routes(disk)
	s.Server = &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      s.router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s, nil
}

func (s *Server) routes(disk media.Disk) chi.Router {
	router := chi.NewRouter()
	for _, mw := range custommiddleware.DefaultMiddlewareStack() {
		router.Use(mw)
	}
	router.Use(custommiddleware.ErrorHandlingMiddleware(s.logger))
	router.Use(custommiddleware.LoggingMiddleware(s.logger))
	router.Use(metrics.Middleware)
	router.Use(custommiddleware.CORSMiddleware(s.config.Server.AllowedOrigins, s.config.Server.IsDevelopment()))

	router.Get("/health", s.health)
	router.Handle("/metrics", metrics.Handler())

	if local, ok := disk.(*media.LocalDisk); ok {
		router.Handle(local.URL+"/*", local.Handler())
	}

	router.Group(func(r chi.Router) {
		if s.redis != nil {
			r.Use(custommiddleware.RateLimitMiddleware(s.redis, custommiddleware.RateLimitConfig{
				RequestsPerWindow: s.config.RateLimit.Requests,
				Window:            s.config.RateLimit.Window,
				KeyPrefix:         "burgercafe:ratelimit",
			}, s.logger))
		}

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Write([]byte("Hello World!"))
		})

		s.registerResources(r, disk)
	})

	return router
}

func (s *Server) registerResources(r chi.Router, disk media.Disk) {
	db, logger := s.db, s.logger

	menu := service.NewMenuService(repository.NewMenuRepository(db))
	transport.NewMenuHandler(menu, disk, logger).RegisterRoutes(r)

	transport.NewContentHandler(
		service.NewCommentService(repository.NewCommentRepository(db)),
		service.NewFooterService(repository.NewFooterRepository(db)),
		service.NewCafeDetailsService(repository.NewCafeDetailsRepository(db)),
		service.NewStoryService(repository.NewStoryRepository(db)),
		service.NewTeamMemberService(repository.NewTeamMemberRepository(db)),
		logger,
	).RegisterRoutes(r)

	categories := repository.NewGalleryCategoryRepository(db)
	transport.NewGalleryHandler(
		service.NewGalleryCategoryService(categories),
		service.NewGalleryItemService(repository.NewGalleryItemRepository(db), categories),
		disk, logger,
	).RegisterRoutes(r)

	transport.NewReservationHandler(service.NewReservationService(repository.NewReservationRepository(db)), logger).RegisterRoutes(r)
	transport.NewContactHandler(service.NewContactService(repository.NewContactRepository(db)), logger).RegisterRoutes(r)
	transport.NewFAQHandler(service.NewFAQService(repository.NewFAQRepository(db)), logger).RegisterRoutes(r)
	transport.NewCartHandler(service.NewCartService(repository.NewCartRepository(db)), logger).RegisterRoutes(r)

	orders := service.NewOrderService(
		repository.NewOrderRepository(db),
		service.NewOrderNumbers(),
		s.publisher,
		service.DefaultQRGenerator{BaseURL: s.config.Server.PublicBaseURL},
		logger,
	)
	transport.NewOrderHandler(orders, logger).RegisterRoutes(r)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	health := database.Health(r.Context(), s.db)
	status := http.StatusOK
	if health["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	custommiddleware.RespondWithJSON(w, status, health)
}

// Routes exposes the router for route listing.
func (s *Server) Routes() chi.Routes {
	return s.router
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if err := s.publisher.Close(); err != nil {
		s.logger.Error("Failed to close event publisher", zap.Error(err))
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
