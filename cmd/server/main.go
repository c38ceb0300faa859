package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/onamkulam/interiors/internal/config"
	"github.com/onamkulam/interiors/internal/content"
	"github.com/onamkulam/interiors/internal/handler"
	"github.com/onamkulam/interiors/internal/logging"
	"github.com/onamkulam/interiors/internal/repository"
	"github.com/onamkulam/interiors/internal/service"
	"github.com/onamkulam/interiors/pkg/auth"
	"github.com/onamkulam/interiors/pkg/mailer"
)

// enquiryStore is what the server needs from either store driver.
type enquiryStore interface {
	repository.EnquiryRepository
	repository.DB
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	store, closeStore, err := openStore(context.Background(), cfg)
	if err != nil {
		logging.Fatal("failed to open enquiry store", "driver", cfg.StoreDriver, "error", err)
	}
	defer closeStore()

	// メール設定が揃っていない場合は通知を無効化する
	var m mailer.Mailer
	if cfg.EmailEnabled() {
		m = mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.EmailUser,
			Password: cfg.EmailPass,
		})
	}
	notifications := service.NewNotificationService(m, service.NotificationConfig{
		Inbox:     cfg.EmailTo,
		QueueSize: cfg.NotifyQueueSize,
		MaxTries:  cfg.NotifyMaxTries,
	})

	contentStore, err := content.Load()
	if err != nil {
		logging.Fatal("failed to load content", "error", err)
	}

	var adminSecret []byte
	if cfg.AdminTokenSecret != "" {
		adminSecret = auth.SecretBytes(cfg.AdminTokenSecret)
	} else {
		slog.Info("ADMIN_TOKEN_SECRET not set; admin routes disabled")
	}

	rateLimiter := handler.NewRateLimiter(cfg.RateLimitPerMinute)
	defer rateLimiter.Stop()

	router := handler.NewRouter(handler.Routes{
		Base:        handler.New(store, notifications, cfg.FrontendURL),
		Enquiries:   handler.NewEnquiryHandler(service.NewEnquiryService(store, notifications)),
		Content:     handler.NewContentHandler(contentStore),
		Layout:      handler.NewLayoutHandler(),
		RateLimiter: rateLimiter,
		AdminSecret: adminSecret,
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "store", cfg.StoreDriver, "email", notifications.Enabled())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	// Pending notification emails get whatever time is left.
	if err := notifications.Close(ctx); err != nil {
		slog.Error("notification drain incomplete", "error", err, "stats", notifications.Stats())
	}
}

func openStore(ctx context.Context, cfg *config.Config) (enquiryStore, func(), error) {
	switch cfg.StoreDriver {
	case "sqlite":
		repo, err := repository.OpenSqlite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil
	default:
		pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return pgStore{PgEnquiryRepository: repository.NewPgEnquiryRepository(pool), db: pool}, pool.Close, nil
	}
}

// pgStore pairs the Postgres repository with its pool for health checks.
type pgStore struct {
	*repository.PgEnquiryRepository
	db repository.DB
}

func (s pgStore) Ping(ctx context.Context) error { return s.db.Ping(ctx) }
