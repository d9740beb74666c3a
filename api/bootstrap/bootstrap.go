package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/tbeaudouin05/startupstack-checkout/api/config"
	"github.com/tbeaudouin05/startupstack-checkout/api/database"
	"github.com/tbeaudouin05/startupstack-checkout/api/router"
	checkoutapp "github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/app"
	checkoutdb "github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/db"
	stripegw "github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/gateway/stripe"
	"github.com/tbeaudouin05/startupstack-checkout/api/services/notify"
	"github.com/tbeaudouin05/startupstack-checkout/api/services/notify/sendgrid"
)

// Services is the wiring built once per process. It is immutable after Init.
type Services struct {
	Config   *config.Config
	DB       *sql.DB
	Checkout checkoutapp.Service
	Welcome  notify.Notifier
}

// Init connects the database and third-party clients and wires services.
func Init(ctx context.Context, cfg *config.Config) (*Services, error) {
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}

	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	checkout := checkoutapp.NewService(checkoutapp.Options{
		Catalog:    catalog,
		Users:      checkoutdb.NewPostgresStore(db),
		Gateway:    stripegw.New(cfg.StripeSecretKey),
		SuccessURL: cfg.SuccessURL(),
		CancelURL:  cfg.CancelURL(),
	})

	mailer := sendgrid.New(sendgrid.Config{
		FromName:    cfg.EmailFromName,
		FromAddress: cfg.EmailFrom,
		APIKey:      cfg.SendGridAPIKey,
	})

	return &Services{
		Config:   cfg,
		DB:       db,
		Checkout: checkout,
		Welcome:  notify.NewWelcomer(mailer, cfg.DashboardURL()),
	}, nil
}

// Router returns the HTTP API over the wired services.
func (s *Services) Router() http.Handler {
	return router.NewRouter(router.Deps{
		Checkout: s.Checkout,
		Welcome:  s.Welcome,
		Debug:    s.Config.IsDevelopment(),
	})
}

// Close releases the database pool.
func (s *Services) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
