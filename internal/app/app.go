// Package app wires the showroom API together and runs its HTTP server.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/classics-showroom/gen/oas"
	"github.com/xenking/classics-showroom/internal/domain/checkout"
	"github.com/xenking/classics-showroom/internal/domain/delivery"
	"github.com/xenking/classics-showroom/internal/domain/payment"
	"github.com/xenking/classics-showroom/internal/events"
	"github.com/xenking/classics-showroom/internal/handler"
	"github.com/xenking/classics-showroom/internal/notify"
	"github.com/xenking/classics-showroom/internal/storage/postgres"
	"github.com/xenking/classics-showroom/internal/storage/redis"
	"github.com/xenking/classics-showroom/internal/stripe"
	"github.com/xenking/classics-showroom/pkg/health"
	"github.com/xenking/classics-showroom/pkg/httpmiddleware"
)

const serviceName = "showroom-api"

// Run creates all dependencies, starts the HTTP server, and handles graceful
// shutdown. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("addr", cfg.Addr))

	// PostgreSQL pool + migrations.
	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
		URL:            cfg.DatabaseURL,
		MaxConns:       cfg.Database.MaxConns,
		ConnectTimeout: cfg.Database.ConnectTimeout,
	})
	if err != nil {
		return errors.Wrap(err, "create db pool")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	// Redis carts.
	rdb, err := redis.NewClient(cfg.RedisURL)
	if err != nil {
		return errors.Wrap(err, "create redis client")
	}
	defer func() { _ = rdb.Close() }()
	carts := redis.NewCartStore(rdb, cfg.Cart.TTL)

	// Health checks.
	healthSvc := health.New(2 * time.Second)
	healthSvc.AddReadinessCheck("postgres", 2*time.Second, pool.Ping)
	healthSvc.AddReadinessCheck("redis", 2*time.Second, carts.Ping)
	healthSvc.AddLivenessCheck("goroutines", time.Second, health.GoroutineCountCheck(10000))

	// Repositories and providers.
	orderRepo := postgres.NewOrderRepository(pool)
	carRepo := postgres.NewCarRepository(pool)
	provider := stripe.New(stripe.Config{
		SecretKey:     cfg.Stripe.SecretKey,
		WebhookSecret: cfg.Stripe.WebhookSecret,
		APIURL:        cfg.Stripe.APIURL,
		Tolerance:     cfg.Stripe.WebhookTolerance,
		MaxRetries:    cfg.Stripe.MaxRetries,
	})

	policy, err := delivery.FromConfig(cfg.Delivery)
	if err != nil {
		return errors.Wrap(err, "delivery policy")
	}

	mailer, err := notify.NewMailer(newSender(lg, cfg.SMTP), notify.MailerConfig{
		From:            cfg.Mail.From,
		ContactEmail:    cfg.Mail.ContactEmail,
		SubjectTemplate: cfg.Mail.SubjectTemplate,
		BodyTemplate:    cfg.Mail.BodyTemplate,
	})
	if err != nil {
		return errors.Wrap(err, "create mailer")
	}

	publisher, err := newPublisher(ctx, lg, cfg.SNS)
	if err != nil {
		return errors.Wrap(err, "create event publisher")
	}

	// Domain services.
	checkoutSvc := checkout.NewService(
		checkout.Config{Currency: cfg.Currency, PageSize: cfg.PageSize},
		orderRepo, carRepo, carts, provider, policy,
	)
	reconciler := payment.NewReconciler(orderRepo, mailer, carts, publisher)

	// HTTP handlers.
	h, err := handler.New(handler.Config{
		PublishableKey: cfg.Stripe.PublishableKey,
		CartURL:        cfg.URLs.Cart,
		CheckoutURL:    cfg.URLs.Checkout,
		SuccessURL:     cfg.URLs.Success,
	}, checkoutSvc, provider, reconciler, m.MeterProvider().Meter(serviceName))
	if err != nil {
		return errors.Wrap(err, "create handler")
	}
	securityHandler := handler.NewSecurityHandler(handler.NewAuthenticator([]byte(cfg.JWT.Secret)))

	oasServer, err := oas.NewServer(h, securityHandler,
		oas.WithTracerProvider(m.TracerProvider()),
		oas.WithMeterProvider(m.MeterProvider()),
		oas.WithErrorHandler(handler.ErrorHandler),
	)
	if err != nil {
		return errors.Wrap(err, "create oas server")
	}

	// Mux: health endpoints, ogen API routes and the provider callback.
	routeFinder := httpmiddleware.MakeRouteFinder[oas.Route](oasServer)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("GET /readyz", healthSvc.ReadyEndpoint)
	mux.Handle("/api/", oasServer)
	mux.Handle("/webhooks/", handler.RawWebhookBody(oasServer))

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler: httpmiddleware.Wrap(mux,
			httpmiddleware.InjectLogger(zctx.From(ctx)),
			httpmiddleware.RequestID(),
			httpmiddleware.Recovery(),
			httpmiddleware.RateLimitWithCleanup(ctx, httpmiddleware.RateLimitConfig{
				Max:    cfg.RateLimit.Max,
				Window: cfg.RateLimit.Window,
				Skip:   httpmiddleware.SkipPrefix("/webhooks/", "/livez", "/readyz"),
			}),
			httpmiddleware.Instrument(serviceName, routeFinder, m),
			httpmiddleware.LogRequests(routeFinder),
			httpmiddleware.Labeler(routeFinder),
		),
	}

	// Graceful shutdown: wait for context cancellation, drain, then stop.
	shutdownDone := make(chan struct{})
	go func() {
		<-ctx.Done()
		healthSvc.Drain()
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		time.Sleep(cfg.Graceful.ReadinessDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("Server shutdown error", zap.Error(err))
		}
		close(shutdownDone)
	}()

	lg.Info("Server listening", zap.String("addr", cfg.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server")
	}
	<-shutdownDone
	return nil
}

func newSender(lg *zap.Logger, cfg SMTPConfig) notify.Sender {
	if cfg.Host == "" {
		lg.Warn("No SMTP host configured, confirmation emails will only be logged")
		return notify.LogSender{}
	}
	return notify.NewSMTPSender(notify.SMTPConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
	})
}

func newPublisher(ctx context.Context, lg *zap.Logger, cfg SNSConfig) (payment.Publisher, error) {
	if cfg.TopicARN == "" {
		lg.Info("No SNS topic configured, payment events will not be published")
		return events.Nop{}, nil
	}
	return events.NewSNSPublisher(ctx, events.SNSConfig{
		TopicARN: cfg.TopicARN,
		Region:   cfg.Region,
		Endpoint: cfg.Endpoint,
	})
}
