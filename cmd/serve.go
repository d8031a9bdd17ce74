// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/communityhub/portal/internal/authorization"
	"github.com/communityhub/portal/internal/config"
	"github.com/communityhub/portal/internal/db"
	"github.com/communityhub/portal/internal/identity"
	"github.com/communityhub/portal/internal/kratos"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/monitoring/prometheus"
	"github.com/communityhub/portal/internal/objectstore"
	"github.com/communityhub/portal/internal/payments"
	"github.com/communityhub/portal/internal/ratelimit"
	"github.com/communityhub/portal/internal/storage"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/pkg/admin"
	"github.com/communityhub/portal/pkg/authentication"
	"github.com/communityhub/portal/pkg/donations"
	"github.com/communityhub/portal/pkg/gallery"
	"github.com/communityhub/portal/pkg/intake"
	"github.com/communityhub/portal/pkg/membership"
	"github.com/communityhub/portal/pkg/roles"
	"github.com/communityhub/portal/pkg/web"
	"github.com/communityhub/portal/pkg/webhooks"
)

const serviceName = "community-portal"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return fmt.Errorf("issues with environment sourcing: %w", err)
	}
	if err := specs.Validate(); err != nil {
		return err
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	// error level, the default log level would hide a warning
	for _, w := range specs.Warnings() {
		logger.Error(w)
	}

	monitor := prometheus.NewMonitor(serviceName, logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.Debug, serviceName, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbClient, err := db.NewDBClient(dbConfig(specs.DSN, specs), tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	ctx := context.Background()

	identify, err := identifier(ctx, specs, tracer, monitor, logger)
	if err != nil {
		return err
	}

	authorizer := authorization.NewAuthorizer(s, tracer, monitor, logger)
	guard := authorization.NewMiddleware(authorizer, tracer, monitor, logger)
	kratosClient := kratos.NewClient(specs.KratosAdminURL, tracer, monitor, logger)
	stripe := payments.NewStripe(specs.StripeSecretKey, specs.StripeWebhookSecret, specs.Currency, nil, tracer, monitor, logger)
	limiter := rateLimiter(specs, tracer, monitor, logger)

	var (
		proofs   donations.ObjectStoreInterface
		store    *objectstore.S3Store
		galleryA web.APIInterface
	)
	if specs.S3Bucket != "" {
		store, err = objectstore.NewS3Store(ctx, objectstore.Config{Bucket: specs.S3Bucket, Region: specs.S3Region, Endpoint: specs.S3Endpoint}, tracer, monitor, logger)
		if err != nil {
			return err
		}
		proofs = store
		galleryA = gallery.NewAPI(
			gallery.NewService(store, specs.S3GalleryPrefix, specs.MaxUploadBytes, tracer, monitor, logger),
			guard, specs.MaxUploadBytes, tracer, monitor, logger,
		)
	} else {
		logger.Warn("s3_bucket is not set, proof uploads and the gallery are disabled")
	}

	membershipService := membership.NewService(s, stripe, specs.PublicBaseURL, tracer, monitor, logger)
	donationService := donations.NewService(
		s,
		stripe,
		proofs,
		donations.Config{BaseURL: specs.PublicBaseURL, ProofPrefix: specs.S3ProofPrefix, MaxUploadBytes: specs.MaxUploadBytes},
		tracer,
		monitor,
		logger,
	)
	webhookService := webhooks.NewService(s, membershipService, donationService, tracer, monitor, logger)

	apis := []web.APIInterface{
		roles.NewAPI(roles.NewService(s, authorizer, kratosClient, tracer, monitor, logger), guard, tracer, monitor, logger),
		membership.NewAPI(membershipService, guard, tracer, monitor, logger),
		donations.NewAPI(donationService, guard, limiter, specs.MaxUploadBytes, tracer, monitor, logger),
		intake.NewAPI(intake.NewService(s, tracer, monitor, logger), limiter, tracer, monitor, logger),
		admin.NewAPI(admin.NewService(s, tracer, monitor, logger), guard, tracer, monitor, logger),
		webhooks.NewAPI(webhookService, stripe, specs.KratosWebhookToken, tracer, monitor, logger),
	}
	if galleryA != nil {
		apis = append(apis, galleryA)
	}

	router := web.NewRouter(dbClient, identify, specs.CORSAllowedOrigins, apis, tracer, monitor, logger)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func dbConfig(dsn string, specs *config.EnvSpec) db.Config {
	return db.Config{
		DSN:             dsn,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
}

// identifier picks how requests are tied to an identity: the header set by
// the identity-aware proxy, or a verified bearer token.
func identifier(ctx context.Context, specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (func(http.Handler) http.Handler, error) {
	switch specs.AuthenticationMode {
	case config.AuthenticationModeJWT:
		verifier, err := authentication.NewJWTAuthenticator(
			ctx,
			authentication.JWTConfig{
				Issuer:  specs.AuthenticationIssuer,
				JWKSURL: specs.AuthenticationJWKSURL,
				Policy: authentication.Policy{
					AllowedSubjects: specs.AuthenticationSubjects,
					RequiredScope:   specs.AuthenticationScope,
				},
			},
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return nil, err
		}
		return authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate(), nil
	case config.AuthenticationModeNoop:
		return authentication.NewMiddleware(authentication.NewNoopVerifier(), tracer, monitor, logger).Authenticate(), nil
	}

	return identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware, nil
}

// rateLimiter shares buckets through Redis when configured so every replica
// enforces the same budget.
func rateLimiter(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *ratelimit.Middleware {
	policy := ratelimit.Policy{PerMinute: specs.PublicRateLimitRPM, Burst: specs.PublicRateLimitBurst}

	if specs.RedisAddr == "" {
		logger.Info("Using in-process rate limiter")
		return ratelimit.NewMiddleware(ratelimit.NewMemoryLimiter(policy), tracer, monitor, logger)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     specs.RedisAddr,
		Password: specs.RedisPassword,
		DB:       specs.RedisDB,
	})
	logger.Infof("Using redis rate limiter at %s", specs.RedisAddr)

	return ratelimit.NewMiddleware(ratelimit.NewRedisLimiter(client, serviceName+":ratelimit:", policy), tracer, monitor, logger)
}
