package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/quizmaster/quizmaster-api/internal/config"
	"github.com/quizmaster/quizmaster-api/internal/handler"
	"github.com/quizmaster/quizmaster-api/internal/mailer"
	"github.com/quizmaster/quizmaster-api/internal/repository"
	"github.com/quizmaster/quizmaster-api/internal/usecase"
	"github.com/quizmaster/quizmaster-api/internal/validate"
)

const bootTimeout = 10 * time.Second

func main() {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger = logger.Level(logLevel(cfg))

	client, err := mongo.Connect(options.Client().
		ApplyURI(cfg.MongoURI).
		SetMaxPoolSize(10).
		SetMinPoolSize(2).
		SetServerSelectionTimeout(5 * time.Second))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure mongo client")
	}
	db := client.Database(cfg.MongoDatabase)

	bootCtx, cancel := context.WithTimeout(context.Background(), bootTimeout)
	defer cancel()

	// An unreachable store at boot is not fatal: the service starts,
	// reports "disconnected" on /api/health and answers 503 to traffic
	// that needs the store.
	if err := client.Ping(bootCtx, readpref.Primary()); err != nil {
		logger.Error().Err(err).Msg("mongo unreachable at startup, continuing degraded")
	} else {
		logger.Info().Str("database", cfg.MongoDatabase).Msg("connected to mongo")
	}

	studentRepo := repository.NewStudentMongoRepository(bootCtx, &logger, db)
	adminRepo := repository.NewAdminMongoRepository(bootCtx, &logger, db)
	quizRepo := repository.NewQuizMongoRepository(bootCtx, &logger, db)
	registrationRepo := repository.NewRegistrationMongoRepository(bootCtx, &logger, db)

	var mail *mailer.Mailer
	if cfg.SMTP.Enabled() {
		mail = mailer.New(cfg.SMTP)
		logger.Info().Str("host", cfg.SMTP.Host).Msg("confirmation mail enabled")
	}

	validator, err := validate.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build validator")
	}

	accountUsecase := usecase.NewAccountUsecase(studentRepo, adminRepo)
	quizUsecase := usecase.NewQuizUsecase(quizRepo, registrationRepo, adminRepo)
	registrationUsecase := usecase.NewRegistrationUsecase(registrationRepo, quizRepo, mail, &logger)

	router := handler.NewRouter(
		&logger,
		cfg.RequestTimeout,
		handler.NewHealthHandler(client, cfg.Env),
		handler.NewAccountHandler(&logger, validator, accountUsecase),
		handler.NewQuizHandler(&logger, validator, quizUsecase),
		handler.NewRegistrationHandler(&logger, validator, registrationUsecase),
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Str("env", cfg.Env).Msg("server started")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shut down server gracefully")
	}

	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to close mongo connection")
	}

	logger.Info().Msg("server stopped")
}

func newLogger() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("APP_ENV") != "production" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	return logger
}

func logLevel(cfg *config.Config) zerolog.Level {
	if cfg.IsProduction() {
		return zerolog.InfoLevel
	}
	return zerolog.DebugLevel
}
