package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/callscribe/callscribe/config"
	"github.com/callscribe/callscribe/internal/api/handlers"
	"github.com/callscribe/callscribe/internal/api/middleware"
	"github.com/callscribe/callscribe/internal/api/routes"
	"github.com/callscribe/callscribe/internal/logger"
	"github.com/callscribe/callscribe/internal/providers/mail"
	"github.com/callscribe/callscribe/internal/providers/stt"
	"github.com/callscribe/callscribe/internal/providers/telephony"
	"github.com/callscribe/callscribe/internal/repositories"
	"github.com/callscribe/callscribe/internal/repositories/memory"
	pgrepo "github.com/callscribe/callscribe/internal/repositories/postgres"
	"github.com/callscribe/callscribe/internal/retry"
	"github.com/callscribe/callscribe/internal/services"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	l := logger.New(cfg.LogLevel)

	// Store: Postgres when configured, otherwise the in-memory repository.
	var repo repositories.TranscriptRepo
	if cfg.Database.PostgresURI != "" {
		db, err := config.OpenPostgres(cfg.Database.PostgresURI)
		if err != nil {
			log.Fatalf("PostgreSQL init error: %v", err)
		}
		if err := pgrepo.Migrate(db); err != nil {
			log.Fatalf("PostgreSQL migration error: %v", err)
		}
		repo = pgrepo.NewTranscriptRepo(db)
		l.Info("PostgreSQL connected")
	} else {
		repo = memory.NewTranscriptRepo()
		l.Warn("POSTGRES_URI not set, transcripts held in memory only")
	}

	var mailer mail.Sender
	if cfg.Mail.Enabled() {
		mailer = mail.NewResend(cfg.Mail)
		l.Info("mail delivery enabled")
	}

	tel := telephony.NewClient(cfg.Twilio, retry.Policy{
		MaxAttempts: cfg.Pipeline.PollAttempts,
		Interval:    cfg.Pipeline.PollInterval,
	}, l)
	deepgram := stt.NewDeepgram(cfg.Deepgram, l)

	pipeline := services.NewPipelineService(tel, tel, deepgram, repo, mailer, cfg.Mail, l)
	transcripts := services.NewTranscriptService(repo)

	r := gin.New()
	r.Use(middleware.RequestLogger(l), gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Voice:        handlers.NewVoiceHandler(cfg.Server, cfg.Pipeline.MaxRecordingSecs, l),
		Recording:    handlers.NewRecordingHandler(pipeline),
		Transcripts:  handlers.NewTranscriptHandler(transcripts),
		BearerSecret: cfg.API.BearerSecret,
	})

	l.WithField("port", cfg.Server.Port).Info("listening")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
