package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"livefeedback/internal/adapters/discord"
	"livefeedback/internal/adapters/httpexport"
	"livefeedback/internal/application"
	"livefeedback/internal/config"
	"livefeedback/internal/infrastructure/database"
	"livefeedback/internal/infrastructure/i18n"
	"livefeedback/pkg/tz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Database initialization failed: %v", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(cfg.DatabaseURL); err != nil {
		log.Fatalf("❌ Schema migration failed: %v", err)
	}

	store := database.NewStore(pool)
	translator := i18n.NewTranslator(cfg.Locale)
	location := tz.Load(cfg.Timezone)

	session, err := discord.NewSession(cfg.Token)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	aggregator := application.NewAggregator(store)
	registry := application.NewRegistry(store, aggregator)
	admin := application.NewAdminService(
		application.NewAuthorizer(cfg.Secret, cfg.ConfirmationToken),
		store,
		aggregator,
		application.NewExporter(aggregator),
		application.NewBroadcaster(store, discord.NewDMNotifier(session)),
	)

	var server *httpexport.Server
	if cfg.HTTPAddr != "" {
		server = httpexport.NewServer(cfg.HTTPAddr, httpexport.NewRouter(admin, pool, location))
		go func() {
			if err := server.ListenAndServe(); err != nil {
				log.Printf("❌ Export server stopped: %v", err)
				stop()
			}
		}()
	}

	handler := discord.NewHandler(registry, admin, translator, location)
	bot := discord.NewBot(session, cfg, handler)
	if err := bot.Start(ctx); err != nil {
		log.Printf("❌ Bot failed to start: %v", err)
		os.Exit(1)
	}

	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("⚠️ Export server shutdown: %v", err)
		}
	}
}
