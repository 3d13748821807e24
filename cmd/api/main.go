package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	mongodb "pet-adoption-api/internal/adapters/storage/mongo"
	"pet-adoption-api/internal/config"
	"pet-adoption-api/internal/platform/logger"
	"pet-adoption-api/internal/router"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	// Sin URI configurada corre en modo dev con repos in-memory.
	var db *mongodb.Client
	if cfg.MongoURI != "" {
		var err error
		db, err = mongodb.NewClient(cfg.MongoURI, cfg.MongoDatabase, log)
		if err != nil {
			log.Fatal("error al conectar la base de datos", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := db.EnsureIndexes(ctx); err != nil {
			cancel()
			log.Fatal("error al crear índices", zap.Error(err))
		}
		cancel()
	} else {
		log.Warn("MONGODB_URI no configurada, usando storage in-memory")
	}

	handler := router.New(router.Options{
		Config: cfg,
		Logger: log,
		DB:     db,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("servidor activo", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("apagando el servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown forzado", zap.Error(err))
	}

	if db != nil {
		if err := db.Close(ctx); err != nil {
			// El proceso termina igual, con código distinto para
			// diferenciar el cierre sucio.
			log.Error("error al cerrar la base de datos", zap.Error(err))
			os.Exit(1)
		}
	}

	log.Info("servidor detenido")
}
