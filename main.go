package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"schedulink/api"
	"schedulink/config"
	"schedulink/database"
)

func main() {
	cfg := config.Load()
	log := newLogger(cfg.Env)

	log.WithFields(logrus.Fields{
		"min_conns": cfg.DBMinConns,
		"max_conns": cfg.DBMaxConns,
	}).Info("connecting to database")

	db, err := database.Connect(context.Background(), cfg.PostgresDSN, cfg.DBMinConns, cfg.DBMaxConns)
	if err != nil {
		log.WithError(err).Fatal("database connect")
	}
	defer db.Close()
	log.Info("successfully connected to database")

	service := api.NewAPI(db, log, cfg.RequestTimeout)
	service.RegisterRoutes()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      service.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.WithField("port", cfg.Port).Info("server starting")
	log.Fatal(srv.ListenAndServe())
}

func newLogger(env string) *logrus.Logger {
	log := logrus.New()
	if env == "development" {
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log
}
