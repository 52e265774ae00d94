// HTTP API сервер программы лояльности
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/nagagroupsnewfamous-hub/salon-backend/internal/api"
	db "github.com/nagagroupsnewfamous-hub/salon-backend/internal/db"
	rabbit "github.com/nagagroupsnewfamous-hub/salon-backend/internal/external/rabbitmq"
	interf "github.com/nagagroupsnewfamous-hub/salon-backend/internal/interfaces"
	services "github.com/nagagroupsnewfamous-hub/salon-backend/internal/services"
	tracing "github.com/nagagroupsnewfamous-hub/salon-backend/observability/otel"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	port := os.Getenv("LOYALTY_PORT")
	if port == "" {
		panic("env LOYALTY_PORT is not set")
	}
	token := os.Getenv("LOYALTY_ADMIN_TOKEN")
	if token == "" {
		panic("env LOYALTY_ADMIN_TOKEN is not set")
	}

	// tracing
	shutdownTracer := tracing.InitTracer(context.Background())
	defer shutdownTracer()

	// database
	var storage interf.LoyaltyStorage
	dt, err := db.NewLoyaltyDB(logger)
	if err != nil {
		panic(err)
	}
	storage = dt

	// cache
	var cache interf.CacheStorage
	redis, err := db.NewCacheService()
	if err != nil {
		logger.Error(err.Error())
	} else {
		cache = redis
	}

	// notifications
	var notify interf.NotificationPublisher
	pub, err := rabbit.NewNotifyPublisher()
	if err != nil {
		logger.Error(err.Error())
	} else {
		notify = pub
		defer pub.Close()
	}

	// services
	loyalty := services.NewLoyaltyService(logger, storage, cache, notify)
	reports := services.NewReportService(logger, dt)

	// api handlers
	r := api.NewHandler(loyalty, reports, api.AuthConfig{Token: token}, logger)
	handler := api.MiddlewareLog()(otelhttp.NewHandler(r, "loyalty"))
	srv := &http.Server{
		Handler:      handler,
		Addr:         ":" + port,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}
	go srv.ListenAndServe()

	// shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	timeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = srv.Shutdown(timeout)
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
