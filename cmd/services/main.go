// Job - обработка событий об оказанных услугах
// Опрос Kafka -> запись услуги, начисление баллов, проверка порога списания
package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	db "github.com/nagagroupsnewfamous-hub/salon-backend/internal/db"
	kafka "github.com/nagagroupsnewfamous-hub/salon-backend/internal/external/kafka"
	rabbit "github.com/nagagroupsnewfamous-hub/salon-backend/internal/external/rabbitmq"
	interf "github.com/nagagroupsnewfamous-hub/salon-backend/internal/interfaces"
	services "github.com/nagagroupsnewfamous-hub/salon-backend/internal/services"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// kafka
	reader, err := kafka.GetNewReader("services")
	if err != nil {
		panic(err)
	}
	defer reader.CloseReader()

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
	serv := services.NewLoyaltyService(logger, storage, cache, notify)

	// start
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var semcount int
	semenv := os.Getenv("LOYALTY_SERVICES_COUNT")
	if semenv == "" {
		semcount = 5
	} else {
		semcount, err = strconv.Atoi(semenv)
		if err != nil {
			semcount = 5
		}
	}
	if semcount == 0 {
		semcount = 1
	}

	wg := &sync.WaitGroup{}
	semaphore := make(chan struct{}, semcount)

loop:
	for {
		select {
		case <-interrupt:
			cancel()
			break loop
		case <-ctx.Done():
			break loop
		default:

			event, err := reader.GetNewMessage(ctx)
			if err != nil {
				logger.Error(err.Error())
				break loop
			}

			semaphore <- struct{}{}
			wg.Add(1)
			go func(event string) {
				defer wg.Done()
				defer func() { <-semaphore }()
				err = serv.ProcessServiceEvent(ctx, event)
				if err != nil {
					logger.Error(err.Error())
					return
				}
			}(event)
		}
	}
	wg.Wait()
}
