// Job - отправка SMS о бесплатных услугах
// Чтение очереди уведомлений -> вызов SMS сервиса
package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	rabbit "github.com/nagagroupsnewfamous-hub/salon-backend/internal/external/rabbitmq"
	sms "github.com/nagagroupsnewfamous-hub/salon-backend/internal/external/sms"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// sms
	cfg, err := sms.NewConfigFromEnv()
	if err != nil {
		panic(err)
	}
	client := sms.NewClient(cfg)

	// rabbitmq
	reader, err := rabbit.NewNotifyConsumer()
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}
	defer reader.Close()

	// start
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var semcount int
	semenv := os.Getenv("LOYALTY_NOTIFY_COUNT")
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

	// os signals
	go func() {
		<-interrupt
		cancel()
	}()

	// workers
	wg := &sync.WaitGroup{}
	wg.Add(semcount)
	for i := 0; i < semcount; i++ {
		go worker(ctx, client, wg, logger, reader)
	}
	wg.Wait()
}

// worker for rabbitmq messages
func worker(ctx context.Context, client *sms.Client, wg *sync.WaitGroup, logger *zap.Logger, reader *rabbit.NotifyConsumer) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		default:
			msg, ok := <-reader.Msg
			if !ok {
				return
			}
			reward := &rabbit.RewardMessage{}
			err := json.Unmarshal(msg.Body, reward)
			if err != nil {
				logger.Error(err.Error())
				continue
			}
			err = client.SendReward(ctx, reward.Mobile)
			if err != nil {
				logger.Error("send sms",
					zap.String("mobile", reward.Mobile),
					zap.Error(err),
				)
				continue
			}
			logger.Info("reward sms sent",
				zap.String("mobile", reward.Mobile))
		}
	}
}
