package kafka

import (
	"context"
	"fmt"
	"os"

	"github.com/segmentio/kafka-go"
)

type ServiceReader struct {
	reader *kafka.Reader
}

func GetNewReader(topic string) (reader *ServiceReader, err error) {
	// config
	kafkaurl := os.Getenv("KAFKA_SERVICES_URL")
	if kafkaurl == "" {
		return nil, fmt.Errorf("env KAFKA_SERVICES_URL is not set")
	}
	kafkaport := os.Getenv("KAFKA_SERVICES_PORT")
	if kafkaport == "" {
		return nil, fmt.Errorf("env KAFKA_SERVICES_PORT is not set")
	}

	kafkaconfig := kafka.ReaderConfig{
		Brokers: []string{kafkaurl + ":" + kafkaport},
		Topic:   topic,
		GroupID: "services_loyalty",
	}
	return &ServiceReader{kafka.NewReader(kafkaconfig)}, nil
}

func (k *ServiceReader) GetNewMessage(ctx context.Context) (eventJson string, err error) {
	msg, err := k.reader.ReadMessage(ctx)
	if err != nil {
		return "", err
	}
	return string(msg.Value), nil
}

func (k *ServiceReader) CloseReader() {
	k.reader.Close()
}
