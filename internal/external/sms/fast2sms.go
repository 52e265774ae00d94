package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

const defaultEndpoint = "https://www.fast2sms.com/dev/bulkV2"

const rewardText = "Congratulations! You unlocked a FREE service at New Famous Hairstyle."

// Config передается при создании клиента, ключ не хранится глобально
type Config struct {
	APIKey   string
	Endpoint string
}

func NewConfigFromEnv() (Config, error) {
	key := os.Getenv("FAST2SMS_API")
	if key == "" {
		return Config{}, fmt.Errorf("env FAST2SMS_API is not set")
	}
	endpoint := os.Getenv("FAST2SMS_URL")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return Config{APIKey: key, Endpoint: endpoint}, nil
}

type Client struct {
	cfg    Config
	client *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	return &Client{cfg, &http.Client{Timeout: 5 * time.Second}}
}

type smsRequest struct {
	Route    string `json:"route"`
	SenderID string `json:"sender_id"`
	Message  string `json:"message"`
	Language string `json:"language"`
	Flash    int    `json:"flash"`
	Numbers  string `json:"numbers"`
}

// Отправка SMS о бесплатной услуге
func (c *Client) SendReward(ctx context.Context, mobile string) error {
	payload := &smsRequest{
		Route:    "v3",
		SenderID: "FSTSMS",
		Message:  rewardText,
		Language: "english",
		Flash:    0,
		Numbers:  mobile,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	req.Header.Set("authorization", c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("SMS service HTTP error: %s", resp.Status)
	}
	return nil
}
