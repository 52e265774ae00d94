package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	model "github.com/nagagroupsnewfamous-hub/salon-backend/internal/models"
	redis "github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
}

const cacheTTL = 5 * time.Minute

func NewCacheService() (serv *CacheService, err error) {

	// config
	addr := os.Getenv("LOYALTY_CACHE_URL")
	if addr == "" {
		return nil, fmt.Errorf("env LOYALTY_CACHE_URL is not set")
	}
	user := os.Getenv("LOYALTY_CACHE_USER")
	pwd := os.Getenv("LOYALTY_CACHE_PWD")

	// redis
	db := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    pwd,
		Username:    user,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err = db.Ping(context.Background()).Err()
	if err != nil {
		return nil, err
	}

	return &CacheService{db}, nil
}

func cacheKey(mobile string) string {
	return "customer:" + mobile
}

func (c *CacheService) GetCustomer(ctx context.Context, mobile string) (cust model.Customer, err error) {
	val, err := c.client.Get(ctx, cacheKey(mobile)).Result()
	if err == redis.Nil {
		return model.Customer{}, fmt.Errorf("not found")
	} else if err != nil {
		return model.Customer{}, err
	}

	err = json.Unmarshal([]byte(val), &cust)
	if err != nil {
		return model.Customer{}, err
	}
	return cust, nil
}

func (c *CacheService) SetCustomer(ctx context.Context, cust model.Customer) (err error) {
	val, err := json.Marshal(cust)
	if err != nil {
		return err
	}
	err = c.client.Set(ctx, cacheKey(cust.Mobile), val, cacheTTL).Err()
	if err != nil {
		return err
	}
	return nil
}

func (c *CacheService) InvalidateCustomer(ctx context.Context, mobile string) error {
	err := c.client.Del(ctx, cacheKey(mobile)).Err()
	if err != nil {
		return err
	}
	return nil
}
