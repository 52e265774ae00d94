package services

import (
	"context"
	"encoding/json"
	"fmt"

	interf "github.com/nagagroupsnewfamous-hub/salon-backend/internal/interfaces"
	model "github.com/nagagroupsnewfamous-hub/salon-backend/internal/models"
	"go.uber.org/zap"
)

type LoyaltyService struct {
	logger *zap.Logger
	db     interf.LoyaltyStorage
	cache  interf.CacheStorage
	notify interf.NotificationPublisher
}

func NewLoyaltyService(logger *zap.Logger, db interf.LoyaltyStorage, cache interf.CacheStorage, notify interf.NotificationPublisher) (service *LoyaltyService) {
	return &LoyaltyService{logger, db, cache, notify}
}

// Регистрация клиента
func (s *LoyaltyService) RegisterCustomer(ctx context.Context, mobile string, name string) (model.Customer, error) {
	if mobile == "" {
		return model.Customer{}, fmt.Errorf("mobile is required: %w", model.ErrValidation)
	}
	if name == "" {
		return model.Customer{}, fmt.Errorf("name is required: %w", model.ErrValidation)
	}
	return s.db.CustomerCreate(ctx, mobile, name)
}

// Карточка клиента
func (s *LoyaltyService) GetCustomer(ctx context.Context, mobile string) (cust model.Customer, err error) {
	// cache
	if s.cache != nil {
		cust, err = s.cache.GetCustomer(ctx, mobile)
		if err != nil {
			// database
			cust, err = s.db.CustomerGet(ctx, mobile)
			if err != nil {
				return model.Customer{}, err
			}
			_ = s.cache.SetCustomer(ctx, cust)
		}
	} else {
		cust, err = s.db.CustomerGet(ctx, mobile)
		if err != nil {
			return model.Customer{}, err
		}
	}
	return
}

// Все клиенты
func (s *LoyaltyService) Customers(ctx context.Context) ([]model.Customer, error) {
	return s.db.CustomerList(ctx)
}

// Оказанная услуга: запись в журнал, начисление баллов, проверка порога
// списания. Единственный путь, который выдает бесплатную услугу.
func (s *LoyaltyService) RecordService(ctx context.Context, mobile string, service string, price float64, points int32) (model.Customer, bool, error) {
	if mobile == "" {
		return model.Customer{}, false, fmt.Errorf("mobile is required: %w", model.ErrValidation)
	}
	if service == "" {
		return model.Customer{}, false, fmt.Errorf("service name is required: %w", model.ErrValidation)
	}
	if price < 0 {
		return model.Customer{}, false, fmt.Errorf("price is negative: %w", model.ErrValidation)
	}
	if points < 0 {
		return model.Customer{}, false, fmt.Errorf("points are negative: %w", model.ErrValidation)
	}

	cust, rewarded, err := s.db.ServiceCreate(ctx, mobile, service, price, points)
	if err != nil {
		return model.Customer{}, false, err
	}
	s.invalidate(ctx, mobile)

	// уведомление о бесплатной услуге - не влияет на результат
	if rewarded && s.notify != nil {
		err = s.notify.RewardIssued(ctx, cust.Mobile, cust.Name)
		if err != nil {
			s.logger.Error("reward notification",
				zap.String("mobile", cust.Mobile),
				zap.Error(err),
			)
		}
	}
	return cust, rewarded, nil
}

// ApplyPointDelta - ручная корректировка баланса.
// Проверка порога списания всегда выключена: бесплатную услугу выдает
// только RecordService.
func (s *LoyaltyService) ApplyPointDelta(ctx context.Context, mobile string, delta int32) (model.Customer, error) {
	if mobile == "" {
		return model.Customer{}, fmt.Errorf("mobile is required: %w", model.ErrValidation)
	}
	cust, _, err := s.db.PointsApply(ctx, mobile, delta, false)
	if err != nil {
		return model.Customer{}, err
	}
	s.invalidate(ctx, mobile)
	return cust, nil
}

// Начисление баллов вручную
func (s *LoyaltyService) AddPoints(ctx context.Context, mobile string, points int32) (model.Customer, error) {
	if points <= 0 {
		return model.Customer{}, fmt.Errorf("points must be positive: %w", model.ErrValidation)
	}
	return s.ApplyPointDelta(ctx, mobile, points)
}

// Списание баллов вручную
func (s *LoyaltyService) DeductPoints(ctx context.Context, mobile string, points int32) (model.Customer, error) {
	if points <= 0 {
		return model.Customer{}, fmt.Errorf("points must be positive: %w", model.ErrValidation)
	}
	return s.ApplyPointDelta(ctx, mobile, -points)
}

// История услуг
func (s *LoyaltyService) Services(ctx context.Context) ([]model.ServiceRecord, error) {
	return s.db.ServiceList(ctx)
}

// История бесплатных услуг
func (s *LoyaltyService) FreeServices(ctx context.Context) ([]model.RewardRedemption, error) {
	return s.db.RedemptionList(ctx)
}

// инвалидировать кэш клиента
func (s *LoyaltyService) invalidate(ctx context.Context, mobile string) {
	if s.cache != nil {
		err := s.cache.InvalidateCustomer(ctx, mobile)
		if err != nil {
			s.logger.Error(err.Error())
		}
	}
}

type ServiceEvent struct {
	Mobile      string  `json:"mobile"`
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`
	Points      int32   `json:"points"`
}

// Обработка события об оказанной услуге (интеграция с кассой)
func (s *LoyaltyService) ProcessServiceEvent(ctx context.Context, eventJson string) error {
	event := &ServiceEvent{}
	err := json.Unmarshal([]byte(eventJson), event)
	if err != nil {
		return fmt.Errorf("invalid service event: %w", model.ErrValidation)
	}
	_, _, err = s.RecordService(ctx, event.Mobile, event.ServiceName, event.Price, event.Points)
	if err != nil {
		return err
	}
	return nil
}

func (s *LoyaltyService) Log(err error) {
	s.logger.Error(err.Error())
}
