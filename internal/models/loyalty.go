package models

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Уровни членства
const (
	Silver  = "Silver"
	Gold    = "Gold"
	Premium = "Premium"
)

// Пороги уровней и стоимость бесплатной услуги
const (
	GoldPoints    int32 = 200
	PremiumPoints int32 = 500
	RewardPoints  int32 = 100
)

// Клиент
type Customer struct {
	UUID       uuid.UUID `json:"id"`
	Mobile     string    `json:"mobile"` // external identifier
	Name       string    `json:"name"`
	Points     int32     `json:"points"`
	Membership string    `json:"membership"`
}

// Оказанная услуга, только добавление
type ServiceRecord struct {
	UUID         uuid.UUID `json:"id"`
	CustomerUUID uuid.UUID `json:"customer_id"`
	Mobile       string    `json:"mobile"`
	Name         string    `json:"name"`
	ServiceName  string    `json:"service_name"`
	Price        float64   `json:"price"`
	PointsEarned int32     `json:"points_earned"`
	CreatedAt    time.Time `json:"created_at"`
}

// Списание на бесплатную услугу, только добавление
type RewardRedemption struct {
	UUID         uuid.UUID `json:"id"`
	CustomerUUID uuid.UUID `json:"customer_id"`
	Mobile       string    `json:"mobile"`
	Name         string    `json:"name"`
	RedeemedAt   time.Time `json:"redeemed_at"`
}

// Статус - чистая функция от текущего баланса
func MembershipForPoints(points int32) string {
	switch {
	case points >= PremiumPoints:
		return Premium
	case points >= GoldPoints:
		return Gold
	default:
		return Silver
	}
}

// ApplyDelta - один шаг пересчета баланса: применить дельту, одна проверка
// порога списания, пересчет статуса от итогового баланса.
// Не больше одного списания за вызов, даже если баланс выше порога на
// несколько списаний. Дельта, уводящая баланс в минус, отклоняется.
// Сумма считается в int64, переполнение int32 отклоняется.
func ApplyDelta(points int32, delta int32, redeem bool) (newPoints int32, membership string, rewarded bool, err error) {
	total := int64(points) + int64(delta)
	if total < 0 {
		return 0, "", false, fmt.Errorf("insufficient points: %w", ErrValidation)
	}
	if total > math.MaxInt32 {
		return 0, "", false, fmt.Errorf("points balance overflow: %w", ErrValidation)
	}
	newPoints = int32(total)
	if redeem && newPoints >= RewardPoints {
		newPoints -= RewardPoints
		rewarded = true
	}
	return newPoints, MembershipForPoints(newPoints), rewarded, nil
}
