package interfaces

import (
	"context"
	"time"

	model "github.com/nagagroupsnewfamous-hub/salon-backend/internal/models"
)

//go:generate mockgen -destination=./../services/mock_loyalty_test.go -package=services . LoyaltyStorage,CacheStorage,NotificationPublisher,ReportStorage
//go:generate mockgen -destination=./../api/mock_loyalty_test.go -package=api . LoyaltyEngine,Reporter

type LoyaltyStorage interface {
	CustomerCreate(ctx context.Context, mobile string, name string) (model.Customer, error)
	CustomerGet(ctx context.Context, mobile string) (model.Customer, error)
	CustomerList(ctx context.Context) ([]model.Customer, error)
	// PointsApply updates the balance, the redemption log and the tier in one transaction.
	PointsApply(ctx context.Context, mobile string, delta int32, redeem bool) (model.Customer, bool, error)
	// ServiceCreate appends the service record and applies the earned points in one transaction.
	ServiceCreate(ctx context.Context, mobile string, service string, price float64, points int32) (model.Customer, bool, error)
	ServiceList(ctx context.Context) ([]model.ServiceRecord, error)
	RedemptionList(ctx context.Context) ([]model.RewardRedemption, error)
}

type ReportStorage interface {
	CustomerCount(ctx context.Context) (int64, error)
	ServiceTotals(ctx context.Context, from time.Time, to time.Time) (count int64, revenue float64, err error)
	RedemptionCount(ctx context.Context, from time.Time, to time.Time) (int64, error)
	MonthlyTotals(ctx context.Context, year int) ([]model.MonthTotals, error)
}

type CacheStorage interface {
	GetCustomer(ctx context.Context, mobile string) (model.Customer, error)
	SetCustomer(ctx context.Context, customer model.Customer) error
	InvalidateCustomer(ctx context.Context, mobile string) error
}

type NotificationPublisher interface {
	RewardIssued(ctx context.Context, mobile string, name string) error
}

type LoyaltyEngine interface {
	RegisterCustomer(ctx context.Context, mobile string, name string) (model.Customer, error)
	GetCustomer(ctx context.Context, mobile string) (model.Customer, error)
	Customers(ctx context.Context) ([]model.Customer, error)
	RecordService(ctx context.Context, mobile string, service string, price float64, points int32) (model.Customer, bool, error)
	AddPoints(ctx context.Context, mobile string, points int32) (model.Customer, error)
	DeductPoints(ctx context.Context, mobile string, points int32) (model.Customer, error)
	Services(ctx context.Context) ([]model.ServiceRecord, error)
	FreeServices(ctx context.Context) ([]model.RewardRedemption, error)
}

type Reporter interface {
	Dashboard(ctx context.Context) (model.DashboardStats, error)
	MonthReport(ctx context.Context, month string) (model.PeriodReport, error)
	YearReport(ctx context.Context, year string) (model.YearReport, error)
}
