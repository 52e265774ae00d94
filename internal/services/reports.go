package services

import (
	"context"
	"fmt"
	"time"

	interf "github.com/nagagroupsnewfamous-hub/salon-backend/internal/interfaces"
	model "github.com/nagagroupsnewfamous-hub/salon-backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ReportService struct {
	logger *zap.Logger
	db     interf.ReportStorage
}

func NewReportService(logger *zap.Logger, db interf.ReportStorage) (service *ReportService) {
	return &ReportService{logger, db}
}

// Сводка для дашборда, независимые запросы выполняются параллельно
func (r *ReportService) Dashboard(ctx context.Context) (stats model.DashboardStats, err error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	allFrom := time.Time{}
	allTo := now.AddDate(1, 0, 0)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := r.db.CustomerCount(gctx)
		stats.TotalCustomers = count
		return err
	})
	g.Go(func() error {
		count, revenue, err := r.db.ServiceTotals(gctx, allFrom, allTo)
		stats.TotalServices = count
		stats.TotalRevenue = revenue
		return err
	})
	g.Go(func() error {
		count, revenue, err := r.db.ServiceTotals(gctx, today, today.AddDate(0, 0, 1))
		stats.TodayServices = count
		stats.TodayRevenue = revenue
		return err
	})
	g.Go(func() error {
		count, err := r.db.RedemptionCount(gctx, allFrom, allTo)
		stats.FreeServicesGiven = count
		return err
	})
	if err = g.Wait(); err != nil {
		return model.DashboardStats{}, err
	}
	return stats, nil
}

// Отчет за месяц, формат YYYY-MM.
// Период без услуг дает нули, а не отсутствие данных.
func (r *ReportService) MonthReport(ctx context.Context, month string) (report model.PeriodReport, err error) {
	from, err := time.Parse("2006-01", month)
	if err != nil {
		return model.PeriodReport{}, fmt.Errorf("month must be in format YYYY-MM: %w", model.ErrValidation)
	}
	to := from.AddDate(0, 1, 0)
	report.Month = month

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, revenue, err := r.db.ServiceTotals(gctx, from, to)
		report.TotalServices = count
		report.TotalRevenue = revenue
		return err
	})
	g.Go(func() error {
		count, err := r.db.RedemptionCount(gctx, from, to)
		report.FreeServices = count
		return err
	})
	if err = g.Wait(); err != nil {
		return model.PeriodReport{}, err
	}
	return report, nil
}

// Отчет за год с помесячной разбивкой, формат YYYY
func (r *ReportService) YearReport(ctx context.Context, year string) (report model.YearReport, err error) {
	from, err := time.Parse("2006", year)
	if err != nil {
		return model.YearReport{}, fmt.Errorf("year must be in format YYYY: %w", model.ErrValidation)
	}
	to := from.AddDate(1, 0, 0)
	report.Year = year

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, revenue, err := r.db.ServiceTotals(gctx, from, to)
		report.TotalServices = count
		report.TotalRevenue = revenue
		return err
	})
	g.Go(func() error {
		count, err := r.db.RedemptionCount(gctx, from, to)
		report.FreeServices = count
		return err
	})
	g.Go(func() error {
		months, err := r.db.MonthlyTotals(gctx, from.Year())
		report.MonthlyBreakdown = months
		return err
	})
	if err = g.Wait(); err != nil {
		return model.YearReport{}, err
	}
	if report.MonthlyBreakdown == nil {
		report.MonthlyBreakdown = []model.MonthTotals{}
	}
	return report, nil
}
