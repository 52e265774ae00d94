package db

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	model "github.com/nagagroupsnewfamous-hub/salon-backend/internal/models"
)

// Кол-во клиентов
func (p *LoyaltyDB) CustomerCount(ctx context.Context) (count int64, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return 0, wrapStorageErr(err)
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, "SELECT COUNT(*) FROM customers")
	err = row.Scan(&count)
	if err != nil {
		return 0, wrapStorageErr(err)
	}
	return count, nil
}

// Кол-во услуг и выручка за период
func (p *LoyaltyDB) ServiceTotals(ctx context.Context, from time.Time, to time.Time) (count int64, revenue float64, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return 0, 0, wrapStorageErr(err)
	}
	defer conn.Release()

	sql, args, err := sq.Select("COUNT(*)", "COALESCE(SUM(price),0)").
		From("services").
		Where(sq.GtOrEq{"created_at": from}).
		Where(sq.Lt{"created_at": to}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, 0, err
	}
	row := conn.QueryRow(ctx, sql, args...)
	err = row.Scan(&count, &revenue)
	if err != nil {
		return 0, 0, wrapStorageErr(err)
	}
	return count, revenue, nil
}

// Кол-во списаний за период
func (p *LoyaltyDB) RedemptionCount(ctx context.Context, from time.Time, to time.Time) (count int64, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return 0, wrapStorageErr(err)
	}
	defer conn.Release()

	sql, args, err := sq.Select("COUNT(*)").
		From("free_services").
		Where(sq.GtOrEq{"redeemed_at": from}).
		Where(sq.Lt{"redeemed_at": to}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}
	row := conn.QueryRow(ctx, sql, args...)
	err = row.Scan(&count)
	if err != nil {
		return 0, wrapStorageErr(err)
	}
	return count, nil
}

// Помесячная разбивка услуг за год
func (p *LoyaltyDB) MonthlyTotals(ctx context.Context, year int) (months []model.MonthTotals, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, wrapStorageErr(err)
	}
	defer conn.Release()

	sql, args, err := sq.Select("TO_CHAR(created_at, 'YYYY-MM') AS month", "COUNT(*)", "COALESCE(SUM(price),0)").
		From("services").
		Where("TO_CHAR(created_at, 'YYYY') = ?", fmt.Sprintf("%04d", year)).
		GroupBy("month").
		OrderBy("month").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapStorageErr(err)
	}
	defer rows.Close()

	for rows.Next() {
		var m model.MonthTotals
		err = rows.Scan(&m.Month, &m.TotalServices, &m.TotalRevenue)
		if err != nil {
			return nil, err
		}
		months = append(months, m)
	}
	return months, nil
}
