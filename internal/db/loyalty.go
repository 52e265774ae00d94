package db

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	model "github.com/nagagroupsnewfamous-hub/salon-backend/internal/models"
	"go.uber.org/zap"
)

type LoyaltyDB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewLoyaltyDB(logger *zap.Logger) (db *LoyaltyDB, err error) {
	// config
	purl := os.Getenv("LOYALTY_DB")
	if purl == "" {
		return nil, fmt.Errorf("env LOYALTY_DB is not set")
	}
	port := os.Getenv("LOYALTY_DB_PORT")
	if port == "" {
		return nil, fmt.Errorf("env LOYALTY_DB_PORT is not set")
	}
	user := os.Getenv("LOYALTY_DB_USER")
	if user == "" {
		return nil, fmt.Errorf("env LOYALTY_DB_USER is not set")
	}
	password := os.Getenv("LOYALTY_DB_PASSWORD")
	if password == "" {
		return nil, fmt.Errorf("env LOYALTY_DB_PASSWORD is not set")
	}
	database := os.Getenv("LOYALTY_DB_BASE")
	if database == "" {
		return nil, fmt.Errorf("env LOYALTY_DB_BASE is not set")
	}
	dsn := "postgres://" + user + ":" + password + "@" + purl + ":" + port + "/" + database

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &LoyaltyDB{pool, logger}, nil
}

// wrapStorageErr maps low-level storage failures onto the error taxonomy.
func wrapStorageErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("storage: %v: %w", err, model.ErrUnavailable)
	}
	// недоступная база: отказ соединения, сбой DNS
	var operr *net.OpError
	var dnserr *net.DNSError
	if errors.As(err, &operr) || errors.As(err, &dnserr) {
		return fmt.Errorf("storage: %v: %w", err, model.ErrUnavailable)
	}
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		switch pgerr.Code {
		case "23505": // unique violation
			return fmt.Errorf("storage: %v: %w", err, model.ErrConflict)
		case "40001", "40P01": // serialization failure, deadlock
			return fmt.Errorf("storage: %v: %w", err, model.ErrConflict)
		case "23503": // broken customer reference
			return fmt.Errorf("storage: %v: %w", err, model.ErrNotFound)
		}
	}
	return err
}

// Создание клиента
func (p *LoyaltyDB) CustomerCreate(ctx context.Context, mobile string, name string) (model.Customer, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return model.Customer{}, wrapStorageErr(err)
	}
	defer conn.Release()

	cust := model.Customer{
		UUID:       uuid.New(),
		Mobile:     mobile,
		Name:       name,
		Points:     0,
		Membership: model.Silver,
	}

	sql, args, err := sq.Insert("customers").
		Columns("id", "mobile", "name", "points", "membership").
		Values(cust.UUID, cust.Mobile, cust.Name, cust.Points, cust.Membership).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return model.Customer{}, err
	}

	_, err = conn.Exec(ctx, sql, args...)
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return model.Customer{}, wrapStorageErr(err)
	}
	return cust, nil
}

// Получить клиента по номеру телефона
func (p *LoyaltyDB) CustomerGet(ctx context.Context, mobile string) (model.Customer, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return model.Customer{}, wrapStorageErr(err)
	}
	defer conn.Release()

	var cust model.Customer
	var pguuid pgtype.UUID
	row := conn.QueryRow(ctx, "SELECT id, mobile, name, points, membership FROM customers WHERE mobile = $1", mobile)
	err = row.Scan(&pguuid, &cust.Mobile, &cust.Name, &cust.Points, &cust.Membership)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Customer{}, fmt.Errorf("customer %s: %w", mobile, model.ErrNotFound)
		}
		return model.Customer{}, wrapStorageErr(err)
	}
	cust.UUID, _ = uuid.FromBytes(pguuid.Bytes[:])
	return cust, nil
}

// Все клиенты
func (p *LoyaltyDB) CustomerList(ctx context.Context) (customers []model.Customer, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, wrapStorageErr(err)
	}
	defer conn.Release()

	sql, args, err := sq.Select("id", "mobile", "name", "points", "membership").
		From("customers").
		OrderBy("name").
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
		var cust model.Customer
		var pguuid pgtype.UUID
		err = rows.Scan(&pguuid, &cust.Mobile, &cust.Name, &cust.Points, &cust.Membership)
		if err != nil {
			return nil, err
		}
		cust.UUID, _ = uuid.FromBytes(pguuid.Bytes[:])
		customers = append(customers, cust)
	}
	return customers, nil
}

// lockCustomer блокирует строку клиента на время read-modify-write
func (p *LoyaltyDB) lockCustomer(ctx context.Context, tx pgx.Tx, mobile string) (model.Customer, error) {
	var cust model.Customer
	var pguuid pgtype.UUID
	row := tx.QueryRow(ctx, "SELECT id, mobile, name, points, membership FROM customers WHERE mobile = $1 FOR UPDATE", mobile)
	err := row.Scan(&pguuid, &cust.Mobile, &cust.Name, &cust.Points, &cust.Membership)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Customer{}, fmt.Errorf("customer %s: %w", mobile, model.ErrNotFound)
		}
		return model.Customer{}, wrapStorageErr(err)
	}
	cust.UUID, _ = uuid.FromBytes(pguuid.Bytes[:])
	return cust, nil
}

// applyDelta пересчитывает баланс и статус, при необходимости пишет списание.
// Вызывается только на заблокированной строке внутри транзакции.
func (p *LoyaltyDB) applyDelta(ctx context.Context, tx pgx.Tx, cust model.Customer, delta int32, redeem bool) (model.Customer, bool, error) {
	newPoints, membership, rewarded, err := model.ApplyDelta(cust.Points, delta, redeem)
	if err != nil {
		return model.Customer{}, false, err
	}

	sql, args, err := sq.Update("customers").
		Set("points", newPoints).
		Set("membership", membership).
		Where(sq.Eq{"mobile": cust.Mobile}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return model.Customer{}, false, err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		return model.Customer{}, false, wrapStorageErr(err)
	}

	if rewarded {
		sql, args, err = sq.Insert("free_services").
			Columns("id", "customer_id", "redeemed_at").
			Values(uuid.New(), cust.UUID, time.Now()).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			return model.Customer{}, false, err
		}
		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return model.Customer{}, false, wrapStorageErr(err)
		}
	}

	cust.Points = newPoints
	cust.Membership = membership
	return cust, rewarded, nil
}

// Изменение баланса
func (p *LoyaltyDB) PointsApply(ctx context.Context, mobile string, delta int32, redeem bool) (cust model.Customer, rewarded bool, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return model.Customer{}, false, wrapStorageErr(err)
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.Customer{}, false, wrapStorageErr(err)
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	cust, err = p.lockCustomer(ctx, tx, mobile)
	if err != nil {
		return model.Customer{}, false, err
	}
	cust, rewarded, err = p.applyDelta(ctx, tx, cust, delta, redeem)
	if err != nil {
		return model.Customer{}, false, err
	}
	err = tx.Commit(ctx)
	if err != nil {
		return model.Customer{}, false, wrapStorageErr(err)
	}
	return cust, rewarded, nil
}

// Добавление записи об услуге и начисление баллов одной транзакцией
func (p *LoyaltyDB) ServiceCreate(ctx context.Context, mobile string, service string, price float64, points int32) (cust model.Customer, rewarded bool, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return model.Customer{}, false, wrapStorageErr(err)
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.Customer{}, false, wrapStorageErr(err)
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	cust, err = p.lockCustomer(ctx, tx, mobile)
	if err != nil {
		return model.Customer{}, false, err
	}

	sql, args, err := sq.Insert("services").
		Columns("id", "customer_id", "service_name", "price", "points_earned", "created_at").
		Values(uuid.New(), cust.UUID, service, price, points, time.Now()).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return model.Customer{}, false, err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		return model.Customer{}, false, wrapStorageErr(err)
	}

	cust, rewarded, err = p.applyDelta(ctx, tx, cust, points, true)
	if err != nil {
		return model.Customer{}, false, err
	}
	err = tx.Commit(ctx)
	if err != nil {
		return model.Customer{}, false, wrapStorageErr(err)
	}
	return cust, rewarded, nil
}

// История услуг
func (p *LoyaltyDB) ServiceList(ctx context.Context) (services []model.ServiceRecord, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, wrapStorageErr(err)
	}
	defer conn.Release()

	sql, args, err := sq.Select("s.id", "s.customer_id", "c.mobile", "c.name", "s.service_name", "s.price", "s.points_earned", "s.created_at").
		From("services s").
		Join("customers c ON c.id = s.customer_id").
		OrderBy("s.created_at DESC").
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
		var rec model.ServiceRecord
		var id, custid pgtype.UUID
		err = rows.Scan(&id, &custid, &rec.Mobile, &rec.Name, &rec.ServiceName, &rec.Price, &rec.PointsEarned, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}
		rec.UUID, _ = uuid.FromBytes(id.Bytes[:])
		rec.CustomerUUID, _ = uuid.FromBytes(custid.Bytes[:])
		services = append(services, rec)
	}
	return services, nil
}

// История бесплатных услуг
func (p *LoyaltyDB) RedemptionList(ctx context.Context) (redemptions []model.RewardRedemption, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, wrapStorageErr(err)
	}
	defer conn.Release()

	sql, args, err := sq.Select("f.id", "f.customer_id", "c.mobile", "c.name", "f.redeemed_at").
		From("free_services f").
		Join("customers c ON c.id = f.customer_id").
		OrderBy("f.redeemed_at DESC").
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
		var rec model.RewardRedemption
		var id, custid pgtype.UUID
		err = rows.Scan(&id, &custid, &rec.Mobile, &rec.Name, &rec.RedeemedAt)
		if err != nil {
			return nil, err
		}
		rec.UUID, _ = uuid.FromBytes(id.Bytes[:])
		rec.CustomerUUID, _ = uuid.FromBytes(custid.Bytes[:])
		redemptions = append(redemptions, rec)
	}
	return redemptions, nil
}
