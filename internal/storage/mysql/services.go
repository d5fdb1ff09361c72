package mysql

import (
	"context"
	"fmt"
	"time"

	"jewel-shop/internal/storage"
)

// Service records have no update path: the API is append-only for them.
// Every list query selects the primary key so callers always see real ids.

func (s *Storage) AddPiercingService(ctx context.Context, p storage.PiercingService) (int64, error) {
	const op = "storage.mysql.AddPiercingService"

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO piercing_services (date, name, phone, amount, remarks, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.Date, p.Name, p.Phone, p.Amount, p.Remarks, time.Now().UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("%s: insert piercing service: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetRecentPiercingServices(ctx context.Context, count int) ([]storage.PiercingService, error) {
	const op = "storage.mysql.GetRecentPiercingServices"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, name, phone, amount, remarks, timestamp
		FROM piercing_services ORDER BY timestamp DESC LIMIT ?`, count)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var services []storage.PiercingService
	for rows.Next() {
		var p storage.PiercingService
		err := rows.Scan(&p.ID, &p.Date, &p.Name, &p.Phone, &p.Amount, &p.Remarks, &p.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		services = append(services, p)
	}

	return services, rows.Err()
}

func (s *Storage) GetPiercingStats(ctx context.Context) (*storage.PiercingStats, error) {
	const op = "storage.mysql.GetPiercingStats"

	var stats storage.PiercingStats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM piercing_services`).
		Scan(&stats.TotalCount, &stats.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &stats, nil
}

func (s *Storage) AddOtherService(ctx context.Context, o storage.OtherService) (int64, error) {
	const op = "storage.mysql.AddOtherService"

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO other_services (name, phone, amount, remarks, timestamp)
		VALUES (?, ?, ?, ?, ?)`,
		o.Name, o.Phone, o.Amount, o.Remarks, time.Now().UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("%s: insert other service: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetRecentOtherServices(ctx context.Context, count int) ([]storage.OtherService, error) {
	const op = "storage.mysql.GetRecentOtherServices"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, phone, amount, remarks, timestamp
		FROM other_services ORDER BY timestamp DESC LIMIT ?`, count)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var services []storage.OtherService
	for rows.Next() {
		var o storage.OtherService
		err := rows.Scan(&o.ID, &o.Name, &o.Phone, &o.Amount, &o.Remarks, &o.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		services = append(services, o)
	}

	return services, rows.Err()
}

func (s *Storage) GetOtherServiceStats(ctx context.Context) (*storage.OtherServiceStats, error) {
	const op = "storage.mysql.GetOtherServiceStats"

	var stats storage.OtherServiceStats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM other_services`).
		Scan(&stats.TotalCount, &stats.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &stats, nil
}
