package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"jewel-shop/internal/storage"
)

const orderColumns = `bill_no, customer_name, delivery_contact, material, material_description,
		order_type, exchange_weight, deduct_weight, added_weight, total_weight,
		rate_per_gram, material_cost, making_charge, other_charge, total_cost,
		delivery_date, assigned_to, status, remarks, timestamp`

// PlaceOrder inserts a new order and returns the generated bill number.
// The creation timestamp is assigned here and never changes afterwards.
func (s *Storage) PlaceOrder(ctx context.Context, o storage.Order) (int64, error) {
	const op = "storage.mysql.PlaceOrder"

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO orders
		(customer_name, delivery_contact, material, material_description,
		 order_type, exchange_weight, deduct_weight, added_weight, total_weight,
		 rate_per_gram, material_cost, making_charge, other_charge, total_cost,
		 delivery_date, assigned_to, status, remarks, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.CustomerName, o.DeliveryContact, o.Material, o.MaterialDescription,
		o.OrderType, o.ExchangeWeight, o.DeductWeight, o.AddedWeight, o.TotalWeight,
		o.RatePerGram, o.MaterialCost, o.MakingCharge, o.OtherCharge, o.TotalCost,
		o.DeliveryDate, nullableID(o.AssignedTo), o.Status, o.Remarks, time.Now().UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("%s: insert order: %w", op, err)
	}

	billNo, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return billNo, nil
}

// UpdateOrder overwrites the full field set of an existing order.
// bill_no and timestamp are immutable.
func (s *Storage) UpdateOrder(ctx context.Context, billNo int64, o storage.Order) error {
	const op = "storage.mysql.UpdateOrder"

	res, err := s.db.ExecContext(ctx, `
		UPDATE orders SET
			customer_name = ?, delivery_contact = ?, material = ?, material_description = ?,
			order_type = ?, exchange_weight = ?, deduct_weight = ?, added_weight = ?, total_weight = ?,
			rate_per_gram = ?, material_cost = ?, making_charge = ?, other_charge = ?, total_cost = ?,
			delivery_date = ?, assigned_to = ?, status = ?, remarks = ?
		WHERE bill_no = ?`,
		o.CustomerName, o.DeliveryContact, o.Material, o.MaterialDescription,
		o.OrderType, o.ExchangeWeight, o.DeductWeight, o.AddedWeight, o.TotalWeight,
		o.RatePerGram, o.MaterialCost, o.MakingCharge, o.OtherCharge, o.TotalCost,
		o.DeliveryDate, nullableID(o.AssignedTo), o.Status, o.Remarks,
		billNo,
	)
	if err != nil {
		return fmt.Errorf("%s: update order bill_no=%d: %w", op, billNo, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		// Could also be an update with identical values; re-check existence.
		if _, err := s.GetOrder(ctx, billNo); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

func (s *Storage) GetOrder(ctx context.Context, billNo int64) (*storage.Order, error) {
	const op = "storage.mysql.GetOrder"

	row := s.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE bill_no = ?`, billNo)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: bill_no=%d: %w", op, billNo, storage.ErrOrderNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return o, nil
}

func (s *Storage) GetRecentOrders(ctx context.Context, count int) ([]storage.Order, error) {
	const op = "storage.mysql.GetRecentOrders"

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY timestamp DESC LIMIT ?`, count)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var orders []storage.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		orders = append(orders, *o)
	}

	return orders, rows.Err()
}

func (s *Storage) GetOrderStats(ctx context.Context) (*storage.OrderStats, error) {
	const op = "storage.mysql.GetOrderStats"

	var stats storage.OrderStats
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(exchange_weight), 0),
		       COALESCE(SUM(deduct_weight), 0),
		       COALESCE(SUM(added_weight), 0),
		       COALESCE(SUM(total_cost), 0)
		FROM orders`).
		Scan(&stats.TotalOrders, &stats.TotalExchangeWeight,
			&stats.TotalDeductWeight, &stats.TotalAddedWeight, &stats.TotalCost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(r rowScanner) (*storage.Order, error) {
	var o storage.Order
	var assigned sql.NullInt64

	err := r.Scan(
		&o.BillNo, &o.CustomerName, &o.DeliveryContact, &o.Material, &o.MaterialDescription,
		&o.OrderType, &o.ExchangeWeight, &o.DeductWeight, &o.AddedWeight, &o.TotalWeight,
		&o.RatePerGram, &o.MaterialCost, &o.MakingCharge, &o.OtherCharge, &o.TotalCost,
		&o.DeliveryDate, &assigned, &o.Status, &o.Remarks, &o.Timestamp,
	)
	if err != nil {
		return nil, err
	}

	if assigned.Valid {
		o.AssignedTo = &assigned.Int64
	}

	return &o, nil
}

func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}
