package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"jewel-shop/internal/storage"
)

const repairColumns = `repair_id, date, material, added_material_weight,
		material_cost, making_charge, total_cost, delivery_date,
		assigned_to, status, delivery_status, timestamp`

func (s *Storage) CreateRepairOrder(ctx context.Context, r storage.RepairOrder) (int64, error) {
	const op = "storage.mysql.CreateRepairOrder"

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO repair_orders
		(date, material, added_material_weight, material_cost, making_charge,
		 total_cost, delivery_date, assigned_to, status, delivery_status, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Date, r.Material, r.AddedMaterialWeight, r.MaterialCost, r.MakingCharge,
		r.TotalCost, r.DeliveryDate, nullableID(r.AssignedTo), r.Status, r.DeliveryStatus,
		time.Now().UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("%s: insert repair order: %w", op, err)
	}

	repairID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return repairID, nil
}

func (s *Storage) UpdateRepairOrder(ctx context.Context, repairID int64, r storage.RepairOrder) error {
	const op = "storage.mysql.UpdateRepairOrder"

	res, err := s.db.ExecContext(ctx, `
		UPDATE repair_orders SET
			date = ?, material = ?, added_material_weight = ?, material_cost = ?,
			making_charge = ?, total_cost = ?, delivery_date = ?, assigned_to = ?,
			status = ?, delivery_status = ?
		WHERE repair_id = ?`,
		r.Date, r.Material, r.AddedMaterialWeight, r.MaterialCost,
		r.MakingCharge, r.TotalCost, r.DeliveryDate, nullableID(r.AssignedTo),
		r.Status, r.DeliveryStatus,
		repairID,
	)
	if err != nil {
		return fmt.Errorf("%s: update repair_id=%d: %w", op, repairID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		if _, err := s.GetRepairOrder(ctx, repairID); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

func (s *Storage) GetRepairOrder(ctx context.Context, repairID int64) (*storage.RepairOrder, error) {
	const op = "storage.mysql.GetRepairOrder"

	row := s.db.QueryRowContext(ctx,
		`SELECT `+repairColumns+` FROM repair_orders WHERE repair_id = ?`, repairID)

	r, err := scanRepair(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: repair_id=%d: %w", op, repairID, storage.ErrRepairNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r, nil
}

func (s *Storage) GetRecentRepairOrders(ctx context.Context, count int) ([]storage.RepairOrder, error) {
	const op = "storage.mysql.GetRecentRepairOrders"

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+repairColumns+` FROM repair_orders ORDER BY timestamp DESC LIMIT ?`, count)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var repairs []storage.RepairOrder
	for rows.Next() {
		r, err := scanRepair(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		repairs = append(repairs, *r)
	}

	return repairs, rows.Err()
}

func (s *Storage) GetRepairOrderStats(ctx context.Context) (*storage.RepairOrderStats, error) {
	const op = "storage.mysql.GetRepairOrderStats"

	var stats storage.RepairOrderStats
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(added_material_weight), 0),
		       COALESCE(SUM(total_cost), 0)
		FROM repair_orders`).
		Scan(&stats.TotalOrders, &stats.TotalAddedWeight, &stats.TotalCost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &stats, nil
}

func scanRepair(r rowScanner) (*storage.RepairOrder, error) {
	var repair storage.RepairOrder
	var assigned sql.NullInt64

	err := r.Scan(
		&repair.RepairID, &repair.Date, &repair.Material, &repair.AddedMaterialWeight,
		&repair.MaterialCost, &repair.MakingCharge, &repair.TotalCost, &repair.DeliveryDate,
		&assigned, &repair.Status, &repair.DeliveryStatus, &repair.Timestamp,
	)
	if err != nil {
		return nil, err
	}

	if assigned.Valid {
		repair.AssignedTo = &assigned.Int64
	}

	return &repair, nil
}
