package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"jewel-shop/internal/storage"
)

func (s *Storage) AddEmployee(ctx context.Context, name, phoneNo string) (int64, error) {
	const op = "storage.mysql.AddEmployee"

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO employees (name, phone_no) VALUES (?, ?)`, name, phoneNo)
	if err != nil {
		return 0, fmt.Errorf("%s: insert employee: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) ListEmployees(ctx context.Context) ([]storage.Employee, error) {
	const op = "storage.mysql.ListEmployees"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, phone_no FROM employees ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var employees []storage.Employee
	for rows.Next() {
		var e storage.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.PhoneNo); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (s *Storage) GetUserByLogin(ctx context.Context, login string) (*storage.User, error) {
	const op = "storage.mysql.GetUserByLogin"

	var u storage.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, login, password_hash, role FROM users WHERE login = ?`, login).
		Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: login=%s: %w", op, login, storage.ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &u, nil
}
