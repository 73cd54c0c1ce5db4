package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shayanthavi/employee-management-go/internal/domain/leave"
	"github.com/Shayanthavi/employee-management-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// Create implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	query := `
		INSERT INTO leave_request (employee_name, start_date, end_date, reason, status)
		VALUES ($1, $2::date, $3::date, $4, $5)
		RETURNING id, employee_name, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), reason, status
	`

	var created leave.LeaveRequest
	err := l.db.QueryRow(ctx, query, req.EmployeeName, req.StartDate, req.EndDate, req.Reason, req.Status).Scan(
		&created.ID, &created.EmployeeName, &created.StartDate, &created.EndDate, &created.Reason, &created.Status,
	)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// GetByID implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) GetByID(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	query := `
		SELECT id, employee_name, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), reason, status
		FROM leave_request
		WHERE id = $1
	`

	var req leave.LeaveRequest
	err := l.db.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeName, &req.StartDate, &req.EndDate, &req.Reason, &req.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request %d: %w", id, err)
	}

	return req, nil
}

// List implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, error) {
	query := `
		SELECT id, employee_name, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), reason, status
		FROM leave_request
	`

	var args []interface{}
	if filter.EmployeeName != "" {
		args = append(args, filter.EmployeeName)
		query += " WHERE employee_name = $1"
	}

	query += " ORDER BY start_date DESC, id DESC"

	rows, err := l.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var records []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		if err := rows.Scan(&req.ID, &req.EmployeeName, &req.StartDate, &req.EndDate, &req.Reason, &req.Status); err != nil {
			return nil, err
		}
		records = append(records, req)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Update implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) Update(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	query := `
		UPDATE leave_request
		SET employee_name = $1, start_date = $2::date, end_date = $3::date, reason = $4, status = $5
		WHERE id = $6
		RETURNING id, employee_name, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), reason, status
	`

	var updated leave.LeaveRequest
	err := l.db.QueryRow(ctx, query, req.EmployeeName, req.StartDate, req.EndDate, req.Reason, req.Status, req.ID).Scan(
		&updated.ID, &updated.EmployeeName, &updated.StartDate, &updated.EndDate, &updated.Reason, &updated.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request %d: %w", req.ID, err)
	}

	return updated, nil
}

// Delete implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) Delete(ctx context.Context, id int64) error {
	tag, err := l.db.Exec(ctx, `DELETE FROM leave_request WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave request %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}
