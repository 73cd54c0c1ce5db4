package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shayanthavi/employee-management-go/internal/domain/attendance"
	"github.com/Shayanthavi/employee-management-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Dates live in DATE columns but travel as YYYY-MM-DD strings, so every
// select renders them with to_char and every write casts with ::date.

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	query := `
		INSERT INTO attendance (employee_name, date, status)
		VALUES ($1, $2::date, $3)
		RETURNING id, employee_name, to_char(date, 'YYYY-MM-DD'), status
	`

	var created attendance.Attendance
	err := a.db.QueryRow(ctx, query, att.EmployeeName, att.Date, att.Status).Scan(
		&created.ID, &created.EmployeeName, &created.Date, &created.Status,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByID(ctx context.Context, id int64) (attendance.Attendance, error) {
	query := `
		SELECT id, employee_name, to_char(date, 'YYYY-MM-DD'), status
		FROM attendance
		WHERE id = $1
	`

	var att attendance.Attendance
	err := a.db.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.EmployeeName, &att.Date, &att.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance %d: %w", id, err)
	}

	return att, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	query := `
		SELECT id, employee_name, to_char(date, 'YYYY-MM-DD'), status
		FROM attendance
	`

	var args []interface{}
	var conditions []string

	if filter.EmployeeName != "" {
		args = append(args, filter.EmployeeName)
		conditions = append(conditions, fmt.Sprintf("employee_name = $%d", len(args)))
	}
	if filter.From != "" {
		args = append(args, filter.From)
		conditions = append(conditions, fmt.Sprintf("date >= $%d::date", len(args)))
	}
	if filter.To != "" {
		args = append(args, filter.To)
		conditions = append(conditions, fmt.Sprintf("date <= $%d::date", len(args)))
	}
	if filter.Before != "" {
		args = append(args, filter.Before)
		conditions = append(conditions, fmt.Sprintf("date < $%d::date", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	query += " ORDER BY date DESC, id DESC"

	rows, err := a.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(&att.ID, &att.EmployeeName, &att.Date, &att.Status); err != nil {
			return nil, err
		}
		records = append(records, att)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	query := `
		UPDATE attendance
		SET employee_name = $1, date = $2::date, status = $3
		WHERE id = $4
		RETURNING id, employee_name, to_char(date, 'YYYY-MM-DD'), status
	`

	var updated attendance.Attendance
	err := a.db.QueryRow(ctx, query, att.EmployeeName, att.Date, att.Status, att.ID).Scan(
		&updated.ID, &updated.EmployeeName, &updated.Date, &updated.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance %d: %w", att.ID, err)
	}

	return updated, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Delete(ctx context.Context, id int64) error {
	tag, err := a.db.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
