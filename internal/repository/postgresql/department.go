package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shayanthavi/employee-management-go/internal/domain/department"
	"github.com/Shayanthavi/employee-management-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	query := `
		INSERT INTO department (name)
		VALUES ($1)
		RETURNING id, name
	`

	var created department.Department
	err := d.db.QueryRow(ctx, query, dept.Name).Scan(&created.ID, &created.Name)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return created, nil
}

// List implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	rows, err := d.db.Query(ctx, `SELECT id, name FROM department ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var dept department.Department
		if err := rows.Scan(&dept.ID, &dept.Name); err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// GetByName implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) GetByName(ctx context.Context, name string) (*department.Department, error) {
	var dept department.Department
	err := d.db.QueryRow(ctx, `SELECT id, name FROM department WHERE name = $1`, name).Scan(&dept.ID, &dept.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get department by name: %w", err)
	}
	return &dept, nil
}
