package department

import (
	"context"

	"github.com/Shayanthavi/employee-management-go/internal/domain/department"
)

type DepartmentServiceImpl struct {
	departmentRepo department.DepartmentRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{departmentRepo: departmentRepo}
}

// CreateDepartment implements department.DepartmentService. Uniqueness is a
// check-then-insert; two concurrent creates with the same name can race.
// Accepted at this scale.
func (s *DepartmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error) {
	if err := req.Validate(); err != nil {
		return department.Department{}, err
	}

	existing, err := s.departmentRepo.GetByName(ctx, req.Name)
	if err != nil {
		return department.Department{}, err
	}
	if existing != nil {
		return department.Department{}, department.ErrDepartmentExists
	}

	return s.departmentRepo.Create(ctx, department.Department{Name: req.Name})
}

// ListDepartments implements department.DepartmentService.
func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context) ([]department.Department, error) {
	return s.departmentRepo.List(ctx)
}
