package leave

import (
	"context"
	"testing"

	"github.com/Shayanthavi/employee-management-go/internal/domain/leave"
	"github.com/Shayanthavi/employee-management-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	nextID int64
	leaves map[int64]leave.LeaveRequest
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{nextID: 1, leaves: map[int64]leave.LeaveRequest{}}
}

func (r *fakeLeaveRepo) Create(_ context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	l.ID = r.nextID
	r.nextID++
	r.leaves[l.ID] = l
	return l, nil
}

func (r *fakeLeaveRepo) GetByID(_ context.Context, id int64) (leave.LeaveRequest, error) {
	l, ok := r.leaves[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveNotFound
	}
	return l, nil
}

func (r *fakeLeaveRepo) List(_ context.Context, _ leave.LeaveFilter) ([]leave.LeaveRequest, error) {
	result := []leave.LeaveRequest{}
	for _, l := range r.leaves {
		result = append(result, l)
	}
	return result, nil
}

func (r *fakeLeaveRepo) Update(_ context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	if _, ok := r.leaves[l.ID]; !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveNotFound
	}
	r.leaves[l.ID] = l
	return l, nil
}

func (r *fakeLeaveRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.leaves[id]; !ok {
		return leave.ErrLeaveNotFound
	}
	delete(r.leaves, id)
	return nil
}

func TestCreateLeaveDefaultsToPending(t *testing.T) {
	ctx := context.Background()
	svc := NewLeaveService(newFakeLeaveRepo())

	created, err := svc.CreateLeave(ctx, leave.CreateLeaveRequest{
		EmployeeName: "Alice",
		StartDate:    "2024-03-10",
		EndDate:      "2024-03-12",
		Reason:       "Vacation",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, created.Status)
}

func TestCreateLeaveKeepsExplicitStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewLeaveService(newFakeLeaveRepo())

	created, err := svc.CreateLeave(ctx, leave.CreateLeaveRequest{
		EmployeeName: "Alice",
		StartDate:    "2024-03-10",
		EndDate:      "2024-03-12",
		Status:       leave.StatusApproved,
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, created.Status)
}

func TestCreateLeaveInvalidStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewLeaveService(newFakeLeaveRepo())

	_, err := svc.CreateLeave(ctx, leave.CreateLeaveRequest{
		EmployeeName: "Alice",
		StartDate:    "2024-03-10",
		EndDate:      "2024-03-12",
		Status:       "Maybe",
	})
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "status")
}

func TestUpdateLeaveStatusOnly(t *testing.T) {
	ctx := context.Background()
	svc := NewLeaveService(newFakeLeaveRepo())

	created, err := svc.CreateLeave(ctx, leave.CreateLeaveRequest{
		EmployeeName: "Alice",
		StartDate:    "2024-03-10",
		EndDate:      "2024-03-12",
		Reason:       "Vacation",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateLeave(ctx, created.ID, leave.UpdateLeaveRequest{Status: leave.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, updated.Status)
	assert.Equal(t, "Alice", updated.EmployeeName)
	assert.Equal(t, "Vacation", updated.Reason)
}
