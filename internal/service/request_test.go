package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"conpro/internal/domain"
)

func newRequestService(t *testing.T) (*RequestServiceImpl, *MockRequestRepository, *MockProfessionalRepository) {
	t.Helper()

	repo := new(MockRequestRepository)
	professionalRepo := new(MockProfessionalRepository)
	svc := NewRequestService(repo, professionalRepo, zap.NewNop())

	return svc, repo, professionalRepo
}

func TestRequestService_Create(t *testing.T) {
	svc, repo, professionalRepo := newRequestService(t)
	ctx := context.Background()

	dto := domain.CreateRequestDTO{ProfessionalID: 5, Description: "Reparar caño de la cocina"}

	professionalRepo.On("GetByID", ctx, int64(5)).Return(&domain.Professional{ID: 5, UserID: 42}, nil)
	repo.On("Create", ctx, int64(10), dto).Return(int64(1), nil)

	id, err := svc.Create(ctx, 10, dto)

	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestRequestService_Create_SelfRequest(t *testing.T) {
	svc, repo, professionalRepo := newRequestService(t)
	ctx := context.Background()

	professionalRepo.On("GetByID", ctx, int64(5)).Return(&domain.Professional{ID: 5, UserID: 42}, nil)

	_, err := svc.Create(ctx, 42, domain.CreateRequestDTO{ProfessionalID: 5, Description: "Trabajo"})

	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestService_Create_UnknownSpecialty(t *testing.T) {
	svc, repo, professionalRepo := newRequestService(t)
	ctx := context.Background()

	specialtyID := int64(99)
	professionalRepo.On("GetByID", ctx, int64(5)).Return(&domain.Professional{
		ID:          5,
		UserID:      42,
		Specialties: []domain.Specialty{{ID: 7}},
	}, nil)

	_, err := svc.Create(ctx, 10, domain.CreateRequestDTO{
		ProfessionalID: 5,
		SpecialtyID:    &specialtyID,
		Description:    "Trabajo",
	})

	require.ErrorIs(t, err, domain.ErrSpecialtyNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		current domain.RequestStatus
		next    domain.RequestStatus
		wantErr bool
	}{
		{"принятие из pending", domain.RequestStatusPending, domain.RequestStatusAccepted, false},
		{"завершение принятой", domain.RequestStatusAccepted, domain.RequestStatusCompleted, false},
		{"завершение из pending", domain.RequestStatusPending, domain.RequestStatusCompleted, true},
		{"возврат в pending", domain.RequestStatusAccepted, domain.RequestStatusPending, true},
		{"изменение завершенной", domain.RequestStatusCompleted, domain.RequestStatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newRequestService(t)
			ctx := context.Background()

			repo.On("GetByID", ctx, int64(1)).Return(&domain.ServiceRequest{ID: 1, Status: tt.current}, nil)
			repo.On("Update", ctx, int64(1), mock.Anything).Return(nil)

			err := svc.UpdateStatus(ctx, 1, tt.next)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsValidationError(err))
				repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRequestService_Update_OnlyPendingEditable(t *testing.T) {
	svc, repo, _ := newRequestService(t)
	ctx := context.Background()

	description := "Nueva descripción"
	repo.On("GetByID", ctx, int64(1)).Return(&domain.ServiceRequest{ID: 1, Status: domain.RequestStatusAccepted}, nil)

	err := svc.Update(ctx, 1, domain.UpdateRequestDTO{Description: &description})

	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestService_Cancel(t *testing.T) {
	svc, repo, _ := newRequestService(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(1)).Return(&domain.ServiceRequest{ID: 1, Status: domain.RequestStatusPending}, nil)
	repo.On("Delete", ctx, int64(1)).Return(nil)

	err := svc.Cancel(ctx, 1)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRequestService_Cancel_CompletedRequest(t *testing.T) {
	svc, repo, _ := newRequestService(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(1)).Return(&domain.ServiceRequest{ID: 1, Status: domain.RequestStatusCompleted}, nil)

	err := svc.Cancel(ctx, 1)

	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRequestService_List_DefaultsLimit(t *testing.T) {
	svc, repo, _ := newRequestService(t)
	ctx := context.Background()

	repo.On("List", ctx, mock.MatchedBy(func(filter domain.RequestFilter) bool {
		return filter.Limit == 20 && filter.Offset == 0
	})).Return([]domain.ServiceRequest{}, nil)
	repo.On("CountByFilter", ctx, mock.Anything).Return(0, nil)

	_, total, err := svc.List(ctx, domain.RequestFilter{Limit: 0, Offset: -5})

	require.NoError(t, err)
	assert.Equal(t, 0, total)
	repo.AssertExpectations(t)
}
