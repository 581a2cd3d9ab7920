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

func newProfileService(t *testing.T) (*ServiceProfileServiceImpl, *MockServiceProfileRepository, *MockProfessionalRepository, *MockCategoryRepository) {
	t.Helper()

	repo := new(MockServiceProfileRepository)
	professionalRepo := new(MockProfessionalRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewServiceProfileService(repo, professionalRepo, categoryRepo, zap.NewNop())

	return svc, repo, professionalRepo, categoryRepo
}

func validSyncDTO() domain.SyncServicesDTO {
	return domain.SyncServicesDTO{
		Specialties: []domain.SpecialtyDTO{
			{
				CategoryID:  1,
				ServiceName: "Instalación de tuberías",
				Cost:        50,
				CostType:    domain.CostTypeHour,
				IsPrincipal: true,
				WorkOnsite:  true,
			},
			{
				CategoryID:  2,
				ServiceName: "Reparación de grifos",
				Cost:        30,
				CostType:    domain.CostTypeHour,
				WorkOnsite:  true,
			},
		},
		CoverageArea: domain.CoverageAreaDTO{
			Locations: []domain.LocationDTO{
				{Department: "Lima", Province: "Lima", District: "Miraflores"},
			},
		},
		Availability: domain.AvailabilityDTO{
			Days: []domain.DayScheduleDTO{
				{Weekday: "monday", ShiftType: "full_day"},
				{Weekday: "saturday", ShiftType: "morning", StartTime: strPtr("09:00"), EndTime: strPtr("13:00")},
			},
		},
	}
}

func strPtr(s string) *string {
	return &s
}

func TestServiceProfileService_Sync_CreatesWhenNoActiveServices(t *testing.T) {
	svc, repo, professionalRepo, categoryRepo := newProfileService(t)
	ctx := context.Background()

	professionalRepo.On("GetByID", ctx, int64(7)).Return(&domain.Professional{ID: 7}, nil)
	categoryRepo.On("Exists", ctx, int64(1)).Return(true, nil)
	categoryRepo.On("Exists", ctx, int64(2)).Return(true, nil)
	repo.On("SyncServices", ctx, int64(7), mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.ServiceProfile{ProfessionalID: 7}, true, nil)

	result, err := svc.Sync(ctx, 7, validSyncDTO())

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, int64(7), result.ProfessionalID)
	repo.AssertCalled(t, "SyncServices", ctx, int64(7), mock.Anything, mock.Anything, mock.Anything)
}

func TestServiceProfileService_Sync_UpdatesWhenServicesExist(t *testing.T) {
	svc, repo, professionalRepo, categoryRepo := newProfileService(t)
	ctx := context.Background()

	professionalRepo.On("GetByID", ctx, int64(7)).Return(&domain.Professional{ID: 7}, nil)
	categoryRepo.On("Exists", ctx, mock.Anything).Return(true, nil)
	repo.On("SyncServices", ctx, int64(7), mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.ServiceProfile{ProfessionalID: 7}, false, nil)

	result, err := svc.Sync(ctx, 7, validSyncDTO())

	require.NoError(t, err)
	assert.False(t, result.Created)
}

// Флаг created в результате отражает решение репозитория, принятое под
// блокировкой, а не состояние, которое сервис видел до транзакции.
func TestServiceProfileService_Sync_CreatedFlagComesFromRepository(t *testing.T) {
	svc, repo, professionalRepo, categoryRepo := newProfileService(t)
	ctx := context.Background()

	professionalRepo.On("GetByID", ctx, int64(7)).Return(&domain.Professional{ID: 7}, nil)
	categoryRepo.On("Exists", ctx, mock.Anything).Return(true, nil)
	repo.On("HasActiveServices", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("SyncServices", ctx, int64(7), mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.ServiceProfile{ProfessionalID: 7}, false, nil)

	result, err := svc.Sync(ctx, 7, validSyncDTO())

	require.NoError(t, err)
	assert.False(t, result.Created)
	repo.AssertNotCalled(t, "HasActiveServices", mock.Anything, mock.Anything)
}

func TestServiceProfileService_Sync_PromotesFirstSpecialtyWhenNoPrincipal(t *testing.T) {
	svc, repo, professionalRepo, categoryRepo := newProfileService(t)
	ctx := context.Background()

	dto := validSyncDTO()
	for i := range dto.Specialties {
		dto.Specialties[i].IsPrincipal = false
	}

	professionalRepo.On("GetByID", ctx, int64(7)).Return(&domain.Professional{ID: 7}, nil)
	categoryRepo.On("Exists", ctx, mock.Anything).Return(true, nil)
	repo.On("SyncServices", ctx, int64(7), mock.MatchedBy(func(specialties []domain.Specialty) bool {
		return len(specialties) == 2 && specialties[0].IsPrincipal && !specialties[1].IsPrincipal
	}), mock.Anything, mock.Anything).Return(&domain.ServiceProfile{ProfessionalID: 7}, true, nil)

	_, err := svc.Sync(ctx, 7, dto)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestServiceProfileService_Sync_AppliesFullDayDefaults(t *testing.T) {
	svc, repo, professionalRepo, categoryRepo := newProfileService(t)
	ctx := context.Background()

	professionalRepo.On("GetByID", ctx, int64(7)).Return(&domain.Professional{ID: 7}, nil)
	categoryRepo.On("Exists", ctx, mock.Anything).Return(true, nil)
	repo.On("SyncServices", ctx, int64(7), mock.Anything, mock.Anything, mock.MatchedBy(func(availability domain.AvailabilitySchedule) bool {
		day := availability.Days[0]
		return day.Weekday == domain.WeekdayMonday &&
			day.StartTime != nil && *day.StartTime == domain.FullDayDefaultStart &&
			day.EndTime != nil && *day.EndTime == domain.FullDayDefaultEnd
	})).Return(&domain.ServiceProfile{ProfessionalID: 7}, true, nil)

	_, err := svc.Sync(ctx, 7, validSyncDTO())

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestServiceProfileService_Sync_NormalizesWeekdayCase(t *testing.T) {
	svc, repo, professionalRepo, categoryRepo := newProfileService(t)
	ctx := context.Background()

	dto := validSyncDTO()
	dto.Availability.Days[0].Weekday = "  MONDAY "

	professionalRepo.On("GetByID", ctx, int64(7)).Return(&domain.Professional{ID: 7}, nil)
	categoryRepo.On("Exists", ctx, mock.Anything).Return(true, nil)
	repo.On("SyncServices", ctx, int64(7), mock.Anything, mock.Anything, mock.MatchedBy(func(availability domain.AvailabilitySchedule) bool {
		return availability.Days[0].Weekday == domain.WeekdayMonday
	})).Return(&domain.ServiceProfile{ProfessionalID: 7}, true, nil)

	_, err := svc.Sync(ctx, 7, dto)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestServiceProfileService_Sync_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(dto *domain.SyncServicesDTO)
	}{
		{
			name: "без специальностей",
			mutate: func(dto *domain.SyncServicesDTO) {
				dto.Specialties = nil
			},
		},
		{
			name: "больше трех специальностей",
			mutate: func(dto *domain.SyncServicesDTO) {
				base := dto.Specialties[0]
				dto.Specialties = nil
				for i := int64(0); i < 4; i++ {
					specialty := base
					specialty.CategoryID = i + 1
					specialty.IsPrincipal = i == 0
					dto.Specialties = append(dto.Specialties, specialty)
				}
			},
		},
		{
			name: "повторяющаяся категория",
			mutate: func(dto *domain.SyncServicesDTO) {
				dto.Specialties[1].CategoryID = dto.Specialties[0].CategoryID
			},
		},
		{
			name: "повторяющийся ID специальности",
			mutate: func(dto *domain.SyncServicesDTO) {
				dto.Specialties[0].ID = 7
				dto.Specialties[1].ID = 7
			},
		},
		{
			name: "две основные специальности",
			mutate: func(dto *domain.SyncServicesDTO) {
				dto.Specialties[1].IsPrincipal = true
			},
		},
		{
			name: "нет формата работы",
			mutate: func(dto *domain.SyncServicesDTO) {
				dto.Specialties[0].WorkOnsite = false
				dto.Specialties[0].WorkRemote = false
			},
		},
		{
			name: "нулевая стоимость",
			mutate: func(dto *domain.SyncServicesDTO) {
				dto.Specialties[0].Cost = 0
			},
		},
		{
			name: "недопустимый тип стоимости",
			mutate: func(dto *domain.SyncServicesDTO) {
				dto.Specialties[0].CostType = "week"
			},
		},
		{
			name: "пустое название услуги",
			mutate: func(dto *domain.SyncServicesDTO) {
				dto.Specialties[0].ServiceName = ""
			},
		},
		{
			name: "нет локаций без флага nationwide",
			mutate: func(dto *domain.SyncServicesDTO) {
				dto.CoverageArea.Locations = nil
			},
		},
		{
			name: "больше десяти локаций",
			mutate: func(dto *domain.SyncServicesDTO) {
				dto.CoverageArea.Locations = nil
				for i := 0; i < 11; i++ {
					dto.CoverageArea.Locations = append(dto.CoverageArea.Locations, domain.LocationDTO{Department: "Lima"})
				}
			},
		},
		{
			name: "локация без департамента",
			mutate: func(dto *domain.SyncServicesDTO) {
				dto.CoverageArea.Locations[0].Department = ""
			},
		},
		{
			name: "нет дней доступности",
			mutate: func(dto *domain.SyncServicesDTO) {
				dto.Availability.Days = nil
			},
		},
		{
			name: "недопустимый день недели",
			mutate: func(dto *domain.SyncServicesDTO) {
				dto.Availability.Days[0].Weekday = "someday"
			},
		},
		{
			name: "повторяющийся день недели",
			mutate: func(dto *domain.SyncServicesDTO) {
				dto.Availability.Days[1].Weekday = dto.Availability.Days[0].Weekday
			},
		},
		{
			name: "недопустимый тип смены",
			mutate: func(dto *domain.SyncServicesDTO) {
				dto.Availability.Days[0].ShiftType = "night"
			},
		},
		{
			name: "смена без времени",
			mutate: func(dto *domain.SyncServicesDTO) {
				dto.Availability.Days[1].StartTime = nil
			},
		},
		{
			name: "окончание раньше начала",
			mutate: func(dto *domain.SyncServicesDTO) {
				dto.Availability.Days[1].StartTime = strPtr("14:00")
				dto.Availability.Days[1].EndTime = strPtr("09:00")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, professionalRepo, categoryRepo := newProfileService(t)
			ctx := context.Background()

			professionalRepo.On("GetByID", ctx, int64(7)).Return(&domain.Professional{ID: 7}, nil)
			categoryRepo.On("Exists", ctx, mock.Anything).Return(true, nil)

			dto := validSyncDTO()
			tt.mutate(&dto)

			_, err := svc.Sync(ctx, 7, dto)

			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err), "ожидалась ошибка валидации, получено: %v", err)
			repo.AssertNotCalled(t, "SyncServices", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestServiceProfileService_Sync_NationwideSkipsLocations(t *testing.T) {
	svc, repo, professionalRepo, categoryRepo := newProfileService(t)
	ctx := context.Background()

	dto := validSyncDTO()
	dto.CoverageArea = domain.CoverageAreaDTO{Nationwide: true}

	professionalRepo.On("GetByID", ctx, int64(7)).Return(&domain.Professional{ID: 7}, nil)
	categoryRepo.On("Exists", ctx, mock.Anything).Return(true, nil)
	repo.On("SyncServices", ctx, int64(7), mock.Anything, mock.MatchedBy(func(area domain.CoverageArea) bool {
		return area.Nationwide && len(area.Locations) == 0
	}), mock.Anything).Return(&domain.ServiceProfile{ProfessionalID: 7}, true, nil)

	_, err := svc.Sync(ctx, 7, dto)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestServiceProfileService_Sync_UnknownCategory(t *testing.T) {
	svc, repo, professionalRepo, categoryRepo := newProfileService(t)
	ctx := context.Background()

	professionalRepo.On("GetByID", ctx, int64(7)).Return(&domain.Professional{ID: 7}, nil)
	categoryRepo.On("Exists", ctx, int64(1)).Return(false, nil)

	_, err := svc.Sync(ctx, 7, validSyncDTO())

	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
	repo.AssertNotCalled(t, "SyncServices", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestServiceProfileService_Sync_ProfessionalNotFound(t *testing.T) {
	svc, _, professionalRepo, _ := newProfileService(t)
	ctx := context.Background()

	professionalRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrProfessionalNotFound)

	_, err := svc.Sync(ctx, 99, validSyncDTO())

	require.ErrorIs(t, err, domain.ErrProfessionalNotFound)
}

func TestServiceProfileService_Get_NotConfigured(t *testing.T) {
	svc, repo, professionalRepo, _ := newProfileService(t)
	ctx := context.Background()

	professionalRepo.On("GetByID", ctx, int64(7)).Return(&domain.Professional{ID: 7}, nil)
	repo.On("GetByProfessionalID", ctx, int64(7)).Return(nil, domain.ErrServicesNotConfigured)

	_, err := svc.Get(ctx, 7)

	require.ErrorIs(t, err, domain.ErrServicesNotConfigured)
}

func TestServiceProfileService_Remove_NotConfigured(t *testing.T) {
	svc, repo, professionalRepo, _ := newProfileService(t)
	ctx := context.Background()

	professionalRepo.On("GetByID", ctx, int64(7)).Return(&domain.Professional{ID: 7}, nil)
	repo.On("HasActiveServices", ctx, int64(7)).Return(false, nil)

	err := svc.Remove(ctx, 7)

	require.ErrorIs(t, err, domain.ErrServicesNotConfigured)
	repo.AssertNotCalled(t, "DeleteServices", mock.Anything, mock.Anything)
}

func TestServiceProfileService_AddSpecialty_LimitReached(t *testing.T) {
	svc, repo, professionalRepo, _ := newProfileService(t)
	ctx := context.Background()

	professionalRepo.On("GetByID", ctx, int64(7)).Return(&domain.Professional{ID: 7}, nil)
	repo.On("CountActiveSpecialties", ctx, int64(7)).Return(domain.MaxSpecialties, nil)

	_, err := svc.AddSpecialty(ctx, 7, domain.AddSpecialtyDTO{
		CategoryID:  1,
		ServiceName: "Pintado de fachadas",
		Cost:        100,
		CostType:    domain.CostTypeDay,
		WorkOnsite:  true,
	})

	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	repo.AssertNotCalled(t, "AddSpecialty", mock.Anything, mock.Anything)
}

func TestServiceProfileService_AddSpecialty_DuplicateCategory(t *testing.T) {
	svc, repo, professionalRepo, categoryRepo := newProfileService(t)
	ctx := context.Background()

	professionalRepo.On("GetByID", ctx, int64(7)).Return(&domain.Professional{ID: 7}, nil)
	repo.On("CountActiveSpecialties", ctx, int64(7)).Return(1, nil)
	categoryRepo.On("Exists", ctx, int64(1)).Return(true, nil)
	repo.On("HasSpecialtyWithCategory", ctx, int64(7), int64(1)).Return(true, nil)

	_, err := svc.AddSpecialty(ctx, 7, domain.AddSpecialtyDTO{
		CategoryID:  1,
		ServiceName: "Pintado de fachadas",
		Cost:        100,
		CostType:    domain.CostTypeDay,
		WorkOnsite:  true,
	})

	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	repo.AssertNotCalled(t, "AddSpecialty", mock.Anything, mock.Anything)
}

func TestServiceProfileService_RemoveSpecialty_PromotesNextPrincipal(t *testing.T) {
	svc, repo, _, _ := newProfileService(t)
	ctx := context.Background()

	specialties := []domain.Specialty{
		{ID: 10, ProfessionalID: 7, IsPrincipal: true},
		{ID: 11, ProfessionalID: 7},
	}

	repo.On("ListSpecialties", ctx, int64(7)).Return(specialties, nil)
	repo.On("DeactivateSpecialty", ctx, int64(7), int64(10)).Return(nil)
	repo.On("MarkPrincipal", ctx, int64(7), int64(11)).Return(nil)

	err := svc.RemoveSpecialty(ctx, 7, 10)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestServiceProfileService_RemoveSpecialty_NotFound(t *testing.T) {
	svc, repo, _, _ := newProfileService(t)
	ctx := context.Background()

	repo.On("ListSpecialties", ctx, int64(7)).Return([]domain.Specialty{{ID: 10, ProfessionalID: 7}}, nil)

	err := svc.RemoveSpecialty(ctx, 7, 99)

	require.ErrorIs(t, err, domain.ErrSpecialtyNotFound)
	repo.AssertNotCalled(t, "DeactivateSpecialty", mock.Anything, mock.Anything, mock.Anything)
}
