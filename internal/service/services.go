package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"conpro/internal/domain"
	"conpro/internal/repository"
)

type ServiceProfileServiceImpl struct {
	repo             repository.ServiceProfileRepository
	professionalRepo repository.ProfessionalRepository
	categoryRepo     repository.CategoryRepository
	logger           *zap.Logger
}

func NewServiceProfileService(
	repo repository.ServiceProfileRepository,
	professionalRepo repository.ProfessionalRepository,
	categoryRepo repository.CategoryRepository,
	logger *zap.Logger,
) *ServiceProfileServiceImpl {
	return &ServiceProfileServiceImpl{
		repo:             repo,
		professionalRepo: professionalRepo,
		categoryRepo:     categoryRepo,
		logger:           logger,
	}
}

// Sync атомарно сохраняет полную конфигурацию услуг профессионала.
// Вся валидация проходит до первой записи: либо применяется весь
// набор изменений, либо ни одного.
func (s *ServiceProfileServiceImpl) Sync(ctx context.Context, professionalID int64, dto domain.SyncServicesDTO) (*domain.SyncResult, error) {
	if _, err := s.professionalRepo.GetByID(ctx, professionalID); err != nil {
		return nil, err
	}

	specialties, err := normalizeSpecialties(dto.Specialties)
	if err != nil {
		return nil, err
	}

	for _, specialty := range specialties {
		exists, err := s.categoryRepo.Exists(ctx, specialty.CategoryID)
		if err != nil {
			s.logger.Error("ошибка проверки категории", zap.Int64("categoryId", specialty.CategoryID), zap.Error(err))
			return nil, err
		}
		if !exists {
			return nil, domain.ErrCategoryNotFound
		}
	}

	area, err := normalizeCoverageArea(dto.CoverageArea)
	if err != nil {
		return nil, err
	}

	availability, err := normalizeAvailability(dto.Availability)
	if err != nil {
		return nil, err
	}

	// Создаётся конфигурация или обновляется, решает репозиторий под
	// блокировкой строки профессионала.
	_, created, err := s.repo.SyncServices(ctx, professionalID, specialties, area, availability)
	if err != nil {
		s.logger.Error("ошибка сохранения конфигурации услуг", zap.Int64("professionalId", professionalID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("конфигурация услуг сохранена",
		zap.Int64("professionalId", professionalID),
		zap.Int("specialties", len(specialties)),
		zap.Bool("created", created),
	)

	return &domain.SyncResult{
		ProfessionalID: professionalID,
		Created:        created,
	}, nil
}

func (s *ServiceProfileServiceImpl) Get(ctx context.Context, professionalID int64) (*domain.ServiceProfile, error) {
	if _, err := s.professionalRepo.GetByID(ctx, professionalID); err != nil {
		return nil, err
	}

	return s.repo.GetByProfessionalID(ctx, professionalID)
}

func (s *ServiceProfileServiceImpl) Remove(ctx context.Context, professionalID int64) error {
	if _, err := s.professionalRepo.GetByID(ctx, professionalID); err != nil {
		return err
	}

	hasServices, err := s.repo.HasActiveServices(ctx, professionalID)
	if err != nil {
		return err
	}
	if !hasServices {
		return domain.ErrServicesNotConfigured
	}

	err = s.repo.DeleteServices(ctx, professionalID)
	if err != nil {
		s.logger.Error("ошибка удаления конфигурации услуг", zap.Int64("professionalId", professionalID), zap.Error(err))
		return err
	}

	s.logger.Info("конфигурация услуг удалена", zap.Int64("professionalId", professionalID))

	return nil
}

func (s *ServiceProfileServiceImpl) AddSpecialty(ctx context.Context, professionalID int64, dto domain.AddSpecialtyDTO) (int64, error) {
	if _, err := s.professionalRepo.GetByID(ctx, professionalID); err != nil {
		return 0, err
	}

	specialty := domain.Specialty{
		ProfessionalID:    professionalID,
		CategoryID:        dto.CategoryID,
		ServiceName:       dto.ServiceName,
		Description:       dto.Description,
		IncludesMaterials: dto.IncludesMaterials,
		Cost:              dto.Cost,
		CostType:          dto.CostType,
		IsPrincipal:       dto.IsPrincipal,
		WorkRemote:        dto.WorkRemote,
		WorkOnsite:        dto.WorkOnsite,
	}

	if err := validateSpecialty(specialty); err != nil {
		return 0, err
	}

	count, err := s.repo.CountActiveSpecialties(ctx, professionalID)
	if err != nil {
		return 0, err
	}
	if count >= domain.MaxSpecialties {
		return 0, domain.NewValidationError(fmt.Sprintf("нельзя добавить больше %d специальностей", domain.MaxSpecialties))
	}

	exists, err := s.categoryRepo.Exists(ctx, dto.CategoryID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, domain.ErrCategoryNotFound
	}

	duplicate, err := s.repo.HasSpecialtyWithCategory(ctx, professionalID, dto.CategoryID)
	if err != nil {
		return 0, err
	}
	if duplicate {
		return 0, domain.NewValidationError("специальность с такой категорией уже есть")
	}

	order := count + 1
	specialty.SortOrder = &order

	id, err := s.repo.AddSpecialty(ctx, specialty)
	if err != nil {
		s.logger.Error("ошибка добавления специальности", zap.Int64("professionalId", professionalID), zap.Error(err))
		return 0, err
	}

	if dto.IsPrincipal {
		if err := s.repo.MarkPrincipal(ctx, professionalID, id); err != nil {
			s.logger.Warn("ошибка установки основной специальности", zap.Int64("specialtyId", id), zap.Error(err))
		}
	}

	return id, nil
}

func (s *ServiceProfileServiceImpl) RemoveSpecialty(ctx context.Context, professionalID, specialtyID int64) error {
	specialties, err := s.repo.ListSpecialties(ctx, professionalID)
	if err != nil {
		return err
	}

	var removed *domain.Specialty
	for i := range specialties {
		if specialties[i].ID == specialtyID {
			removed = &specialties[i]
			break
		}
	}
	if removed == nil {
		return domain.ErrSpecialtyNotFound
	}

	if err := s.repo.DeactivateSpecialty(ctx, professionalID, specialtyID); err != nil {
		s.logger.Error("ошибка деактивации специальности", zap.Int64("specialtyId", specialtyID), zap.Error(err))
		return err
	}

	// Основная специальность не может исчезнуть, пока остаются активные:
	// первая из оставшихся занимает её место.
	if removed.IsPrincipal {
		for _, specialty := range specialties {
			if specialty.ID == specialtyID {
				continue
			}
			if err := s.repo.MarkPrincipal(ctx, professionalID, specialty.ID); err != nil {
				s.logger.Warn("ошибка передачи основной специальности", zap.Int64("specialtyId", specialty.ID), zap.Error(err))
			}
			break
		}
	}

	return nil
}

func (s *ServiceProfileServiceImpl) MarkPrincipal(ctx context.Context, professionalID, specialtyID int64) error {
	err := s.repo.MarkPrincipal(ctx, professionalID, specialtyID)
	if err != nil {
		s.logger.Error("ошибка установки основной специальности",
			zap.Int64("professionalId", professionalID),
			zap.Int64("specialtyId", specialtyID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (s *ServiceProfileServiceImpl) ListSpecialties(ctx context.Context, professionalID int64) ([]domain.Specialty, error) {
	return s.repo.ListSpecialties(ctx, professionalID)
}

// normalizeSpecialties проверяет входящий список и приводит его к
// каноническому виду: ровно одна основная специальность, без
// повторяющихся категорий, от одной до трёх записей.
func normalizeSpecialties(dtos []domain.SpecialtyDTO) ([]domain.Specialty, error) {
	if len(dtos) == 0 {
		return nil, domain.NewValidationError("нужна хотя бы одна специальность")
	}
	if len(dtos) > domain.MaxSpecialties {
		return nil, domain.NewValidationError(fmt.Sprintf("допускается не больше %d специальностей", domain.MaxSpecialties))
	}

	specialties := make([]domain.Specialty, 0, len(dtos))
	seenIDs := make(map[int64]bool)
	seenCategories := make(map[int64]bool)
	principalCount := 0

	for _, dto := range dtos {
		specialty := domain.Specialty{
			ID:                dto.ID,
			CategoryID:        dto.CategoryID,
			ServiceName:       dto.ServiceName,
			Description:       dto.Description,
			IncludesMaterials: dto.IncludesMaterials,
			Cost:              dto.Cost,
			CostType:          dto.CostType,
			IsPrincipal:       dto.IsPrincipal,
			WorkRemote:        dto.WorkRemote,
			WorkOnsite:        dto.WorkOnsite,
		}

		if err := validateSpecialty(specialty); err != nil {
			return nil, err
		}

		// Две записи с одним ID схлопнулись бы в одну строку при сверке.
		if dto.ID > 0 {
			if seenIDs[dto.ID] {
				return nil, domain.NewValidationError("ID специальностей не должны повторяться")
			}
			seenIDs[dto.ID] = true
		}

		if seenCategories[dto.CategoryID] {
			return nil, domain.NewValidationError("категории специальностей не должны повторяться")
		}
		seenCategories[dto.CategoryID] = true

		if dto.IsPrincipal {
			principalCount++
		}

		specialties = append(specialties, specialty)
	}

	if principalCount > 1 {
		return nil, domain.NewValidationError("основной может быть только одна специальность")
	}
	if principalCount == 0 {
		specialties[0].IsPrincipal = true
	}

	return specialties, nil
}

func validateSpecialty(specialty domain.Specialty) error {
	if specialty.CategoryID <= 0 {
		return domain.NewValidationError("не указана категория специальности")
	}
	if specialty.ServiceName == "" {
		return domain.NewValidationError("не указано название услуги")
	}
	if specialty.Cost <= 0 {
		return domain.NewValidationError("стоимость услуги должна быть больше нуля")
	}
	if !specialty.CostType.IsValid() {
		return domain.NewValidationError("недопустимый тип стоимости")
	}
	if !specialty.WorkRemote && !specialty.WorkOnsite {
		return domain.NewValidationError("нужно указать хотя бы один формат работы")
	}
	return nil
}

// normalizeCoverageArea проверяет зону покрытия. Флаг "вся страна"
// делает список локаций лишним, иначе требуется от одной до десяти
// локаций с заполненным департаментом.
func normalizeCoverageArea(dto domain.CoverageAreaDTO) (domain.CoverageArea, error) {
	area := domain.CoverageArea{Nationwide: dto.Nationwide}

	if dto.Nationwide {
		return area, nil
	}

	if len(dto.Locations) == 0 {
		return area, domain.NewValidationError("нужна хотя бы одна локация или флаг покрытия всей страны")
	}
	if len(dto.Locations) > domain.MaxLocations {
		return area, domain.NewValidationError(fmt.Sprintf("допускается не больше %d локаций", domain.MaxLocations))
	}

	for _, location := range dto.Locations {
		if location.Department == "" {
			return area, domain.NewValidationError("не указан департамент локации")
		}
		area.Locations = append(area.Locations, domain.Location{
			Department: location.Department,
			Province:   location.Province,
			District:   location.District,
		})
	}

	return area, nil
}

// normalizeAvailability проверяет расписание доступности. Дни недели
// приводятся к каноническому виду, смена "весь день" без явных границ
// получает интервал по умолчанию.
func normalizeAvailability(dto domain.AvailabilityDTO) (domain.AvailabilitySchedule, error) {
	schedule := domain.AvailabilitySchedule{AlwaysAvailable: dto.AlwaysAvailable}

	if dto.AlwaysAvailable {
		return schedule, nil
	}

	if len(dto.Days) == 0 {
		return schedule, domain.NewValidationError("нужен хотя бы один день доступности")
	}

	seenWeekdays := make(map[domain.Weekday]bool)
	for _, dayDTO := range dto.Days {
		weekday := domain.NormalizeWeekday(dayDTO.Weekday)
		if !weekday.IsValid() {
			return schedule, domain.NewValidationError("недопустимый день недели: " + dayDTO.Weekday)
		}
		if seenWeekdays[weekday] {
			return schedule, domain.NewValidationError("дни недели не должны повторяться")
		}
		seenWeekdays[weekday] = true

		shiftType := domain.ShiftType(dayDTO.ShiftType)
		if !shiftType.IsValid() {
			return schedule, domain.NewValidationError("недопустимый тип смены: " + dayDTO.ShiftType)
		}

		day := domain.DaySchedule{
			Weekday:   weekday,
			ShiftType: shiftType,
			StartTime: dayDTO.StartTime,
			EndTime:   dayDTO.EndTime,
		}

		if shiftType == domain.ShiftFullDay && day.StartTime == nil && day.EndTime == nil {
			start := domain.FullDayDefaultStart
			end := domain.FullDayDefaultEnd
			day.StartTime = &start
			day.EndTime = &end
		}

		if day.StartTime == nil || day.EndTime == nil {
			return schedule, domain.NewValidationError("для смены нужно указать время начала и окончания")
		}
		if err := validateTimeRange(*day.StartTime, *day.EndTime); err != nil {
			return schedule, err
		}

		schedule.Days = append(schedule.Days, day)
	}

	return schedule, nil
}

func validateTimeRange(start, end string) error {
	startTime, err := time.Parse("15:04", start)
	if err != nil {
		return domain.NewValidationError("недопустимое время начала: " + start)
	}

	endTime, err := time.Parse("15:04", end)
	if err != nil {
		return domain.NewValidationError("недопустимое время окончания: " + end)
	}

	if !endTime.After(startTime) {
		return domain.NewValidationError("время окончания должно быть позже времени начала")
	}

	return nil
}
