package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"conpro/internal/domain"
)

type ServiceProfileRepo struct {
	db *pgxpool.Pool
}

func NewServiceProfileRepository(db *pgxpool.Pool) *ServiceProfileRepo {
	return &ServiceProfileRepo{
		db: db,
	}
}

func (r *ServiceProfileRepo) HasActiveServices(ctx context.Context, professionalID int64) (bool, error) {
	query := `SELECT COUNT(*) FROM professional_specialties WHERE professional_id = $1 AND is_active = true`

	var count int
	err := r.db.QueryRow(ctx, query, professionalID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("ошибка проверки наличия услуг: %w", err)
	}

	return count > 0, nil
}

func (r *ServiceProfileRepo) GetByProfessionalID(ctx context.Context, professionalID int64) (*domain.ServiceProfile, error) {
	specialties, err := r.ListSpecialties(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	if len(specialties) == 0 {
		return nil, domain.ErrServicesNotConfigured
	}

	area, err := r.getCoverageArea(ctx, professionalID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения зоны покрытия: %w", err)
	}

	availability, err := r.getAvailability(ctx, professionalID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения расписания: %w", err)
	}

	return &domain.ServiceProfile{
		ProfessionalID: professionalID,
		Specialties:    specialties,
		CoverageArea:   area,
		Availability:   availability,
	}, nil
}

// SyncServices сохраняет полную конфигурацию услуг в одной транзакции.
// Наличие активных специальностей проверяется уже после блокировки строки
// профессионала: если параллельная синхронизация успела создать записи,
// эта пойдёт по пути сверки, а не повторного создания.
func (r *ServiceProfileRepo) SyncServices(
	ctx context.Context,
	professionalID int64,
	specialties []domain.Specialty,
	area domain.CoverageArea,
	availability domain.AvailabilitySchedule,
) (*domain.ServiceProfile, bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockProfessional(ctx, tx, professionalID); err != nil {
		return nil, false, err
	}

	countQuery := `SELECT COUNT(*) FROM professional_specialties WHERE professional_id = $1 AND is_active = true`
	var activeCount int
	if err := tx.QueryRow(ctx, countQuery, professionalID).Scan(&activeCount); err != nil {
		return nil, false, fmt.Errorf("ошибка проверки наличия услуг: %w", err)
	}
	created := activeCount == 0

	now := time.Now()
	if created {
		if err := insertSpecialties(ctx, tx, professionalID, specialties, now); err != nil {
			return nil, false, err
		}
	} else {
		if err := reconcileSpecialties(ctx, tx, professionalID, specialties, now); err != nil {
			return nil, false, err
		}
	}

	if err := replaceCoverageArea(ctx, tx, professionalID, &area, now); err != nil {
		return nil, false, fmt.Errorf("ошибка сохранения зоны покрытия: %w", err)
	}

	if err := replaceAvailability(ctx, tx, professionalID, &availability, now); err != nil {
		return nil, false, fmt.Errorf("ошибка сохранения расписания: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	return &domain.ServiceProfile{
		ProfessionalID: professionalID,
		Specialties:    specialties,
		CoverageArea:   &area,
		Availability:   &availability,
	}, created, nil
}

func (r *ServiceProfileRepo) DeleteServices(ctx context.Context, professionalID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockProfessional(ctx, tx, professionalID); err != nil {
		return err
	}

	deactivate := `
		UPDATE professional_specialties
		SET is_active = false, sort_order = NULL, updated_at = $1
		WHERE professional_id = $2 AND is_active = true
	`
	if _, err := tx.Exec(ctx, deactivate, time.Now(), professionalID); err != nil {
		return fmt.Errorf("ошибка деактивации специальностей: %w", err)
	}

	if err := deleteCoverageArea(ctx, tx, professionalID); err != nil {
		return fmt.Errorf("ошибка удаления зоны покрытия: %w", err)
	}

	if err := deleteAvailability(ctx, tx, professionalID); err != nil {
		return fmt.Errorf("ошибка удаления расписания: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	return nil
}

func (r *ServiceProfileRepo) AddSpecialty(ctx context.Context, specialty domain.Specialty) (int64, error) {
	id, err := insertSpecialty(ctx, r.db, specialty, time.Now())
	if err != nil {
		return 0, fmt.Errorf("ошибка добавления специальности: %w", err)
	}

	return id, nil
}

func (r *ServiceProfileRepo) DeactivateSpecialty(ctx context.Context, professionalID, specialtyID int64) error {
	query := `
		UPDATE professional_specialties
		SET is_active = false, sort_order = NULL, updated_at = $1
		WHERE id = $2 AND professional_id = $3 AND is_active = true
	`

	result, err := r.db.Exec(ctx, query, time.Now(), specialtyID, professionalID)
	if err != nil {
		return fmt.Errorf("ошибка деактивации специальности: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrSpecialtyNotFound
	}

	return nil
}

func (r *ServiceProfileRepo) MarkPrincipal(ctx context.Context, professionalID, specialtyID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	clear := `
		UPDATE professional_specialties
		SET is_principal = false, updated_at = $1
		WHERE professional_id = $2 AND is_principal = true
	`
	if _, err := tx.Exec(ctx, clear, now, professionalID); err != nil {
		return fmt.Errorf("ошибка сброса основной специальности: %w", err)
	}

	mark := `
		UPDATE professional_specialties
		SET is_principal = true, updated_at = $1
		WHERE id = $2 AND professional_id = $3 AND is_active = true
	`
	result, err := tx.Exec(ctx, mark, now, specialtyID, professionalID)
	if err != nil {
		return fmt.Errorf("ошибка установки основной специальности: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrSpecialtyNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	return nil
}

func (r *ServiceProfileRepo) ListSpecialties(ctx context.Context, professionalID int64) ([]domain.Specialty, error) {
	query := `
		SELECT id, professional_id, category_id, service_name, description, includes_materials,
		       cost, cost_type, is_principal, sort_order, work_remote, work_onsite, is_active,
		       created_at, updated_at
		FROM professional_specialties
		WHERE professional_id = $1 AND is_active = true
		ORDER BY sort_order ASC
	`

	rows, err := r.db.Query(ctx, query, professionalID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения специальностей: %w", err)
	}
	defer rows.Close()

	specialties := make([]domain.Specialty, 0)
	for rows.Next() {
		var specialty domain.Specialty
		if err := rows.Scan(
			&specialty.ID,
			&specialty.ProfessionalID,
			&specialty.CategoryID,
			&specialty.ServiceName,
			&specialty.Description,
			&specialty.IncludesMaterials,
			&specialty.Cost,
			&specialty.CostType,
			&specialty.IsPrincipal,
			&specialty.SortOrder,
			&specialty.WorkRemote,
			&specialty.WorkOnsite,
			&specialty.IsActive,
			&specialty.CreatedAt,
			&specialty.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования специальности: %w", err)
		}
		specialties = append(specialties, specialty)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обработки результатов: %w", err)
	}

	return specialties, nil
}

func (r *ServiceProfileRepo) CountActiveSpecialties(ctx context.Context, professionalID int64) (int, error) {
	query := `SELECT COUNT(*) FROM professional_specialties WHERE professional_id = $1 AND is_active = true`

	var count int
	err := r.db.QueryRow(ctx, query, professionalID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчета специальностей: %w", err)
	}

	return count, nil
}

func (r *ServiceProfileRepo) HasSpecialtyWithCategory(ctx context.Context, professionalID, categoryID int64) (bool, error) {
	query := `
		SELECT COUNT(*) FROM professional_specialties
		WHERE professional_id = $1 AND category_id = $2 AND is_active = true
	`

	var count int
	err := r.db.QueryRow(ctx, query, professionalID, categoryID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("ошибка проверки категории: %w", err)
	}

	return count > 0, nil
}

func lockProfessional(ctx context.Context, tx pgx.Tx, professionalID int64) error {
	var id int64
	err := tx.QueryRow(ctx, `SELECT id FROM professionals WHERE id = $1 FOR UPDATE`, professionalID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrProfessionalNotFound
		}
		return fmt.Errorf("ошибка блокировки профессионала: %w", err)
	}

	return nil
}

// insertSpecialties вставляет весь входящий список заново: путь первой
// настройки, когда активных записей ещё нет. Пришедшие снаружи ID
// игнорируются, каждая запись получает новый ID из базы.
func insertSpecialties(ctx context.Context, tx pgx.Tx, professionalID int64, specialties []domain.Specialty, now time.Time) error {
	_, writes := planSpecialtySync(professionalID, specialties)

	for _, write := range writes {
		specialties[write.pos] = write.specialty

		id, err := insertSpecialty(ctx, tx, write.specialty, now)
		if err != nil {
			return fmt.Errorf("ошибка создания специальности: %w", err)
		}
		specialties[write.pos].ID = id
	}

	return nil
}

// reconcileSpecialties сверяет входящий список с активными записями:
// всё, чего нет во входящем наборе ID, деактивируется; записи с ID
// обновляются на месте, записи без ID вставляются заново.
func reconcileSpecialties(ctx context.Context, tx pgx.Tx, professionalID int64, specialties []domain.Specialty, now time.Time) error {
	keepIDs, writes := planSpecialtySync(professionalID, specialties)

	deactivate := `
		UPDATE professional_specialties
		SET is_active = false, sort_order = NULL, updated_at = $1
		WHERE professional_id = $2 AND is_active = true AND NOT (id = ANY($3))
	`
	if _, err := tx.Exec(ctx, deactivate, now, professionalID, keepIDs); err != nil {
		return fmt.Errorf("ошибка деактивации специальностей: %w", err)
	}

	for _, write := range writes {
		specialties[write.pos] = write.specialty

		if write.update {
			if err := updateSpecialtyInPlace(ctx, tx, write.specialty, now); err != nil {
				return err
			}
			continue
		}

		id, err := insertSpecialty(ctx, tx, write.specialty, now)
		if err != nil {
			return fmt.Errorf("ошибка создания специальности: %w", err)
		}
		specialties[write.pos].ID = id
	}

	return nil
}

// specialtyWrite — одна запись плана сверки: позиция во входящем списке,
// признак обновления на месте и подготовленная к записи специальность.
type specialtyWrite struct {
	pos       int
	update    bool
	specialty domain.Specialty
}

// planSpecialtySync готовит план записи входящего списка. Каждой записи
// назначается порядок по её позиции, записи с положительным ID сохраняют
// его и обновляются на месте, остальные вставляются заново. Первый
// результат — набор ID, которые переживают сверку: пустой срез означает,
// что ни одна текущая специальность не должна остаться активной.
func planSpecialtySync(professionalID int64, specialties []domain.Specialty) ([]int64, []specialtyWrite) {
	keepIDs := make([]int64, 0, len(specialties))
	writes := make([]specialtyWrite, 0, len(specialties))

	for i, specialty := range specialties {
		specialty.ProfessionalID = professionalID
		order := i + 1
		specialty.SortOrder = &order
		specialty.IsActive = true

		update := specialty.ID > 0
		if update {
			keepIDs = append(keepIDs, specialty.ID)
		}
		writes = append(writes, specialtyWrite{pos: i, update: update, specialty: specialty})
	}

	return keepIDs, writes
}

func updateSpecialtyInPlace(ctx context.Context, tx pgx.Tx, specialty domain.Specialty, now time.Time) error {
	query := `
		UPDATE professional_specialties
		SET category_id = $1, service_name = $2, description = $3, includes_materials = $4,
		    cost = $5, cost_type = $6, is_principal = $7, sort_order = $8,
		    work_remote = $9, work_onsite = $10, is_active = true, updated_at = $11
		WHERE id = $12 AND professional_id = $13
	`

	result, err := tx.Exec(ctx, query,
		specialty.CategoryID,
		specialty.ServiceName,
		specialty.Description,
		specialty.IncludesMaterials,
		specialty.Cost,
		specialty.CostType,
		specialty.IsPrincipal,
		specialty.SortOrder,
		specialty.WorkRemote,
		specialty.WorkOnsite,
		now,
		specialty.ID,
		specialty.ProfessionalID,
	)
	if err != nil {
		return fmt.Errorf("ошибка обновления специальности: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrSpecialtyNotFound
	}

	return nil
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func insertSpecialty(ctx context.Context, q rowQuerier, specialty domain.Specialty, now time.Time) (int64, error) {
	query := `
		INSERT INTO professional_specialties (professional_id, category_id, service_name, description,
			includes_materials, cost, cost_type, is_principal, sort_order, work_remote, work_onsite,
			is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, true, $12, $12)
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		specialty.ProfessionalID,
		specialty.CategoryID,
		specialty.ServiceName,
		specialty.Description,
		specialty.IncludesMaterials,
		specialty.Cost,
		specialty.CostType,
		specialty.IsPrincipal,
		specialty.SortOrder,
		specialty.WorkRemote,
		specialty.WorkOnsite,
		now,
	).Scan(&id)

	if err != nil {
		return 0, err
	}

	return id, nil
}

func replaceCoverageArea(ctx context.Context, tx pgx.Tx, professionalID int64, area *domain.CoverageArea, now time.Time) error {
	if err := deleteCoverageArea(ctx, tx, professionalID); err != nil {
		return err
	}

	insertArea := `
		INSERT INTO service_areas (professional_id, nationwide, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		RETURNING id
	`
	if err := tx.QueryRow(ctx, insertArea, professionalID, area.Nationwide, now).Scan(&area.ID); err != nil {
		return err
	}

	area.ProfessionalID = professionalID
	area.CreatedAt = now
	area.UpdatedAt = now

	if area.Nationwide {
		area.Locations = nil
		return nil
	}

	insertLocation := `
		INSERT INTO service_area_locations (area_id, department, province, district, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	for i := range area.Locations {
		area.Locations[i].AreaID = area.ID
		area.Locations[i].SortOrder = i + 1

		if err := tx.QueryRow(ctx, insertLocation,
			area.ID,
			area.Locations[i].Department,
			area.Locations[i].Province,
			area.Locations[i].District,
			area.Locations[i].SortOrder,
		).Scan(&area.Locations[i].ID); err != nil {
			return err
		}
	}

	return nil
}

func deleteCoverageArea(ctx context.Context, tx pgx.Tx, professionalID int64) error {
	deleteLocations := `
		DELETE FROM service_area_locations
		WHERE area_id IN (SELECT id FROM service_areas WHERE professional_id = $1)
	`
	if _, err := tx.Exec(ctx, deleteLocations, professionalID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM service_areas WHERE professional_id = $1`, professionalID); err != nil {
		return err
	}

	return nil
}

func replaceAvailability(ctx context.Context, tx pgx.Tx, professionalID int64, availability *domain.AvailabilitySchedule, now time.Time) error {
	if err := deleteAvailability(ctx, tx, professionalID); err != nil {
		return err
	}

	insertSchedule := `
		INSERT INTO availability_schedules (professional_id, always_available, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		RETURNING id
	`
	if err := tx.QueryRow(ctx, insertSchedule, professionalID, availability.AlwaysAvailable, now).Scan(&availability.ID); err != nil {
		return err
	}

	availability.ProfessionalID = professionalID
	availability.CreatedAt = now
	availability.UpdatedAt = now

	insertDay := `
		INSERT INTO availability_days (schedule_id, weekday, shift_type, start_time, end_time, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	for i := range availability.Days {
		availability.Days[i].ScheduleID = availability.ID
		availability.Days[i].SortOrder = i + 1

		if err := tx.QueryRow(ctx, insertDay,
			availability.ID,
			availability.Days[i].Weekday,
			availability.Days[i].ShiftType,
			availability.Days[i].StartTime,
			availability.Days[i].EndTime,
			availability.Days[i].SortOrder,
		).Scan(&availability.Days[i].ID); err != nil {
			return err
		}
	}

	return nil
}

func deleteAvailability(ctx context.Context, tx pgx.Tx, professionalID int64) error {
	deleteDays := `
		DELETE FROM availability_days
		WHERE schedule_id IN (SELECT id FROM availability_schedules WHERE professional_id = $1)
	`
	if _, err := tx.Exec(ctx, deleteDays, professionalID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM availability_schedules WHERE professional_id = $1`, professionalID); err != nil {
		return err
	}

	return nil
}

func (r *ServiceProfileRepo) getCoverageArea(ctx context.Context, professionalID int64) (*domain.CoverageArea, error) {
	query := `SELECT id, professional_id, nationwide, created_at, updated_at FROM service_areas WHERE professional_id = $1`

	var area domain.CoverageArea
	err := r.db.QueryRow(ctx, query, professionalID).Scan(
		&area.ID,
		&area.ProfessionalID,
		&area.Nationwide,
		&area.CreatedAt,
		&area.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.CoverageArea{ProfessionalID: professionalID}, nil
		}
		return nil, err
	}

	if area.Nationwide {
		return &area, nil
	}

	locationsQuery := `
		SELECT id, area_id, department, province, district, sort_order
		FROM service_area_locations
		WHERE area_id = $1
		ORDER BY sort_order ASC
	`
	rows, err := r.db.Query(ctx, locationsQuery, area.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var location domain.Location
		if err := rows.Scan(
			&location.ID,
			&location.AreaID,
			&location.Department,
			&location.Province,
			&location.District,
			&location.SortOrder,
		); err != nil {
			return nil, err
		}
		area.Locations = append(area.Locations, location)
	}

	return &area, rows.Err()
}

func (r *ServiceProfileRepo) getAvailability(ctx context.Context, professionalID int64) (*domain.AvailabilitySchedule, error) {
	query := `
		SELECT id, professional_id, always_available, created_at, updated_at
		FROM availability_schedules
		WHERE professional_id = $1
	`

	var schedule domain.AvailabilitySchedule
	err := r.db.QueryRow(ctx, query, professionalID).Scan(
		&schedule.ID,
		&schedule.ProfessionalID,
		&schedule.AlwaysAvailable,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.AvailabilitySchedule{ProfessionalID: professionalID}, nil
		}
		return nil, err
	}

	daysQuery := `
		SELECT id, schedule_id, weekday, shift_type, start_time, end_time, sort_order
		FROM availability_days
		WHERE schedule_id = $1
		ORDER BY sort_order ASC
	`
	rows, err := r.db.Query(ctx, daysQuery, schedule.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var day domain.DaySchedule
		if err := rows.Scan(
			&day.ID,
			&day.ScheduleID,
			&day.Weekday,
			&day.ShiftType,
			&day.StartTime,
			&day.EndTime,
			&day.SortOrder,
		); err != nil {
			return nil, err
		}
		schedule.Days = append(schedule.Days, day)
	}

	return &schedule, rows.Err()
}
