package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"conpro/internal/domain"
)

type ProfessionalRepo struct {
	db *pgxpool.Pool
}

func NewProfessionalRepository(db *pgxpool.Pool) *ProfessionalRepo {
	return &ProfessionalRepo{
		db: db,
	}
}

func (r *ProfessionalRepo) Create(ctx context.Context, userID int64, dto domain.CreateProfessionalDTO) (int64, error) {
	query := `
		INSERT INTO professionals (user_id, headline, bio, experience_years, is_verified, profile_photo_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, false, '', true, $5, $5)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err := r.db.QueryRow(ctx, query,
		userID,
		dto.Headline,
		dto.Bio,
		dto.ExperienceYears,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания профессионала: %w", err)
	}

	return id, nil
}

func (r *ProfessionalRepo) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	query := `
		SELECT p.id, p.user_id, p.headline, p.bio, p.experience_years, p.is_verified,
		       p.profile_photo_url, p.is_active, p.created_at, p.updated_at,
		       u.id, u.email, u.phone, u.first_name, u.last_name, u.role, u.is_active, u.created_at, u.updated_at
		FROM professionals p
		JOIN users u ON p.user_id = u.id
		WHERE p.id = $1
	`

	var professional domain.Professional
	var user domain.User

	err := r.db.QueryRow(ctx, query, id).Scan(
		&professional.ID,
		&professional.UserID,
		&professional.Headline,
		&professional.Bio,
		&professional.ExperienceYears,
		&professional.IsVerified,
		&professional.ProfilePhotoURL,
		&professional.IsActive,
		&professional.CreatedAt,
		&professional.UpdatedAt,
		&user.ID,
		&user.Email,
		&user.Phone,
		&user.FirstName,
		&user.LastName,
		&user.Role,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfessionalNotFound
		}
		return nil, fmt.Errorf("ошибка получения профессионала: %w", err)
	}

	professional.User = user

	professional.Specialties, err = r.getActiveSpecialties(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения специальностей: %w", err)
	}

	return &professional, nil
}

func (r *ProfessionalRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Professional, error) {
	query := `SELECT id FROM professionals WHERE user_id = $1 AND is_active = true`

	var professionalID int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&professionalID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfessionalNotFound
		}
		return nil, fmt.Errorf("ошибка получения ID профессионала: %w", err)
	}

	return r.GetByID(ctx, professionalID)
}

func (r *ProfessionalRepo) Update(ctx context.Context, id int64, dto domain.UpdateProfessionalDTO) error {
	var setClauses []string
	var args []interface{}
	argIndex := 1

	if dto.Headline != nil {
		setClauses = append(setClauses, fmt.Sprintf("headline = $%d", argIndex))
		args = append(args, *dto.Headline)
		argIndex++
	}

	if dto.Bio != nil {
		setClauses = append(setClauses, fmt.Sprintf("bio = $%d", argIndex))
		args = append(args, *dto.Bio)
		argIndex++
	}

	if dto.ExperienceYears != nil {
		setClauses = append(setClauses, fmt.Sprintf("experience_years = $%d", argIndex))
		args = append(args, *dto.ExperienceYears)
		argIndex++
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", argIndex))
	args = append(args, time.Now())
	argIndex++

	query := "UPDATE professionals SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", argIndex)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления профессионала: %w", err)
	}

	return nil
}

func (r *ProfessionalRepo) Delete(ctx context.Context, id int64) error {
	query := `UPDATE professionals SET is_active = false, updated_at = $1 WHERE id = $2`

	_, err := r.db.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка удаления профессионала: %w", err)
	}

	return nil
}

func (r *ProfessionalRepo) List(ctx context.Context, filter domain.ProfessionalFilter) ([]domain.Professional, error) {
	whereClause, args := buildProfessionalFilter(filter)

	query := `
		SELECT DISTINCT p.id, p.user_id, p.headline, p.bio, p.experience_years, p.is_verified,
		       p.profile_photo_url, p.is_active, p.created_at, p.updated_at,
		       u.id, u.email, u.phone, u.first_name, u.last_name, u.role, u.is_active, u.created_at, u.updated_at
		FROM professionals p
		JOIN users u ON p.user_id = u.id
	` + professionalFilterJoins(filter) + whereClause

	argIndex := len(args) + 1
	query += fmt.Sprintf(" ORDER BY p.id LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer rows.Close()

	professionals := make([]domain.Professional, 0)
	for rows.Next() {
		var professional domain.Professional
		var user domain.User

		err := rows.Scan(
			&professional.ID,
			&professional.UserID,
			&professional.Headline,
			&professional.Bio,
			&professional.ExperienceYears,
			&professional.IsVerified,
			&professional.ProfilePhotoURL,
			&professional.IsActive,
			&professional.CreatedAt,
			&professional.UpdatedAt,
			&user.ID,
			&user.Email,
			&user.Phone,
			&user.FirstName,
			&user.LastName,
			&user.Role,
			&user.IsActive,
			&user.CreatedAt,
			&user.UpdatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки: %w", err)
		}

		professional.User = user
		professionals = append(professionals, professional)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обработки результатов: %w", err)
	}

	for i, professional := range professionals {
		specialties, err := r.getActiveSpecialties(ctx, professional.ID)
		if err != nil {
			return nil, fmt.Errorf("ошибка получения специальностей профессионала %d: %w", professional.ID, err)
		}
		professionals[i].Specialties = specialties
	}

	return professionals, nil
}

func (r *ProfessionalRepo) CountByFilter(ctx context.Context, filter domain.ProfessionalFilter) (int, error) {
	whereClause, args := buildProfessionalFilter(filter)

	query := `
		SELECT COUNT(DISTINCT p.id)
		FROM professionals p
		JOIN users u ON p.user_id = u.id
	` + professionalFilterJoins(filter) + whereClause

	var count int
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчета профессионалов: %w", err)
	}

	return count, nil
}

func (r *ProfessionalRepo) UpdateProfilePhoto(ctx context.Context, id int64, photoURL string) error {
	query := `UPDATE professionals SET profile_photo_url = $1, updated_at = $2 WHERE id = $3`

	_, err := r.db.Exec(ctx, query, photoURL, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка обновления фотографии профиля: %w", err)
	}

	return nil
}

func (r *ProfessionalRepo) getActiveSpecialties(ctx context.Context, professionalID int64) ([]domain.Specialty, error) {
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
		return nil, err
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
			return nil, err
		}
		specialties = append(specialties, specialty)
	}

	return specialties, rows.Err()
}

func professionalFilterJoins(filter domain.ProfessionalFilter) string {
	joins := ""
	if filter.CategoryID != nil || filter.MaxCost != nil {
		joins += " JOIN professional_specialties ps ON ps.professional_id = p.id AND ps.is_active = true"
	}
	if filter.Department != nil {
		joins += ` JOIN service_areas sa ON sa.professional_id = p.id
			LEFT JOIN service_area_locations sal ON sal.area_id = sa.id`
	}
	return joins
}

func buildProfessionalFilter(filter domain.ProfessionalFilter) (string, []interface{}) {
	whereClauses := []string{"p.is_active = true", "u.is_active = true"}
	var args []interface{}
	argIndex := 1

	if filter.CategoryID != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("ps.category_id = $%d", argIndex))
		args = append(args, *filter.CategoryID)
		argIndex++
	}

	if filter.MaxCost != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("ps.cost <= $%d", argIndex))
		args = append(args, *filter.MaxCost)
		argIndex++
	}

	if filter.Department != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("(sa.nationwide = true OR sal.department ILIKE $%d)", argIndex))
		args = append(args, *filter.Department)
		argIndex++
	}

	if filter.Query != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("p.headline ILIKE $%d", argIndex))
		args = append(args, "%"+*filter.Query+"%")
		argIndex++
	}

	return " WHERE " + strings.Join(whereClauses, " AND "), args
}
