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

type CategoryRepo struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{
		db: db,
	}
}

func (r *CategoryRepo) Create(ctx context.Context, dto domain.CreateCategoryDTO) (int64, error) {
	query := `
		INSERT INTO service_categories (name, description, icon, color, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, true, $5, $5)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.Name,
		dto.Description,
		dto.Icon,
		dto.Color,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания категории: %w", err)
	}

	return id, nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*domain.ServiceCategory, error) {
	query := `
		SELECT id, name, description, icon, color, is_active, created_at, updated_at
		FROM service_categories
		WHERE id = $1
	`

	var category domain.ServiceCategory
	err := r.db.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.Icon,
		&category.Color,
		&category.IsActive,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("ошибка получения категории: %w", err)
	}

	return &category, nil
}

func (r *CategoryRepo) Update(ctx context.Context, id int64, dto domain.UpdateCategoryDTO) error {
	var setClauses []string
	var args []interface{}
	argIndex := 1

	if dto.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIndex))
		args = append(args, *dto.Name)
		argIndex++
	}

	if dto.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", argIndex))
		args = append(args, *dto.Description)
		argIndex++
	}

	if dto.Icon != nil {
		setClauses = append(setClauses, fmt.Sprintf("icon = $%d", argIndex))
		args = append(args, *dto.Icon)
		argIndex++
	}

	if dto.Color != nil {
		setClauses = append(setClauses, fmt.Sprintf("color = $%d", argIndex))
		args = append(args, *dto.Color)
		argIndex++
	}

	if dto.IsActive != nil {
		setClauses = append(setClauses, fmt.Sprintf("is_active = $%d", argIndex))
		args = append(args, *dto.IsActive)
		argIndex++
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", argIndex))
	args = append(args, time.Now())
	argIndex++

	query := "UPDATE service_categories SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", argIndex)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления категории: %w", err)
	}

	return nil
}

func (r *CategoryRepo) Deactivate(ctx context.Context, id int64) error {
	query := `UPDATE service_categories SET is_active = false, updated_at = $1 WHERE id = $2`

	_, err := r.db.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка деактивации категории: %w", err)
	}

	return nil
}

func (r *CategoryRepo) List(ctx context.Context, onlyActive bool) ([]domain.ServiceCategory, error) {
	query := `
		SELECT id, name, description, icon, color, is_active, created_at, updated_at
		FROM service_categories
	`
	if onlyActive {
		query += " WHERE is_active = true"
	}
	query += " ORDER BY name"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка категорий: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.ServiceCategory, 0)
	for rows.Next() {
		var category domain.ServiceCategory
		if err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Description,
			&category.Icon,
			&category.Color,
			&category.IsActive,
			&category.CreatedAt,
			&category.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки категории: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по строкам: %w", err)
	}

	return categories, nil
}

func (r *CategoryRepo) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT COUNT(*) FROM service_categories WHERE id = $1 AND is_active = true`

	var count int
	err := r.db.QueryRow(ctx, query, id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("ошибка проверки категории: %w", err)
	}

	return count > 0, nil
}
