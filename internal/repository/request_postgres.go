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

type RequestRepo struct {
	db *pgxpool.Pool
}

func NewRequestRepository(db *pgxpool.Pool) *RequestRepo {
	return &RequestRepo{
		db: db,
	}
}

func (r *RequestRepo) Create(ctx context.Context, clientID int64, dto domain.CreateRequestDTO) (int64, error) {
	query := `
		INSERT INTO service_requests (client_id, professional_id, specialty_id, description, preferred_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err := r.db.QueryRow(ctx, query,
		clientID,
		dto.ProfessionalID,
		dto.SpecialtyID,
		dto.Description,
		dto.PreferredDate,
		domain.RequestStatusPending,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания заявки: %w", err)
	}

	return id, nil
}

func (r *RequestRepo) GetByID(ctx context.Context, id int64) (*domain.ServiceRequest, error) {
	query := `
		SELECT sr.id, sr.client_id, sr.professional_id, sr.specialty_id, sr.description,
		       sr.preferred_date, sr.status, sr.created_at, sr.updated_at,
		       c.first_name || ' ' || c.last_name,
		       pu.first_name || ' ' || pu.last_name
		FROM service_requests sr
		JOIN users c ON sr.client_id = c.id
		JOIN professionals p ON sr.professional_id = p.id
		JOIN users pu ON p.user_id = pu.id
		WHERE sr.id = $1
	`

	var request domain.ServiceRequest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.ClientID,
		&request.ProfessionalID,
		&request.SpecialtyID,
		&request.Description,
		&request.PreferredDate,
		&request.Status,
		&request.CreatedAt,
		&request.UpdatedAt,
		&request.ClientName,
		&request.ProfessionalName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("ошибка получения заявки: %w", err)
	}

	return &request, nil
}

func (r *RequestRepo) Update(ctx context.Context, id int64, dto domain.UpdateRequestDTO) error {
	var setClauses []string
	var args []interface{}
	argIndex := 1

	if dto.Status != nil {
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *dto.Status)
		argIndex++
	}

	if dto.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", argIndex))
		args = append(args, *dto.Description)
		argIndex++
	}

	if dto.PreferredDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("preferred_date = $%d", argIndex))
		args = append(args, *dto.PreferredDate)
		argIndex++
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", argIndex))
	args = append(args, time.Now())
	argIndex++

	query := "UPDATE service_requests SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", argIndex)
	args = append(args, id)

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления заявки: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRequestNotFound
	}

	return nil
}

func (r *RequestRepo) Delete(ctx context.Context, id int64) error {
	query := `UPDATE service_requests SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, query, domain.RequestStatusCancelled, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка отмены заявки: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRequestNotFound
	}

	return nil
}

func (r *RequestRepo) List(ctx context.Context, filter domain.RequestFilter) ([]domain.ServiceRequest, error) {
	whereClause, args := buildRequestFilter(filter)

	query := `
		SELECT sr.id, sr.client_id, sr.professional_id, sr.specialty_id, sr.description,
		       sr.preferred_date, sr.status, sr.created_at, sr.updated_at,
		       c.first_name || ' ' || c.last_name,
		       pu.first_name || ' ' || pu.last_name
		FROM service_requests sr
		JOIN users c ON sr.client_id = c.id
		JOIN professionals p ON sr.professional_id = p.id
		JOIN users pu ON p.user_id = pu.id
	` + whereClause

	argIndex := len(args) + 1
	query += fmt.Sprintf(" ORDER BY sr.created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer rows.Close()

	requests := make([]domain.ServiceRequest, 0)
	for rows.Next() {
		var request domain.ServiceRequest
		if err := rows.Scan(
			&request.ID,
			&request.ClientID,
			&request.ProfessionalID,
			&request.SpecialtyID,
			&request.Description,
			&request.PreferredDate,
			&request.Status,
			&request.CreatedAt,
			&request.UpdatedAt,
			&request.ClientName,
			&request.ProfessionalName,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки: %w", err)
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обработки результатов: %w", err)
	}

	return requests, nil
}

func (r *RequestRepo) CountByFilter(ctx context.Context, filter domain.RequestFilter) (int, error) {
	whereClause, args := buildRequestFilter(filter)

	query := `SELECT COUNT(*) FROM service_requests sr` + whereClause

	var count int
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчета заявок: %w", err)
	}

	return count, nil
}

func buildRequestFilter(filter domain.RequestFilter) (string, []interface{}) {
	var whereClauses []string
	var args []interface{}
	argIndex := 1

	if filter.ClientID != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("sr.client_id = $%d", argIndex))
		args = append(args, *filter.ClientID)
		argIndex++
	}

	if filter.ProfessionalID != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("sr.professional_id = $%d", argIndex))
		args = append(args, *filter.ProfessionalID)
		argIndex++
	}

	if filter.Status != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("sr.status = $%d", argIndex))
		args = append(args, *filter.Status)
		argIndex++
	}

	if len(whereClauses) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(whereClauses, " AND "), args
}
