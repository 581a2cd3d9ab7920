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

type CertificationRepo struct {
	db *pgxpool.Pool
}

func NewCertificationRepository(db *pgxpool.Pool) *CertificationRepo {
	return &CertificationRepo{
		db: db,
	}
}

func (r *CertificationRepo) Create(ctx context.Context, certification domain.Certification) (int64, error) {
	query := `
		INSERT INTO professional_certifications (professional_id, name, institution, issued_on,
			valid_until, description, sort_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, true, $8, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		certification.ProfessionalID,
		certification.Name,
		certification.Institution,
		certification.IssuedOn,
		certification.ValidUntil,
		certification.Description,
		certification.SortOrder,
		time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания сертификата: %w", err)
	}

	return id, nil
}

func (r *CertificationRepo) GetByID(ctx context.Context, id int64) (*domain.Certification, error) {
	query := `
		SELECT id, professional_id, name, institution, issued_on, valid_until,
		       document_url, description, sort_order, is_active, created_at, updated_at
		FROM professional_certifications
		WHERE id = $1
	`

	var certification domain.Certification
	err := r.db.QueryRow(ctx, query, id).Scan(
		&certification.ID,
		&certification.ProfessionalID,
		&certification.Name,
		&certification.Institution,
		&certification.IssuedOn,
		&certification.ValidUntil,
		&certification.DocumentURL,
		&certification.Description,
		&certification.SortOrder,
		&certification.IsActive,
		&certification.CreatedAt,
		&certification.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCertificationNotFound
		}
		return nil, fmt.Errorf("ошибка получения сертификата: %w", err)
	}

	return &certification, nil
}

func (r *CertificationRepo) Update(ctx context.Context, certification domain.Certification) error {
	query := `
		UPDATE professional_certifications
		SET name = $1, institution = $2, issued_on = $3, valid_until = $4,
		    description = $5, sort_order = $6, updated_at = $7
		WHERE id = $8 AND professional_id = $9 AND is_active = true
	`

	result, err := r.db.Exec(ctx, query,
		certification.Name,
		certification.Institution,
		certification.IssuedOn,
		certification.ValidUntil,
		certification.Description,
		certification.SortOrder,
		time.Now(),
		certification.ID,
		certification.ProfessionalID,
	)
	if err != nil {
		return fmt.Errorf("ошибка обновления сертификата: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrCertificationNotFound
	}

	return nil
}

func (r *CertificationRepo) Deactivate(ctx context.Context, professionalID, certificationID int64) error {
	query := `
		UPDATE professional_certifications
		SET is_active = false, updated_at = $1
		WHERE id = $2 AND professional_id = $3 AND is_active = true
	`

	result, err := r.db.Exec(ctx, query, time.Now(), certificationID, professionalID)
	if err != nil {
		return fmt.Errorf("ошибка удаления сертификата: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrCertificationNotFound
	}

	return nil
}

func (r *CertificationRepo) ListByProfessional(ctx context.Context, professionalID int64) ([]domain.Certification, error) {
	query := `
		SELECT id, professional_id, name, institution, issued_on, valid_until,
		       document_url, description, sort_order, is_active, created_at, updated_at
		FROM professional_certifications
		WHERE professional_id = $1 AND is_active = true
		ORDER BY sort_order ASC, issued_on DESC
	`

	rows, err := r.db.Query(ctx, query, professionalID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения сертификатов: %w", err)
	}
	defer rows.Close()

	certifications := make([]domain.Certification, 0)
	for rows.Next() {
		var certification domain.Certification
		if err := rows.Scan(
			&certification.ID,
			&certification.ProfessionalID,
			&certification.Name,
			&certification.Institution,
			&certification.IssuedOn,
			&certification.ValidUntil,
			&certification.DocumentURL,
			&certification.Description,
			&certification.SortOrder,
			&certification.IsActive,
			&certification.CreatedAt,
			&certification.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования сертификата: %w", err)
		}
		certifications = append(certifications, certification)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обработки результатов: %w", err)
	}

	return certifications, nil
}

func (r *CertificationRepo) SetDocumentURL(ctx context.Context, professionalID, certificationID int64, documentURL *string) error {
	query := `
		UPDATE professional_certifications
		SET document_url = $1, updated_at = $2
		WHERE id = $3 AND professional_id = $4 AND is_active = true
	`

	result, err := r.db.Exec(ctx, query, documentURL, time.Now(), certificationID, professionalID)
	if err != nil {
		return fmt.Errorf("ошибка сохранения документа сертификата: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrCertificationNotFound
	}

	return nil
}

type SocialLinkRepo struct {
	db *pgxpool.Pool
}

func NewSocialLinkRepository(db *pgxpool.Pool) *SocialLinkRepo {
	return &SocialLinkRepo{
		db: db,
	}
}

// Replace заменяет весь список ссылок в одной транзакции. Флаг
// verified при замене сбрасывается: подтверждение относится к
// конкретному URL.
func (r *SocialLinkRepo) Replace(ctx context.Context, professionalID int64, links []domain.SocialLink) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM professional_social_links WHERE professional_id = $1`, professionalID); err != nil {
		return fmt.Errorf("ошибка очистки социальных ссылок: %w", err)
	}

	insert := `
		INSERT INTO professional_social_links (professional_id, platform, url, is_verified, created_at)
		VALUES ($1, $2, $3, false, $4)
		RETURNING id
	`
	now := time.Now()
	for i := range links {
		links[i].ProfessionalID = professionalID
		if err := tx.QueryRow(ctx, insert, professionalID, links[i].Platform, links[i].URL, now).Scan(&links[i].ID); err != nil {
			return fmt.Errorf("ошибка сохранения социальной ссылки: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	return nil
}

func (r *SocialLinkRepo) ListByProfessional(ctx context.Context, professionalID int64) ([]domain.SocialLink, error) {
	query := `
		SELECT id, professional_id, platform, url, is_verified, created_at
		FROM professional_social_links
		WHERE professional_id = $1
		ORDER BY platform ASC
	`

	rows, err := r.db.Query(ctx, query, professionalID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения социальных ссылок: %w", err)
	}
	defer rows.Close()

	links := make([]domain.SocialLink, 0)
	for rows.Next() {
		var link domain.SocialLink
		if err := rows.Scan(
			&link.ID,
			&link.ProfessionalID,
			&link.Platform,
			&link.URL,
			&link.IsVerified,
			&link.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования социальной ссылки: %w", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обработки результатов: %w", err)
	}

	return links, nil
}
