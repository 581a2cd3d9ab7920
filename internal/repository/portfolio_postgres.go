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

type PortfolioRepo struct {
	db *pgxpool.Pool
}

func NewPortfolioRepository(db *pgxpool.Pool) *PortfolioRepo {
	return &PortfolioRepo{
		db: db,
	}
}

func (r *PortfolioRepo) Create(ctx context.Context, project domain.PortfolioProject) (int64, error) {
	query := `
		INSERT INTO portfolio_projects (professional_id, project_name, completed_on, description,
			category_id, request_id, sort_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, true, $8, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		project.ProfessionalID,
		project.ProjectName,
		project.CompletedOn,
		project.Description,
		project.CategoryID,
		project.RequestID,
		project.SortOrder,
		time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания проекта портфолио: %w", err)
	}

	return id, nil
}

func (r *PortfolioRepo) GetByID(ctx context.Context, id int64) (*domain.PortfolioProject, error) {
	query := projectSelect + ` WHERE p.id = $1`

	var project domain.PortfolioProject
	if err := scanProject(r.db.QueryRow(ctx, query, id), &project); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("ошибка получения проекта портфолио: %w", err)
	}

	images, err := r.ListImages(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	project.Images = images

	return &project, nil
}

func (r *PortfolioRepo) Update(ctx context.Context, project domain.PortfolioProject) error {
	query := `
		UPDATE portfolio_projects
		SET project_name = $1, completed_on = $2, description = $3, category_id = $4,
		    sort_order = $5, updated_at = $6
		WHERE id = $7 AND professional_id = $8 AND is_active = true
	`

	result, err := r.db.Exec(ctx, query,
		project.ProjectName,
		project.CompletedOn,
		project.Description,
		project.CategoryID,
		project.SortOrder,
		time.Now(),
		project.ID,
		project.ProfessionalID,
	)
	if err != nil {
		return fmt.Errorf("ошибка обновления проекта портфолио: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}

	return nil
}

// Deactivate мягко удаляет проект: строка и оценка клиента сохраняются.
func (r *PortfolioRepo) Deactivate(ctx context.Context, professionalID, projectID int64) error {
	query := `
		UPDATE portfolio_projects
		SET is_active = false, updated_at = $1
		WHERE id = $2 AND professional_id = $3 AND is_active = true
	`

	result, err := r.db.Exec(ctx, query, time.Now(), projectID, professionalID)
	if err != nil {
		return fmt.Errorf("ошибка удаления проекта портфолио: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}

	return nil
}

func (r *PortfolioRepo) ListByProfessional(ctx context.Context, professionalID int64) ([]domain.PortfolioProject, error) {
	query := projectSelect + `
		WHERE p.professional_id = $1 AND p.is_active = true
		ORDER BY p.completed_on DESC, p.sort_order ASC
	`

	rows, err := r.db.Query(ctx, query, professionalID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения проектов портфолио: %w", err)
	}
	defer rows.Close()

	projects := make([]domain.PortfolioProject, 0)
	for rows.Next() {
		var project domain.PortfolioProject
		if err := scanProject(rows, &project); err != nil {
			return nil, fmt.Errorf("ошибка сканирования проекта: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обработки результатов: %w", err)
	}

	for i := range projects {
		images, err := r.ListImages(ctx, projects[i].ID)
		if err != nil {
			return nil, err
		}
		projects[i].Images = images
	}

	return projects, nil
}

func (r *PortfolioRepo) CountActiveProjects(ctx context.Context, professionalID int64) (int, error) {
	query := `SELECT COUNT(*) FROM portfolio_projects WHERE professional_id = $1 AND is_active = true`

	var count int
	if err := r.db.QueryRow(ctx, query, professionalID).Scan(&count); err != nil {
		return 0, fmt.Errorf("ошибка подсчета проектов: %w", err)
	}

	return count, nil
}

func (r *PortfolioRepo) AddImage(ctx context.Context, image domain.ProjectImage) (int64, error) {
	query := `
		INSERT INTO project_images (project_id, url, image_type, caption, sort_order, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		image.ProjectID,
		image.URL,
		image.ImageType,
		image.Caption,
		image.SortOrder,
		time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка добавления изображения проекта: %w", err)
	}

	return id, nil
}

func (r *PortfolioRepo) ListImages(ctx context.Context, projectID int64) ([]domain.ProjectImage, error) {
	query := `
		SELECT id, project_id, url, image_type, caption, sort_order, uploaded_at
		FROM project_images
		WHERE project_id = $1
		ORDER BY sort_order ASC
	`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения изображений проекта: %w", err)
	}
	defer rows.Close()

	images := make([]domain.ProjectImage, 0)
	for rows.Next() {
		var image domain.ProjectImage
		if err := rows.Scan(
			&image.ID,
			&image.ProjectID,
			&image.URL,
			&image.ImageType,
			&image.Caption,
			&image.SortOrder,
			&image.UploadedAt,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования изображения: %w", err)
		}
		images = append(images, image)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обработки результатов: %w", err)
	}

	return images, nil
}

func (r *PortfolioRepo) CountImages(ctx context.Context, projectID int64) (int, error) {
	query := `SELECT COUNT(*) FROM project_images WHERE project_id = $1`

	var count int
	if err := r.db.QueryRow(ctx, query, projectID).Scan(&count); err != nil {
		return 0, fmt.Errorf("ошибка подсчета изображений: %w", err)
	}

	return count, nil
}

// DeleteImage удаляет строку изображения насовсем: файл в хранилище
// удаляет сервисный слой до вызова этого метода.
func (r *PortfolioRepo) DeleteImage(ctx context.Context, projectID, imageID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM project_images WHERE id = $1 AND project_id = $2`, imageID, projectID)
	if err != nil {
		return fmt.Errorf("ошибка удаления изображения проекта: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrProjectImageNotFound
	}

	return nil
}

const projectSelect = `
	SELECT p.id, p.professional_id, p.project_name, p.completed_on, p.description,
	       p.category_id, c.name AS category_name, p.request_id, p.client_rating,
	       p.client_comment, p.sort_order, p.is_active, p.created_at, p.updated_at
	FROM portfolio_projects p
	LEFT JOIN service_categories c ON p.category_id = c.id
`

func scanProject(row pgx.Row, project *domain.PortfolioProject) error {
	return row.Scan(
		&project.ID,
		&project.ProfessionalID,
		&project.ProjectName,
		&project.CompletedOn,
		&project.Description,
		&project.CategoryID,
		&project.CategoryName,
		&project.RequestID,
		&project.ClientRating,
		&project.ClientComment,
		&project.SortOrder,
		&project.IsActive,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
}
