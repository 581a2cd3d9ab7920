package domain

import "time"

const (
	MaxPortfolioProjects = 20
	MaxProjectImages     = 5
)

type ProjectImageType string

const (
	ImageTypeBefore  ProjectImageType = "before"
	ImageTypeAfter   ProjectImageType = "after"
	ImageTypeProcess ProjectImageType = "process"
	ImageTypeGeneral ProjectImageType = "general"
)

func (t ProjectImageType) IsValid() bool {
	switch t {
	case ImageTypeBefore, ImageTypeAfter, ImageTypeProcess, ImageTypeGeneral:
		return true
	}
	return false
}

// PortfolioProject — выполненная работа в портфолио профессионала.
// Проект может ссылаться на реальную заявку; оценка и комментарий
// клиента доступны только для чтения. Удаляется мягко (active=false).
type PortfolioProject struct {
	ID             int64          `json:"id"`
	ProfessionalID int64          `json:"professional_id"`
	ProjectName    string         `json:"project_name"`
	CompletedOn    time.Time      `json:"completed_on"`
	Description    string         `json:"description"`
	CategoryID     int64          `json:"category_id"`
	CategoryName   string         `json:"category_name"`
	RequestID      *int64         `json:"request_id,omitempty"`
	ClientRating   *float64       `json:"client_rating,omitempty"`
	ClientComment  *string        `json:"client_comment,omitempty"`
	SortOrder      int            `json:"sort_order"`
	IsActive       bool           `json:"is_active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	Images         []ProjectImage `json:"images"`
}

type ProjectImage struct {
	ID         int64            `json:"id"`
	ProjectID  int64            `json:"project_id"`
	URL        string           `json:"url"`
	ImageType  ProjectImageType `json:"image_type"`
	Caption    string           `json:"caption"`
	SortOrder  int              `json:"sort_order"`
	UploadedAt time.Time        `json:"uploaded_at"`
}

type CreateProjectDTO struct {
	ProjectName string `json:"project_name" binding:"required"`
	CompletedOn string `json:"completed_on" binding:"required"`
	Description string `json:"description"`
	CategoryID  int64  `json:"category_id" binding:"required"`
	RequestID   *int64 `json:"request_id"`
}

type UpdateProjectDTO struct {
	ProjectName *string `json:"project_name"`
	CompletedOn *string `json:"completed_on"`
	Description *string `json:"description"`
	CategoryID  *int64  `json:"category_id"`
	SortOrder   *int    `json:"sort_order"`
}

type AddProjectImageDTO struct {
	ImageType string `json:"image_type"`
	Caption   string `json:"caption"`
}
