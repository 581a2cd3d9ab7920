package domain

import (
	"time"
)

type Professional struct {
	ID              int64       `json:"id"`
	UserID          int64       `json:"user_id"`
	Headline        string      `json:"headline"`
	Bio             string      `json:"bio"`
	ExperienceYears int         `json:"experience_years"`
	IsVerified      bool        `json:"is_verified"`
	ProfilePhotoURL string      `json:"profile_photo_url"`
	IsActive        bool        `json:"is_active"`
	User            User        `json:"user"`
	Specialties     []Specialty `json:"specialties,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type CreateProfessionalDTO struct {
	Headline        string `json:"headline" binding:"required"`
	Bio             string `json:"bio"`
	ExperienceYears int    `json:"experience_years" binding:"min=0"`
}

type UpdateProfessionalDTO struct {
	Headline        *string `json:"headline"`
	Bio             *string `json:"bio"`
	ExperienceYears *int    `json:"experience_years" binding:"omitempty,min=0"`
}

// ProfessionalFilter задаёт критерии поиска профессионалов.
// Поиск по категории идёт через активные специальности,
// по департаменту — через зону покрытия (включая флаг "вся страна").
type ProfessionalFilter struct {
	CategoryID *int64   `json:"category_id"`
	Department *string  `json:"department"`
	MaxCost    *float64 `json:"max_cost"`
	Query      *string  `json:"query"`
	Limit      int      `json:"limit"`
	Offset     int      `json:"offset"`
}
