package domain

import (
	"time"
)

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCompleted RequestStatus = "completed"
	RequestStatusCancelled RequestStatus = "cancelled"
)

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusRejected,
		RequestStatusCompleted, RequestStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo описывает допустимые переходы статуса заявки.
// Принятая заявка может быть завершена или отменена, отклонённая — финальна.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	switch s {
	case RequestStatusPending:
		return next == RequestStatusAccepted || next == RequestStatusRejected || next == RequestStatusCancelled
	case RequestStatusAccepted:
		return next == RequestStatusCompleted || next == RequestStatusCancelled
	}
	return false
}

type ServiceRequest struct {
	ID               int64         `json:"id"`
	ClientID         int64         `json:"client_id"`
	ProfessionalID   int64         `json:"professional_id"`
	SpecialtyID      *int64        `json:"specialty_id"`
	Description      string        `json:"description"`
	PreferredDate    *time.Time    `json:"preferred_date"`
	Status           RequestStatus `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
	ClientName       string        `json:"client_name,omitempty"`
	ProfessionalName string        `json:"professional_name,omitempty"`
}

type CreateRequestDTO struct {
	ProfessionalID int64      `json:"professional_id" binding:"required"`
	SpecialtyID    *int64     `json:"specialty_id"`
	Description    string     `json:"description" binding:"required"`
	PreferredDate  *time.Time `json:"preferred_date"`
}

type UpdateRequestDTO struct {
	Status        *RequestStatus `json:"status" binding:"omitempty,oneof=pending accepted rejected completed cancelled"`
	Description   *string        `json:"description"`
	PreferredDate *time.Time     `json:"preferred_date"`
}

type RequestFilter struct {
	ClientID       *int64         `json:"client_id"`
	ProfessionalID *int64         `json:"professional_id"`
	Status         *RequestStatus `json:"status"`
	Limit          int            `json:"limit"`
	Offset         int            `json:"offset"`
}
