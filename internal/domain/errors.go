package domain

import (
	"errors"
)

var (
	ErrProfessionalNotFound  = errors.New("профессионал не найден")
	ErrServicesNotConfigured = errors.New("услуги профессионала не настроены")
	ErrSpecialtyNotFound     = errors.New("специальность не найдена")
	ErrCategoryNotFound      = errors.New("категория услуг не найдена")
	ErrRequestNotFound       = errors.New("заявка не найдена")
	ErrProjectNotFound       = errors.New("проект портфолио не найден")
	ErrProjectImageNotFound  = errors.New("изображение проекта не найдено")
	ErrCertificationNotFound = errors.New("сертификат не найден")
)

// ValidationError отмечает ошибки, вызванные некорректными данными клиента.
// Обработчики транслируют их в HTTP 400, все остальные ошибки — в 500.
type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
