// Package storage отвечает за хранение пользовательских файлов:
// фотографий профиля, снимков проектов портфолио и документов
// сертификатов.
package storage

import (
	"context"
	"time"
)

// FileStorage абстрагирует объектное хранилище. Реализация возвращает
// публичный URL загруженного файла; этот же URL служит ключом для
// удаления и чтения.
type FileStorage interface {
	// UploadFile сохраняет файл и возвращает его публичный URL.
	UploadFile(ctx context.Context, data []byte, filename string) (string, error)

	// DeleteFile удаляет файл по URL, полученному из UploadFile.
	DeleteFile(ctx context.Context, fileURL string) error

	// GetFile читает содержимое файла по его URL.
	GetFile(ctx context.Context, fileURL string) ([]byte, error)

	// GetPresignedURL выдаёт временную ссылку на файл.
	GetPresignedURL(ctx context.Context, fileURL string, expiry time.Duration) (string, error)
}
