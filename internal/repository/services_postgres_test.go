package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conpro/internal/domain"
)

func TestPlanSpecialtySync_KeepsExistingIDs(t *testing.T) {
	specialties := []domain.Specialty{
		{ID: 10, CategoryID: 1},
		{ID: 0, CategoryID: 2},
		{ID: 25, CategoryID: 3},
	}

	keepIDs, writes := planSpecialtySync(7, specialties)

	assert.Equal(t, []int64{10, 25}, keepIDs)

	require.Len(t, writes, 3)
	assert.True(t, writes[0].update)
	assert.False(t, writes[1].update)
	assert.True(t, writes[2].update)

	// Записи с ID сохраняют его: строка обновляется на месте,
	// а не пересоздаётся под новым ID.
	assert.Equal(t, int64(10), writes[0].specialty.ID)
	assert.Equal(t, int64(25), writes[2].specialty.ID)
}

func TestPlanSpecialtySync_AllNew(t *testing.T) {
	specialties := []domain.Specialty{{CategoryID: 1}, {CategoryID: 2}}

	keepIDs, writes := planSpecialtySync(7, specialties)

	// Пустой (но не nil) набор выживших: ANY($3) по пустому срезу
	// деактивирует все текущие специальности.
	require.NotNil(t, keepIDs)
	assert.Empty(t, keepIDs)

	require.Len(t, writes, 2)
	for _, write := range writes {
		assert.False(t, write.update)
	}
}

func TestPlanSpecialtySync_NegativeIDInserted(t *testing.T) {
	specialties := []domain.Specialty{{ID: -1, CategoryID: 1}}

	keepIDs, writes := planSpecialtySync(7, specialties)

	assert.Empty(t, keepIDs)
	require.Len(t, writes, 1)
	assert.False(t, writes[0].update)
}

func TestPlanSpecialtySync_AssignsOrderByPosition(t *testing.T) {
	specialties := []domain.Specialty{
		{ID: 25, CategoryID: 3},
		{CategoryID: 1},
		{ID: 10, CategoryID: 2},
	}

	_, writes := planSpecialtySync(7, specialties)

	require.Len(t, writes, 3)
	for i, write := range writes {
		assert.Equal(t, i, write.pos)
		require.NotNil(t, write.specialty.SortOrder)
		assert.Equal(t, i+1, *write.specialty.SortOrder)
		assert.Equal(t, int64(7), write.specialty.ProfessionalID)
		assert.True(t, write.specialty.IsActive)
	}
}

// Повторная подача того же списка даёт тот же план: те же выжившие ID,
// те же обновления на месте и ни одной новой вставки.
func TestPlanSpecialtySync_Idempotent(t *testing.T) {
	specialties := []domain.Specialty{
		{ID: 10, CategoryID: 1, IsPrincipal: true},
		{ID: 25, CategoryID: 2},
	}

	firstKeep, firstWrites := planSpecialtySync(7, specialties)
	secondKeep, secondWrites := planSpecialtySync(7, specialties)

	assert.Equal(t, firstKeep, secondKeep)
	assert.Equal(t, firstWrites, secondWrites)

	for _, write := range secondWrites {
		assert.True(t, write.update)
	}
}

// Специальность, пропавшая из входящего списка, не попадает в выжившие:
// сверка деактивирует её, но не удаляет строку.
func TestPlanSpecialtySync_OmittedIDNotKept(t *testing.T) {
	submitted := []domain.Specialty{
		{ID: 10, CategoryID: 1},
		{ID: 11, CategoryID: 2},
	}
	_, _ = planSpecialtySync(7, submitted)

	resubmitted := []domain.Specialty{
		{ID: 10, CategoryID: 1},
	}
	keepIDs, writes := planSpecialtySync(7, resubmitted)

	assert.Equal(t, []int64{10}, keepIDs)
	assert.NotContains(t, keepIDs, int64(11))
	require.Len(t, writes, 1)
	assert.True(t, writes[0].update)
}
