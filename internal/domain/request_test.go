package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatus_IsValid(t *testing.T) {
	valid := []RequestStatus{
		RequestStatusPending, RequestStatusAccepted, RequestStatusRejected,
		RequestStatusCompleted, RequestStatusCancelled,
	}
	for _, status := range valid {
		assert.True(t, status.IsValid(), "статус %s должен быть допустимым", status)
	}

	assert.False(t, RequestStatus("done").IsValid())
	assert.False(t, RequestStatus("").IsValid())
}

func TestRequestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    RequestStatus
		to      RequestStatus
		allowed bool
	}{
		{RequestStatusPending, RequestStatusAccepted, true},
		{RequestStatusPending, RequestStatusRejected, true},
		{RequestStatusPending, RequestStatusCancelled, true},
		{RequestStatusPending, RequestStatusCompleted, false},
		{RequestStatusAccepted, RequestStatusCompleted, true},
		{RequestStatusAccepted, RequestStatusCancelled, true},
		{RequestStatusAccepted, RequestStatusRejected, false},
		{RequestStatusAccepted, RequestStatusPending, false},
		{RequestStatusRejected, RequestStatusAccepted, false},
		{RequestStatusCompleted, RequestStatusCancelled, false},
		{RequestStatusCancelled, RequestStatusPending, false},
	}

	for _, tt := range tests {
		got := tt.from.CanTransitionTo(tt.to)
		assert.Equal(t, tt.allowed, got, "переход %s -> %s", tt.from, tt.to)
	}
}
