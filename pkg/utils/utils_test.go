package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email      string  `json:"email" validate:"notblank"`
	Role       string  `json:"role" validate:"oneof=user assistant"`
	Status     *string `json:"status,omitempty" validate:"omitempty,notblank"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`
}

func TestValidateStruct(t *testing.T) {
	blank := "   "
	ok := "completed"

	tests := []struct {
		name    string
		req     sampleRequest
		wantErr string
	}{
		{"valid", sampleRequest{Email: "a@b.c", Role: "user", Status: &ok}, ""},
		{"blank email", sampleRequest{Email: "  ", Role: "user"}, "email is required"},
		{"bad role", sampleRequest{Email: "a@b.c", Role: "system"}, "role must be one of: user assistant"},
		{"blank pointer", sampleRequest{Email: "a@b.c", Role: "user", Status: &blank}, "status is required"},
		{"confidence range", sampleRequest{Email: "a@b.c", Role: "user", Confidence: 1.5}, "confidence must be less than or equal to 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseFilterTime(t *testing.T) {
	ts, dateOnly, err := ParseFilterTime("2026-03-01T10:00:00+02:00")
	require.NoError(t, err)
	assert.False(t, dateOnly)
	assert.Equal(t, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC), ts)

	ts, dateOnly, err = ParseFilterTime("2026-03-01T10:00:00")
	require.NoError(t, err)
	assert.False(t, dateOnly)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), ts)

	ts, dateOnly, err = ParseFilterTime("2026-03-01")
	require.NoError(t, err)
	assert.True(t, dateOnly)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), ts)

	_, _, err = ParseFilterTime("yesterday")
	assert.Error(t, err)
}
