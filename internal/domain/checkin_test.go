package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCheckInWindow_TooEarly(t *testing.T) {
	start := time.Now().Add(2 * time.Hour)
	end := start.Add(time.Hour)

	err := ValidateCheckInWindow(time.Now(), start, end, DefaultCheckInLead)

	assert.ErrorIs(t, err, ErrCheckInTooEarly)
}

func TestValidateCheckInWindow_WithinLead(t *testing.T) {
	start := time.Now().Add(10 * time.Minute)
	end := start.Add(time.Hour)

	err := ValidateCheckInWindow(time.Now(), start, end, DefaultCheckInLead)

	require.NoError(t, err)
}

func TestValidateCheckInWindow_DuringSession(t *testing.T) {
	start := time.Now().Add(-15 * time.Minute)
	end := start.Add(time.Hour)

	err := ValidateCheckInWindow(time.Now(), start, end, DefaultCheckInLead)

	require.NoError(t, err)
}

func TestValidateCheckInWindow_TooLate(t *testing.T) {
	start := time.Now().Add(-2 * time.Hour)
	end := time.Now().Add(-5 * time.Minute)

	err := ValidateCheckInWindow(time.Now(), start, end, DefaultCheckInLead)

	assert.ErrorIs(t, err, ErrCheckInTooLate)
}

func TestValidateCheckInWindow_ExactBoundaries(t *testing.T) {
	now := time.Now()
	start := now.Add(DefaultCheckInLead)
	end := start.Add(time.Hour)

	// ровно на границе окна
	require.NoError(t, ValidateCheckInWindow(now, start, end, DefaultCheckInLead))
	require.NoError(t, ValidateCheckInWindow(end, start, end, DefaultCheckInLead))
}
