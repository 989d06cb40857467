package resilience

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDLQEntry_CanRetry(t *testing.T) {
	e := DLQEntry{RetryCount: 2, MaxRetries: 3}
	assert.True(t, e.CanRetry())
	e.RetryCount = 3
	assert.False(t, e.CanRetry())
}

func TestDLQEntry_NextReplayAt(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	e := DLQEntry{}
	assert.Equal(t, now.Add(time.Minute), e.NextReplayAt(now))

	e.RetryCount = 3
	assert.Equal(t, now.Add(8*time.Minute), e.NextReplayAt(now))

	e.RetryCount = 40
	assert.Equal(t, now.Add(6*time.Hour), e.NextReplayAt(now))
}

func TestClassifyError(t *testing.T) {
	assert.Equal(t, ErrorTypeTransient, ClassifyError(NewTransientError(errors.New("x"), 502)))
	assert.Equal(t, ErrorTypePermanent, ClassifyError(errors.New("bad payload")))
}
