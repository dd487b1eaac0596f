package domain_test

import (
	"testing"
	"time"

	"arakkha-job-connect/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestJob_AcceptsMore(t *testing.T) {
	t.Run("Finite Limit", func(t *testing.T) {
		job := &domain.Job{MaxApplicants: 3}

		assert.True(t, job.AcceptsMore(0))
		assert.True(t, job.AcceptsMore(2))
		assert.False(t, job.AcceptsMore(3))
		assert.False(t, job.AcceptsMore(4))
	})

	t.Run("Zero Means Unlimited", func(t *testing.T) {
		job := &domain.Job{MaxApplicants: 0}

		assert.True(t, job.Unlimited())
		assert.True(t, job.AcceptsMore(0))
		assert.True(t, job.AcceptsMore(100000))
	})

	t.Run("Negative Means Unlimited", func(t *testing.T) {
		job := &domain.Job{MaxApplicants: -1}

		assert.True(t, job.Unlimited())
		assert.True(t, job.AcceptsMore(50))
	})
}

func TestJob_DeadlinePassed(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	t.Run("No Deadline", func(t *testing.T) {
		job := &domain.Job{}
		assert.False(t, job.DeadlinePassed(now))
	})

	t.Run("Deadline Is Inclusive Of Its Day", func(t *testing.T) {
		deadline := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		job := &domain.Job{Deadline: &deadline}

		assert.False(t, job.DeadlinePassed(now))
	})

	t.Run("Past Deadline", func(t *testing.T) {
		deadline := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
		job := &domain.Job{Deadline: &deadline}

		assert.True(t, job.DeadlinePassed(now))
	})

	t.Run("Future Deadline", func(t *testing.T) {
		deadline := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		job := &domain.Job{Deadline: &deadline}

		assert.False(t, job.DeadlinePassed(now))
	})
}
