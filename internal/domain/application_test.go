package domain_test

import (
	"errors"
	"testing"

	"arakkha-job-connect/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestParseApplicationStatus(t *testing.T) {
	cases := []struct {
		input    string
		expected domain.ApplicationStatus
	}{
		{"pending", domain.StatusPending},
		{"review", domain.StatusReview},
		{"shortlist", domain.StatusShortlist},
		{"hired", domain.StatusHired},
		{"rejected", domain.StatusRejected},
		{"Hired", domain.StatusHired},
		{"REJECTED", domain.StatusRejected},
		{"  review  ", domain.StatusReview},
		{"P", domain.StatusPending},
		{"sl", domain.StatusShortlist},
		{"rj", domain.StatusRejected},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			status, err := domain.ParseApplicationStatus(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		})
	}

	t.Run("Unknown Label", func(t *testing.T) {
		_, err := domain.ParseApplicationStatus("approved")

		var invalid *domain.InvalidStatusError
		assert.True(t, errors.As(err, &invalid))
		assert.Equal(t, "approved", invalid.Given)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := domain.ParseApplicationStatus("")

		var invalid *domain.InvalidStatusError
		assert.True(t, errors.As(err, &invalid))
	})
}

func TestApplicationStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		name    string
		from    domain.ApplicationStatus
		to      domain.ApplicationStatus
		allowed bool
	}{
		{"Pending to Review", domain.StatusPending, domain.StatusReview, true},
		{"Pending to Shortlist", domain.StatusPending, domain.StatusShortlist, false},
		{"Pending to Hired", domain.StatusPending, domain.StatusHired, false},
		{"Pending to Rejected", domain.StatusPending, domain.StatusRejected, false},
		{"Review to Shortlist", domain.StatusReview, domain.StatusShortlist, true},
		{"Review to Rejected", domain.StatusReview, domain.StatusRejected, true},
		{"Review to Hired", domain.StatusReview, domain.StatusHired, false},
		{"Review to Pending", domain.StatusReview, domain.StatusPending, false},
		{"Shortlist to Hired", domain.StatusShortlist, domain.StatusHired, true},
		{"Shortlist to Rejected", domain.StatusShortlist, domain.StatusRejected, true},
		{"Shortlist to Review", domain.StatusShortlist, domain.StatusReview, false},
		{"Hired is terminal", domain.StatusHired, domain.StatusReview, false},
		{"Rejected is terminal", domain.StatusRejected, domain.StatusReview, false},
		{"No self loop", domain.StatusReview, domain.StatusReview, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestApplicationStatus_IsTerminal(t *testing.T) {
	assert.True(t, domain.StatusHired.IsTerminal())
	assert.True(t, domain.StatusRejected.IsTerminal())
	assert.False(t, domain.StatusPending.IsTerminal())
	assert.False(t, domain.StatusReview.IsTerminal())
	assert.False(t, domain.StatusShortlist.IsTerminal())
	assert.False(t, domain.ApplicationStatus("X").IsTerminal())
}

func TestApplication_Transition(t *testing.T) {
	t.Run("Full Hiring Path", func(t *testing.T) {
		app := &domain.Application{Status: domain.StatusPending}

		assert.NoError(t, app.Transition(domain.StatusReview))
		assert.Equal(t, domain.StatusReview, app.Status)

		assert.NoError(t, app.Transition(domain.StatusShortlist))
		assert.NoError(t, app.Transition(domain.StatusHired))
		assert.Equal(t, domain.StatusHired, app.Status)
	})

	t.Run("Skipping Review Is Refused", func(t *testing.T) {
		app := &domain.Application{Status: domain.StatusPending}

		err := app.Transition(domain.StatusHired)

		var illegal *domain.IllegalTransitionError
		assert.True(t, errors.As(err, &illegal))
		assert.Equal(t, domain.StatusPending, illegal.From)
		assert.Equal(t, domain.StatusHired, illegal.Requested)
		assert.Equal(t, []string{"R"}, illegal.AllowedNext())

		// Status is untouched after a refused move.
		assert.Equal(t, domain.StatusPending, app.Status)

		// The legal move still goes through afterwards.
		assert.NoError(t, app.Transition(domain.StatusReview))

		err = app.Transition(domain.StatusHired)
		assert.True(t, errors.As(err, &illegal))
		assert.Equal(t, []string{"SL", "RJ"}, illegal.AllowedNext())
	})

	t.Run("Terminal State Rejects Everything", func(t *testing.T) {
		app := &domain.Application{Status: domain.StatusRejected}

		var illegal *domain.IllegalTransitionError
		for _, next := range []domain.ApplicationStatus{
			domain.StatusPending, domain.StatusReview, domain.StatusShortlist, domain.StatusHired,
		} {
			err := app.Transition(next)
			assert.True(t, errors.As(err, &illegal))
			assert.Empty(t, illegal.AllowedNext())
		}
	})

	t.Run("Invalid Code", func(t *testing.T) {
		app := &domain.Application{Status: domain.StatusPending}

		err := app.Transition(domain.ApplicationStatus("Z"))

		var invalid *domain.InvalidStatusError
		assert.True(t, errors.As(err, &invalid))
		assert.Equal(t, domain.StatusPending, app.Status)
	})
}

func TestValidStatusCodes(t *testing.T) {
	assert.Equal(t, []string{"P", "R", "SL", "H", "RJ"}, domain.ValidStatusCodes())
}

func TestApplicationStatus_Display(t *testing.T) {
	assert.Equal(t, "Pending", domain.StatusPending.Display())
	assert.Equal(t, "Shortlist", domain.StatusShortlist.Display())
	assert.Equal(t, "hired", domain.StatusHired.Label())
}
