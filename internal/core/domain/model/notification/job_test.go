package notification_test

import (
	"encoding/json"
	"testing"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/notification"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJob(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("should create job with defaults", func(t *testing.T) {
		job, err := notification.NewJob(orderID, "+5511999887766", notification.KindOrderCreated, 3)

		require.NoError(t, err)
		assert.True(t, job.OrderID.IsEqual(orderID))
		assert.Equal(t, orderID.String(), job.OrderIDRaw)
		assert.Equal(t, "+5511999887766", job.PhoneNumber)
		assert.Equal(t, 0, job.Attempts)
		assert.Equal(t, 3, job.MaxAttempts)
		assert.False(t, job.Exhausted())
	})

	t.Run("should fail with zero order id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := notification.NewJob(invalidID, "+5511999887766", notification.KindOrderCreated, 3)

		require.Error(t, err)
	})

	t.Run("should require phone number", func(t *testing.T) {
		_, err := notification.NewJob(orderID, "", notification.KindOrderCreated, 3)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unknown kind", func(t *testing.T) {
		_, err := notification.NewJob(orderID, "+5511999887766", notification.Kind("bogus"), 3)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject non-positive max attempts", func(t *testing.T) {
		_, err := notification.NewJob(orderID, "+5511999887766", notification.KindOrderCreated, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestJob_AttemptCounting(t *testing.T) {
	job, err := notification.NewJob(kernel.NewUUID(), "+5511999887766", notification.KindOrderCreated, 3)
	require.NoError(t, err)

	job.RecordFailure()
	assert.Equal(t, 1, job.Attempts)
	assert.False(t, job.Exhausted())

	job.RecordFailure()
	job.RecordFailure()
	assert.True(t, job.Exhausted())
}

func TestJob_RoundTripThroughJSON(t *testing.T) {
	orderID := kernel.NewUUID()
	job, err := notification.NewJob(orderID, "+5511999887766", notification.KindOrderResend, 3)
	require.NoError(t, err)
	job.RecordFailure()

	raw, err := json.Marshal(job)
	require.NoError(t, err)

	var restored notification.Job
	require.NoError(t, json.Unmarshal(raw, &restored))
	require.NoError(t, restored.RestoreOrderID())

	assert.True(t, restored.OrderID.IsEqual(orderID))
	assert.Equal(t, job.PhoneNumber, restored.PhoneNumber)
	assert.Equal(t, job.Kind, restored.Kind)
	assert.Equal(t, 1, restored.Attempts)
	assert.Equal(t, 3, restored.MaxAttempts)
}

func TestJob_Payload(t *testing.T) {
	created, _ := notification.NewJob(kernel.NewUUID(), "+5511999887766", notification.KindOrderCreated, 3)
	resend, _ := notification.NewJob(kernel.NewUUID(), "+5511999887766", notification.KindOrderResend, 3)

	assert.NotEmpty(t, created.Payload())
	assert.NotEmpty(t, resend.Payload())
	assert.NotEqual(t, created.Payload(), resend.Payload())
}
