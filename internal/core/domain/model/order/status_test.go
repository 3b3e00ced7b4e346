package order_test

import (
	"testing"

	"tracking/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{order.Planned, order.InProgress, order.Completed, order.Cancelled} {
		require.NoError(t, s.Validate())
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Planned", order.Planned.String())
	assert.Equal(t, "InProgress", order.InProgress.String())
	assert.Equal(t, "Completed", order.Completed.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatus_Start(t *testing.T) {
	next, err := order.Planned.Start()
	require.NoError(t, err)
	assert.Equal(t, order.InProgress, next)

	next, err = order.InProgress.Start()
	require.NoError(t, err)
	assert.Equal(t, order.InProgress, next)

	_, err = order.Completed.Start()
	require.Error(t, err)

	_, err = order.Cancelled.Start()
	require.Error(t, err)
}

func TestStatus_Complete(t *testing.T) {
	next, err := order.InProgress.Complete()
	require.NoError(t, err)
	assert.Equal(t, order.Completed, next)

	_, err = order.Planned.Complete()
	require.Error(t, err)

	_, err = order.Completed.Complete()
	require.Error(t, err)
}

func TestStatus_Cancel(t *testing.T) {
	for _, s := range []order.Status{order.Planned, order.InProgress} {
		next, err := s.Cancel()
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, next)
	}

	_, err := order.Completed.Cancel()
	require.Error(t, err)

	_, err = order.Unknown.Cancel()
	require.Error(t, err)
}

func TestStatus_IsFinal(t *testing.T) {
	assert.True(t, order.Completed.IsFinal())
	assert.True(t, order.Cancelled.IsFinal())
	assert.False(t, order.Planned.IsFinal())
	assert.False(t, order.InProgress.IsFinal())
}
