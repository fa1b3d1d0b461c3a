package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenter_PushAndActive(t *testing.T) {
	c := NewCenter(time.Minute)

	c.Success("saved")
	c.Error("boom")
	c.Info("fyi")

	toasts := c.Active()
	require.Len(t, toasts, 3)
	assert.Equal(t, SeveritySuccess, toasts[0].Severity)
	assert.Equal(t, "saved", toasts[0].Message)
	assert.Equal(t, SeverityError, toasts[1].Severity)
	assert.Equal(t, SeverityInfo, toasts[2].Severity)
	assert.NotEqual(t, toasts[0].ID, toasts[1].ID)
}

func TestCenter_ToastsExpire(t *testing.T) {
	c := NewCenter(30 * time.Millisecond)

	c.Success("short-lived")
	require.Len(t, c.Active(), 1)

	assert.Eventually(t, func() bool { return len(c.Active()) == 0 },
		time.Second, 10*time.Millisecond)
}

func TestCenter_SubscribeReceivesToasts(t *testing.T) {
	c := NewCenter(time.Minute)

	got := make([]Toast, 0, 2)
	fn := func(t Toast) { got = append(got, t) }
	require.NoError(t, c.Subscribe(fn))

	c.Error("first")
	c.Success("second")

	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Message)
	assert.Equal(t, SeveritySuccess, got[1].Severity)

	require.NoError(t, c.Unsubscribe(fn))
	c.Info("third")
	assert.Len(t, got, 2)
}
