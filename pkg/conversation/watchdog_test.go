package conversation

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWatchdogFiresAfterTimeout(t *testing.T) {
	var fired atomic.Int32
	w := NewWatchdog(20*time.Millisecond, func() { fired.Add(1) })
	defer w.Cancel()

	w.Arm()
	assert.True(t, w.Armed())

	assert.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestWatchdogCancelStopsPendingFire(t *testing.T) {
	var fired atomic.Int32
	w := NewWatchdog(20*time.Millisecond, func() { fired.Add(1) })

	w.Arm()
	w.Cancel()
	assert.False(t, w.Armed())

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestWatchdogRearmDiscardsPreviousTimer(t *testing.T) {
	var fired atomic.Int32
	w := NewWatchdog(40*time.Millisecond, func() { fired.Add(1) })
	defer w.Cancel()

	w.Arm()
	time.Sleep(25 * time.Millisecond)
	w.Arm() // restart before the first fire

	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load(), "re-arm must reset the countdown")

	assert.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestWatchdogCancelIdempotent(t *testing.T) {
	w := NewWatchdog(time.Minute, func() {})
	w.Cancel()
	w.Cancel()
	assert.False(t, w.Armed())
}
