package platform

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstanceLock(t *testing.T) {
	appName := fmt.Sprintf("pomodoro-test-%d", time.Now().UnixNano())

	first, err := AcquireInstanceLock(appName)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("127.0.0.1:%d", LockPort(appName)), first.Address())

	_, err = AcquireInstanceLock(appName)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, first.Release())
	require.NoError(t, first.Release())
	assert.Empty(t, first.Address())

	again, err := AcquireInstanceLock(appName)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestLockPortIsStable(t *testing.T) {
	port := LockPort("Pomodoro")
	assert.Equal(t, port, LockPort("Pomodoro"))
	assert.GreaterOrEqual(t, port, minLockPort)
	assert.LessOrEqual(t, port, maxLockPort)
}

func TestReleaseNil(t *testing.T) {
	var lock *InstanceLock
	assert.NoError(t, lock.Release())
	assert.Empty(t, lock.Address())
}
