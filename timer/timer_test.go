package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimerMilliseconds(t *testing.T) {
	tm := New()

	first := tm.Milliseconds()
	time.Sleep(5 * time.Millisecond)
	second := tm.Milliseconds()

	require.GreaterOrEqual(t, first, int64(0))
	require.GreaterOrEqual(t, second, first, "elapsed time should never go backwards")
	require.GreaterOrEqual(t, second, int64(5), "at least the slept duration should have elapsed")
}

func TestTimerReset(t *testing.T) {
	tm := New()
	time.Sleep(5 * time.Millisecond)

	tm.Reset()

	require.Less(t, tm.Milliseconds(), int64(5), "reset should restart the elapsed count")
}
