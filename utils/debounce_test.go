package utils

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer(t *testing.T) {
	t.Run("runs once after the quiet period", func(t *testing.T) {
		var runs int32
		d := NewDebouncer(20*time.Millisecond, func() { atomic.AddInt32(&runs, 1) })
		defer d.Stop()

		d.Trigger()
		time.Sleep(60 * time.Millisecond)

		assert.Equal(t, int32(1), atomic.LoadInt32(&runs))
	})

	t.Run("burst of triggers coalesces into one run", func(t *testing.T) {
		var runs int32
		d := NewDebouncer(30*time.Millisecond, func() { atomic.AddInt32(&runs, 1) })
		defer d.Stop()

		for i := 0; i < 5; i++ {
			d.Trigger()
			time.Sleep(5 * time.Millisecond)
		}
		time.Sleep(80 * time.Millisecond)

		assert.Equal(t, int32(1), atomic.LoadInt32(&runs))
	})

	t.Run("stop cancels the pending run", func(t *testing.T) {
		var runs int32
		d := NewDebouncer(20*time.Millisecond, func() { atomic.AddInt32(&runs, 1) })

		d.Trigger()
		d.Stop()
		time.Sleep(60 * time.Millisecond)

		assert.Equal(t, int32(0), atomic.LoadInt32(&runs))
	})

	t.Run("triggers after stop are ignored", func(t *testing.T) {
		var runs int32
		d := NewDebouncer(10*time.Millisecond, func() { atomic.AddInt32(&runs, 1) })

		d.Stop()
		d.Trigger()
		time.Sleep(40 * time.Millisecond)

		assert.Equal(t, int32(0), atomic.LoadInt32(&runs))
	})
}
