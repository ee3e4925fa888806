package catalog_test

import (
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/assetimport/internal/adapters/catalog"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls atomic.Int32
		d := catalog.NewDebouncer(100*time.Millisecond, func() { calls.Add(1) })

		for range 5 {
			d.Trigger()
			time.Sleep(50 * time.Millisecond)
		}
		synctest.Wait()
		assert.Zero(t, calls.Load(), "window restarts on every trigger")

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls atomic.Int32
		d := catalog.NewDebouncer(time.Second, func() { calls.Add(1) })

		d.Trigger()
		d.Stop()
		time.Sleep(2 * time.Second)
		synctest.Wait()
		assert.Zero(t, calls.Load())
	})
}
