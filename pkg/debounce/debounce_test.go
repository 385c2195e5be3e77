package debounce_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/debounce"
)

// recorder collects delivered values with timestamps so tests can assert
// both the coalescing behavior and the firing time.
type recorder struct {
	mu     sync.Mutex
	values []string
	times  []time.Time
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
	r.times = append(r.times, time.Now())
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func TestDebouncer_ZeroDelayPassThrough(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	d := debounce.New(0)

	d.Call(func() { rec.record("a") })
	d.Call(func() { rec.record("b") })
	d.Call(func() { rec.record("c") })

	assert.Equal(t, []string{"a", "b", "c"}, rec.snapshot())
	assert.False(t, d.Pending())
}

func TestDebouncer_CoalescesBurstToTrailingCall(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	d := debounce.New(50 * time.Millisecond)

	d.Call(func() { rec.record("a") })
	d.Call(func() { rec.record("b") })
	d.Call(func() { rec.record("c") })

	require.True(t, d.Pending())
	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"c"}, rec.snapshot())
	assert.False(t, d.Pending())
}

func TestDebouncer_SeparateWindowsFireIndependently(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	d := debounce.New(30 * time.Millisecond)

	d.Call(func() { rec.record("first") })
	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)

	d.Call(func() { rec.record("second") })
	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 2
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"first", "second"}, rec.snapshot())
}

func TestDebouncer_TrailingFireAfterStaggeredBurst(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	d := debounce.New(300 * time.Millisecond)

	start := time.Now()
	d.Call(func() { rec.record("A") })
	time.Sleep(100 * time.Millisecond)
	d.Call(func() { rec.record("B") })
	time.Sleep(100 * time.Millisecond)
	d.Call(func() { rec.record("C") })

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, []string{"C"}, rec.snapshot())

	rec.mu.Lock()
	firedAt := rec.times[0]
	rec.mu.Unlock()

	// Fires 300ms after the last call, i.e. about 500ms after the burst
	// started. Lower bound is exact; upper bound allows for scheduling.
	elapsed := firedAt.Sub(start)
	assert.GreaterOrEqual(t, elapsed, 490*time.Millisecond)
	assert.Less(t, elapsed, time.Second)
}

func TestDebouncer_Stop(t *testing.T) {
	t.Parallel()

	var fired atomic.Int32
	d := debounce.New(20 * time.Millisecond)

	d.Call(func() { fired.Add(1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
	assert.False(t, d.Pending())
}

func TestDebouncer_FlushFiresImmediately(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	d := debounce.New(time.Hour)

	d.Call(func() { rec.record("pending") })
	require.True(t, d.Pending())

	d.Flush()
	assert.Equal(t, []string{"pending"}, rec.snapshot())
	assert.False(t, d.Pending())

	// Flushing with nothing pending is a no-op.
	d.Flush()
	assert.Equal(t, []string{"pending"}, rec.snapshot())
}

func TestDebouncer_NegativeDelayTreatedAsZero(t *testing.T) {
	t.Parallel()

	var fired atomic.Int32
	d := debounce.New(-time.Second)
	require.Equal(t, time.Duration(0), d.Delay())

	d.Call(func() { fired.Add(1) })
	assert.Equal(t, int32(1), fired.Load())
}

func TestDebouncer_NilFuncIgnored(t *testing.T) {
	t.Parallel()

	d := debounce.New(0)
	assert.NotPanics(t, func() { d.Call(nil) })
}

func TestFunc_ForwardsLatestArgument(t *testing.T) {
	t.Parallel()

	t.Run("zero delay forwards every call in order", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		fn := debounce.Func(0, rec.record)

		fn("a")
		fn("b")
		fn("c")

		assert.Equal(t, []string{"a", "b", "c"}, rec.snapshot())
	})

	t.Run("positive delay delivers only the trailing argument", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		fn := debounce.Func(40*time.Millisecond, rec.record)

		fn("a")
		fn("b")
		fn("c")

		require.Eventually(t, func() bool {
			return len(rec.snapshot()) == 1
		}, time.Second, 5*time.Millisecond)
		assert.Equal(t, []string{"c"}, rec.snapshot())
	})
}

func TestDebouncer_ConcurrentCalls(t *testing.T) {
	t.Parallel()

	var fired atomic.Int32
	d := debounce.New(30 * time.Millisecond)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Call(func() { fired.Add(1) })
		}()
	}
	wg.Wait()

	require.Eventually(t, func() bool {
		return fired.Load() == 1
	}, time.Second, 5*time.Millisecond)

	// No stragglers after the single trailing fire.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}
