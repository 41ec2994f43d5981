package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_CollapsesConcurrentCalls(t *testing.T) {
	var g SingleFlight
	var executions int32

	const workers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			val, err, _ := g.Do("game-schedule?seasonUuid=qcz-3NvSZ2Cmh", func() (any, error) {
				atomic.AddInt32(&executions, 1)
				time.Sleep(20 * time.Millisecond)
				return []byte(`{"gameInfo":[]}`), nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
			if _, ok := val.([]byte); !ok {
				t.Errorf("unexpected value type %T", val)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&executions); got != 1 {
		t.Fatalf("function ran %d times, want 1", got)
	}
}

func TestSingleFlight_DistinctKeysRunIndependently(t *testing.T) {
	var g SingleFlight

	first, err, shared := g.Do("teams/one", func() (any, error) { return "one", nil })
	if err != nil || shared {
		t.Fatalf("first call: val=%v err=%v shared=%t", first, err, shared)
	}

	second, err, shared := g.Do("teams/two", func() (any, error) { return "two", nil })
	if err != nil || shared {
		t.Fatalf("second call: val=%v err=%v shared=%t", second, err, shared)
	}

	if first == second {
		t.Fatal("distinct keys returned the same value")
	}
}
