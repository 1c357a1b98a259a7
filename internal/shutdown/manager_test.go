package shutdown

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name  string
	mu    *sync.Mutex
	order *[]string
	delay time.Duration
}

func (r recorder) Shutdown() {
	time.Sleep(r.delay)
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.order = append(*r.order, r.name)
}

func TestShutdownRunsInReverseOrderOnce(t *testing.T) {
	var mu sync.Mutex
	var order []string

	m := NewManager(nil, time.Second)
	m.Register(recorder{name: "controller", mu: &mu, order: &order})
	m.Register(recorder{name: "service", mu: &mu, order: &order})

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"service", "controller"}, order)

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownDoesNotWaitPastTimeout(t *testing.T) {
	var mu sync.Mutex
	var order []string

	m := NewManager(nil, 20*time.Millisecond)
	m.Register(recorder{name: "slow", mu: &mu, order: &order, delay: 500 * time.Millisecond})

	start := time.Now()
	m.Shutdown()
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}

func TestListenStopsAfterShutdown(t *testing.T) {
	m := NewManager(nil, time.Second)
	called := false
	m.Listen(func() { called = true })
	m.Shutdown()

	assert.False(t, called)
}
