package shutdown

import (
	"sync"
	"testing"
	"time"

	"image-viewer/internal/logger"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu    sync.Mutex
	order []string
}

func (r *recorder) add(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, name)
}

type step struct {
	name string
	rec  *recorder
	wait chan struct{}
}

func (s step) Shutdown() {
	if s.wait != nil {
		<-s.wait
	}
	s.rec.add(s.name)
}

func TestShutdownRunsInReverseOrderOnce(t *testing.T) {
	rec := &recorder{}
	m := NewManager(logger.Nop())
	m.Register("config", step{name: "config", rec: rec})
	m.Register("window", step{name: "window", rec: rec})

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"window", "config"}, rec.order)
	assert.Error(t, m.Context().Err())

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownSkipsStuckComponent(t *testing.T) {
	rec := &recorder{}
	stuck := make(chan struct{})
	defer close(stuck)

	m := NewManager(logger.Nop())
	m.stepTimeout = 10 * time.Millisecond
	m.Register("first", step{name: "first", rec: rec})
	m.Register("stuck", step{name: "stuck", rec: rec, wait: stuck})

	m.Shutdown()

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, []string{"first"}, rec.order)
}
