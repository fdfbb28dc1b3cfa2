package backend_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/boardgate/internal/gateway/backend"
	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/aussiebroadwan/boardgate/pkg/slogx"
	"github.com/stretchr/testify/require"
)

// stubBackend embeds the interface so each instance is a distinct handle;
// calling any method panics.
type stubBackend struct {
	backend.Backend
	n int
}

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func TestConnectorRecyclesLazily(t *testing.T) {
	clk := &clock{t: time.Unix(1_700_000_000, 0)}
	built := 0
	factory := func() (backend.Backend, error) {
		built++
		return &stubBackend{n: built}, nil
	}

	c := backend.NewConnector(factory, 5*time.Minute, slogx.Discard(), backend.WithConnectorClock(clk.now))
	require.False(t, c.Ready())

	h1, err := c.Handle()
	require.NoError(t, err)
	require.True(t, c.Ready())

	clk.advance(4 * time.Minute)
	h2, err := c.Handle()
	require.NoError(t, err)
	require.Same(t, h1, h2)

	clk.advance(2 * time.Minute)
	h3, err := c.Handle()
	require.NoError(t, err)
	require.NotSame(t, h1, h3)
	require.Equal(t, 2, built)
}

func TestConnectorKeepsHandleOnFailedRecycle(t *testing.T) {
	clk := &clock{t: time.Unix(1_700_000_000, 0)}
	fail := false
	factory := func() (backend.Backend, error) {
		if fail {
			return nil, errors.New("boom")
		}
		return &stubBackend{}, nil
	}

	c := backend.NewConnector(factory, time.Minute, slogx.Discard(), backend.WithConnectorClock(clk.now))
	h1, err := c.Handle()
	require.NoError(t, err)

	fail = true
	clk.advance(2 * time.Minute)
	h2, err := c.Handle()
	require.NoError(t, err)
	require.Same(t, h1, h2)
}

func TestConnectorNoHandle(t *testing.T) {
	c := backend.NewConnector(func() (backend.Backend, error) {
		return nil, errors.New("no route")
	}, time.Minute, slogx.Discard())

	_, err := c.Handle()
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	require.Equal(t, backend.UnavailableMessage, de.Message)
	require.Equal(t, domain.KindUpstream, domain.KindOf(err))
}

func TestConnectorStartStop(t *testing.T) {
	built := make(chan struct{}, 10)
	c := backend.NewConnector(func() (backend.Backend, error) {
		select {
		case built <- struct{}{}:
		default:
		}
		return &stubBackend{}, nil
	}, 10*time.Millisecond, slogx.Discard())

	c.Start()
	<-built
	<-built
	c.Stop()
	require.True(t, c.Ready())
}
