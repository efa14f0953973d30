package commands

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/selfhash/internal/config"
)

type fakeServer struct {
	startErr    error
	stopped     chan struct{}
	shutdowns   atomic.Int32
	shutdownErr error
}

func newFakeServer(startErr error) *fakeServer {
	return &fakeServer{startErr: startErr, stopped: make(chan struct{})}
}

func (f *fakeServer) Start(ctx context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}
	<-f.stopped
	return nil
}

func (f *fakeServer) Shutdown(ctx context.Context) error {
	if f.shutdowns.Add(1) == 1 {
		close(f.stopped)
	}
	return f.shutdownErr
}

func TestServe(t *testing.T) {
	cfg := &config.Config{ShutdownTimeout: time.Second}

	t.Run("Success_ContextCancelled", func(t *testing.T) {
		api, metrics := newFakeServer(nil), newFakeServer(nil)
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() {
			done <- serve(ctx, []runnable{api, metrics}, cfg, discardLogger())
		}()
		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("serve did not return")
		}
		assert.Equal(t, int32(1), api.shutdowns.Load())
		assert.Equal(t, int32(1), metrics.shutdowns.Load())
	})

	t.Run("Error_ServerFailureStopsOthers", func(t *testing.T) {
		bindErr := errors.New("address already in use")
		api, metrics := newFakeServer(bindErr), newFakeServer(nil)

		err := serve(context.Background(), []runnable{api, metrics}, cfg, discardLogger())

		assert.ErrorIs(t, err, bindErr)
		assert.Equal(t, int32(1), metrics.shutdowns.Load())
	})
}

func TestRunServer_InvalidConfig(t *testing.T) {
	err := RunServer(context.Background(), &config.Config{}, "test")

	assert.ErrorContains(t, err, "invalid configuration")
}
