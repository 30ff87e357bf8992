package logger_test

import (
	"testing"
	"time"

	"github.com/shashiranjanraj/bistro/pkg/logger"
)

func TestMongoHandlerCloseWaitsForDrain(t *testing.T) {
	h := logger.NewMongoHandler(nil)

	closed := make(chan struct{})
	go func() {
		h.Close()
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("Close returned before the drain loop finished")
	}

	// Second Close is a no-op and must not block.
	done := make(chan struct{})
	go func() {
		h.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("repeated Close blocked")
	}
}
