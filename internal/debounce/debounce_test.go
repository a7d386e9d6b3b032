// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
	fired chan struct{}
}

func newRecorder() *recorder {
	return &recorder{fired: make(chan struct{}, 16)}
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	r.calls = append(r.calls, v)
	r.mu.Unlock()
	r.fired <- struct{}{}
}

func (r *recorder) got() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func (r *recorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.fired:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced callback never ran")
	}
}

func TestTriggerCoalescesBurst(t *testing.T) {
	rec := newRecorder()
	d := New(30*time.Millisecond, rec.record)

	for _, v := range []string{"c", "co", "cou", "court"} {
		d.Trigger(v)
	}
	rec.wait(t)

	// Allow a stray second call to surface before asserting.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, []string{"court"}, rec.got())
}

func TestSeparatePausesFireSeparately(t *testing.T) {
	rec := newRecorder()
	d := New(10*time.Millisecond, rec.record)

	d.Trigger("legal")
	rec.wait(t)
	d.Trigger("housing")
	rec.wait(t)

	assert.Equal(t, []string{"legal", "housing"}, rec.got())
}

func TestFlush(t *testing.T) {
	rec := newRecorder()
	d := New(time.Hour, rec.record)

	assert.False(t, d.Flush(), "nothing pending")

	d.Trigger("bail")
	require.True(t, d.Flush())
	assert.Equal(t, []string{"bail"}, rec.got())
	assert.False(t, d.Flush(), "flush consumes the pending value")
}

func TestStop(t *testing.T) {
	rec := newRecorder()
	d := New(10*time.Millisecond, rec.record)

	d.Trigger("dropped")
	d.Stop()
	d.Trigger("ignored")
	time.Sleep(50 * time.Millisecond)

	assert.Empty(t, rec.got())
	assert.False(t, d.Flush())
}

func TestTriggerDoesNotWaitForRunningCallback(t *testing.T) {
	started := make(chan string, 4)
	release := make(chan struct{})
	d := New(time.Millisecond, func(v string) {
		started <- v
		<-release
	})
	defer d.Stop()

	d.Trigger("slow")
	select {
	case v := <-started:
		require.Equal(t, "slow", v)
	case <-time.After(2 * time.Second):
		t.Fatal("callback never started")
	}

	returned := make(chan struct{})
	go func() {
		d.Trigger("next")
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatal("Trigger blocked on the running callback")
	}

	close(release)
	select {
	case v := <-started:
		assert.Equal(t, "next", v)
	case <-time.After(2 * time.Second):
		t.Fatal("value triggered during the callback was lost")
	}
}

func TestTriggerFromCallback(t *testing.T) {
	rec := newRecorder()
	var d *Debouncer
	d = New(time.Millisecond, func(v string) {
		rec.record(v)
		if v == "first" {
			d.Trigger("second")
		}
	})
	defer d.Stop()

	d.Trigger("first")
	rec.wait(t)
	rec.wait(t)
	assert.Equal(t, []string{"first", "second"}, rec.got())
}

func TestDefaultDelay(t *testing.T) {
	d := New(0, func(string) {})
	assert.Equal(t, DefaultDelay, d.delay)
}
