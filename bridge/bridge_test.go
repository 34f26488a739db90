package bridge

import (
	"strings"
	"sync"
	"testing"
)

// recorder collects every message it is handed.
type recorder struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recorder) HandleMessage(msg string) {
	r.mu.Lock()
	r.msgs = append(r.msgs, msg)
	r.mu.Unlock()
}

func (r *recorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.msgs...)
}

func TestBridge_Forward(t *testing.T) {
	rec := &recorder{}
	b := New(rec)

	b.Forward("value=%d", 42)
	b.Forward("%s-%s", "a", "b")
	b.Forward("ready")
	b.Forward("%s", strings.Repeat("x", 3000))

	got := rec.messages()
	if len(got) != 4 {
		t.Fatalf("handler invoked %d times, want 4", len(got))
	}
	want := []string{"value=42", "a-b", "ready", strings.Repeat("x", MaxMessageSize-1)}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("message %d = %q (len %d), want len %d", i, got[i][:min(len(got[i]), 32)], len(got[i]), len(want[i]))
		}
	}
}

// renderedRecorder records the exact truncation result from Forward.
type renderedRecorder struct {
	recorder
	flags []bool
	plain int
}

func (r *renderedRecorder) HandleMessage(msg string) {
	r.plain++
	r.recorder.HandleMessage(msg)
}

func (r *renderedRecorder) HandleRenderedMessage(msg string, truncated bool) {
	r.flags = append(r.flags, truncated)
	r.recorder.HandleMessage(msg)
}

func TestBridge_ForwardPassesExactTruncation(t *testing.T) {
	rec := &renderedRecorder{}
	b := New(rec)

	b.Forward("%s", strings.Repeat("y", MaxMessageSize-1))
	b.Forward("%s", strings.Repeat("x", 3000))
	b.Dispatch("raw")

	if len(rec.flags) != 2 || rec.flags[0] || !rec.flags[1] {
		t.Errorf("truncation flags = %v, want [false true]", rec.flags)
	}
	if rec.plain != 1 {
		t.Errorf("HandleMessage called %d times, want 1 (from Dispatch)", rec.plain)
	}
	if n := len(rec.messages()); n != 3 {
		t.Errorf("handler invoked %d times, want 3", n)
	}
}

func TestBridge_DispatchOncePerCall(t *testing.T) {
	var calls int
	b := New(HandlerFunc(func(string) { calls++ }))

	for i := 0; i < 10; i++ {
		b.Dispatch("")
	}
	if calls != 10 {
		t.Errorf("handler invoked %d times, want 10", calls)
	}
}

func TestBridge_SetHandler(t *testing.T) {
	first := &recorder{}
	second := &recorder{}
	b := New(first)

	if prev := b.SetHandler(second); prev != first {
		t.Errorf("SetHandler returned %v, want first handler", prev)
	}
	b.Dispatch("hello")

	if len(first.messages()) != 0 {
		t.Error("replaced handler still received messages")
	}
	if got := second.messages(); len(got) != 1 || got[0] != "hello" {
		t.Errorf("second handler got %v", got)
	}
}

func TestBridge_NilRestoresDefault(t *testing.T) {
	b := New(nil)
	if b.Handler() != Default() {
		t.Error("New(nil) did not bind the default handler")
	}

	b.SetHandler(&recorder{})
	b.SetHandler(nil)
	if b.Handler() != Default() {
		t.Error("SetHandler(nil) did not restore the default handler")
	}
}

func TestBridge_HandlerPanicPropagates(t *testing.T) {
	b := New(HandlerFunc(func(string) { panic("boom") }))

	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("recovered %v, want handler panic", r)
		}
	}()
	b.Dispatch("x")
	t.Error("Dispatch returned after handler panic")
}

func TestPackageLevel(t *testing.T) {
	rec := &recorder{}
	prev := SetHandler(rec)
	defer SetHandler(prev)

	if CurrentHandler() != rec {
		t.Fatal("CurrentHandler did not return installed handler")
	}

	Forward("port=%d", 8080)
	Dispatch("raw")

	got := rec.messages()
	if len(got) != 2 || got[0] != "port=8080" || got[1] != "raw" {
		t.Errorf("messages = %q", got)
	}
}

func TestBridge_ConcurrentForward(t *testing.T) {
	rec := &recorder{}
	b := New(rec)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b.Forward("n=%d", j)
			}
		}()
	}
	wg.Wait()

	if n := len(rec.messages()); n != 800 {
		t.Errorf("handler invoked %d times, want 800", n)
	}
}
