package greeting

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestWelcomeMessage(t *testing.T) {
	got := WelcomeMessage()
	want := Message{
		Message:   "Hello from the business logic layer!",
		Status:    "success",
		Timestamp: "2024-01-01T00:00:00Z",
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestWelcomeTimestampIsRFC3339(t *testing.T) {
	ts, err := time.Parse(time.RFC3339, WelcomeMessage().Timestamp)
	if err != nil {
		t.Fatalf("timestamp is not RFC 3339: %v", err)
	}
	if !ts.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected timestamp: %s", ts)
	}
}

func TestStaticServiceIsStable(t *testing.T) {
	svc := NewService()

	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			msg, err := svc.Welcome(context.Background())
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if *msg != WelcomeMessage() {
				t.Errorf("unexpected message: %+v", msg)
			}
		})
	}
	wg.Wait()
}

func TestStaticServiceReturnsIndependentCopies(t *testing.T) {
	svc := NewService()
	first, _ := svc.Welcome(context.Background())
	first.Message = "mutated"

	second, _ := svc.Welcome(context.Background())
	if second.Message != "Hello from the business logic layer!" {
		t.Fatalf("mutation leaked between calls: %+v", second)
	}
}

func TestMockService(t *testing.T) {
	mock := &MockService{}
	if _, err := mock.Welcome(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.Err = errors.New("unavailable")
	if _, err := mock.Welcome(context.Background()); !errors.Is(err, mock.Err) {
		t.Fatalf("expected configured error, got %v", err)
	}
	if mock.Calls() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.Calls())
	}
}

var (
	_ Service = (*StaticService)(nil)
	_ Service = (*MockService)(nil)
)
