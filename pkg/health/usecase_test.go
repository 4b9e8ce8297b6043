package health

import (
	"context"
	"errors"
	"testing"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                    { return s.name }
func (s stubChecker) Check(ctx context.Context) error { return s.err }

func TestReadyAllHealthy(t *testing.T) {
	svc := NewService(stubChecker{name: "a"}, stubChecker{name: "b"})
	if err := svc.Ready(context.Background()); err != nil {
		t.Fatalf("Ready error: %v", err)
	}
}

func TestReadyFailsOnFirstError(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewService(stubChecker{name: "ok"}, stubChecker{name: "postgres", err: boom})

	err := svc.Ready(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped checker error, got %v", err)
	}
}

func TestReadyNoCheckers(t *testing.T) {
	if err := NewService().Ready(context.Background()); err != nil {
		t.Fatalf("Ready error: %v", err)
	}
}
