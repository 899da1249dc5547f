package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockDataset struct {
	n int
}

func (m *mockDataset) Len() int { return m.n }

type mockDBPinger struct {
	err error
}

func (m *mockDBPinger) Ping(_ context.Context) error { return m.err }

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockDataset{n: 100}, &mockDBPinger{})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["dataset"] != CheckOK {
		t.Errorf("expected dataset %q, got %q", CheckOK, r.Checks["dataset"])
	}
	if r.Checks["database"] != CheckOK {
		t.Errorf("expected database %q, got %q", CheckOK, r.Checks["database"])
	}
}

func TestCheck_EmptyDataset(t *testing.T) {
	svc := New(&mockDataset{}, nil)
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["dataset"] != CheckError {
		t.Errorf("expected dataset %q, got %q", CheckError, r.Checks["dataset"])
	}
}

func TestCheck_DBError(t *testing.T) {
	svc := New(&mockDataset{n: 100}, &mockDBPinger{err: errors.New("conn refused")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["database"] != CheckError {
		t.Errorf("expected database %q, got %q", CheckError, r.Checks["database"])
	}
	if r.Checks["dataset"] != CheckOK {
		t.Errorf("expected dataset %q, got %q", CheckOK, r.Checks["dataset"])
	}
}

func TestCheck_NoDB(t *testing.T) {
	svc := New(&mockDataset{n: 100}, nil)
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if _, ok := r.Checks["database"]; ok {
		t.Error("database check should be absent when serving from files")
	}
}
