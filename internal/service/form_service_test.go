package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"go.uber.org/zap"

	"leadform/internal/model"
	"leadform/internal/repository"
)

type fakeStore struct {
	submissions []model.Submission
	nextID      int64
	createErr   error
}

func (f *fakeStore) Create(ctx context.Context, s *model.Submission) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	s.ID = f.nextID
	s.CreatedAt = time.Now().Add(time.Duration(f.nextID) * time.Second)
	f.submissions = append(f.submissions, *s)
	return nil
}

func (f *fakeStore) List(ctx context.Context) ([]model.Submission, error) {
	out := make([]model.Submission, len(f.submissions))
	copy(out, f.submissions)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeStore) FindByID(ctx context.Context, id int64) (*model.Submission, error) {
	for i := range f.submissions {
		if f.submissions[i].ID == id {
			s := f.submissions[i]
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeNotifier struct {
	calls int
	err   error
}

func (f *fakeNotifier) Notify(ctx context.Context, s *model.Submission) error {
	f.calls++
	return f.err
}

func TestCreatePersistsEvenWhenNotifierFails(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{err: errors.New("relay unreachable")}
	svc := NewFormService(store, notifier, zap.NewNop())

	sub, err := svc.Create(context.Background(), "Jane Doe", "555-0100", "web design", "new site")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sub.ID == 0 {
		t.Fatal("expected store-assigned id")
	}
	if len(store.submissions) != 1 {
		t.Fatalf("expected exactly one persisted row, got %d", len(store.submissions))
	}
	if notifier.calls != 1 {
		t.Fatalf("expected one notification attempt, got %d", notifier.calls)
	}
}

func TestCreateStoreFailure(t *testing.T) {
	store := &fakeStore{createErr: errors.New("pool exhausted")}
	notifier := &fakeNotifier{}
	svc := NewFormService(store, notifier, zap.NewNop())

	if _, err := svc.Create(context.Background(), "Jane", "555", "seo", "desc"); err == nil {
		t.Fatal("expected store error to surface")
	}
	if notifier.calls != 0 {
		t.Fatal("no notification may be sent when the write fails")
	}
}

func TestListNewestFirst(t *testing.T) {
	store := &fakeStore{}
	svc := NewFormService(store, &fakeNotifier{}, zap.NewNop())

	for _, name := range []string{"A", "B", "C"} {
		if _, err := svc.Create(context.Background(), name, "555", "seo", "desc"); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"C", "B", "A"}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, got[i].Name)
		}
	}
}

func TestResendUnknownID(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	svc := NewFormService(store, notifier, zap.NewNop())

	err := svc.Resend(context.Background(), 42)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if notifier.calls != 0 {
		t.Fatal("no email may be sent for an unknown id")
	}
}

func TestResendNotifierFailureSurfaces(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	svc := NewFormService(store, notifier, zap.NewNop())

	sub, err := svc.Create(context.Background(), "Jane", "555", "seo", "desc")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	notifier.err = errors.New("relay down")
	if err := svc.Resend(context.Background(), sub.ID); err == nil {
		t.Fatal("expected resend failure to surface")
	}

	// The row must remain untouched.
	if _, err := store.FindByID(context.Background(), sub.ID); err != nil {
		t.Fatalf("submission disappeared after failed resend: %v", err)
	}
}
