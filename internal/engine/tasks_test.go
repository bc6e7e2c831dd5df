package engine

import (
	"context"
	"errors"
	"testing"

	"daymark/internal/storage"
)

func TestCreateAndList(t *testing.T) {
	svc := newTestService(t, newTestStore(t), "a@example.com")
	ctx := context.Background()

	created, err := svc.Tasks().Create(ctx, "water plants", "the big ones first", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Completed {
		t.Fatalf("new task should not be completed")
	}

	list := svc.Tasks().List()
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}
	if list[0].Summary != "water plants" {
		t.Fatalf("summary = %q, want %q", list[0].Summary, "water plants")
	}
	if list[0].ID != created.ID {
		t.Fatalf("id = %d, want %d", list[0].ID, created.ID)
	}
}

func TestCreateRejectsBlankSummary(t *testing.T) {
	svc := newTestService(t, newTestStore(t), "a@example.com")
	ctx := context.Background()

	for _, summary := range []string{"", "   ", "\t\n"} {
		_, err := svc.Tasks().Create(ctx, summary, "", "")
		var verr ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Create(%q) err = %v, want ValidationError", summary, err)
		}
		if got := len(svc.Tasks().List()); got != 0 {
			t.Fatalf("collection length = %d after rejected create, want 0", got)
		}
	}
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	svc := newTestService(t, newTestStore(t), "a@example.com")
	ctx := context.Background()

	created, err := svc.Tasks().Create(ctx, "call dentist", "", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	after1, found, err := svc.Tasks().Toggle(ctx, created.ID)
	if err != nil || !found {
		t.Fatalf("toggle: found=%v err=%v", found, err)
	}
	if !after1.Completed {
		t.Fatalf("first toggle should complete the task")
	}

	after2, found, err := svc.Tasks().Toggle(ctx, created.ID)
	if err != nil || !found {
		t.Fatalf("second toggle: found=%v err=%v", found, err)
	}
	if after2 != created {
		t.Fatalf("toggle twice = %+v, want original %+v", after2, created)
	}
}

func TestToggleUnknownIDIsSilentNoOp(t *testing.T) {
	svc := newTestService(t, newTestStore(t), "a@example.com")
	ctx := context.Background()

	if _, err := svc.Tasks().Create(ctx, "one", "", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	before := svc.Tasks().List()

	_, found, err := svc.Tasks().Toggle(ctx, 9999)
	if err != nil {
		t.Fatalf("toggle unknown: %v", err)
	}
	if found {
		t.Fatalf("expected found=false for unknown id")
	}
	after := svc.Tasks().List()
	if len(after) != len(before) || after[0] != before[0] {
		t.Fatalf("collection changed by unknown-id toggle")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc := newTestService(t, newTestStore(t), "a@example.com")
	ctx := context.Background()

	created, err := svc.Tasks().Create(ctx, "one", "", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Tasks().Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Tasks().Delete(ctx, created.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if err := svc.Tasks().Delete(ctx, 424242); err != nil {
		t.Fatalf("delete unknown: %v", err)
	}
	if got := len(svc.Tasks().List()); got != 0 {
		t.Fatalf("collection length = %d, want 0", got)
	}
}

func TestPartitionPreservesInsertionOrder(t *testing.T) {
	svc := newTestService(t, newTestStore(t), "a@example.com")
	ctx := context.Background()

	var ids []int64
	for _, s := range []string{"first", "second", "third", "fourth"} {
		created, err := svc.Tasks().Create(ctx, s, "", "")
		if err != nil {
			t.Fatalf("create %q: %v", s, err)
		}
		ids = append(ids, created.ID)
	}
	// Complete the second and fourth out of order.
	if _, _, err := svc.Tasks().Toggle(ctx, ids[3]); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, _, err := svc.Tasks().Toggle(ctx, ids[1]); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	pending := svc.Tasks().Pending()
	if len(pending) != 2 || pending[0].Summary != "first" || pending[1].Summary != "third" {
		t.Fatalf("pending = %+v, want first,third", pending)
	}
	completed := svc.Tasks().Completed()
	if len(completed) != 2 || completed[0].Summary != "second" || completed[1].Summary != "fourth" {
		t.Fatalf("completed = %+v, want second,fourth", completed)
	}
}

func TestIdentitiesAreIsolated(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	svcA := newTestService(t, store, "a@example.com")
	svcB := newTestService(t, store, "b@example.com")

	if _, err := svcB.Tasks().Create(ctx, "b's own task", "", ""); err != nil {
		t.Fatalf("create for b: %v", err)
	}
	if _, err := svcA.Tasks().Create(ctx, "a's task", "", ""); err != nil {
		t.Fatalf("create for a: %v", err)
	}

	// Reload b from storage: a's write must not be visible.
	svcB2 := newTestService(t, store, "b@example.com")
	list := svcB2.Tasks().List()
	if len(list) != 1 || list[0].Summary != "b's own task" {
		t.Fatalf("b sees %+v, want only its own task", list)
	}
}

func TestIDsStayUniqueAcrossReload(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	svc := newTestService(t, store, "a@example.com")
	first, err := svc.Tasks().Create(ctx, "one", "", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.Tasks().Create(ctx, "two", "", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.ID <= first.ID {
		t.Fatalf("ids not increasing: %d then %d", first.ID, second.ID)
	}

	reloaded := newTestService(t, store, "a@example.com")
	third, err := reloaded.Tasks().Create(ctx, "three", "", "")
	if err != nil {
		t.Fatalf("create after reload: %v", err)
	}
	if third.ID <= second.ID {
		t.Fatalf("id %d after reload collides with existing %d", third.ID, second.ID)
	}
}

func TestCorruptTaskPayloadRecovered(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, storage.TaskKey("a@example.com"), []byte("{not json")); err != nil {
		t.Fatalf("put: %v", err)
	}

	svc := newTestService(t, store, "a@example.com")
	if got := len(svc.Tasks().List()); got != 0 {
		t.Fatalf("corrupt payload should load as empty, got %d tasks", got)
	}
	if _, err := svc.Tasks().Create(ctx, "fresh start", "", ""); err != nil {
		t.Fatalf("create after recovery: %v", err)
	}
}
