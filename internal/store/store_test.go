package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandeepkv93/taskbook/internal/model"
)

type stubSaver struct {
	saves int
	fail  bool
}

func (s *stubSaver) Save(tasks []model.Task) error {
	s.saves++
	if s.fail {
		return errors.New("disk full")
	}
	return nil
}

func newTestStore() (*TaskStore, *stubSaver) {
	saver := &stubSaver{}
	s := New(saver, nil)
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.Local)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	return s, saver
}

func TestAddAssignsUniqueIncreasingIDs(t *testing.T) {
	s, _ := newTestStore()
	seen := map[int]bool{}
	lastID := 0
	for _, title := range []string{"A", "B", "C", "D"} {
		task, err := s.Add(title, "")
		if err != nil {
			t.Fatalf("add %q: %v", title, err)
		}
		if seen[task.ID] {
			t.Fatalf("duplicate id %d", task.ID)
		}
		if task.ID <= lastID {
			t.Fatalf("ids not strictly increasing: %d after %d", task.ID, lastID)
		}
		seen[task.ID] = true
		lastID = task.ID
	}
}

func TestAddTrimsAndDefaults(t *testing.T) {
	s, _ := newTestStore()
	task, err := s.Add("  Buy milk  ", "  two liters ")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if task.Title != "Buy milk" || task.Description != "two liters" {
		t.Fatalf("expected trimmed fields, got %#v", task)
	}
	if task.Completed || task.CompletedAt != nil {
		t.Fatalf("new task must be pending: %#v", task)
	}
	if task.CreatedAt.IsZero() {
		t.Fatal("created_at not set")
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("new task fails validation: %v", err)
	}
}

func TestAddRejectsBlankTitle(t *testing.T) {
	s, saver := newTestStore()
	if _, err := s.Add("Keep", ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	savesBefore := saver.saves

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := s.Add(title, "whatever")
		if !errors.Is(err, model.ErrEmptyTitle) {
			t.Fatalf("title %q: expected ErrEmptyTitle, got %v", title, err)
		}
	}
	if saver.saves != savesBefore {
		t.Fatalf("rejected add must not save, saves went %d -> %d", savesBefore, saver.saves)
	}
	if st := s.Stats(); st.Total != 1 {
		t.Fatalf("collection size changed: %+v", st)
	}
	next, err := s.Add("Counter check", "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if next.ID != 2 {
		t.Fatalf("rejected adds must not advance the counter, got id %d", next.ID)
	}
}

func TestAddRollsBackOnSaveFailure(t *testing.T) {
	s, saver := newTestStore()
	saver.fail = true
	if _, err := s.Add("Doomed", ""); err == nil {
		t.Fatal("expected save failure")
	}
	if st := s.Stats(); st.Total != 0 {
		t.Fatalf("failed add left state behind: %+v", st)
	}

	saver.fail = false
	task, err := s.Add("Recovered", "")
	if err != nil {
		t.Fatalf("add after failure: %v", err)
	}
	if task.ID != 1 {
		t.Fatalf("counter not rolled back, got id %d", task.ID)
	}
}

func TestGetNotFound(t *testing.T) {
	s, _ := newTestStore()
	_, err := s.Get(42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	s, _ := newTestStore()
	orig, err := s.Add("Original", "old description")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	newTitle := "  Renamed  "
	got, err := s.Update(orig.ID, &newTitle, nil)
	if err != nil {
		t.Fatalf("update title: %v", err)
	}
	if got.Title != "Renamed" || got.Description != "old description" {
		t.Fatalf("unexpected task after title update: %#v", got)
	}

	newDesc := "new description"
	got, err = s.Update(orig.ID, nil, &newDesc)
	if err != nil {
		t.Fatalf("update description: %v", err)
	}
	if got.Title != "Renamed" || got.Description != "new description" {
		t.Fatalf("unexpected task after description update: %#v", got)
	}
	if !got.CreatedAt.Equal(orig.CreatedAt) {
		t.Fatalf("update must not touch created_at: %v vs %v", got.CreatedAt, orig.CreatedAt)
	}
}

func TestUpdateRejectsBlankTitleAndUnknownID(t *testing.T) {
	s, _ := newTestStore()
	task, err := s.Add("Keep me", "desc")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	blank := "   "
	_, err = s.Update(task.ID, &blank, nil)
	if !errors.Is(err, model.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	got, err := s.Get(task.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Keep me" {
		t.Fatalf("rejected update mutated the task: %#v", got)
	}

	title := "New"
	_, err = s.Update(99, &title, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateRollsBackOnSaveFailure(t *testing.T) {
	s, saver := newTestStore()
	task, err := s.Add("Stable", "desc")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	saver.fail = true
	title := "Changed"
	if _, err := s.Update(task.ID, &title, nil); err == nil {
		t.Fatal("expected save failure")
	}
	saver.fail = false

	got, err := s.Get(task.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Stable" {
		t.Fatalf("failed update not rolled back: %#v", got)
	}
}

func TestCompleteThenUncompleteRestoresState(t *testing.T) {
	s, _ := newTestStore()
	orig, err := s.Add("Cycle", "desc")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	done, changed, err := s.Complete(orig.ID)
	if err != nil || !changed {
		t.Fatalf("complete: changed=%v err=%v", changed, err)
	}
	if !done.Completed || done.CompletedAt == nil {
		t.Fatalf("task not completed: %#v", done)
	}

	back, changed, err := s.Uncomplete(orig.ID)
	if err != nil || !changed {
		t.Fatalf("uncomplete: changed=%v err=%v", changed, err)
	}
	if back.Completed || back.CompletedAt != nil {
		t.Fatalf("uncomplete did not clear completion: %#v", back)
	}
	if back.Title != orig.Title || back.Description != orig.Description || !back.CreatedAt.Equal(orig.CreatedAt) {
		t.Fatalf("other fields changed across the cycle: %#v vs %#v", back, orig)
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	s, saver := newTestStore()
	task, err := s.Add("Once", "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	first, changed, err := s.Complete(task.ID)
	if err != nil || !changed {
		t.Fatalf("first complete: changed=%v err=%v", changed, err)
	}
	savesAfterFirst := saver.saves

	second, changed, err := s.Complete(task.ID)
	if err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if changed {
		t.Fatal("second complete must be a no-op")
	}
	if saver.saves != savesAfterFirst {
		t.Fatal("no-op complete must not save")
	}
	if !second.CompletedAt.Equal(*first.CompletedAt) {
		t.Fatalf("no-op complete changed the timestamp: %v vs %v", second.CompletedAt, first.CompletedAt)
	}

	_, changed, err = s.Uncomplete(task.ID)
	if err != nil || !changed {
		t.Fatalf("uncomplete: changed=%v err=%v", changed, err)
	}
	_, changed, err = s.Uncomplete(task.ID)
	if err != nil || changed {
		t.Fatalf("second uncomplete must be a no-op: changed=%v err=%v", changed, err)
	}
}

func TestCompleteRollsBackOnSaveFailure(t *testing.T) {
	s, saver := newTestStore()
	task, err := s.Add("Fragile", "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	saver.fail = true
	if _, _, err := s.Complete(task.ID); err == nil {
		t.Fatal("expected save failure")
	}
	saver.fail = false

	got, err := s.Get(task.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Completed || got.CompletedAt != nil {
		t.Fatalf("failed complete not rolled back: %#v", got)
	}
}

func TestDeleteRemovesExactlyOnePreservingOrder(t *testing.T) {
	s, _ := newTestStore()
	for _, title := range []string{"A", "B", "C"} {
		if _, err := s.Add(title, ""); err != nil {
			t.Fatalf("add %q: %v", title, err)
		}
	}

	deleted, err := s.Delete(2, true)
	if err != nil || !deleted {
		t.Fatalf("delete: deleted=%v err=%v", deleted, err)
	}

	rest := s.List(true)
	if len(rest) != 2 || rest[0].Title != "A" || rest[1].Title != "C" {
		t.Fatalf("unexpected remaining tasks: %#v", rest)
	}
}

func TestDeleteDeclinedIsCancellationNotFailure(t *testing.T) {
	s, saver := newTestStore()
	task, err := s.Add("Survivor", "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	savesBefore := saver.saves

	deleted, err := s.Delete(task.ID, false)
	if err != nil {
		t.Fatalf("declined delete must not error: %v", err)
	}
	if deleted {
		t.Fatal("declined delete must not remove the task")
	}
	if saver.saves != savesBefore {
		t.Fatal("declined delete must not save")
	}
	if st := s.Stats(); st.Total != 1 {
		t.Fatalf("task went missing: %+v", st)
	}
}

func TestDeleteRollsBackOnSaveFailure(t *testing.T) {
	s, saver := newTestStore()
	for _, title := range []string{"A", "B", "C"} {
		if _, err := s.Add(title, ""); err != nil {
			t.Fatalf("add %q: %v", title, err)
		}
	}

	saver.fail = true
	deleted, err := s.Delete(2, true)
	if err == nil || deleted {
		t.Fatalf("expected save failure, got deleted=%v err=%v", deleted, err)
	}
	saver.fail = false

	tasks := s.List(true)
	if len(tasks) != 3 || tasks[1].ID != 2 {
		t.Fatalf("failed delete must reinsert at the original position: %#v", tasks)
	}
}

func TestDeletedIDIsNeverReused(t *testing.T) {
	s, _ := newTestStore()
	a, _ := s.Add("A", "")
	b, _ := s.Add("B", "")
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("unexpected ids: %d, %d", a.ID, b.ID)
	}

	if deleted, err := s.Delete(1, true); err != nil || !deleted {
		t.Fatalf("delete: deleted=%v err=%v", deleted, err)
	}
	rest := s.List(true)
	if len(rest) != 1 || rest[0].ID != 2 {
		t.Fatalf("expected only task 2 to remain: %#v", rest)
	}

	c, err := s.Add("C", "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.ID != 3 {
		t.Fatalf("counter reused a deleted id, got %d", c.ID)
	}
}

func TestListFiltersPending(t *testing.T) {
	s, _ := newTestStore()
	s.Add("Pending one", "")
	done, _ := s.Add("Done one", "")
	s.Add("Pending two", "")
	if _, _, err := s.Complete(done.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	all := s.List(true)
	if len(all) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(all))
	}
	pending := s.List(false)
	if len(pending) != 2 || pending[0].Title != "Pending one" || pending[1].Title != "Pending two" {
		t.Fatalf("unexpected pending list: %#v", pending)
	}
}

func TestStatsArithmetic(t *testing.T) {
	s, _ := newTestStore()
	for i, title := range []string{"A", "B", "C", "D", "E"} {
		task, err := s.Add(title, "")
		if err != nil {
			t.Fatalf("add %q: %v", title, err)
		}
		if i%2 == 0 {
			if _, _, err := s.Complete(task.ID); err != nil {
				t.Fatalf("complete: %v", err)
			}
		}
	}

	st := s.Stats()
	if st.Total != st.Completed+st.Pending {
		t.Fatalf("stats arithmetic broken: %+v", st)
	}
	if st.Total != 5 || st.Completed != 3 || st.Pending != 2 {
		t.Fatalf("unexpected stats: %+v", st)
	}
}

func TestOpenDerivesCounterFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	first, err := Open(path)
	if err != nil {
		t.Fatalf("open fresh: %v", err)
	}
	first.Add("A", "")
	first.Add("B", "")
	first.Add("C", "")
	if deleted, err := first.Delete(3, true); err != nil || !deleted {
		t.Fatalf("delete: deleted=%v err=%v", deleted, err)
	}

	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	task, err := second.Add("D", "")
	if err != nil {
		t.Fatalf("add after reopen: %v", err)
	}
	if task.ID != 3 {
		t.Fatalf("expected counter 1+max(ids)=3 after reload, got %d", task.ID)
	}
}

func TestOpenCorruptFileDegradesToEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte("not json at all"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	s, err := Open(path)
	if err == nil {
		t.Fatal("expected a load error for the corrupt file")
	}
	if s == nil {
		t.Fatal("corrupt file must still yield a usable store")
	}
	if st := s.Stats(); st.Total != 0 {
		t.Fatalf("expected empty store, got %+v", st)
	}
	task, err := s.Add("Fresh start", "")
	if err != nil {
		t.Fatalf("mutation after corrupt load must work: %v", err)
	}
	if task.ID != 1 {
		t.Fatalf("expected counter reset to 1, got %d", task.ID)
	}
}

func TestScenarioMilk(t *testing.T) {
	s, _ := newTestStore()

	task, err := s.Add("Buy milk", "")
	if err != nil || task.ID != 1 {
		t.Fatalf("add: id=%d err=%v", task.ID, err)
	}
	if st := s.Stats(); st.Total != 1 || st.Pending != 1 {
		t.Fatalf("after add: %+v", st)
	}

	if _, err := s.Add("", ""); !errors.Is(err, model.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if st := s.Stats(); st.Total != 1 {
		t.Fatalf("rejected add changed state: %+v", st)
	}

	if _, _, err := s.Complete(1); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if st := s.Stats(); st.Completed != 1 || st.Pending != 0 {
		t.Fatalf("after complete: %+v", st)
	}

	if _, _, err := s.Uncomplete(1); err != nil {
		t.Fatalf("uncomplete: %v", err)
	}
	if st := s.Stats(); st.Pending != 1 {
		t.Fatalf("after uncomplete: %+v", st)
	}

	if deleted, err := s.Delete(1, true); err != nil || !deleted {
		t.Fatalf("delete: deleted=%v err=%v", deleted, err)
	}
	if st := s.Stats(); st.Total != 0 {
		t.Fatalf("after delete: %+v", st)
	}
}
