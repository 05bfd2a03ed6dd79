package report

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/anaik-zam/CardConvert/internal/dispatch"
	"github.com/anaik-zam/CardConvert/internal/services"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenPath(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func TestRunRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	runID, err := store.BeginRun(ctx, "/in", "/out", 4)
	if err != nil {
		t.Fatalf("begin run: %v", err)
	}
	if runID == "" {
		t.Fatal("expected a generated run id")
	}

	outcomes := []dispatch.Outcome{
		{Index: 0, Name: "fireball", Locale: "enUS", Class: "cards", Message: "finished processing fireball:enUS"},
		{Index: 1, Name: "frostbolt", Locale: "enUS", Class: "cards",
			Err: services.Wrap(services.ErrExternalTool, "pipeline", "medium copy", "exit 2", nil)},
	}
	for _, o := range outcomes {
		if err := store.RecordOutcome(ctx, runID, o); err != nil {
			t.Fatalf("record outcome: %v", err)
		}
	}
	if err := store.FinishRun(ctx, runID, 2, 1); err != nil {
		t.Fatalf("finish run: %v", err)
	}

	runs, err := store.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	run := runs[0]
	if run.ID != runID || run.Total != 2 || run.Failed != 1 {
		t.Fatalf("unexpected run summary: %+v", run)
	}
	if !run.Finished() {
		t.Fatal("run should be marked finished")
	}
	if run.InputDir != "/in" || run.OutputDir != "/out" || run.Workers != 4 {
		t.Fatalf("run parameters not preserved: %+v", run)
	}

	stored, err := store.RunOutcomes(ctx, runID)
	if err != nil {
		t.Fatalf("run outcomes: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(stored))
	}
	if stored[0].Name != "fireball" || stored[0].Error != "" {
		t.Fatalf("first outcome wrong: %+v", stored[0])
	}
	if stored[1].Name != "frostbolt" || stored[1].Error == "" {
		t.Fatalf("failed outcome should carry error text: %+v", stored[1])
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := store.BeginRun(ctx, "/in", "/out", 1)
		if err != nil {
			t.Fatalf("begin run: %v", err)
		}
		ids = append(ids, id)
	}

	runs, err := store.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("limit not honored: got %d runs", len(runs))
	}
	if runs[0].ID != ids[2] {
		t.Fatalf("expected newest run first, got %s", runs[0].ID)
	}
	if runs[0].Finished() {
		t.Fatal("unfinished run reported as finished")
	}
}

func TestFinishUnknownRun(t *testing.T) {
	store := openTestStore(t)
	err := store.FinishRun(context.Background(), "no-such-run", 0, 0)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestReopenExistingDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	store, err := OpenPath(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	runID, err := store.BeginRun(context.Background(), "/in", "/out", 2)
	if err != nil {
		t.Fatalf("begin run: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	reopened, err := OpenPath(dbPath)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()

	runs, err := reopened.ListRuns(context.Background(), 0)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != runID {
		t.Fatalf("run not persisted across reopen: %+v", runs)
	}
}
