package usecase

import (
	"context"
	"errors"
	"slices"
	"testing"

	"task-triage/internal/analyzer"
	"task-triage/internal/model"
	"task-triage/internal/notify"
	"task-triage/internal/task"
)

func TestCreateBulk_ParsesAndScores(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	out, err := f.uc.CreateBulk(ctx, task.CreateBulkInput{
		RawText: "  Fix the production bug ASAP \n\n\t\nMaybe someday update documentation\n",
	})
	if err != nil {
		t.Fatalf("CreateBulk() error = %v", err)
	}

	if len(out.Tasks) != 2 {
		t.Fatalf("len(Tasks) = %d, want 2", len(out.Tasks))
	}
	if out.Tasks[0].Text != "Fix the production bug ASAP" {
		t.Errorf("Tasks[0].Text = %q", out.Tasks[0].Text)
	}
	for _, tk := range out.Tasks {
		if tk.ID == "" || tk.CreatedAt.IsZero() || tk.LocalPriority == nil {
			t.Errorf("task not fully initialised: %+v", tk)
		}
	}
	if out.Tasks[1].LocalPriority.Category != model.CategoryNeither {
		t.Errorf("Tasks[1] category = %s, want neither", out.Tasks[1].LocalPriority.Category)
	}
	if out.Queued {
		t.Error("Queued = true without a configured analyzer")
	}

	stored, _ := f.repo.ListTasks(ctx)
	if len(stored) != 2 {
		t.Errorf("stored %d tasks, want 2", len(stored))
	}
	if got := f.publisher.types(); !slices.Equal(got, []notify.EventType{notify.EventTasksAdded}) {
		t.Errorf("events = %v", got)
	}
}

func TestCreateBulk_EmptyInput(t *testing.T) {
	f := newFixture()
	for _, raw := range []string{"", "   ", "\n \n\t"} {
		if _, err := f.uc.CreateBulk(context.Background(), task.CreateBulkInput{RawText: raw}); !errors.Is(err, task.ErrEmptyInput) {
			t.Errorf("CreateBulk(%q) error = %v, want ErrEmptyInput", raw, err)
		}
	}
}

func TestCreateBulk_StorageFailure(t *testing.T) {
	f := newFixture()
	storeErr := errors.New("disk full")
	f.repo.upsertErr = storeErr

	_, err := f.uc.CreateBulk(context.Background(), task.CreateBulkInput{RawText: "a"})
	if !errors.Is(err, storeErr) {
		t.Errorf("CreateBulk() error = %v, want %v", err, storeErr)
	}
	if got := f.publisher.types(); !slices.Equal(got, []notify.EventType{notify.EventProcessingError}) {
		t.Errorf("events = %v", got)
	}
}

func TestPipeline_AnalysisMergedAndPersisted(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_ = f.analyzer.Configure(model.ProviderAnthropic, "k")

	out, err := f.uc.CreateBulk(ctx, task.CreateBulkInput{RawText: "pay rent\ncall mom"})
	if err != nil {
		t.Fatalf("CreateBulk() error = %v", err)
	}
	if !out.Queued {
		t.Fatal("Queued = false with a configured analyzer")
	}
	f.drain()

	for _, created := range out.Tasks {
		got, _ := f.repo.GetTask(ctx, created.ID)
		if got.AIPriority == nil || got.AIPriority.Provider != model.ProviderAnthropic {
			t.Errorf("task %s AIPriority = %+v", created.ID, got.AIPriority)
		}
		if got.LocalPriority == nil {
			t.Errorf("task %s lost LocalPriority", created.ID)
		}
	}

	done, ok := f.publisher.find(notify.EventAnalysisComplete)
	if !ok || len(done.Tasks) != 2 || done.Provider != model.ProviderAnthropic || done.Response == nil {
		t.Errorf("analysis event = %+v, found = %t", done, ok)
	}
}

func TestPipeline_DeletedTaskNotResurrected(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_ = f.analyzer.Configure(model.ProviderOpenAI, "k")

	// ids are sequential, so the second line becomes id-02
	deleted := "id-02"
	f.analyzer.beforeCall = func() { _ = f.repo.DeleteTask(ctx, deleted) }

	out, _ := f.uc.CreateBulk(ctx, task.CreateBulkInput{RawText: "keep me\ndelete me"})
	if out.Tasks[1].ID != deleted {
		t.Fatalf("second task id = %s, want %s", out.Tasks[1].ID, deleted)
	}
	f.drain()

	if _, err := f.repo.GetTask(ctx, deleted); err == nil {
		t.Error("deleted task written back after analysis")
	}
	kept, _ := f.repo.GetTask(ctx, out.Tasks[0].ID)
	if kept.AIPriority == nil {
		t.Error("surviving task missing AIPriority")
	}
}

func TestPipeline_CompletionEventAlignsAfterDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_ = f.analyzer.Configure(model.ProviderOpenAI, "k")
	f.analyzer.respond = func(tasks []model.Task) (*model.AnalysisResponse, error) {
		resp := &model.AnalysisResponse{}
		for i, tk := range tasks {
			resp.Tasks = append(resp.Tasks, model.TaskAnalysis{
				Index:     i + 1,
				Score:     float64(i + 5),
				Category:  model.CategoryNeither,
				Reasoning: "about " + tk.Text,
			})
		}
		return resp, nil
	}

	// the first line becomes id-01 and disappears mid-request
	f.analyzer.beforeCall = func() { _ = f.repo.DeleteTask(ctx, "id-01") }

	if _, err := f.uc.CreateBulk(ctx, task.CreateBulkInput{RawText: "first\nsecond"}); err != nil {
		t.Fatalf("CreateBulk() error = %v", err)
	}
	f.drain()

	done, ok := f.publisher.find(notify.EventAnalysisComplete)
	if !ok {
		t.Fatal("no completion event")
	}
	if len(done.Tasks) != 2 {
		t.Fatalf("len(Tasks) = %d, want the full batch of 2", len(done.Tasks))
	}

	for _, tk := range analyzer.MapResponseToTasks(done.Tasks, done.Response, done.Provider) {
		if tk.AIPriority == nil {
			t.Fatalf("%s: AIPriority nil after remap", tk.Text)
		}
		if want := "about " + tk.Text; tk.AIPriority.Reasoning != want {
			t.Errorf("%s: Reasoning = %q, want %q", tk.Text, tk.AIPriority.Reasoning, want)
		}
	}

	if len(done.Updated) != 1 || done.Updated[0].ID != "id-02" {
		t.Fatalf("Updated = %+v, want only id-02", done.Updated)
	}
	if got := done.Updated[0].AIPriority; got == nil || got.Reasoning != "about second" {
		t.Errorf("Updated[0].AIPriority = %+v, want reasoning about second", got)
	}
	if _, err := f.repo.GetTask(ctx, "id-01"); err == nil {
		t.Error("deleted task written back after analysis")
	}
}

func TestPipeline_FailedAnalysisKeepsLocal(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_ = f.analyzer.Configure(model.ProviderGemini, "k")
	f.analyzer.respond = func([]model.Task) (*model.AnalysisResponse, error) { return nil, nil }

	out, _ := f.uc.CreateBulk(ctx, task.CreateBulkInput{RawText: "review budget"})
	f.drain()

	got, _ := f.repo.GetTask(ctx, out.Tasks[0].ID)
	if got.AIPriority != nil {
		t.Errorf("AIPriority = %+v, want nil", got.AIPriority)
	}
	if *got.LocalPriority != *out.Tasks[0].LocalPriority {
		t.Errorf("LocalPriority changed: %+v", got.LocalPriority)
	}
	if got := f.publisher.types(); !slices.Equal(got, []notify.EventType{notify.EventTasksAdded}) {
		t.Errorf("events = %v", got)
	}
}

func TestPipeline_NotConfiguredReported(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_ = f.analyzer.Configure(model.ProviderGemini, "k")
	f.analyzer.respond = func([]model.Task) (*model.AnalysisResponse, error) {
		return nil, analyzer.ErrNotConfigured
	}

	_, _ = f.uc.CreateBulk(ctx, task.CreateBulkInput{RawText: "x"})
	f.drain()

	if _, ok := f.publisher.find(notify.EventProcessingError); !ok {
		t.Errorf("events = %v, want a processing-error", f.publisher.types())
	}
}

func TestPipeline_LargeBurstBatched(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_ = f.analyzer.Configure(model.ProviderOpenAI, "k")

	raw := ""
	for i := 0; i < 15; i++ {
		raw += "task line\n"
	}
	_, _ = f.uc.CreateBulk(ctx, task.CreateBulkInput{RawText: raw})
	f.drain()

	f.analyzer.mu.Lock()
	defer f.analyzer.mu.Unlock()
	if len(f.analyzer.batches) != 2 || len(f.analyzer.batches[0]) != 10 || len(f.analyzer.batches[1]) != 5 {
		sizes := []int{}
		for _, b := range f.analyzer.batches {
			sizes = append(sizes, len(b))
		}
		t.Errorf("batch sizes = %v, want [10 5]", sizes)
	}
}

func TestMatrix(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	now := f.uc.now()

	local := func(score int, c model.Category) *model.LocalPriority {
		return &model.LocalPriority{Score: score, Category: c}
	}
	_ = f.repo.UpsertTasks(ctx, []model.Task{
		{ID: "low", Text: "a", CreatedAt: now, LocalPriority: local(3, model.CategoryNeither)},
		{ID: "high", Text: "b", CreatedAt: now, LocalPriority: local(6, model.CategoryNeither)},
		{ID: "newer-high", Text: "c", CreatedAt: now.Add(1), LocalPriority: local(6, model.CategoryNeither)},
		{ID: "ai", Text: "d", CreatedAt: now, LocalPriority: local(2, model.CategoryNeither),
			AIPriority: &model.AIPriority{Score: 9, Category: model.CategoryUrgentImportant}},
	})

	m, err := f.uc.Matrix(ctx)
	if err != nil {
		t.Fatalf("Matrix() error = %v", err)
	}
	for _, c := range model.Categories {
		if _, ok := m[c]; !ok {
			t.Errorf("quadrant %s missing", c)
		}
	}

	var neither []string
	for _, tk := range m[model.CategoryNeither] {
		neither = append(neither, tk.ID)
	}
	if want := []string{"newer-high", "high", "low"}; !slices.Equal(neither, want) {
		t.Errorf("neither = %v, want %v", neither, want)
	}
	if got := m[model.CategoryUrgentImportant]; len(got) != 1 || got[0].ID != "ai" {
		t.Errorf("urgent-important = %+v", got)
	}
}

func TestDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	out, _ := f.uc.CreateBulk(ctx, task.CreateBulkInput{RawText: "a\nb"})

	if err := f.uc.Delete(ctx, out.Tasks[0].ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := f.uc.Delete(ctx, out.Tasks[0].ID); !errors.Is(err, task.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}

	if err := f.uc.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if all, _ := f.uc.List(ctx); len(all) != 0 {
		t.Errorf("List() after Clear() = %d tasks", len(all))
	}
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	if _, err := f.uc.Analyze(ctx); !errors.Is(err, analyzer.ErrNotConfigured) {
		t.Fatalf("Analyze() error = %v, want ErrNotConfigured", err)
	}

	// Created while unconfigured, so only local priority.
	_, _ = f.uc.CreateBulk(ctx, task.CreateBulkInput{RawText: "a\nb\nc"})
	_ = f.analyzer.Configure(model.ProviderOpenAI, "k")

	out, err := f.uc.Analyze(ctx)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if out.Queued != 3 || out.Analyzed != 3 {
		t.Errorf("Analyze() = %+v, want 3 queued and analyzed", out)
	}

	out, _ = f.uc.Analyze(ctx)
	if out.Queued != 0 {
		t.Errorf("second Analyze() queued %d, want 0", out.Queued)
	}
}

func TestClose(t *testing.T) {
	f := newFixture()
	if err := f.uc.Close(context.Background()); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
