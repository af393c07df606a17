package usecase

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"task-triage/internal/model"
	"task-triage/internal/notify"
	"task-triage/internal/queue"
	repo "task-triage/internal/task/repository"
	"task-triage/pkg/log"
)

type mockRepo struct {
	mu        sync.Mutex
	tasks     map[string]model.Task
	upsertErr error
}

func newMockRepo() *mockRepo {
	return &mockRepo{tasks: map[string]model.Task{}}
}

func (m *mockRepo) UpsertTasks(_ context.Context, tasks []model.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.upsertErr != nil {
		return m.upsertErr
	}
	for _, t := range tasks {
		m.tasks[t.ID] = t
	}
	return nil
}

func (m *mockRepo) UpsertTask(ctx context.Context, t model.Task) error {
	return m.UpsertTasks(ctx, []model.Task{t})
}

func (m *mockRepo) UpdateTasks(_ context.Context, tasks []model.Task) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.upsertErr != nil {
		return nil, m.upsertErr
	}
	var written []model.Task
	for _, t := range tasks {
		if _, ok := m.tasks[t.ID]; ok {
			m.tasks[t.ID] = t
			written = append(written, t)
		}
	}
	return written, nil
}

func (m *mockRepo) GetTask(_ context.Context, id string) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok {
		return model.Task{}, repo.ErrNotFound
	}
	return t, nil
}

func (m *mockRepo) ListTasks(context.Context) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b model.Task) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return compareStrings(b.ID, a.ID)
	})
	return out, nil
}

func (m *mockRepo) DeleteTask(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tasks[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.tasks, id)
	return nil
}

func (m *mockRepo) ClearTasks(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = map[string]model.Task{}
	return nil
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

type mockAnalyzer struct {
	mu         sync.Mutex
	configured bool
	provider   model.Provider
	respond    func(tasks []model.Task) (*model.AnalysisResponse, error)
	batches    [][]model.Task
	beforeCall func()
}

func (m *mockAnalyzer) Configure(p model.Provider, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.configured, m.provider = true, p
	return nil
}

func (m *mockAnalyzer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.configured, m.provider = false, ""
}

func (m *mockAnalyzer) IsConfigured() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.configured
}

func (m *mockAnalyzer) Provider() model.Provider {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.provider
}

func (m *mockAnalyzer) Analyze(_ context.Context, tasks []model.Task) (*model.AnalysisResponse, error) {
	if m.beforeCall != nil {
		m.beforeCall()
	}
	m.mu.Lock()
	m.batches = append(m.batches, tasks)
	respond := m.respond
	m.mu.Unlock()
	return respond(tasks)
}

// scoreAll answers every task with score 9 urgent-important.
func scoreAll(tasks []model.Task) (*model.AnalysisResponse, error) {
	resp := &model.AnalysisResponse{}
	for i := range tasks {
		resp.Tasks = append(resp.Tasks, model.TaskAnalysis{
			Index:      i + 1,
			Score:      9,
			Category:   model.CategoryUrgentImportant,
			Reasoning:  "remote",
			Confidence: 0.8,
		})
	}
	return resp, nil
}

type mockPublisher struct {
	mu     sync.Mutex
	events []notify.Event
}

func (m *mockPublisher) Publish(_ context.Context, e notify.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
}

func (m *mockPublisher) types() []notify.EventType {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]notify.EventType, len(m.events))
	for i, e := range m.events {
		out[i] = e.Type
	}
	return out
}

func (m *mockPublisher) find(typ notify.EventType) (notify.Event, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.events {
		if e.Type == typ {
			return e, true
		}
	}
	return notify.Event{}, false
}

type fixture struct {
	uc        *implUseCase
	repo      *mockRepo
	analyzer  *mockAnalyzer
	publisher *mockPublisher
}

func newFixture() *fixture {
	f := &fixture{
		repo:      newMockRepo(),
		analyzer:  &mockAnalyzer{respond: scoreAll},
		publisher: &mockPublisher{},
	}
	uc := New(log.NewNop(), f.repo, f.analyzer, f.publisher, queue.Options{
		QuietPeriod: time.Millisecond,
		RetryDelay:  time.Millisecond,
	}).(*implUseCase)

	seq := 0
	uc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%02d", seq)
	}
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time {
		base = base.Add(time.Second)
		return base
	}
	f.uc = uc
	return f
}

func (f *fixture) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = f.uc.queue.Drain(ctx)
}
