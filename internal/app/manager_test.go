package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yourusername/airefiner/internal/prompts"
	"github.com/yourusername/airefiner/internal/provider"
)

// echoModel returns its prompt so tests can inspect what was sent.
type echoModel struct {
	key string
	err error
}

func (e *echoModel) Key() string { return e.key }

func (e *echoModel) Complete(ctx context.Context, prompt string) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	return prompt, nil
}

func newTestManager(models ...*echoModel) *Manager {
	m := &Manager{models: map[string]provider.Model{}}
	for _, mod := range models {
		m.models[mod.key] = mod
	}
	return m
}

func TestTasks(t *testing.T) {
	tasks := Tasks()
	if len(tasks) != 5 {
		t.Fatalf("expected 5 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != prompts.TaskRefine {
		t.Errorf("refine must be the first task, got %s", tasks[0].ID)
	}

	if _, ok := TaskByID(prompts.TaskAutoTranslate); !ok {
		t.Error("auto-translate must be selectable")
	}
	if _, ok := TaskByID("bogus"); ok {
		t.Error("unknown task must not resolve")
	}
}

func TestSelectModelAndTask(t *testing.T) {
	m := newTestManager(&echoModel{key: "openai/gpt-4o"})

	if err := m.SelectModel("openai/gpt-4o"); err != nil {
		t.Fatalf("SelectModel() error: %v", err)
	}
	if err := m.SelectModel("openai/nope"); err == nil {
		t.Error("selecting an unknown model must fail")
	}

	if err := m.SelectTask(prompts.TaskRefine); err != nil {
		t.Fatalf("SelectTask() error: %v", err)
	}
	if err := m.SelectTask("bogus"); err == nil {
		t.Error("selecting an unknown task must fail")
	}

	m.ResetModelSelection()
	if m.SelectedModel() != "" {
		t.Error("reset must clear the model selection")
	}
	m.ResetTaskSelection()
	if _, ok := m.SelectedTask(); ok {
		t.Error("reset must clear the task selection")
	}
}

func TestProcessTextRequiresSelection(t *testing.T) {
	m := newTestManager(&echoModel{key: "openai/gpt-4o"})

	if _, err := m.ProcessText(context.Background(), "hi"); err == nil {
		t.Error("processing without a model must fail")
	}

	_ = m.SelectModel("openai/gpt-4o")
	if _, err := m.ProcessText(context.Background(), "hi"); err == nil {
		t.Error("processing without a task must fail")
	}
}

func TestProcessTextRefine(t *testing.T) {
	m := newTestManager(&echoModel{key: "openai/gpt-4o"})
	_ = m.SelectModel("openai/gpt-4o")
	_ = m.SelectTask(prompts.TaskRefine)

	result, err := m.ProcessText(context.Background(), "make this sound professional")
	if err != nil {
		t.Fatalf("ProcessText() error: %v", err)
	}
	if !strings.Contains(result, "make this sound professional") {
		t.Error("user text must be embedded in the rendered prompt")
	}
	if !strings.Contains(result, "communication expert") {
		t.Error("refine template must be applied")
	}

	if !m.ShouldRefineFurther() {
		t.Error("successful refine must allow further refinement")
	}
	if prev, ok := m.PreviousResult(); !ok || prev != result {
		t.Error("last result must be retained")
	}
}

func TestProcessTextFailureClearsResult(t *testing.T) {
	m := newTestManager(&echoModel{key: "groq/llama", err: errors.New("rate limit exceeded")})
	_ = m.SelectModel("groq/llama")
	_ = m.SelectTask(prompts.TaskRefine)

	_, err := m.ProcessText(context.Background(), "hi")
	if err == nil {
		t.Fatal("model failure must surface as an error")
	}
	var classified *provider.ClassifiedError
	if !errors.As(err, &classified) || classified.Type != provider.ErrorTypeRateLimit {
		t.Errorf("error must be classified, got %v", err)
	}

	if m.ShouldRefineFurther() {
		t.Error("failure must not leave a refinable result")
	}
	if _, ok := m.PreviousResult(); ok {
		t.Error("failure must clear the previous result")
	}
}

func TestExecuteTaskAutoTranslate(t *testing.T) {
	m := newTestManager(&echoModel{key: "openai/gpt-4o"})

	out, err := m.ExecuteTask(context.Background(), "openai/gpt-4o", prompts.TaskAutoTranslate,
		"Hello, could you please confirm the schedule for tomorrow's meeting?")
	if err != nil {
		t.Fatalf("ExecuteTask() error: %v", err)
	}
	if !strings.Contains(out, "Simplified Chinese") {
		t.Error("English input must route to the en->zh template")
	}
}

func TestExecuteTaskUnknownPrompt(t *testing.T) {
	m := newTestManager(&echoModel{key: "openai/gpt-4o"})
	if _, err := m.ExecuteTask(context.Background(), "openai/gpt-4o", "bogus", "hi"); err == nil {
		t.Error("unknown task must fail before calling the model")
	}
}

func TestRefineFurtherOnlyForRefine(t *testing.T) {
	m := newTestManager(&echoModel{key: "openai/gpt-4o"})
	_ = m.SelectModel("openai/gpt-4o")
	_ = m.SelectTask(prompts.TaskPresentation)

	if _, err := m.ProcessText(context.Background(), "quarterly numbers are up"); err != nil {
		t.Fatalf("ProcessText() error: %v", err)
	}
	if m.ShouldRefineFurther() {
		t.Error("only the refine task supports further refinement")
	}
}
