// Package app coordinates the application: model initialization, task
// selection state, and task execution.
package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/yourusername/airefiner/internal/catalog"
	"github.com/yourusername/airefiner/internal/config"
	"github.com/yourusername/airefiner/internal/loader"
	"github.com/yourusername/airefiner/internal/prompts"
	"github.com/yourusername/airefiner/internal/provider"
	"github.com/yourusername/airefiner/internal/translate"
)

// ErrNoModels is returned when initialization produces no usable models.
var ErrNoModels = errors.New("no models were successfully initialized")

// Task is a user-selectable operation.
type Task struct {
	ID   string
	Name string
}

// Tasks returns the selectable tasks in menu order.
func Tasks() []Task {
	return []Task{
		{ID: prompts.TaskRefine, Name: "Refine Text (Improve clarity & professionalism)"},
		{ID: prompts.TaskPresentation, Name: "Refine for Presentation (Convert to talking points)"},
		{ID: prompts.TaskAutoTranslate, Name: "Auto-Translate (Detect Language & Translate)"},
		{ID: prompts.TaskEnToZh, Name: "Translate: English to Chinese"},
		{ID: prompts.TaskZhToEn, Name: "Translate: Chinese to English"},
	}
}

// TaskByID looks up a task by its identifier.
func TaskByID(id string) (Task, bool) {
	for _, t := range Tasks() {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Manager owns the initialized models and the selection state of the
// interactive session.
type Manager struct {
	cfg *config.Config

	models map[string]provider.Model
	errors map[string]string

	selectedModel string
	selectedTask  *Task
	lastResult    string
	hasResult     bool
}

// NewManager creates an uninitialized manager. Call Initialize before
// executing tasks.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{cfg: cfg}
}

// Initialize fetches the model catalog and constructs a live client for
// every usable model. The returned error map records every model that
// could not be initialized, keyed by model key.
func (m *Manager) Initialize(ctx context.Context) (map[string]provider.Model, map[string]string, error) {
	log.Info("initializing AI models")

	creds := m.cfg.Credentials()
	fetchers := catalog.DefaultFetchers(m.cfg.FilterConfig(), m.cfg.Temperature)
	cache := catalog.NewCache(fetchers, creds).WithTTL(m.cfg.CacheTTL())

	init := loader.NewInitializer(cache, creds, loader.DefaultBindings())
	models, errs := init.Initialize(ctx)

	m.models = models
	m.errors = errs

	if len(models) == 0 {
		if len(errs) > 0 {
			return nil, errs, fmt.Errorf("%w:\n%s", ErrNoModels, formatErrors(errs))
		}
		return nil, errs, fmt.Errorf("%w: check your .env file for API keys", ErrNoModels)
	}

	log.WithField("count", len(models)).Info("models initialized")
	return models, errs, nil
}

func formatErrors(errs map[string]string) string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "- %s: %s\n", k, errs[k])
	}
	return strings.TrimRight(sb.String(), "\n")
}

// AvailableModels returns the sorted keys of all initialized models.
func (m *Manager) AvailableModels() []string {
	keys := make([]string, 0, len(m.models))
	for k := range m.models {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// InitializationErrors returns the per-model failure reasons.
func (m *Manager) InitializationErrors() map[string]string {
	return m.errors
}

// SelectModel records the active model.
func (m *Manager) SelectModel(key string) error {
	if _, ok := m.models[key]; !ok {
		return fmt.Errorf("model %q not found", key)
	}
	m.selectedModel = key
	log.WithField("model", key).Info("selected model")
	return nil
}

// SelectTask records the active task.
func (m *Manager) SelectTask(id string) error {
	task, ok := TaskByID(id)
	if !ok {
		return fmt.Errorf("unknown task %q", id)
	}
	m.selectedTask = &task
	log.WithField("task", task.ID).Info("selected task")
	return nil
}

// SelectedModel returns the active model key, if any.
func (m *Manager) SelectedModel() string { return m.selectedModel }

// SelectedTask returns the active task, if any.
func (m *Manager) SelectedTask() (Task, bool) {
	if m.selectedTask == nil {
		return Task{}, false
	}
	return *m.selectedTask, true
}

// ResetModelSelection clears the active model.
func (m *Manager) ResetModelSelection() { m.selectedModel = "" }

// ResetTaskSelection clears the active task.
func (m *Manager) ResetTaskSelection() { m.selectedTask = nil }

// ProcessText runs the selected task on text with the selected model and
// records the result for possible further refinement.
func (m *Manager) ProcessText(ctx context.Context, text string) (string, error) {
	if m.selectedModel == "" {
		return "", errors.New("no model selected")
	}
	if m.selectedTask == nil {
		return "", errors.New("no task selected")
	}

	result, err := m.ExecuteTask(ctx, m.selectedModel, m.selectedTask.ID, text)
	if err != nil {
		m.lastResult = ""
		m.hasResult = false
		return "", err
	}

	m.lastResult = result
	m.hasResult = true
	return result, nil
}

// ExecuteTask runs a single task with an explicit model, independent of
// the session selection state.
func (m *Manager) ExecuteTask(ctx context.Context, modelKey, taskID, text string) (string, error) {
	model, ok := m.models[modelKey]
	if !ok {
		return "", fmt.Errorf("model %q not found", modelKey)
	}

	template, summary, err := resolvePrompt(taskID, text)
	if err != nil {
		return "", err
	}
	if summary != "" {
		log.Info(summary)
	}

	requestID := uuid.NewString()[:8]
	logger := log.WithFields(log.Fields{
		"request_id": requestID,
		"model":      modelKey,
		"task":       taskID,
	})
	logger.Info("executing task")

	result, err := model.Complete(ctx, prompts.Render(template, text))
	if err != nil {
		var classified *provider.ClassifiedError
		if !errors.As(err, &classified) {
			classified = provider.ClassifyError(err, 0, "")
		}
		logger.WithField("error_type", classified.Type).Error(classified.Message)
		return "", classified
	}

	logger.Info("task completed")
	return result, nil
}

// resolvePrompt picks the template for a task. Auto-translate chooses a
// direction from the detected language and reports a summary for display.
func resolvePrompt(taskID, text string) (template, summary string, err error) {
	if taskID == prompts.TaskAutoTranslate {
		dir := translate.Determine(text)
		return dir.Prompt, dir.Summary(text), nil
	}

	template, ok := prompts.ForTask(taskID)
	if !ok {
		return "", "", fmt.Errorf("prompt for task %q not found", taskID)
	}
	return template, "", nil
}

// ShouldRefineFurther reports whether the last result can be run through
// the refine task again.
func (m *Manager) ShouldRefineFurther() bool {
	return m.selectedTask != nil &&
		m.selectedTask.ID == prompts.TaskRefine &&
		m.hasResult
}

// PreviousResult returns the last successful result, if any.
func (m *Manager) PreviousResult() (string, bool) {
	return m.lastResult, m.hasResult
}
