package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strings"
	"syscall"

	// earlyinit must be listed before bubbletea so its init() runs first and
	// pre-sets lipgloss.SetHasDarkBackground, preventing bubbletea's init()
	// from sending an OSC 11 terminal colour query that leaks into stdin on WSL2.
	_ "github.com/yourusername/airefiner/internal/earlyinit"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/airefiner/internal/app"
	"github.com/yourusername/airefiner/internal/config"
	"github.com/yourusername/airefiner/internal/history"
	"github.com/yourusername/airefiner/internal/logging"
	"github.com/yourusername/airefiner/internal/prompts"
	"github.com/yourusername/airefiner/internal/translate"
	"github.com/yourusername/airefiner/internal/tui"
)

var (
	version = "1.0.0"
	commit  = "dev"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "airefiner",
		Short: "AIRefiner - AI-powered text refinement and translation",
		Long: `AIRefiner refines business text, converts prose into presentation
talking points, and translates between English and Chinese using AI
models from multiple providers. Run with no arguments for the
interactive console.`,
		RunE:          runInteractive,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("model", "m", "", "Model key to use (provider/model format)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(
		modelsCmd(),
		refineCmd(),
		translateCmd(),
		detectCmd(),
		historyCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads config, configures logging, and initializes the manager.
func setup(cmd *cobra.Command) (*app.Manager, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	level := cfg.LogLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	logging.Setup(level)
	if err := logging.ConfigureOutput(cfg.LogFile, cfg.LogMaxSize); err != nil {
		return nil, nil, err
	}
	tui.ApplyTheme(cfg.Theme)

	return app.NewManager(cfg), cfg, nil
}

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// pickModel resolves the model to use: the -m flag if given, otherwise
// an interactive picker.
func pickModel(cmd *cobra.Command, manager *app.Manager) (string, error) {
	if flag, _ := cmd.Flags().GetString("model"); flag != "" {
		return flag, nil
	}
	available := manager.AvailableModels()
	if len(available) == 0 {
		return "", errors.New("no models available")
	}
	return tui.Pick("Select a Model", available)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	manager, cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	console := tui.NewConsole(os.Stdout)
	console.Welcome()

	if !cfg.HasAnyCredential() {
		console.Warn("No API keys configured.")
		if err := promptForAPIKey(console); err != nil {
			return err
		}
		// Reload so the new key is picked up.
		if manager, cfg, err = setup(cmd); err != nil {
			return err
		}
		if !cfg.HasAnyCredential() {
			return errors.New("no API keys configured; set OPENAI_API_KEY or another provider key")
		}
	}

	console.Info("Initializing AI models...")
	_, initErrs, err := manager.Initialize(ctx)
	if err != nil {
		return err
	}
	console.Success("Initialized %d models", len(manager.AvailableModels()))
	for key, reason := range initErrs {
		log.WithFields(log.Fields{"model": key, "reason": reason}).Debug("model unavailable")
	}
	if len(initErrs) > 0 {
		console.Warn("%d models unavailable (run 'airefiner models' for details)", len(initErrs))
	}

	for {
		if err := interactiveRound(ctx, manager, console); err != nil {
			if errors.Is(err, tui.ErrAborted) || errors.Is(err, io.EOF) || ctx.Err() != nil {
				console.Goodbye()
				return nil
			}
			console.Error("%v", err)
		}
	}
}

// interactiveRound runs one model/task/input/result cycle.
func interactiveRound(ctx context.Context, manager *app.Manager, console *tui.Console) error {
	modelKey, err := tui.Pick("Select a Model", manager.AvailableModels())
	if err != nil {
		return err
	}
	if err := manager.SelectModel(modelKey); err != nil {
		return err
	}

	taskNames := make([]string, 0, len(app.Tasks()))
	byName := make(map[string]string)
	for _, t := range app.Tasks() {
		taskNames = append(taskNames, t.Name)
		byName[t.Name] = t.ID
	}

	taskName, err := tui.Pick("Select a Task", taskNames)
	if err != nil {
		return err
	}
	if err := manager.SelectTask(byName[taskName]); err != nil {
		return err
	}

	for {
		text, err := readTaskInput(manager, console, taskName)
		if err != nil {
			return err
		}
		if text == "" {
			console.Warn("No input provided.")
			return nil
		}

		console.Info("Processing...")
		result, err := manager.ProcessText(ctx, text)
		if err != nil {
			return err
		}
		console.Result("Result", result)

		save, err := tui.Confirm(os.Stdin, os.Stdout, "Save result to file?", false)
		if err != nil {
			return err
		}
		if save {
			task, _ := manager.SelectedTask()
			rec, err := history.NewStore(history.DefaultDir()).Save(task.ID, manager.SelectedModel(), text, result)
			if err != nil {
				console.Error("Failed to save result: %v", err)
			} else {
				console.Success("Saved result %s", rec.ID)
			}
		}

		if !manager.ShouldRefineFurther() {
			return nil
		}
		again, err := tui.Confirm(os.Stdin, os.Stdout, "Refine this result further?", false)
		if err != nil || !again {
			return err
		}
	}
}

// readTaskInput collects the text to process, offering the previous
// result as input when the refine loop allows it.
func readTaskInput(manager *app.Manager, console *tui.Console, taskName string) (string, error) {
	if prev, ok := manager.PreviousResult(); ok && manager.ShouldRefineFurther() {
		usePrev, err := tui.Confirm(os.Stdin, os.Stdout, "Refine the previous result?", true)
		if err != nil {
			return "", err
		}
		if usePrev {
			console.Result("Previous Result", prev)
			return prev, nil
		}
	}
	return tui.ReadMultiline(os.Stdin, os.Stdout, fmt.Sprintf("\nEnter the text for '%s'", taskName))
}

func modelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List available AI models and initialization errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, _, err := setup(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := signalContext()
			defer cancel()

			models, initErrs, err := manager.Initialize(ctx)
			if err != nil && len(initErrs) == 0 {
				return err
			}

			fmt.Printf("%-40s %s\n", "Model", "Status")
			fmt.Println(strings.Repeat("-", 64))
			keys := make([]string, 0, len(models))
			for k := range models {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("%-40s %s\n", k, "available")
			}

			failed := make([]string, 0, len(initErrs))
			for k := range initErrs {
				failed = append(failed, k)
			}
			sort.Strings(failed)
			for _, k := range failed {
				fmt.Printf("%-40s %s\n", k, initErrs[k])
			}
			return nil
		},
	}
}

// runOneShot executes a single task over stdin or argument text.
func runOneShot(cmd *cobra.Command, taskID string, args []string) error {
	manager, _, err := setup(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	if _, _, err := manager.Initialize(ctx); err != nil {
		return err
	}

	var text string
	if len(args) > 0 {
		text = args[0]
	} else {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		text = string(raw)
	}
	if text == "" {
		return errors.New("no input text")
	}

	modelKey, err := pickModel(cmd, manager)
	if err != nil {
		return err
	}

	result, err := manager.ExecuteTask(ctx, modelKey, taskID, text)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

func refineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refine [text]",
		Short: "Refine text for clarity and professionalism",
		Long:  "Refine text passed as an argument or piped on stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID := prompts.TaskRefine
			if presentation, _ := cmd.Flags().GetBool("presentation"); presentation {
				taskID = prompts.TaskPresentation
			}
			return runOneShot(cmd, taskID, args)
		},
	}
	cmd.Flags().Bool("presentation", false, "Convert to presentation talking points instead")
	return cmd
}

func translateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate [text]",
		Short: "Translate between English and Chinese",
		Long: `Translate text passed as an argument or piped on stdin. The
direction is detected automatically unless --to is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID := prompts.TaskAutoTranslate
			switch to, _ := cmd.Flags().GetString("to"); to {
			case "":
			case "zh":
				taskID = prompts.TaskEnToZh
			case "en":
				taskID = prompts.TaskZhToEn
			default:
				return fmt.Errorf("unsupported target language %q (use en or zh)", to)
			}
			return runOneShot(cmd, taskID, args)
		},
	}
	cmd.Flags().String("to", "", "Target language (en or zh); auto-detected when omitted")
	return cmd
}

// promptForAPIKey asks for a provider and key without echoing the key,
// and exports it into the process environment for this run.
func promptForAPIKey(console *tui.Console) error {
	providers := []string{
		"OPENAI_API_KEY", "GROQ_API_KEY", "GOOGLE_API_KEY",
		"ANTHROPIC_API_KEY", "XAI_API_KEY", "QWEN_API_KEY",
	}
	envVar, err := tui.Pick("Which provider key would you like to enter?", providers)
	if err != nil {
		return err
	}
	key, err := tui.ReadSecret(os.Stdout, fmt.Sprintf("Enter %s: ", envVar))
	if err != nil {
		return err
	}
	if key == "" {
		return errors.New("empty API key")
	}
	if err := os.Setenv(envVar, key); err != nil {
		return err
	}
	console.Success("%s set for this session", envVar)
	return nil
}

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [id]",
		Short: "List or show saved results",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := history.NewStore(history.DefaultDir())

			if len(args) == 1 {
				rec, err := store.Get(args[0])
				if err != nil {
					return err
				}
				fmt.Println(rec.Result)
				return nil
			}

			records := store.List()
			if len(records) == 0 {
				fmt.Println("No saved results.")
				return nil
			}
			fmt.Printf("%-36s %-20s %-15s %s\n", "ID", "Created", "Task", "Model")
			fmt.Println(strings.Repeat("-", 100))
			for _, rec := range records {
				fmt.Printf("%-36s %-20s %-15s %s\n",
					rec.ID, rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.Task, rec.Model)
			}
			return nil
		},
	}
	return cmd
}

func detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect [text]",
		Short: "Detect the language of text and show the translation plan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) > 0 {
				text = args[0]
			} else {
				raw, err := io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
				text = string(raw)
			}
			dir := translate.Determine(text)
			fmt.Println(dir.Summary(text))
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("airefiner version %s (%s)\n", version, commit)
			fmt.Printf("go version %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
