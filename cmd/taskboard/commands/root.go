package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"taskboard/cmd/taskboard/output"
	"taskboard/internal/application/state"
	"taskboard/internal/di"
	"taskboard/internal/infrastructure/config"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"

	// Global flags
	boardID      string
	outputFormat string
	apiURL       string
	quiet        bool

	// Shared instances
	cfg       *config.Config
	container *di.Container
	cleanup   func()
	printer   *output.Printer
	formatter *output.Formatter
)

var multiSpaceRE = regexp.MustCompile(`\s{2,}`)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "taskboard",
	Short: "Terminal client for the task board service",
	Long: `taskboard manages boards and tasks stored on a task board server.

Features:
  - Multiple boards, each with To Do, In Progress and Done columns
  - Tasks with priorities, assignees and due dates
  - Login and signup against the server
  - Interactive TUI and scriptable CLI sharing the same session

Examples:
  # Launch interactive TUI
  taskboard
  taskboard tui

  # List all boards
  taskboard board list

  # Create a new task on the active board
  taskboard task create --title "Fix login bug" --priority high

  # List tasks that are in progress
  taskboard task list --status in-progress

  # Talk to a different server
  taskboard --api-url http://tasks.internal:5000 board list`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(outputFormat)
		if err != nil {
			return err
		}
		formatter = output.NewFormatter(format, cmd.OutOrStdout())
		printer = output.NewPrinter(cmd.OutOrStdout())
		printer.SetQuiet(quiet)

		container, cleanup, err = di.InitializeContainer(di.Overrides{APIURL: apiURL})
		if err != nil {
			return fmt.Errorf("failed to initialize container: %w", err)
		}
		cfg = container.Config

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeContainer()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	closeContainer()
	if err != nil {
		output.ErrorPrinter().Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&boardID, "board-id", "b", "", "Board to operate on (default: active board from session)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json, yaml, fzf")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Server base URL (overrides config and "+config.EnvAPIURL+")")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			printVersion(cmd.OutOrStdout())
			return nil
		}

		if len(args) == 0 {
			return tuiCmd.RunE(cmd, args)
		}
		return cmd.Help()
	}
}

// printVersion prints version information
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "taskboard version %s\n", Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Built:      %s\n", BuildDate)
}

func closeContainer() {
	if cleanup != nil {
		cleanup()
		cleanup = nil
	}
}

// getContext returns a context for command execution
func getContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadBoards fetches the board list into the store
func loadBoards(ctx context.Context) error {
	if _, err := container.RefreshBoardsUseCase.Execute(ctx); err != nil {
		return fmt.Errorf("failed to list boards: %w", err)
	}
	return nil
}

// getBoardID returns the board ID to use for commands
// Priority: flag > session file > first board
func getBoardID(ctx context.Context) (string, error) {
	if err := loadBoards(ctx); err != nil {
		return "", err
	}
	return resolveBoardID(ctx)
}

// resolveBoardID picks the board from boards already in the store
func resolveBoardID(ctx context.Context) (string, error) {
	boards := container.Store.State().Boards.Boards

	if boardID != "" {
		if state.FindBoard(boards, boardID) == nil {
			return "", fmt.Errorf("board '%s' not found", boardID)
		}
		return boardID, nil
	}

	if active, err := container.GetActiveSessionBoardUseCase.Execute(ctx); err == nil && active != "" {
		return active, nil
	}

	if len(boards) == 0 {
		return "", fmt.Errorf("no boards found. Create a board first with: taskboard board create <name>")
	}

	return boards[0].ID, nil
}

// confirmer asks on the command's stdin and accepts only "yes" or "y"
func confirmer(cmd *cobra.Command, force bool) func(prompt string) bool {
	return func(prompt string) bool {
		if force {
			return true
		}
		printer.Warning("%s", prompt)
		printer.Print("\nType 'yes' to confirm: ")

		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "yes" || answer == "y"
	}
}

// resolveArgs fills missing positional arguments from piped input, so that
// `taskboard task list -o fzf | fzf | taskboard task get` works.
func resolveArgs(cmd *cobra.Command, args []string, expected int) ([]string, error) {
	if len(args) >= expected {
		return args, nil
	}

	pipedArgs, err := readPipedArgs(cmd.InOrStdin(), expected)
	if err != nil {
		return nil, err
	}

	needed := expected - len(args)
	available := len(args) + len(pipedArgs)
	if len(pipedArgs) < needed {
		return nil, fmt.Errorf("accepts %d arg(s), received %d", expected, available)
	}

	resolved := append([]string{}, pipedArgs[:needed]...)
	resolved = append(resolved, args...)
	return resolved, nil
}

// errPipedConfirm is returned when a command would read both its id and its
// confirmation from the same piped stdin
var errPipedConfirm = errors.New("--force is required when the id is piped, stdin cannot answer the confirmation")

// resolveConfirmedArg resolves the single id of a command that asks for
// confirmation. A piped id consumes stdin, so it is only accepted with --force.
func resolveConfirmedArg(cmd *cobra.Command, args []string, force bool) (string, error) {
	if len(args) == 0 && !force && isPiped(cmd.InOrStdin()) {
		return "", errPipedConfirm
	}
	resolved, err := resolveArgs(cmd, args, 1)
	if err != nil {
		return "", err
	}
	return resolved[0], nil
}

// isPiped reports whether in is something other than a terminal
func isPiped(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return true
	}
	stat, err := f.Stat()
	return err == nil && stat.Mode()&os.ModeCharDevice == 0
}

func readPipedArgs(in io.Reader, expected int) ([]string, error) {
	if !isPiped(in) {
		return nil, nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}

	return extractArgsFromInput(string(data), expected), nil
}

// extractArgsFromInput picks the first non-empty line and splits it the way
// the fzf output format writes it
func extractArgsFromInput(data string, expected int) []string {
	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := parsePipedLine(line)
		if len(tokens) >= expected {
			return tokens
		}
	}
	return nil
}

func parsePipedLine(line string) []string {
	if strings.Contains(line, "\t") {
		return splitFields(line, func(r rune) bool { return r == '\t' })
	}
	if multiSpaceRE.MatchString(line) {
		return multiSpaceRE.Split(line, -1)
	}
	return strings.Fields(line)
}

func splitFields(input string, split func(rune) bool) []string {
	fields := strings.FieldsFunc(input, split)
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		out = append(out, field)
	}
	return out
}
