package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taskboard/cmd/taskboard/output"
	"taskboard/internal/application/dto"
	"taskboard/internal/application/state"
	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/valueobject"
)

// taskRow is a task as listed by the CLI
type taskRow struct {
	dto.TaskDTO `yaml:",inline"`
}

func (r taskRow) Fields() []string {
	return []string{r.ID, r.Title, r.Status}
}

// taskCmd represents the task command
var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
	Long: `Manage tasks on the active board - create, list, update, move and delete.

Task commands operate on the board chosen with --board-id, else the active
board from the session, else the first board.

Examples:
  # List tasks on the active board
  taskboard task list

  # Create a task
  taskboard task create --title "Write release notes" --priority high --due 2025-01-31

  # Move a task to the next column
  taskboard task advance 6650a1

  # Delete a task
  taskboard task delete 6650a1`,
}

// taskListCmd lists tasks
var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks on the active board, grouped by column.

Examples:
  # All tasks on the active board
  taskboard task list

  # Only tasks in progress
  taskboard task list --status in-progress

  # Tasks on every board, as JSON
  taskboard task list --all-boards -o json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)

		statusFlag, _ := cmd.Flags().GetString("status")
		allBoards, _ := cmd.Flags().GetBool("all-boards")

		statuses := valueobject.AllStatuses()
		if statusFlag != "" {
			status, err := valueobject.ParseStatus(statusFlag)
			if err != nil {
				return err
			}
			statuses = []valueobject.Status{status}
		}

		var scope string
		if !allBoards {
			id, err := getBoardID(ctx)
			if err != nil {
				return err
			}
			scope = id
		}

		tasks, err := container.ListTasksUseCase.Execute(ctx)
		if err != nil {
			return err
		}
		if scope != "" {
			tasks = state.TasksForBoard(tasks, scope)
		}

		grouped := make(map[valueobject.Status][]entity.Task, len(statuses))
		var selected []entity.Task
		for _, status := range statuses {
			grouped[status] = withStatus(tasks, status)
			selected = append(selected, grouped[status]...)
		}

		switch formatter.Format() {
		case output.FormatJSON, output.FormatYAML:
			return formatter.Print(dto.TasksToDTO(selected))
		case output.FormatFZF:
			rows := make([]output.Row, 0, len(selected))
			for _, t := range selected {
				rows = append(rows, taskRow{dto.TaskToDTO(t)})
			}
			return formatter.PrintRows(rows)
		default:
			if len(selected) == 0 {
				printer.Info("No tasks found. Create one with: taskboard task create --title <title>")
				return nil
			}

			now := time.Now()
			for _, status := range statuses {
				printer.TaskColumn(status, grouped[status], now)
			}
			return nil
		}
	},
}

// taskGetCmd shows one task
var taskGetCmd = &cobra.Command{
	Use:   "get <task-id>",
	Short: "Get task details",
	Long: `Show every field of a task.

Examples:
  taskboard task get 6650a1
  taskboard task get 6650a1 -o yaml`,
	Args: cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolvedArgs, err := resolveArgs(cmd, args, 1)
		if err != nil {
			return err
		}

		task, err := findTask(cmd, resolvedArgs[0])
		if err != nil {
			return err
		}

		if formatter.Structured() {
			return formatter.Print(dto.TaskToDTO(task))
		}
		printer.TaskDetail(task, boardName(getContext(cmd), task.BoardID), time.Now())
		return nil
	},
}

// taskCreateCmd creates a task
var taskCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new task",
	Long: `Create a task on the active board.

Status defaults to todo and priority to medium.

Examples:
  # Minimal task
  taskboard task create --title "Fix login bug"

  # Everything
  taskboard task create --title "Quarterly report" \
    --description "Numbers for Q3" --status in-progress \
    --priority high --assignee dana --due 2025-10-01`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)

		id, err := getBoardID(ctx)
		if err != nil {
			return err
		}

		draft := entity.Task{BoardID: id}
		if err := applyTaskFlags(cmd, &draft); err != nil {
			return err
		}

		created, err := container.CreateTaskUseCase.Execute(ctx, draft)
		if err != nil {
			return err
		}

		if formatter.Structured() {
			return formatter.Print(dto.TaskToDTO(created))
		}
		board := state.FindBoard(container.Store.State().Boards.Boards, created.BoardID)
		boardName := created.BoardID
		if board != nil {
			boardName = board.Name
		}
		printer.Success("Created task: %s - %s in %s (%s)", created.ID, created.Title, created.Status.Label(), boardName)
		return nil
	},
}

// taskUpdateCmd edits a task
var taskUpdateCmd = &cobra.Command{
	Use:   "update <task-id>",
	Short: "Update a task",
	Long: `Update the fields of a task. Only the flags given are changed.

Examples:
  taskboard task update 6650a1 --title "Fix login bug on Safari"
  taskboard task update 6650a1 --status done
  taskboard task update 6650a1 --due ""`,
	Args: cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)
		resolvedArgs, err := resolveArgs(cmd, args, 1)
		if err != nil {
			return err
		}

		changed := false
		for _, name := range taskFieldFlags {
			if cmd.Flags().Changed(name) {
				changed = true
				break
			}
		}
		if !changed {
			return fmt.Errorf("no updates specified. Use --title, --description, --status, --priority, --assignee or --due")
		}

		task, err := findTask(cmd, resolvedArgs[0])
		if err != nil {
			return err
		}
		if err := applyTaskFlags(cmd, &task); err != nil {
			return err
		}

		updated, err := container.UpdateTaskUseCase.Execute(ctx, task.ID, task)
		if err != nil {
			return err
		}

		if formatter.Structured() {
			return formatter.Print(dto.TaskToDTO(updated))
		}
		printer.Success("Updated task: %s - %s", updated.ID, updated.Title)
		return nil
	},
}

// taskMoveCmd sets the status of a task
var taskMoveCmd = &cobra.Command{
	Use:   "move <task-id> <status>",
	Short: "Move a task to a column",
	Long: `Move a task to another column.

Status accepts todo, in-progress and done, or the column titles.

Examples:
  taskboard task move 6650a1 done
  taskboard task move 6650a1 "In Progress"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)

		status, err := valueobject.ParseStatus(args[1])
		if err != nil {
			return err
		}
		if _, err := findTask(cmd, args[0]); err != nil {
			return err
		}

		moved, err := container.MoveTaskUseCase.Execute(ctx, args[0], status)
		if err != nil {
			return err
		}

		printer.Success("Moved %s to %s", moved.Title, moved.Status.Label())
		return nil
	},
}

// taskAdvanceCmd moves a task one column to the right
var taskAdvanceCmd = &cobra.Command{
	Use:   "advance <task-id>",
	Short: "Move a task to the next column",
	Long: `Move a task to the next column: To Do, then In Progress, then Done.

A task that is already done goes back to To Do.

Examples:
  taskboard task advance 6650a1`,
	Args: cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)
		resolvedArgs, err := resolveArgs(cmd, args, 1)
		if err != nil {
			return err
		}

		if _, err := findTask(cmd, resolvedArgs[0]); err != nil {
			return err
		}

		moved, err := container.MoveTaskUseCase.Advance(ctx, resolvedArgs[0])
		if err != nil {
			return err
		}

		printer.Success("Moved %s to %s", moved.Title, moved.Status.Label())
		return nil
	},
}

// taskDeleteCmd deletes a task
var taskDeleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task",
	Long: `Delete a task from the board.

This is the CLI equivalent of the TUI 'd' key action.

WARNING: This action cannot be undone.

Examples:
  # Delete a task (with confirmation)
  taskboard task delete 6650a1

  # Delete without confirmation
  taskboard task delete 6650a1 --force

  # Pick the task with fzf (a piped id requires --force)
  taskboard task list -o fzf | fzf | taskboard task delete --force`,
	Args: cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)
		force, _ := cmd.Flags().GetBool("force")
		id, err := resolveConfirmedArg(cmd, args, force)
		if err != nil {
			return err
		}

		task, err := findTask(cmd, id)
		if err != nil {
			return err
		}

		if !force {
			printer.Warning("About to delete task: %s - %s", task.ID, task.Title)
		}

		err = container.DeleteTaskUseCase.Execute(ctx, task.ID, confirmer(cmd, force))
		if errors.Is(err, entity.ErrDeleteCancelled) {
			printer.Info("Deletion cancelled")
			return nil
		}
		if err != nil {
			return err
		}

		printer.Success("Deleted task: %s - %s", task.ID, task.Title)
		return nil
	},
}

var taskFieldFlags = []string{"title", "description", "status", "priority", "assignee", "due"}

// applyTaskFlags copies the task flags that were set onto t
func applyTaskFlags(cmd *cobra.Command, t *entity.Task) error {
	flags := cmd.Flags()

	if flags.Changed("title") {
		t.Title, _ = flags.GetString("title")
	}
	if flags.Changed("description") {
		t.Description, _ = flags.GetString("description")
	}
	if flags.Changed("assignee") {
		t.AssignedTo, _ = flags.GetString("assignee")
	}
	if flags.Changed("status") {
		value, _ := flags.GetString("status")
		status, err := valueobject.ParseStatus(value)
		if err != nil {
			return err
		}
		t.Status = status
	}
	if flags.Changed("priority") {
		value, _ := flags.GetString("priority")
		priority, err := valueobject.ParsePriority(value)
		if err != nil {
			return err
		}
		t.Priority = priority
	}
	if flags.Changed("due") {
		value, _ := flags.GetString("due")
		due, err := entity.ParseDueDate(value)
		if err != nil {
			return err
		}
		t.DueDate = due
	}
	return nil
}

// findTask loads every task and returns the one with id
func findTask(cmd *cobra.Command, id string) (entity.Task, error) {
	tasks, err := container.ListTasksUseCase.Execute(getContext(cmd))
	if err != nil {
		return entity.Task{}, err
	}
	task := state.FindTask(tasks, id)
	if task == nil {
		return entity.Task{}, fmt.Errorf("task '%s': %w", id, entity.ErrTaskNotFound)
	}
	return *task, nil
}

// boardName describes the board a task belongs to
func boardName(ctx context.Context, id string) string {
	if err := loadBoards(ctx); err != nil {
		return id
	}
	if b := state.FindBoard(container.Store.State().Boards.Boards, id); b != nil {
		return fmt.Sprintf("%s (%s)", b.Name, b.ID)
	}
	return id
}

// withStatus filters tasks that may span several boards
func withStatus(tasks []entity.Task, status valueobject.Status) []entity.Task {
	var out []entity.Task
	for _, t := range tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(taskCmd)

	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskGetCmd)
	taskCmd.AddCommand(taskCreateCmd)
	taskCmd.AddCommand(taskUpdateCmd)
	taskCmd.AddCommand(taskMoveCmd)
	taskCmd.AddCommand(taskAdvanceCmd)
	taskCmd.AddCommand(taskDeleteCmd)

	taskListCmd.Flags().String("status", "", "Filter by status (todo, in-progress, done)")
	taskListCmd.Flags().Bool("all-boards", false, "List tasks from every board")

	for _, c := range []*cobra.Command{taskCreateCmd, taskUpdateCmd} {
		c.Flags().StringP("title", "t", "", "Task title")
		c.Flags().StringP("description", "d", "", "Task description")
		c.Flags().StringP("status", "s", "", "Status: todo, in-progress, done")
		c.Flags().StringP("priority", "p", "", "Priority: low, medium, high")
		c.Flags().StringP("assignee", "a", "", "Person the task is assigned to")
		c.Flags().String("due", "", "Due date (YYYY-MM-DD, empty clears it)")
	}
	_ = taskCreateCmd.MarkFlagRequired("title")

	taskDeleteCmd.Flags().BoolP("force", "f", false, "Delete without confirmation")
}
