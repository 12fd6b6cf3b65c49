package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"taskboard/cmd/taskboard/output"
	"taskboard/internal/application/dto"
	"taskboard/internal/application/state"
	"taskboard/internal/domain/entity"
)

// boardRow is a board as listed by the CLI
type boardRow struct {
	dto.BoardDTO `yaml:",inline"`
	Active       bool `json:"active" yaml:"active"`
	Tasks        int  `json:"tasks" yaml:"tasks"`
}

func (r boardRow) Fields() []string {
	return []string{r.ID, r.Name}
}

// boardCmd represents the board command
var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Manage boards",
	Long: `Manage your boards - create, list, rename, delete, and switch between boards.

A board is a collection of tasks shown in three columns: To Do, In Progress and Done.

Examples:
  # List all boards
  taskboard board list

  # Create a new board
  taskboard board create "My Project"

  # Rename a board
  taskboard board rename 64f1c2 "Renamed Project"

  # Delete a board
  taskboard board delete 64f1c2

  # Show current active board
  taskboard board current

  # Switch to a different board (the TUI follows along)
  taskboard board switch 64f1c2`,
}

// boardListCmd lists all boards
var boardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all boards",
	Long: `List all boards on the server.

Displays board ID, name, number of tasks and which board is active.

Examples:
  # List boards in text format
  taskboard board list

  # List boards in JSON format
  taskboard board list --output json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)

		if err := loadBoards(ctx); err != nil {
			return err
		}
		// An empty board list has no active board
		active, _ := resolveBoardID(ctx)
		if _, err := container.ListTasksUseCase.Execute(ctx); err != nil {
			return err
		}

		st := container.Store.State()
		rows := make([]boardRow, 0, len(st.Boards.Boards))
		for _, b := range st.Boards.Boards {
			rows = append(rows, boardRow{
				BoardDTO: dto.BoardToDTO(b),
				Active:   b.ID == active,
				Tasks:    len(state.TasksForBoard(st.Tasks.Tasks, b.ID)),
			})
		}

		switch formatter.Format() {
		case output.FormatJSON, output.FormatYAML:
			return formatter.Print(rows)
		case output.FormatFZF:
			fzfRows := make([]output.Row, len(rows))
			for i, r := range rows {
				fzfRows[i] = r
			}
			return formatter.PrintRows(fzfRows)
		default:
			if len(rows) == 0 {
				printer.Info("No boards found. Create one with: taskboard board create <name>")
				return nil
			}

			lines := make([]output.BoardLine, len(rows))
			for i, r := range rows {
				lines[i] = output.BoardLine{ID: r.ID, Name: r.Name, Tasks: r.Tasks, Active: r.Active}
			}
			printer.Boards(lines)
			return nil
		}
	},
}

// boardCreateCmd creates a new board
var boardCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new board",
	Long: `Create a new board.

Examples:
  # Create a board
  taskboard board create "My Project"

  # Create a board and make it active
  taskboard board create "My Project" --switch`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)

		if err := loadBoards(ctx); err != nil {
			return err
		}

		board, err := container.CreateBoardUseCase.Execute(ctx, args[0])
		if err != nil {
			return err
		}

		if switchTo, _ := cmd.Flags().GetBool("switch"); switchTo {
			if err := container.SelectBoardUseCase.Execute(board.ID); err != nil {
				return err
			}
		}

		if formatter.Structured() {
			return formatter.Print(dto.BoardToDTO(board))
		}
		printer.Success("Created board: %s (%s)", board.Name, board.ID)
		return nil
	},
}

// boardRenameCmd renames a board
var boardRenameCmd = &cobra.Command{
	Use:   "rename <board-id> <name>",
	Short: "Rename a board",
	Long: `Rename an existing board.

Examples:
  taskboard board rename 64f1c2 "Q3 Roadmap"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)

		if err := loadBoards(ctx); err != nil {
			return err
		}

		board, err := container.UpdateBoardUseCase.Execute(ctx, args[0], args[1])
		if err != nil {
			return err
		}

		if formatter.Structured() {
			return formatter.Print(dto.BoardToDTO(board))
		}
		printer.Success("Renamed board %s to %s", board.ID, board.Name)
		return nil
	},
}

// boardDeleteCmd deletes a board
var boardDeleteCmd = &cobra.Command{
	Use:   "delete <board-id>",
	Short: "Delete a board",
	Long: `Delete a board and every task in it.

The last remaining board cannot be deleted.

WARNING: This action cannot be undone.

Examples:
  # Delete a board (with confirmation)
  taskboard board delete 64f1c2

  # Delete without confirmation
  taskboard board delete 64f1c2 --force`,
	Args: cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)
		force, _ := cmd.Flags().GetBool("force")
		id, err := resolveConfirmedArg(cmd, args, force)
		if err != nil {
			return err
		}

		if err := loadBoards(ctx); err != nil {
			return err
		}

		err = container.DeleteBoardUseCase.Execute(ctx, id, confirmer(cmd, force))
		if errors.Is(err, entity.ErrDeleteCancelled) {
			printer.Info("Deletion cancelled")
			return nil
		}
		if err != nil {
			return err
		}

		printer.Success("Deleted board %s", id)
		return nil
	},
}

// boardCurrentCmd shows the board commands operate on
var boardCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the active board",
	Long: `Show the board that task commands operate on.

The board is taken from --board-id, then from the session file written by
'taskboard board switch' and the TUI, and finally the first board.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)

		id, err := getBoardID(ctx)
		if err != nil {
			return err
		}
		board := state.FindBoard(container.Store.State().Boards.Boards, id)
		if board == nil {
			return entity.ErrBoardNotFound
		}

		if formatter.Structured() {
			return formatter.Print(dto.BoardToDTO(*board))
		}
		printer.Println("%s\t%s", board.ID, board.Name)
		return nil
	},
}

// boardSwitchCmd changes the active board
var boardSwitchCmd = &cobra.Command{
	Use:   "switch <board-id>",
	Short: "Switch the active board",
	Long: `Make a board the active one.

The choice is stored in the session file, so later commands and a running TUI
use it.

Examples:
  taskboard board switch 64f1c2
  taskboard board list -o fzf | fzf | taskboard board switch`,
	Args: cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext(cmd)
		resolvedArgs, err := resolveArgs(cmd, args, 1)
		if err != nil {
			return err
		}

		if err := loadBoards(ctx); err != nil {
			return err
		}
		if err := container.SelectBoardUseCase.Execute(resolvedArgs[0]); err != nil {
			return fmt.Errorf("board '%s': %w", resolvedArgs[0], err)
		}

		board := container.Store.State().CurrentBoard()
		printer.Success("Switched to board: %s", board.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)

	boardCmd.AddCommand(boardListCmd)
	boardCmd.AddCommand(boardCreateCmd)
	boardCmd.AddCommand(boardRenameCmd)
	boardCmd.AddCommand(boardDeleteCmd)
	boardCmd.AddCommand(boardCurrentCmd)
	boardCmd.AddCommand(boardSwitchCmd)

	boardCreateCmd.Flags().Bool("switch", false, "Make the new board active")
	boardDeleteCmd.Flags().BoolP("force", "f", false, "Delete without confirmation")
}
