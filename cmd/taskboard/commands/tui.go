package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"taskboard/tui"
	"taskboard/tui/style"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal user interface",
	Long: `Launch the interactive TUI (Terminal User Interface) for your boards.

The TUI provides a visual, keyboard-driven interface for:
  - Switching between boards in the sidebar
  - Viewing tasks in To Do, In Progress and Done columns
  - Creating, editing, advancing and deleting tasks
  - Creating, renaming and deleting boards
  - Logging in and signing up

Keyboard shortcuts (configurable under keybindings in the config file):
  tab      - Switch between sidebar and columns
  ←/h →/l  - Move between columns
  ↑/k ↓/j  - Move between tasks or boards
  enter    - Open the board under the cursor
  a        - Add task to the active board
  e        - Edit selected task
  m        - Move task to next column
  x        - Delete selected task
  n/r/D    - New, rename, delete board
  ctrl+r   - Reload boards and tasks
  L        - Log in or sign up
  q/Ctrl+C - Quit application

Examples:
  # Launch TUI on the active board
  taskboard tui

  # Launch TUI on a specific board
  taskboard tui --board-id 64f1c2

  # Start on the signup form
  taskboard tui --signup`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		style.InitStyles(cfg)
		tui.InitKeybindings(cfg)

		if boardID != "" {
			if err := loadBoards(getContext(cmd)); err != nil {
				return err
			}
			if err := container.SelectBoardUseCase.Execute(boardID); err != nil {
				return fmt.Errorf("board '%s': %w", boardID, err)
			}
		}

		screen := tui.ScreenBoard
		if signup, _ := cmd.Flags().GetBool("signup"); signup {
			screen = tui.ScreenAuth
		}

		m := tui.NewModel(container, screen)
		defer m.Close()

		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(getContext(cmd)))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running TUI: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().Bool("signup", false, "Open the signup form first")
}
