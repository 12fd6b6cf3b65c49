package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/application/dto"
	"taskboard/internal/domain/entity"
	"taskboard/internal/infrastructure/api/fakeapi"
	"taskboard/internal/infrastructure/config"
)

type cli struct {
	t       *testing.T
	backend *fakeapi.Backend
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvConfigPath, filepath.Join(home, "config.yml"))
	t.Setenv(config.EnvAPIURL, "")
	t.Cleanup(closeContainer)

	return &cli{t: t, backend: fakeapi.NewBackend(t)}
}

// run executes the root command with stdin and returns everything it printed
func (c *cli) run(stdin string, args ...string) (string, error) {
	c.t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--api-url", c.backend.URL()}, args...))

	err := rootCmd.Execute()
	closeContainer()
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	return c.mustRunWithInput("", args...)
}

func (c *cli) mustRunWithInput(stdin string, args ...string) string {
	c.t.Helper()
	out, err := c.run(stdin, args...)
	require.NoError(c.t, err, out)
	return out
}

// resetFlags puts every flag back to its default between runs of the shared command tree
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if _, ok := f.Value.(pflag.SliceValue); !ok {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestVersionFlag(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("--version")
	assert.Contains(t, out, "taskboard version dev")
}

func TestBoardListMarksActiveBoard(t *testing.T) {
	c := newCLI(t)
	c.backend.SeedBoards("Work", "Home")

	out := c.mustRun("board", "list")

	assert.Contains(t, out, "Boards")
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Work") {
			assert.True(t, strings.HasPrefix(line, "*"), line)
		}
		if strings.Contains(line, "Home") {
			assert.False(t, strings.HasPrefix(line, "*"), line)
		}
	}
}

func TestBoardListJSON(t *testing.T) {
	c := newCLI(t)
	ids := c.backend.SeedBoards("Work", "Home")
	c.backend.SeedTask(dto.TaskDTO{Title: "Plan", Status: "todo", Priority: "low", BoardID: ids[1]})

	out := c.mustRun("board", "list", "-o", "json")

	var rows []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Active bool   `json:"active"`
		Tasks  int    `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Work", rows[0].Name)
	assert.True(t, rows[0].Active)
	assert.Equal(t, 0, rows[0].Tasks)
	assert.Equal(t, 1, rows[1].Tasks)
}

func TestBoardCreate(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("board", "create", "Roadmap")

	assert.Contains(t, out, "Created board: Roadmap")
	assert.Equal(t, []string{"Roadmap"}, c.backend.BoardNames())
}

func TestBoardCreateRejectsBlankName(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("", "board", "create", "   ")

	assert.ErrorIs(t, err, entity.ErrEmptyBoardName)
	assert.Zero(t, c.backend.CallCount("POST /addboard"))
}

func TestBoardRename(t *testing.T) {
	c := newCLI(t)
	ids := c.backend.SeedBoards("Work")

	c.mustRun("board", "rename", ids[0], "Office")

	assert.Equal(t, []string{"Office"}, c.backend.BoardNames())
}

func TestBoardDeleteAsksForConfirmation(t *testing.T) {
	c := newCLI(t)
	ids := c.backend.SeedBoards("Work", "Home")

	out, err := c.run("no\n", "board", "delete", ids[1])
	require.NoError(t, err)
	assert.Contains(t, out, "Deletion cancelled")
	assert.Zero(t, c.backend.CallCount("DELETE /deleteboard/{id}"))

	out, err = c.run("yes\n", "board", "delete", ids[1])
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted board")
	assert.Equal(t, []string{"Work"}, c.backend.BoardNames())
}

func TestBoardDeleteLastBoardFails(t *testing.T) {
	c := newCLI(t)
	ids := c.backend.SeedBoards("Work")

	_, err := c.run("", "board", "delete", ids[0], "--force")

	require.Error(t, err)
	assert.Equal(t, "You must have at least one board", err.Error())
	assert.Equal(t, []string{"Work"}, c.backend.BoardNames())
}

func TestBoardSwitchIsRemembered(t *testing.T) {
	c := newCLI(t)
	ids := c.backend.SeedBoards("Work", "Home")

	out := c.mustRun("board", "switch", ids[1])
	assert.Contains(t, out, "Switched to board: Home")

	out = c.mustRun("board", "current")
	assert.Contains(t, out, ids[1]+"\tHome")

	c.mustRun("task", "create", "--title", "Groceries")
	tasks := c.mustRun("task", "list", "-o", "json")
	assert.Contains(t, tasks, ids[1])
}

func TestBoardSwitchUnknownBoard(t *testing.T) {
	c := newCLI(t)
	c.backend.SeedBoards("Work")

	_, err := c.run("", "board", "switch", "missing")

	assert.ErrorIs(t, err, entity.ErrBoardNotFound)
}

func TestBoardFlagOverridesSession(t *testing.T) {
	c := newCLI(t)
	ids := c.backend.SeedBoards("Work", "Home")

	out := c.mustRun("board", "current", "-b", ids[1])
	assert.Contains(t, out, "Home")

	_, err := c.run("", "board", "current", "-b", "missing")
	assert.Error(t, err)
}

func TestTaskCreateAndList(t *testing.T) {
	c := newCLI(t)
	c.backend.SeedBoards("Work")

	out := c.mustRun("task", "create", "--title", "  Write docs  ", "--priority", "high", "--assignee", "dana", "--due", "2030-01-15")
	assert.Contains(t, out, "Created task:")
	assert.Contains(t, out, "Write docs in To Do (Work)")

	out = c.mustRun("task", "list")
	assert.Contains(t, out, "To Do (1)")
	assert.Contains(t, out, "In Progress (0)")
	assert.Contains(t, out, "Write docs")
	assert.Contains(t, out, "High")
	assert.Contains(t, out, "dana")
	assert.Contains(t, out, "2030-01-15")
}

func TestTaskCreateValidatesLocally(t *testing.T) {
	c := newCLI(t)
	c.backend.SeedBoards("Work")

	_, err := c.run("", "task", "create", "--title", "Ship", "--due", "next week")
	assert.ErrorIs(t, err, entity.ErrInvalidDate)

	_, err = c.run("", "task", "create", "--title", "   ")
	assert.ErrorIs(t, err, entity.ErrEmptyTaskTitle)

	assert.Zero(t, c.backend.CallCount("POST /tasks"))
}

func TestTaskCreateWithoutBoards(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("", "task", "create", "--title", "Orphan")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no boards found")
}

func TestTaskListScopesToBoard(t *testing.T) {
	c := newCLI(t)
	ids := c.backend.SeedBoards("Work", "Home")
	c.backend.SeedTask(dto.TaskDTO{Title: "Deploy", Status: "in-progress", Priority: "high", BoardID: ids[0]})
	c.backend.SeedTask(dto.TaskDTO{Title: "Laundry", Status: "todo", Priority: "low", BoardID: ids[1]})

	out := c.mustRun("task", "list")
	assert.Contains(t, out, "Deploy")
	assert.NotContains(t, out, "Laundry")

	out = c.mustRun("task", "list", "--all-boards")
	assert.Contains(t, out, "Deploy")
	assert.Contains(t, out, "Laundry")

	out = c.mustRun("task", "list", "--all-boards", "--status", "todo", "-o", "fzf")
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, "Laundry\ttodo")
}

func TestTaskUpdate(t *testing.T) {
	c := newCLI(t)
	ids := c.backend.SeedBoards("Work")
	id := c.backend.SeedTask(dto.TaskDTO{Title: "Deploy", Status: "todo", Priority: "medium", BoardID: ids[0]})

	_, err := c.run("", "task", "update", id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no updates specified")

	out := c.mustRun("task", "update", id, "--status", "Done", "--title", "Deploy v2")
	assert.Contains(t, out, "Updated task:")

	out = c.mustRun("task", "get", id, "-o", "json")
	var got dto.TaskDTO
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Deploy v2", got.Title)
	assert.Equal(t, "done", got.Status)
	assert.Equal(t, "medium", got.Priority)
	assert.Equal(t, ids[0], got.BoardID)
}

func TestTaskAdvanceAndMove(t *testing.T) {
	c := newCLI(t)
	ids := c.backend.SeedBoards("Work")
	id := c.backend.SeedTask(dto.TaskDTO{Title: "Deploy", Status: "todo", Priority: "medium", BoardID: ids[0]})

	out := c.mustRun("task", "advance", id)
	assert.Contains(t, out, "Moved Deploy to In Progress")

	out = c.mustRun("task", "move", id, "done")
	assert.Contains(t, out, "Moved Deploy to Done")

	_, err := c.run("", "task", "move", id, "archived")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown status")
}

func TestTaskDelete(t *testing.T) {
	c := newCLI(t)
	ids := c.backend.SeedBoards("Work")
	id := c.backend.SeedTask(dto.TaskDTO{Title: "Deploy", Status: "todo", Priority: "medium", BoardID: ids[0]})

	out, err := c.run("\n", "task", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deletion cancelled")
	assert.Equal(t, 1, c.backend.TaskCount())

	c.mustRun("task", "delete", id, "--force")
	assert.Zero(t, c.backend.TaskCount())
}

func TestTaskDeleteReadsIDFromPipe(t *testing.T) {
	c := newCLI(t)
	ids := c.backend.SeedBoards("Work")
	id := c.backend.SeedTask(dto.TaskDTO{Title: "Deploy", Status: "todo", Priority: "medium", BoardID: ids[0]})

	_, err := c.run(id+"\tDeploy\ttodo\n", "task", "delete", "--force")

	require.NoError(t, err)
	assert.Zero(t, c.backend.TaskCount())
}

func TestTaskGetUnknown(t *testing.T) {
	c := newCLI(t)
	c.backend.SeedBoards("Work")

	_, err := c.run("", "task", "get", "missing")

	assert.True(t, errors.Is(err, entity.ErrTaskNotFound))
}

func TestTaskGetPrintsPercentInTitle(t *testing.T) {
	c := newCLI(t)
	ids := c.backend.SeedBoards("Work")
	id := c.backend.SeedTask(dto.TaskDTO{Title: "50% done", Status: "in-progress", Priority: "high", BoardID: ids[0]})

	out := c.mustRun("task", "get", id)

	assert.Contains(t, out, "50% done")
	assert.NotContains(t, out, "%!")
	assert.Contains(t, out, "In Progress")
	assert.Contains(t, out, "Work ("+ids[0]+")")
}

func TestTaskDeletePipedIDRequiresForce(t *testing.T) {
	c := newCLI(t)
	ids := c.backend.SeedBoards("Work")
	id := c.backend.SeedTask(dto.TaskDTO{Title: "Deploy", Status: "todo", BoardID: ids[0]})

	_, err := c.run(id+"\tDeploy\ttodo\n", "task", "delete")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")
	assert.Equal(t, 1, c.backend.TaskCount())
}

func TestBoardDeletePipedIDRequiresForce(t *testing.T) {
	c := newCLI(t)
	ids := c.backend.SeedBoards("Work", "Home")

	_, err := c.run(ids[1]+"\tHome\n", "board", "delete")
	require.ErrorIs(t, err, errPipedConfirm)
	assert.Equal(t, []string{"Work", "Home"}, c.backend.BoardNames())

	c.mustRunWithInput(ids[1]+"\tHome\n", "board", "delete", "--force")
	assert.Equal(t, []string{"Work"}, c.backend.BoardNames())
}

func TestServerErrorsFailCommands(t *testing.T) {
	c := newCLI(t)
	c.backend.FailWith("GET /getboard", 500)

	_, err := c.run("", "board", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list boards")
}

func TestAuthLogin(t *testing.T) {
	c := newCLI(t)
	c.backend.SeedUser("Dana", "dana@example.com", "hunter2")

	_, err := c.run("", "auth", "login", "--email", "dana@example.com", "--password", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())

	out := c.mustRun("auth", "login", "--email", "dana@example.com", "--password", "hunter2")
	assert.Contains(t, out, "Login successful")
}

func TestAuthSignup(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("", "auth", "signup", "--email", "dana@example.com", "--password", "hunter2")
	assert.ErrorIs(t, err, entity.ErrMissingName)

	out := c.mustRun("auth", "signup", "--name", "Dana", "--email", "dana@example.com", "--password", "hunter2")
	assert.Contains(t, out, "Signup successful")

	_, err = c.run("", "auth", "signup", "--name", "Dana", "--email", "dana@example.com", "--password", "hunter2")
	require.Error(t, err)
	assert.Equal(t, "User already exists", err.Error())
}

func TestConfigShowIncludesAPIOverride(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("config", "show")

	assert.Contains(t, out, "base_url: "+c.backend.URL())
}

func TestConfigPath(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("config", "path")

	assert.Contains(t, out, "config.yml")
}

func TestInvalidOutputFormat(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("", "board", "list", "-o", "xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestExtractArgsFromInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		want     []string
	}{
		{"tab separated", "abc\tWrite docs\ttodo\n", 1, []string{"abc", "Write docs", "todo"}},
		{"aligned columns", "abc   Write docs\n", 1, []string{"abc", "Write docs"}},
		{"skips blank lines", "\n\n  abc def\n", 2, []string{"abc", "def"}},
		{"too few fields", "abc\n", 2, nil},
		{"empty", "", 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractArgsFromInput(tt.input, tt.expected))
		})
	}
}
