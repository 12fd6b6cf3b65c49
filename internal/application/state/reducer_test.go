package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/valueobject"
)

func task(id, boardID string, status valueobject.Status) entity.Task {
	return entity.Task{ID: id, Title: id, BoardID: boardID, Status: status, Priority: valueobject.PriorityMedium}
}

func TestReduceBoardsLoadedSelectsFirstBoard(t *testing.T) {
	s := Reduce(State{}, BoardsRequested{})
	assert.True(t, s.Boards.IsLoading)

	s = Reduce(s, BoardsLoaded{Boards: []entity.Board{{ID: "1", Name: "Work"}, {ID: "2", Name: "Home"}}})
	assert.False(t, s.Boards.IsLoading)
	assert.Equal(t, "1", s.Boards.ActiveBoard)
	assert.Len(t, s.Boards.Boards, 2)
}

func TestReduceBoardsLoadedKeepsValidActiveBoard(t *testing.T) {
	s := State{Boards: BoardState{ActiveBoard: "2", Boards: []entity.Board{{ID: "2"}}}}
	s = Reduce(s, BoardsLoaded{Boards: []entity.Board{{ID: "1"}, {ID: "2"}}})
	assert.Equal(t, "2", s.Boards.ActiveBoard)

	s = Reduce(s, BoardsLoaded{Boards: []entity.Board{{ID: "3"}}})
	assert.Equal(t, "3", s.Boards.ActiveBoard, "a vanished active board is replaced")

	s = Reduce(s, BoardsLoaded{})
	assert.Empty(t, s.Boards.ActiveBoard)
}

func TestReduceBoardCreated(t *testing.T) {
	s := Reduce(State{}, BoardCreated{Board: entity.Board{ID: "1", Name: "Frontend Tasks"}})
	assert.Equal(t, "1", s.Boards.ActiveBoard, "first board becomes active")

	s = Reduce(s, BoardCreated{Board: entity.Board{ID: "2", Name: "Backend"}})
	assert.Equal(t, "1", s.Boards.ActiveBoard)
	assert.Equal(t, []entity.Board{{ID: "1", Name: "Frontend Tasks"}, {ID: "2", Name: "Backend"}}, s.Boards.Boards)
}

func TestReduceBoardUpdatedKeepsPosition(t *testing.T) {
	s := State{Boards: BoardState{Boards: []entity.Board{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}, {ID: "3", Name: "c"}}}}
	s = Reduce(s, BoardUpdated{Board: entity.Board{ID: "2", Name: "renamed"}})
	assert.Equal(t, []entity.Board{{ID: "1", Name: "a"}, {ID: "2", Name: "renamed"}, {ID: "3", Name: "c"}}, s.Boards.Boards)
}

func TestReduceBoardDeleted(t *testing.T) {
	s := State{
		Boards: BoardState{ActiveBoard: "1", Boards: []entity.Board{{ID: "1"}, {ID: "2"}}},
		Tasks: TaskState{Tasks: []entity.Task{
			task("a", "1", valueobject.StatusTodo),
			task("b", "2", valueobject.StatusTodo),
			task("c", "1", valueobject.StatusDone),
		}},
	}

	s = Reduce(s, BoardDeleted{ID: "1"})
	assert.Equal(t, []entity.Board{{ID: "2"}}, s.Boards.Boards)
	assert.Equal(t, "2", s.Boards.ActiveBoard)
	require.Len(t, s.Tasks.Tasks, 1)
	assert.Equal(t, "b", s.Tasks.Tasks[0].ID)

	s = Reduce(s, BoardDeleted{ID: "2"})
	assert.Empty(t, s.Boards.ActiveBoard)
	assert.Empty(t, s.Tasks.Tasks)
}

func TestReduceBoardDeletedInactiveKeepsActive(t *testing.T) {
	s := State{Boards: BoardState{ActiveBoard: "1", Boards: []entity.Board{{ID: "1"}, {ID: "2"}}}}
	s = Reduce(s, BoardDeleted{ID: "2"})
	assert.Equal(t, "1", s.Boards.ActiveBoard)
}

func TestReduceErrors(t *testing.T) {
	s := Reduce(State{}, BoardsRequested{})
	s = Reduce(s, BoardRequestFailed{Message: "Failed to load boards"})
	assert.False(t, s.Boards.IsLoading)
	assert.Equal(t, "Failed to load boards", s.Boards.Error)

	s = Reduce(s, BoardsRequested{})
	assert.Empty(t, s.Boards.Error, "a new request clears the previous error")

	s = Reduce(s, ValidationFailed{Message: "Board name cannot be empty"})
	assert.Equal(t, "Board name cannot be empty", s.Boards.Error)
	s = Reduce(s, ErrorDismissed{})
	assert.Empty(t, s.Boards.Error)
}

func TestReduceActiveBoardSelectedIgnoresUnknown(t *testing.T) {
	s := State{Boards: BoardState{ActiveBoard: "1", Boards: []entity.Board{{ID: "1"}, {ID: "2"}}}}
	s = Reduce(s, ActiveBoardSelected{ID: "2"})
	assert.Equal(t, "2", s.Boards.ActiveBoard)
	s = Reduce(s, ActiveBoardSelected{ID: "nope"})
	assert.Equal(t, "2", s.Boards.ActiveBoard)
}

func TestReduceTaskUpdatedPreservesPosition(t *testing.T) {
	s := State{Tasks: TaskState{Tasks: []entity.Task{
		task("a", "1", valueobject.StatusTodo),
		task("b", "1", valueobject.StatusTodo),
		task("c", "1", valueobject.StatusTodo),
	}}}

	updated := task("b", "1", valueobject.StatusDone)
	updated.Title = "B!"
	s = Reduce(s, TaskUpdated{Task: updated})

	require.Len(t, s.Tasks.Tasks, 3)
	assert.Equal(t, "B!", s.Tasks.Tasks[1].Title)
	assert.Equal(t, valueobject.StatusDone, s.Tasks.Tasks[1].Status)

	s = Reduce(s, TaskUpdated{Task: task("z", "1", valueobject.StatusTodo)})
	assert.Len(t, s.Tasks.Tasks, 4)
}

func TestReduceTaskCreatedAndDeleted(t *testing.T) {
	s := Reduce(State{}, TasksLoaded{Tasks: []entity.Task{task("a", "1", valueobject.StatusTodo)}})
	s = Reduce(s, TaskCreated{Task: task("b", "1", valueobject.StatusTodo)})
	assert.Len(t, s.Tasks.Tasks, 2)

	s = Reduce(s, TaskDeleted{ID: "a"})
	require.Len(t, s.Tasks.Tasks, 1)
	assert.Equal(t, "b", s.Tasks.Tasks[0].ID)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	before := State{
		Boards: BoardState{ActiveBoard: "1", Boards: []entity.Board{{ID: "1", Name: "Work"}}},
		Tasks:  TaskState{Tasks: []entity.Task{task("a", "1", valueobject.StatusTodo)}},
	}
	snapshot := before.Clone()

	_ = Reduce(before, BoardUpdated{Board: entity.Board{ID: "1", Name: "Changed"}})
	_ = Reduce(before, TaskUpdated{Task: task("a", "1", valueobject.StatusDone)})
	_ = Reduce(before, BoardDeleted{ID: "1"})

	assert.Equal(t, snapshot, before)
}
