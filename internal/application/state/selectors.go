package state

import (
	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/valueobject"
)

// TasksByStatus returns the tasks of one column: matching status and board, in list order
func TasksByStatus(tasks []entity.Task, status valueobject.Status, boardID string) []entity.Task {
	out := make([]entity.Task, 0)
	for _, t := range tasks {
		if t.Status == status && t.BoardID == boardID {
			out = append(out, t)
		}
	}
	return out
}

// TasksForBoard returns every task on a board, in list order
func TasksForBoard(tasks []entity.Task, boardID string) []entity.Task {
	out := make([]entity.Task, 0)
	for _, t := range tasks {
		if t.BoardID == boardID {
			out = append(out, t)
		}
	}
	return out
}

// FindBoard returns the board with the given id, or nil
func FindBoard(boards []entity.Board, id string) *entity.Board {
	if id == "" {
		return nil
	}
	for i := range boards {
		if boards[i].ID == id {
			return &boards[i]
		}
	}
	return nil
}

// FindTask returns the task with the given id, or nil
func FindTask(tasks []entity.Task, id string) *entity.Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}

// CurrentBoard returns the active board, or a zero Board when none is active
func (s State) CurrentBoard() entity.Board {
	if b := FindBoard(s.Boards.Boards, s.Boards.ActiveBoard); b != nil {
		return *b
	}
	return entity.Board{}
}

// Column returns the tasks of the active board with the given status
func (s State) Column(status valueobject.Status) []entity.Task {
	return TasksByStatus(s.Tasks.Tasks, status, s.Boards.ActiveBoard)
}
