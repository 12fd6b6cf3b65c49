package state

import "taskboard/internal/domain/entity"

// Reduce applies a to s and returns the new state. It does not modify s.
func Reduce(s State, a Action) State {
	next := s.Clone()

	switch a := a.(type) {
	case BoardsRequested:
		next.Boards.IsLoading = true
		next.Boards.Error = ""

	case BoardsLoaded:
		next.Boards.Boards = cloneBoards(a.Boards)
		next.Boards.IsLoading = false
		if FindBoard(next.Boards.Boards, next.Boards.ActiveBoard) == nil {
			next.Boards.ActiveBoard = firstBoardID(next.Boards.Boards)
		}

	case BoardCreated:
		wasEmpty := len(next.Boards.Boards) == 0
		next.Boards.Boards = append(next.Boards.Boards, a.Board)
		next.Boards.IsLoading = false
		if wasEmpty {
			next.Boards.ActiveBoard = a.Board.ID
		}

	case BoardUpdated:
		for i, b := range next.Boards.Boards {
			if b.ID == a.Board.ID {
				next.Boards.Boards[i] = a.Board
			}
		}
		next.Boards.IsLoading = false

	case BoardDeleted:
		remaining := make([]entity.Board, 0, len(next.Boards.Boards))
		for _, b := range next.Boards.Boards {
			if b.ID != a.ID {
				remaining = append(remaining, b)
			}
		}
		next.Boards.Boards = remaining

		tasks := make([]entity.Task, 0, len(next.Tasks.Tasks))
		for _, t := range next.Tasks.Tasks {
			if t.BoardID != a.ID {
				tasks = append(tasks, t)
			}
		}
		next.Tasks.Tasks = tasks

		if next.Boards.ActiveBoard == a.ID {
			next.Boards.ActiveBoard = firstBoardID(remaining)
		}
		next.Boards.IsLoading = false

	case BoardRequestFailed:
		next.Boards.Error = a.Message
		next.Boards.IsLoading = false

	case ValidationFailed:
		next.Boards.Error = a.Message

	case ActiveBoardSelected:
		if FindBoard(next.Boards.Boards, a.ID) != nil {
			next.Boards.ActiveBoard = a.ID
		}

	case ErrorDismissed:
		next.Boards.Error = ""

	case TasksLoaded:
		next.Tasks.Tasks = cloneTasks(a.Tasks)

	case TaskCreated:
		next.Tasks.Tasks = append(next.Tasks.Tasks, a.Task.Clone())

	case TaskUpdated:
		replaced := false
		for i, t := range next.Tasks.Tasks {
			if t.ID == a.Task.ID {
				next.Tasks.Tasks[i] = a.Task.Clone()
				replaced = true
			}
		}
		if !replaced {
			next.Tasks.Tasks = append(next.Tasks.Tasks, a.Task.Clone())
		}

	case TaskDeleted:
		tasks := make([]entity.Task, 0, len(next.Tasks.Tasks))
		for _, t := range next.Tasks.Tasks {
			if t.ID != a.ID {
				tasks = append(tasks, t)
			}
		}
		next.Tasks.Tasks = tasks
	}

	return next
}

func firstBoardID(boards []entity.Board) string {
	if len(boards) == 0 {
		return ""
	}
	return boards[0].ID
}
