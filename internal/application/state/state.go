// Package state holds the client's cache of server state: boards, the active board,
// loading and error flags, and the flat task list. Changes go through Reduce.
package state

import "taskboard/internal/domain/entity"

// BoardState is the board half of the client state
type BoardState struct {
	Boards      []entity.Board
	ActiveBoard string // empty when there are no boards
	IsLoading   bool
	Error       string
}

// TaskState holds every task across all boards
type TaskState struct {
	Tasks []entity.Task
}

// State is the full client state
type State struct {
	Boards BoardState
	Tasks  TaskState
}

// Clone returns a deep copy of s
func (s State) Clone() State {
	out := s
	out.Boards.Boards = cloneBoards(s.Boards.Boards)
	out.Tasks.Tasks = cloneTasks(s.Tasks.Tasks)
	return out
}

func cloneBoards(in []entity.Board) []entity.Board {
	if in == nil {
		return nil
	}
	out := make([]entity.Board, len(in))
	copy(out, in)
	return out
}

func cloneTasks(in []entity.Task) []entity.Task {
	if in == nil {
		return nil
	}
	out := make([]entity.Task, len(in))
	for i, t := range in {
		out[i] = t.Clone()
	}
	return out
}
