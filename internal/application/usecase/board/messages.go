package board

import "taskboard/internal/domain/entity"

// Messages shown to the user when a board call fails
const (
	MsgLoadFailed   = "Failed to load boards"
	MsgCreateFailed = "Failed to create board"
	MsgUpdateFailed = "Failed to update board"
	MsgDeleteFailed = "Failed to delete board"
)

// DeletePrompt is the question put to the user before a board is deleted
const DeletePrompt = "Are you sure you want to delete this board? All tasks in it will be lost."

// Confirmer asks the user to approve a destructive action
type Confirmer func(prompt string) bool

// AlwaysConfirm approves without asking, for --force style callers
func AlwaysConfirm(string) bool { return true }

func confirmed(c Confirmer, prompt string) bool {
	return c != nil && c(prompt)
}

func findBoard(boards []entity.Board, id string) bool {
	for _, b := range boards {
		if b.ID == id {
			return true
		}
	}
	return false
}
