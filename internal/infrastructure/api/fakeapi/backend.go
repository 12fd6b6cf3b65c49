// Package fakeapi provides an in-memory task-board backend served over HTTP,
// for tests and for trying the client without the real server.
package fakeapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"taskboard/internal/application/dto"
)

// Backend mimics the REST backend, including its Mongo-style "_id" fields
type Backend struct {
	mu       sync.Mutex
	boards   []wireBoard
	tasks    []wireTask
	users    map[string]dto.SignupRequest
	failures map[string]int
	calls    []string
	server   *httptest.Server
}

type wireBoard struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type wireTask struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	AssignedTo  string `json:"assignedTo"`
	DueDate     string `json:"dueDate"`
	BoardID     string `json:"boardId"`
	CreatedAt   string `json:"createdAt"`
}

// NewBackend starts a backend that is shut down when t finishes
func NewBackend(t testing.TB) *Backend {
	t.Helper()
	b := newBackend()
	b.server = httptest.NewServer(b.Router())
	t.Cleanup(b.server.Close)
	return b
}

// New creates a backend without starting a server; serve Router() yourself
func New() *Backend {
	return newBackend()
}

func newBackend() *Backend {
	return &Backend{
		users:    make(map[string]dto.SignupRequest),
		failures: make(map[string]int),
	}
}

// URL returns the server base URL. Only set for backends from NewBackend.
func (b *Backend) URL() string {
	if b.server == nil {
		return ""
	}
	return b.server.URL
}

// Router returns the backend's routes
func (b *Backend) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/login", b.login)
	r.Post("/signup", b.signup)

	r.Get("/getboard", b.listBoards)
	r.Post("/addboard", b.addBoard)
	r.Put("/updateboard/{id}", b.updateBoard)
	r.Delete("/deleteboard/{id}", b.deleteBoard)

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", b.listTasks)
		r.Post("/", b.createTask)
		r.Put("/{id}", b.updateTask)
		r.Delete("/{id}", b.deleteTask)
	})

	return r
}

// SeedBoards adds boards and returns their ids
func (b *Backend) SeedBoards(names ...string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	ids := make([]string, 0, len(names))
	for _, name := range names {
		id := uuid.NewString()
		b.boards = append(b.boards, wireBoard{ID: id, Name: name})
		ids = append(ids, id)
	}
	return ids
}

// SeedTask stores a task as-is, assigning an id if it has none
func (b *Backend) SeedTask(t dto.TaskDTO) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	b.tasks = append(b.tasks, toWireTask(t))
	return t.ID
}

// SeedUser registers an account
func (b *Backend) SeedUser(name, email, password string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.users[email] = dto.SignupRequest{Name: name, Email: email, Password: password}
}

// FailWith makes every request to route ("METHOD /pattern") answer with status
func (b *Backend) FailWith(route string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[route] = status
}

// Recover removes an injected failure
func (b *Backend) Recover(route string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.failures, route)
}

// Calls returns every route hit so far, in order
func (b *Backend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

// CallCount returns how many times route was hit
func (b *Backend) CallCount(route string) int {
	n := 0
	for _, c := range b.Calls() {
		if c == route {
			n++
		}
	}
	return n
}

// BoardNames returns the stored board names in order
func (b *Backend) BoardNames() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	names := make([]string, 0, len(b.boards))
	for _, bd := range b.boards {
		names = append(names, bd.Name)
	}
	return names
}

// TaskCount returns the number of stored tasks
func (b *Backend) TaskCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.tasks)
}

// enter records the call and reports whether an injected failure was written
func (b *Backend) enter(w http.ResponseWriter, route string) bool {
	b.mu.Lock()
	b.calls = append(b.calls, route)
	status, fail := b.failures[route]
	b.mu.Unlock()

	if fail {
		writeJSON(w, status, map[string]string{"message": "injected failure"})
	}
	return fail
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	if b.enter(w, "POST /login") {
		return
	}
	var req dto.LoginRequest
	if !decode(w, r, &req) {
		return
	}

	b.mu.Lock()
	u, ok := b.users[req.Email]
	b.mu.Unlock()

	if !ok || u.Password != req.Password {
		writeJSON(w, http.StatusOK, dto.AuthResponse{Success: false, Message: "Invalid email or password"})
		return
	}
	writeJSON(w, http.StatusOK, dto.AuthResponse{Success: true, Message: "Login successful"})
}

func (b *Backend) signup(w http.ResponseWriter, r *http.Request) {
	if b.enter(w, "POST /signup") {
		return
	}
	var req dto.SignupRequest
	if !decode(w, r, &req) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.users[req.Email]; exists {
		writeJSON(w, http.StatusOK, dto.AuthResponse{Success: false, Message: "User already exists"})
		return
	}
	b.users[req.Email] = req
	writeJSON(w, http.StatusCreated, dto.AuthResponse{Success: true, Message: "Signup successful"})
}

func (b *Backend) listBoards(w http.ResponseWriter, r *http.Request) {
	if b.enter(w, "GET /getboard") {
		return
	}
	b.mu.Lock()
	boards := append([]wireBoard{}, b.boards...)
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]interface{}{"boards": boards})
}

func (b *Backend) addBoard(w http.ResponseWriter, r *http.Request) {
	if b.enter(w, "POST /addboard") {
		return
	}
	var req dto.BoardRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "name is required"})
		return
	}

	board := wireBoard{ID: uuid.NewString(), Name: req.Name}
	b.mu.Lock()
	b.boards = append(b.boards, board)
	b.mu.Unlock()
	writeJSON(w, http.StatusCreated, map[string]interface{}{"board": board})
}

func (b *Backend) updateBoard(w http.ResponseWriter, r *http.Request) {
	if b.enter(w, "PUT /updateboard/{id}") {
		return
	}
	id := chi.URLParam(r, "id")
	var req dto.BoardRequest
	if !decode(w, r, &req) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.boards {
		if b.boards[i].ID == id {
			b.boards[i].Name = req.Name
			writeJSON(w, http.StatusOK, map[string]interface{}{"board": b.boards[i]})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "Board not found"})
}

func (b *Backend) deleteBoard(w http.ResponseWriter, r *http.Request) {
	if b.enter(w, "DELETE /deleteboard/{id}") {
		return
	}
	id := chi.URLParam(r, "id")

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.boards {
		if b.boards[i].ID == id {
			b.boards = append(b.boards[:i], b.boards[i+1:]...)
			kept := b.tasks[:0]
			for _, t := range b.tasks {
				if t.BoardID != id {
					kept = append(kept, t)
				}
			}
			b.tasks = kept
			writeJSON(w, http.StatusOK, map[string]string{"message": "Board deleted"})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "Board not found"})
}

func (b *Backend) listTasks(w http.ResponseWriter, r *http.Request) {
	if b.enter(w, "GET /tasks") {
		return
	}
	b.mu.Lock()
	tasks := append([]wireTask{}, b.tasks...)
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks})
}

func (b *Backend) createTask(w http.ResponseWriter, r *http.Request) {
	if b.enter(w, "POST /tasks") {
		return
	}
	var req dto.TaskDTO
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "title is required"})
		return
	}

	req.ID = uuid.NewString()
	task := toWireTask(req)
	b.mu.Lock()
	b.tasks = append(b.tasks, task)
	b.mu.Unlock()
	writeJSON(w, http.StatusCreated, map[string]interface{}{"task": task})
}

func (b *Backend) updateTask(w http.ResponseWriter, r *http.Request) {
	if b.enter(w, "PUT /tasks/{id}") {
		return
	}
	id := chi.URLParam(r, "id")
	var req dto.TaskDTO
	if !decode(w, r, &req) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			req.ID = id
			if req.CreatedAt == "" {
				req.CreatedAt = b.tasks[i].CreatedAt
			}
			b.tasks[i] = toWireTask(req)
			writeJSON(w, http.StatusOK, map[string]interface{}{"task": b.tasks[i]})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "Task not found"})
}

func (b *Backend) deleteTask(w http.ResponseWriter, r *http.Request) {
	if b.enter(w, "DELETE /tasks/{id}") {
		return
	}
	id := chi.URLParam(r, "id")

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			b.tasks = append(b.tasks[:i], b.tasks[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "Task not found"})
}

func toWireTask(t dto.TaskDTO) wireTask {
	return wireTask{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		AssignedTo:  t.AssignedTo,
		DueDate:     t.DueDate,
		BoardID:     t.BoardID,
		CreatedAt:   t.CreatedAt,
	}
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid json"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
