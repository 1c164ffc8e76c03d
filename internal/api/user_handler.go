package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/phrazzld/orders-api/internal/api/shared"
	"github.com/phrazzld/orders-api/internal/domain"
	"github.com/phrazzld/orders-api/internal/platform/logger"
	"github.com/phrazzld/orders-api/internal/store"
)

// UserCreateRequest is the payload for creating or fully replacing a
// user. Every field is required; PUT deliberately reuses this schema so
// a replace always overwrites the whole record.
type UserCreateRequest struct {
	Name  string `json:"name"  validate:"required,min=2,max=50"`
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age"   validate:"required,gt=0,lt=120"`
}

// UserUpdateRequest is the partial-update payload. Fields left out of
// the payload are untouched; an explicit null is rejected because no
// user field is nullable.
type UserUpdateRequest struct {
	Name  shared.Optional[string] `json:"name"`
	Email shared.Optional[string] `json:"email"`
	Age   shared.Optional[int]    `json:"age"`
}

// Validate checks the constraints of every field the client actually sent.
func (req UserUpdateRequest) Validate() error {
	var fields []shared.FieldError

	if req.Name.Set {
		if req.Name.Null {
			fields = append(fields, shared.FieldError{Field: "name", Message: "must not be null"})
		} else if n := utf8.RuneCountInString(req.Name.Value); n < 2 || n > 50 {
			fields = append(fields, shared.FieldError{Field: "name", Message: "must be between 2 and 50 characters"})
		}
	}
	if req.Email.Set {
		if req.Email.Null {
			fields = append(fields, shared.FieldError{Field: "email", Message: "must not be null"})
		} else if shared.Validate.Var(req.Email.Value, "required,email") != nil {
			fields = append(fields, shared.FieldError{Field: "email", Message: "must be a valid email address"})
		}
	}
	if req.Age.Set {
		if req.Age.Null {
			fields = append(fields, shared.FieldError{Field: "age", Message: "must not be null"})
		} else if req.Age.Value < 1 || req.Age.Value > 119 {
			fields = append(fields, shared.FieldError{Field: "age", Message: "must be between 1 and 119"})
		}
	}

	if len(fields) > 0 {
		return &shared.FieldsError{Fields: fields}
	}
	return nil
}

// apply merges the sent fields onto the existing record.
func (req UserUpdateRequest) apply(user *domain.User) {
	if req.Name.Set {
		user.Name = req.Name.Value
	}
	if req.Email.Set {
		user.Email = req.Email.Value
	}
	if req.Age.Set {
		user.Age = req.Age.Value
	}
}

// UserResponse represents the response data for a user. It is the strict
// allow-list of fields exposed to clients.
type UserResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users store.UserStore, log *slog.Logger) *UserHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		users:  users,
		logger: log.With(slog.String("component", "user_handler")),
	}
}

// List handles GET /users requests, returning a paginated list of users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	params, err := shared.ParsePageParams(r)
	if err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	users, err := h.users.List(r.Context())
	if err != nil {
		respondStoreError(w, r, err, "")
		return
	}

	page := shared.Page(users, params)
	response := make([]UserResponse, 0, len(page))
	for _, u := range page {
		response = append(response, userToResponse(&u))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// Get handles GET /users/{userID} requests.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathInt(r, "userID")
	if err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, fmt.Sprintf("User with id %d not found", id))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// Create handles POST /users requests. Duplicate emails are permitted;
// there is no uniqueness constraint on any user field.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req UserCreateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	user := domain.User{Name: req.Name, Email: req.Email, Age: req.Age}
	if err := h.users.Create(r.Context(), &user); err != nil {
		respondStoreError(w, r, err, "")
		return
	}

	log.Debug("user created", slog.Int("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(&user))
}

// Replace handles PUT /users/{userID} requests. The full-payload schema
// means fields absent from the request are overwritten, not preserved.
func (h *UserHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := getPathInt(r, "userID")
	if err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	var req UserCreateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	user := domain.User{ID: id, Name: req.Name, Email: req.Email, Age: req.Age}
	if err := h.users.Replace(r.Context(), &user); err != nil {
		respondStoreError(w, r, err, fmt.Sprintf("User %d not found", id))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(&user))
}

// Patch handles PATCH /users/{userID} requests, merging only the fields
// explicitly present in the payload onto the existing record.
func (h *UserHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := getPathInt(r, "userID")
	if err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	var req UserUpdateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, fmt.Sprintf("User %d not found", id))
		return
	}

	req.apply(user)
	if err := h.users.Replace(r.Context(), user); err != nil {
		respondStoreError(w, r, err, fmt.Sprintf("User %d not found", id))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// Delete handles DELETE /users/{userID} requests. Orders referencing the
// deleted user are left intact; there is no cascade.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathInt(r, "userID")
	if err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		respondStoreError(w, r, err, fmt.Sprintf("User %d not found", id))
		return
	}

	log.Debug("user deleted", slog.Int("user_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("User %d deleted successfully", id),
	})
}

// userToResponse converts a domain.User to a UserResponse.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Age:   user.Age,
	}
}
