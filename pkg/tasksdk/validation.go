package tasksdk

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Messages the server returns for requests missing required fields.
const (
	MsgRegisterFieldsRequired = "All fields are required to register user"
	MsgLoginFieldsRequired    = "Email and password are required"
	MsgTaskFieldsRequired     = "task, priority and deadline are required"
	MsgUpdateFieldsRequired   = "At least one of task, priority, status or deadline is required"
)

var (
	knownRoles      = []any{RoleAdmin, RoleManager, RoleMember}
	knownPriorities = []any{PriorityLow, PriorityMedium, PriorityHigh}
	knownStatuses   = []any{StatusPending, StatusInProgress, StatusCompleted}
)

// MissingFields reports whether any field needed to register is blank.
func (r RegisterRequest) MissingFields() bool {
	return strings.TrimSpace(r.Username) == "" ||
		strings.TrimSpace(r.Email) == "" ||
		len(r.Role) == 0 ||
		r.Password == ""
}

// Validate checks the registration payload. The returned error is a
// validation.Errors keyed by JSON field name.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.Email, validation.Required, validation.Length(3, 254), is.Email),
		validation.Field(&r.Role, validation.Required, validation.By(validRoles)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, 128)),
	)
}

func validRoles(value any) error {
	roles, _ := value.(RoleList)
	for _, role := range roles {
		if err := validation.Validate(role, validation.Required, validation.In(knownRoles...)); err != nil {
			return errors.New("must be one of admin, manager, member")
		}
	}
	return nil
}

// Validate checks the login payload.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// Validate checks the task creation payload.
func (r CreateTaskRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Task, validation.Required, validation.Length(1, 500)),
		validation.Field(&r.Priority, validation.Required, validation.In(knownPriorities...)),
		validation.Field(&r.Deadline, validation.Required, validation.Length(1, 64)),
	)
}

// Validate checks the provided fields of a task update. Absent fields are
// not validated.
func (r UpdateTaskRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Task, validation.NilOrNotEmpty, validation.Length(1, 500)),
		validation.Field(&r.Priority, validation.NilOrNotEmpty, validation.In(knownPriorities...)),
		validation.Field(&r.Status, validation.NilOrNotEmpty, validation.In(knownStatuses...)),
		validation.Field(&r.Deadline, validation.NilOrNotEmpty, validation.Length(1, 64)),
	)
}

// ValidationDetails flattens a validation error into field -> message.
// Returns nil for errors that are not field validation failures.
func ValidationDetails(err error) map[string]string {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for field, ferr := range verrs {
		out[field] = ferr.Error()
	}
	return out
}
