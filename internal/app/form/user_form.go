package form

import (
	"net/url"
	"strings"

	"quiz_admin_console/internal/domain/model"
)

// UserForm is the create-user draft. The password is write-only: it goes
// into the create payload and is never rendered back.
type UserForm struct {
	Name     string
	Email    string
	Password string
	Role     string
}

func NewUserForm() UserForm {
	return UserForm{Role: model.RoleUser}
}

func ParseUserForm(values url.Values) UserForm {
	f := NewUserForm()
	f.Name = strings.TrimSpace(values.Get("name"))
	f.Email = strings.TrimSpace(values.Get("email"))
	f.Password = values.Get("password")
	if role := values.Get("role"); role != "" {
		f.Role = role
	}
	return f
}

func (f UserForm) Validate() Errors {
	errs := Errors{}

	if f.Name == "" {
		errs["name"] = "Name is required"
	}
	if f.Email == "" {
		errs["email"] = "Email is required"
	} else if !validEmail(f.Email) {
		errs["email"] = "Email is invalid"
	}
	if strings.TrimSpace(f.Password) == "" {
		errs["password"] = "Password is required"
	} else if len(f.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}
	if f.Role != model.RoleUser && f.Role != model.RoleAdmin {
		errs["role"] = "Role must be user or admin"
	}

	return errs
}

func (f UserForm) Payload() model.CreateUserPayload {
	return model.CreateUserPayload{
		Name:     f.Name,
		Email:    f.Email,
		Password: f.Password,
		Role:     f.Role,
	}
}
