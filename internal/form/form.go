// Package form validates sign-up forms. Independent fields are checked with
// the accumulating combinators so a user sees every problem at once.
package form

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/ib-77/safevalidation/pkg/rop"
	"github.com/ib-77/safevalidation/pkg/rop/solo"
)

const (
	MaxUsernameLength = 32
	MaxAge            = 150
)

type Form struct {
	Username string `yaml:"username" mapstructure:"username"`
	Email    string `yaml:"email" mapstructure:"email"`
	Age      int    `yaml:"age" mapstructure:"age"`
}

type Credentials struct {
	Username string
	Email    string
}

type Account struct {
	ID       uuid.UUID
	Username string
	Email    string
	Age      int
}

func ValidateUsername(username string) rop.Result[string] {
	return solo.ValidateAll(username,
		func(s string) rop.Result[string] {
			return solo.Validate(s, func(s string) bool { return s != "" }, "Username is empty")
		},
		func(s string) rop.Result[string] {
			return solo.Validate(s, func(s string) bool { return len(s) <= MaxUsernameLength }, "Username is too long")
		},
		func(s string) rop.Result[string] {
			return solo.Validate(s, func(s string) bool { return !strings.ContainsFunc(s, unicode.IsSpace) },
				"Username must not contain spaces")
		},
	)
}

func ValidateEmail(email string) rop.Result[string] {
	return solo.Validate(email, func(s string) bool { return strings.Contains(s, "@") }, "Email must contain @-sign")
}

func ValidateAge(age int) rop.Result[int] {
	return solo.ValidateFirst(age,
		func(n int) rop.Result[int] {
			return solo.Validate(n, func(n int) bool { return n > 0 }, "Age must be positive")
		},
		func(n int) rop.Result[int] {
			return solo.Validate(n, func(n int) bool { return n < MaxAge }, "Age is unrealistic")
		},
	)
}

var combineCredentials = solo.Lift2(func(username, email string) Credentials {
	return Credentials{Username: username, Email: email}
})

// Combine validates both fields and reports every failing one.
func Combine(username, email string) rop.Result[Credentials] {
	return combineCredentials(ValidateUsername(username), ValidateEmail(email))
}

// Chain validates the fields in order and stops at the first failing one.
func Chain(username, email string) rop.Result[Credentials] {
	return solo.BindWith(ValidateUsername(username),
		func(string) rop.Result[string] { return ValidateEmail(email) },
		func(username, email string) Credentials {
			return Credentials{Username: username, Email: email}
		})
}

var buildForm = solo.Lift3(func(username, email string, age int) Form {
	return Form{Username: username, Email: email, Age: age}
})

// Validate checks all fields of f, accumulating their messages in field order.
func Validate(f Form) rop.Result[Form] {
	return buildForm(ValidateUsername(f.Username), ValidateEmail(f.Email), ValidateAge(f.Age))
}

// Registrar turns valid forms into accounts.
type Registrar struct {
	newID func() (uuid.UUID, error)
}

type RegistrarOption func(*Registrar)

// IDSource overrides how account ids are generated.
func IDSource(f func() (uuid.UUID, error)) RegistrarOption {
	return func(r *Registrar) {
		r.newID = f
	}
}

func NewRegistrar(opts ...RegistrarOption) *Registrar {
	r := &Registrar{newID: uuid.NewRandom}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register validates f and assigns a fresh id. A failing id source is reported
// next to any field messages.
func (r *Registrar) Register(f Form) rop.Result[Account] {
	return solo.ZipWith(Validate(f), rop.TryErr(r.newID), func(f Form, id uuid.UUID) Account {
		return Account{ID: id, Username: f.Username, Email: f.Email, Age: f.Age}
	})
}
