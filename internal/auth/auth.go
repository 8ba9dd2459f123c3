package auth

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Demo account accepted by Login. Authentication is simulated; there is no
// password store.
const (
	DemoEmail    = "demo@myshop.com"
	DemoPassword = "demo123"
	DemoUserID   = "1"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
)

// ValidationError is a user-facing rejection of form input.
type ValidationError struct {
	Title   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Title + ": " + e.Message
}

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar"`
}

type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type credentials struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type registration struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type profile struct {
	Name  string `validate:"required"`
	Email string `validate:"required,contains=@"`
}

// Authenticator issues opaque session tokens for the demo account and for
// users registered during the process lifetime.
type Authenticator struct {
	mu       sync.RWMutex
	sessions map[string]User
	validate *validator.Validate
	newID    func() string
}

func NewAuthenticator() *Authenticator {
	return &Authenticator{
		sessions: make(map[string]User),
		validate: validator.New(),
		newID:    uuid.NewString,
	}
}

func demoUser() User {
	return User{
		ID:        DemoUserID,
		Name:      "Demo User",
		Email:     DemoEmail,
		AvatarURL: avatarURL("DU"),
	}
}

func avatarURL(initials string) string {
	return "https://via.placeholder.com/100/2874F0/FFFFFF?text=" + initials
}

func (a *Authenticator) Login(email, password string) (Session, error) {
	if err := a.validate.Struct(credentials{Email: email, Password: password}); err != nil {
		return Session{}, &ValidationError{Title: "Error", Message: "Please fill in all fields"}
	}
	if email != DemoEmail || password != DemoPassword {
		return Session{}, ErrInvalidCredentials
	}
	return a.open(demoUser()), nil
}

// Register signs up and logs in a new user. Passwords are not kept.
func (a *Authenticator) Register(name, email, password string) (Session, error) {
	err := a.validate.Struct(registration{Name: name, Email: email, Password: password})
	if err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) == 1 && fieldErrs[0].StructField() == "Name" {
			return Session{}, &ValidationError{Title: "Error", Message: "Please enter your full name"}
		}
		return Session{}, &ValidationError{Title: "Error", Message: "Please fill in all fields"}
	}

	user := User{
		ID:        a.newID(),
		Name:      name,
		Email:     email,
		AvatarURL: avatarURL(strings.ToUpper(string([]rune(name)[:1]))),
	}
	return a.open(user), nil
}

func (a *Authenticator) open(user User) Session {
	token := a.newID()
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sessions[token] = user
	return Session{Token: token, User: user}
}

func (a *Authenticator) Authenticate(token string) (User, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	user, ok := a.sessions[token]
	if !ok {
		return User{}, ErrSessionNotFound
	}
	return user, nil
}

func (a *Authenticator) Logout(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.sessions, token)
}

// UpdateProfile changes name and email for the session's user.
func (a *Authenticator) UpdateProfile(token, name, email string) (User, error) {
	if err := a.validate.Struct(profile{Name: name, Email: email}); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && fieldErrs[0].Tag() == "contains" {
			return User{}, &ValidationError{Title: "Invalid Email", Message: "Please enter a valid email address"}
		}
		return User{}, &ValidationError{Title: "Error", Message: "Please fill in all required fields"}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	user, ok := a.sessions[token]
	if !ok {
		return User{}, ErrSessionNotFound
	}
	user.Name = name
	user.Email = email
	for t, u := range a.sessions {
		if u.ID == user.ID {
			a.sessions[t] = user
		}
	}
	return user, nil
}
