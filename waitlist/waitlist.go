// Package waitlist holds the email capture funnel: role selection, the
// form's view state and the pluggable submission backend.
package waitlist

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
)

// Role is the side of the marketplace a visitor signs up for.
type Role string

const (
	RoleUnset   Role = ""
	RoleStudent Role = "student"
	RoleClient  Role = "client"
)

// Roles lists the selectable roles in display order.
var Roles = []Role{RoleStudent, RoleClient}

// ParseRole returns the role named exactly by s. Anything else, including
// other casings or surrounding spaces, yields RoleUnset.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleStudent:
		return RoleStudent
	case RoleClient:
		return RoleClient
	}
	return RoleUnset
}

// Label is the button caption for r.
func (r Role) Label() string {
	switch r {
	case RoleStudent:
		return "I'm a Student"
	case RoleClient:
		return "I'm a Client"
	}
	return ""
}

// Entry is one waitlist sign-up.
type Entry struct {
	Email       string    `json:"email"`
	Role        Role      `json:"role,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ErrEmptyEmail is returned for entries without an address.
var ErrEmptyEmail = errors.New("waitlist: email is required")

// Submitter accepts waitlist entries.
type Submitter interface {
	Submit(ctx context.Context, e Entry) error
}

// DefaultDelay is how long the simulated submission takes.
const DefaultDelay = time.Second

// SimulatedSubmitter stands in for a real sign-up service. It waits Delay
// and keeps nothing.
type SimulatedSubmitter struct {
	Delay  time.Duration
	Logger *slog.Logger
}

// NewSimulatedSubmitter returns a SimulatedSubmitter waiting delay.
func NewSimulatedSubmitter(delay time.Duration) *SimulatedSubmitter {
	return &SimulatedSubmitter{
		Delay:  delay,
		Logger: slog.With(slog.String("component", "waitlist")),
	}
}

func (s *SimulatedSubmitter) Submit(ctx context.Context, e Entry) error {
	if strings.TrimSpace(e.Email) == "" {
		return ErrEmptyEmail
	}
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	if s.Logger != nil {
		s.Logger.Debug("simulated waitlist submission", slog.String("role", string(e.Role)))
	}
	return nil
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, e Entry) error

func (f SubmitterFunc) Submit(ctx context.Context, e Entry) error {
	return f(ctx, e)
}

// Form is the view state of the waitlist form on one page view.
type Form struct {
	Email     string
	Role      Role
	Loading   bool
	Submitted bool
	Error     string
}

// NewForm returns an empty form with the role taken from the query value.
func NewForm(query string) Form {
	return Form{Role: ParseRole(query)}
}

// SubmitLabel is the caption of the submit control.
func (f Form) SubmitLabel() string {
	if f.Loading {
		return "Joining..."
	}
	return "Join Waitlist"
}

// Submit runs the submission through sub, moving the form from loading to
// submitted. On failure the form keeps its values and carries msg.
func (f Form) Submit(ctx context.Context, sub Submitter, now time.Time) (Form, error) {
	f.Loading = true
	err := sub.Submit(ctx, Entry{Email: strings.TrimSpace(f.Email), Role: f.Role, SubmittedAt: now})
	f.Loading = false
	if err != nil {
		f.Error = "Something went wrong. Please try again."
		return f, err
	}
	f.Submitted = true
	f.Error = ""
	return f, nil
}
