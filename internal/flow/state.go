// Package flow holds the screen state machine that the terminal UI drives.
package flow

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/planner"
)

// ErrInvalidTransition is returned when an event does not apply to the
// current state.
var ErrInvalidTransition = errors.New("invalid transition")

// Phase names a State variant.
type Phase string

const (
	PhaseWelcome Phase = "welcome"
	PhaseInput   Phase = "input"
	PhaseLoading Phase = "loading"
	PhaseResults Phase = "results"
)

// State is one of Welcome, Input, Loading or Results.
type State interface {
	Phase() Phase
}

// Welcome is the landing screen. Nothing is selected yet.
type Welcome struct{}

// Input is the profile form for a chosen stage. Draft pre-fills the form
// after a failed request; Err is the message shown above it.
type Input struct {
	Stage domain.Stage
	Draft domain.Profile
	Err   string
	Cause error
}

// Loading holds the submitted profile while the request is in flight.
type Loading struct {
	Profile domain.Profile
}

// Results holds the profile and the plan generated for it.
type Results struct {
	Profile domain.Profile
	Plan    domain.Plan
}

func (Welcome) Phase() Phase { return PhaseWelcome }
func (Input) Phase() Phase   { return PhaseInput }
func (Loading) Phase() Phase { return PhaseLoading }
func (Results) Phase() Phase { return PhaseResults }

// Failed reports whether the form is being shown again after a failure.
func (s Input) Failed() bool { return s.Err != "" }

func invalid(event string, from State) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, event, from.Phase())
}

// SelectStage moves welcome to input for the given stage.
func SelectStage(s State, stage domain.Stage) (State, error) {
	if _, ok := s.(Welcome); !ok {
		return s, invalid("select stage", s)
	}
	if !stage.Valid() {
		return s, fmt.Errorf("%w: unknown stage %q", ErrInvalidTransition, stage)
	}
	return Input{Stage: stage, Draft: domain.Profile{Stage: stage}}, nil
}

// Submit moves input to loading. The profile stage must match the form.
func Submit(s State, p domain.Profile) (State, error) {
	in, ok := s.(Input)
	if !ok {
		return s, invalid("submit", s)
	}
	if p.Stage != in.Stage {
		return s, fmt.Errorf("%w: profile stage %q does not match form stage %q",
			ErrInvalidTransition, p.Stage, in.Stage)
	}
	return Loading{Profile: p}, nil
}

// Succeed moves loading to results.
func Succeed(s State, plan domain.Plan) (State, error) {
	ld, ok := s.(Loading)
	if !ok {
		return s, invalid("succeed", s)
	}
	return Results{Profile: ld.Profile, Plan: plan}, nil
}

// Fail moves loading back to input, keeping the submitted profile as the
// draft so the user can resubmit without retyping.
func Fail(s State, cause error) (State, error) {
	ld, ok := s.(Loading)
	if !ok {
		return s, invalid("fail", s)
	}
	if cause == nil {
		cause = errors.New("request failed")
	}
	return Input{
		Stage: ld.Profile.Stage,
		Draft: ld.Profile,
		Err:   planner.UserMessage(cause),
		Cause: cause,
	}, nil
}

// Back moves input to welcome, discarding the draft.
func Back(s State) (State, error) {
	if _, ok := s.(Input); !ok {
		return s, invalid("back", s)
	}
	return Welcome{}, nil
}

// Reset moves results to welcome, discarding the profile and plan.
func Reset(s State) (State, error) {
	if _, ok := s.(Results); !ok {
		return s, invalid("reset", s)
	}
	return Welcome{}, nil
}
