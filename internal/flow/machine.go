package flow

import (
	"github.com/alexanderramin/pathwise/internal/domain"
)

// Machine owns the current State. It is not safe for concurrent use; the
// bubbletea update loop is its only caller.
type Machine struct {
	state State
}

// NewMachine starts at Welcome.
func NewMachine() *Machine {
	return &Machine{state: Welcome{}}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Phase is shorthand for State().Phase().
func (m *Machine) Phase() Phase { return m.state.Phase() }

func (m *Machine) apply(next State, err error) error {
	if err != nil {
		return err
	}
	m.state = next
	return nil
}

func (m *Machine) SelectStage(stage domain.Stage) error {
	return m.apply(SelectStage(m.state, stage))
}

func (m *Machine) Submit(p domain.Profile) error {
	return m.apply(Submit(m.state, p))
}

func (m *Machine) Succeed(plan domain.Plan) error {
	return m.apply(Succeed(m.state, plan))
}

func (m *Machine) Fail(cause error) error {
	return m.apply(Fail(m.state, cause))
}

func (m *Machine) Back() error {
	return m.apply(Back(m.state))
}

func (m *Machine) Reset() error {
	return m.apply(Reset(m.state))
}
