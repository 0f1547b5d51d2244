package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/pathwise/internal/flow"
	"github.com/alexanderramin/pathwise/internal/teatest"
)

// TestDriver wraps teatest.Driver with appModel inspection methods.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App at 100x40.
func NewTestDriver(t *testing.T, app *App, opts ...teatest.Option) *TestDriver {
	t.Helper()

	m := newAppModel(context.Background(), app)
	opts = append([]teatest.Option{teatest.WithSize(100, 40)}, opts...)
	d := teatest.New(t, m, opts...)
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// FillProfile types the four profile fields, pressing Enter after each.
func (d *TestDriver) FillProfile(name, grade, interests, goal string) {
	d.T.Helper()
	d.TypeLine(name)
	d.TypeLine(grade)
	d.TypeLine(interests)
	d.TypeLine(goal)
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// State returns the flow state.
func (d *TestDriver) State() flow.State {
	return d.appModel().machine.State()
}

// Phase returns the flow phase.
func (d *TestDriver) Phase() flow.Phase {
	return d.appModel().machine.Phase()
}

// KeyModalOpen reports whether the API key modal is showing.
func (d *TestDriver) KeyModalOpen() bool {
	return d.appModel().keyForm != nil
}

// Fields returns the profile form's current values.
func (d *TestDriver) Fields() *profileFields {
	return d.appModel().fields
}
