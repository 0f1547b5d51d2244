package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pathwise/internal/credential"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/charmbracelet/huh"
)

// profileFields holds the form inputs. huh writes into it as the user types.
type profileFields struct {
	name      string
	grade     string
	interests string
	goal      string
}

func fieldsFromProfile(p domain.Profile) *profileFields {
	return &profileFields{
		name:      p.Name,
		grade:     p.GradeOrYear,
		interests: p.Interests,
		goal:      p.Goal,
	}
}

// profile builds the validated Profile from the collected fields.
func (f *profileFields) profile(stage domain.Stage) (domain.Profile, error) {
	return domain.NewProfile(stage, f.name, f.grade, f.interests, f.goal)
}

// required rejects blank input. label names the field in the message.
func required(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

// profileForm creates the four-field profile form for a stage.
func profileForm(stage domain.Stage, f *profileFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full Name").
				Placeholder("e.g. Asha Sharma").
				Value(&f.name).
				Validate(required("Full Name")),
			huh.NewInput().
				Title(stage.GradeLabel()).
				Placeholder(stage.GradePlaceholder()).
				Value(&f.grade).
				Validate(required(stage.GradeLabel())),
			huh.NewText().
				Title("Skills & Interests").
				Placeholder("e.g. coding, robotics, public speaking").
				Lines(3).
				Value(&f.interests).
				Validate(required("Skills & Interests")),
			huh.NewInput().
				Title("Ultimate Career Goal").
				Placeholder("e.g. become a data scientist at a top tech company").
				Value(&f.goal).
				Validate(required("Ultimate Career Goal")),
		).Title(string(stage)).Description(stage.Tagline()),
	).WithTheme(pathwiseHuhTheme()).WithShowHelp(false)
}

// keyForm creates the masked API key prompt.
func keyForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Gemini API Key").
				Description("Stored locally in ~/.pathwise. Get one at https://aistudio.google.com/apikey").
				EchoMode(huh.EchoModePassword).
				Value(value).
				Validate(func(s string) error {
					_, err := credential.ValidateKey(s)
					return err
				}),
		),
	).WithTheme(pathwiseHuhTheme()).WithShowHelp(false)
}
