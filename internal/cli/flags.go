package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/spf13/pflag"
)

// stageValue parses --stage into a domain.Stage.
type stageValue domain.Stage

var _ pflag.Value = (*stageValue)(nil)

func (v *stageValue) String() string { return string(*v) }
func (v *stageValue) Type() string   { return "stage" }

func (v *stageValue) Set(s string) error {
	st, err := domain.ParseStage(s)
	if err != nil {
		return err
	}
	*v = stageValue(st)
	return nil
}

// outputFormat selects how the plan command prints a plan.
type outputFormat string

const (
	formatText     outputFormat = "text"
	formatMarkdown outputFormat = "markdown"
	formatJSON     outputFormat = "json"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }
func (f *outputFormat) Type() string   { return "format" }

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(strings.ToLower(strings.TrimSpace(s))); v {
	case formatText, formatMarkdown, formatJSON:
		*f = v
		return nil
	case "md":
		*f = formatMarkdown
		return nil
	default:
		return fmt.Errorf("unknown format %q (use text, markdown or json)", s)
	}
}
