package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/pathwise/internal/cli/formatter"
	"github.com/alexanderramin/pathwise/internal/credential"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newKeyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the locally stored Gemini API key",
	}

	cmd.AddCommand(
		newKeySetCmd(app),
		newKeyClearCmd(app),
		newKeyStatusCmd(app),
	)

	return cmd
}

func newKeySetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set [key]",
		Short: "Store an API key locally",
		Long: `Store an API key in the local settings database. The stored key
takes priority over the build-time key and the environment.

Without an argument the key is prompted for (masked) in a terminal,
or read from the first line of stdin otherwise.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw string
			switch {
			case len(args) == 1:
				raw = args[0]
			case app.interactive():
				f := keyForm(&raw)
				if err := f.Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
						return nil
					}
					return err
				}
			default:
				line, err := readLine(cmd.InOrStdin())
				if err != nil {
					return err
				}
				raw = line
			}

			if err := app.Keeper.Save(cmdContext(cmd), raw); err != nil {
				return err
			}
			key, _ := credential.ValidateKey(raw)
			fmt.Fprintf(cmd.OutOrStdout(), "%s API key saved to local store (%s)\n",
				formatter.StyleGreen.Render("✔"), credential.Mask(key))
			return nil
		},
	}
}

func newKeyClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the locally stored API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd)
			if err := app.Keeper.Clear(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Stored API key removed.")

			if res, err := app.Keys.Resolve(ctx); err == nil {
				fmt.Fprintln(cmd.OutOrStdout(),
					formatter.Dim(fmt.Sprintf("A key is still available from the %s.", res.Source)))
			}
			return nil
		},
	}
}

func newKeyStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which API key source is active",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd)
			res, err := app.Keys.Resolve(ctx)
			if errors.Is(err, credential.ErrNoCredential) {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatKeyStatus(nil))
				return nil
			}
			if err != nil {
				return err
			}

			status := &formatter.KeyStatus{
				Source: res.Source,
				Masked: credential.Mask(res.Value),
			}
			if stored, err := app.Keeper.Stored(ctx); err == nil && stored != nil && stored.Value == res.Value {
				status.UpdatedAt = &stored.UpdatedAt
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatKeyStatus(status))
			return nil
		},
	}
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// readLine returns the first line of r without its line terminator.
func readLine(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	if sc.Scan() {
		return strings.TrimRight(sc.Text(), "\r"), nil
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("reading key from stdin: %w", err)
	}
	return "", credential.ErrInvalidKey
}
