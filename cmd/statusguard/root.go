package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/statusguard/pkg/changeset"
	"github.com/dmitrymomot/statusguard/pkg/config"
	"github.com/dmitrymomot/statusguard/pkg/transition"
	"github.com/dmitrymomot/statusguard/pkg/validator"
)

var (
	errInvalidTransition = errors.New("invalid transition")
	errInvalidInput      = errors.New("invalid input")
)

type rootOptions struct {
	rulesFile string
	envFiles  []string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "statusguard",
		Short:         "Check lifecycle field transitions against a declared rule file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&opts.rulesFile, "rules", "", "Path to the YAML rule file (overrides RULES_FILE)")
	root.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "Additional .env files to load")

	root.AddCommand(newCheckCmd(opts), newRulesCmd(opts))
	return root
}

func (o *rootOptions) load(ctx context.Context, stderr io.Writer) (*app, error) {
	if err := config.LoadEnv(o.envFiles...); err != nil {
		return nil, err
	}

	var s settings
	if err := config.Load(&s); err != nil {
		return nil, err
	}
	if o.rulesFile != "" {
		s.RulesFile = o.rulesFile
	}

	return newApp(ctx, s, stderr)
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var from, to, payload string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a single transition of the governed field",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := changeset.New(nil).Apply(validator.Required("from", cmd.Flags().Changed("from")))
			if !input.Valid() {
				printErrors(cmd.OutOrStdout(), input.Errors())
				return errInvalidInput
			}

			ctx := cmd.Context()
			a, err := opts.load(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			field := a.validator.Field()
			cs := changeset.New(map[string]any{field: from})
			if cmd.Flags().Changed("to") {
				cs.Change(field, to)
			}

			var extra []any
			if cmd.Flags().Changed("payload") {
				extra = append(extra, payload)
			}
			if err := changeset.ValidateTransition(ctx, cs, a.validator, extra...); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !cs.Valid() {
				for _, msg := range cs.Errors().Get(field) {
					fmt.Fprintln(out, msg)
				}
				return errInvalidTransition
			}

			if _, changed := cs.GetChange(field); !changed {
				fmt.Fprintf(out, "no change requested for %s\n", field)
				return nil
			}
			fmt.Fprintf(out, "valid: %s\n", transition.Transition{
				Field: field,
				From:  transition.StringState(from),
				To:    transition.StringState(to),
			})
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Current value of the field")
	cmd.Flags().StringVar(&to, "to", "", "Proposed value of the field")
	cmd.Flags().StringVar(&payload, "payload", "", "Extra argument passed to the selected callback")

	return cmd
}

func newRulesCmd(opts *rootOptions) *cobra.Command {
	var state string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the compiled transition table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.load(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			table := a.validator.Table()
			out := cmd.OutOrStdout()
			sources := table.Sources()

			if cmd.Flags().Changed("state") {
				known := make([]string, 0, len(sources))
				for _, s := range sources {
					known = append(known, s.Name())
				}
				input := changeset.New(nil).Apply(validator.InList("state", state, known))
				if !input.Valid() {
					printErrors(out, input.Errors())
					return errInvalidInput
				}
				sources = []transition.State{transition.StringState(state)}
			}

			fmt.Fprintf(out, "field: %s\n", a.validator.Field())
			for _, from := range sources {
				dest := table.AllowedDestinations(from)
				names := make([]string, 0, len(dest))
				for _, d := range dest {
					names = append(names, d.Name())
				}
				fmt.Fprintf(out, "%s -> %v\n", from.Name(), names)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&state, "state", "", "Only print the rule for this source state")

	return cmd
}

func printErrors(w io.Writer, errs validator.ValidationErrors) {
	for _, e := range errs {
		fmt.Fprintf(w, "%s: %s\n", e.Field, e.Message)
	}
}
