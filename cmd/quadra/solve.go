package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"quadra/internal/config"
	"quadra/internal/diag"
	"quadra/internal/diagfmt"
	"quadra/internal/driver"
	"quadra/internal/observ"
	"quadra/internal/render"
	"quadra/internal/ui"
)

func runSolve(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Discover(configDir)
	if err != nil {
		return err
	}

	cleanup, err := setupTracing(cmd, cfg.Trace)
	if err != nil {
		return err
	}
	defer cleanup()
	ctx := cmd.Context()

	bag := diag.NewBag(16)
	reporter := diag.BagReporter{Bag: bag}
	timer := observ.NewTimer()

	src, err := chooseSource(ctx, cmd, cfg, reporter, timer)
	if err != nil {
		flushDiagnostics(cmd, cfg, bag)
		cmd.SilenceErrors = bag.HasErrors()
		return err
	}

	session, err := driver.NewSession(cfg, src, cmd.OutOrStdout(), reporter)
	if err != nil {
		return err
	}
	session.Timer = timer

	_, runErr := session.Run(ctx)
	flushDiagnostics(cmd, cfg, bag)
	if cfg.Timings.Enabled {
		if err := timer.WriteSummary(cmd.ErrOrStderr()); err != nil {
			return err
		}
	}

	if runErr != nil && bag.HasErrors() {
		// already reported as a diagnostic
		cmd.SilenceErrors = true
	}
	return runErr
}

// runForm is replaced in tests to simulate a form that cannot start.
var runForm = ui.RunForm

// chooseSource returns the interactive form's answers when [ui].mode asks
// for it, and the plain prompt protocol otherwise.
func chooseSource(ctx context.Context, cmd *cobra.Command, cfg config.Config, rep diag.Reporter, timer *observ.Timer) (driver.Source, error) {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	if !shouldUseTUI(cfg.UIMode(), in, out) {
		return driver.NewPromptSource(in, out), nil
	}

	cat, err := render.Lookup(cfg.Output.Lang)
	if err != nil {
		return nil, err
	}
	fields := make([]ui.Field, 0, len(driver.Fields))
	for _, name := range driver.Fields {
		fields = append(fields, ui.Field{Name: name, Label: cat.PromptFor(name)})
	}

	idx := timer.Begin("form")
	values, err := runForm(ctx, fields, in, out)
	switch {
	case errors.Is(err, ui.ErrCancelled):
		timer.End(idx, "cancelled")
		diag.ReportError(rep, diag.UIAborted, "", "no coefficients were entered").Emit()
		return nil, err
	case err != nil:
		timer.End(idx, "fallback")
		diag.ReportInfo(rep, diag.UIFallback, "", fmt.Sprintf("interactive form failed: %v", err)).Emit()
		return driver.NewPromptSource(in, out), nil
	}
	timer.End(idx, "")
	return driver.TextSource(values), nil
}

func flushDiagnostics(cmd *cobra.Command, cfg config.Config, bag *diag.Bag) {
	if bag.Len() == 0 {
		return
	}
	format, err := diagfmt.ParseFormat(cfg.Output.Diagnostics)
	if err != nil {
		format = diagfmt.FormatPretty
	}
	bag.Sort()
	opts := diagfmt.PrettyOpts{
		Color:     shouldColor(cfg.ColorMode(), cmd.ErrOrStderr()),
		ShowNotes: true,
	}
	if err := diagfmt.Write(cmd.ErrOrStderr(), bag, format, opts); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "diagnostics: %v\n", err)
	}
}
