package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quadra/internal/config"
	"quadra/internal/trace"
)

// setupTracing builds the tracer described by [trace] and attaches it to the
// command context. It returns a cleanup function.
func setupTracing(cmd *cobra.Command, cfg config.TraceConfig) (func(), error) {
	level, err := trace.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid trace level: %w", err)
	}

	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}

	format := trace.FormatFromPath(cfg.Output)
	if cfg.Format != "" {
		format, err = trace.ParseFormat(cfg.Format)
		if err != nil {
			return nil, fmt.Errorf("invalid trace format: %w", err)
		}
	}

	tc := trace.Config{
		Level:      level,
		Format:     format,
		OutputPath: cfg.Output,
	}
	if cfg.Output == "" || cfg.Output == "-" {
		tc.Output = cmd.ErrOrStderr()
	}
	tracer, err := trace.New(tc)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))

	cleanup := func() {
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}
	return cleanup, nil
}
