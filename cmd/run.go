package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/batterycf/app"
	"github.com/kilianp07/batterycf/infra/logger"
)

var (
	runFormat       string
	runOutput       string
	runServeMetrics bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate the model and export the cash flow",
	RunE:  run,
}

func init() {
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "", "output format: json or csv (overrides export.format)")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "output file (overrides export.path)")
	runCmd.Flags().BoolVar(&runServeMetrics, "serve-metrics", false, "keep serving /metrics on metrics.prometheus_addr after the run")
	rootCmd.AddCommand(runCmd)
}

func run(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if runFormat != "" {
		cfg.Export.Format = runFormat
	}
	if runOutput != "" {
		cfg.Export.Path = runOutput
	}
	if err := cfg.Export.Validate(); err != nil {
		return err
	}

	var opts []app.Option
	if cfg.Export.Path == "" {
		opts = append(opts, app.WithOutput(cmd.OutOrStdout()))
	}
	svc, err := app.New(cfg, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()

	if runServeMetrics {
		errCh := make(chan error, 1)
		go func() { errCh <- svc.ServeMetrics(ctx) }()
		if _, err := svc.Run(ctx); err != nil {
			return err
		}
		return serveUntilDone(ctx, errCh)
	}
	_, err = svc.Run(ctx)
	return err
}

func serveUntilDone(ctx context.Context, errCh <-chan error) error {
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	case <-ctx.Done():
		return <-errCh
	}
}
