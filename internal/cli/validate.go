package cli

import (
	"context"
	"io"

	"github.com/aretw0/configtree"
	"github.com/aretw0/configtree/internal/config"
	"github.com/aretw0/configtree/internal/logging"
	"github.com/aretw0/configtree/internal/metrics"
	"github.com/aretw0/configtree/internal/presentation/tui"
)

const (
	successMessage = "All validations passed!"
	failurePrefix  = "Error validating configurations"
)

// RunValidate validates the tree described by cfg and reports the outcome:
// a success line on stdout, or the error on stderr. The returned error is the
// validation failure, if any.
func RunValidate(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger := logging.NewWithWriter(stderr, level, cfg.Log.Format)

	recorder := metrics.NewRecorder()
	eng, err := configtree.New(
		configtree.WithLogger(logger),
		configtree.WithHooks(recorder.Hooks()),
	)
	if err != nil {
		return err
	}

	err = eng.Validate(ctx, cfg.Layout, cfg.Root)

	if cfg.MetricsFile != "" {
		if werr := recorder.WriteTextfile(cfg.MetricsFile); werr != nil {
			logger.Warn("metrics not written", "error", werr)
		}
	}

	if err != nil {
		tui.NewStatusPrinter(stderr).Failure(failurePrefix, err)
		return err
	}
	tui.NewStatusPrinter(stdout).Success(successMessage)
	return nil
}
