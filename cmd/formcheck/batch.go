package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/safevalidation/internal/form"
	"github.com/ib-77/safevalidation/pkg/rop"
	"github.com/ib-77/safevalidation/pkg/rop/core"
	"github.com/ib-77/safevalidation/pkg/rop/lite"
	"github.com/ib-77/safevalidation/pkg/rop/solo"
)

type batchFile struct {
	Forms []form.Form `yaml:"forms"`
}

type entry struct {
	index int
	form  form.Form
}

type outcome struct {
	index int
	line  string
	valid bool
}

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Validate every form listed in a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.v.GetString("batch.file")
			forms, err := readForms(path)
			if err != nil {
				return err
			}

			ctx := core.WithWorkerOptions(cmd.Context(), a.v.GetInt("batch.workers"))
			outcomes := validateBatch(ctx, forms)

			rejected := 0
			for _, o := range outcomes {
				if !o.valid {
					rejected++
				}
				fmt.Fprintln(cmd.OutOrStdout(), o.line)
			}
			if err := ctx.Err(); err != nil {
				a.logger.Warn("batch interrupted", zap.String("file", path), zap.Int("checked", len(outcomes)))
				return fmt.Errorf("batch interrupted after %d of %d forms: %w", len(outcomes), len(forms), err)
			}
			if len(outcomes) != len(forms) {
				return fmt.Errorf("batch incomplete: %d of %d forms checked", len(outcomes), len(forms))
			}

			a.logger.Info("batch finished",
				zap.String("file", path),
				zap.Int("forms", len(forms)),
				zap.Int("rejected", rejected))

			if rejected > 0 {
				return fmt.Errorf("%d of %d forms: %w", rejected, len(forms), errRejected)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("file", "", "YAML file with a top-level forms list")
	flags.Int("workers", 0, "number of concurrent workers, 0 uses GOMAXPROCS")
	_ = a.v.BindPFlag("batch.file", flags.Lookup("file"))
	_ = a.v.BindPFlag("batch.workers", flags.Lookup("workers"))
	return cmd
}

func readForms(path string) ([]form.Form, error) {
	if path == "" {
		return nil, fmt.Errorf("batch: --file is required")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read forms: %w", err)
	}
	var bf batchFile
	if err := yaml.Unmarshal(b, &bf); err != nil {
		return nil, fmt.Errorf("decode forms %s: %w", path, err)
	}
	return bf.Forms, nil
}

// validateBatch registers forms concurrently and returns one outcome per form in input order.
func validateBatch(ctx context.Context, forms []form.Form) []outcome {
	entries := make([]entry, len(forms))
	for i, f := range forms {
		entries[i] = entry{index: i, form: f}
	}

	registrar := form.NewRegistrar()
	register := lite.Map(func(_ context.Context, e entry) outcome {
		return describe(e, registrar.Register(e.form))
	})

	outcomes := core.FromChanMany(ctx,
		lite.Finally(ctx,
			lite.Turnout(ctx, core.ToChanManyResults(ctx, entries), register, 0),
			lite.FinallyHandlers[outcome, outcome]{
				OnSuccess: func(_ context.Context, o outcome) outcome { return o },
				OnFailure: func(_ context.Context, errs []string) outcome {
					return outcome{index: -1, line: "internal: " + strings.Join(errs, "; ")}
				},
			}))

	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].index < outcomes[j].index })
	return outcomes
}

func describe(e entry, res rop.Result[form.Account]) outcome {
	return solo.Finally(res,
		func(acc form.Account) outcome {
			return outcome{index: e.index, valid: true, line: fmt.Sprintf("#%d %s: ok", e.index+1, acc.Username)}
		},
		func(errs []string) outcome {
			return outcome{index: e.index, line: fmt.Sprintf("#%d %s: %s", e.index+1, e.form.Username, strings.Join(errs, "; "))}
		})
}
