package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/safevalidation/internal/form"
	"github.com/ib-77/safevalidation/pkg/rop"
	"github.com/ib-77/safevalidation/pkg/rop/solo"
)

const (
	modeAccumulate = "accumulate"
	modeChain      = "chain"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a single form",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := form.Form{
				Username: a.v.GetString("form.username"),
				Email:    a.v.GetString("form.email"),
				Age:      a.v.GetInt("form.age"),
			}
			mode := a.v.GetString("check.mode")

			var res rop.Result[form.Account]
			switch mode {
			case modeAccumulate:
				res = form.NewRegistrar().Register(f)
			case modeChain:
				res = solo.Bind(checkInOrder(f), form.NewRegistrar().Register)
			default:
				return fmt.Errorf("unknown mode %q, expected %s or %s", mode, modeAccumulate, modeChain)
			}

			a.logger.Info("form checked",
				zap.String("mode", mode),
				zap.String("username", f.Username),
				zap.Bool("valid", res.IsSuccess()))
			return report(cmd.OutOrStdout(), res)
		},
	}

	flags := cmd.Flags()
	flags.String("username", "", "username to validate")
	flags.String("email", "", "email to validate")
	flags.Int("age", 0, "age to validate")
	flags.String("mode", modeAccumulate, "accumulate reports every problem, chain stops at the first")
	_ = a.v.BindPFlag("form.username", flags.Lookup("username"))
	_ = a.v.BindPFlag("form.email", flags.Lookup("email"))
	_ = a.v.BindPFlag("form.age", flags.Lookup("age"))
	_ = a.v.BindPFlag("check.mode", flags.Lookup("mode"))
	return cmd
}

func checkInOrder(f form.Form) rop.Result[form.Form] {
	return solo.BindWith(form.Chain(f.Username, f.Email), func(form.Credentials) rop.Result[int] {
		return form.ValidateAge(f.Age)
	}, func(c form.Credentials, age int) form.Form {
		return form.Form{Username: c.Username, Email: c.Email, Age: age}
	})
}

func report(w io.Writer, res rop.Result[form.Account]) error {
	acc, ok := res.Get()
	if ok {
		fmt.Fprintf(w, "registered %s as %s\n", acc.Username, acc.ID)
		return nil
	}
	for _, msg := range res.Errors() {
		fmt.Fprintf(w, "- %s\n", msg)
	}
	return errRejected
}
