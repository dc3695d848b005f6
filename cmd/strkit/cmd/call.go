package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/strkit/ops"
	"github.com/randalmurphal/strkit/strval"
)

var callCmd = &cobra.Command{
	Use:   "call <op> [args...]",
	Short: "Run one operation",
	Long: `Runs a single operation on the given arguments and prints the result.

Examples:
  strkit call upper hello          # HELLO
  strkit call strip "**x**" "*"    # x
  strkit call strip -- -x- -       # x (use -- before arguments starting with -)
  strkit call find abcdef cd       # 2
  strkit call startswith abc ab    # true`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func init() {
	rootCmd.AddCommand(callCmd)
}

func runCall(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	out, err := callOp(ctx, args[0], args[1:])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// callOp runs name on string arguments and formats the result.
func callOp(ctx *ops.Context, name string, args []string) (string, error) {
	vals := make([]*strval.Value, 0, len(args))
	defer func() {
		for _, v := range vals {
			v.Release()
		}
	}()

	for _, a := range args {
		v, err := ctx.NewString(a)
		if err != nil {
			return "", err
		}
		vals = append(vals, v)
	}

	res, err := ctx.Call(name, vals...)
	if err != nil {
		return "", err
	}
	defer res.Release()
	return res.String(), nil
}
