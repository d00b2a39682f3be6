package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
)

// NewScaleCommand returns the scalar multiplication command: one operand
// file and one integer factor.
func NewScaleCommand(root *RootOptions) *cobra.Command {
	opts := &opOptions{RootOptions: root}

	cmd := &cobra.Command{
		Use:           "scale <matrix> <factor>",
		Short:         "Multiply a matrix by an integer scalar",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadOperand("a", args[0])
			if err != nil {
				return err
			}
			factor, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return NewExitError(ExitCommandError, fmt.Sprintf("factor %q is not an integer", args[1]))
			}
			slog.Debug("scaling", "factor", factor)

			return emitResult(cmd, opts, m.Scale(factor))
		},
	}

	addPersistFlags(cmd, opts)

	// A negative factor reads like a shorthand flag, so flag parsing
	// stops at the first positional; flags must precede the operands.
	cmd.Flags().SetInterspersed(false)

	return cmd
}
