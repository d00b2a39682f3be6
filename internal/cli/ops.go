package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsemat/sparse"
)

// opOptions carries the per-operation flags on top of the globals.
type opOptions struct {
	*RootOptions

	// Save persists the result under a generated name.
	Save bool
	// OutDir overrides the configured output directory.
	OutDir string
}

// binaryOp is the shape of the core operations the binary commands run.
type binaryOp func(a, b *sparse.Matrix) (*sparse.Matrix, error)

// newBinaryOpCommand builds one of add/sub/mul: two operand files in, one
// result encoding out.
func newBinaryOpCommand(root *RootOptions, use, short string, op binaryOp) *cobra.Command {
	opts := &opOptions{RootOptions: root}

	cmd := &cobra.Command{
		Use:           use + " <matrix-a> <matrix-b>",
		Short:         short,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadOperand("a", args[0])
			if err != nil {
				return err
			}
			b, err := loadOperand("b", args[1])
			if err != nil {
				return err
			}

			res, err := op(a, b)
			if err != nil {
				return WrapExitError(ExitFailure, use+" failed", err)
			}

			return emitResult(cmd, opts, res)
		},
	}

	addPersistFlags(cmd, opts)

	return cmd
}

// NewAddCommand returns the elementwise addition command.
func NewAddCommand(root *RootOptions) *cobra.Command {
	return newBinaryOpCommand(root, "add", "Add two matrices elementwise", (*sparse.Matrix).Add)
}

// NewSubCommand returns the elementwise subtraction command.
func NewSubCommand(root *RootOptions) *cobra.Command {
	return newBinaryOpCommand(root, "sub", "Subtract the second matrix from the first", (*sparse.Matrix).Sub)
}

// NewMulCommand returns the matrix multiplication command.
func NewMulCommand(root *RootOptions) *cobra.Command {
	return newBinaryOpCommand(root, "mul", "Multiply two matrices", (*sparse.Matrix).Mul)
}

// addPersistFlags registers the --save / --out-dir pair shared by every
// operation command.
func addPersistFlags(cmd *cobra.Command, opts *opOptions) {
	cmd.Flags().BoolVar(&opts.Save, "save", false, "persist the result to the output directory")
	cmd.Flags().StringVar(&opts.OutDir, "out-dir", "", "output directory for --save (overrides config)")
}

// loadOperand reads one matrix file and logs its dimensions.
func loadOperand(label, path string) (*sparse.Matrix, error) {
	m, err := sparse.Load(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("loading matrix %s", label), err)
	}
	slog.Info("matrix loaded",
		"operand", label,
		"path", path,
		"rows", m.Rows(),
		"cols", m.Cols(),
		"nnz", m.NNZ(),
	)
	return m, nil
}

// emitResult prints the result encoding to stdout and, under --save,
// persists it and reports the chosen path.
func emitResult(cmd *cobra.Command, opts *opOptions, res *sparse.Matrix) error {
	fmt.Fprint(cmd.OutOrStdout(), res)

	if !opts.Save {
		return nil
	}
	path, err := persistResult(opts, res)
	if err != nil {
		return WrapExitError(ExitFailure, "saving result", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "saved:", path)
	return nil
}
