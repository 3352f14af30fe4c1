package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/assetid/internal/platform/id"
)

const maxNewCount = 10000

func newNewCommand(gen id.Generator) *cobra.Command {
	var (
		count   int
		upper   bool
		display bool
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Print freshly minted identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 || count > maxNewCount {
				return fmt.Errorf("count must be between 1 and %d", maxNewCount)
			}

			out := cmd.OutOrStdout()
			for range count {
				v := gen.NewID()
				switch {
				case display:
					fmt.Fprintln(out, v)
				case upper:
					fmt.Fprintln(out, v.UpperHex())
				default:
					fmt.Fprintln(out, v.Encode())
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of identifiers to mint")
	cmd.Flags().BoolVar(&upper, "upper", false, "print uppercase hex")
	cmd.Flags().BoolVar(&display, "display", false, "print the *-prefixed display form")
	cmd.MarkFlagsMutuallyExclusive("upper", "display")

	return cmd
}
