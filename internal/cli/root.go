// Package cli implements the assetid command line tool.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/riskibarqy/assetid/internal/platform/id"
)

// NewRoot builds the assetid command tree. gen supplies identifiers for the
// new subcommand.
func NewRoot(gen id.Generator) *cobra.Command {
	root := &cobra.Command{
		Use:           "assetid",
		Short:         "Mint and decode 64-bit asset identifiers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newNewCommand(gen))
	root.AddCommand(newDecodeCommand())
	return root
}
