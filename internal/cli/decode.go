package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/assetid/internal/platform/id"
)

var errDecodeFailed = errors.New("one or more tokens failed to decode")

func newDecodeCommand() *cobra.Command {
	var (
		asJSON bool
		binary bool
	)

	cmd := &cobra.Command{
		Use:   "decode <token>...",
		Short: "Decode identifiers and print their canonical, display and decimal forms",
		Long: "Decode treats each argument as a hex string unless --json is set, in which case\n" +
			"the argument is read as a JSON value and integers follow the legacy rule that\n" +
			"their decimal digits are reinterpreted as hex. A leading * is accepted on strings.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			failed := false
			for _, arg := range args {
				v, err := decodeArg(arg, asJSON, !binary)
				if err != nil {
					failed = true
					fmt.Fprintf(errOut, "%s\terror: %v\n", arg, err)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\t%v\t%d\n", arg, v.Encode(), v, v.Raw())
			}
			if failed {
				return errDecodeFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "read each argument as a JSON value")
	cmd.Flags().BoolVar(&binary, "binary", false, "apply binary decoding rules (string tokens only)")

	return cmd
}

func decodeArg(arg string, asJSON, humanReadable bool) (id.U64ID, error) {
	tok := id.StringToken(arg)
	if asJSON {
		var err error
		tok, err = id.JSONToken([]byte(arg))
		if err != nil {
			return id.Null, err
		}
	}

	if tok.Shape == id.ShapeString && strings.HasPrefix(tok.Str, string(id.DisplayMarker)) {
		if !humanReadable {
			return id.Null, &id.InvalidEncodingError{Shape: id.ShapeString, Token: tok.Str}
		}
		return id.ParseDisplay(tok.Str)
	}

	return id.Decode(tok, humanReadable)
}
