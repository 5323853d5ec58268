package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-rfc2047/rfc2047"
)

var (
	encodeCmd = &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encode text into encoded words",
		Long:  "Encode the arguments, or standard input if there are none, into RFC 2047 encoded words.",
		RunE:  RunEncode,
	}

	column   int
	specials bool
)

func init() {
	encodeCmd.Flags().IntVar(&column, "column", 0, "the column the text starts in")
	encodeCmd.Flags().BoolVar(&specials, "specials", false, "also encode RFC 822 specials, as for a display name")
}

func RunEncode(cmd *cobra.Command, args []string) error {
	text, err := input(cmd, args)
	if err != nil {
		return err
	}

	enc := rfc2047.NewEncoder(MakeOptions(nil)...)
	out, status := enc.EncodeString(text, column, specials)
	if status != rfc2047.StatusOK {
		logger.WithField("status", status.String()).Warn("text was encoded from raw bytes")
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
