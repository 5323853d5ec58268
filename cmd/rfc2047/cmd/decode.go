package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-rfc2047/rfc2047"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [text...]",
	Short: "Decode encoded words",
	Long:  "Decode any RFC 2047 encoded words found in the arguments, or standard input if there are none.",
	RunE:  RunDecode,
}

func RunDecode(cmd *cobra.Command, args []string) error {
	text, err := input(cmd, args)
	if err != nil {
		return err
	}

	dec := rfc2047.NewDecoder(MakeOptions(nil)...)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), dec.Decode(text))
	return err
}
