package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-rfc2047/address"
	"github.com/zostay/go-rfc2047/rfc2047"
)

var (
	addressCmd = &cobra.Command{
		Use:   "address",
		Short: "Encode and decode the display names of an address list",
	}

	addressEncodeCmd = &cobra.Command{
		Use:   "encode [list...]",
		Short: "Encode the display names in an address list",
		RunE:  RunAddressEncode,
	}

	addressDecodeCmd = &cobra.Command{
		Use:   "decode [list...]",
		Short: "Decode the display names in an address list",
		RunE:  RunAddressDecode,
	}

	tag string
)

func init() {
	addressCmd.AddCommand(addressEncodeCmd)
	addressCmd.AddCommand(addressDecodeCmd)

	addressEncodeCmd.Flags().StringVar(&tag, "tag", "", "the name of the header the list belongs to, such as To")
}

func parseList(cmd *cobra.Command, args []string) (address.List, error) {
	text, err := input(cmd, args)
	if err != nil {
		return nil, err
	}

	l, err := address.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("unable to parse address list: %w", err)
	}

	return l, nil
}

func RunAddressEncode(cmd *cobra.Command, args []string) error {
	l, err := parseList(cmd, args)
	if err != nil {
		return err
	}

	l = address.EncodeList(rfc2047.NewEncoder(MakeOptions(nil)...), l, tag)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), l)
	return err
}

func RunAddressDecode(cmd *cobra.Command, args []string) error {
	l, err := parseList(cmd, args)
	if err != nil {
		return err
	}

	l = address.DecodeList(rfc2047.NewDecoder(MakeOptions(nil)...), l)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), l)
	return err
}
