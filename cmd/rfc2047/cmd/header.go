package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zostay/go-rfc2047/header"
	"github.com/zostay/go-rfc2047/rfc2047"
)

var (
	headerCmd = &cobra.Command{
		Use:   "header",
		Short: "Encode and decode every field of a message header",
	}

	headerEncodeCmd = &cobra.Command{
		Use:   "encode",
		Short: "Encode the fields of the header read from standard input",
		Args:  cobra.NoArgs,
		RunE:  RunHeaderEncode,
	}

	headerDecodeCmd = &cobra.Command{
		Use:   "decode",
		Short: "Decode the fields of the header read from standard input",
		Args:  cobra.NoArgs,
		RunE:  RunHeaderDecode,
	}
)

func init() {
	rootCmd.AddCommand(headerCmd)
	headerCmd.AddCommand(headerEncodeCmd)
	headerCmd.AddCommand(headerDecodeCmd)
}

// readHeader reads standard input up to the first blank line and guesses the
// line break in use.
func readHeader(cmd *cobra.Command) ([]byte, []byte, error) {
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read header: %w", err)
	}

	lb := header.DetectLineBreak(b)
	if ix := bytes.Index(b, append(lb, lb...)); ix >= 0 {
		b = b[:ix+len(lb)]
	}

	return b, lb, nil
}

func writeFields(cmd *cobra.Command, fields []header.Field, lb []byte) error {
	w := cmd.OutOrStdout()
	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%s%s", f, lb); err != nil {
			return err
		}
	}
	return nil
}

func RunHeaderDecode(cmd *cobra.Command, _ []string) error {
	b, lb, err := readHeader(cmd)
	if err != nil {
		return err
	}

	fields, err := header.DecodeHeader(rfc2047.NewDecoder(MakeOptions(lb)...), b, lb)
	var badStart *header.BadStartError
	if errors.As(err, &badStart) {
		logger.WithField("skipped", string(badStart.BadStart)).Warn(badStart.Error())
	} else if err != nil {
		return err
	}

	return writeFields(cmd, fields, lb)
}

func RunHeaderEncode(cmd *cobra.Command, _ []string) error {
	b, lb, err := readHeader(cmd)
	if err != nil {
		return err
	}

	lines, err := header.ParseLines(b, lb)
	var badStart *header.BadStartError
	if errors.As(err, &badStart) {
		logger.WithField("skipped", string(badStart.BadStart)).Warn(badStart.Error())
	} else if err != nil {
		return err
	}

	enc := rfc2047.NewEncoder(MakeOptions(lb)...)
	fields := make([]header.Field, len(lines))
	for i, line := range lines {
		f, status := header.Encode(enc, header.Parse(line, lb))
		if status != rfc2047.StatusOK {
			logger.WithField("field", f.Name).
				WithField("status", status.String()).
				Warn("field was encoded from raw bytes")
		}
		fields[i] = f
	}

	return writeFields(cmd, fields, lb)
}
