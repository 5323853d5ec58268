package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zostay/go-rfc2047/charset"
	"github.com/zostay/go-rfc2047/rfc2047"
)

var (
	rootCmd = &cobra.Command{
		Use:               "rfc2047",
		Short:             "Encode and decode RFC 2047 header words",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	activeCharset  string
	sendCharsets   string
	assumedCharset string
	ignoreLWS      bool
	foldName       string
	converterName  string
	verbose        bool

	logger = logrus.New()

	folds = map[string]rfc2047.Fold{
		"tab":        rfc2047.TabFold,
		"space":      rfc2047.SpaceFold,
		"crlf-tab":   rfc2047.CRLFTabFold,
		"crlf-space": rfc2047.CRLFSpaceFold,
		"none":       rfc2047.NoFold,
	}

	converters = map[string]charset.Converter{
		"text": charset.TextConverter{},
	}
)

func envDefault(name, def string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return def
}

func init() {
	ignoreDefault, _ := strconv.ParseBool(envDefault("RFC2047_IGNORE_LWS", "false"))

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&activeCharset, "charset", envDefault("RFC2047_CHARSET", rfc2047.DefaultCharset), "the charset of text read and written")
	flags.StringVar(&sendCharsets, "send-charset", envDefault("RFC2047_SEND_CHARSET", rfc2047.DefaultSendCharsets), "colon-separated charsets to choose from when encoding")
	flags.StringVar(&assumedCharset, "assumed-charset", envDefault("RFC2047_ASSUMED_CHARSET", ""), "colon-separated charsets to try for unencoded 8-bit text when decoding")
	flags.BoolVar(&ignoreLWS, "ignore-lws", ignoreDefault, "collapse white space around encoded words when decoding")
	flags.StringVar(&foldName, "fold", "", "the fold between encoded words: tab, space, crlf-tab, crlf-space, or none (default matches the input line break)")
	flags.StringVar(&converterName, "converter", "text", "the charset converter to use")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log charset conversion problems")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(addressCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	if _, ok := folds[foldName]; foldName != "" && !ok {
		return fmt.Errorf("unknown fold %q", foldName)
	}

	if _, ok := converters[converterName]; !ok {
		return fmt.Errorf("unknown converter %q", converterName)
	}

	return nil
}

// foldFor returns the fold named by the --fold flag. Without one, the fold
// ends lines with the line break lb, which is "\n" when lb is empty.
func foldFor(lb []byte) rfc2047.Fold {
	if foldName != "" {
		return folds[foldName]
	}

	if string(lb) == "\r\n" {
		return rfc2047.CRLFTabFold
	}
	return rfc2047.DefaultFold
}

// MakeOptions turns the global flags into rfc2047 options for input that
// uses the line break lb.
func MakeOptions(lb []byte) []rfc2047.Option {
	return []rfc2047.Option{
		rfc2047.WithCharset(activeCharset),
		rfc2047.WithSendCharsets(sendCharsets),
		rfc2047.WithAssumedCharsets(assumedCharset),
		rfc2047.WithIgnoreLinearWhiteSpace(ignoreLWS),
		rfc2047.WithFold(foldFor(lb)),
		rfc2047.WithConverter(converters[converterName]),
		rfc2047.WithLogger(logger),
	}
}

// input returns the arguments joined by spaces or, when there are none,
// everything on standard input with the final line break removed.
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("unable to read input: %w", err)
	}

	return strings.TrimRight(string(b), "\r\n"), nil
}

func Execute() error {
	return rootCmd.Execute()
}
