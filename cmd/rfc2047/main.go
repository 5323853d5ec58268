package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-rfc2047/cmd/rfc2047/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
