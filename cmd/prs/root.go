package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	dialectLegacy = "legacy"
	dialectModern = "modern"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "prs",
		Short:         "Compress and decompress SEGA PRS streams",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCompressCmd(), newDecompressCmd())
	return root
}

func validateDialect(d string) error {
	switch d {
	case dialectLegacy, dialectModern:
		return nil
	default:
		return fmt.Errorf("prs: unknown dialect %q (want %q or %q)", d, dialectLegacy, dialectModern)
	}
}
