package main

import (
	"bytes"
	"io"
	"os"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/HybridEidolon/rust-ages-prs"
)

func newDecompressCmd() *cobra.Command {
	var dialect string

	cmd := &cobra.Command{
		Use:   "decompress <input> <output>",
		Short: "Decompress a PRS stream into a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateDialect(dialect); err != nil {
				return err
			}

			src, err := os.ReadFile(args[0])
			if err != nil {
				return pkgerrors.Wrap(err, "prs: reading input file")
			}

			start := time.Now()

			var out []byte
			if dialect == dialectLegacy {
				out, err = decodeAll[prs.Legacy](src)
			} else {
				out, err = decodeAll[prs.Modern](src)
			}
			if err != nil {
				return err
			}

			if err := os.WriteFile(args[1], out, 0o644); err != nil {
				return pkgerrors.Wrap(err, "prs: writing output file")
			}

			log.Info().
				Str("dialect", dialect).
				Int("in_bytes", len(src)).
				Int("out_bytes", len(out)).
				Dur("elapsed", time.Since(start)).
				Msg("decompressed")

			return nil
		},
	}

	cmd.Flags().StringVar(&dialect, "dialect", dialectModern, "PRS dialect: legacy or modern")

	return cmd
}

func decodeAll[D prs.Dialect](src []byte) ([]byte, error) {
	dec := prs.NewDecoder[D](bytes.NewReader(src), nil)
	return io.ReadAll(dec)
}
