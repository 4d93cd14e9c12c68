package main

import (
	"bytes"
	"os"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/HybridEidolon/rust-ages-prs"
)

func newCompressCmd() *cobra.Command {
	var dialect string
	var effort int

	cmd := &cobra.Command{
		Use:   "compress <input> <output>",
		Short: "Compress a file into a PRS stream",
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

			opts := prs.DefaultEncoderOptions()
			opts.Effort = prs.Effort(effort)
			opts.BufferCapacityHint = len(src)

			var buf bytes.Buffer
			if dialect == dialectLegacy {
				if err := encodeInto[prs.Legacy](&buf, src, opts); err != nil {
					return err
				}
			} else {
				if err := encodeInto[prs.Modern](&buf, src, opts); err != nil {
					return err
				}
			}

			if err := os.WriteFile(args[1], buf.Bytes(), 0o644); err != nil {
				return pkgerrors.Wrap(err, "prs: writing output file")
			}

			log.Info().
				Str("dialect", dialect).
				Int("in_bytes", len(src)).
				Int("out_bytes", buf.Len()).
				Float64("ratio", float64(buf.Len())/float64(max(len(src), 1))).
				Dur("elapsed", time.Since(start)).
				Msg("compressed")

			return nil
		},
	}

	cmd.Flags().StringVar(&dialect, "dialect", dialectModern, "PRS dialect: legacy or modern")
	cmd.Flags().IntVar(&effort, "effort", int(prs.EffortDefault), "match-finder effort, 1-9")

	return cmd
}

func encodeInto[D prs.Dialect](buf *bytes.Buffer, src []byte, opts *prs.EncoderOptions) error {
	enc := prs.NewEncoder[D](buf, opts)
	if _, err := enc.Write(src); err != nil {
		return err
	}
	return enc.Close()
}
