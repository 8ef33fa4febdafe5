package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yyocio-drip/hpack/internal/shared/compression/hpack"
	"github.com/yyocio-drip/hpack/internal/shared/protocol"
)

func newFrameCmd() *cobra.Command {
	var method, url string
	var contentLength int64

	cmd := &cobra.Command{
		Use:   "frame [file]",
		Short: "Build a HeaderBlockFrame: an HPACK block plus its msgpack-encoded request line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer recoverer.Recover("frame")

			fields, err := loadFields(args)
			if err != nil {
				return fmt.Errorf("parsing header lines: %w", err)
			}

			enc := hpack.NewEncoder(encoderTableSize())

			head := protocol.HTTPRequestHead{Method: method, URL: url, ContentLength: contentLength}
			frame, err := protocol.EncodeHeaderBlockFrame(enc, "stream-1", head, fields, contentLength)
			if err != nil {
				return fmt.Errorf("building header block frame: %w", err)
			}

			logger.Info("built header block frame",
				zap.String("stream_id", frame.StreamID),
				zap.Int("request_line_bytes", len(frame.RequestLine)),
				zap.Int("header_block_bytes", len(frame.HeaderBlock)),
			)

			fmt.Printf("request line (msgpack, %d bytes): % x\n", len(frame.RequestLine), frame.RequestLine)
			fmt.Printf("header block (hpack, %d bytes):    % x\n", len(frame.HeaderBlock), frame.HeaderBlock)
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", "GET", "request method carried in the frame's request line")
	cmd.Flags().StringVar(&url, "url", "/", "request URL carried in the frame's request line")
	cmd.Flags().Int64Var(&contentLength, "content-length", -1, "content length carried in the frame's request line (-1 = unknown)")

	return cmd
}
