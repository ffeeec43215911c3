package commands

import (
	"context"
	"log/slog"

	"github.com/myaccounts/portalkit/pkg/safeinput"
)

type sanitizeOutput struct {
	Input     string `json:"input"`
	Sanitized string `json:"sanitized"`
	Rejected  bool   `json:"rejected"`
}

// RunSanitizeURL prints the sanitized form of value, or reports it as
// rejected when it must not be used as a link target.
func RunSanitizeURL(ctx context.Context, kit *safeinput.Kit, logger *slog.Logger, value string, format Format, io IOTuple) error {
	kit = kit.WithContext(ctx)
	value, err := readValue(value, io.Reader)
	if err != nil {
		return err
	}

	out := sanitizeOutput{Input: value, Sanitized: kit.SanitizeURL(value)}
	out.Rejected = out.Sanitized == "" && value != ""

	line := out.Sanitized
	if out.Rejected {
		line = "rejected"
	}
	if err := output(io.Writer, format, out, line); err != nil {
		return err
	}

	if out.Rejected {
		return ErrRejected
	}
	logger.DebugContext(ctx, "url sanitized", slog.Bool("changed", out.Sanitized != value))
	return nil
}
