package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/myaccounts/portalkit/pkg/safeinput"
	"github.com/myaccounts/portalkit/pkg/validator"
)

// Field kinds accepted by RunValidate.
const (
	KindEmail    = "email"
	KindPhone    = "phone"
	KindOTP      = "otp"
	KindPassword = "password"
)

type validateOutput struct {
	Kind string `json:"kind"`
	validator.Result
	Strength *validator.PasswordStrength `json:"strength,omitempty"`
}

// RunValidate checks a single value of the given kind. The value "-" reads
// it from io.Reader so secrets stay out of shell history.
func RunValidate(ctx context.Context, kit *safeinput.Kit, logger *slog.Logger, kind, value string, format Format, io IOTuple) error {
	kit = kit.WithContext(ctx)
	value, err := readValue(value, io.Reader)
	if err != nil {
		return err
	}

	out := validateOutput{Kind: kind}
	switch kind {
	case KindEmail:
		out.Result = kit.ValidateEmail(value)
	case KindPhone:
		out.Result = kit.ValidatePhone(value)
	case KindOTP:
		out.Result = kit.ValidateOTP(value)
	case KindPassword:
		out.Result = kit.ValidatePassword(value)
		strength := kit.EvaluatePassword(value)
		out.Strength = &strength
	default:
		return fmt.Errorf("invalid kind: %s (valid options: email, phone, otp, password)", kind)
	}

	lines := []string{resultLine(out.Result)}
	if out.Strength != nil {
		lines = append(lines, fmt.Sprintf("strength: %s (%d/%d)", out.Strength.Label, out.Strength.Score, len(out.Strength.Requirements)))
		for _, req := range out.Strength.Requirements {
			mark := " "
			if req.Met {
				mark = "x"
			}
			lines = append(lines, fmt.Sprintf("  [%s] %s", mark, req.Label))
		}
	}
	if err := output(io.Writer, format, out, lines...); err != nil {
		return err
	}

	logger.DebugContext(ctx, "value validated", slog.String("kind", kind), slog.Bool("valid", out.Valid))
	if !out.Valid {
		return ErrRejected
	}
	return nil
}

type fileOutput struct {
	validator.FileInfo
	validator.Result
}

// RunValidateFile validates an upload. With path set the content type is
// sniffed from the file and the size taken from disk; otherwise the declared
// mimeType and size are checked as given.
func RunValidateFile(ctx context.Context, kit *safeinput.Kit, logger *slog.Logger, path, mimeType string, size int64, format Format, io IOTuple) error {
	kit = kit.WithContext(ctx)
	var out fileOutput

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		defer func() { _ = f.Close() }()

		stat, err := f.Stat()
		if err != nil {
			return fmt.Errorf("failed to stat file: %w", err)
		}
		out.FileInfo, out.Result, err = kit.ValidateUpload(stat.Name(), f, stat.Size())
		if err != nil {
			return err
		}
	} else {
		if mimeType == "" {
			return fmt.Errorf("either --path or --type is required")
		}
		out.FileInfo = validator.FileInfo{MIMEType: mimeType, Size: size}
		out.Result = kit.ValidateFile(out.FileInfo)
	}

	lines := []string{
		resultLine(out.Result),
		fmt.Sprintf("type: %s", out.MIMEType),
		fmt.Sprintf("size: %d", out.Size),
	}
	if err := output(io.Writer, format, out, lines...); err != nil {
		return err
	}

	logger.DebugContext(ctx, "file validated", slog.String("type", out.MIMEType), slog.Bool("valid", out.Valid))
	if !out.Valid {
		return ErrRejected
	}
	return nil
}

func resultLine(r validator.Result) string {
	if r.Valid {
		return "valid"
	}
	return "invalid: " + r.Error
}
