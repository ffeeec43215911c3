package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/myaccounts/portalkit/pkg/safeinput"
	"github.com/myaccounts/portalkit/pkg/securerand"
)

// Generated value kinds.
const (
	GeneratePassword      = "password"
	GenerateInvite        = "invite"
	GenerateRecoveryCodes = "recovery-codes"
	GenerateID            = "id"
	GenerateToken         = "token"
	GenerateOTP           = "otp"
)

const defaultTokenLength = 32

// GenerateOptions tunes RunGenerate. Zero values select the defaults.
type GenerateOptions struct {
	// Length of a token or password. Zero selects 32 for a token and the
	// policy's TemporaryPasswordLength for a password.
	Length int
	// Count of recovery codes. Defaults to 10.
	Count int
	// Hash adds the bcrypt hash of a generated password.
	Hash bool
}

type generateOutput struct {
	Kind   string   `json:"kind"`
	Values []string `json:"values"`
	Hash   string   `json:"hash,omitempty"`
}

// RunGenerate prints freshly generated secrets of the given kind.
func RunGenerate(ctx context.Context, kit *safeinput.Kit, logger *slog.Logger, kind string, opts GenerateOptions, format Format, io IOTuple) error {
	kit = kit.WithContext(ctx)
	if opts.Count == 0 {
		opts.Count = 10
	}

	out := generateOutput{Kind: kind}
	switch kind {
	case GeneratePassword:
		length := opts.Length
		if length == 0 {
			length = kit.Policy().TemporaryPasswordLength
		}
		tmp, err := kit.IssueTemporaryPasswordOfLength(length)
		if err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}
		out.Values = []string{tmp.Plain}
		if opts.Hash {
			out.Hash = string(tmp.Hash)
		}
	case GenerateInvite:
		code, err := kit.IssueInviteCode()
		if err != nil {
			return fmt.Errorf("failed to generate invite code: %w", err)
		}
		out.Values = []string{code}
	case GenerateRecoveryCodes:
		codes, err := kit.IssueRecoveryCodes(opts.Count)
		if err != nil {
			return fmt.Errorf("failed to generate recovery codes: %w", err)
		}
		out.Values = codes
	case GenerateID:
		id, err := kit.NewID()
		if err != nil {
			return fmt.Errorf("failed to generate id: %w", err)
		}
		out.Values = []string{id.String()}
	case GenerateToken:
		length := opts.Length
		if length == 0 {
			length = defaultTokenLength
		}
		tok, err := kit.GenerateToken(length, securerand.AlphabetUnambiguous)
		if err != nil {
			return fmt.Errorf("failed to generate token: %w", err)
		}
		out.Values = []string{tok}
	case GenerateOTP:
		code, err := kit.GenerateOTP()
		if err != nil {
			return fmt.Errorf("failed to generate otp: %w", err)
		}
		out.Values = []string{code}
	default:
		return fmt.Errorf(
			"invalid kind: %s (valid options: %s)",
			kind,
			strings.Join([]string{GeneratePassword, GenerateInvite, GenerateRecoveryCodes, GenerateID, GenerateToken, GenerateOTP}, ", "),
		)
	}

	lines := out.Values
	if out.Hash != "" {
		lines = append(append([]string(nil), out.Values...), "hash: "+out.Hash)
	}
	if err := output(io.Writer, format, out, lines...); err != nil {
		return err
	}

	logger.DebugContext(ctx, "secret generated", slog.String("kind", kind), slog.Int("count", len(out.Values)))
	return nil
}
