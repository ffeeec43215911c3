package safeinput_test

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/myaccounts/portalkit/pkg/logger"
	"github.com/myaccounts/portalkit/pkg/safeinput"
	"github.com/myaccounts/portalkit/pkg/securerand"
)

// testPolicy is DefaultPolicy with the cheapest bcrypt cost.
func testPolicy() safeinput.Policy {
	p := safeinput.DefaultPolicy()
	p.BcryptCost = bcrypt.MinCost
	return p
}

func newKit(t *testing.T, opts ...safeinput.Option) *safeinput.Kit {
	t.Helper()
	kit, err := safeinput.New(testPolicy(), opts...)
	require.NoError(t, err)
	return kit
}

// newLoggedKit returns a kit whose debug records land in the returned buffer.
func newLoggedKit(t *testing.T) (*safeinput.Kit, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))
	return newKit(t, safeinput.WithLogger(log)), &buf
}

// useReader swaps the entropy source. Callers must not run in parallel.
func useReader(t *testing.T, r io.Reader) {
	t.Helper()
	prev := securerand.Reader
	securerand.Reader = r
	t.Cleanup(func() { securerand.Reader = prev })
}
