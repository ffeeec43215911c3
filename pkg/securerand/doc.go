// Package securerand is the single source of unpredictability for user-facing
// secrets: temporary passwords, invite codes, recovery codes, one-time codes
// and random identifiers.
//
// Every helper reads from Reader, which defaults to crypto/rand.Reader. There
// is no seeded generator and no fallback: when the reader is nil or fails the
// call returns ErrRandomnessUnavailable and produces nothing.
//
// # Usage
//
//	import "github.com/myaccounts/portalkit/pkg/securerand"
//
//	b, err := securerand.Bytes(32)
//	if err != nil {
//	    return err
//	}
//
//	code, err := securerand.Token(10, securerand.AlphabetUnambiguous)
//	// code never contains I, O, 0 or 1
//
// # Token mapping
//
// Token maps every random byte to alphabet[b % len(alphabet)]. For alphabets
// whose size does not divide 256 this introduces a small bias towards the
// first symbols; the alphabets shipped here are sized for display codes, not
// for key material. Use Bytes directly for keys.
//
// # Concurrency
//
// All functions are safe for concurrent use. Replacing Reader is intended for
// tests and is not synchronised.
package securerand
