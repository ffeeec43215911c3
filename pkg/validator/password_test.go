package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myaccounts/portalkit/pkg/validator"
)

func TestEvaluatePassword(t *testing.T) {
	t.Parallel()

	t.Run("all requirements met", func(t *testing.T) {
		s := validator.EvaluatePassword("Abc12345!")
		assert.Equal(t, 5, s.Score)
		assert.Equal(t, validator.LabelVeryStrong, s.Label)
		require.Len(t, s.Requirements, 5)
		for _, r := range s.Requirements {
			assert.True(t, r.Met, r.Label)
		}
		assert.True(t, s.AllMet())
	})

	t.Run("requirement order and labels", func(t *testing.T) {
		s := validator.EvaluatePassword("")
		labels := make([]string, 0, len(s.Requirements))
		for _, r := range s.Requirements {
			labels = append(labels, r.Label)
		}
		assert.Equal(t, []string{
			"At least 8 characters",
			"One uppercase letter",
			"One lowercase letter",
			"One number",
			"One special character",
		}, labels)
		assert.Equal(t, 0, s.Score)
		assert.Equal(t, validator.LabelVeryWeak, s.Label)
		assert.False(t, s.AllMet())
	})

	tests := []struct {
		password string
		score    int
		label    validator.StrengthLabel
	}{
		{"a", 1, validator.LabelVeryWeak},
		{"abcdefgh", 2, validator.LabelWeak},
		{"abcdefg1", 3, validator.LabelFair},
		{"Abcdefg1", 4, validator.LabelStrong},
		{"Ab1!", 4, validator.LabelStrong},
		{"ABCDEFGH", 2, validator.LabelWeak},
		{"12345678", 2, validator.LabelWeak},
		{"pass word", 3, validator.LabelFair},
		{"Pässwörd1", 5, validator.LabelVeryStrong},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			t.Parallel()
			s := validator.EvaluatePassword(tt.password)
			assert.Equal(t, tt.score, s.Score)
			assert.Equal(t, tt.label, s.Label)
		})
	}
}

func TestEvaluatePassword_ScoreEqualsMetCount(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "x", "Xx", "Xx1", "Xx1$", "Xx1$long enough", "        ", "ÄÖÜ", strings.Repeat("a", 200)}
	for _, p := range inputs {
		s := validator.EvaluatePassword(p)
		met := 0
		for _, r := range s.Requirements {
			if r.Met {
				met++
			}
		}
		assert.Equal(t, met, s.Score, p)
		assert.Equal(t, validator.StrengthLabelFor(s.Score), s.Label, p)
	}
}

func TestStrengthLabelFor(t *testing.T) {
	t.Parallel()

	rank := map[validator.StrengthLabel]int{
		validator.LabelVeryWeak:   0,
		validator.LabelWeak:       1,
		validator.LabelFair:       2,
		validator.LabelGood:       3,
		validator.LabelStrong:     4,
		validator.LabelVeryStrong: 5,
	}

	prev := -1
	for score := -1; score <= 6; score++ {
		label := validator.StrengthLabelFor(score)
		r, ok := rank[label]
		require.True(t, ok, "unknown label %q", label)
		assert.GreaterOrEqual(t, r, prev, "label must not weaken as score grows")
		prev = r
	}

	assert.Equal(t, validator.LabelVeryWeak, validator.StrengthLabelFor(0))
	assert.Equal(t, validator.LabelVeryWeak, validator.StrengthLabelFor(1))
	assert.Equal(t, validator.LabelWeak, validator.StrengthLabelFor(2))
	assert.Equal(t, validator.LabelFair, validator.StrengthLabelFor(3))
	assert.Equal(t, validator.LabelStrong, validator.StrengthLabelFor(4))
	assert.Equal(t, validator.LabelVeryStrong, validator.StrengthLabelFor(5))
}

// The label set declares "Good" but no score maps to it.
func TestStrengthLabelFor_NeverGood(t *testing.T) {
	t.Parallel()

	for score := 0; score <= 5; score++ {
		assert.NotEqual(t, validator.LabelGood, validator.StrengthLabelFor(score))
	}
}

func TestEvaluatePasswordWith(t *testing.T) {
	t.Parallel()

	s := validator.EvaluatePasswordWith("Ab1!xyz", 12)
	assert.Equal(t, "At least 12 characters", s.Requirements[0].Label)
	assert.False(t, s.Requirements[0].Met)
	assert.Equal(t, 4, s.Score)

	s = validator.EvaluatePasswordWith("Ab1!", 4)
	assert.Equal(t, 5, s.Score)
}

func TestIsPasswordStrong(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsPasswordStrong("abcdefg1"), "score 3 meets default policy")
	assert.False(t, validator.IsPasswordStrong("abcdefgh"))
	assert.True(t, validator.IsPasswordStrongEnough("Abc12345!", 5))
	assert.False(t, validator.IsPasswordStrongEnough("Abcdefg1", 5))
	assert.True(t, validator.IsPasswordStrongEnough("", 0))
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.Equal(t, validator.Result{Valid: true}, validator.ValidatePassword("Abc12345!"))
	assert.Equal(t, validator.MsgPasswordRequired, validator.ValidatePassword("").Error)
	assert.Equal(t, validator.MsgPasswordWeak, validator.ValidatePassword("abcdefgh").Error)
	assert.Equal(t, "Password must be no more than 128 characters", validator.ValidatePassword(strings.Repeat("Ab1!", 33)).Error)

	r := validator.ValidatePasswordWith("Abcdefg1", validator.MinPasswordLength, 5)
	assert.False(t, r.Valid)
	assert.Equal(t, validator.MsgPasswordWeak, r.Error)

	err := validator.Apply(validator.Password("password", "abc", validator.MinPasswordScore))
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "password_weak", verrs[0].Code)
}

func TestValidatePasswordWithMax(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.ValidatePasswordWithMax("Abc12345!", validator.MinPasswordLength, 20, validator.MinPasswordScore).Valid)
	assert.Equal(t, "Password must be no more than 20 characters",
		validator.ValidatePasswordWithMax(strings.Repeat("Ab1!", 6), validator.MinPasswordLength, 20, validator.MinPasswordScore).Error)

	// Length counts runes, not bytes.
	assert.True(t, validator.ValidatePasswordWithMax("Pässwörd1!", validator.MinPasswordLength, 10, validator.MinPasswordScore).Valid)

	// A non-positive maximum falls back to MaxPasswordLength.
	long := strings.Repeat("Ab1!", 33)
	assert.Equal(t, validator.ValidatePassword(long), validator.ValidatePasswordWithMax(long, validator.MinPasswordLength, 0, validator.MinPasswordScore))
	assert.Equal(t, validator.MsgPasswordRequired, validator.ValidatePasswordWithMax("", validator.MinPasswordLength, 20, 0).Error)
}
