package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		fails []string
	}{
		{"valid", "abc123", nil},
		{"valid max", "abcdefghijklmn12", nil},
		{"too short no digit", "abc", []string{"digit", "min"}},
		{"too short with digit", "ab1", []string{"min"}},
		{"too long", "aaaaaaaaaaaaaaaaa1", []string{"max"}},
		{"empty", "", []string{"required", "digit", "min"}},
		{"whitespace", "      ", []string{"required", "digit", "min"}},
		{"padding trimmed", "   ab12   ", []string{"min"}},
		{"padding not counted", "  abc123  ", nil},
		{"counts runes", "活动名称活动名称1", nil},
		{"non ascii digit", "abcdef٣", []string{"digit"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Title(tc.title)
			if tc.fails == nil {
				assert.NoError(t, err)
				return
			}
			var ve *Error
			require.True(t, errors.As(err, &ve), "want *Error, got %v", err)
			assert.Equal(t, "title", ve.Field)
			assert.Equal(t, tc.fails, ve.Rules())
		})
	}
}

func TestErrorMessages(t *testing.T) {
	err := Title("abc")
	var ve *Error
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"Must contain a digit", "At least 6 characters"}, ve.Messages())
	assert.Equal(t, "title: Must contain a digit; At least 6 characters", err.Error())
}

func TestRunReportsEveryRule(t *testing.T) {
	res := Run(TitleRules, "abc123")
	require.Len(t, res, len(TitleRules))
	for _, r := range res {
		assert.True(t, r.Pass, r.Rule)
	}
}

func TestTitleMatchesRulesProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.StringMatching(`[ a-z0-9]{0,24}`).Draw(t, "title")
		trimmed := strings.TrimSpace(v)
		want := trimmed != "" &&
			strings.ContainsAny(v, "0123456789") &&
			len(trimmed) >= MinTitle && len(trimmed) <= MaxTitle
		assert.Equal(t, want, Title(v) == nil, "title %q", v)
	})
}

func TestJoin(t *testing.T) {
	assert.NoError(t, Join(nil, nil))

	a := &Error{Field: "title", Failures: []Result{{Rule: "min", Message: "At least 6 characters"}}}
	b := &Error{Field: "state", Failures: []Result{{Rule: "set", Message: "Pick a state"}}}
	var ve *Error
	require.ErrorAs(t, Join(a, nil, b), &ve)
	assert.Equal(t, "title, state", ve.Field)
	assert.Equal(t, []string{"min", "set"}, ve.Rules())
}
