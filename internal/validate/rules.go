// Package validate holds the field rules checked when an edit is committed.
package validate

import (
	"strings"
	"unicode/utf8"
)

// Rule is a named predicate with the message shown when it fails.
type Rule struct {
	Name    string
	Message string
	Check   func(v string) bool
}

// Result is the outcome of one rule.
type Result struct {
	Rule    string
	Message string
	Pass    bool
}

const (
	MinTitle = 6
	MaxTitle = 16
)

// TitleRules are evaluated in this order; all of them run on every commit.
var TitleRules = []Rule{
	{
		Name:    "required",
		Message: "This field is required",
		Check:   func(v string) bool { return strings.TrimSpace(v) != "" },
	},
	{
		Name:    "digit",
		Message: "Must contain a digit",
		Check:   hasDigit,
	},
	{
		Name:    "max",
		Message: "At most 16 characters",
		Check:   func(v string) bool { return trimmedLen(v) <= MaxTitle },
	},
	{
		Name:    "min",
		Message: "At least 6 characters",
		Check:   func(v string) bool { return trimmedLen(v) >= MinTitle },
	},
}

func hasDigit(v string) bool {
	for i := 0; i < len(v); i++ {
		if v[i] >= '0' && v[i] <= '9' {
			return true
		}
	}
	return false
}

// trimmedLen counts characters, not bytes.
func trimmedLen(v string) int { return utf8.RuneCountInString(strings.TrimSpace(v)) }

// Run evaluates every rule against v.
func Run(rules []Rule, v string) []Result {
	out := make([]Result, 0, len(rules))
	for _, r := range rules {
		out = append(out, Result{Rule: r.Name, Message: r.Message, Pass: r.Check(v)})
	}
	return out
}

// Check returns the failed results of Run, or nil when everything passes.
func Check(rules []Rule, v string) []Result {
	var failed []Result
	for _, res := range Run(rules, v) {
		if !res.Pass {
			failed = append(failed, res)
		}
	}
	return failed
}

// Field checks v against rules and wraps any failures in an *Error
// naming field.
func Field(field string, rules []Rule, v string) error {
	if failed := Check(rules, v); len(failed) > 0 {
		return &Error{Field: field, Failures: failed}
	}
	return nil
}

// Title checks v against TitleRules.
func Title(v string) error { return Field("title", TitleRules, v) }
