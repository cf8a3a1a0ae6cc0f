// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"list", "", 4},
		{"", "edit", 4},
		{"list", "list", 0},
		{"list", "lsit", 2},
		{"edit", "edti", 2},
		{"version", "verison", 2},
		{"kitten", "sitting", 3},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
		if got := levenshtein(test.b, test.a); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d (symmetry)", test.b, test.a, got, test.want)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{{Name: "edit"}, {Name: "list"}, {Name: "version"}}
	tests := []struct {
		input string
		want  string
	}{
		{"lst", "list"},
		{"eidt", "edit"},
		{"verson", "version"},
		{"completely-different", ""},
	}
	for _, test := range tests {
		if got := suggestCommand(test.input, commands); got != test.want {
			t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.String("seed", "", "")
	flagSet.StringP("filter", "f", "", "")
	flagSet.Bool("json", false, "")

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--sed", "x"}, "--seed"},
		{[]string{"--seed", "x", "--jsno"}, "--json"},
		{[]string{"-f", "active", "--fitler=active"}, "--filter"},
		{[]string{"--nothing-like-it"}, ""},
		{[]string{"--", "--sed"}, ""},
	}
	for _, test := range tests {
		if got := suggestFlag(test.args, flagSet); got != test.want {
			t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
		}
	}
}
