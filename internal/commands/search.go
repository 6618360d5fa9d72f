package commands

import (
	"fmt"
)

type SearchCmd struct {
	Query  string `arg:"" name:"query" help:"Text to look for in gene names; empty lists every gene." optional:""`
	Fuzzy  bool   `name:"fuzzy" short:"f" help:"Rank genes by fuzzy similarity instead of substring match."`
	Output string `name:"output" short:"o" help:"Output format." default:"text" enum:"text,json,yaml"`
}

type searchResult struct {
	Query   string   `json:"query" yaml:"query"`
	Fuzzy   bool     `json:"fuzzy" yaml:"fuzzy"`
	Matches []string `json:"matches" yaml:"matches"`
}

func (s *SearchCmd) Run(ctx *Context) error {
	a, err := ctx.loadApp(nil)
	if err != nil {
		return err
	}

	matches := a.Suggestions(s.Query)
	if s.Fuzzy {
		matches = a.FuzzySuggestions(s.Query)
	}
	if matches == nil {
		matches = []string{}
	}

	if s.Output != OutputText {
		return writeStructured(ctx.Stdout, s.Output, searchResult{
			Query:   s.Query,
			Fuzzy:   s.Fuzzy,
			Matches: matches,
		})
	}

	if len(matches) == 0 {
		fmt.Fprintln(ctx.Stderr, "No matching genes")
		return nil
	}
	for _, m := range matches {
		fmt.Fprintln(ctx.Stdout, m)
	}
	return nil
}
