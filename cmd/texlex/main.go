package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/texlab/texlex/pkg/catcode"
	"github.com/texlab/texlex/pkg/tokenizer"
)

type tokenJSON struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
}

func main() {
	endLine := flag.Int("endline", '\r', "end-of-line character code appended to each line; outside 0-254 disables it")
	jsonOut := flag.Bool("json", false, "print the token stream as JSON")
	debug := flag.Bool("debug", false, "dump final scanner state to stderr")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-endline N] [-json] [-debug] <file.tex>\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}

	src, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	s := tokenizer.NewScanner(catcode.NewTable(), string(src))
	if *endLine != '\r' {
		s.SetEndLineChar(*endLine)
		s.Reset(string(src))
	}

	tokens, err := s.Tokens()
	if *debug {
		fmt.Fprint(os.Stderr, spew.Sdump(s))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "texlex: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		out := make([]tokenJSON, len(tokens))
		for i, tok := range tokens {
			out[i] = tokenJSON{Text: tok.Text, Kind: tok.Kind.String()}
		}
		if err := json.MarshalWrite(os.Stdout, out, jsontext.Expand(true), jsontext.WithIndent("  ")); err != nil {
			fmt.Fprintf(os.Stderr, "texlex: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
		return
	}

	for _, tok := range tokens {
		fmt.Printf("(%q, %s)\n", tok.Text, tok.Kind)
	}
}
