package main

import (
	"context"
	_ "embed"
	"fmt"
	"io"

	"github.com/fahmitech/roman/pkg/roman"
	"github.com/fahmitech/roman/pkg/types"
	"github.com/fahmitech/roman/pkg/utils"
	"github.com/kyokomi/emoji/v2"
	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoYAML []byte

func loadDemoSamples() (*types.DemoSamples, error) {
	var samples types.DemoSamples
	if err := yaml.Unmarshal(demoYAML, &samples); err != nil {
		return nil, fmt.Errorf("failed to parse demo samples: %w", err)
	}
	return &samples, nil
}

// runDemo prints one line per sample. A failing sample is reported and the demo moves on.
func runDemo(ctx context.Context, w io.Writer, samples *types.DemoSamples) error {
	for _, s := range samples.Decode {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := roman.Decode(s)
		if err != nil {
			fmt.Fprintf(w, "[WARN] Input: %s Error: %v\n", s, err)
			continue
		}
		fmt.Fprintf(w, "[INFO] Input: %s Output: %d\n", s, v)
	}

	for _, n := range samples.Encode {
		if err := ctx.Err(); err != nil {
			return err
		}
		out, err := roman.Encode(n)
		if err != nil {
			fmt.Fprintf(w, "[WARN] Input: %d Error: %v\n", n, err)
			continue
		}
		fmt.Fprintf(w, "[INFO] Input: %d Output: %s\n", n, out)
	}

	for _, c := range samples.Check {
		if err := ctx.Err(); err != nil {
			return err
		}
		ok, err := utils.CheckCharacters(c.Candidate, c.Alphabet)
		if err != nil {
			fmt.Fprintf(w, "[WARN] Input: [%v %v] Error: %v\n", c.Candidate, c.Alphabet, err)
			continue
		}
		fmt.Fprintf(w, "[INFO] Input: [%v %v] Output: %t\n", c.Candidate, c.Alphabet, ok)
	}

	_, err := fmt.Fprintln(w, emoji.Sprint("Done :white_check_mark:"))
	return err
}
