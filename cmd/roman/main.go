package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/fahmitech/roman/pkg/roman"
	"github.com/fahmitech/roman/pkg/types"
	"github.com/fahmitech/roman/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	outputFormat  string
	strictDecode  bool
	checkAlphabet string
)

var rootCmd = &cobra.Command{
	Use:           "roman",
	Short:         "Convert between integers and Roman numerals",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(outputFormat)
	},
}

var encodeCmd = &cobra.Command{
	Use:   "encode [number]",
	Short: "Encode an integer between 1 and 3999 as a Roman numeral",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", args[0], err)
		}

		numeral, err := roman.Encode(value)
		if err != nil {
			return fmt.Errorf("encode failed: %w", err)
		}

		res := types.Conversion{Input: args[0], Output: numeral, Canonical: true}
		return render(cmd.OutOrStdout(), outputFormat, res, numeral)
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [numeral]",
	Short: "Decode a Roman numeral into an integer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		decode := roman.Decode
		if strictDecode {
			decode = roman.DecodeStrict
		}

		value, err := decode(args[0])
		if err != nil {
			return fmt.Errorf("decode failed: %w", err)
		}

		canonical := roman.IsCanonical(args[0])
		if !canonical {
			fmt.Fprintf(cmd.ErrOrStderr(), "[WARN] %q is not in canonical form. Use --strict to reject it\n", args[0])
		}

		out := strconv.Itoa(value)
		res := types.Conversion{Input: args[0], Output: out, Canonical: canonical}
		return render(cmd.OutOrStdout(), outputFormat, res, out)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [candidate]",
	Short: "Report whether every character of a string is in an alphabet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok := utils.AcceptableCharacters(args[0], checkAlphabet)
		res := types.Check{Candidate: args[0], Alphabet: checkAlphabet, Acceptable: ok}
		return render(cmd.OutOrStdout(), outputFormat, res, strconv.FormatBool(ok))
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run sample encode, decode and check invocations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		samples, err := loadDemoSamples()
		if err != nil {
			return err
		}
		return runDemo(cmd.Context(), cmd.OutOrStdout(), samples)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text|json|yaml)")

	decodeCmd.Flags().BoolVar(&strictDecode, "strict", false, "Reject numerals that are not in canonical form")
	checkCmd.Flags().StringVar(&checkAlphabet, "alphabet", roman.Alphabet, "Acceptable characters")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(demoCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
