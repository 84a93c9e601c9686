package main

import (
	"fmt"

	"github.com/martinemde/jlexer/lexer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Report every lexical error in source files",
	Long:  "Lex each file to the end and report all lexical errors. Exits non-zero when any are found.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	verbose := viper.GetBool("verbose")
	stderr := cmd.ErrOrStderr()

	total := 0
	for _, path := range args {
		src, err := readSource(cmd, path)
		if err != nil {
			return err
		}
		tokens, err := lexer.Tokenize(src)
		lexErrs := lexer.Errors(err)
		for _, e := range lexErrs {
			fmt.Fprintf(stderr, "[error] %s:%d:%d: %s %q\n", path, e.Pos.Line, e.Pos.Column, e.Reason, e.Text)
		}
		if verbose {
			fmt.Fprintf(stderr, "[lex] %s: %d tokens, %d errors\n", path, len(tokens)-1, len(lexErrs))
		}
		total += len(lexErrs)
	}

	if total > 0 {
		return fmt.Errorf("%d lexical error(s)", total)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d file(s)\n", len(args))
	return nil
}
