package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/martinemde/jlexer/lexer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>...",
	Short: "Print the token stream of source files",
	Long:  "Lex each file (or stdin when the path is -) and print every token with its position.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().Bool("skip-invalid", false, "Omit invalid tokens from the output")
	tokensCmd.Flags().Bool("eof", false, "Include the EOF token in the output")

	rootCmd.AddCommand(tokensCmd)
}

// tokenRecord is the serialized form of a token.
type tokenRecord struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Kind   string `json:"kind"`
	Text   string `json:"text,omitempty"`
	Reason string `json:"reason,omitempty"`
}

func newTokenRecord(file string, tok lexer.Token) tokenRecord {
	rec := tokenRecord{
		File:   file,
		Line:   tok.Pos.Line,
		Column: tok.Pos.Column,
		Offset: tok.Pos.Offset,
		Length: tok.Len,
		Kind:   tok.Kind.String(),
		Text:   tok.Literal,
	}
	if tok.Kind == lexer.TokenInvalid {
		rec.Reason = tok.Reason.String()
	}
	return rec
}

func runTokens(cmd *cobra.Command, args []string) error {
	format := viper.GetString("format")
	verbose := viper.GetBool("verbose")
	skipInvalid, _ := cmd.Flags().GetBool("skip-invalid")
	withEOF, _ := cmd.Flags().GetBool("eof")

	var records []tokenRecord
	for _, path := range args {
		src, err := readSource(cmd, path)
		if err != nil {
			return err
		}
		tokens, _ := lexer.Tokenize(src)
		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "[lex] %s: %d tokens\n", path, len(tokens)-1)
		}
		for _, tok := range tokens {
			if tok.Kind == lexer.TokenEOF && !withEOF {
				continue
			}
			if tok.Kind == lexer.TokenInvalid && skipInvalid {
				continue
			}
			records = append(records, newTokenRecord(path, tok))
		}
	}

	return writeRecords(cmd.OutOrStdout(), format, records)
}

func writeRecords(w io.Writer, format string, records []tokenRecord) error {
	switch format {
	case "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, rec := range records {
			text := fmt.Sprintf("%q", rec.Text)
			if rec.Reason != "" {
				text += " (" + rec.Reason + ")"
			}
			fmt.Fprintf(tw, "%s:%d:%d\t%s\t%s\n", rec.File, rec.Line, rec.Column, rec.Kind, text)
		}
		return tw.Flush()
	case "json":
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding tokens: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "yaml":
		out, err := yaml.Marshal(records)
		if err != nil {
			return fmt.Errorf("encoding tokens: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

// readSource loads a whole file; "-" reads stdin.
func readSource(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return src, nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading source file: %w", err)
	}
	return src, nil
}
