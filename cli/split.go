package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/splitkit/textsplit"
)

func SplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [file]",
		Short: "Split a file (or stdin) into chunks",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSplit,
	}
	cmd.Flags().Int("chunk-size", textsplit.DefaultChunkSize, "maximum chunk size")
	cmd.Flags().Int("chunk-overlap", textsplit.DefaultChunkOverlap, "overlap carried between adjacent chunks")
	cmd.Flags().String("language", "", "split using a language's separator registry (e.g. go, python, markdown)")
	cmd.Flags().String("separator", "", "split on a single fixed separator instead of recursively")
	cmd.Flags().Bool("token", false, "measure and window by tokens instead of characters")
	cmd.Flags().String("encoding", "", "tiktoken encoding name for --token (default cl100k_base)")
	cmd.Flags().Bool("json", false, "print chunks as a JSON array")
	return cmd
}

func runSplit(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	splitter, err := buildSplitter(cmd)
	if err != nil {
		return err
	}
	chunks, err := splitter.SplitText(text)
	if err != nil {
		return err
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(chunks)
	}
	for i, chunk := range chunks {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "---")
		}
		fmt.Fprintln(cmd.OutOrStdout(), chunk)
	}
	return nil
}

func buildSplitter(cmd *cobra.Command) (textsplit.Splitter, error) {
	size, err := cmd.Flags().GetInt("chunk-size")
	if err != nil {
		return nil, err
	}
	overlap, err := cmd.Flags().GetInt("chunk-overlap")
	if err != nil {
		return nil, err
	}
	language, err := cmd.Flags().GetString("language")
	if err != nil {
		return nil, err
	}
	separator, err := cmd.Flags().GetString("separator")
	if err != nil {
		return nil, err
	}
	byToken, err := cmd.Flags().GetBool("token")
	if err != nil {
		return nil, err
	}
	encoding, err := cmd.Flags().GetString("encoding")
	if err != nil {
		return nil, err
	}

	opts := []textsplit.Option{
		textsplit.WithChunkSize(size),
		textsplit.WithChunkOverlap(overlap),
	}
	switch {
	case byToken:
		if encoding != "" {
			opts = append(opts, textsplit.WithEncoding(encoding))
		}
		return textsplit.NewTokenSplitter(opts...)
	case language != "":
		return textsplit.NewRecursiveFromLanguage(textsplit.Language(language), opts...)
	case separator != "":
		opts = append(opts, textsplit.WithSeparator(separator))
		return textsplit.NewCharacter(opts...)
	default:
		return textsplit.NewRecursive(opts...)
	}
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func LanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List languages with registered separator lists",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tags := []textsplit.Language{
				textsplit.LanguageCPP, textsplit.LanguageGo, textsplit.LanguageJava,
				textsplit.LanguageJS, textsplit.LanguagePHP, textsplit.LanguageProto,
				textsplit.LanguagePython, textsplit.LanguageRST, textsplit.LanguageRuby,
				textsplit.LanguageRust, textsplit.LanguageScala, textsplit.LanguageSwift,
				textsplit.LanguageMarkdown, textsplit.LanguageLatex, textsplit.LanguageHTML,
				textsplit.LanguageSolidity,
			}
			names := make([]string, 0, len(tags))
			for _, tag := range tags {
				names = append(names, string(tag))
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
