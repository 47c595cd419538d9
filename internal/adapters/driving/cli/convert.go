package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-charset/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sercha-charset/internal/adapters/driven/iconv"
	"github.com/custodia-labs/sercha-charset/internal/charset"
	"github.com/custodia-labs/sercha-charset/internal/core/domain"
	"github.com/custodia-labs/sercha-charset/internal/core/services"
	"github.com/custodia-labs/sercha-charset/internal/logger"
)

var (
	convertCharset   string
	convertOutput    string
	convertConfigDir string
	convertStrict    bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a document to UTF-8",
	Long: `Converts a file (or stdin when no file is given) from the charset
named by --charset to UTF-8 on stdout. Inputs already in UTF-8, and
inputs in charsets no converter handles, are passed through unchanged.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertCharset, "charset", "c", "", "charset label of the input (required)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "write output to a file instead of stdout")
	convertCmd.Flags().StringVar(&convertConfigDir, "config-dir", "", "directory holding charsets.toml alias overrides")
	convertCmd.Flags().BoolVar(&convertStrict, "strict", false, "fail instead of passing through when no converter exists")
	_ = convertCmd.MarkFlagRequired("charset")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	content, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	label, err := applyAliases(convertCharset)
	if err != nil {
		return err
	}

	external := iconv.New()
	if convertStrict {
		if route, _ := charset.Classify(label); route == charset.RouteExternal && !external.Resolves(label) {
			return fmt.Errorf("%w: %s", domain.ErrUnsupportedCharset, label)
		}
	}

	normaliser := services.NewNormaliserService(external)
	result := normaliser.Normalise(context.Background(), content, label)

	out := content
	if result.Changed {
		out = []byte(result.Text)
	} else {
		logger.Debug("charset %q left input unchanged", label)
	}
	return writeOutput(cmd, out)
}

// applyAliases remaps the label through the alias override config, if
// any, before classification.
func applyAliases(label string) (string, error) {
	store, err := file.NewAliasStore(convertConfigDir)
	if err != nil {
		return "", fmt.Errorf("locate charset aliases: %w", err)
	}

	aliases, err := store.Load()
	if err != nil {
		return "", fmt.Errorf("load charset aliases: %w", err)
	}

	if target, ok := aliases[strings.ToLower(label)]; ok {
		logger.Debug("charset alias %q -> %q", label, target)
		return target, nil
	}
	return label, nil
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return content, nil
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return content, nil
}

func writeOutput(cmd *cobra.Command, out []byte) error {
	if convertOutput != "" {
		if err := os.WriteFile(convertOutput, out, 0600); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	_, err := cmd.OutOrStdout().Write(out)
	return err
}
