package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-charset/internal/adapters/driven/iconv"
	"github.com/custodia-labs/sercha-charset/internal/charset"
)

var charsetsCmd = &cobra.Command{
	Use:   "charsets [label...]",
	Short: "Show how charset labels are routed",
	Long: `Without arguments, lists the charset families with built-in decoders.
With label arguments, reports the route each label takes, probing the
IANA registry for labels without a built-in decoder.`,
	RunE: runCharsets,
}

func init() {
	rootCmd.AddCommand(charsetsCmd)
}

func runCharsets(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		cmd.Println("Built-in charset families:")
		cmd.Println("  utf-8, utf8, us-ascii      passed through unchanged")
		cmd.Println("  utf-16[be|le], ucs-2[be|le] built-in decoder")
		cmd.Println("  windows-1252, cp1252       built-in decoder")
		cmd.Println("  iso-8859-1                 decoded as windows-1252")
		cmd.Println("  iso-8859-15                built-in decoder")
		cmd.Println("Other labels are resolved against the IANA registry.")
		return nil
	}

	external := iconv.New()
	for _, label := range args {
		route, order := charset.Classify(label)
		switch route {
		case charset.RouteExternal:
			if external.Resolves(label) {
				cmd.Printf("%s: external (converter available)\n", label)
			} else {
				cmd.Printf("%s: external (no converter, passes through unchanged)\n", label)
			}
		case charset.RouteUTF16:
			cmd.Printf("%s: %s (%s)\n", label, route, byteOrderName(order))
		default:
			cmd.Printf("%s: %s\n", label, route)
		}
	}
	return nil
}

func byteOrderName(order charset.ByteOrder) string {
	switch order {
	case charset.ByteOrderBig:
		return "big-endian"
	case charset.ByteOrderLittle:
		return "little-endian"
	}
	return "byte order from BOM, default big-endian"
}
