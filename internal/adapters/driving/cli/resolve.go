package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [html-fragment]",
	Short: "Resolve an HTML fragment to its display text",
	Long: `Extracts the human-visible text from an HTML fragment, the same way
the search surfaces do before matching. Long fragments drop scripted and
hidden content; very long text is truncated.

Pass the fragment as an argument or pipe it on stdin:
  keyscout resolve '<button><span>Pay now</span></button>'
  pbpaste | keyscout resolve`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	if resolverService == nil {
		return errors.New("resolver service not configured")
	}

	var fragment string
	if len(args) == 1 {
		fragment = args[0]
	} else {
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return errors.New("no HTML fragment provided; pass it as an argument or pipe it on stdin")
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		fragment = string(data)
	}

	text, err := resolverService.ResolveText(fragment)
	if err != nil {
		return fmt.Errorf("resolve failed: %w", err)
	}

	cmd.Println(text)
	return nil
}
