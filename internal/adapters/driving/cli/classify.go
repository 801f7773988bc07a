package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/keyscout-cli/internal/core/domain"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [domain] [pathname]",
	Short: "Show how a page route would be classified",
	Long: `Classifies a page route: whether the domain is a target, whether the
path is a product detail route, which language segment it carries, and
which extraction strategy would be used.`,
	Args: cobra.ExactArgs(2),
	RunE: runClassify,
}

var classifyTarget string

func init() {
	classifyCmd.Flags().StringVar(&classifyTarget, "target", "", "target domain to classify against")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	classifier := domain.NewRouteClassifier(classifyTarget)

	pageCtx, err := domain.NewPageContext(classifier, args[0], args[1])
	if err != nil {
		return fmt.Errorf("classify failed: %w", err)
	}

	cmd.Printf("Domain:       %s\n", pageCtx.Domain)
	cmd.Printf("Pathname:     %s\n", pageCtx.Pathname)
	cmd.Printf("Target:       %t\n", pageCtx.IsTargetDomain)
	cmd.Printf("Detail route: %t\n", pageCtx.IsDetailRoute)
	if pageCtx.Language != "" {
		cmd.Printf("Language:     %s\n", pageCtx.Language)
	}

	strategy, err := pageCtx.Strategy()
	if err != nil {
		if errors.Is(err, domain.ErrWrongDomain) {
			cmd.Println("Strategy:     none (not a target domain)")
			return nil
		}
		return err
	}
	cmd.Printf("Strategy:     %s\n", strategy)
	return nil
}
