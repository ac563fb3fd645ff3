package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/foliochat/foliochat/pkg/advisor"
	"github.com/foliochat/foliochat/pkg/config"
	"github.com/foliochat/foliochat/pkg/logger"
	"github.com/foliochat/foliochat/pkg/payload"
	"github.com/foliochat/foliochat/pkg/tui"
	"github.com/foliochat/foliochat/pkg/tui/theme"
)

var quoteCmd = &cobra.Command{
	Use:   "quote <symbol>",
	Short: "Print a single stock quote and exit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.Load(cfgFile); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := logger.Init(); err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		defer logger.Close()

		settings := config.Get()
		client := advisor.NewClient(settings.Server.URL, settings.Server.Timeout)
		return runQuote(cmd.Context(), cmd.OutOrStdout(), client, args[0])
	},
	SilenceUsage: true,
}

// runQuote fetches one quote and prints the same stock card the chat view
// renders for a stock_info reply.
func runQuote(ctx context.Context, out io.Writer, client advisor.ChatClient, symbol string) error {
	info, err := client.FetchStock(ctx, strings.ToUpper(symbol))
	if err != nil {
		return fmt.Errorf("quote lookup failed: %w", err)
	}

	card := payload.Payload{Kind: payload.KindStock, Stock: info}
	fmt.Fprintln(out, tui.RenderPayload(card, theme.DefaultStyles()))
	return nil
}

func init() {
	rootCmd.AddCommand(quoteCmd)
}
