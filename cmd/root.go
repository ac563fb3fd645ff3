package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/foliochat/foliochat/pkg/advisor"
	"github.com/foliochat/foliochat/pkg/config"
	"github.com/foliochat/foliochat/pkg/headless"
	"github.com/foliochat/foliochat/pkg/logger"
	"github.com/foliochat/foliochat/pkg/tui"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "foliochat",
	Short: "Terminal client for the portfolio chatbot",
	Long: `foliochat is a terminal chat client for a portfolio chatbot service.
It renders stock cards, comparisons, what-if simulations and a portfolio
dashboard from the chatbot's structured replies.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.Load(cfgFile); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := logger.Init(); err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		defer logger.Close()

		if viper.GetBool("headless") {
			return runHeadless()
		}
		return tui.StartApp()
	},
	SilenceUsage: true,
}

func runHeadless() error {
	settings := config.Get()
	client := advisor.NewClient(settings.Server.URL, settings.Server.Timeout)
	return headless.Run(client, settings.User.ID, viper.GetString("prompt"))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is .foliochat/settings.yaml)")

	rootCmd.PersistentFlags().StringP("server", "s", "", "chatbot service base URL")
	viper.BindPFlag("server.url", rootCmd.PersistentFlags().Lookup("server"))

	rootCmd.PersistentFlags().StringP("user", "u", "", "portfolio user id")
	viper.BindPFlag("user.id", rootCmd.PersistentFlags().Lookup("user"))

	rootCmd.PersistentFlags().StringP("log-level", "l", "", "log level (debug, info, warn, error)")
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentFlags().StringP("prompt", "p", "", "execute a prompt directly without entering the TUI")
	viper.BindPFlag("prompt", rootCmd.PersistentFlags().Lookup("prompt"))

	rootCmd.PersistentFlags().BoolP("headless", "H", false, "run without TUI (requires --prompt)")
	viper.BindPFlag("headless", rootCmd.PersistentFlags().Lookup("headless"))
}
