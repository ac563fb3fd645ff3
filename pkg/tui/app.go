package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/foliochat/foliochat/pkg/advisor"
	"github.com/foliochat/foliochat/pkg/config"
	"github.com/foliochat/foliochat/pkg/controllers"
	"github.com/foliochat/foliochat/pkg/logger"
)

// StartApp builds the backend client from the loaded configuration and runs
// the interactive program until the user quits.
func StartApp() error {
	settings := config.Get()

	client := advisor.NewClient(settings.Server.URL, settings.Server.Timeout)
	controller := controllers.NewChatController(client, settings.User.ID)

	logger.Info("starting interactive session: server=%s user=%s", settings.Server.URL, settings.User.ID)

	program := tea.NewProgram(NewModel(controller), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
