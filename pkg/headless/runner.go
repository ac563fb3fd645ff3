package headless

import (
	"context"
	"fmt"
	"io"

	"github.com/foliochat/foliochat/pkg/advisor"
	"github.com/foliochat/foliochat/pkg/controllers"
	"github.com/foliochat/foliochat/pkg/logger"
	"github.com/foliochat/foliochat/pkg/tui"
	"github.com/foliochat/foliochat/pkg/tui/theme"
)

// runner drives one send cycle through the same controller the TUI uses, so
// headless replies go through the identical decode and history path.
type runner struct {
	controller *controllers.ChatController
	styles     *theme.Styles
	out        io.Writer
}

func newRunner(client advisor.ChatClient, userID string, out io.Writer) *runner {
	return &runner{
		controller: controllers.NewChatController(client, userID),
		styles:     theme.DefaultStyles(),
		out:        out,
	}
}

func (r *runner) run(ctx context.Context, prompt string) error {
	logger.Debug("headless prompt: %s", prompt)

	msg, ok := r.controller.Send(ctx, prompt)
	if !ok {
		return fmt.Errorf("prompt was rejected")
	}

	fmt.Fprintln(r.out, tui.RenderPayload(msg.Payload, r.styles))

	if msg.IsError() {
		return fmt.Errorf("chat request failed: %s", msg.Payload.Text)
	}
	return nil
}
