package headless

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/foliochat/foliochat/pkg/advisor"
)

// Run executes a single prompt against the advisor and prints the rendered
// reply to stdout. This is the entry point for -p/--prompt execution.
func Run(client advisor.ChatClient, userID, prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return fmt.Errorf("prompt cannot be empty in headless mode")
	}

	r := newRunner(client, userID, os.Stdout)
	return r.run(context.Background(), prompt)
}
