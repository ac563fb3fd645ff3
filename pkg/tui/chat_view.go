package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/foliochat/foliochat/pkg/controllers"
	"github.com/foliochat/foliochat/pkg/tui/theme"
)

const inputHeight = 3

// chatView is the conversation pane: a scrolling transcript above a one-line
// input. While a send is pending the input stops accepting keys and a spinner
// takes its place in the footer.
type chatView struct {
	controller *controllers.ChatController
	styles     *theme.Styles

	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	width  int
	height int
	ready  bool
}

func newChatView(controller *controllers.ChatController, styles *theme.Styles) chatView {
	ta := textarea.New()
	ta.Placeholder = "Ask about your portfolio..."
	ta.Prompt = "> "
	ta.CharLimit = 0
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = sp.Style.Foreground(theme.ColorFocus)

	return chatView{
		controller: controller,
		styles:     styles,
		textarea:   ta,
		spinner:    sp,
	}
}

func (v chatView) Init() tea.Cmd {
	return textarea.Blink
}

func (v chatView) Update(msg tea.Msg) (chatView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		// The pending request owns the turn; typing resumes once it settles.
		if v.controller.IsLoading() {
			return v, nil
		}
		if key.Matches(msg, keys.Send) {
			return v.submit()
		}

	case replyMsg:
		v.controller.CompleteSend(msg.reply, msg.err)
		v.refreshTranscript()
		return v, nil

	case spinner.TickMsg:
		if !v.controller.IsLoading() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	v.textarea, cmd = v.textarea.Update(msg)
	cmds = append(cmds, cmd)
	v.viewport, cmd = v.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return v, tea.Batch(cmds...)
}

func (v chatView) submit() (chatView, tea.Cmd) {
	text := v.textarea.Value()
	if _, ok := v.controller.BeginSend(text); !ok {
		return v, nil
	}
	v.textarea.Reset()
	v.refreshTranscript()

	return v, tea.Batch(
		sendMessageCmd(v.controller.Client(), text, v.controller.UserID()),
		v.spinner.Tick,
	)
}

func (v *chatView) resize(width, height int) {
	v.width = width
	v.height = height

	vpHeight := height - inputHeight
	if vpHeight < 1 {
		vpHeight = 1
	}
	if !v.ready {
		v.viewport = viewport.New(width, vpHeight)
		v.ready = true
	} else {
		v.viewport.Width = width
		v.viewport.Height = vpHeight
	}
	v.textarea.SetWidth(width)
	v.refreshTranscript()
}

// refreshTranscript rebuilds the viewport content from the conversation and
// pins the view to the newest entry.
func (v *chatView) refreshTranscript() {
	history := v.controller.History()
	if len(history) == 0 {
		v.viewport.SetContent(v.styles.MutedText.Render("Start the conversation below."))
		return
	}

	lines := make([]string, 0, len(history))
	for _, msg := range history {
		lines = append(lines, RenderMessage(msg, v.styles))
	}
	v.viewport.SetContent(strings.Join(lines, "\n\n"))
	v.viewport.GotoBottom()
}

func (v chatView) View() string {
	var footer string
	if v.controller.IsLoading() {
		footer = v.spinner.View() + v.styles.MutedText.Render(" Waiting for the advisor...")
	} else {
		footer = v.textarea.View()
	}
	return v.viewport.View() + "\n\n" + footer
}
