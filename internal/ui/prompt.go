package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"followup/internal/domain"
	"followup/internal/theme"
)

// focusArea identifies which half of the prompt receives key events.
type focusArea int

const (
	focusOptions focusArea = iota
	focusInput
)

// noEdit marks that the edit buffer is not revising any option.
const noEdit = -1

// Prompt is the interactive question component. It owns the option list and
// the free-text edit buffer; whichever has focus interprets key events. Once
// Completed is set, Result holds the session outcome and no further events
// change state.
type Prompt struct {
	Completed bool
	Result    domain.Result

	editingOption int // option index seeded into the buffer by F2, or noEdit
	focus         focusArea
	input         textinput.Model
	keys          KeyMap
	question      domain.Question
	selectedIndex int
	width         int
}

// NewPrompt creates a prompt for question. Focus starts on the option list
// when options exist, otherwise on the text input.
func NewPrompt(question domain.Question) *Prompt {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "type your own answer"
	ti.PlaceholderStyle = theme.InputPlaceholderStyle
	ti.Cursor.Style = theme.InputCursorStyle
	ti.Width = 60

	p := &Prompt{
		editingOption: noEdit,
		focus:         focusOptions,
		input:         ti,
		keys:          DefaultKeyMap(),
		question:      question,
	}

	if len(question.Options) == 0 {
		p.focus = focusInput
		p.input.Focus()
	}

	return p
}

// Init initializes the prompt.
func (p *Prompt) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt.
func (p *Prompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		if w := msg.Width - 6; w > 0 && w < 60 {
			p.input.Width = w
		}
		return p, nil

	case tea.KeyMsg:
		if p.Completed {
			return p, nil
		}
		return p.handleKey(msg)
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *Prompt) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Cancellation wins in both foci.
	if key.Matches(msg, p.keys.Cancel) {
		return p.resolve(domain.NewCancelled())
	}

	if p.focus == focusOptions {
		return p.handleOptionListKey(msg)
	}
	return p.handleTextInputKey(msg)
}

func (p *Prompt) handleOptionListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Up):
		if p.selectedIndex > 0 {
			p.selectedIndex--
		}
		return p, nil

	case key.Matches(msg, p.keys.Down):
		if p.selectedIndex < len(p.question.Options)-1 {
			p.selectedIndex++
		}
		return p, nil

	case key.Matches(msg, p.keys.Toggle):
		// Focus moves without touching the buffer.
		return p, p.focusTextInput()

	case key.Matches(msg, p.keys.Edit):
		p.input.SetValue(p.question.Options[p.selectedIndex])
		p.input.CursorEnd()
		cmd := p.focusTextInput()
		p.editingOption = p.selectedIndex
		return p, cmd

	case key.Matches(msg, p.keys.Submit):
		return p.resolve(domain.NewAnswered(p.question.Options[p.selectedIndex]))

	default:
		if isPrintable(msg) {
			// Typing promotes focus and the character lands in the buffer.
			blink := p.focusTextInput()
			var cmd tea.Cmd
			p.input, cmd = p.input.Update(msg)
			return p, tea.Batch(blink, cmd)
		}
		return p, nil
	}
}

func (p *Prompt) handleTextInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Toggle):
		// Ends any option edit; the buffer keeps its contents.
		p.focusOptionList()
		return p, nil

	case key.Matches(msg, p.keys.Edit):
		return p, nil

	case key.Matches(msg, p.keys.Submit):
		text := strings.TrimSpace(p.input.Value())
		if text == "" {
			// Never submit an empty message.
			return p, nil
		}
		return p.resolve(domain.NewAnswered(text))

	default:
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
}

func (p *Prompt) resolve(result domain.Result) (tea.Model, tea.Cmd) {
	p.Completed = true
	p.Result = result
	return p, tea.Quit
}

func (p *Prompt) focusTextInput() tea.Cmd {
	p.focus = focusInput
	p.input.Focus()
	return textinput.Blink
}

func (p *Prompt) focusOptionList() {
	p.focus = focusOptions
	p.editingOption = noEdit
	p.input.Blur()
}

// isPrintable reports whether msg carries text the user typed, as opposed to
// a control or navigation key.
func isPrintable(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace
}

// View renders the prompt as a pure function of its state.
func (p *Prompt) View() string {
	if p.Completed {
		return p.outcomeView()
	}

	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render(p.question.Text))
	b.WriteString("\n")

	for i, option := range p.question.Options {
		marker := "  "
		line := theme.OptionStyle.Render(option)
		if i == p.selectedIndex {
			marker = theme.MarkerStyle.Render("> ")
			if p.focus == focusOptions {
				line = theme.OptionSelectedStyle.Render(option)
			}
		}
		b.WriteString(marker + line + "\n")
	}

	b.WriteString("\n")
	label := "Or type your own answer:"
	if p.editingOption != noEdit {
		label = "Editing: " + p.question.Options[p.editingOption]
	}
	b.WriteString(theme.InputLabelStyle.Render(label))
	b.WriteString("\n")

	box := theme.InputBoxStyle
	if p.focus == focusInput {
		box = theme.InputBoxFocusedStyle
	}
	b.WriteString(box.Render(p.input.View()))
	b.WriteString("\n")

	b.WriteString(theme.HelpStyle.Render(p.keys.Help()))
	b.WriteString("\n")

	return b.String()
}

// outcomeView is the final frame left in the window after the session ends.
func (p *Prompt) outcomeView() string {
	if p.Result.Answered() {
		return theme.AnsweredStyle.Render("✓ Response submitted: ") +
			theme.NormalStyle.Render(p.Result.Text) + "\n"
	}
	return theme.CancelledStyle.Render("✗ Cancelled, no response sent") + "\n"
}
