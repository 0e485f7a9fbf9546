package main

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hostup.co.in/hostup-web/internal/chat"
)

const maxInputRunes = 500

type speaker int

const (
	fromBot speaker = iota
	fromVisitor
)

type line struct {
	from speaker
	text string
}

// replyMsg carries a finished responder answer back into Update.
type replyMsg struct {
	reply chat.Reply
	err   error
}

type styles struct {
	title   lipgloss.Style
	bot     lipgloss.Style
	visitor lipgloss.Style
	muted   lipgloss.Style
	option  lipgloss.Style
	active  lipgloss.Style
	prompt  lipgloss.Style
}

func newStyles() styles {
	gold := lipgloss.Color("#D4AF37")
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(gold),
		bot:     lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E7EB")).PaddingLeft(2),
		visitor: lipgloss.NewStyle().Foreground(gold).Bold(true),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		option:  lipgloss.NewStyle().PaddingLeft(2),
		active:  lipgloss.NewStyle().PaddingLeft(2).Foreground(gold).Bold(true),
		prompt:  lipgloss.NewStyle().Foreground(gold),
	}
}

type model struct {
	ctx       context.Context
	name      string
	responder *chat.Responder
	options   []string
	styles    styles

	log     []line
	input   []rune
	cursor  int // highlighted quick option
	pending int // replies still "typing"
	width   int
}

func newModel(ctx context.Context, name string, r *chat.Responder) model {
	return model{
		ctx:       ctx,
		name:      name,
		responder: r,
		options:   r.QuickOptions(),
		styles:    newStyles(),
		log: []line{{
			from: fromBot,
			text: fmt.Sprintf("Hi! 👋 Welcome to %s. How can we help you with your property today?", name),
		}},
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case replyMsg:
		if m.pending > 0 {
			m.pending--
		}
		if msg.err == nil {
			m.log = append(m.log, line{from: fromBot, text: chat.PlainText(string(msg.reply.HTML))})
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "shift+tab":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "tab":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case "enter":
			text := strings.TrimSpace(string(m.input))
			if text == "" {
				return m.send(m.options[m.cursor], true)
			}
			m.input = m.input[:0]
			return m.send(text, false)
		default:
			if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
				break
			}
			runes := msg.Runes
			if msg.Type == tea.KeySpace {
				runes = []rune{' '}
			}
			// a lone digit on an empty line picks that quick option
			if len(m.input) == 0 && len(runes) == 1 && unicode.IsDigit(runes[0]) {
				if i := int(runes[0] - '1'); i >= 0 && i < len(m.options) {
					m.cursor = i
					return m.send(m.options[i], true)
				}
			}
			if len(m.input)+len(runes) <= maxInputRunes {
				m.input = append(m.input, runes...)
			}
		}
	}
	return m, nil
}

// send echoes text and starts the delayed reply.
func (m model) send(text string, quick bool) (tea.Model, tea.Cmd) {
	m.log = append(m.log, line{from: fromVisitor, text: text})
	m.pending++
	msg := chat.Message{Text: text, Quick: quick}
	ctx, r := m.ctx, m.responder
	return m, func() tea.Msg {
		reply, err := r.Answer(ctx, msg)
		return replyMsg{reply: reply, err: err}
	}
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render(m.name+" Assistant") + "\n\n")

	bot := m.styles.bot
	if m.width > 4 {
		bot = bot.Width(m.width - 2)
	}
	for _, l := range m.log {
		if l.from == fromVisitor {
			b.WriteString(m.styles.visitor.Render("you: "+l.text) + "\n")
			continue
		}
		b.WriteString(bot.Render(l.text) + "\n\n")
	}
	if m.pending > 0 {
		b.WriteString(m.styles.muted.Render("  typing…") + "\n\n")
	}

	for i, opt := range m.options {
		label := fmt.Sprintf("%d. %s", i+1, opt)
		if i == m.cursor {
			b.WriteString(m.styles.active.Render("› "+label) + "\n")
		} else {
			b.WriteString(m.styles.option.Render("  "+label) + "\n")
		}
	}
	b.WriteString("\n" + m.styles.prompt.Render("> ") + string(m.input) + "\n")
	b.WriteString(m.styles.muted.Render("enter send · ↑/↓ pick option · 1-6 quick reply · esc quit"))
	return b.String()
}
