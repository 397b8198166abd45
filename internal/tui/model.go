// Package tui is a terminal front end for a review session.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/conorfennell/memora/internal/domain"
	"github.com/conorfennell/memora/internal/session"
	"github.com/conorfennell/memora/internal/srs"
)

type gradedMsg struct {
	cardID string
	grade  domain.Grade
	state  srs.State
	err    error
}

type switchedMsg struct {
	cards []domain.Card
	err   error
}

// Model drives one session. Commands only talk to the store; the session
// itself is changed in Update, when their results arrive. Keys are ignored
// while a command is in flight.
type Model struct {
	ctx      context.Context
	sess     *session.Session
	deckName string
	keys     keyMap
	help     help.Model
	now      func() time.Time

	flipped bool
	busy    bool
	shownAt time.Time
	status  string
	err     error
}

// New returns a model over sess. ctx is used for every review submitted.
func New(ctx context.Context, sess *session.Session, deckName string) Model {
	m := Model{
		ctx:      ctx,
		sess:     sess,
		deckName: deckName,
		keys:     defaultKeyMap(),
		help:     help.New(),
		now:      time.Now,
	}
	m.shownAt = m.now()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case gradedMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if err := m.sess.Advance(msg.cardID, msg.grade); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.status = fmt.Sprintf("%s: next review in %s", msg.grade, srs.FormatInterval(msg.state.Interval))
		m.nextCard()

	case switchedMsg:
		m.busy = false
		if msg.err == nil {
			msg.err = m.sess.StartOverLearn(msg.cards)
		}
		m.err = msg.err
		if msg.err == nil {
			m.status = ""
			m.nextCard()
		}

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		if m.sess.Done() {
			if key.Matches(msg, m.keys.OverLearn) {
				m.busy = true
				return m, m.switchCmd()
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Flip):
			m.flipped = !m.flipped
		case key.Matches(msg, m.keys.Skip):
			if err := m.sess.Skip(); err != nil {
				m.err = err
			}
			m.status = "skipped"
			m.nextCard()
		case m.flipped && key.Matches(msg, m.keys.Again):
			return m.grade(domain.Again)
		case m.flipped && key.Matches(msg, m.keys.Hard):
			return m.grade(domain.Hard)
		case m.flipped && key.Matches(msg, m.keys.Good):
			return m.grade(domain.Good)
		case m.flipped && key.Matches(msg, m.keys.Easy):
			return m.grade(domain.Easy)
		}
	}
	return m, nil
}

func (m *Model) nextCard() {
	m.flipped = false
	m.shownAt = m.now()
}

func (m Model) grade(g domain.Grade) (tea.Model, tea.Cmd) {
	card, ok := m.sess.Current()
	if !ok {
		return m, nil
	}
	m.busy = true
	ctx, sess := m.ctx, m.sess
	elapsed := m.now().Sub(m.shownAt)
	return m, func() tea.Msg {
		st, err := sess.Submit(ctx, card.ID, g, elapsed)
		return gradedMsg{cardID: card.ID, grade: g, state: st, err: err}
	}
}

func (m Model) switchCmd() tea.Cmd {
	ctx, sess := m.ctx, m.sess
	return func() tea.Msg {
		cards, err := sess.OverLearnCards(ctx)
		return switchedMsg{cards: cards, err: err}
	}
}

func (m Model) View() string {
	var b strings.Builder
	i, total := m.sess.Position()
	fmt.Fprintf(&b, "%s (%s)", m.deckName, m.sess.Mode())
	if !m.sess.Done() {
		fmt.Fprintf(&b, "  %d/%d", i+1, total)
	}
	b.WriteString("\n" + strings.Repeat("-", 40) + "\n\n")

	if card, ok := m.sess.Current(); ok {
		b.WriteString("  " + card.Front + "\n\n")
		if m.flipped {
			b.WriteString(strings.Repeat("-", 20) + "\n\n")
			b.WriteString("  " + card.Back + "\n\n")
			if len(card.Tags) > 0 {
				b.WriteString("  [" + strings.Join(card.Tags, ", ") + "]\n\n")
			}
		}
	} else {
		b.WriteString(summaryView(m.sess.Summary()))
	}

	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	if m.err != nil {
		b.WriteString("error: " + m.err.Error() + "\n")
	}
	b.WriteString("\n")
	if m.sess.Done() {
		b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.OverLearn, m.keys.Quit}))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String() + "\n"
}

func summaryView(s session.Summary) string {
	if s.Total == 0 {
		return "  Nothing to review.\n\n"
	}
	parts := make([]string, 0, len(domain.Grades))
	for _, g := range domain.Grades {
		parts = append(parts, fmt.Sprintf("%s %d", g, s.Grades[g]))
	}
	return fmt.Sprintf("  Reviewed %d of %d, skipped %d.\n  %s\n\n",
		s.Reviewed, s.Total, s.Skipped, strings.Join(parts, "  "))
}

// Run shows the session until the user quits.
func Run(ctx context.Context, sess *session.Session, deckName string) error {
	_, err := tea.NewProgram(New(ctx, sess, deckName), tea.WithContext(ctx)).Run()
	return err
}
