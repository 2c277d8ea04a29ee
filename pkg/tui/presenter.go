// Package tui renders the settings form and notice modals in the
// terminal with bubbletea.
package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zettelsite/zettelsite-settings/pkg/models"
	"github.com/zettelsite/zettelsite-settings/pkg/session"
)

// Presenter is the terminal implementation of session.Presenter. Each
// Present call runs one full-screen bubbletea program; Notify runs a
// small inline one.
type Presenter struct {
	closed bool
}

func NewPresenter() *Presenter {
	return &Presenter{}
}

func (p *Presenter) Present(values models.Values) (session.Event, models.Values, error) {
	if p.closed {
		return session.EventClosed, nil, errors.New("presenter already closed")
	}

	editor := NewEditorModel(values)
	program := tea.NewProgram(editor, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return session.EventClosed, nil, fmt.Errorf("failed to run settings editor: %w", err)
	}

	m, ok := final.(*EditorModel)
	if !ok {
		return session.EventClosed, nil, fmt.Errorf("unexpected final model %T", final)
	}
	return m.Event(), m.RawValues(), nil
}

func (p *Presenter) Notify(message string) error {
	if p.closed {
		return errors.New("presenter already closed")
	}

	notice := NewNoticeModel(message)
	if _, err := tea.NewProgram(notice).Run(); err != nil {
		return fmt.Errorf("failed to show notice: %w", err)
	}
	return nil
}

// Close releases the presenter. Each Present run tears down its own
// terminal program, so this only marks the session over.
func (p *Presenter) Close() error {
	p.closed = true
	return nil
}
