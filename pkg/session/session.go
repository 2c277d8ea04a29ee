// Package session drives one interactive settings edit: present the
// form, filter the toolkit noise out of the raw result, validate, and
// either persist or loop back with a notice until the user saves,
// cancels, or closes the window.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/zettelsite/zettelsite-settings/pkg/files"
	"github.com/zettelsite/zettelsite-settings/pkg/logger"
	"github.com/zettelsite/zettelsite-settings/pkg/models"
)

// Event identifies what ended one round of the settings form.
type Event string

const (
	EventSave   Event = "save"
	EventCancel Event = "cancel"
	EventClosed Event = "closed" // window closed without save or cancel
)

// Fallback selects what Load does when no settings are persisted.
type Fallback string

const (
	UseDefaults Fallback = "default settings"
	PromptUser  Fallback = "prompt user"
)

// ErrInvalidFallback reports a Fallback value that is neither
// UseDefaults nor PromptUser. This is a programming error; Load returns
// it immediately without retrying.
var ErrInvalidFallback = errors.New("invalid fallback option")

// BlankValueNotice is the modal message shown when validation rejects a
// submission.
const BlankValueNotice = "Each setting must be given a value."

// Presenter is the pluggable presentation boundary. A real
// implementation renders the settings form; tests substitute a scripted
// one.
type Presenter interface {
	// Present renders the form seeded with values and blocks until the
	// user triggers an event. The returned mapping is raw: it contains
	// the schema keys plus whatever bookkeeping entries the toolkit
	// injects, and must be run through models.FilterValues.
	Present(values models.Values) (Event, models.Values, error)

	// Notify shows a blocking modal notice.
	Notify(message string) error

	// Close releases the window resource. The session calls it exactly
	// once, on every exit path.
	Close() error
}

// Session runs settings edit sessions against one Presenter.
type Session struct {
	presenter Presenter
	log       *logr.Logger

	// seams for tests
	now  func() time.Time
	save func(models.Values) error
}

// New returns a Session using the given presenter. A nil log discards
// all output.
func New(presenter Presenter, log *logr.Logger) *Session {
	if log == nil {
		log = logger.GetNoopLogger()
	}
	return &Session{
		presenter: presenter,
		log:       log,
		now:       time.Now,
		save:      files.WriteSettings,
	}
}

// Load returns the persisted settings, falling back when the file is
// missing or empty: UseDefaults returns the hardcoded defaults,
// PromptUser runs a full edit session and returns its result. Read
// failures other than a missing or empty file propagate.
func (s *Session) Load(fallback Fallback) (models.Values, error) {
	settings, err := files.ReadSettings()
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, files.ErrNoSettings) {
		return nil, err
	}

	switch fallback {
	case UseDefaults:
		s.log.V(1).Info("no persisted settings, using defaults")
		return models.DefaultSettings(s.now()), nil
	case PromptUser:
		s.log.V(1).Info("no persisted settings, prompting user")
		return s.Run(nil)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFallback, fallback)
	}
}

// Run presents the settings form and loops until a submission passes
// validation, re-presenting the entered values with a notice after each
// rejection. The accepted mapping is persisted unless the triggering
// event was cancel or a window close, and is returned to the caller
// either way — only persistence is skipped on cancel. A nil or empty
// initial mapping is loaded with the UseDefaults fallback first.
func (s *Session) Run(initial models.Values) (result models.Values, err error) {
	if len(initial) == 0 {
		initial, err = s.Load(UseDefaults)
		if err != nil {
			return nil, err
		}
	}

	defer func() {
		if cerr := s.presenter.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to release settings window: %w", cerr)
		}
	}()

	current := initial
	for {
		event, raw, perr := s.presenter.Present(current)
		if perr != nil {
			return nil, fmt.Errorf("settings window failed: %w", perr)
		}

		filtered := models.FilterValues(raw)
		if !models.Validate(filtered) {
			s.log.V(1).Info("settings rejected", "blank_keys", models.BlankKeys(filtered))
			if nerr := s.presenter.Notify(BlankValueNotice); nerr != nil {
				return nil, fmt.Errorf("failed to show validation notice: %w", nerr)
			}
			current = filtered
			continue
		}

		if event == EventCancel || event == EventClosed {
			s.log.V(1).Info("settings edit ended without saving", "event", string(event))
			return filtered, nil
		}

		if werr := s.save(filtered); werr != nil {
			return nil, werr
		}
		s.log.V(1).Info("settings saved")
		return filtered, nil
	}
}
