package session

import (
	"errors"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/zettelsite/zettelsite-settings/pkg/files"
	"github.com/zettelsite/zettelsite-settings/pkg/models"
)

// scriptedPresenter plays back a fixed sequence of Present results and
// records every interaction.
type scriptedPresenter struct {
	steps []scriptedStep

	presented []models.Values
	notices   []string
	closed    int
}

type scriptedStep struct {
	event Event
	raw   models.Values
	err   error
}

func (p *scriptedPresenter) Present(values models.Values) (Event, models.Values, error) {
	p.presented = append(p.presented, values.Clone())
	if len(p.steps) == 0 {
		return EventClosed, nil, errors.New("scripted presenter exhausted")
	}
	step := p.steps[0]
	p.steps = p.steps[1:]
	return step.event, step.raw, step.err
}

func (p *scriptedPresenter) Notify(message string) error {
	p.notices = append(p.notices, message)
	return nil
}

func (p *scriptedPresenter) Close() error {
	p.closed++
	return nil
}

func chdirTemp(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldWd) })
	os.Chdir(tempDir)
}

var fixedNow = time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

func newTestSession(p Presenter) *Session {
	s := New(p, nil)
	s.now = func() time.Time { return fixedNow }
	return s
}

func validValues() models.Values {
	v := models.DefaultSettings(fixedNow)
	v["zettelkasten path"] = "/home/me/zk"
	v["site path"] = "/home/me/site"
	v["site title"] = "My Zettelkasten"
	return v
}

func TestLoadReturnsPersistedSettings(t *testing.T) {
	chdirTemp(t)

	want := validValues()
	if err := files.WriteSettings(want); err != nil {
		t.Fatalf("Failed to seed settings file: %v", err)
	}

	s := newTestSession(&scriptedPresenter{})
	got, err := s.Load(UseDefaults)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load: expected %v, got %v", want, got)
	}
}

func TestLoadMissingFileUseDefaults(t *testing.T) {
	chdirTemp(t)

	s := newTestSession(&scriptedPresenter{})
	got, err := s.Load(UseDefaults)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := models.DefaultSettings(fixedNow)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load with missing file: expected defaults %v, got %v", want, got)
	}
}

func TestLoadEmptyObjectUseDefaults(t *testing.T) {
	chdirTemp(t)

	if err := os.WriteFile(files.SettingsFile, []byte("{}"), 0644); err != nil {
		t.Fatalf("Failed to seed settings file: %v", err)
	}

	s := newTestSession(&scriptedPresenter{})
	got, err := s.Load(UseDefaults)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, models.DefaultSettings(fixedNow)) {
		t.Errorf("Load with empty object should return defaults, got %v", got)
	}
}

func TestLoadInvalidFallback(t *testing.T) {
	chdirTemp(t)

	s := newTestSession(&scriptedPresenter{})
	_, err := s.Load(Fallback("bogus"))
	if !errors.Is(err, ErrInvalidFallback) {
		t.Errorf("Expected ErrInvalidFallback, got %v", err)
	}
}

func TestLoadInvalidFallbackIgnoredWhenFileExists(t *testing.T) {
	chdirTemp(t)

	if err := files.WriteSettings(validValues()); err != nil {
		t.Fatalf("Failed to seed settings file: %v", err)
	}

	// The fallback is only consulted when the file is missing or empty.
	s := newTestSession(&scriptedPresenter{})
	if _, err := s.Load(Fallback("bogus")); err != nil {
		t.Errorf("Load should succeed without consulting the fallback, got %v", err)
	}
}

func TestLoadPropagatesMalformedJSON(t *testing.T) {
	chdirTemp(t)

	if err := os.WriteFile(files.SettingsFile, []byte(`{"site title"`), 0644); err != nil {
		t.Fatalf("Failed to seed settings file: %v", err)
	}

	s := newTestSession(&scriptedPresenter{})
	_, err := s.Load(UseDefaults)
	if err == nil {
		t.Fatal("Expected malformed JSON to propagate, got nil error")
	}
	if errors.Is(err, ErrInvalidFallback) {
		t.Error("Malformed JSON must not be reported as an invalid fallback")
	}
}

func TestLoadPromptUserRunsSession(t *testing.T) {
	chdirTemp(t)

	submitted := validValues()
	p := &scriptedPresenter{steps: []scriptedStep{{event: EventSave, raw: submitted}}}
	s := newTestSession(p)

	got, err := s.Load(PromptUser)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, submitted) {
		t.Errorf("Load with PromptUser should return the session result, got %v", got)
	}

	// The form should have been seeded with defaults.
	if len(p.presented) != 1 {
		t.Fatalf("Expected 1 presentation, got %d", len(p.presented))
	}
	if !reflect.DeepEqual(p.presented[0], models.DefaultSettings(fixedNow)) {
		t.Errorf("Prompt should be seeded with defaults, got %v", p.presented[0])
	}

	persisted, err := files.ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings after prompt failed: %v", err)
	}
	if !reflect.DeepEqual(persisted, submitted) {
		t.Errorf("Prompted settings should be persisted, got %v", persisted)
	}
}

func TestRunSaveFiltersAndPersists(t *testing.T) {
	chdirTemp(t)

	submitted := validValues()
	raw := submitted.Clone()
	raw["ActiveTab"] = "general"
	raw["FocusIndex"] = "2"
	raw["0"] = "browse"

	p := &scriptedPresenter{steps: []scriptedStep{{event: EventSave, raw: raw}}}
	s := newTestSession(p)

	got, err := s.Run(validValues())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !reflect.DeepEqual(got, submitted) {
		t.Errorf("Run should return the filtered mapping %v, got %v", submitted, got)
	}

	persisted, err := files.ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if !reflect.DeepEqual(persisted, submitted) {
		t.Errorf("Persisted mapping should be filtered: %v", persisted)
	}
	if p.closed != 1 {
		t.Errorf("Close should be called exactly once, got %d", p.closed)
	}
	if len(p.notices) != 0 {
		t.Errorf("No notices expected, got %v", p.notices)
	}
}

func TestRunCancelReturnsValuesWithoutSaving(t *testing.T) {
	chdirTemp(t)

	before := validValues()
	before["site title"] = "Before"
	if err := files.WriteSettings(before); err != nil {
		t.Fatalf("Failed to seed settings file: %v", err)
	}

	edited := validValues()
	edited["site title"] = "Edited but cancelled"
	raw := edited.Clone()
	raw["ActiveTab"] = "general"

	p := &scriptedPresenter{steps: []scriptedStep{{event: EventCancel, raw: raw}}}
	s := newTestSession(p)

	got, err := s.Run(before)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Cancel still returns the filtered values to the caller.
	if !reflect.DeepEqual(got, edited) {
		t.Errorf("Cancel should return the filtered input %v, got %v", edited, got)
	}

	// But the persisted file is untouched.
	persisted, err := files.ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if !reflect.DeepEqual(persisted, before) {
		t.Errorf("Cancel must not persist: expected %v, got %v", before, persisted)
	}
	if p.closed != 1 {
		t.Errorf("Close should be called exactly once, got %d", p.closed)
	}
}

func TestRunWindowCloseSkipsSave(t *testing.T) {
	chdirTemp(t)

	edited := validValues()
	p := &scriptedPresenter{steps: []scriptedStep{{event: EventClosed, raw: edited.Clone()}}}
	s := newTestSession(p)

	got, err := s.Run(validValues())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !reflect.DeepEqual(got, edited) {
		t.Errorf("Window close should still return the filtered values, got %v", got)
	}

	if _, err := files.ReadSettings(); !errors.Is(err, files.ErrNoSettings) {
		t.Errorf("Window close must not create the settings file, got %v", err)
	}
}

func TestRunBlankFieldRetry(t *testing.T) {
	chdirTemp(t)

	blank := validValues()
	blank["site title"] = ""
	complete := validValues()
	complete["site title"] = "Second Try"

	p := &scriptedPresenter{steps: []scriptedStep{
		{event: EventSave, raw: blank.Clone()},
		{event: EventSave, raw: complete.Clone()},
	}}
	s := newTestSession(p)

	got, err := s.Run(validValues())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(p.notices) != 1 {
		t.Fatalf("Expected exactly one notice, got %d: %v", len(p.notices), p.notices)
	}
	if p.notices[0] != BlankValueNotice {
		t.Errorf("Notice text: expected %q, got %q", BlankValueNotice, p.notices[0])
	}

	// The retry should be seeded with the rejected (filtered) values.
	if len(p.presented) != 2 {
		t.Fatalf("Expected 2 presentations, got %d", len(p.presented))
	}
	if p.presented[1].Text("site title") != "" {
		t.Errorf("Retry should retain the blank field, got %q", p.presented[1].Text("site title"))
	}

	if !reflect.DeepEqual(got, complete) {
		t.Errorf("Run should return the second submission %v, got %v", complete, got)
	}

	persisted, err := files.ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if !reflect.DeepEqual(persisted, complete) {
		t.Errorf("Persisted mapping should match the second submission, got %v", persisted)
	}
	if p.closed != 1 {
		t.Errorf("Close should be called exactly once, got %d", p.closed)
	}
}

func TestRunCancelWithBlankFieldStillRetries(t *testing.T) {
	chdirTemp(t)

	// Raw values are validated regardless of which event fired, so a
	// cancel with a blank field loops instead of exiting.
	blank := validValues()
	blank["site title"] = ""
	complete := validValues()

	p := &scriptedPresenter{steps: []scriptedStep{
		{event: EventCancel, raw: blank.Clone()},
		{event: EventCancel, raw: complete.Clone()},
	}}
	s := newTestSession(p)

	got, err := s.Run(validValues())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(p.notices) != 1 {
		t.Errorf("Expected one notice, got %d", len(p.notices))
	}
	if !reflect.DeepEqual(got, complete) {
		t.Errorf("Expected the second submission back, got %v", got)
	}
	if _, err := files.ReadSettings(); !errors.Is(err, files.ErrNoSettings) {
		t.Errorf("Cancel must not persist, got %v", err)
	}
}

func TestRunNilInitialLoadsDefaults(t *testing.T) {
	chdirTemp(t)

	p := &scriptedPresenter{steps: []scriptedStep{{event: EventCancel, raw: validValues()}}}
	s := newTestSession(p)

	if _, err := s.Run(nil); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(p.presented) != 1 {
		t.Fatalf("Expected 1 presentation, got %d", len(p.presented))
	}
	if !reflect.DeepEqual(p.presented[0], models.DefaultSettings(fixedNow)) {
		t.Errorf("Nil initial should present defaults, got %v", p.presented[0])
	}
}

func TestRunPresenterErrorStillCloses(t *testing.T) {
	chdirTemp(t)

	presentErr := errors.New("terminal exploded")
	p := &scriptedPresenter{steps: []scriptedStep{{err: presentErr}}}
	s := newTestSession(p)

	_, err := s.Run(validValues())
	if !errors.Is(err, presentErr) {
		t.Errorf("Expected the presenter error to propagate, got %v", err)
	}
	if p.closed != 1 {
		t.Errorf("Close should be called even on error, got %d", p.closed)
	}
}

func TestRunSaveErrorPropagates(t *testing.T) {
	chdirTemp(t)

	saveErr := errors.New("disk full")
	p := &scriptedPresenter{steps: []scriptedStep{{event: EventSave, raw: validValues()}}}
	s := newTestSession(p)
	s.save = func(models.Values) error { return saveErr }

	_, err := s.Run(validValues())
	if !errors.Is(err, saveErr) {
		t.Errorf("Expected the save error to propagate, got %v", err)
	}
	if p.closed != 1 {
		t.Errorf("Close should be called even on save error, got %d", p.closed)
	}
}
