// Package tui is the terminal front end offering the three import tabs.
package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/soyrandom1/scrambles-matcher/internal/wca"
	"github.com/soyrandom1/scrambles-matcher/pkg/importer"
	"github.com/soyrandom1/scrambles-matcher/pkg/importer/models"
)

// Remote lists and imports competitions from the WCA website.
type Remote interface {
	ManagedCompetitions(ctx context.Context) ([]wca.CompetitionSummary, error)
	ImportFromCompetition(ctx context.Context, competitionID string, load importer.Loader) error
}

// App ties together the import tabs.
type App struct {
	ctx    context.Context
	remote Remote
	load   importer.Loader
	logger *slog.Logger

	tab             importer.Source
	competitions    []wca.CompetitionSummary
	loading         bool
	compCursor      int
	paths           map[importer.Source]string
	showDescription bool
	busy            bool
	status          string

	// crashed ends the session after a malformed import.
	crashed error

	imported *models.Competition
	importID string
}

// New creates the app. remote may be nil when no WCA account is configured.
// load is called with every imported competition.
func New(ctx context.Context, remote Remote, load importer.Loader, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		ctx:    ctx,
		remote: remote,
		load:   load,
		logger: logger,
		tab:    importer.SourceWCA,
		paths:  make(map[importer.Source]string),
	}
}

// Tab returns the active import tab.
func (a *App) Tab() importer.Source {
	return a.tab
}

// Imported returns the last imported competition, or nil.
func (a *App) Imported() *models.Competition {
	return a.imported
}

// Crashed returns the error that ended the session, or nil.
func (a *App) Crashed() error {
	return a.crashed
}

func (a *App) Init() tea.Cmd {
	if a.remote == nil {
		return nil
	}
	a.loading = true
	return a.loadCompetitions()
}

func (a *App) loadCompetitions() tea.Cmd {
	return func() tea.Msg {
		list, err := a.remote.ManagedCompetitions(a.ctx)
		if err != nil {
			return competitionsErrMsg{err}
		}
		return competitionsMsg(list)
	}
}

func (a *App) remoteImportCmd(c wca.CompetitionSummary) tea.Cmd {
	return func() tea.Msg {
		done := importDoneMsg{source: importer.SourceWCA, label: c.ID}
		done.err = a.remote.ImportFromCompetition(a.ctx, c.ID, func(comp *models.Competition) {
			done.comp = comp
		})
		return done
	}
}

func (a *App) fileImportCmd(source importer.Source, path string) tea.Cmd {
	return func() tea.Msg {
		done := importDoneMsg{source: source, label: path}
		done.err = importer.ImportFile(path, source,
			func(comp *models.Competition) { done.comp = comp },
			func(message string) { done.alert = message },
		)
		return done
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if a.crashed != nil {
			return a.handleCrashedKey(m)
		}
		return a.handleKey(m)
	case competitionsMsg:
		a.loading = false
		a.competitions = []wca.CompetitionSummary(m)
		if a.compCursor >= len(a.competitions) {
			a.compCursor = 0
		}
	case competitionsErrMsg:
		a.loading = false
		a.status = "error: " + m.Error()
	case importDoneMsg:
		a.finishImport(m)
	}
	return a, nil
}

func (a *App) finishImport(m importDoneMsg) {
	a.busy = false
	id := uuid.NewString()
	logger := a.logger.With(
		slog.String("import_id", id),
		slog.String("source", string(m.source)),
		slog.String("input", m.label),
	)

	switch {
	case m.alert != "":
		logger.Warn("import read failed", slog.Any("error", m.err))
		a.status = m.alert
	case errors.Is(m.err, importer.ErrMalformedInput):
		logger.Error("import crashed", slog.Any("error", m.err))
		a.crashed = m.err
	case m.err != nil:
		logger.Error("import failed", slog.Any("error", m.err))
		a.status = "error: " + m.err.Error()
	case m.comp != nil:
		logger.Info("import finished",
			slog.Int("events", len(m.comp.Events)),
			slog.Int("persons", len(m.comp.Persons)),
		)
		a.imported = m.comp
		a.importID = id
		a.status = ""
		if a.load != nil {
			a.load(m.comp)
		}
	}
}

func (a *App) handleCrashedKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c", "esc":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "tab":
		a.selectTab(a.tabOffset(1))
		return a, nil
	case "shift+tab":
		a.selectTab(a.tabOffset(-1))
		return a, nil
	}

	// A path being typed owns the printable keys.
	if a.tab != importer.SourceWCA && a.paths[a.tab] != "" {
		return a.handlePathKey(m)
	}

	switch m.String() {
	case "q":
		return a, tea.Quit
	case "1", "2", "3":
		a.selectTab(importer.Sources[int(m.String()[0]-'1')])
		return a, nil
	case "left":
		a.selectTab(a.tabOffset(-1))
		return a, nil
	case "right":
		a.selectTab(a.tabOffset(1))
		return a, nil
	case "?":
		a.showDescription = !a.showDescription
		return a, nil
	}

	if a.tab == importer.SourceWCA {
		return a.handleCompetitionsKey(m)
	}
	return a.handlePathKey(m)
}

func (a *App) handleCompetitionsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "up", "k":
		if a.compCursor > 0 {
			a.compCursor--
		}
	case "down", "j":
		if a.compCursor < len(a.competitions)-1 {
			a.compCursor++
		}
	case "r":
		if a.remote != nil && !a.loading {
			a.loading = true
			a.status = ""
			return a, a.loadCompetitions()
		}
	case "enter":
		if a.busy || a.loading || len(a.competitions) == 0 {
			return a, nil
		}
		a.busy = true
		a.status = "importing..."
		return a, a.remoteImportCmd(a.competitions[a.compCursor])
	}
	return a, nil
}

func (a *App) handlePathKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	path := a.paths[a.tab]
	switch m.Type {
	case tea.KeyEsc:
		path = ""
		a.status = ""
	case tea.KeyEnter:
		path = strings.TrimSpace(path)
		if path == "" {
			a.status = "enter a " + a.tab.Accept() + " path"
			return a, nil
		}
		if a.busy {
			return a, nil
		}
		a.busy = true
		a.status = "importing..."
		return a, a.fileImportCmd(a.tab, path)
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(path) > 0 {
			runes := []rune(path)
			path = string(runes[:len(runes)-1])
		}
	case tea.KeySpace:
		path += " "
	case tea.KeyRunes:
		path += string(m.Runes)
	}
	a.paths[a.tab] = path
	return a, nil
}

func (a *App) selectTab(tab importer.Source) {
	a.tab = tab
	a.status = ""
}

func (a *App) tabOffset(delta int) importer.Source {
	n := len(importer.Sources)
	for i, src := range importer.Sources {
		if src == a.tab {
			return importer.Sources[((i+delta)%n+n)%n]
		}
	}
	return importer.SourceWCA
}

// messages
type competitionsMsg []wca.CompetitionSummary

type competitionsErrMsg struct{ error }

type importDoneMsg struct {
	source importer.Source
	label  string
	comp   *models.Competition
	alert  string
	err    error
}
