package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/soyrandom1/scrambles-matcher/pkg/importer"
)

// styles
var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Underline(true)
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	captionStyle     = lipgloss.NewStyle().Faint(true)
	noteStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

const intro = "This tool enables you to assign sets of JSON scrambles generated by TNoodle to a WCIF."

const note = " there is currently no check whatsoever on the imported data. If you import " +
	"incomplete results, or the wrong file in the wrong tab, the import will crash and " +
	"you will have to start over."

var description = []string{
	"You are most likely used to the Workbook Assistant (WA). For a competition where " +
		"everything went well and you have a single JSON scrambles file, this works almost like the WA.",
	"Additions:",
	"  - Scrambles are matched on demand, only rounds without scrambles get newly imported sets.",
	"  - Scrambles can be moved between rounds freely.",
	"  - Multiple Blindfolded and Fewest Moves scramble sheets are split by attempt.",
	"  - No database download and no Java.",
	"Missing feature:",
	"  - No newcomers check. Upload the results to the WCA website first, it validates the competitors.",
}

func (a *App) View() string {
	if a.crashed != nil {
		return a.renderCrashed()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Scrambles Matcher"))
	b.WriteString("\n" + intro + "\n\n")
	b.WriteString(a.renderTabs() + "\n\n")

	switch a.tab {
	case importer.SourceWCIF:
		b.WriteString(a.renderFileTab("Start by importing a JSON file with an existing WCIF."))
	case importer.SourceXLSX:
		b.WriteString(a.renderFileTab("Start by importing a results spreadsheet (e.g. created by Cubecomps or Cubing China)."))
	default:
		b.WriteString(a.renderCompetitions())
	}

	if a.status != "" {
		b.WriteString("\n" + a.status)
	}
	if a.imported != nil {
		b.WriteString("\n" + a.renderImported())
	}

	b.WriteString("\n\n" + noteStyle.Render("Note:") + captionStyle.Render(note))
	if a.showDescription {
		b.WriteString("\n\n" + titleStyle.Render("Description") + "\n" + strings.Join(description, "\n"))
	}
	b.WriteString("\n\n" + a.renderHelp())
	return b.String()
}

func (a *App) renderTabs() string {
	tabs := make([]string, 0, len(importer.Sources))
	for i, src := range importer.Sources {
		label := fmt.Sprintf("%d %s", i+1, src.Label())
		if src == a.tab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a *App) renderCompetitions() string {
	var b strings.Builder
	b.WriteString("Start by importing any competition you manage from the WCA website.\n")

	switch {
	case a.remote == nil:
		b.WriteString("Not signed in. Run `scrambles-matcher login` and set wca.access_token.\n")
	case a.loading:
		b.WriteString("Loading competitions...\n")
	case len(a.competitions) == 0:
		b.WriteString("You don't manage any upcoming or recent competition.\n")
	default:
		for i, c := range a.competitions {
			cursor := "  "
			if i == a.compCursor {
				cursor = "> "
			}
			fmt.Fprintf(&b, "%s%s (%s, %s)\n", cursor, c.Name, c.StartDate, c.CountryISO2)
		}
	}

	b.WriteString(captionStyle.Render("This option will only work if you used a scoretaking platform that " +
		"saves the results in the WCIF on the WCA website (e.g. WCA Live)."))
	return b.String()
}

func (a *App) renderFileTab(intro string) string {
	return fmt.Sprintf("%s\n%s path: %s", intro, strings.ToUpper(strings.TrimPrefix(a.tab.Accept(), ".")), a.paths[a.tab])
}

func (a *App) renderImported() string {
	c := a.imported
	return fmt.Sprintf("Loaded %s: %d events, %d persons (import %s)", c.Name, len(c.Events), len(c.Persons), a.importID)
}

func (a *App) renderHelp() string {
	if a.tab == importer.SourceWCA {
		return "[1-3/tab] Switch tab  [up/down] Select  [enter] Import  [r] Reload  [?] Description  [q] Quit"
	}
	return "[1-3/tab] Switch tab  [enter] Import  [esc] Clear path  [?] Description  [q] Quit"
}

func (a *App) renderCrashed() string {
	return fmt.Sprintf("%s\nThe import crashed: %v\nRestart to start over.\n[q] Quit",
		titleStyle.Render("Scrambles Matcher"), a.crashed)
}
