package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/riegum-client/internal/session"
	"github.com/MKhiriev/riegum-client/models"
)

// rootModel is a TUI router:
// 1) keeps active page, keyed by path
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages, including forced redirects
// 4) starts and stops background jobs around the private pages
// 5) delegates all other messages to the active page
type rootModel struct {
	ctx   context.Context
	tui   *TUI
	pages map[string]tea.Model

	path    string
	current tea.Model

	backgroundOn  bool
	dueLine       string
	showBuildInfo bool
}

func newRootModel(ctx context.Context, t *TUI, pages map[string]tea.Model, startPath string) rootModel {
	current, ok := pages[startPath]
	if !ok {
		startPath = HomePath
		current = pages[HomePath]
	}
	t.setLocation(startPath)

	return rootModel{
		ctx:     ctx,
		tui:     t,
		pages:   pages,
		path:    startPath,
		current: current,

		backgroundOn: !session.IsPublicPath(startPath),
	}
}

func (r rootModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	if !session.IsPublicPath(r.path) {
		cmds = append(cmds, r.tui.wantBackground(r.ctx, true))
	}
	return tea.Batch(cmds...)
}

func (r rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "v":
			if r.path == HomePath {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg)
	case dueMsg:
		r.dueLine = dueLine(msg.plants)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.path] = updated
	return r, cmd
}

func (r rootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Path]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.path = nav.Path
	r.current = next
	r.tui.setLocation(nav.Path)

	cmds := []tea.Cmd{r.current.Init()}
	if nav.Payload != nil {
		payload := nav.Payload
		cmds = append(cmds, func() tea.Msg { return payload })
	}

	private := !session.IsPublicPath(nav.Path)
	switch {
	case private && !r.backgroundOn:
		r.backgroundOn = true
		cmds = append(cmds, r.tui.wantBackground(r.ctx, true))
	case !private && r.backgroundOn:
		r.backgroundOn = false
		r.dueLine = ""
		cmds = append(cmds, r.tui.wantBackground(r.ctx, false))
	}

	return r, tea.Batch(cmds...)
}

func (r rootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.tui.buildInfo)
	}
	if r.current == nil {
		return renderPage("RIEGUM", "", "")
	}

	view := r.current.View()
	if r.dueLine != "" && !session.IsPublicPath(r.path) {
		view += "\n\n  " + dueStyle.Render(r.dueLine)
	}
	return view
}

func dueLine(plants []models.Plant) string {
	if len(plants) == 0 {
		return ""
	}

	names := make([]string, 0, len(plants))
	for _, p := range plants {
		names = append(names, p.Name)
	}
	return "Necesitan riego: " + strings.Join(names, ", ")
}
