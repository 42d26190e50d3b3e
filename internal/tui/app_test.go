package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/riegum-client/internal/logger"
	"github.com/MKhiriev/riegum-client/models"
)

// stubPage records what the router delivers to it.
type stubPage struct {
	name  string
	inits int
	got   []tea.Msg
}

func (s *stubPage) Init() tea.Cmd { s.inits++; return nil }

func (s *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}

func (s *stubPage) View() string { return s.name }

type fakeBackground struct {
	mu          sync.Mutex
	runs, stops int
}

func (f *fakeBackground) Run(context.Context) {
	f.mu.Lock()
	f.runs++
	f.mu.Unlock()
}

func (f *fakeBackground) Stop() {
	f.mu.Lock()
	f.stops++
	f.mu.Unlock()
}

// runCmd executes cmd and every command of a batch, returning the messages
// they produce.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func newTestRouter(t *testing.T, start string) (rootModel, *TUI, *fakeBackground, map[string]*stubPage) {
	t.Helper()

	ui := New(nil, models.NewAppBuildInfo("1.0.0", "2026-10-19", "abc123"), logger.Nop())
	bg := &fakeBackground{}
	ui.SetBackground(bg)

	stubs := map[string]*stubPage{}
	pages := map[string]tea.Model{}
	for _, p := range []string{HomePath, LoginPath, RegisterPath, DashboardPath, DetailPath} {
		stubs[p] = &stubPage{name: p}
		pages[p] = stubs[p]
	}

	return newRootModel(context.Background(), ui, pages, start), ui, bg, stubs
}

func update(t *testing.T, r rootModel, msg tea.Msg) (rootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(rootModel)
	require.True(t, ok)
	return root, cmd
}

func TestTUI_NavigateBeforeRunMovesStartPage(t *testing.T) {
	ui := New(nil, models.AppBuildInfo{}, logger.Nop())
	assert.Equal(t, HomePath, ui.Location())

	ui.Navigate(LoginPath)
	assert.Equal(t, LoginPath, ui.Location())
}

func TestRootModel_UnknownStartFallsBackHome(t *testing.T) {
	r, ui, _, _ := newTestRouter(t, "/nowhere/")
	assert.Equal(t, HomePath, r.path)
	assert.Equal(t, HomePath, ui.Location())
}

func TestRootModel_NavigateSwitchesPageAndLocation(t *testing.T) {
	r, ui, _, stubs := newTestRouter(t, HomePath)

	r, _ = update(t, r, NavigateTo{Path: LoginPath})
	assert.Equal(t, LoginPath, r.path)
	assert.Equal(t, LoginPath, ui.Location())
	assert.Equal(t, 1, stubs[LoginPath].inits)
	assert.Equal(t, LoginPath, r.View())

	r, _ = update(t, r, NavigateTo{Path: "/missing/"})
	assert.Equal(t, LoginPath, r.path)
}

func TestRootModel_PayloadDeliveredAfterInit(t *testing.T) {
	r, _, _, stubs := newTestRouter(t, DashboardPath)

	r, cmd := update(t, r, NavigateTo{Path: DetailPath, Payload: openPlantMsg{id: 7}})
	for _, msg := range runCmd(cmd) {
		r, _ = update(t, r, msg)
	}

	assert.Equal(t, 1, stubs[DetailPath].inits)
	assert.Contains(t, stubs[DetailPath].got, tea.Msg(openPlantMsg{id: 7}))
}

func TestRootModel_BackgroundFollowsPrivatePages(t *testing.T) {
	r, _, bg, _ := newTestRouter(t, HomePath)

	runCmd(r.Init())
	assert.Equal(t, 0, bg.runs)

	r, cmd := update(t, r, NavigateTo{Path: DashboardPath})
	runCmd(cmd)
	assert.Equal(t, 1, bg.runs)

	// moving between private pages keeps the jobs running
	r, cmd = update(t, r, NavigateTo{Path: DetailPath})
	runCmd(cmd)
	assert.Equal(t, 1, bg.runs)
	assert.Equal(t, 0, bg.stops)

	r, _ = update(t, r, dueMsg{plants: []models.Plant{{PlantInput: models.PlantInput{Name: "Menta"}}}})
	assert.Contains(t, r.View(), "Necesitan riego: Menta")

	// a forced redirect to the login page stops them
	r, cmd = update(t, r, NavigateTo{Path: LoginPath})
	runCmd(cmd)
	assert.Equal(t, 1, bg.stops)
	assert.Empty(t, r.dueLine)
	assert.NotContains(t, r.View(), "Necesitan riego")
}

func TestRootModel_InitStartsBackgroundOnPrivateStart(t *testing.T) {
	r, _, bg, stubs := newTestRouter(t, DashboardPath)

	runCmd(r.Init())
	assert.Equal(t, 1, bg.runs)
	assert.Equal(t, 1, stubs[DashboardPath].inits)
}

func TestRootModel_BuildInfoOnlyOnHome(t *testing.T) {
	r, _, _, _ := newTestRouter(t, HomePath)

	r, _ = update(t, r, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	assert.Contains(t, r.View(), "abc123")

	r, _ = update(t, r, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, HomePath, r.View())

	r, _ = update(t, r, NavigateTo{Path: LoginPath})
	r, _ = update(t, r, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	assert.NotContains(t, r.View(), "abc123")
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	r, _, _, _ := newTestRouter(t, DashboardPath)

	_, cmd := update(t, r, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestDueLine(t *testing.T) {
	assert.Empty(t, dueLine(nil))

	plants := []models.Plant{
		{PlantInput: models.PlantInput{Name: "Albahaca"}},
		{PlantInput: models.PlantInput{Name: "Menta"}},
	}
	assert.Equal(t, "Necesitan riego: Albahaca, Menta", dueLine(plants))
}

func TestRootModel_PrivateStartDoesNotStartTwice(t *testing.T) {
	r, _, bg, _ := newTestRouter(t, DashboardPath)

	runCmd(r.Init())
	r, cmd := update(t, r, NavigateTo{Path: DetailPath})
	runCmd(cmd)
	assert.Equal(t, 1, bg.runs)

	_, cmd = update(t, r, NavigateTo{Path: HomePath})
	runCmd(cmd)
	assert.Equal(t, 1, bg.stops)
}

func TestRootModel_BackgroundSettlesOnLatestPage(t *testing.T) {
	r, ui, bg, _ := newTestRouter(t, HomePath)

	r, start := update(t, r, NavigateTo{Path: DashboardPath})
	r, stop := update(t, r, NavigateTo{Path: LoginPath})
	_, restart := update(t, r, NavigateTo{Path: DashboardPath})

	// commands run on their own goroutines; here the stop lands last
	runCmd(start)
	runCmd(restart)
	runCmd(stop)

	assert.Equal(t, 1, bg.runs)
	assert.Equal(t, 0, bg.stops)
	assert.True(t, ui.bgRunning)
}
