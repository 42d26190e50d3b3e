// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/riegum-client/internal/logger"
	"github.com/MKhiriev/riegum-client/internal/service"
	"github.com/MKhiriev/riegum-client/models"
)

// Background is the set of jobs that run while a user is logged in.
type Background interface {
	Run(ctx context.Context)
	Stop()
}

// TUI is the terminal front end. It implements session.Navigator, so the
// Session Client can move it to the login page when a session ends.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	mu         sync.Mutex
	location   string
	program    *tea.Program
	background Background

	// bgMu serializes Run and Stop; bgRunning is guarded by it.
	bgMu      sync.Mutex
	bgWanted  atomic.Bool
	bgRunning bool
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
		location:  HomePath,
	}
}

// SetBackground registers the jobs started on entering a private page and
// stopped on returning to a public one.
func (t *TUI) SetBackground(b Background) {
	t.mu.Lock()
	t.background = b
	t.mu.Unlock()
}

// Location implements session.Navigator.
func (t *TUI) Location() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.location
}

// Navigate implements session.Navigator. Before Run it only moves the start
// page; while running the switch is delivered to the event loop.
func (t *TUI) Navigate(path string) {
	if !t.send(NavigateTo{Path: path}) {
		t.setLocation(path)
	}
}

// NotifyDue shows the plants that need water in the status line. It is the
// notifier of the watering watch job.
func (t *TUI) NotifyDue(due []models.Plant) {
	t.send(dueMsg{plants: due})
}

// Run shows the UI starting at startPath and blocks until the user quits or
// ctx is cancelled.
func (t *TUI) Run(ctx context.Context, startPath string) error {
	if startPath == "" {
		startPath = t.Location()
	}

	pages := map[string]tea.Model{
		HomePath:      newWelcomeModel(),
		LoginPath:     newLoginModel(ctx, t.services.AuthService),
		RegisterPath:  newRegisterModel(ctx, t.services.AuthService),
		DashboardPath: newDashboardModel(ctx, t.services),
		AddPath:       newPlantFormModel(ctx, t.services.PlantService),
		DetailPath:    newDetailModel(ctx, t.services.PlantService),
		SettingsPath:  newSettingsModel(ctx, t.services.ClimateService, t.services.CalendarService),
	}

	root := newRootModel(ctx, t, pages, startPath)
	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	t.mu.Lock()
	t.program = p
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			t.logger.Info().Msg("ui stopped by context")
			return nil
		}
		return err
	}
	return nil
}

func (t *TUI) send(msg tea.Msg) bool {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p == nil {
		return false
	}
	p.Send(msg)
	return true
}

func (t *TUI) setLocation(path string) {
	t.mu.Lock()
	t.location = path
	t.mu.Unlock()
}

// wantBackground records whether the background should run and returns the
// command that brings it there, or nil when there is no background.
func (t *TUI) wantBackground(ctx context.Context, on bool) tea.Cmd {
	if t.backgroundJobs() == nil {
		return nil
	}

	t.bgWanted.Store(on)
	return func() tea.Msg {
		t.syncBackground(ctx)
		return nil
	}
}

// syncBackground starts or stops the background to match the latest wish.
// Commands may run in any order, so each one applies the newest value
// instead of the one it was created with.
// It runs off the event loop: Stop waits for a poll that may be sending to
// the program.
func (t *TUI) syncBackground(ctx context.Context) {
	t.bgMu.Lock()
	defer t.bgMu.Unlock()

	bg := t.backgroundJobs()
	switch want := t.bgWanted.Load(); {
	case want && !t.bgRunning:
		bg.Run(ctx)
		t.bgRunning = true
	case !want && t.bgRunning:
		bg.Stop()
		t.bgRunning = false
	}
}

func (t *TUI) backgroundJobs() Background {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.background
}
