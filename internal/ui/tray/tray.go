package tray

import (
	"fyne.io/fyne/v2"

	"pomodoro/internal/core/model"
	"pomodoro/internal/i18n"
)

// App is the part of desktop.App the tray needs.
type App interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggle      func()
	OnReset       func()
	OnPreferences func()
	OnQuit        func()
}

// Icons are shown per phase.
type Icons struct {
	Work  fyne.Resource
	Break fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app       App
	callbacks Callbacks
	icons     Icons
	localizer *i18n.Localizer
	state     model.State
	phaseSet  bool
	menu      *fyne.Menu

	statusItem *fyne.MenuItem
	showItem   *fyne.MenuItem
	toggleItem *fyne.MenuItem
	resetItem  *fyne.MenuItem
	prefsItem  *fyne.MenuItem
	quitItem   *fyne.MenuItem
}

// New creates a tray manager with the provided callbacks.
func New(app App, localizer *i18n.Localizer, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		icons:     icons,
		localizer: localizer,
		state:     model.Initial(),
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.showItem = fyne.NewMenuItem("", func() { invoke(manager.callbacks.OnShow) })
	manager.toggleItem = fyne.NewMenuItem("", func() { invoke(manager.callbacks.OnToggle) })
	manager.resetItem = fyne.NewMenuItem("", func() { invoke(manager.callbacks.OnReset) })
	manager.prefsItem = fyne.NewMenuItem("", func() { invoke(manager.callbacks.OnPreferences) })
	manager.quitItem = fyne.NewMenuItem("", func() { invoke(manager.callbacks.OnQuit) })
	manager.quitItem.IsQuit = true

	manager.menu = fyne.NewMenu("Pomodoro",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.showItem,
		manager.toggleItem,
		manager.resetItem,
		fyne.NewMenuItemSeparator(),
		manager.prefsItem,
		manager.quitItem,
	)
	manager.Render(manager.state)
	return manager
}

// Render updates labels and icon for state.
func (manager *Manager) Render(state model.State) {
	phaseChanged := !manager.phaseSet || manager.state.Phase != state.Phase
	manager.state = state
	manager.phaseSet = true
	if phaseChanged {
		manager.applyIcon()
	}
	manager.relabel()
}

// SetLocalizer relabels the menu.
func (manager *Manager) SetLocalizer(localizer *i18n.Localizer) {
	manager.localizer = localizer
	manager.relabel()
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

func (manager *Manager) relabel() {
	localizer := manager.localizer
	title := i18n.FocusTime
	if manager.state.Phase == model.PhaseBreak {
		title = i18n.BreakTime
	}
	status := localizer.T(i18n.Status, localizer.T(title), manager.state.Clock())
	if !manager.state.Running && manager.state.Remaining != manager.state.Phase.Duration() {
		status = localizer.T(i18n.Paused, status)
	}
	manager.statusItem.Label = status

	manager.showItem.Label = localizer.T(i18n.ShowWindow)
	if manager.state.Running {
		manager.toggleItem.Label = localizer.T(i18n.Pause)
	} else {
		manager.toggleItem.Label = localizer.T(i18n.Start)
	}
	manager.resetItem.Label = localizer.T(i18n.Reset)
	manager.prefsItem.Label = localizer.T(i18n.Preferences)
	manager.quitItem.Label = localizer.T(i18n.Quit)

	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu)
	}
}

func (manager *Manager) applyIcon() {
	if manager.app == nil {
		return
	}
	icon := manager.icons.Work
	if manager.state.Phase == model.PhaseBreak {
		icon = manager.icons.Break
	}
	if icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func invoke(handler func()) {
	if handler != nil {
		handler()
	}
}
