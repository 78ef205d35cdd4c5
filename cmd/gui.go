package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/rs/zerolog"

	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/i18n"
	"pomodoro/internal/platform"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/timerview"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"
)

func runGUI(logger zerolog.Logger, opts options) error {
	lock, err := platform.AcquireInstanceLock(appName)
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = lock.Release()
	}()

	settings, store := loadSettings(logger)
	localizer := i18n.New(settings.Language)
	chime := newChime(logger, opts, settings)

	keeper := timekeeper.New(timekeeper.Options{
		Ticks:    timekeeper.NewIntervalTicker(time.Second),
		Notifier: chime,
	})
	defer keeper.Close()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustLogo(resources.WorkIcon))

	view := timerview.New(fyneApp, localizer, timerview.Callbacks{
		OnToggle: keeper.Toggle,
		OnReset:  keeper.Reset,
	})
	defer view.Stop()

	var trayManager *tray.Manager
	prefsWindow := preferences.New(fyneApp, settings, localizer, func(updated preferences.Settings) {
		settings = updated
		chime.Configure(settings.ChimeEnabled && !opts.noChime, settings.ChimeVolume)

		localizer = i18n.New(settings.Language)
		view.SetLocalizer(localizer)
		if trayManager != nil {
			trayManager.SetLocalizer(localizer)
		}

		if store == nil {
			return
		}
		if err := store.Save(settings); err != nil {
			logger.Error().Err(err).Str("path", store.Path()).Msg("save settings")
		}
	})

	window := view.Window()
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, localizer, tray.Icons{
			Work:  resources.MustLogo(resources.WorkIcon),
			Break: resources.MustLogo(resources.BreakIcon),
		}, tray.Callbacks{
			OnShow:        view.Show,
			OnToggle:      keeper.Toggle,
			OnReset:       keeper.Reset,
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
		window.SetCloseIntercept(window.Hide)
	} else {
		logger.Info().Msg("system tray unsupported on this platform")
		window.SetMaster()
	}

	events := keeper.Subscribe(8)
	go func() {
		for event := range events {
			logEvents(logger, event)
			state := event.State
			fyne.Do(func() {
				view.Render(state)
				if trayManager != nil {
					trayManager.Render(state)
				}
			})
		}
	}()

	view.Show()
	fyneApp.Run()
	return nil
}
