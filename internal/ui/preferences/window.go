package preferences

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/i18n"
)

// Window handles the preferences UI.
type Window struct {
	window       fyne.Window
	settings     Settings
	onSave       func(Settings)
	chime        *widget.Check
	volume       *widget.Slider
	volumeLabel  *widget.Label
	volumeValue  *widget.Label
	language     *widget.Select
	languageText *widget.Label
	saveButton   *widget.Button
	cancelButton *widget.Button
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, localizer *i18n.Localizer, onSave func(Settings)) *Window {
	window := app.NewWindow(localizer.T(i18n.SettingsTitle))

	chime := widget.NewCheck(localizer.T(i18n.ChimeEnabled), nil)
	volumeValue := widget.NewLabel("")
	volume := widget.NewSlider(0, 1)
	volume.Step = 0.05
	volume.OnChanged = func(value float64) {
		volumeValue.SetText(formatPercent(value))
	}
	language := widget.NewSelect(i18n.Languages(), nil)

	prefs := &Window{
		window:       window,
		onSave:       onSave,
		chime:        chime,
		volume:       volume,
		volumeLabel:  widget.NewLabel(localizer.T(i18n.ChimeVolume)),
		volumeValue:  volumeValue,
		language:     language,
		languageText: widget.NewLabel(localizer.T(i18n.Language)),
		saveButton:   widget.NewButton(localizer.T(i18n.Save), nil),
		cancelButton: widget.NewButton(localizer.T(i18n.Cancel), nil),
	}
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		chime,
		container.NewHBox(prefs.volumeLabel, layout.NewSpacer(), volumeValue),
		volume,
		container.NewHBox(prefs.languageText, language),
	)
	buttons := container.NewHBox(prefs.saveButton, layout.NewSpacer(), prefs.cancelButton)
	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 220))

	prefs.saveButton.OnTapped = prefs.handleSave
	prefs.cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.chime.SetChecked(settings.ChimeEnabled)
	prefs.volume.SetValue(settings.ChimeVolume)
	prefs.volumeValue.SetText(formatPercent(settings.ChimeVolume))
	prefs.language.SetSelected(settings.Language)
}

// SetLocalizer relabels the window.
func (prefs *Window) SetLocalizer(localizer *i18n.Localizer) {
	prefs.window.SetTitle(localizer.T(i18n.SettingsTitle))
	prefs.chime.Text = localizer.T(i18n.ChimeEnabled)
	prefs.chime.Refresh()
	prefs.volumeLabel.SetText(localizer.T(i18n.ChimeVolume))
	prefs.languageText.SetText(localizer.T(i18n.Language))
	prefs.saveButton.SetText(localizer.T(i18n.Save))
	prefs.cancelButton.SetText(localizer.T(i18n.Cancel))
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.ChimeEnabled = prefs.chime.Checked
	settings.ChimeVolume = prefs.volume.Value
	if prefs.language.Selected != "" {
		settings.Language = prefs.language.Selected
	}
	settings = settings.Normalize()

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func formatPercent(value float64) string {
	return fmt.Sprintf("%d%%", int(value*100+0.5))
}
