// Package i18n holds the user-visible strings of the timer surfaces.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	FocusTime   = "Focus Time"
	BreakTime   = "Break Time"
	Session     = "Session %d"
	Start       = "Start"
	Pause       = "Pause"
	Reset       = "Reset"
	ShowWindow  = "Show timer"
	Preferences = "Preferences"
	Quit        = "Quit"
	Status      = "%s %s"
	Paused      = "%s (paused)"

	SettingsTitle = "Pomodoro Settings"
	ChimeEnabled  = "Play chime on phase change"
	ChimeVolume   = "Chime volume"
	Language      = "Language"
	Save          = "Save"
	Cancel        = "Cancel"
)

var supported = []language.Tag{language.English, language.Russian}

var matcher = language.NewMatcher(supported)

var russian = map[string]string{
	FocusTime:     "Время работы",
	BreakTime:     "Перерыв",
	Session:       "Сессия %d",
	Start:         "Старт",
	Pause:         "Пауза",
	Reset:         "Сброс",
	ShowWindow:    "Показать таймер",
	Preferences:   "Настройки",
	Quit:          "Выход",
	Paused:        "%s (пауза)",
	SettingsTitle: "Настройки Pomodoro",
	ChimeEnabled:  "Звуковой сигнал при смене фазы",
	ChimeVolume:   "Громкость сигнала",
	Language:      "Язык",
	Save:          "Сохранить",
	Cancel:        "Отмена",
}

func init() {
	for key, text := range russian {
		if err := message.SetString(language.Russian, key, text); err != nil {
			panic(err)
		}
	}
}

// Localizer renders message keys for one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Localizer for the closest supported language. Unknown or
// malformed codes fall back to English.
func New(code string) *Localizer {
	tag := language.English
	if parsed, err := language.Parse(code); err == nil {
		_, index, confidence := matcher.Match(parsed)
		if confidence != language.No {
			tag = supported[index]
		}
	}
	return &Localizer{tag: tag, printer: message.NewPrinter(tag)}
}

// Languages lists the supported language codes.
func Languages() []string {
	codes := make([]string, 0, len(supported))
	for _, tag := range supported {
		codes = append(codes, tag.String())
	}
	return codes
}

// Supported reports whether code names a supported language exactly.
func Supported(code string) bool {
	for _, tag := range supported {
		if tag.String() == code {
			return true
		}
	}
	return false
}

// Code returns the language code in use.
func (localizer *Localizer) Code() string {
	return localizer.tag.String()
}

// T renders a message key.
func (localizer *Localizer) T(key string, args ...any) string {
	return localizer.printer.Sprintf(key, args...)
}
