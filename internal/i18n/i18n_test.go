package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnglishFallback(t *testing.T) {
	for _, code := range []string{"en", "", "not a tag", "ja"} {
		localizer := New(code)
		assert.Equal(t, "en", localizer.Code(), code)
		assert.Equal(t, "Focus Time", localizer.T(FocusTime))
		assert.Equal(t, "Session 3", localizer.T(Session, 3))
	}
}

func TestRussian(t *testing.T) {
	localizer := New("ru-RU")
	assert.Equal(t, "ru", localizer.Code())
	assert.Equal(t, "Перерыв", localizer.T(BreakTime))
	assert.Equal(t, "Сессия 2", localizer.T(Session, 2))
	assert.Equal(t, "Перерыв 04:59", localizer.T(Status, localizer.T(BreakTime), "04:59"))
}

func TestSupported(t *testing.T) {
	assert.Equal(t, []string{"en", "ru"}, Languages())
	assert.True(t, Supported("ru"))
	assert.False(t, Supported("de"))
}
