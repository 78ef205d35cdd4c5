package timerview

import (
	"image/color"

	"pomodoro/internal/core/model"
)

var (
	workColor      = color.NRGBA{R: 245, G: 104, B: 61, A: 255}
	workColorEnd   = color.NRGBA{R: 250, G: 116, B: 21, A: 255}
	breakColor     = color.NRGBA{R: 60, G: 221, B: 207, A: 255}
	breakColorEnd  = color.NRGBA{R: 77, G: 191, B: 230, A: 255}
	trackColor     = color.NRGBA{R: 120, G: 120, B: 130, A: 50}
	cardColor      = color.NRGBA{R: 255, G: 255, B: 255, A: 230}
	textColor      = color.NRGBA{R: 30, G: 30, B: 36, A: 255}
	mutedTextColor = color.NRGBA{R: 110, G: 110, B: 120, A: 255}
)

func phaseColors(phase model.Phase) (color.Color, color.Color) {
	if phase == model.PhaseBreak {
		return breakColor, breakColorEnd
	}
	return workColor, workColorEnd
}
