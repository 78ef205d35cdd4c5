package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const (
	logoDir  = "logo/"
	soundDir = "sounds/"

	WorkIcon  = "icon_work.svg"
	BreakIcon = "icon_break.svg"
	ChimeFile = "chime.wav"
)

//go:embed logo/*.svg
var logoFS embed.FS

//go:embed sounds/*.wav
var soundFS embed.FS

var logoCache sync.Map

// Logo returns a Fyne resource for the given logo file.
func Logo(fileName string) (fyne.Resource, error) {
	path := logoDir + fileName
	if cached, ok := logoCache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := logoFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(fileName, data)
	logoCache.Store(path, resource)
	return resource, nil
}

// MustLogo returns a Fyne resource or panics on error.
func MustLogo(fileName string) fyne.Resource {
	resource, err := Logo(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

// Chime returns the raw WAV bytes of the phase transition chime.
func Chime() []byte {
	data, err := soundFS.ReadFile(soundDir + ChimeFile)
	if err != nil {
		panic(fmt.Errorf("load chime: %w", err))
	}
	return data
}
