package main

import (
	"os"
)

const (
	appName = "Pomodoro"
	appID   = "com.pomodoro.app"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
