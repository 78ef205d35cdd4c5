// Package console renders the timer on a terminal and reads line commands.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/i18n"
)

// Timer is the part of the TimeKeeper the console drives.
type Timer interface {
	State() model.State
	Subscribe(buffer int) <-chan timekeeper.Event
	Toggle()
	Reset()
}

// Command is one user intent read from input.
type Command int

const (
	CommandNone Command = iota
	CommandToggle
	CommandReset
	CommandQuit
)

// ParseCommand maps an input line to a command.
func ParseCommand(line string) Command {
	if line != "" && strings.TrimSpace(line) == "" {
		return CommandToggle
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "start", "p", "pause", "t", "toggle":
		return CommandToggle
	case "r", "reset":
		return CommandReset
	case "q", "quit", "exit":
		return CommandQuit
	default:
		return CommandNone
	}
}

// Console is a terminal surface for a Timer.
type Console struct {
	timer     Timer
	localizer *i18n.Localizer
	in        io.Reader
	out       io.Writer
}

// New creates a console reading commands from in and writing to out.
func New(timer Timer, localizer *i18n.Localizer, in io.Reader, out io.Writer) *Console {
	return &Console{timer: timer, localizer: localizer, in: in, out: out}
}

// Run renders every event until ctx is done, the input ends, or a quit
// command is read.
func (console *Console) Run(ctx context.Context) error {
	events := console.timer.Subscribe(16)
	commands := make(chan Command)
	readErr := make(chan error, 1)
	go console.readCommands(ctx, commands, readErr)

	fmt.Fprintln(console.out, "commands: [s]tart/pause, [r]eset, [q]uit")
	if err := console.render(console.timer.State(), ""); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			return err
		case command := <-commands:
			switch command {
			case CommandToggle:
				console.timer.Toggle()
			case CommandReset:
				console.timer.Reset()
			case CommandQuit:
				return nil
			}
		case event, ok := <-events:
			if !ok {
				return nil
			}
			note := ""
			if event.Type == timekeeper.EventExpired {
				note = "*"
			}
			if err := console.render(event.State, note); err != nil {
				return err
			}
		}
	}
}

// Line formats the status line for state.
func (console *Console) Line(state model.State) string {
	title := i18n.FocusTime
	if state.Phase == model.PhaseBreak {
		title = i18n.BreakTime
	}
	status := console.localizer.T(i18n.Status, console.localizer.T(title), state.Clock())
	if !state.Running {
		status = console.localizer.T(i18n.Paused, status)
	}
	return fmt.Sprintf("%s %s %3.0f%% | %s",
		status,
		progressBar(state.Progress(), 20),
		state.Progress(),
		console.localizer.T(i18n.Session, state.CompletedSessions),
	)
}

func (console *Console) render(state model.State, note string) error {
	if _, err := fmt.Fprintf(console.out, "%s%s\n", console.Line(state), note); err != nil {
		return fmt.Errorf("write status: %w", err)
	}
	return nil
}

func (console *Console) readCommands(ctx context.Context, commands chan<- Command, readErr chan<- error) {
	scanner := bufio.NewScanner(console.in)
	for scanner.Scan() {
		command := ParseCommand(scanner.Text())
		if command == CommandNone {
			continue
		}
		select {
		case commands <- command:
		case <-ctx.Done():
			return
		}
		if command == CommandQuit {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		readErr <- fmt.Errorf("read commands: %w", err)
		return
	}
	readErr <- nil
}

func progressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
