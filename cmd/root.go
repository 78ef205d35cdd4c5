package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"pomodoro/internal/audio"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/i18n"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/console"
	"pomodoro/internal/ui/preferences"
	"pomodoro/resources"
)

type options struct {
	logLevel string
	noChime  bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "pomodoro",
		Short:         "A work/break countdown timer",
		Long:          "Pomodoro counts down 25 minute work phases and 5 minute breaks, chiming on every switch.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			if err := runGUI(logger, *opts); err != nil {
				logger.Error().Err(err).Msg("pomodoro exited")
				return err
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.noChime, "no-chime", false, "never play the phase change chime")

	root.AddCommand(&cobra.Command{
		Use:   "console",
		Short: "Run the timer in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runConsole(ctx, logger, *opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	})

	return root
}

func newLogger(out io.Writer, level string) (zerolog.Logger, error) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level %q: %w", level, err)
	}
	if parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}).
		Level(parsed).
		With().
		Timestamp().
		Str("app", appName).
		Logger(), nil
}

// loadSettings returns the stored preferences, falling back to defaults
// when the settings file is unavailable.
func loadSettings(logger zerolog.Logger) (preferences.Settings, *storage.SettingsStore) {
	store, err := storage.NewUserSettingsStore(appName)
	if err != nil {
		logger.Warn().Err(err).Msg("settings unavailable, using defaults")
		return preferences.DefaultSettings(), nil
	}
	settings, err := store.Load()
	if err != nil {
		logger.Warn().Err(err).Str("path", store.Path()).Msg("load settings")
	}
	return settings, store
}

func newChime(logger zerolog.Logger, opts options, settings preferences.Settings) *audio.Player {
	return audio.NewPlayer(resources.Chime(), audio.Options{
		Enabled: settings.ChimeEnabled && !opts.noChime,
		Volume:  settings.ChimeVolume,
		Logger:  logger.With().Str("component", "audio").Logger(),
	})
}

func logEvents(logger zerolog.Logger, event timekeeper.Event) {
	switch event.Type {
	case timekeeper.EventExpired:
		logger.Info().
			Str("ended", string(event.Ended)).
			Str("next", string(event.State.Phase)).
			Int("sessions", event.State.CompletedSessions).
			Msg("phase complete")
	case timekeeper.EventStateChange:
		logger.Debug().
			Str("phase", string(event.State.Phase)).
			Bool("running", event.State.Running).
			Int("remaining", event.State.Remaining).
			Msg("timer state changed")
	}
}

func runConsole(ctx context.Context, logger zerolog.Logger, opts options, in io.Reader, out io.Writer) error {
	settings, _ := loadSettings(logger)
	keeper := timekeeper.New(timekeeper.Options{
		Ticks:    timekeeper.NewIntervalTicker(time.Second),
		Notifier: newChime(logger, opts, settings),
	})
	defer keeper.Close()

	events := keeper.Subscribe(8)
	go func() {
		for event := range events {
			logEvents(logger, event)
		}
	}()

	return console.New(keeper, i18n.New(settings.Language), in, out).Run(ctx)
}
