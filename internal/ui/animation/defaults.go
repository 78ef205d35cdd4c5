package animation

import "time"

// DefaultConfig matches the one second transition of the progress ring.
func DefaultConfig() Config {
	return Config{
		Duration:      time.Second,
		FrameInterval: time.Second / 30,
	}
}
