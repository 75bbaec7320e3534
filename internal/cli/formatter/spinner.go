package formatter

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var waitFrames = []string{"◐", "◓", "◑", "◒"}

// Planner calls can take tens of seconds; once a wait stops feeling
// instant the indicator appends the elapsed time.
const showElapsedAfter = 2 * time.Second

// Spinner animates a one-line wait indicator for planner calls made
// outside the full TUI. It writes to w so tests can capture the output.
type Spinner struct {
	w       io.Writer
	message string
	quit    chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewSpinner(w io.Writer, message string) *Spinner {
	if w == nil {
		w = os.Stdout
	}
	return &Spinner{
		w:       w,
		message: message,
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start begins the animation. Call Stop to end it.
func (s *Spinner) Start() {
	go s.loop()
}

func (s *Spinner) loop() {
	defer close(s.done)
	startedAt := time.Now()
	ticker := time.NewTicker(120 * time.Millisecond)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-s.quit:
			fmt.Fprint(s.w, "\r\033[K")
			return
		case <-ticker.C:
			line := fmt.Sprintf("\r  %s %s",
				StylePurple.Render(waitFrames[frame%len(waitFrames)]),
				Dim(s.message))
			if waited := time.Since(startedAt); waited >= showElapsedAfter {
				line += Dim(fmt.Sprintf(" (%ds)", int(waited.Seconds())))
			}
			fmt.Fprint(s.w, line)
		}
	}
}

// Stop ends the animation and clears the line. Safe to call twice.
func (s *Spinner) Stop() {
	s.once.Do(func() { close(s.quit) })
	<-s.done
}

// StartSpinner starts a stdout wait indicator; the returned function
// stops it.
func StartSpinner(message string) func() {
	s := NewSpinner(os.Stdout, message)
	s.Start()
	return s.Stop
}
