package display

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	progressWidth = 40          // Width of the progress bar
	clearLine     = "\033[2K"   // ANSI: clear entire line
	moveToStart   = "\r"        // Move cursor to start of line
	hideCursor    = "\033[?25l" // ANSI: hide cursor
	showCursor    = "\033[?25h" // ANSI: show cursor
)

// Spinner frames for indeterminate progress
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ProgressBar is a single-line bottom progress bar like apt-get, driven by
// the batch indexer's ProgressCallback (chunks written / total chunks).
type ProgressBar struct {
	title      string
	total      int
	current    int
	message    string
	mutex      sync.Mutex
	done       bool
	startTime  time.Time
	spinnerIdx int
	stopChan   chan struct{}
	doneChan   chan struct{}
}

// NewProgressBar creates a new progress bar. If total is 0 or negative it
// shows a spinner (indeterminate mode); otherwise a percentage bar.
func NewProgressBar(title string, total int) *ProgressBar {
	return &ProgressBar{
		title:     title,
		total:     total,
		startTime: time.Now(),
		stopChan:  make(chan struct{}),
		doneChan:  make(chan struct{}),
	}
}

// ShouldShowProgress is true only at info level — debug/trace output and
// the progress bar would otherwise fight over the same terminal line.
func ShouldShowProgress() bool {
	return zerolog.GlobalLevel() == zerolog.InfoLevel
}

// Start begins the progress bar's render loop.
func (pb *ProgressBar) Start() {
	pb.mutex.Lock()
	pb.startTime = time.Now()
	pb.mutex.Unlock()

	fmt.Print(hideCursor)

	go func() {
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		defer close(pb.doneChan)

		for {
			select {
			case <-pb.stopChan:
				return
			case <-ticker.C:
				pb.render()
			}
		}
	}()
}

// SetCurrent sets the current progress value.
func (pb *ProgressBar) SetCurrent(current int) {
	pb.mutex.Lock()
	pb.current = current
	pb.mutex.Unlock()
}

// SetTotal sets the total value (switches to determinate mode if > 0).
func (pb *ProgressBar) SetTotal(total int) {
	pb.mutex.Lock()
	pb.total = total
	pb.mutex.Unlock()
}

// SetMessage sets the current status message.
func (pb *ProgressBar) SetMessage(message string) {
	pb.mutex.Lock()
	pb.message = message
	pb.mutex.Unlock()
}

// Complete marks the progress as done and restores the cursor.
func (pb *ProgressBar) Complete() {
	pb.mutex.Lock()
	if pb.done {
		pb.mutex.Unlock()
		return
	}
	pb.done = true
	if pb.total > 0 {
		pb.current = pb.total
	}
	pb.mutex.Unlock()

	close(pb.stopChan)
	<-pb.doneChan

	fmt.Print(clearLine + moveToStart + showCursor)
}

func (pb *ProgressBar) render() {
	pb.mutex.Lock()
	defer pb.mutex.Unlock()

	if pb.done {
		return
	}

	var line string
	elapsed := time.Since(pb.startTime).Round(time.Second)

	if pb.total > 0 {
		percent := float64(pb.current) / float64(pb.total)
		if percent > 1.0 {
			percent = 1.0
		}

		filled := int(percent * float64(progressWidth))
		if filled > progressWidth {
			filled = progressWidth
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", progressWidth-filled)

		msg := pb.message
		if len(msg) > 30 {
			msg = msg[:27] + "..."
		}
		if msg != "" {
			line = fmt.Sprintf("%s [%s] %3.0f%% (%d/%d chunks) - %s (%s)",
				pb.title, bar, percent*100, pb.current, pb.total, msg, elapsed)
		} else {
			line = fmt.Sprintf("%s [%s] %3.0f%% (%d/%d chunks) (%s)",
				pb.title, bar, percent*100, pb.current, pb.total, elapsed)
		}
	} else {
		frame := spinnerFrames[pb.spinnerIdx%len(spinnerFrames)]
		pb.spinnerIdx++

		msg := pb.message
		if len(msg) > 40 {
			msg = msg[:37] + "..."
		}
		switch {
		case pb.current > 0 && msg != "":
			line = fmt.Sprintf("%s %s %d chunks - %s (%s)", frame, pb.title, pb.current, msg, elapsed)
		case pb.current > 0:
			line = fmt.Sprintf("%s %s %d chunks (%s)", frame, pb.title, pb.current, elapsed)
		case msg != "":
			line = fmt.Sprintf("%s %s - %s (%s)", frame, pb.title, msg, elapsed)
		default:
			line = fmt.Sprintf("%s %s (%s)", frame, pb.title, elapsed)
		}
	}

	fmt.Print(clearLine + moveToStart + line)
}

// RunWithProgress runs fn with a live progress bar if the log level allows
// it, otherwise with a no-op callback (normal logging takes over instead).
func RunWithProgress(title string, total int, fn func(callback func(current, total int, message string)) error) error {
	if !ShouldShowProgress() {
		return fn(func(current, total int, message string) {})
	}

	pb := NewProgressBar(title, total)
	pb.Start()

	callback := func(current, total int, message string) {
		if total > 0 {
			pb.SetTotal(total)
		}
		pb.SetCurrent(current)
		pb.SetMessage(message)
	}

	err := fn(callback)
	pb.Complete()
	return err
}
