package aocenv

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var timerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

// Timed starts a measured scope when AOC_TIME_IT is enabled and returns
// the function that ends it and reports the elapsed wall-clock time.
// Intended use is
//
//	defer env.Timed()()
//
// so the report fires on every exit path, panics included, without
// affecting error propagation. With timing disabled the returned function
// is a no-op.
func (e *Env) Timed() func() {
	if !e.flags.TimeIt {
		return func() {}
	}
	start := time.Now()
	return func() {
		elapsed := time.Since(start)
		ms := float64(elapsed.Microseconds()) / 1000.0
		fmt.Fprintln(e.timerOut, timerStyle.Render(fmt.Sprintf("⏱️  Execution time: %.2f ms", ms)))
	}
}
