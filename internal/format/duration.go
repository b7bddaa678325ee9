package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders a generator timing in the largest unit
// that keeps an integer count: ns, µs or ms. From one second on, the value
// is rounded to the millisecond and printed in time.Duration notation.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%d\u00b5s", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.Round(time.Millisecond).String()
	}
}
