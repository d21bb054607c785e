package domain

import "fmt"

// Duration options are fixed 15-minute steps up to two hours.
const (
	// DurationStep is the spacing between options, in minutes.
	DurationStep = 15

	// DurationOptionCount is the number of selectable options.
	DurationOptionCount = 8

	// DefaultDuration is the smallest option and the draft default.
	DefaultDuration = DurationStep
)

// DurationOptions returns the ordered set of legal service durations in minutes.
func DurationOptions() []int {
	opts := make([]int, DurationOptionCount)
	for i := range opts {
		opts[i] = (i + 1) * DurationStep
	}
	return opts
}

// IsValidDuration reports whether minutes is one of DurationOptions.
func IsValidDuration(minutes int) bool {
	return minutes >= DurationStep &&
		minutes <= DurationStep*DurationOptionCount &&
		minutes%DurationStep == 0
}

// DurationLabel renders minutes as "15 minutes", "1 hour", "1 hour 30", "2 hour".
func DurationLabel(minutes int) string {
	switch {
	case minutes < 60:
		return fmt.Sprintf("%d minutes", minutes)
	case minutes == 60:
		return "1 hour"
	}
	label := fmt.Sprintf("%d hour", minutes/60)
	if rem := minutes % 60; rem != 0 {
		label += fmt.Sprintf(" %d", rem)
	}
	return label
}

// NextDuration returns the option after minutes, wrapping to the first.
// Values outside the set snap to DefaultDuration.
func NextDuration(minutes int) int {
	if !IsValidDuration(minutes) {
		return DefaultDuration
	}
	if minutes == DurationStep*DurationOptionCount {
		return DurationStep
	}
	return minutes + DurationStep
}

// PrevDuration returns the option before minutes, wrapping to the last.
// Values outside the set snap to DefaultDuration.
func PrevDuration(minutes int) int {
	if !IsValidDuration(minutes) {
		return DefaultDuration
	}
	if minutes == DurationStep {
		return DurationStep * DurationOptionCount
	}
	return minutes - DurationStep
}
