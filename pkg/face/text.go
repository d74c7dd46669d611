package face

import (
	"fmt"
	"time"
)

// textFace spells the time out in words ("It's quarter past three").
type textFace struct{}

func (textFace) Name() string          { return StyleText }
func (textFace) SupportsSeconds() bool { return false }

func (textFace) FormatTime(t time.Time, opts Options) string {
	hour := t.Hour()
	minute := t.Minute()

	period := ""
	if !opts.Use24Hour {
		period = " AM"
		if hour >= 12 {
			period = " PM"
		}
		hour = hour % 12
		if hour == 0 {
			hour = 12
		}
	}

	var text string
	switch {
	case minute == 0:
		text = fmt.Sprintf("It's %s o'clock", numberToWords(hour))
	case minute == 15:
		text = fmt.Sprintf("It's quarter past %s", numberToWords(hour))
	case minute == 30:
		text = fmt.Sprintf("It's half past %s", numberToWords(hour))
	case minute == 45:
		text = fmt.Sprintf("It's quarter to %s", numberToWords(nextHour(hour, opts.Use24Hour)))
	case minute < 30:
		text = fmt.Sprintf("It's %s past %s", numberToWords(minute), numberToWords(hour))
	default:
		text = fmt.Sprintf("It's %s to %s", numberToWords(60-minute), numberToWords(nextHour(hour, opts.Use24Hour)))
	}

	return text + period
}

func nextHour(hour int, use24 bool) int {
	next := hour + 1
	if !use24 && next > 12 {
		return 1
	}
	if use24 && next > 23 {
		return 0
	}
	return next
}

var smallNumbers = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "ten", "eleven", "twelve", "thirteen", "fourteen",
	"fifteen", "sixteen", "seventeen", "eighteen", "nineteen", "twenty",
}

var tensNumbers = map[int]string{
	20: "twenty", 30: "thirty", 40: "forty", 50: "fifty",
}

func numberToWords(n int) string {
	if n >= 0 && n <= 20 {
		return smallNumbers[n]
	}
	if n < 60 {
		tens := (n / 10) * 10
		rest := n - tens
		if rest == 0 {
			return tensNumbers[tens]
		}
		return tensNumbers[tens] + "-" + smallNumbers[rest]
	}
	return fmt.Sprintf("%d", n)
}
