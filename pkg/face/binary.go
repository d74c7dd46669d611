package face

import (
	"fmt"
	"strings"
	"time"
)

// binaryFace renders the time as per-digit binary columns, one row
// per bit, plus an HH:MM:SS caption.
type binaryFace struct{}

func (binaryFace) Name() string          { return StyleBinary }
func (binaryFace) SupportsSeconds() bool { return true }

func (binaryFace) FormatTime(t time.Time, opts Options) string {
	if opts.ShowSeconds {
		return fmt.Sprintf("%02d:%02d:%02d (Binary)", t.Hour(), t.Minute(), t.Second())
	}
	return fmt.Sprintf("%02d:%02d (Binary)", t.Hour(), t.Minute())
}

// BinaryRows expands a time into six rows of bit cells, two columns
// per unit (tens digit, ones digit) for hours, minutes and seconds.
// Row 0 is the most significant bit. The window renders each cell as
// a lit or dark block.
func BinaryRows(t time.Time, showSeconds bool) []string {
	units := []int{t.Hour(), t.Minute()}
	if showSeconds {
		units = append(units, t.Second())
	}

	rows := make([]string, 6)
	for bit := 0; bit < 6; bit++ {
		var cells []string
		for _, value := range units {
			tens := value / 10
			ones := value % 10
			cells = append(cells, bitChar(tens, bit), bitChar(ones, bit))
		}
		rows[bit] = strings.Join(cells, " ")
	}
	return rows
}

// bitChar returns "1" when the given bit (0 = MSB of 6) is set.
func bitChar(value, bit int) string {
	if value&(1<<(5-bit)) != 0 {
		return "1"
	}
	return "0"
}
