// Package countdown renders remaining-validity seconds the way the customer
// and terminal screens display them.
package countdown

import "fmt"

// Format renders seconds as zero-padded MM:SS. Negative input is clamped to
// "00:00" so an overshooting timer never renders a negative countdown.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
