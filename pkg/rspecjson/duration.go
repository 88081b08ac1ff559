package rspecjson

import "strconv"

// FormatDuration renders seconds as "1h2m3s", dropping zero units.
// Each unit is truncated, never rounded; zero renders as "0s".
func FormatDuration(seconds float64) string {
	total := int64(seconds)
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	var out []byte
	if hours > 0 {
		out = strconv.AppendInt(out, hours, 10)
		out = append(out, 'h')
	}
	if minutes > 0 {
		out = strconv.AppendInt(out, minutes, 10)
		out = append(out, 'm')
	}
	if len(out) == 0 || secs > 0 {
		out = strconv.AppendInt(out, secs, 10)
		out = append(out, 's')
	}
	return string(out)
}
