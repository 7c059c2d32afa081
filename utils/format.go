package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var durationPattern = regexp.MustCompile(`^P(?:(\d+)D)?T?(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// FormatDuration converts an ISO 8601 duration string (e.g. "PT1H30M",
// "P1DT2H") into its display form. Unparseable input yields "未知時間".
func FormatDuration(duration string) string {
	if duration == "" {
		return "未知時間"
	}

	matches := durationPattern.FindStringSubmatch(duration)
	if matches == nil {
		return "未知時間"
	}

	units := []string{"天", "小時", "分鐘", "秒"}
	var parts []string
	for i, unit := range units {
		if matches[i+1] != "" {
			parts = append(parts, fmt.Sprintf("%s%s", matches[i+1], unit))
		}
	}
	if len(parts) == 0 {
		return "未知時間"
	}
	return strings.Join(parts, "")
}
