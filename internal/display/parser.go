package display

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"

	"github.com/genricoloni/displayfollow/internal/domain"
)

// Matches the header line of an active output, e.g.
// "DP-1 connected primary 2560x1440+1920+0 (normal left inverted right) 597mm x 336mm"
var outputRe = regexp.MustCompile(`^(\S+)\s+connected\s+(primary\s+)?(\d+)x(\d+)\+(\d+)\+(\d+)`)

// ParseXrandr extracts the geometry of every active output from `xrandr --query` text.
// Disconnected outputs, outputs without a mode and mode lines are skipped.
// Indices follow line order. An empty result is not an error.
func ParseXrandr(output string) []domain.DisplayGeometry {
	displays := []domain.DisplayGeometry{}

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		m := outputRe.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}

		width, errW := strconv.Atoi(m[3])
		height, errH := strconv.Atoi(m[4])
		x, errX := strconv.Atoi(m[5])
		y, errY := strconv.Atoi(m[6])
		if errW != nil || errH != nil || errX != nil || errY != nil {
			continue
		}
		if width <= 0 || height <= 0 {
			continue
		}

		displays = append(displays, domain.DisplayGeometry{
			Index:  len(displays),
			X:      x,
			Y:      y,
			Width:  width,
			Height: height,
			IsMain: m[2] != "",
			Name:   m[1],
			ID:     m[1],
		})
	}

	return displays
}
