package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ytpick/ytpick/internal/match"
)

// ErrNoResolutions is returned when the match table holds no entry from the
// supported catalog, so there is nothing to offer the user.
var ErrNoResolutions = errors.New("no supported resolutions (360p to 4K) were found for this video")

// bytesPerMB converts byte counts to binary megabytes for menu display.
const bytesPerMB = 1024 * 1024

// LineReader reads one line of user input. The terminal implementation sits
// on a readline instance; tests substitute a scripted reader.
type LineReader interface {
	ReadLine() (string, error)
}

// Selector resolves the target resolution: it passes a pre-chosen height
// through when available and otherwise runs an interactive menu over the
// match table.
type Selector struct {
	in     LineReader
	out    io.Writer
	errOut io.Writer
}

// NewSelector creates a Selector writing the menu to out and warnings to errOut.
func NewSelector(in LineReader, out, errOut io.Writer) *Selector {
	return &Selector{in: in, out: out, errOut: errOut}
}

// Choose returns the height to download. A preferred height present in the
// table is returned unchanged without any I/O. A preferred height missing
// from the table is discarded with a warning and the menu runs instead. When
// the table is empty, ErrNoResolutions is returned. Read errors from the
// line reader (EOF, interrupt) propagate to the caller.
func (s *Selector) Choose(table match.Table, preferred int) (int, error) {
	if preferred > 0 {
		if _, ok := table[preferred]; ok {
			return preferred, nil
		}
		fmt.Fprintf(s.errOut, "Requested resolution %dp is not available for this video. You will need to choose an available option.\n", preferred)
	}

	if len(table) == 0 {
		return 0, ErrNoResolutions
	}

	heights := table.Heights()

	fmt.Fprintln(s.out, "Available download options:")
	for i, h := range heights {
		fmt.Fprintf(s.out, "  %d. %s\n", i+1, entryText(h, table[h].SizeEstimate()))
	}

	for {
		line, err := s.in.ReadLine()
		if err != nil {
			return 0, fmt.Errorf("failed to read selection: %w", err)
		}

		selection := strings.TrimSpace(line)
		if selection == "" {
			fmt.Fprintln(s.out, "Please enter a selection.")
			continue
		}

		index, err := strconv.Atoi(selection)
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a numeric selection.")
			continue
		}
		if index < 1 || index > len(heights) {
			fmt.Fprintln(s.out, "Selection out of range. Try again.")
			continue
		}

		return heights[index-1], nil
	}
}

// entryText renders one menu entry, e.g. "720p (~76.3 MB)". The size part is
// omitted when no estimate is known.
func entryText(height int, size int64) string {
	if size <= 0 {
		return fmt.Sprintf("%dp", height)
	}
	return fmt.Sprintf("%dp (~%.1f MB)", height, float64(size)/bytesPerMB)
}
