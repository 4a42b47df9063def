package source

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SplitReference splits a formula reference such as 'Sheet 1'!$B$2:$B$7
// into its sheet name and its cell range with the $ markers removed. The
// sheet is empty when ref has no sheet prefix.
func SplitReference(ref string) (sheet, cells string) {
	ref = strings.TrimSpace(ref)
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = strings.Trim(ref[:idx], "'")
		ref = ref[idx+1:]
	}
	return sheet, strings.ReplaceAll(ref, "$", "")
}

// area is a cell rectangle in 1-based coordinates, inclusive.
type area struct {
	left, top, right, bottom int
}

func (a area) cells() int {
	return (a.right - a.left + 1) * (a.bottom - a.top + 1)
}

// parseArea parses "B2:D9" or a single cell "B2". Corners may be given in
// either order.
func parseArea(ref string) (area, error) {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	parts := strings.Split(ref, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return area{}, fmt.Errorf("invalid cell range: %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return area{}, fmt.Errorf("invalid cell range %q: %w", ref, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return area{}, fmt.Errorf("invalid cell range %q: %w", ref, err)
	}

	return area{
		left:   min(startCol, endCol),
		top:    min(startRow, endRow),
		right:  max(startCol, endCol),
		bottom: max(startRow, endRow),
	}, nil
}
