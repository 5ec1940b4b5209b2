package model

// SupportedHeights is the fixed catalog of resolutions the tool offers,
// independent of what the source actually provides. Order defines display
// order in the selection menu.
var SupportedHeights = []int{360, 480, 720, 1080, 1440, 2160}

// IsSupportedHeight reports whether height is part of the catalog.
func IsSupportedHeight(height int) bool {
	for _, h := range SupportedHeights {
		if h == height {
			return true
		}
	}
	return false
}
