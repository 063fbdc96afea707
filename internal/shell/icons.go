package shell

import (
	"strconv"

	. "maragu.dev/gomponents"
)

// Material icon paths, 24x24 viewBox
const (
	iconMenu          = "M3 18h18v-2H3v2zm0-5h18v-2H3v2zm0-7v2h18V6H3z"
	iconAccountCircle = "M12 2C6.48 2 2 6.48 2 12s4.48 10 10 10 10-4.48 10-10S17.52 2 12 2zm0 4c1.93 0 3.5 1.57 3.5 3.5S13.93 13 12 13s-3.5-1.57-3.5-3.5S10.07 6 12 6zm0 14c-2.03 0-4.43-.82-6.14-2.88C7.55 15.8 9.68 15 12 15s4.45.8 6.14 2.12C16.43 19.18 14.03 20 12 20z"
	iconBrightness4   = "M20 8.69V4h-4.69L12 .69 8.69 4H4v4.69L.69 12 4 15.31V20h4.69L12 23.31 15.31 20H20v-4.69L23.31 12 20 8.69zM12 18c-.89 0-1.74-.2-2.5-.55C11.56 16.5 13 14.42 13 12s-1.44-4.5-3.5-5.45C10.26 6.2 11.11 6 12 6c3.31 0 6 2.69 6 6s-2.69 6-6 6z"
	iconChevronLeft   = "M15.41 7.41 14 6l-6 6 6 6 1.41-1.41L10.83 12z"
	iconChevronRight  = "M10 6 8.59 7.41 13.17 12l-4.58 4.59L10 18l6-6z"
)

func icon(name, path string, size int) Node {
	return Raw(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="` + strconv.Itoa(size) +
		`" height="` + strconv.Itoa(size) + `" fill="currentColor" aria-hidden="true" data-icon="` + name +
		`"><path d="` + path + `"/></svg>`)
}
