package lightbox

// IndexChangedMsg reports the page now shown. It is emitted when the viewer
// opens and whenever a scroll settles on a different page.
type IndexChangedMsg struct {
	Index int
}

// CloseRequestedMsg is emitted once the viewer has faded out in response to a
// close request.
type CloseRequestedMsg struct{}

// OpenMsg shows the viewer at the given page.
type OpenMsg struct {
	Index int
}

// PinchMsg marks the start (Scaled) or end of a zoom gesture on the current image.
type PinchMsg struct {
	Scaled bool
}

// ScrollEndMsg reports where horizontal scrolling came to rest, in columns.
type ScrollEndMsg struct {
	OffsetX float64
}

type resetOpacityMsg struct{}

// frameMsg drives one spring step. Ticks from an earlier generation are
// dropped so a close does not leave a second frame loop running.
type frameMsg struct {
	gen int
}
