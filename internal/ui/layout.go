package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the phase history is hidden.
	LayoutCompactWidth = 80

	// labelWidth is the column width of form labels.
	labelWidth = 16

	// inputWidth is the visible width of the single-line inputs.
	inputWidth = 32
)

// Stage limits.
const (
	// PhaseHistoryLimit is the number of recent phase changes shown.
	PhaseHistoryLimit = 6

	// longTextHeight is the number of rows of the long text area.
	longTextHeight = 3
)
