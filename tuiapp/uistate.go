package tuiapp

type uiState int

const (
	guidancePage uiState = iota // first page on startup, showing the maneuver panel and route
	summaryPage                 // second page, showing route totals and roads
)

func (s uiState) next() uiState {
	if s == guidancePage {
		return summaryPage
	}

	return guidancePage
}
