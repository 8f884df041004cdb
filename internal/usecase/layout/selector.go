// Package layout decides how the meeting stage arranges participant tiles.
package layout

import (
	"github.com/samber/lo"

	"github.com/johnquangdev/meet-mock/internal/domain/entities"
)

// Kind identifies a plan variant
type Kind string

const (
	KindGrid      Kind = "grid"
	KindSidebar   Kind = "sidebar"
	KindSpotlight Kind = "spotlight"
)

// Plan is one of Sidebar, Spotlight or Grid
type Plan interface {
	Kind() Kind
	// Tiles lists every participant the plan renders, in render order
	Tiles() []entities.Participant
}

// Sidebar puts one participant on the main stage and the rest in a column
type Sidebar struct {
	Main   entities.Participant
	Others []entities.Participant
}

// Spotlight renders a single participant
type Spotlight struct {
	Main entities.Participant
}

// Grid tiles every participant in Columns x Rows cells
type Grid struct {
	Columns      int
	Rows         int
	Participants []entities.Participant
}

func (Sidebar) Kind() Kind   { return KindSidebar }
func (Spotlight) Kind() Kind { return KindSpotlight }
func (Grid) Kind() Kind      { return KindGrid }

func (s Sidebar) Tiles() []entities.Participant {
	return append([]entities.Participant{s.Main}, s.Others...)
}

func (s Spotlight) Tiles() []entities.Participant {
	return []entities.Participant{s.Main}
}

func (g Grid) Tiles() []entities.Participant {
	return append([]entities.Participant(nil), g.Participants...)
}

// gridSteps maps an upper participant bound to grid dimensions; the first
// bucket that fits wins.
var gridSteps = []struct {
	max, cols, rows int
}{
	{1, 1, 1},
	{2, 2, 1},
	{4, 2, 2},
	{6, 3, 2},
	{9, 3, 3},
	{12, 4, 3},
}

// GridDimensions returns the columns and rows used to tile n participants
func GridDimensions(n int) (cols, rows int) {
	for _, step := range gridSteps {
		if n <= step.max {
			return step.cols, step.rows
		}
	}
	return 4, 4
}

// Select picks the stage arrangement for participants under mode.
// The input order is significant: when nobody presents, the first
// participant takes the main slot. Select never fails.
func Select(participants []entities.Participant, mode entities.Layout) Plan {
	presenter, hasPresenter := lo.Find(participants, func(p entities.Participant) bool {
		return p.IsPresenting
	})

	if len(participants) == 0 {
		return Grid{Columns: 1, Rows: 1, Participants: []entities.Participant{}}
	}

	main := participants[0]
	if hasPresenter {
		main = presenter
	}

	switch mode {
	case entities.LayoutSidebar:
		return sidebar(participants, main)
	case entities.LayoutSpotlight:
		return Spotlight{Main: main}
	case entities.LayoutTiled:
		return grid(participants)
	default:
		if hasPresenter {
			return sidebar(participants, main)
		}
		return grid(participants)
	}
}

func sidebar(participants []entities.Participant, main entities.Participant) Sidebar {
	others := lo.Filter(participants, func(p entities.Participant, _ int) bool {
		return p.ID != main.ID
	})
	return Sidebar{Main: main, Others: others}
}

func grid(participants []entities.Participant) Grid {
	cols, rows := GridDimensions(len(participants))
	return Grid{
		Columns:      cols,
		Rows:         rows,
		Participants: append([]entities.Participant(nil), participants...),
	}
}
