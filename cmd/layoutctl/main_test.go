package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meet-mock/internal/domain/entities"
	"github.com/johnquangdev/meet-mock/internal/usecase/layout"
)

func TestRoster_MarksPresenter(t *testing.T) {
	ps := roster([]string{"Ann", "Bob"}, "Bob")

	require.Len(t, ps, 2)
	assert.Equal(t, "1", ps[0].ID)
	assert.False(t, ps[0].IsPresenting)
	assert.True(t, ps[1].IsPresenting)
}

func TestPlanRows_Sidebar(t *testing.T) {
	plan := layout.Select(roster([]string{"Ann", "Algo Tutor", "Bob"}, "Algo Tutor"), entities.LayoutAuto)

	rows := planRows(plan)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"main", "2", "Algo Tutor", "purple"}, rows[0])
	assert.Equal(t, "side 1", rows[1][0])
	assert.Equal(t, "Ann", rows[1][2])
	assert.Equal(t, "main Algo Tutor, 2 in sidebar", planSummary(plan))
}

func TestPlanRows_Grid(t *testing.T) {
	plan := layout.Select(roster([]string{"A", "B", "C"}, ""), entities.LayoutTiled)

	rows := planRows(plan)

	require.Len(t, rows, 3)
	assert.Equal(t, "cell 3", rows[2][0])
	assert.Equal(t, "2 x 2", planSummary(plan))
}
