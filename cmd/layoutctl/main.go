// Command layoutctl prints the stage plan and name colours for a roster
// without starting the server.
//
//	layoutctl -mode sidebar -presenter "Algo Tutor" "Algo Tutor" "S Yuvaraj" "M Suriya"
//	layoutctl -palette
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/johnquangdev/meet-mock/internal/domain/entities"
	"github.com/johnquangdev/meet-mock/internal/usecase/layout"
	"github.com/johnquangdev/meet-mock/internal/usecase/palette"
)

func main() {
	mode := flag.String("mode", string(entities.LayoutAuto), "Layout mode: auto, tiled, sidebar or spotlight")
	presenter := flag.String("presenter", "", "Name of the participant sharing their screen")
	showPalette := flag.Bool("palette", false, "Print the whole palette and exit")
	flag.Parse()

	if *showPalette {
		printPalette()
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		names = lo.Map(entities.SeedParticipants(), func(p entities.Participant, _ int) string { return p.Name })
	}
	if *presenter != "" && !lo.Contains(names, *presenter) {
		log.Fatalf("presenter %q is not in the roster", *presenter)
	}

	plan := layout.Select(roster(names, *presenter), entities.ParseLayout(*mode))

	header := color.New(color.BgBlack, color.FgGreen).Render(fmt.Sprintf(" %s ", plan.Kind()))
	fmt.Println(header, planSummary(plan))

	table := newTable([]string{"Slot", "ID", "Name", "Colour", ""})
	for _, row := range planRows(plan) {
		table.Append(append(row, swatch(palette.ColorFor(row[2]).Hex)))
	}
	table.Render()
}

// roster builds participants in argument order; IDs are 1-based positions
func roster(names []string, presenter string) []entities.Participant {
	return lo.Map(names, func(name string, i int) entities.Participant {
		return entities.Participant{
			ID:           strconv.Itoa(i + 1),
			Name:         name,
			IsPresenting: presenter != "" && name == presenter,
		}
	})
}

func planSummary(plan layout.Plan) string {
	switch p := plan.(type) {
	case layout.Grid:
		return fmt.Sprintf("%d x %d", p.Columns, p.Rows)
	case layout.Sidebar:
		return fmt.Sprintf("main %s, %d in sidebar", p.Main.Name, len(p.Others))
	case layout.Spotlight:
		return "main " + p.Main.Name
	}
	return ""
}

// planRows lists slot, id, name and colour name per rendered tile
func planRows(plan layout.Plan) [][]string {
	slot := func(i int) string {
		switch plan.Kind() {
		case layout.KindGrid:
			return "cell " + strconv.Itoa(i+1)
		default:
			if i == 0 {
				return "main"
			}
			return "side " + strconv.Itoa(i)
		}
	}

	return lo.Map(plan.Tiles(), func(p entities.Participant, i int) []string {
		return []string{slot(i), p.ID, p.Name, palette.ColorFor(p.Name).Name}
	})
}

func printPalette() {
	table := newTable([]string{"Index", "Name", "Hex", "Tint", ""})
	for i, c := range palette.Palette() {
		table.Append([]string{strconv.Itoa(i), c.Name, c.Hex, c.Tint, swatch(c.Hex)})
	}
	table.Render()
}

func swatch(hex string) string {
	return color.HEX(hex, true).Sprint("    ")
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("\t")
	return table
}
