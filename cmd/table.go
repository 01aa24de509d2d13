package cmd

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/leniks/cinema2/catalog"
)

const titleColumnWidth = 48

// printFilms renders films as a table.
func printFilms(films []catalog.Film) {
	if len(films) == 0 {
		fmt.Println("No movies.")
		return
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "TITLE", "RATING", "RELEASED"})

	for _, film := range films {
		title := film.Title
		if len([]rune(title)) > titleColumnWidth {
			title = string([]rune(title)[:titleColumnWidth-3]) + "..."
		}

		rating := "-"
		if film.Rating > 0 {
			rating = strconv.FormatFloat(film.Rating, 'f', 1, 64)
		}

		tw.AppendRow(table.Row{film.MovieID, title, rating, film.ReleaseDate})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	fmt.Println(tw.Render())
	fmt.Printf("%d movies\n", len(films))
}
