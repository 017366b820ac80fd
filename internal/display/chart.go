package display

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"

	"github.com/cryp2bot/cryptoengine/internal/exchange/kraken"
)

// ChartOptions controls the terminal candlestick rendering. Zero Width or
// Height means autodetect from the terminal.
type ChartOptions struct {
	Title      string
	ShowVolume bool
	Width      int
	Height     int
}

const (
	volumePaneRows = 5
	minPlotRows    = 6
	minPlotCols    = 10
	defaultCols    = 100
	defaultRows    = 30
)

// Chart renders candles as a terminal candlestick chart. When more candles
// are supplied than fit the width, the most recent ones are shown.
func Chart(out io.Writer, candles []kraken.Candle, opts ChartOptions) error {
	if len(candles) == 0 {
		return fmt.Errorf("no candles to draw")
	}

	width, height := opts.Width, opts.Height
	if width == 0 || height == 0 {
		cols, rows := terminalSize()
		if width == 0 {
			width = cols - 2
		}
		if height == 0 {
			height = rows - 6
		}
	}

	low, high := priceRange(candles)
	if high == low {
		// a flat series still needs a scale
		high = low + 1
	}
	prec := pricePrecision(high)
	axis := len(fmt.Sprintf("%.*f", prec, high)) + 3

	plotCols := width - axis
	if plotCols < minPlotCols {
		plotCols = minPlotCols
	}
	if len(candles) > plotCols {
		candles = candles[len(candles)-plotCols:]
		low, high = priceRange(candles)
		if high == low {
			high = low + 1
		}
	}

	plotRows := height
	if opts.ShowVolume {
		plotRows -= volumePaneRows + 1
	}
	if plotRows < minPlotRows {
		plotRows = minPlotRows
	}

	rowOf := func(price float64) int {
		frac := (high - price) / (high - low)
		row := int(math.Round(frac * float64(plotRows-1)))
		if row < 0 {
			row = 0
		}
		if row >= plotRows {
			row = plotRows - 1
		}
		return row
	}

	grid := make([][]rune, plotRows)
	for y := range grid {
		grid[y] = make([]rune, len(candles))
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	bullish := make([]bool, len(candles))
	for i, c := range candles {
		bullish[i] = c.Close >= c.Open

		for y := rowOf(c.High); y <= rowOf(c.Low); y++ {
			grid[y][i] = '│'
		}
		bodyTop := rowOf(math.Max(c.Open, c.Close))
		bodyBottom := rowOf(math.Min(c.Open, c.Close))
		for y := bodyTop; y <= bodyBottom; y++ {
			grid[y][i] = '█'
		}
	}

	if opts.Title != "" {
		pad := (axis + len(candles) - len(opts.Title)) / 2
		if pad < 0 {
			pad = 0
		}
		fmt.Fprintf(out, "%s%s\n", strings.Repeat(" ", pad), opts.Title)
	}

	labelEvery := plotRows / 6
	if labelEvery < 1 {
		labelEvery = 1
	}
	for y := 0; y < plotRows; y++ {
		var label string
		if y%labelEvery == 0 || y == plotRows-1 {
			price := high - (high-low)*float64(y)/float64(plotRows-1)
			label = fmt.Sprintf("%*.*f ┤ ", axis-3, prec, price)
		} else {
			label = strings.Repeat(" ", axis-3) + " │ "
		}

		var sb strings.Builder
		sb.WriteString(label)
		for x, ch := range grid[y] {
			sb.WriteString(colorCell(ch, bullish[x]))
		}
		fmt.Fprintln(out, sb.String())
	}

	if opts.ShowVolume {
		renderVolumePane(out, candles, bullish, axis)
	}
	return nil
}

func renderVolumePane(out io.Writer, candles []kraken.Candle, bullish []bool, axis int) {
	maxVol := 0.0
	for _, c := range candles {
		if c.Volume > maxVol {
			maxVol = c.Volume
		}
	}
	if maxVol == 0 {
		maxVol = 1
	}

	fmt.Fprintln(out, strings.Repeat(" ", axis)+strings.Repeat("─", len(candles)))

	for y := 0; y < volumePaneRows; y++ {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", axis))
		for i, c := range candles {
			barHeight := int(math.Ceil(c.Volume / maxVol * float64(volumePaneRows)))
			if barHeight >= volumePaneRows-y {
				sb.WriteString(colorCell('█', bullish[i]))
			} else {
				sb.WriteByte(' ')
			}
		}
		fmt.Fprintln(out, sb.String())
	}
}

func colorCell(ch rune, bullish bool) string {
	if ch == ' ' {
		return " "
	}
	if bullish {
		return text.FgGreen.Sprint(string(ch))
	}
	return text.FgRed.Sprint(string(ch))
}

func priceRange(candles []kraken.Candle) (low, high float64) {
	low, high = candles[0].Low, candles[0].High
	for _, c := range candles {
		low = math.Min(low, c.Low)
		high = math.Max(high, c.High)
	}
	return low, high
}

// pricePrecision picks label precision by magnitude: sub-unit prices keep
// the full 8 crypto decimals, everything else reads fine with 2.
func pricePrecision(high float64) int {
	if high < 1 {
		return 8
	}
	return 2
}

func terminalSize() (cols, rows int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return defaultCols, defaultRows
	}
	return cols, rows
}
