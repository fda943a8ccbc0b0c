// Command fieldwalk walks a synthetic 2D scalar field with an xdbuf Walker.
//
// Usage:
//
//	fieldwalk [flags]
//
// It fills a width x height buffer with the normalized radial distance
// from the field center, derives a Walker at the start coordinate, and
// steps in the chosen direction until the field value reaches the
// threshold or the walk leaves the field.
//
// Examples:
//
//	fieldwalk
//	fieldwalk -width 32 -height 24 -dir right-up
//	fieldwalk -start 8,8 -dir down -threshold 0.5
//	fieldwalk -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-xdbuf/xdbuf"
	"github.com/cwbudde/algo-xdbuf/xdbuf/step"
)

type direction struct {
	name  string
	delta []int
}

var directions = []direction{
	{"right", step.Right2},
	{"left", step.Left2},
	{"up", step.Up2},
	{"down", step.Down2},
	{"right-up", step.RightUp2},
	{"right-down", step.RightDown2},
	{"left-up", step.LeftUp2},
	{"left-down", step.LeftDown2},
}

func main() {
	width := flag.Int("width", 16, "field width (x axis)")
	height := flag.Int("height", 16, "field height (y axis)")
	start := flag.String("start", "", "start coordinate as x,y (default: field center)")
	dir := flag.String("dir", "right", "walk direction (see -list)")
	threshold := flag.Float64("threshold", 0.75, "stop when the field value reaches this")
	list := flag.Bool("list", false, "list available directions")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fieldwalk [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Walks a synthetic radial field until it reaches -threshold.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fieldwalk -width 32 -height 24 -dir right-up\n")
		fmt.Fprintf(os.Stderr, "  fieldwalk -start 8,8 -dir down -threshold 0.5\n")
		fmt.Fprintf(os.Stderr, "  fieldwalk -list\n")
	}
	flag.Parse()

	if *list {
		for _, d := range directions {
			fmt.Println(d.name)
		}
		return
	}

	d, ok := byName(*dir)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown direction %q (try -list)\n", *dir)
		os.Exit(1)
	}

	field, err := buildField(*width, *height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	sx, sy := *width/2, *height/2
	if *start != "" {
		sx, sy, err = parseStart(*start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	w, err := field.Walker(sx, sy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: start %d,%d is outside the %dx%d field\n", sx, sy, *width, *height)
		os.Exit(1)
	}

	walk(field, w, d, *threshold)
}

func byName(name string) (direction, bool) {
	for _, d := range directions {
		if d.name == name {
			return d, true
		}
	}
	return direction{}, false
}

func parseStart(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("start must be x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad start x: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad start y: %w", err)
	}
	return x, y, nil
}

// buildField fills a rank-2 buffer with the radial distance from the field
// center, normalized so the farthest corner sits at 1.
func buildField(width, height int) (*xdbuf.Buffer[float64], error) {
	field, err := xdbuf.New(0.0, width, height)
	if err != nil {
		return nil, err
	}

	cx := float64(width-1) / 2
	cy := float64(height-1) / 2

	re := make([]float64, height)
	im := make([]float64, height)
	for iy := range im {
		im[iy] = float64(iy) - cy
	}

	values := field.Values()
	for ix := 0; ix < width; ix++ {
		dx := float64(ix) - cx
		for iy := range re {
			re[iy] = dx
		}
		// Rows are contiguous in row-major storage: fixed x, all y.
		row := values[ix*height : (ix+1)*height]
		vecmath.Magnitude(row, re, im)
	}

	vecmath.ScaleBlock(values, values, 1/math.Hypot(cx, cy))

	return field, nil
}

func walk(field *xdbuf.Buffer[float64], w *xdbuf.Walker[float64], d direction, threshold float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "x\ty\tindex\tvalue")

	err := w.StepUntil(field, func(v float64, coord []int) bool {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.3f\n", coord[0], coord[1], w.Index(), v)
		return v >= threshold
	}, d.delta...)
	tw.Flush()

	switch {
	case err == nil:
		v, _ := field.Get(w.Index())
		fmt.Printf("reached %.3f at %v (index %d) walking %s\n", v, w.Coord(), w.Index(), d.name)
	case errors.Is(err, xdbuf.ErrOutOfBounds):
		fmt.Printf("left the field at %v before reaching %.3f\n", w.Coord(), threshold)
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
