package printer

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/heapkit/arena/snapshot"
)

const (
	DefaultWidth = 100
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs the block listing with bars.
	FormatText Format = "text"

	// FormatJSON outputs the snapshot as JSON.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// Color renders free blocks green, used blocks red and the title blue.
	// Default: true
	Color bool

	// Width is the number of bar cells a block spanning the whole arena
	// would get. Every block gets at least one cell.
	// Default: 100
	Width int
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format: FormatText,
		Color:  true,
		Width:  DefaultWidth,
	}
}

// Printer renders arena snapshots.
type Printer struct {
	opts   Options
	writer io.Writer
	num    *message.Printer
	styles styles
}

// New creates a new Printer writing to w.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Visualize(snapshot.Take(a.Bytes()))
func New(w io.Writer, opts Options) *Printer {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	return &Printer{
		opts:   opts,
		writer: w,
		num:    message.NewPrinter(language.English),
		styles: newStyles(opts.Color),
	}
}

// Visualize prints every block with a proportional bar, followed by the
// overview.
func (p *Printer) Visualize(s snapshot.Snapshot) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(s)
	case FormatText:
		return p.visualizeText(s)
	default:
		return p.visualizeText(s)
	}
}

// Overview prints the compact one-line map of the arena and a totals line.
func (p *Printer) Overview(s snapshot.Snapshot) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(s)
	case FormatText:
		return p.overviewText(s)
	default:
		return p.overviewText(s)
	}
}

func (p *Printer) printJSON(s snapshot.Snapshot) error {
	b, err := snapshot.Marshal(s)
	if err != nil {
		return err
	}
	if _, err := p.writer.Write(b); err != nil {
		return fmt.Errorf("printer: write: %w", err)
	}
	return nil
}

// barLength scales a block to the configured width, between one cell and
// the full width. A corrupt size larger than the arena draws a full bar.
func (p *Printer) barLength(size uint64, heapSize int) int {
	if heapSize <= 0 {
		return 1
	}
	if size >= uint64(heapSize) {
		return p.opts.Width
	}
	n := int(size * uint64(p.opts.Width) / uint64(heapSize))
	return min(max(n, 1), p.opts.Width)
}
