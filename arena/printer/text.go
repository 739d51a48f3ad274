package printer

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/joshuapare/heapkit/arena/snapshot"
)

const (
	freeCell = "░"
	usedCell = "█"

	title  = "=== HEAP VISUALIZATION ==="
	footer = "=========================="
)

func cell(free bool) string {
	if free {
		return freeCell
	}
	return usedCell
}

func status(free bool) string {
	if free {
		return "FREE"
	}
	return "USED"
}

// visualizeText prints one entry per block:
//
//	[USED] offset=0 size=64
//	  ██████
func (p *Printer) visualizeText(s snapshot.Snapshot) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n", p.styles.title.Render(title))
	for _, blk := range s.Blocks {
		style := p.styles.block(blk.Free)
		fmt.Fprintf(&b, "%s offset=%d size=%d\n", style.Render("["+status(blk.Free)+"]"), blk.Offset, blk.Size)
		bar := strings.Repeat(cell(blk.Free), p.barLength(blk.Size, s.HeapSize))
		fmt.Fprintf(&b, "  %s\n\n", style.Render(bar))
	}
	p.writeOverview(&b, s)
	b.WriteString(footer + "\n")

	_, err := p.writer.Write([]byte(b.String()))
	return err
}

func (p *Printer) overviewText(s snapshot.Snapshot) error {
	var b strings.Builder
	p.writeOverview(&b, s)
	_, err := p.writer.Write([]byte(b.String()))
	return err
}

// writeOverview renders all blocks as one bar, then the totals.
func (p *Printer) writeOverview(b *strings.Builder, s snapshot.Snapshot) {
	b.WriteString("\nOverview:\n[")
	for _, blk := range s.Blocks {
		bar := strings.Repeat(cell(blk.Free), p.barLength(blk.Size, s.HeapSize))
		b.WriteString(p.styles.block(blk.Free).Render(bar))
	}
	b.WriteString("]\n")
	b.WriteString(p.totals(s) + "\n")
}

func (p *Printer) totals(s snapshot.Snapshot) string {
	return p.num.Sprintf("%d blocks (%d free), used %s, free %s, largest free %s, arena %d bytes",
		s.Count(), s.FreeCount(),
		humanize.IBytes(s.Used()), humanize.IBytes(s.Free()), humanize.IBytes(s.Largest()),
		s.HeapSize)
}
