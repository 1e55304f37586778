package editor

import "github.com/iw2rmb/ghostwrite/buffer"

type wrapLayoutCacheKey struct {
	bufVersion uint64
	cursor     buffer.Pos

	ghost       string
	placeholder bool

	wrapMode     WrapMode
	tabWidth     int
	contentWidth int
	focused      bool
}

type wrapLayoutRow struct {
	logicalRow   int
	segmentIndex int
}

type wrapLayoutLine struct {
	visual VisualLine

	segments       []wrappedSegment
	firstVisualRow int
}

type wrapLayoutCache struct {
	valid bool
	key   wrapLayoutCacheKey

	lines []wrapLayoutLine
	rows  []wrapLayoutRow
}

func (m *Model) invalidateLayoutCache() {
	m.layout.valid = false
}

// contentWidth keeps one cell free so the end-of-line cursor never wraps.
func (m *Model) contentWidth() int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	if w <= 0 {
		return 0
	}
	return maxInt(w-1, 1)
}

func (m *Model) showPlaceholder() bool {
	return m.cfg.Placeholder != "" && m.buf.IsEmpty() && !m.reveal.Pending()
}

func (m *Model) layoutKey() wrapLayoutCacheKey {
	return wrapLayoutCacheKey{
		bufVersion:   m.buf.Version(),
		cursor:       m.buf.Cursor(),
		ghost:        m.ghostText(),
		placeholder:  m.showPlaceholder(),
		wrapMode:     m.cfg.WrapMode,
		tabWidth:     m.cfg.TabWidth,
		contentWidth: m.contentWidth(),
		focused:      m.focused,
	}
}

func (m *Model) ensureLayoutCache() wrapLayoutCache {
	key := m.layoutKey()
	if m.layout.valid && m.layout.key == key {
		return m.layout
	}

	n := m.buf.LineCount()
	cache := wrapLayoutCache{
		valid: true,
		key:   key,
		lines: make([]wrapLayoutLine, 0, n),
		rows:  make([]wrapLayoutRow, 0, n),
	}

	for row := 0; row < n; row++ {
		rawLine := m.buf.Line(row)
		var vt VirtualText
		if row == n-1 {
			vt = m.trailingVirtualText()
		}
		visual := BuildVisualLine(rawLine, vt, m.cfg.TabWidth)
		segments := wrapSegmentsForVisualLine(visual, m.cfg.WrapMode, key.contentWidth)

		cache.lines = append(cache.lines, wrapLayoutLine{
			visual:         visual,
			segments:       segments,
			firstVisualRow: len(cache.rows),
		})
		for segIdx := range segments {
			cache.rows = append(cache.rows, wrapLayoutRow{
				logicalRow:   row,
				segmentIndex: segIdx,
			})
		}
	}

	m.layout = cache
	return cache
}

// trailingVirtualText anchors the ghost suggestion, or the placeholder, at
// the end of the document's last line.
func (m *Model) trailingVirtualText() VirtualText {
	end := m.buf.End()
	if ghost := m.ghostText(); ghost != "" {
		return VirtualText{Insertions: []VirtualInsertion{{
			GraphemeCol: end.GraphemeCol,
			Text:        ghost,
			Role:        VirtualRoleGhost,
		}}}
	}
	if m.showPlaceholder() {
		return VirtualText{Insertions: []VirtualInsertion{{
			GraphemeCol: 0,
			Text:        m.cfg.Placeholder,
			Role:        VirtualRolePlaceholder,
		}}}
	}
	return VirtualText{}
}

func (c wrapLayoutCache) cursorVisualRow(cursor buffer.Pos) int {
	if len(c.lines) == 0 {
		return 0
	}
	row := clampInt(cursor.Row, 0, len(c.lines)-1)
	line := c.lines[row]
	cell := line.visual.VisualCellForDocGraphemeCol(cursor.GraphemeCol)
	return line.firstVisualRow + segmentForCell(line.segments, cell)
}

// ghostEndVisualRow reports the visual row holding the last ghost grapheme.
func (c wrapLayoutCache) ghostEndVisualRow() (int, bool) {
	if c.key.ghost == "" || len(c.rows) == 0 {
		return 0, false
	}
	return len(c.rows) - 1, true
}
