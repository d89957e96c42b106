package formats

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// LEVELS.DAT record layout.
const (
	DATWidth      = 60
	DATHeight     = 24
	DATRecordSize = 1536

	datTiles      = DATWidth * DATHeight // 1440
	datGravity    = 1444
	datTitleStart = 1446
	datTitleEnd   = 1469 // exclusive
	datFrozen     = 1469
	datInfotrons  = 1470
)

// ParseDAT parses a LEVELS.DAT pack. Each 1536-byte record is one level:
// 60x24 tile bytes followed by the level info block. Level IDs are the
// one-based record number, zero padded ("001", "002", ...).
func ParseDAT(data []byte) ([]Level, error) {
	if len(data)%DATRecordSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d",
			ErrTruncated, len(data), DATRecordSize)
	}

	n := len(data) / DATRecordSize
	out := make([]Level, 0, n)
	for i := 0; i < n; i++ {
		rec := data[i*DATRecordSize : (i+1)*DATRecordSize]
		lvl, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		lvl.ID = fmt.Sprintf("%03d", i+1)
		out = append(out, lvl)
	}
	return out, nil
}

func parseRecord(rec []byte) (Level, error) {
	cells := make([]byte, datTiles)
	copy(cells, rec[:datTiles])
	if !hasPlayer(cells) {
		return Level{}, ErrMissingPlayer
	}

	title := bytes.TrimSpace(bytes.TrimRight(rec[datTitleStart:datTitleEnd], "\x00"))
	infotrons := int(rec[datInfotrons])
	if infotrons == 0 {
		infotrons = countInfotrons(cells)
	}

	return Level{
		Name:        string(title),
		Width:       DATWidth,
		Height:      DATHeight,
		Cells:       cells,
		Gravity:     rec[datGravity] == 1,
		FrozenZonks: rec[datFrozen] == 2,
		Infotrons:   infotrons,
	}, nil
}

// EncodeDAT writes levels back into LEVELS.DAT records. Levels must be
// 60x24.
func EncodeDAT(levels []Level) ([]byte, error) {
	var buf bytes.Buffer
	for i, lvl := range levels {
		if lvl.Width != DATWidth || lvl.Height != DATHeight || len(lvl.Cells) != datTiles {
			return nil, fmt.Errorf("level %q: %dx%d does not fit a %dx%d record",
				lvl.ID, lvl.Width, lvl.Height, DATWidth, DATHeight)
		}

		rec := make([]byte, DATRecordSize)
		copy(rec, lvl.Cells)
		if lvl.Gravity {
			rec[datGravity] = 1
		}
		copy(rec[datTitleStart:datTitleEnd], datTitle(lvl.Name))
		if lvl.FrozenZonks {
			rec[datFrozen] = 2
		}
		if lvl.Infotrons < 0 || lvl.Infotrons > 255 {
			return nil, fmt.Errorf("level %d: infotron count %d out of range", i+1, lvl.Infotrons)
		}
		rec[datInfotrons] = byte(lvl.Infotrons)
		buf.Write(rec)
	}
	return buf.Bytes(), nil
}

// datTitle fits name into the title field: cut at a rune boundary so it
// fits the field's bytes, then padded with spaces.
func datTitle(name string) []byte {
	const size = datTitleEnd - datTitleStart
	n := 0
	for n < len(name) {
		_, w := utf8.DecodeRuneInString(name[n:])
		if n+w > size {
			break
		}
		n += w
	}
	title := bytes.Repeat([]byte{' '}, size)
	copy(title, name[:n])
	return title
}
