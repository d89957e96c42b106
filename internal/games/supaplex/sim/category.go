package sim

// Category is the kind of a tile.
type Category uint8

const (
	None Category = iota // border/void, never walkable
	Empty
	Base
	Bug
	Electron
	Exit
	HardwareBlueLight
	HardwareCapacitor
	HardwareGreenLight
	HardwareRedLight
	HardwareResistorsColored
	HardwareResistorsRed
	HardwareResistorsSpecial1
	HardwareResistorsSpecial2
	HardwareResistorsYellow
	HardwareWall
	HardwareYellowBlack
	Infotron
	Murphy
	OrangeUtilityDisk
	PortsAll
	PortsAllBlue
	PortsDown
	PortsDownBlue
	PortsHorizontal
	PortsHorizontalBlue
	PortsLeft
	PortsLeftBlue
	PortsRight
	PortsRightBlue
	PortsUp
	PortsUpBlue
	PortsVertical
	PortsVerticalBlue
	RAMChipsBase
	RAMChipsDown
	RAMChipsLeft
	RAMChipsRight
	RAMChipsUp
	RedUtilityDisk
	SnikSnak
	Terminal
	Transitory
	YellowUtilityDisk
	Zonk
	Explosion
	Explosion2

	categoryCount
)

var categoryNames = [categoryCount]string{
	None:                      "None",
	Empty:                     "Empty",
	Base:                      "Base",
	Bug:                       "Bug",
	Electron:                  "Electron",
	Exit:                      "Exit",
	HardwareBlueLight:         "HardwareBlueLight",
	HardwareCapacitor:         "HardwareCapacitor",
	HardwareGreenLight:        "HardwareGreenLight",
	HardwareRedLight:          "HardwareRedLight",
	HardwareResistorsColored:  "HardwareResistorsColored",
	HardwareResistorsRed:      "HardwareResistorsRed",
	HardwareResistorsSpecial1: "HardwareResistorsSpecial1",
	HardwareResistorsSpecial2: "HardwareResistorsSpecial2",
	HardwareResistorsYellow:   "HardwareResistorsYellow",
	HardwareWall:              "HardwareWall",
	HardwareYellowBlack:       "HardwareYellowBlack",
	Infotron:                  "Infotron",
	Murphy:                    "Murphy",
	OrangeUtilityDisk:         "OrangeUtilityDisk",
	PortsAll:                  "PortsAll",
	PortsAllBlue:              "PortsAllBlue",
	PortsDown:                 "PortsDown",
	PortsDownBlue:             "PortsDownBlue",
	PortsHorizontal:           "PortsHorizontal",
	PortsHorizontalBlue:       "PortsHorizontalBlue",
	PortsLeft:                 "PortsLeft",
	PortsLeftBlue:             "PortsLeftBlue",
	PortsRight:                "PortsRight",
	PortsRightBlue:            "PortsRightBlue",
	PortsUp:                   "PortsUp",
	PortsUpBlue:               "PortsUpBlue",
	PortsVertical:             "PortsVertical",
	PortsVerticalBlue:         "PortsVerticalBlue",
	RAMChipsBase:              "RAMChipsBase",
	RAMChipsDown:              "RAMChipsDown",
	RAMChipsLeft:              "RAMChipsLeft",
	RAMChipsRight:             "RAMChipsRight",
	RAMChipsUp:                "RAMChipsUp",
	RedUtilityDisk:            "RedUtilityDisk",
	SnikSnak:                  "SnikSnak",
	Terminal:                  "Terminal",
	Transitory:                "Transitory",
	YellowUtilityDisk:         "YellowUtilityDisk",
	Zonk:                      "Zonk",
	Explosion:                 "Explosion",
	Explosion2:                "Explosion2",
}

// String returns the name of the category.
func (c Category) String() string {
	if c >= categoryCount {
		return "Unknown"
	}
	return categoryNames[c]
}

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for c := None; c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

// IsPort reports whether the category is one of the 14 port kinds.
func (c Category) IsPort() bool {
	return c >= PortsAll && c <= PortsVerticalBlue
}

// IsRAMChip reports whether the category is a RAM chip variant.
func (c Category) IsRAMChip() bool {
	return c >= RAMChipsBase && c <= RAMChipsUp
}

// IsHardware reports whether the category is decorative indestructible hardware.
func (c Category) IsHardware() bool {
	return c >= HardwareBlueLight && c <= HardwareYellowBlack
}

// IsActive reports whether tiles of this category carry a running timer.
// Static scenery is skipped when timers advance.
func (c Category) IsActive() bool {
	switch c {
	case Bug, Electron, Infotron, Murphy, OrangeUtilityDisk, RedUtilityDisk,
		Terminal, Transitory, YellowUtilityDisk, SnikSnak, Zonk,
		Explosion, Explosion2:
		return true
	}
	return false
}

// IsBlastActor reports whether a blast converts the tile into a secondary
// blast that detonates again once its own timer runs out.
func (c Category) IsBlastActor() bool {
	switch c {
	case Electron, Murphy, OrangeUtilityDisk, SnikSnak, YellowUtilityDisk:
		return true
	}
	return false
}

// IsSlideSurface reports whether falling objects roll off this category.
func (c Category) IsSlideSurface() bool {
	return c == Infotron || c == Zonk || c.IsRAMChip()
}

// AcceptsTunnel reports whether a port of this category lets the player
// pass through when travelling in direction d.
func (c Category) AcceptsTunnel(d Direction) bool {
	switch c {
	case PortsAll, PortsAllBlue:
		return d != DirNone
	case PortsHorizontal, PortsHorizontalBlue:
		return d.IsHorizontal()
	case PortsVertical, PortsVerticalBlue:
		return d == DirUp || d == DirDown
	case PortsLeft, PortsLeftBlue:
		return d == DirLeft
	case PortsRight, PortsRightBlue:
		return d == DirRight
	case PortsUp, PortsUpBlue:
		return d == DirUp
	case PortsDown, PortsDownBlue:
		return d == DirDown
	}
	return false
}

// byteTable maps level-file bytes to categories. Values not listed map to
// Empty. Codes 16 and 19/20 are the alternate infotron/terminal/red disk
// graphics of the original data files.
var byteTable = func() [256]Category {
	var t [256]Category
	for i := range t {
		t[i] = Empty
	}
	t[1] = Zonk
	t[2] = Base
	t[3] = Murphy
	t[4] = Infotron
	t[5] = RAMChipsBase
	t[6] = HardwareWall
	t[7] = Exit
	t[8] = OrangeUtilityDisk
	t[9] = PortsRight
	t[10] = PortsDown
	t[11] = PortsLeft
	t[12] = PortsUp
	t[13] = Terminal
	t[14] = RedUtilityDisk
	t[15] = HardwareCapacitor
	t[16] = Infotron
	t[17] = SnikSnak
	t[18] = YellowUtilityDisk
	t[19] = Terminal
	t[20] = RedUtilityDisk
	t[21] = PortsVertical
	t[22] = PortsHorizontal
	t[23] = PortsAll
	t[24] = Electron
	t[25] = Bug
	t[26] = RAMChipsLeft
	t[27] = RAMChipsRight
	t[28] = HardwareResistorsSpecial2
	t[29] = HardwareGreenLight
	t[30] = HardwareBlueLight
	t[31] = HardwareRedLight
	t[32] = HardwareYellowBlack
	t[33] = HardwareResistorsSpecial1
	t[34] = HardwareCapacitor
	t[35] = HardwareResistorsColored
	t[36] = HardwareResistorsRed
	t[37] = HardwareResistorsYellow
	t[38] = RAMChipsUp
	t[39] = RAMChipsDown
	t[40] = None
	return t
}()

// CategoryFromByte decodes a level-file byte. Every byte has a category.
func CategoryFromByte(b byte) Category {
	return byteTable[b]
}

// ByteFromCategory returns the canonical level-file byte for a category.
// Categories that never appear in level data (blue ports, transitory and
// blast tiles) report ok=false.
func ByteFromCategory(c Category) (b byte, ok bool) {
	if c == Empty {
		return 0, true
	}
	// First match wins, so duplicated graphics resolve to the lower code.
	for i := 1; i < len(byteTable); i++ {
		if byteTable[i] == c {
			return byte(i), true
		}
	}
	return 0, false
}
