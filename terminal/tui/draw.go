package tui

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// Box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// valid falls back to LineSingle for unknown values
func (l LineType) valid() LineType {
	if l >= LineType(len(boxChars)) {
		return LineSingle
	}
	return l
}

// ParseLineType maps a name (single, double, rounded, heavy, none) to a LineType
func ParseLineType(s string) (LineType, bool) {
	switch s {
	case "single":
		return LineSingle, true
	case "double":
		return LineDouble, true
	case "rounded":
		return LineRounded, true
	case "heavy":
		return LineHeavy, true
	case "none":
		return LineNone, true
	}
	return LineSingle, false
}
