package xlsx

import "strconv"

// ColumnName converts a 1-based column number to its letter form (1 -> A, 27 -> AA).
// Numbers below 1 yield "".
func ColumnName(n int) string {
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		n--
		i--
		buf[i] = byte('A' + n%26)
		n /= 26
	}
	return string(buf[i:])
}

// CellName returns the A1 reference of a 1-based column and row.
func CellName(col, row int) string {
	return ColumnName(col) + strconv.Itoa(row)
}

// RangeName returns the A1:B2 reference spanning two cells.
func RangeName(fromCol, fromRow, toCol, toRow int) string {
	return CellName(fromCol, fromRow) + ":" + CellName(toCol, toRow)
}

// absoluteRange returns the $A$1:$B$2 form used by defined names.
func absoluteRange(fromCol, fromRow, toCol, toRow int) string {
	return "$" + ColumnName(fromCol) + "$" + strconv.Itoa(fromRow) +
		":$" + ColumnName(toCol) + "$" + strconv.Itoa(toRow)
}
