package board

// FieldSpec is the production playing field: a cross shape seven tracks wide.
// Rows 1-4 are the two players' back and front rows and span every column.
// Rows 0 and 5 hold only the three deck positions (left, center, right) on
// columns 2-4. The asymmetry is the board design, not a derived rule, so the
// shape is spelled out rather than generated.
var FieldSpec = GridSpec{
	{{0, 2}, {0, 3}, {0, 4}},
	{{1, 0}, {1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}},
	{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}, {2, 5}, {2, 6}},
	{{3, 0}, {3, 1}, {3, 2}, {3, 3}, {3, 4}, {3, 5}, {3, 6}},
	{{4, 0}, {4, 1}, {4, 2}, {4, 3}, {4, 4}, {4, 5}, {4, 6}},
	{{5, 2}, {5, 3}, {5, 4}},
}
