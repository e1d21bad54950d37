package b2brec

/*------------------------------------------------------------------
 *
 * Purpose:	Parity-check matrix for the B-CNAV3 message LDPC code.
 *
 * Description:	81 checks by 162 variables over GF(2^6), per the
 *		matrix tables of GB/T 39414.5-2024 appendix A.  Each
 *		entry is a field coefficient; 0 marks an absent edge.
 *
 *		The matrix is kept as a flat list of
 *		(check, variable, coefficient) triples and expanded
 *		once into sparse adjacency lists, one per check row and
 *		one per variable column, so the decoder never scans the
 *		full 81 x 162 grid.
 *
 *------------------------------------------------------------------*/

import "sync"

const LDPC_CHECKS = 81   // parity checks (rows)
const LDPC_SYMBOLS = 162 // codeword symbols (columns)
const LDPC_INFO_SYMBOLS = 81

type ldpc_entry_t struct {
	check int   // row in H
	sym   int   // column in H
	coeff uint8 // GF(2^6) multiplier, never 0
}

// Edges of one check row: the variables it constrains.
type ldpc_row_t struct {
	syms   []int
	coeffs []uint8
}

// Edges of one variable column: the checks it participates in.
// edge[k] is the position of this column within check[k]'s row
// list, so per-edge message state can live row-side only.
type ldpc_col_t struct {
	checks []int
	coeffs []uint8
	edge   []int
}

var ldpc_rows [LDPC_CHECKS]ldpc_row_t
var ldpc_cols [LDPC_SYMBOLS]ldpc_col_t

var ldpc_h_once sync.Once

// ldpc_h_init expands the coefficient triples into the row and
// column adjacency lists.  Idempotent; shared by every receiver.
func ldpc_h_init() {
	ldpc_h_once.Do(func() {
		for _, e := range ldpc_h_entries {
			var row = &ldpc_rows[e.check]
			var col = &ldpc_cols[e.sym]
			col.checks = append(col.checks, e.check)
			col.coeffs = append(col.coeffs, e.coeff)
			col.edge = append(col.edge, len(row.syms))
			row.syms = append(row.syms, e.sym)
			row.coeffs = append(row.coeffs, e.coeff)
		}
	})
}

var ldpc_h_entries = []ldpc_entry_t{
	{0, 23, 46}, {0, 83, 31}, {0, 109, 15}, {0, 120, 15}, {0, 125, 61}, {0, 130, 53},
	{1, 71, 63}, {1, 79, 54}, {1, 104, 38}, {1, 111, 56}, {1, 127, 13}, {1, 132, 51},
	{1, 138, 59}, {2, 18, 2}, {2, 42, 26}, {2, 66, 63}, {2, 101, 22}, {2, 108, 26},
	{2, 146, 14}, {2, 160, 41}, {3, 8, 44}, {3, 34, 30}, {3, 50, 51}, {3, 61, 35},
	{3, 89, 35}, {3, 100, 44}, {3, 113, 31}, {3, 126, 44}, {3, 131, 13}, {3, 145, 7},
	{3, 157, 1}, {4, 0, 9}, {4, 6, 43}, {4, 33, 30}, {4, 49, 27}, {4, 53, 24},
	{4, 60, 16}, {4, 82, 5}, {4, 106, 1}, {4, 112, 63}, {4, 115, 56}, {4, 128, 20},
	{4, 140, 26}, {4, 144, 44}, {4, 151, 8}, {5, 1, 38}, {5, 3, 26}, {5, 9, 17},
	{5, 38, 63}, {5, 43, 23}, {5, 45, 22}, {5, 60, 32}, {5, 80, 26}, {5, 82, 55},
	{5, 84, 14}, {5, 96, 58}, {5, 109, 41}, {5, 124, 22}, {5, 126, 2}, {5, 141, 37},
	{5, 147, 12}, {6, 3, 1}, {6, 5, 5}, {6, 20, 35}, {6, 37, 51}, {6, 47, 2},
	{6, 54, 35}, {6, 65, 44}, {6, 77, 31}, {6, 88, 44}, {6, 104, 7}, {6, 122, 13},
	{6, 128, 62}, {6, 149, 27}, {6, 158, 44}, {6, 159, 30}, {7, 0, 16}, {7, 15, 5},
	{7, 32, 27}, {7, 35, 1}, {7, 42, 63}, {7, 57, 26}, {7, 72, 44}, {7, 79, 56},
	{7, 81, 20}, {7, 93, 27}, {7, 97, 8}, {7, 112, 30}, {7, 120, 43}, {7, 123, 9},
	{7, 138, 37}, {7, 158, 24}, {8, 1, 1}, {8, 22, 35}, {8, 24, 5}, {8, 50, 44},
	{8, 57, 2}, {8, 69, 35}, {8, 75, 31}, {8, 102, 13}, {8, 107, 44}, {8, 116, 7},
	{8, 119, 62}, {8, 133, 30}, {8, 143, 44}, {8, 152, 27}, {9, 7, 27}, {9, 14, 5},
	{9, 17, 16}, {9, 34, 1}, {9, 43, 26}, {9, 45, 56}, {9, 51, 44}, {9, 59, 63},
	{9, 83, 30}, {9, 95, 20}, {9, 99, 27}, {9, 107, 8}, {9, 138, 24}, {9, 140, 9},
	{9, 144, 37}, {9, 145, 43}, {10, 2, 29}, {10, 16, 32}, {10, 20, 43}, {10, 21, 60},
	{10, 48, 7}, {10, 58, 49}, {10, 68, 34}, {10, 77, 24}, {10, 94, 58}, {10, 106, 4},
	{10, 110, 48}, {10, 114, 10}, {10, 131, 57}, {10, 139, 19}, {10, 142, 50}, {10, 150, 16},
	{11, 10, 26}, {11, 14, 38}, {11, 25, 63}, {11, 32, 17}, {11, 41, 32}, {11, 52, 22},
	{11, 56, 23}, {11, 70, 26}, {11, 91, 55}, {11, 95, 58}, {11, 103, 41}, {11, 133, 2},
	{11, 134, 12}, {11, 137, 22}, {11, 153, 37}, {12, 1, 46}, {12, 2, 12}, {12, 10, 2},
	{12, 40, 31}, {12, 44, 17}, {12, 48, 15}, {12, 61, 63}, {12, 81, 61}, {12, 83, 32},
	{12, 87, 53}, {12, 97, 26}, {12, 110, 22}, {12, 125, 58}, {12, 129, 15}, {12, 142, 41},
	{12, 148, 14}, {13, 11, 54}, {13, 15, 26}, {13, 26, 63}, {13, 33, 22}, {13, 42, 14},
	{13, 53, 38}, {13, 57, 41}, {13, 71, 56}, {13, 92, 12}, {13, 96, 2}, {13, 104, 13},
	{13, 134, 59}, {13, 135, 26}, {13, 138, 17}, {13, 143, 63}, {14, 4, 1}, {14, 8, 51},
	{14, 16, 5}, {14, 18, 35}, {14, 51, 35}, {14, 59, 2}, {14, 60, 31}, {14, 66, 44},
	{14, 89, 13}, {14, 94, 62}, {14, 98, 44}, {14, 105, 7}, {14, 132, 30}, {14, 141, 16},
	{14, 145, 44}, {14, 150, 27}, {15, 5, 44}, {15, 9, 56}, {15, 17, 26}, {15, 19, 63},
	{15, 52, 8}, {15, 60, 27}, {15, 61, 20}, {15, 67, 30}, {15, 90, 43}, {15, 95, 37},
	{15, 99, 9}, {15, 106, 24}, {15, 133, 1}, {15, 142, 46}, {15, 146, 27}, {15, 151, 5},
	{16, 6, 29}, {16, 10, 43}, {16, 18, 46}, {16, 20, 32}, {16, 53, 34}, {16, 61, 15},
	{16, 62, 49}, {16, 68, 7}, {16, 91, 48}, {16, 96, 53}, {16, 100, 58}, {16, 107, 10},
	{16, 134, 57}, {16, 143, 15}, {16, 147, 19}, {16, 152, 16}, {17, 7, 41}, {17, 11, 14},
	{17, 19, 58}, {17, 21, 31}, {17, 54, 2}, {17, 62, 37}, {17, 63, 61}, {17, 69, 12},
	{17, 92, 63}, {17, 97, 38}, {17, 101, 26}, {17, 108, 17}, {17, 135, 26}, {17, 144, 23},
	{17, 148, 22}, {17, 153, 32}, {18, 8, 26}, {18, 12, 53}, {18, 20, 63}, {18, 22, 55},
	{18, 55, 15}, {18, 63, 26}, {18, 64, 22}, {18, 70, 22}, {18, 93, 31}, {18, 98, 41},
	{18, 102, 46}, {18, 109, 14}, {18, 136, 61}, {18, 145, 12}, {18, 149, 15}, {18, 154, 2},
	{19, 9, 46}, {19, 13, 38}, {19, 21, 31}, {19, 23, 17}, {19, 56, 23}, {19, 64, 61},
	{19, 65, 32}, {19, 71, 15}, {19, 94, 55}, {19, 99, 26}, {19, 103, 58}, {19, 110, 53},
	{19, 137, 22}, {19, 146, 22}, {19, 150, 37}, {19, 155, 15}, {20, 10, 58}, {20, 14, 41},
	{20, 22, 55}, {20, 24, 14}, {20, 57, 12}, {20, 65, 22}, {20, 66, 2}, {20, 72, 37},
	{20, 95, 17}, {20, 100, 46}, {20, 104, 63}, {20, 111, 38}, {20, 138, 32}, {20, 147, 15},
	{20, 151, 26}, {20, 156, 23}, {21, 11, 63}, {21, 15, 26}, {21, 23, 17}, {21, 25, 53},
	{21, 58, 22}, {21, 66, 32}, {21, 67, 15}, {21, 73, 26}, {21, 96, 14}, {21, 101, 58},
	{21, 105, 31}, {21, 112, 41}, {21, 139, 2}, {21, 148, 37}, {21, 152, 61}, {21, 157, 12},
	{22, 12, 31}, {22, 16, 46}, {22, 24, 14}, {22, 26, 38}, {22, 59, 15}, {22, 67, 2},
	{22, 68, 23}, {22, 74, 61}, {22, 97, 53}, {22, 102, 63}, {22, 106, 55}, {22, 113, 26},
	{22, 140, 15}, {22, 149, 26}, {22, 153, 22}, {22, 158, 22}, {23, 13, 55}, {23, 17, 58},
	{23, 25, 53}, {23, 27, 41}, {23, 60, 37}, {23, 68, 15}, {23, 69, 12}, {23, 75, 22},
	{23, 98, 38}, {23, 103, 31}, {23, 107, 17}, {23, 114, 46}, {23, 141, 23}, {23, 150, 61},
	{23, 154, 32}, {23, 159, 15}, {24, 14, 17}, {24, 18, 63}, {24, 26, 38}, {24, 28, 26},
	{24, 61, 26}, {24, 69, 23}, {24, 70, 22}, {24, 76, 32}, {24, 99, 41}, {24, 104, 55},
	{24, 108, 14}, {24, 115, 58}, {24, 142, 12}, {24, 151, 22}, {24, 155, 2}, {24, 160, 37},
	{25, 15, 14}, {25, 19, 31}, {25, 27, 41}, {25, 29, 46}, {25, 62, 61}, {25, 70, 12},
	{25, 71, 15}, {25, 77, 2}, {25, 100, 26}, {25, 105, 17}, {25, 109, 53}, {25, 116, 63},
	{25, 143, 22}, {25, 152, 32}, {25, 156, 15}, {25, 161, 26}, {26, 16, 53}, {26, 20, 55},
	{26, 28, 26}, {26, 30, 58}, {26, 63, 22}, {26, 71, 22}, {26, 72, 37}, {26, 78, 15},
	{26, 101, 46}, {26, 106, 14}, {26, 110, 38}, {26, 117, 31}, {26, 144, 15}, {26, 153, 2},
	{26, 157, 23}, {26, 161, 61}, {27, 0, 22}, {27, 17, 38}, {27, 21, 17}, {27, 29, 46},
	{27, 31, 63}, {27, 64, 32}, {27, 72, 15}, {27, 73, 26}, {27, 79, 23}, {27, 102, 58},
	{27, 107, 53}, {27, 111, 41}, {27, 118, 55}, {27, 145, 37}, {27, 154, 15}, {27, 158, 12},
	{28, 1, 32}, {28, 18, 41}, {28, 22, 14}, {28, 30, 58}, {28, 32, 31}, {28, 65, 2},
	{28, 73, 37}, {28, 74, 61}, {28, 80, 12}, {28, 103, 63}, {28, 108, 38}, {28, 112, 26},
	{28, 119, 17}, {28, 146, 26}, {28, 155, 23}, {28, 159, 22}, {29, 2, 2}, {29, 19, 26},
	{29, 23, 53}, {29, 31, 63}, {29, 33, 55}, {29, 66, 15}, {29, 74, 26}, {29, 75, 22},
	{29, 81, 22}, {29, 104, 31}, {29, 109, 41}, {29, 113, 46}, {29, 120, 14}, {29, 147, 61},
	{29, 156, 12}, {29, 160, 15}, {30, 0, 37}, {30, 3, 15}, {30, 20, 46}, {30, 24, 38},
	{30, 32, 31}, {30, 34, 17}, {30, 67, 23}, {30, 75, 61}, {30, 76, 32}, {30, 82, 15},
	{30, 105, 55}, {30, 110, 26}, {30, 114, 58}, {30, 121, 53}, {30, 148, 22}, {30, 157, 22},
	{31, 1, 26}, {31, 4, 23}, {31, 21, 58}, {31, 25, 41}, {31, 33, 55}, {31, 35, 14},
	{31, 68, 12}, {31, 76, 22}, {31, 77, 2}, {31, 83, 37}, {31, 106, 17}, {31, 111, 46},
	{31, 115, 63}, {31, 122, 38}, {31, 149, 32}, {31, 158, 15}, {32, 2, 61}, {32, 5, 12},
	{32, 22, 63}, {32, 26, 26}, {32, 34, 17}, {32, 36, 53}, {32, 69, 22}, {32, 77, 32},
	{32, 78, 15}, {32, 84, 26}, {32, 107, 14}, {32, 112, 58}, {32, 116, 31}, {32, 123, 41},
	{32, 150, 2}, {32, 159, 37}, {33, 3, 22}, {33, 6, 22}, {33, 23, 31}, {33, 27, 46},
	{33, 35, 14}, {33, 37, 38}, {33, 70, 15}, {33, 78, 2}, {33, 79, 23}, {33, 85, 61},
	{33, 108, 53}, {33, 113, 63}, {33, 117, 55}, {33, 124, 26}, {33, 151, 15}, {33, 160, 26},
	{34, 0, 61}, {34, 4, 32}, {34, 7, 15}, {34, 24, 55}, {34, 28, 58}, {34, 36, 53},
	{34, 38, 41}, {34, 71, 37}, {34, 79, 15}, {34, 80, 12}, {34, 86, 22}, {34, 109, 38},
	{34, 114, 31}, {34, 118, 17}, {34, 125, 46}, {34, 152, 23}, {35, 1, 22}, {35, 5, 2},
	{35, 8, 37}, {35, 25, 17}, {35, 29, 63}, {35, 37, 38}, {35, 39, 26}, {35, 72, 26},
	{35, 80, 23}, {35, 81, 22}, {35, 87, 32}, {35, 110, 41}, {35, 115, 55}, {35, 119, 14},
	{35, 126, 58}, {35, 153, 12}, {36, 2, 32}, {36, 6, 15}, {36, 9, 26}, {36, 26, 14},
	{36, 30, 31}, {36, 38, 41}, {36, 40, 46}, {36, 73, 61}, {36, 81, 12}, {36, 82, 15},
	{36, 88, 2}, {36, 111, 26}, {36, 116, 17}, {36, 120, 53}, {36, 127, 63}, {36, 154, 22},
	{37, 3, 2}, {37, 7, 23}, {37, 10, 61}, {37, 27, 53}, {37, 31, 55}, {37, 39, 26},
	{37, 41, 58}, {37, 74, 22}, {37, 82, 22}, {37, 83, 37}, {37, 89, 15}, {37, 112, 46},
	{37, 117, 14}, {37, 121, 38}, {37, 128, 31}, {37, 155, 15}, {38, 4, 15}, {38, 8, 12},
	{38, 11, 22}, {38, 28, 38}, {38, 32, 17}, {38, 40, 46}, {38, 42, 63}, {38, 75, 32},
	{38, 83, 15}, {38, 84, 26}, {38, 90, 23}, {38, 113, 58}, {38, 118, 53}, {38, 122, 41},
	{38, 129, 55}, {38, 156, 37}, {39, 5, 23}, {39, 9, 22}, {39, 12, 32}, {39, 29, 41},
	{39, 33, 14}, {39, 41, 58}, {39, 43, 31}, {39, 76, 2}, {39, 84, 37}, {39, 85, 61},
	{39, 91, 12}, {39, 114, 63}, {39, 119, 38}, {39, 123, 26}, {39, 130, 17}, {39, 157, 26},
	{40, 6, 12}, {40, 10, 15}, {40, 13, 2}, {40, 30, 26}, {40, 34, 53}, {40, 42, 63},
	{40, 44, 55}, {40, 77, 15}, {40, 85, 26}, {40, 86, 22}, {40, 92, 22}, {40, 115, 31},
	{40, 120, 41}, {40, 124, 46}, {40, 131, 14}, {40, 158, 61}, {41, 7, 22}, {41, 11, 37},
	{41, 14, 15}, {41, 31, 46}, {41, 35, 38}, {41, 43, 31}, {41, 45, 17}, {41, 78, 23},
	{41, 86, 61}, {41, 87, 32}, {41, 93, 15}, {41, 116, 55}, {41, 121, 26}, {41, 125, 58},
	{41, 132, 53}, {41, 159, 22}, {42, 8, 15}, {42, 12, 26}, {42, 15, 23}, {42, 32, 58},
	{42, 36, 41}, {42, 44, 55}, {42, 46, 14}, {42, 79, 12}, {42, 87, 22}, {42, 88, 2},
	{42, 94, 37}, {42, 117, 17}, {42, 122, 46}, {42, 126, 63}, {42, 133, 38}, {42, 160, 32},
	{43, 0, 2}, {43, 9, 37}, {43, 13, 61}, {43, 16, 12}, {43, 33, 63}, {43, 37, 26},
	{43, 45, 17}, {43, 47, 53}, {43, 80, 22}, {43, 88, 32}, {43, 89, 15}, {43, 95, 26},
	{43, 118, 14}, {43, 123, 58}, {43, 127, 31}, {43, 134, 41}, {44, 1, 15}, {44, 10, 26},
	{44, 14, 22}, {44, 17, 22}, {44, 34, 31}, {44, 38, 46}, {44, 46, 14}, {44, 48, 38},
	{44, 81, 15}, {44, 89, 2}, {44, 90, 23}, {44, 96, 61}, {44, 119, 53}, {44, 124, 63},
	{44, 128, 55}, {44, 135, 26}, {45, 2, 23}, {45, 11, 61}, {45, 15, 32}, {45, 18, 15},
	{45, 35, 55}, {45, 39, 58}, {45, 47, 53}, {45, 49, 41}, {45, 82, 37}, {45, 90, 15},
	{45, 91, 12}, {45, 97, 22}, {45, 120, 38}, {45, 125, 31}, {45, 129, 17}, {45, 136, 46},
	{46, 3, 12}, {46, 12, 22}, {46, 16, 2}, {46, 19, 37}, {46, 36, 17}, {46, 40, 63},
	{46, 48, 38}, {46, 50, 26}, {46, 83, 26}, {46, 91, 23}, {46, 92, 22}, {46, 98, 32},
	{46, 121, 41}, {46, 126, 55}, {46, 130, 14}, {46, 137, 58}, {47, 4, 22}, {47, 13, 32},
	{47, 17, 15}, {47, 20, 26}, {47, 37, 14}, {47, 41, 31}, {47, 49, 41}, {47, 51, 46},
	{47, 84, 61}, {47, 92, 12}, {47, 93, 15}, {47, 99, 2}, {47, 122, 26}, {47, 127, 17},
	{47, 131, 53}, {47, 138, 63}, {48, 5, 15}, {48, 14, 2}, {48, 18, 23}, {48, 21, 61},
	{48, 38, 53}, {48, 42, 55}, {48, 50, 26}, {48, 52, 58}, {48, 85, 22}, {48, 93, 22},
	{48, 94, 37}, {48, 100, 15}, {48, 123, 46}, {48, 128, 14}, {48, 132, 38}, {48, 139, 31},
	{49, 6, 37}, {49, 15, 15}, {49, 19, 12}, {49, 22, 22}, {49, 39, 38}, {49, 43, 17},
	{49, 51, 46}, {49, 53, 63}, {49, 86, 32}, {49, 94, 15}, {49, 95, 26}, {49, 101, 23},
	{49, 124, 58}, {49, 129, 53}, {49, 133, 41}, {49, 140, 55}, {50, 7, 26}, {50, 16, 23},
	{50, 20, 22}, {50, 23, 32}, {50, 40, 41}, {50, 44, 14}, {50, 52, 58}, {50, 54, 31},
	{50, 87, 2}, {50, 95, 37}, {50, 96, 61}, {50, 102, 12}, {50, 125, 63}, {50, 130, 38},
	{50, 134, 26}, {50, 141, 17}, {51, 8, 61}, {51, 17, 12}, {51, 21, 15}, {51, 24, 2},
	{51, 41, 26}, {51, 45, 53}, {51, 53, 63}, {51, 55, 55}, {51, 88, 15}, {51, 96, 26},
	{51, 97, 22}, {51, 103, 22}, {51, 126, 31}, {51, 131, 41}, {51, 135, 46}, {51, 142, 14},
	{52, 9, 22}, {52, 18, 22}, {52, 22, 37}, {52, 25, 15}, {52, 42, 46}, {52, 46, 38},
	{52, 54, 31}, {52, 56, 17}, {52, 89, 23}, {52, 97, 61}, {52, 98, 32}, {52, 104, 15},
	{52, 127, 55}, {52, 132, 26}, {52, 136, 58}, {52, 143, 53}, {53, 10, 32}, {53, 19, 15},
	{53, 23, 26}, {53, 26, 23}, {53, 43, 58}, {53, 47, 41}, {53, 55, 55}, {53, 57, 14},
	{53, 90, 12}, {53, 98, 22}, {53, 99, 2}, {53, 105, 37}, {53, 128, 17}, {53, 133, 46},
	{53, 137, 63}, {53, 144, 38}, {54, 11, 2}, {54, 20, 37}, {54, 24, 61}, {54, 27, 12},
	{54, 44, 63}, {54, 48, 26}, {54, 56, 17}, {54, 58, 53}, {54, 91, 22}, {54, 99, 32},
	{54, 100, 15}, {54, 106, 26}, {54, 129, 14}, {54, 134, 58}, {54, 138, 31}, {54, 145, 41},
	{55, 12, 15}, {55, 21, 26}, {55, 25, 22}, {55, 28, 22}, {55, 45, 31}, {55, 49, 46},
	{55, 57, 14}, {55, 59, 38}, {55, 92, 15}, {55, 100, 2}, {55, 101, 23}, {55, 107, 61},
	{55, 130, 53}, {55, 135, 63}, {55, 139, 55}, {55, 146, 26}, {56, 13, 23}, {56, 22, 61},
	{56, 26, 32}, {56, 29, 15}, {56, 46, 55}, {56, 50, 58}, {56, 58, 53}, {56, 60, 41},
	{56, 93, 37}, {56, 101, 15}, {56, 102, 12}, {56, 108, 22}, {56, 131, 38}, {56, 136, 31},
	{56, 140, 17}, {56, 147, 46}, {57, 14, 12}, {57, 23, 22}, {57, 27, 2}, {57, 30, 37},
	{57, 47, 17}, {57, 51, 63}, {57, 59, 38}, {57, 61, 26}, {57, 94, 26}, {57, 102, 23},
	{57, 103, 22}, {57, 109, 32}, {57, 132, 41}, {57, 137, 55}, {57, 141, 14}, {57, 148, 58},
	{58, 15, 22}, {58, 24, 32}, {58, 28, 15}, {58, 31, 26}, {58, 48, 14}, {58, 52, 31},
	{58, 60, 41}, {58, 62, 46}, {58, 95, 61}, {58, 103, 12}, {58, 104, 15}, {58, 110, 2},
	{58, 133, 26}, {58, 138, 17}, {58, 142, 53}, {58, 149, 63}, {59, 16, 15}, {59, 25, 2},
	{59, 29, 23}, {59, 32, 61}, {59, 49, 53}, {59, 53, 55}, {59, 61, 26}, {59, 63, 58},
	{59, 96, 22}, {59, 104, 22}, {59, 105, 37}, {59, 111, 15}, {59, 134, 46}, {59, 139, 14},
	{59, 143, 38}, {59, 150, 31}, {60, 17, 37}, {60, 26, 15}, {60, 30, 12}, {60, 33, 22},
	{60, 50, 38}, {60, 54, 17}, {60, 62, 46}, {60, 64, 63}, {60, 97, 32}, {60, 105, 15},
	{60, 106, 26}, {60, 112, 23}, {60, 135, 58}, {60, 140, 53}, {60, 144, 41}, {60, 151, 55},
	{61, 18, 26}, {61, 27, 23}, {61, 31, 22}, {61, 34, 32}, {61, 51, 41}, {61, 55, 14},
	{61, 63, 58}, {61, 65, 31}, {61, 98, 2}, {61, 106, 37}, {61, 107, 61}, {61, 113, 12},
	{61, 136, 63}, {61, 141, 38}, {61, 145, 26}, {61, 152, 17}, {62, 19, 61}, {62, 28, 12},
	{62, 32, 15}, {62, 35, 2}, {62, 52, 26}, {62, 56, 53}, {62, 64, 63}, {62, 66, 55},
	{62, 99, 15}, {62, 107, 26}, {62, 108, 22}, {62, 114, 22}, {62, 137, 31}, {62, 142, 41},
	{62, 146, 46}, {62, 153, 14}, {63, 20, 22}, {63, 29, 22}, {63, 33, 37}, {63, 36, 15},
	{63, 53, 46}, {63, 57, 38}, {63, 65, 31}, {63, 67, 17}, {63, 100, 23}, {63, 108, 61},
	{63, 109, 32}, {63, 115, 15}, {63, 138, 55}, {63, 143, 26}, {63, 147, 58}, {63, 154, 53},
	{64, 21, 32}, {64, 30, 15}, {64, 34, 26}, {64, 37, 23}, {64, 54, 58}, {64, 58, 41},
	{64, 66, 55}, {64, 68, 14}, {64, 101, 12}, {64, 109, 22}, {64, 110, 2}, {64, 116, 37},
	{64, 139, 17}, {64, 144, 46}, {64, 148, 63}, {64, 155, 38}, {65, 22, 2}, {65, 31, 37},
	{65, 35, 61}, {65, 38, 12}, {65, 55, 63}, {65, 59, 26}, {65, 67, 17}, {65, 69, 53},
	{65, 102, 22}, {65, 110, 32}, {65, 111, 15}, {65, 117, 26}, {65, 140, 14}, {65, 145, 58},
	{65, 149, 31}, {65, 156, 41}, {66, 23, 15}, {66, 32, 26}, {66, 36, 22}, {66, 39, 22},
	{66, 56, 31}, {66, 60, 46}, {66, 68, 14}, {66, 70, 38}, {66, 103, 15}, {66, 111, 2},
	{66, 112, 23}, {66, 118, 61}, {66, 141, 53}, {66, 146, 63}, {66, 150, 55}, {66, 157, 26},
	{67, 24, 23}, {67, 33, 61}, {67, 37, 32}, {67, 40, 15}, {67, 57, 55}, {67, 61, 58},
	{67, 69, 53}, {67, 71, 41}, {67, 104, 37}, {67, 112, 15}, {67, 113, 12}, {67, 119, 22},
	{67, 142, 38}, {67, 147, 31}, {67, 151, 17}, {67, 158, 46}, {68, 25, 12}, {68, 34, 22},
	{68, 38, 2}, {68, 41, 37}, {68, 58, 17}, {68, 62, 63}, {68, 70, 38}, {68, 72, 26},
	{68, 105, 26}, {68, 113, 23}, {68, 114, 22}, {68, 120, 32}, {68, 143, 41}, {68, 148, 55},
	{68, 152, 14}, {68, 159, 58}, {69, 26, 22}, {69, 35, 32}, {69, 39, 15}, {69, 42, 26},
	{69, 59, 14}, {69, 63, 31}, {69, 71, 41}, {69, 73, 46}, {69, 106, 61}, {69, 114, 12},
	{69, 115, 15}, {69, 121, 2}, {69, 144, 26}, {69, 149, 17}, {69, 153, 53}, {69, 160, 63},
	{70, 0, 31}, {70, 27, 15}, {70, 36, 2}, {70, 40, 23}, {70, 43, 61}, {70, 60, 53},
	{70, 64, 55}, {70, 72, 26}, {70, 74, 58}, {70, 107, 22}, {70, 115, 22}, {70, 116, 37},
	{70, 122, 15}, {70, 145, 46}, {70, 150, 14}, {70, 154, 38}, {71, 1, 55}, {71, 28, 37},
	{71, 37, 15}, {71, 41, 12}, {71, 44, 22}, {71, 61, 38}, {71, 65, 17}, {71, 73, 46},
	{71, 75, 63}, {71, 108, 32}, {71, 116, 15}, {71, 117, 26}, {71, 123, 23}, {71, 146, 58},
	{71, 151, 53}, {71, 155, 41}, {72, 2, 17}, {72, 29, 26}, {72, 38, 23}, {72, 42, 22},
	{72, 45, 32}, {72, 62, 41}, {72, 66, 14}, {72, 74, 58}, {72, 76, 31}, {72, 109, 2},
	{72, 117, 37}, {72, 118, 61}, {72, 124, 12}, {72, 147, 63}, {72, 152, 38}, {72, 156, 26},
	{73, 3, 14}, {73, 30, 61}, {73, 39, 12}, {73, 43, 15}, {73, 46, 2}, {73, 63, 26},
	{73, 67, 53}, {73, 75, 63}, {73, 77, 55}, {73, 110, 15}, {73, 118, 26}, {73, 119, 22},
	{73, 125, 22}, {73, 148, 31}, {73, 153, 41}, {73, 157, 46}, {74, 4, 53}, {74, 31, 22},
	{74, 40, 22}, {74, 44, 37}, {74, 47, 15}, {74, 64, 46}, {74, 68, 38}, {74, 76, 31},
	{74, 78, 17}, {74, 111, 23}, {74, 119, 61}, {74, 120, 32}, {74, 126, 15}, {74, 149, 55},
	{74, 154, 26}, {74, 158, 58}, {75, 5, 38}, {75, 32, 32}, {75, 41, 15}, {75, 45, 26},
	{75, 48, 23}, {75, 65, 58}, {75, 69, 41}, {75, 77, 55}, {75, 79, 14}, {75, 112, 12},
	{75, 120, 22}, {75, 121, 2}, {75, 127, 37}, {75, 150, 17}, {75, 155, 46}, {75, 159, 63},
	{76, 6, 41}, {76, 33, 2}, {76, 42, 37}, {76, 46, 61}, {76, 49, 12}, {76, 66, 63},
	{76, 70, 26}, {76, 78, 17}, {76, 80, 53}, {76, 113, 22}, {76, 121, 32}, {76, 122, 15},
	{76, 128, 26}, {76, 151, 14}, {76, 156, 58}, {76, 160, 31}, {77, 0, 55}, {77, 7, 26},
	{77, 34, 15}, {77, 43, 26}, {77, 47, 22}, {77, 50, 22}, {77, 67, 31}, {77, 71, 46},
	{77, 79, 14}, {77, 81, 38}, {77, 114, 15}, {77, 122, 2}, {77, 123, 23}, {77, 129, 61},
	{77, 152, 53}, {77, 157, 63}, {78, 1, 17}, {78, 8, 46}, {78, 35, 23}, {78, 44, 61},
	{78, 48, 32}, {78, 51, 15}, {78, 68, 55}, {78, 72, 58}, {78, 80, 53}, {78, 82, 41},
	{78, 115, 37}, {78, 123, 15}, {78, 124, 12}, {78, 130, 22}, {78, 153, 38}, {78, 158, 31},
	{79, 2, 14}, {79, 9, 58}, {79, 36, 12}, {79, 45, 22}, {79, 49, 2}, {79, 52, 37},
	{79, 69, 17}, {79, 73, 63}, {79, 81, 38}, {79, 83, 26}, {79, 116, 26}, {79, 124, 23},
	{79, 125, 22}, {79, 131, 32}, {79, 154, 41}, {79, 159, 55}, {80, 3, 53}, {80, 10, 63},
	{80, 37, 22}, {80, 46, 32}, {80, 50, 15}, {80, 53, 26}, {80, 70, 14}, {80, 74, 31},
	{80, 82, 41}, {80, 84, 46}, {80, 117, 61}, {80, 125, 12}, {80, 126, 15}, {80, 132, 2},
	{80, 155, 26}, {80, 160, 17},
}
