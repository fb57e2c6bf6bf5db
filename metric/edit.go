package metric

import "sync"

// rowPool holds scratch rows for the rolling-row DP kernels so steady-state
// calls do not allocate. Rows are length-capped on return to keep the pool
// from pinning huge buffers after one oversized comparison.
var rowPool = sync.Pool{
	New: func() any {
		s := make([]int, 0, 128)
		return &s
	},
}

const maxPooledRowLen = 4096

func getRow(n int) *[]int {
	rp := rowPool.Get().(*[]int)
	if cap(*rp) < n {
		*rp = make([]int, n)
	}
	*rp = (*rp)[:n]
	return rp
}

func putRow(rp *[]int) {
	if cap(*rp) > maxPooledRowLen {
		return
	}
	rowPool.Put(rp)
}

// Hamming calculates the Hamming distance between two codepoint sequences:
// the number of positions at which they differ.
// Returns ErrLengthMismatch when the sequences differ in length; there is no
// silent truncation or padding.
func Hamming(a, b []rune) (int, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	dist := 0
	for i := range a {
		if a[i] != b[i] {
			dist++
		}
	}
	return dist, nil
}

// Levenshtein calculates the minimum number of single-codepoint insertions,
// deletions, and substitutions required to change a into b.
// Uses two rolling DP rows, so space is O(min(len(a), len(b))).
func Levenshtein(a, b []rune) int {
	// Iterate over the longer sequence, keep the row sized to the shorter.
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	rp := getRow(len(b) + 1)
	defer putRow(rp)
	row := *rp

	for j := range row {
		row[j] = j
	}

	for i, ra := range a {
		prev := row[0] // row[i-1][j-1] before it is overwritten
		row[0] = i + 1
		for j, rb := range b {
			cost := 1
			if ra == rb {
				cost = 0
			}
			cur := min(
				row[j+1]+1,  // deletion
				row[j]+1,    // insertion
				prev+cost,   // substitution
			)
			prev = row[j+1]
			row[j+1] = cur
		}
	}

	return row[len(b)]
}

// OSADistance calculates the optimal string alignment distance: like
// Levenshtein but with adjacent transposition as a unit-cost operation.
// This is the restricted Damerau variant, where each substring may be edited
// at most once (no nested transpositions); the triangle inequality does not
// hold. Uses three rolling rows.
func OSADistance(a, b []rune) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	pp := getRow(lb + 1) // row i-2
	pr := getRow(lb + 1) // row i-1
	cp := getRow(lb + 1) // row i
	defer putRow(pp)
	defer putRow(pr)
	defer putRow(cp)
	prev2, prev, cur := *pp, *pr, *cp

	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		cur[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			d := min(
				prev[j]+1,      // deletion
				cur[j-1]+1,     // insertion
				prev[j-1]+cost, // substitution
			)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				d = min(d, prev2[j-2]+1) // transposition
			}
			cur[j] = d
		}
		prev2, prev, cur = prev, cur, prev2
	}

	return prev[lb]
}

// DamerauLevenshtein calculates the unrestricted Damerau-Levenshtein distance:
// like optimal string alignment, but substrings can be edited an unlimited
// number of times, and the triangle inequality holds.
// Requires the full (len(a)+2) x (len(b)+2) table plus a last-occurrence map,
// so it is heavier than OSADistance; prefer OSADistance when the restricted
// semantics are acceptable.
func DamerauLevenshtein(a, b []rune) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	maxDist := la + lb
	d := make([][]int, la+2)
	for i := range d {
		d[i] = make([]int, lb+2)
	}

	d[0][0] = maxDist
	for i := 0; i <= la; i++ {
		d[i+1][0] = maxDist
		d[i+1][1] = i
	}
	for j := 0; j <= lb; j++ {
		d[0][j+1] = maxDist
		d[1][j+1] = j
	}

	// lastRow[r] is the last row in which rune r occurred in a.
	lastRow := make(map[rune]int, la)

	for i := 1; i <= la; i++ {
		lastMatchCol := 0
		for j := 1; j <= lb; j++ {
			i1 := lastRow[b[j-1]]
			j1 := lastMatchCol
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
				lastMatchCol = j
			}
			d[i+1][j+1] = min(
				d[i][j]+cost,                  // substitution
				d[i+1][j]+1,                   // insertion
				d[i][j+1]+1,                   // deletion
				d[i1][j1]+(i-i1-1)+1+(j-j1-1), // transposition
			)
		}
		lastRow[a[i-1]] = i
	}

	return d[la+1][lb+1]
}
