// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"fmt"
	"math"
	"strconv"

	"cogentcore.org/core/base/randx"
	"cogentcore.org/lab/table"
)

// Permuted generates splits of table rows (through the current indexed
// view) using the given random proportions, which must sum to 1 or less.
// An optional list of names can be given for each split, which otherwise
// default to the proportions, e.g., p=0.5. The splits are useful for
// train / test / validate set assignment and similar random partitions.
func Permuted(dt *table.Table, probs []float64, names []string) (*Splits, error) {
	nr := dt.NumRows()
	if nr == 0 {
		return nil, fmt.Errorf("split.Permuted: no rows in table")
	}
	if len(names) > 0 && len(names) != len(probs) {
		return nil, fmt.Errorf("split.Permuted: names (%d) must have same length as probs (%d)", len(names), len(probs))
	}
	sum := 0.0
	for _, p := range probs {
		sum += p
	}
	if sum > 1.0 {
		return nil, fmt.Errorf("split.Permuted: probs sum to more than 1: %g", sum)
	}

	ord := randx.NewGlobalRand().Perm(nr)
	spl := &Splits{Levels: []string{"Split"}}
	st := 0
	for pi, p := range probs {
		n := int(math.Round(p * float64(nr)))
		if pi == len(probs)-1 && sum == 1.0 {
			n = nr - st
		}
		n = min(n, nr-st)
		vw := table.NewView(dt)
		vw.Indexes = make([]int, 0, n)
		for _, vi := range ord[st : st+n] {
			vw.Indexes = append(vw.Indexes, dt.RowIndex(vi))
		}
		st += n
		nm := "p=" + strconv.FormatFloat(p, 'g', -1, 64)
		if len(names) > 0 {
			nm = names[pi]
		}
		spl.Splits = append(spl.Splits, vw)
		spl.Values = append(spl.Values, []string{nm})
	}
	return spl, nil
}
