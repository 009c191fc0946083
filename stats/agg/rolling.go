// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agg

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/lab/table"
)

// Rolling is a placeholder [Stat] for a rolling-window aggregation.
// It is not yet implemented: Aggregate always returns an error.
type Rolling struct {
	// Window is the number of rows in the rolling window.
	Window int
}

// NewRolling returns a new [Rolling] with the given window size.
func NewRolling(window int) *Rolling {
	return &Rolling{Window: window}
}

func (rl *Rolling) Aggregate(dt *table.Table, gb *GroupBy, orient math32.Dims, scales Scales) (*table.Table, error) {
	return nil, errors.New("agg.Rolling is not yet implemented")
}
