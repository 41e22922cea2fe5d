//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package utils

import (
	"fmt"
)

// Point specifies a position in an input file.
type Point struct {
	Source string
	Line   int // 1-based
}

func (p Point) String() string {
	return fmt.Sprintf("%s:%d", p.Source, p.Line)
}

// Undefined tests if the input position is undefined.
func (p Point) Undefined() bool {
	return p.Line == 0
}
