// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/exdyn/ele"

// Model holds the entities providing dofs, masses and residuals to the explicit builder
type Model struct {
	Elements    []ele.Element    // elements with mass and internal forces
	Conditions  []ele.Condition  // loads; residual only
	Constraints []ele.Constraint // master-slave relations; dofs only
}

// Nentities returns the total number of entities
func (o *Model) Nentities() int {
	return len(o.Elements) + len(o.Conditions) + len(o.Constraints)
}
