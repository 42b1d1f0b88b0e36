/*
Copyright © 2019 the InMAP authors.
This file is part of photolysis.

photolysis is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

photolysis is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with photolysis.  If not, see <http://www.gnu.org/licenses/>.
*/

package xsec

import (
	"fmt"
	"sort"
	"sync"
)

// Names of the reference cross-section curves.
const (
	O2     = "O2"     // O2 absorption
	O3     = "O3"     // total O3 absorption
	O3O1D  = "O3_O1D" // O3 + hν -> O(¹D) + O2, yield included
	H2O2   = "H2O2"   // H2O2 + hν -> 2OH
	CH2Oa  = "CH2Oa"  // CH2O + hν -> H + HCO
	CH2Ob  = "CH2Ob"  // CH2O + hν -> H2 + CO
	CH3OOH = "CH3OOH" // CH3OOH + hν -> CH3O + OH
	NO2    = "NO2"    // NO2 + hν -> NO + O
)

// referenceNodes holds the Fast-JX temperature nodes for the
// reference curves [cm²].
var referenceNodes = map[string][]Node{
	O2: {
		{T: 180, Sigma: [NBins]float64{1.727e-21, 1.989e-22, 3.004e-23, 1.070e-23, 7.600e-24, 6.170e-24, 4.880e-24, 3.570e-24}},
		{T: 260, Sigma: [NBins]float64{1.736e-21, 2.036e-22, 3.120e-23, 1.104e-23, 7.640e-24, 6.200e-24, 4.900e-24, 3.580e-24}},
		{T: 300, Sigma: [NBins]float64{1.769e-21, 2.112e-22, 3.283e-23, 1.156e-23, 7.680e-24, 6.220e-24, 4.920e-24, 3.590e-24}},
	},
	O3: {
		{T: 218, Sigma: [NBins]float64{4.842e-19, 4.915e-19, 5.221e-19, 5.799e-19, 6.448e-19, 7.077e-19, 8.670e-19, 1.289e-18,
			1.101e-17, 9.550e-18, 5.573e-18, 9.580e-19, 2.895e-19, 1.111e-19, 4.656e-20, 6.776e-21, 1.000e-22, 4.660e-21}},
		{T: 258, Sigma: [NBins]float64{4.842e-19, 4.915e-19, 5.221e-19, 5.799e-19, 6.448e-19, 7.077e-19, 8.670e-19, 1.289e-18,
			1.101e-17, 9.580e-18, 5.610e-18, 9.720e-19, 2.990e-19, 1.165e-19, 4.953e-20, 7.365e-21, 1.000e-22, 4.660e-21}},
		{T: 298, Sigma: [NBins]float64{4.842e-19, 4.915e-19, 5.221e-19, 5.799e-19, 6.448e-19, 7.077e-19, 8.670e-19, 1.289e-18,
			1.101e-17, 9.610e-18, 5.650e-18, 9.900e-19, 3.100e-19, 1.232e-19, 5.312e-20, 8.248e-21, 1.000e-22, 4.660e-21}},
	},
	O3O1D: {
		{T: 200, Sigma: [NBins]float64{4.358e-19, 4.424e-19, 4.699e-19, 5.219e-19, 5.803e-19, 6.369e-19, 7.803e-19, 1.160e-18,
			9.909e-18, 8.595e-18, 5.016e-18, 8.622e-19, 2.606e-19, 8.620e-20, 1.203e-20, 6.018e-22, 0, 0}},
		{T: 260, Sigma: [NBins]float64{4.358e-19, 4.424e-19, 4.699e-19, 5.219e-19, 5.803e-19, 6.369e-19, 7.803e-19, 1.160e-18,
			9.909e-18, 8.622e-18, 5.049e-18, 8.748e-19, 2.691e-19, 9.321e-20, 1.532e-20, 7.512e-22, 0, 0}},
		{T: 320, Sigma: [NBins]float64{4.358e-19, 4.424e-19, 4.699e-19, 5.219e-19, 5.803e-19, 6.369e-19, 7.803e-19, 1.160e-18,
			9.909e-18, 8.649e-18, 5.085e-18, 8.910e-19, 2.790e-19, 1.010e-19, 1.874e-20, 9.290e-22, 0, 0}},
	},
	H2O2: {
		{T: 200, Sigma: [NBins]float64{6.722e-19, 5.820e-19, 5.296e-19, 4.504e-19, 3.356e-19, 2.479e-19, 2.128e-19, 1.838e-19,
			4.826e-20, 3.825e-20, 2.642e-20, 9.917e-21, 6.036e-21, 4.061e-21, 2.863e-21, 1.213e-21, 9.000e-23, 0}},
		{T: 300, Sigma: [NBins]float64{6.722e-19, 5.820e-19, 5.296e-19, 4.504e-19, 3.356e-19, 2.479e-19, 2.128e-19, 1.838e-19,
			4.826e-20, 3.841e-20, 2.682e-20, 1.062e-20, 6.596e-21, 4.534e-21, 3.257e-21, 1.452e-21, 1.100e-22, 0}},
	},
	CH2Oa: {
		{T: 223, Sigma: [NBins]float64{0, 0, 0, 0, 0, 0, 0, 0,
			2.853e-22, 5.614e-22, 3.692e-21, 6.235e-21, 1.301e-20, 1.845e-20, 1.804e-20, 1.024e-20, 0, 0}},
		{T: 298, Sigma: [NBins]float64{0, 0, 0, 0, 0, 0, 0, 0,
			2.884e-22, 5.659e-22, 3.722e-21, 6.242e-21, 1.305e-20, 1.841e-20, 1.762e-20, 9.936e-21, 0, 0}},
	},
	CH2Ob: {
		{T: 223, Sigma: [NBins]float64{0, 0, 0, 0, 0, 0, 0, 0,
			3.142e-21, 4.556e-21, 3.856e-21, 7.120e-21, 8.937e-21, 1.193e-20, 1.306e-20, 1.082e-20, 1.165e-21, 0}},
		{T: 298, Sigma: [NBins]float64{0, 0, 0, 0, 0, 0, 0, 0,
			3.175e-21, 4.586e-21, 3.933e-21, 7.210e-21, 9.013e-21, 1.203e-20, 1.331e-20, 1.098e-20, 1.196e-21, 0}},
	},
	CH3OOH: {
		{T: 295, Sigma: [NBins]float64{3.120e-19, 2.882e-19, 2.250e-19, 2.716e-19, 2.346e-19, 1.024e-19, 8.400e-20, 6.860e-20,
			1.442e-20, 1.159e-20, 7.290e-21, 2.913e-21, 1.877e-21, 1.177e-21, 7.794e-22, 2.446e-22, 4.000e-23, 0}},
	},
	NO2: {
		{T: 200, Sigma: [NBins]float64{0, 0, 0, 0, 0, 0, 0, 0,
			4.835e-20, 2.930e-20, 2.270e-20, 1.029e-19, 1.315e-19, 1.577e-19, 1.847e-19, 2.764e-19, 5.281e-19, 1.062e-19}},
		{T: 294, Sigma: [NBins]float64{0, 0, 0, 0, 0, 0, 0, 0,
			4.835e-20, 2.930e-20, 2.270e-20, 1.083e-19, 1.381e-19, 1.657e-19, 1.926e-19, 2.872e-19, 5.295e-19, 1.062e-19}},
	},
}

var (
	referenceOnce   sync.Once
	referenceCurves map[string]*Curve
)

// Reference returns the built-in cross-section curve with the given name.
func Reference(name string) (*Curve, error) {
	referenceOnce.Do(func() {
		referenceCurves = make(map[string]*Curve, len(referenceNodes))
		for n, nodes := range referenceNodes {
			c, err := NewCurve(n, nodes...)
			if err != nil {
				panic(err)
			}
			referenceCurves[n] = c
		}
	})
	c, ok := referenceCurves[name]
	if !ok {
		return nil, fmt.Errorf("xsec: no reference cross section for %s", name)
	}
	return c, nil
}

// ReferenceNodes returns a copy of the temperature nodes the
// reference curve with the given name was built from.
func ReferenceNodes(name string) ([]Node, error) {
	nodes, ok := referenceNodes[name]
	if !ok {
		return nil, fmt.Errorf("xsec: no reference cross section for %s", name)
	}
	return append([]Node(nil), nodes...), nil
}

// Names returns the sorted names of the reference curves.
func Names() []string {
	o := make([]string, 0, len(referenceNodes))
	for n := range referenceNodes {
		o = append(o, n)
	}
	sort.Strings(o)
	return o
}
