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
)

// Node is a set of cross sections measured at a single temperature.
type Node struct {
	// T is the temperature [K].
	T float64

	// Sigma is the cross section [cm²] in each wavelength bin.
	Sigma [NBins]float64
}

// Curve maps temperature to cross section for each wavelength bin of
// a single species or photolysis channel. A Curve is immutable
// after it is created and is safe for concurrent use.
type Curve struct {
	// Name is the species or channel the curve describes.
	Name string

	temps []float64
	bins  [NBins]func(T float64) float64
}

// NewCurve creates a cross section curve from temperature nodes, which
// must be sorted by increasing temperature. Temperatures outside of the range
// spanned by the nodes are clamped to the nearest node.
func NewCurve(name string, nodes ...Node) (*Curve, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("xsec: curve %s has no temperature nodes", name)
	}
	c := &Curve{Name: name, temps: make([]float64, len(nodes))}
	for i, n := range nodes {
		if i > 0 && !(n.T > nodes[i-1].T) {
			return nil, fmt.Errorf("xsec: curve %s temperatures must be strictly increasing; %g follows %g", name, n.T, nodes[i-1].T)
		}
		for b, s := range n.Sigma {
			if s < 0 {
				return nil, fmt.Errorf("xsec: curve %s has negative cross section %g in bin %d at %g K", name, s, b, n.T)
			}
		}
		c.temps[i] = n.T
	}
	for b := 0; b < NBins; b++ {
		y := make([]float64, len(nodes))
		for i, n := range nodes {
			y[i] = n.Sigma[b]
		}
		c.bins[b] = interpolator(c.temps, y)
	}
	return c, nil
}

// Interpolate returns the cross section [cm²] in the given bin at
// temperature T [K].
func (c *Curve) Interpolate(bin int, T float64) float64 {
	return c.bins[bin](T)
}

// Spectrum returns the cross sections [cm²] in all bins at temperature T [K].
func (c *Curve) Spectrum(T float64) [NBins]float64 {
	var o [NBins]float64
	for b, f := range c.bins {
		o[b] = f(T)
	}
	return o
}

// Temperatures returns the node temperatures of the curve [K].
func (c *Curve) Temperatures() []float64 {
	return append([]float64(nil), c.temps...)
}

// interpolator returns a piecewise linear function through the points
// (x, y) that is flat outside of the range of x.
func interpolator(x, y []float64) func(float64) float64 {
	if constant(y) {
		v := y[0]
		return func(float64) float64 { return v }
	}
	switch len(x) {
	case 2:
		x0, x1, y0, y1 := x[0], x[1], y[0], y[1]
		return func(T float64) float64 {
			switch {
			case T <= x0:
				return y0
			case T >= x1:
				return y1
			}
			return y0 + (T-x0)/(x1-x0)*(y1-y0)
		}
	case 3:
		x0, x1, x2, y0, y1, y2 := x[0], x[1], x[2], y[0], y[1], y[2]
		return func(T float64) float64 {
			switch {
			case T <= x0:
				return y0
			case T >= x2:
				return y2
			case T <= x1:
				return y0 + (T-x0)/(x1-x0)*(y1-y0)
			}
			return y1 + (T-x1)/(x2-x1)*(y2-y1)
		}
	default:
		n := len(x)
		return func(T float64) float64 {
			if T <= x[0] {
				return y[0]
			}
			if T >= x[n-1] {
				return y[n-1]
			}
			i := sort.SearchFloat64s(x, T) // x[i-1] < T <= x[i]
			return y[i-1] + (T-x[i-1])/(x[i]-x[i-1])*(y[i]-y[i-1])
		}
	}
}

func constant(y []float64) bool {
	for _, v := range y[1:] {
		if v != y[0] {
			return false
		}
	}
	return true
}
