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

// Package amf calculates air mass factors for the direct solar beam in a
// pseudo-spherical layered atmosphere. The air mass factor of a layer is
// the ratio of the slant path length of the beam through the layer to the
// layer's vertical thickness.
package amf

import (
	"fmt"
	"math"
)

// EarthRadius is the radius of the Earth [cm].
const EarthRadius = 6375.0e5

// minSeparation [cm] is the smallest layer thickness used as a divisor.
const minSeparation = 1.0e-3

// Phase is a stage of the air mass factor calculation.
type Phase int

// The calculation starts with a Shadow check, then always goes through
// the Ascending phase. When the sun is below the horizon it finishes with
// the Twilight phase.
const (
	Shadow Phase = iota
	Ascending
	Twilight
	Done
)

func (p Phase) String() string {
	switch p {
	case Shadow:
		return "Shadow"
	case Ascending:
		return "Ascending"
	case Twilight:
		return "Twilight"
	case Done:
		return "Done"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// FineGrid returns the geocentric radii [cm] of a grid with a point at
// each of the given edge heights [cm] above the surface and another
// halfway between each pair of edges. For n edges it returns 2n-1 radii.
func FineGrid(heights []float64) []float64 {
	if len(heights) == 0 {
		return nil
	}
	r := make([]float64, 2*len(heights)-1)
	for j, h := range heights {
		r[2*j] = EarthRadius + h
		if j < len(heights)-1 {
			r[2*j+1] = EarthRadius + (h+heights[j+1])/2
		}
	}
	return r
}

// ShadowHeight returns the geocentric radius [cm] below which the Earth
// shades the direct beam when the cosine of the solar zenith angle is u0
// and the surface radius is r1. It is zero when the sun is above the
// horizon and +Inf when the sun is at the nadir, so every point is then
// in shadow.
func ShadowHeight(u0, r1 float64) float64 {
	if u0 >= 0 {
		return 0
	}
	s := 1 - u0*u0
	if s <= 0 {
		return math.Inf(1)
	}
	return r1 / math.Sqrt(s)
}

// InShadow returns whether the point radii[start] is inside the Earth's
// shadow.
func InShadow(csza float64, radii []float64, start int) bool {
	return radii[start] < ShadowHeight(csza, radii[0])
}

// Compute returns the air mass factor of each fine grid layer for the
// direct beam reaching radii[start] at solar zenith angle cosine csza.
// The result is stored in dst, which must be nil or have the same length
// as radii.
func Compute(dst []float64, csza float64, radii []float64, start int) []float64 {
	if dst == nil {
		dst = make([]float64, len(radii))
	} else {
		if len(dst) != len(radii) {
			panic(fmt.Errorf("amf: destination length %d != grid length %d", len(dst), len(radii)))
		}
		for i := range dst {
			dst[i] = 0
		}
	}
	phase := Shadow
	for phase != Done {
		switch phase {
		case Shadow:
			if InShadow(csza, radii, start) {
				phase = Done
			} else {
				phase = Ascending
			}
		case Ascending:
			Ascend(dst, csza, radii, start)
			if csza < 0 {
				phase = Twilight
			} else {
				phase = Done
			}
		case Twilight:
			Descend(dst, csza, radii, start)
			phase = Done
		}
	}
	return dst
}

// Ascend sets the air mass factors of the layers from start to the top
// of the grid, following the incoming beam upward from radii[start].
// The factor at the top point is 1.
func Ascend(amf []float64, csza float64, radii []float64, start int) {
	top := len(radii) - 1
	xmu1 := math.Abs(csza)
	for i := start; i < top; i++ {
		ratio := radii[i] / radii[i+1]
		xmu2 := math.Sqrt(math.Max(0, 1-ratio*ratio*(1-xmu1*xmu1)))
		amf[i] = (radii[i+1]*xmu2 - radii[i]*xmu1) / thickness(radii, i)
		xmu1 = xmu2
	}
	amf[top] = 1
}

// Descend sets the air mass factors of the layers below start for a sun
// below the horizon. The beam dips below radii[start] before rising
// toward it, crossing each layer above its tangent point twice. Descend
// stops at the layer holding the tangent point, or at the surface, and
// returns that layer's index. It returns start when there is no layer below.
func Descend(amf []float64, csza float64, radii []float64, start int) int {
	xmu1 := math.Abs(csza)
	for i := start - 1; i >= 0; i-- {
		diff := radii[i+1]*math.Sqrt(math.Max(0, 1-xmu1*xmu1)) - radii[i]
		if i == 0 {
			diff = math.Max(diff, 0)
		}
		if diff < 0 {
			ratio := radii[i+1] / radii[i]
			xmu2 := math.Sqrt(math.Max(0, 1-ratio*ratio*(1-xmu1*xmu1)))
			xl := math.Abs(radii[i+1]*xmu1 - radii[i]*xmu2)
			amf[i] = 2 * xl / thickness(radii, i)
			xmu1 = xmu2
			continue
		}
		amf[i] = 2 * radii[i+1] * xmu1 / thickness(radii, i)
		return i
	}
	return start
}

// thickness returns the thickness of fine layer i.
func thickness(radii []float64, i int) float64 {
	return math.Max(radii[i+1]-radii[i], minSeparation)
}
