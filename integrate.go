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

package photolysis

import (
	"math"

	"github.com/spatialmodel/photolysis/science/xsec"
)

// Integrate returns a photolysis rate [s⁻¹] from the actinic flux in each
// wavelength bin, the cosine of the solar zenith angle csza, the cross
// section sigma [cm²] in each bin, and the quantum yield phi. The rate is
// integrated over wavelength with the trapezoidal rule. Negative fluxes,
// such as when the sun is below the horizon, contribute nothing.
func Integrate(flux [xsec.NBins]float64, csza float64, sigma func(bin int) float64, phi float64) float64 {
	rate := func(b int) float64 {
		return math.Max(0, flux[b]*csza) * sigma(b) * phi / xsec.WL(b)
	}
	var j float64
	jLo := rate(0)
	for b := 0; b < xsec.NBins-1; b++ {
		jHi := rate(b + 1)
		j += (jLo + jHi) / 2 * xsec.DeltaWL(b)
		jLo = jHi
	}
	return j
}

// BinRates returns the product of actinic flux, cross section [cm²],
// and quantum yield phi in each wavelength bin.
func BinRates(flux [xsec.NBins]float64, sigma func(bin int) float64, phi float64) [xsec.NBins]float64 {
	var o [xsec.NBins]float64
	for b := range o {
		o[b] = flux[b] * sigma(b) * phi
	}
	return o
}
