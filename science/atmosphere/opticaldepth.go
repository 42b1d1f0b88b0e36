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

package atmosphere

import (
	"fmt"
	"sync"

	"github.com/spatialmodel/photolysis/science/xsec"
	"gonum.org/v1/gonum/mat"
)

// O2MixingRatio is the mole fraction of O2 in dry air.
const O2MixingRatio = 0.20948

// BuildOpticalDepth returns the vertical optical depth of each layer of p in
// each wavelength bin as a matrix with one row per layer and one column per
// bin. It includes Rayleigh scattering and absorption by O2 and by O3 with
// mixing ratio o3 [mol/mol] in each layer. An extra row of zeros is
// appended for the vacuum above the top of the profile.
func BuildOpticalDepth(p *Profile, o3 []float64, o2Sigma, o3Sigma *xsec.Curve) (*mat.Dense, error) {
	nl := p.Layers()
	if len(o3) != nl {
		return nil, fmt.Errorf("atmosphere: O3 profile has %d layers; should be %d", len(o3), nl)
	}
	for i, v := range o3 {
		if v < 0 {
			return nil, fmt.Errorf("atmosphere: negative O3 mixing ratio %g in layer %d", v, i)
		}
	}
	od := mat.NewDense(nl+1, xsec.NBins, nil)
	for i := 0; i < nl; i++ {
		n := p.Density[i]
		T := p.Temperature[i]
		for b := 0; b < xsec.NBins; b++ {
			rayleigh := xsec.Rayleigh(b) * n
			absorption := o2Sigma.Interpolate(b, T)*n*O2MixingRatio +
				o3Sigma.Interpolate(b, T)*n*o3[i]
			od.Set(i, b, rayleigh+absorption)
		}
	}
	return od, nil
}

var (
	referenceODOnce sync.Once
	referenceOD     *mat.Dense
)

// ReferenceOpticalDepth returns the optical depth of the reference profile
// with the reference O3 climatology and O2 and O3 cross sections.
// The returned matrix is shared and must not be modified.
func ReferenceOpticalDepth() *mat.Dense {
	referenceODOnce.Do(func() {
		o2, err := xsec.Reference(xsec.O2)
		if err != nil {
			panic(err)
		}
		o3, err := xsec.Reference(xsec.O3)
		if err != nil {
			panic(err)
		}
		referenceOD, err = BuildOpticalDepth(Reference(), referenceO3, o2, o3)
		if err != nil {
			panic(err)
		}
	})
	return referenceOD
}
