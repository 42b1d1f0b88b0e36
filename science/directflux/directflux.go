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

// Package directflux calculates the fraction of the direct solar beam
// that reaches a given pressure level in each wavelength bin.
package directflux

import (
	"fmt"
	"math"
	"sync"

	"github.com/spatialmodel/photolysis/science/amf"
	"github.com/spatialmodel/photolysis/science/atmosphere"
	"github.com/spatialmodel/photolysis/science/xsec"
	"gonum.org/v1/gonum/mat"
)

// DefaultThreshold is the optical depth above which the beam is
// considered fully extinguished.
const DefaultThreshold = 76.0

// TopPressure [Pa] is the pressure above which there is no attenuation.
const TopPressure = 1.0

// Attenuator calculates direct beam transmission through a layered
// atmosphere. It is not modified by its methods and is safe for
// concurrent use.
type Attenuator struct {
	Profile *atmosphere.Profile

	// OpticalDepth holds the vertical optical depth of each layer in each
	// wavelength bin, with an extra row of zeros above the top layer.
	OpticalDepth *mat.Dense

	// Radii are the geocentric radii of the fine vertical grid [cm].
	Radii []float64

	// Threshold is the optical depth above which transmission is zero.
	// DefaultThreshold is used when it is not positive.
	Threshold float64
}

// New creates an Attenuator for profile p with optical depth od.
func New(p *atmosphere.Profile, od *mat.Dense, threshold float64) (*Attenuator, error) {
	nl := p.Layers()
	if r, c := od.Dims(); r != nl+1 || c != xsec.NBins {
		return nil, fmt.Errorf("directflux: optical depth is %dx%d; should be %dx%d", r, c, nl+1, xsec.NBins)
	}
	if len(p.Height) != nl+1 {
		return nil, fmt.Errorf("directflux: profile has %d edge heights; should be %d", len(p.Height), nl+1)
	}
	return &Attenuator{
		Profile:      p,
		OpticalDepth: od,
		Radii:        amf.FineGrid(p.Height),
		Threshold:    threshold,
	}, nil
}

var (
	referenceOnce sync.Once
	reference     *Attenuator
)

// Reference returns an Attenuator for the reference atmosphere with the
// default threshold.
func Reference() *Attenuator {
	referenceOnce.Do(func() {
		var err error
		reference, err = New(atmosphere.Reference(), atmosphere.ReferenceOpticalDepth(), DefaultThreshold)
		if err != nil {
			panic(err)
		}
	})
	return reference
}

// Level returns the index of the lowest layer whose bottom edge pressure
// is not greater than pressure [Pa]. Pressures above the surface pressure
// give the surface layer and pressures below the top edge give the
// top layer.
func (a *Attenuator) Level(pressure float64) int {
	for i, p := range a.Profile.Pressure {
		if p <= pressure {
			return i
		}
	}
	return a.Profile.Layers() - 1
}

func (a *Attenuator) threshold() float64 {
	if a.Threshold > 0 {
		return a.Threshold
	}
	return DefaultThreshold
}

// airMassFactors returns the air mass factors for the beam reaching
// pressure at solar zenith angle cosine csza, and whether any of the beam
// reaches it.
func (a *Attenuator) airMassFactors(pressure, csza float64) ([]float64, bool) {
	start := 2 * a.Level(pressure)
	f := amf.Compute(nil, csza, a.Radii, start)
	return f, f[start] > 0
}

func (a *Attenuator) transmission(f []float64, bin int) float64 {
	var tau float64
	for i, v := range f {
		tau += a.OpticalDepth.At(i/2, bin) * v
	}
	tau *= 0.5
	if tau < a.threshold() {
		return math.Exp(-tau)
	}
	return 0
}

// Spectrum returns the fraction of the direct beam that reaches
// pressure [Pa] in each wavelength bin when the cosine of the solar zenith
// angle is csza.
func (a *Attenuator) Spectrum(pressure, csza float64) [xsec.NBins]float64 {
	var o [xsec.NBins]float64
	if pressure < TopPressure {
		for b := range o {
			o[b] = 1
		}
		return o
	}
	f, lit := a.airMassFactors(pressure, csza)
	if !lit {
		return o
	}
	for b := range o {
		o[b] = a.transmission(f, b)
	}
	return o
}

// Bin returns the fraction of the direct beam in a single wavelength bin
// that reaches pressure [Pa] when the cosine of the solar zenith angle
// is csza.
func (a *Attenuator) Bin(pressure, csza float64, bin int) float64 {
	if pressure < TopPressure {
		return 1
	}
	f, lit := a.airMassFactors(pressure, csza)
	if !lit {
		return 0
	}
	return a.transmission(f, bin)
}

// Flux returns the top-of-atmosphere actinic flux toa attenuated to
// pressure [Pa] at solar zenith angle cosine csza.
func (a *Attenuator) Flux(toa [xsec.NBins]float64, pressure, csza float64) [xsec.NBins]float64 {
	t := a.Spectrum(pressure, csza)
	for b := range t {
		t[b] *= toa[b]
	}
	return t
}
