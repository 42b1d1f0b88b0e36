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

// Package atmosphere holds the layered reference atmosphere that the direct
// solar beam is attenuated through.
package atmosphere

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
)

const (
	// SurfacePressure is the reference surface pressure [hPa].
	SurfacePressure = 1013.25

	// Masfac converts a pressure difference [hPa] to an air column
	// [molecules cm⁻²].
	Masfac = 100 * 6.022e23 / (28.97 * 9.8 * 10)

	// boltzmann is the Boltzmann constant in units that, multiplied by
	// Masfac and temperature, give a scale height in cm.
	boltzmann = 1.3806e-19

	// ExosphereHeight is the thickness [cm] added above the top edge
	// to close the grid.
	ExosphereHeight = 5.0e5
)

// Profile is a vertical column of atmospheric layers. Index 0 is at
// the surface.
type Profile struct {
	// Pressure is the pressure at the bottom edge of each layer [Pa].
	Pressure []float64

	// MidPressure is the pressure at the middle of each layer [Pa].
	MidPressure []float64

	// Temperature is the layer temperature [K].
	Temperature []float64

	// Density is the air column in each layer [molecules cm⁻²].
	Density []float64

	// Height is the height of each layer edge above the surface [cm].
	// It has one more element than the number of layers; the last
	// element is the top of the exosphere layer.
	Height []float64
}

// NewProfile creates a vertical profile from hybrid-sigma coefficients
// ap [hPa] and bp [-] at the bottom edge of each layer, surface pressure
// psurf [hPa], and layer temperatures temp [K].
func NewProfile(ap, bp []float64, psurf float64, temp []float64) (*Profile, error) {
	nl := len(ap)
	if nl < 2 {
		return nil, fmt.Errorf("atmosphere: profile needs at least 2 layers; got %d", nl)
	}
	if len(bp) != nl || len(temp) != nl {
		return nil, fmt.Errorf("atmosphere: mismatched profile lengths: ap=%d, bp=%d, temperature=%d",
			nl, len(bp), len(temp))
	}
	if !(psurf > 0) {
		return nil, fmt.Errorf("atmosphere: invalid surface pressure %g", psurf)
	}
	p := &Profile{
		Pressure:    make([]float64, nl),
		MidPressure: make([]float64, nl),
		Temperature: append([]float64(nil), temp...),
		Density:     make([]float64, nl),
		Height:      make([]float64, nl+1),
	}
	phPa := make([]float64, nl+1) // phPa[nl] = 0 is the top of the column.
	for i := 0; i < nl; i++ {
		phPa[i] = ap[i] + bp[i]*psurf
		if !(phPa[i] > 0) {
			return nil, fmt.Errorf("atmosphere: non-positive pressure %g hPa at edge %d", phPa[i], i)
		}
		if i > 0 && !(phPa[i] < phPa[i-1]) {
			return nil, fmt.Errorf("atmosphere: pressure does not decrease between edges %d and %d", i-1, i)
		}
		if !(temp[i] > 0) {
			return nil, fmt.Errorf("atmosphere: non-positive temperature %g K in layer %d", temp[i], i)
		}
		p.Pressure[i] = phPa[i] * 100
	}
	for i := 0; i < nl; i++ {
		p.MidPressure[i] = (phPa[i] + phPa[i+1]) / 2 * 100
		p.Density[i] = (phPa[i] - phPa[i+1]) * Masfac
	}
	for i := 0; i < nl-1; i++ {
		p.Height[i+1] = p.Height[i] - math.Log(phPa[i+1]/phPa[i])*p.ScaleHeight(i)
	}
	p.Height[nl] = p.Height[nl-1] + ExosphereHeight
	return p, nil
}

// Layers returns the number of layers in the profile.
func (p *Profile) Layers() int { return len(p.Pressure) }

// ScaleHeight returns the scale height of layer i [cm].
func (p *Profile) ScaleHeight(i int) float64 {
	return boltzmann * Masfac * p.Temperature[i]
}

// Column returns the total air column [molecules cm⁻²].
func (p *Profile) Column() float64 {
	return floats.Sum(p.Density)
}

var (
	referenceOnce    sync.Once
	referenceProfile *Profile
)

// Reference returns the GEOS 72-layer reference profile at the reference
// surface pressure and climatological temperature. The returned profile
// is shared and must not be modified.
func Reference() *Profile {
	referenceOnce.Do(func() {
		var err error
		referenceProfile, err = NewProfile(geos72Ap, geos72Bp, SurfacePressure, referenceT)
		if err != nil {
			panic(err)
		}
	})
	return referenceProfile
}

// ReferenceO3 returns a copy of the climatological O3 mixing ratio
// [mol/mol] in each layer of the reference profile.
func ReferenceO3() []float64 {
	return append([]float64(nil), referenceO3...)
}

// ReferenceTemperature returns a copy of the climatological temperature
// [K] in each layer of the reference profile.
func ReferenceTemperature() []float64 {
	return append([]float64(nil), referenceT...)
}
