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

// Package xsec holds the Fast-JX wavelength bins and temperature-dependent
// absorption cross sections of photochemically active species.
package xsec

// NBins is the number of Fast-JX wavelength bins.
const NBins = 18

// wl holds the effective wavelength of each bin [nm], in ascending order.
var wl = [NBins]float64{187, 191, 193, 196, 202, 208, 211, 214, 261, 267, 277, 295, 303, 310, 316, 333, 380, 574}

// WL returns the effective wavelength [nm] of the given bin.
func WL(bin int) float64 { return wl[bin] }

// DeltaWL returns the distance [nm] between the effective wavelength of
// the given bin and that of the next bin. It is only defined for
// bins 0 through NBins-2.
func DeltaWL(bin int) float64 { return wl[bin+1] - wl[bin] }

// Wavelengths returns a copy of the effective wavelengths of all bins [nm].
func Wavelengths() [NBins]float64 { return wl }

// referenceFlux is the Fast-JX top-of-atmosphere solar actinic flux
// in each bin [photons cm⁻² s⁻¹].
var referenceFlux = [NBins]float64{
	1.391e12, 1.627e12, 1.664e12, 9.278e11, 7.842e12, 4.680e12,
	9.918e12, 1.219e13, 6.364e14, 4.049e14, 3.150e14, 5.889e14,
	7.678e14, 5.045e14, 8.902e14, 3.853e15, 1.547e16, 2.131e17,
}

// ReferenceFlux returns a copy of the reference top-of-atmosphere
// actinic flux spectrum [photons cm⁻² s⁻¹].
func ReferenceFlux() [NBins]float64 { return referenceFlux }

// rayleigh is the Rayleigh scattering cross section of air
// in each bin [cm² molecule⁻¹].
var rayleigh = [NBins]float64{
	3.52e-25, 3.23e-25, 3.10e-25, 2.91e-25, 2.58e-25, 2.29e-25,
	2.16e-25, 2.04e-25, 9.14e-26, 8.34e-26, 7.19e-26, 5.57e-26,
	5.00e-26, 4.56e-26, 4.22e-26, 3.42e-26, 2.01e-26, 3.79e-27,
}

// Rayleigh returns the Rayleigh scattering cross section [cm²] of air
// in the given bin.
func Rayleigh(bin int) float64 { return rayleigh[bin] }
