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
	"io/ioutil"
	"math"
	"os"
	"testing"

	"github.com/kr/pretty"
	"github.com/spatialmodel/photolysis/science/xsec"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func TestReferenceProfile(t *testing.T) {
	p := Reference()
	if p.Layers() != 73 {
		t.Fatalf("layers: %d", p.Layers())
	}
	if len(p.Height) != p.Layers()+1 {
		t.Fatalf("heights: %d", len(p.Height))
	}
	for i := 1; i < p.Layers(); i++ {
		if !(p.Pressure[i-1] > p.Pressure[i]) {
			t.Errorf("pressure %d: %g !> %g", i, p.Pressure[i-1], p.Pressure[i])
		}
		if !(p.MidPressure[i-1] > p.MidPressure[i]) {
			t.Errorf("mid pressure %d: %g !> %g", i, p.MidPressure[i-1], p.MidPressure[i])
		}
	}
	for i := 1; i < len(p.Height); i++ {
		if !(p.Height[i-1] < p.Height[i]) {
			t.Errorf("height %d: %g !< %g", i, p.Height[i-1], p.Height[i])
		}
	}
	if p.Pressure[0] != SurfacePressure*100 {
		t.Errorf("surface pressure: %g", p.Pressure[0])
	}
	if different(p.Pressure[p.Layers()-1], 1, 1e-9) {
		t.Errorf("top pressure: %g", p.Pressure[p.Layers()-1])
	}
	// The whole column weighs the surface pressure.
	if different(p.Column(), SurfacePressure*Masfac, 1e-9) {
		t.Errorf("column: have %g, want %g", p.Column(), SurfacePressure*Masfac)
	}
	top := p.Height[p.Layers()-1]
	if top < 70e5 || top > 90e5 {
		t.Errorf("top edge height %g cm", top)
	}
	if different(p.Height[p.Layers()]-top, ExosphereHeight, 1e-12) {
		t.Errorf("exosphere thickness %g", p.Height[p.Layers()]-top)
	}
	if p.Height[0] != 0 {
		t.Errorf("surface height %g", p.Height[0])
	}
	if Reference() != p {
		t.Error("reference profile should be built once")
	}
}

func TestNewProfileErrors(t *testing.T) {
	tests := []struct {
		name      string
		ap, bp, T []float64
		psurf     float64
	}{
		{name: "short", ap: []float64{0}, bp: []float64{1}, T: []float64{280}, psurf: 1000},
		{name: "mismatch", ap: []float64{0, 1}, bp: []float64{1}, T: []float64{280, 270}, psurf: 1000},
		{name: "increasing", ap: []float64{0, 1}, bp: []float64{0.5, 1}, T: []float64{280, 270}, psurf: 1000},
		{name: "zero pressure", ap: []float64{0, 0}, bp: []float64{1, 0}, T: []float64{280, 270}, psurf: 1000},
		{name: "temperature", ap: []float64{0, 1}, bp: []float64{1, 0}, T: []float64{280, -1}, psurf: 1000},
		{name: "surface", ap: []float64{0, 1}, bp: []float64{1, 0}, T: []float64{280, 270}, psurf: 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := NewProfile(test.ap, test.bp, test.psurf, test.T); err == nil {
				t.Error("should be an error")
			}
		})
	}
}

func TestNewProfile(t *testing.T) {
	p, err := NewProfile([]float64{0, 500}, []float64{1, 0}, 1000, []float64{250, 250})
	if err != nil {
		t.Fatal(err)
	}
	if p.Density[0] != 500*Masfac || p.Density[1] != 500*Masfac {
		t.Errorf("density: %v", p.Density)
	}
	want := math.Log(2) * p.ScaleHeight(0)
	if different(p.Height[1], want, 1e-12) {
		t.Errorf("height: have %g, want %g", p.Height[1], want)
	}
	if p.MidPressure[1] != 250*100 {
		t.Errorf("top mid pressure: %g", p.MidPressure[1])
	}
}

func TestOpticalDepth(t *testing.T) {
	p := Reference()
	od := ReferenceOpticalDepth()
	r, c := od.Dims()
	if r != p.Layers()+1 || c != xsec.NBins {
		t.Fatalf("dims %d×%d", r, c)
	}
	for b := 0; b < c; b++ {
		if od.At(r-1, b) != 0 {
			t.Errorf("top row bin %d: %g", b, od.At(r-1, b))
		}
		col := mat.Col(nil, b, od)
		if floats.Min(col) < 0 {
			t.Errorf("bin %d has negative optical depth", b)
		}
	}
	// Visible light mostly passes; the Hartley band is opaque.
	vis := floats.Sum(mat.Col(nil, xsec.NBins-1, od))
	if vis < 0.05 || vis > 0.2 {
		t.Errorf("visible optical depth %g", vis)
	}
	hartley := floats.Sum(mat.Col(nil, 8, od))
	if hartley < 50 {
		t.Errorf("Hartley band optical depth %g", hartley)
	}
}

func TestOpticalDepthRayleigh(t *testing.T) {
	p := Reference()
	zero, err := xsec.NewCurve("zero", xsec.Node{T: 250})
	if err != nil {
		t.Fatal(err)
	}
	od, err := BuildOpticalDepth(p, make([]float64, p.Layers()), zero, zero)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < p.Layers(); i++ {
		for b := 0; b < xsec.NBins; b++ {
			if want := xsec.Rayleigh(b) * p.Density[i]; od.At(i, b) != want {
				t.Errorf("layer %d bin %d: have %g, want %g", i, b, od.At(i, b), want)
			}
		}
	}
	if _, err := BuildOpticalDepth(p, []float64{1}, zero, zero); err == nil {
		t.Error("should be an error")
	}
}

func tempFile(t *testing.T) *os.File {
	f, err := ioutil.TempFile("", "photolysis_atmosphere")
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestApBpNCF(t *testing.T) {
	f := tempFile(t)
	defer os.Remove(f.Name())
	defer f.Close()
	if err := WriteApBp(f, geos72Ap, geos72Bp); err != nil {
		t.Fatal(err)
	}
	ap, bp, err := LoadApBp(f)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.Equal(ap, geos72Ap) || !floats.Equal(bp, geos72Bp) {
		t.Errorf("coefficients changed in round trip")
	}
	p, err := NewProfile(ap, bp, SurfacePressure, referenceT)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.Equal(p.Height, Reference().Height) {
		t.Errorf("heights differ")
	}
}

func TestProfileNCF(t *testing.T) {
	f := tempFile(t)
	defer os.Remove(f.Name())
	defer f.Close()
	p := Reference()
	od := ReferenceOpticalDepth()
	if err := p.WriteNCF(f, od); err != nil {
		t.Fatal(err)
	}
	p2, od2, err := ReadNCF(f)
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Diff(p, p2); len(diff) != 0 {
		t.Errorf("profile changed in round trip: %v", diff)
	}
	if !mat.Equal(od, od2) {
		t.Error("optical depth changed in round trip")
	}
	if err := p.WriteNCF(f, mat.NewDense(2, 2, nil)); err == nil {
		t.Error("should be an error")
	}
}
