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
	"os"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
	"github.com/spatialmodel/photolysis/science/xsec"
	"gonum.org/v1/gonum/mat"
)

// readNCF reads variable v out of netcdf file f.
func readNCF(f *cdf.File, v string) (*sparse.DenseArray, error) {
	dims := f.Header.Lengths(v)
	if len(dims) == 0 {
		return nil, fmt.Errorf("atmosphere: read netcdf: variable %v not in file", v)
	}
	r := f.Reader(v, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("atmosphere: read netcdf variable %s: %v", v, err)
	}
	data := sparse.ZerosDense(dims...)
	switch vals := buf.(type) {
	case []float32:
		for i, val := range vals {
			data.Elements[i] = float64(val)
		}
	case []float64:
		copy(data.Elements, vals)
	default:
		return nil, fmt.Errorf("atmosphere: netcdf variable %s has unsupported type %T", v, buf)
	}
	return data, nil
}

// writeNCF writes data to variable v of netcdf file f.
func writeNCF(f *cdf.File, v string, data *sparse.DenseArray) error {
	n := 1
	for _, d := range data.Shape {
		n *= d
	}
	if len(data.Elements) != n {
		return fmt.Errorf("atmosphere: variable %s dims are %d but array length is %d", v, n, len(data.Elements))
	}
	end := f.Header.Lengths(v)
	start := make([]int, len(end))
	w := f.Writer(v, start, end)
	if _, err := w.Write(data.Elements); err != nil {
		return fmt.Errorf("atmosphere: writing variable %s to netcdf file: %v", v, err)
	}
	return nil
}

func vector(v []float64) *sparse.DenseArray {
	d := sparse.ZerosDense(len(v))
	copy(d.Elements, v)
	return d
}

// LoadApBp reads the hybrid-sigma coefficients "ap" [hPa] and "bp" [-]
// from a netcdf file.
func LoadApBp(rw cdf.ReaderWriterAt) (ap, bp []float64, err error) {
	f, err := cdf.Open(rw)
	if err != nil {
		return nil, nil, fmt.Errorf("atmosphere: opening Ap/Bp file: %v", err)
	}
	apData, err := readNCF(f, "ap")
	if err != nil {
		return nil, nil, err
	}
	bpData, err := readNCF(f, "bp")
	if err != nil {
		return nil, nil, err
	}
	if len(apData.Shape) != 1 || len(bpData.Shape) != 1 {
		return nil, nil, fmt.Errorf("atmosphere: ap and bp must be one dimensional")
	}
	if apData.Shape[0] != bpData.Shape[0] {
		return nil, nil, fmt.Errorf("atmosphere: ap has %d levels but bp has %d", apData.Shape[0], bpData.Shape[0])
	}
	return apData.Elements, bpData.Elements, nil
}

// WriteApBp writes hybrid-sigma coefficients to netcdf file w in the
// format read by LoadApBp.
func WriteApBp(w *os.File, ap, bp []float64) error {
	if len(ap) != len(bp) {
		return fmt.Errorf("atmosphere: ap has %d levels but bp has %d", len(ap), len(bp))
	}
	h := cdf.NewHeader([]string{"level"}, []int{len(ap)})
	h.AddAttribute("", "comment", "hybrid-sigma vertical grid coefficients")
	h.AddVariable("ap", []string{"level"}, []float64{0})
	h.AddAttribute("ap", "units", "hPa")
	h.AddVariable("bp", []string{"level"}, []float64{0})
	h.AddAttribute("bp", "units", "1")
	h.Define()
	f, err := cdf.Create(w, h)
	if err != nil {
		return err
	}
	if err = writeNCF(f, "ap", vector(ap)); err != nil {
		return err
	}
	if err = writeNCF(f, "bp", vector(bp)); err != nil {
		return err
	}
	return cdf.UpdateNumRecs(w)
}

// profileVars lists the variables written by WriteNCF.
var profileVars = []struct {
	name, dim, description, units string
}{
	{"Pressure", "layer", "pressure at the bottom edge of each layer", "Pa"},
	{"MidPressure", "layer", "pressure at the middle of each layer", "Pa"},
	{"Temperature", "layer", "layer temperature", "K"},
	{"Density", "layer", "air column in each layer", "molecules cm-2"},
	{"Height", "edge", "height of each layer edge above the surface", "cm"},
}

func (p *Profile) variable(name string) []float64 {
	switch name {
	case "Pressure":
		return p.Pressure
	case "MidPressure":
		return p.MidPressure
	case "Temperature":
		return p.Temperature
	case "Density":
		return p.Density
	case "Height":
		return p.Height
	default:
		panic(fmt.Errorf("atmosphere: invalid profile variable %s", name))
	}
}

// WriteNCF writes p and its optical depth od to netcdf file w.
func (p *Profile) WriteNCF(w *os.File, od *mat.Dense) error {
	nl := p.Layers()
	if r, c := od.Dims(); r != nl+1 || c != xsec.NBins {
		return fmt.Errorf("atmosphere: optical depth is %dx%d; should be %dx%d", r, c, nl+1, xsec.NBins)
	}
	h := cdf.NewHeader([]string{"layer", "edge", "bin"}, []int{nl, nl + 1, xsec.NBins})
	h.AddAttribute("", "comment", "photolysis reference atmosphere")
	for _, v := range profileVars {
		h.AddVariable(v.name, []string{v.dim}, []float64{0})
		h.AddAttribute(v.name, "description", v.description)
		h.AddAttribute(v.name, "units", v.units)
	}
	h.AddVariable("Wavelength", []string{"bin"}, []float64{0})
	h.AddAttribute("Wavelength", "description", "effective wavelength of each bin")
	h.AddAttribute("Wavelength", "units", "nm")
	h.AddVariable("OpticalDepth", []string{"edge", "bin"}, []float64{0})
	h.AddAttribute("OpticalDepth", "description", "vertical optical depth of each layer; the top row is vacuum")
	h.AddAttribute("OpticalDepth", "units", "1")
	h.Define()

	f, err := cdf.Create(w, h)
	if err != nil {
		return err
	}
	for _, v := range profileVars {
		if err = writeNCF(f, v.name, vector(p.variable(v.name))); err != nil {
			return err
		}
	}
	wl := xsec.Wavelengths()
	if err = writeNCF(f, "Wavelength", vector(wl[:])); err != nil {
		return err
	}
	odData := sparse.ZerosDense(nl+1, xsec.NBins)
	for i := 0; i <= nl; i++ {
		for b := 0; b < xsec.NBins; b++ {
			odData.Set(od.At(i, b), i, b)
		}
	}
	if err = writeNCF(f, "OpticalDepth", odData); err != nil {
		return err
	}
	return cdf.UpdateNumRecs(w)
}

// ReadNCF reads a profile and its optical depth from a netcdf file
// written by WriteNCF.
func ReadNCF(rw cdf.ReaderWriterAt) (*Profile, *mat.Dense, error) {
	f, err := cdf.Open(rw)
	if err != nil {
		return nil, nil, fmt.Errorf("atmosphere: opening profile file: %v", err)
	}
	p := new(Profile)
	vars := make(map[string][]float64)
	for _, v := range profileVars {
		d, err := readNCF(f, v.name)
		if err != nil {
			return nil, nil, err
		}
		vars[v.name] = d.Elements
	}
	p.Pressure, p.MidPressure, p.Temperature = vars["Pressure"], vars["MidPressure"], vars["Temperature"]
	p.Density, p.Height = vars["Density"], vars["Height"]
	odData, err := readNCF(f, "OpticalDepth")
	if err != nil {
		return nil, nil, err
	}
	if len(odData.Shape) != 2 || odData.Shape[1] != xsec.NBins {
		return nil, nil, fmt.Errorf("atmosphere: invalid optical depth shape %v", odData.Shape)
	}
	od := mat.NewDense(odData.Shape[0], odData.Shape[1], odData.Elements)
	return p, od, nil
}
