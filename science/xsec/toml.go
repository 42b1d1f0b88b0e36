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
	"io"

	"github.com/BurntSushi/toml"
)

// tableFile is the layout of a cross-section TOML file:
//
//	[[Curve]]
//	Name = "NO2"
//	Temperatures = [200.0, 294.0]
//	Sigma = [[...18 values...], [...18 values...]]
//
// Each row of Sigma holds the cross sections [cm²] at the matching
// temperature [K]. Numbers must be written as floats.
type tableFile struct {
	Curve []struct {
		Name         string
		Temperatures []float64
		Sigma        [][]float64
	}
}

// LoadTOML reads cross-section curves from r, keyed by curve name.
func LoadTOML(r io.Reader) (map[string]*Curve, error) {
	f := new(tableFile)
	if _, err := toml.DecodeReader(r, f); err != nil {
		return nil, fmt.Errorf("xsec: reading cross-section file: %v", err)
	}
	o := make(map[string]*Curve, len(f.Curve))
	for _, c := range f.Curve {
		if c.Name == "" {
			return nil, fmt.Errorf("xsec: cross-section curve is missing a name")
		}
		if _, ok := o[c.Name]; ok {
			return nil, fmt.Errorf("xsec: duplicate cross-section curve %s", c.Name)
		}
		if len(c.Temperatures) != len(c.Sigma) {
			return nil, fmt.Errorf("xsec: curve %s has %d temperatures but %d sigma rows",
				c.Name, len(c.Temperatures), len(c.Sigma))
		}
		nodes := make([]Node, len(c.Temperatures))
		for i, T := range c.Temperatures {
			if len(c.Sigma[i]) != NBins {
				return nil, fmt.Errorf("xsec: curve %s at %g K has %d bins; should be %d",
					c.Name, T, len(c.Sigma[i]), NBins)
			}
			nodes[i].T = T
			copy(nodes[i].Sigma[:], c.Sigma[i])
		}
		curve, err := NewCurve(c.Name, nodes...)
		if err != nil {
			return nil, err
		}
		o[c.Name] = curve
	}
	return o, nil
}
