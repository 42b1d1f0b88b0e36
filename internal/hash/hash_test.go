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

package hash

import (
	"math"
	"testing"
)

type layer struct {
	Index    int
	Pressure float64
}

type private struct {
	a []float64
}

func TestRequestKey(t *testing.T) {
	tests := []struct {
		name string
		a, b Request
		same bool
	}{
		{
			name: "identical",
			a:    Request{Pressure: 50000, CSZA: 0.5},
			b:    Request{Pressure: 50000, CSZA: 0.5},
			same: true,
		},
		{
			name: "next csza",
			a:    Request{Pressure: 50000, CSZA: 0.5},
			b:    Request{Pressure: 50000, CSZA: math.Nextafter(0.5, 1)},
		},
		{
			name: "swapped",
			a:    Request{Pressure: 0.5, CSZA: 1},
			b:    Request{Pressure: 1, CSZA: 0.5},
		},
		{
			name: "signed zero",
			a:    Request{Pressure: 50000, CSZA: 0},
			b:    Request{Pressure: 50000, CSZA: math.Copysign(0, -1)},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ka, kb := test.a.Key(), test.b.Key()
			if (ka == kb) != test.same {
				t.Errorf("%+v: %s; %+v: %s", test.a, ka, test.b, kb)
			}
			if Hash(test.a) != ka {
				t.Error("Hash should use the request key")
			}
		})
	}
}

func TestHash(t *testing.T) {
	a := Hash(layer{Index: 3, Pressure: 50000})
	b := Hash(layer{Index: 3, Pressure: 50000})
	c := Hash(layer{Index: 4, Pressure: 50000})
	if a != b || a == c {
		t.Errorf("gob keys: %s, %s, %s", a, b, c)
	}
	p1 := Hash(private{a: []float64{1, 2}})
	p2 := Hash(private{a: []float64{1, 2}})
	p3 := Hash(private{a: []float64{1, 3}})
	if p1 != p2 || p1 == p3 {
		t.Errorf("spew keys: %s, %s, %s", p1, p2, p3)
	}
}
