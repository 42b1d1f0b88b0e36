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

// Package hash creates keys for the attenuated actinic flux cache.
package hash

import (
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"hash/fnv"
	"math"

	"github.com/davecgh/go-spew/spew"
)

// Request identifies an attenuated actinic flux spectrum by the exact
// pressure [Pa] and solar zenith angle cosine it is calculated for.
type Request struct {
	Pressure, CSZA float64
}

// Key returns the cache key of r. Requests whose inputs differ in any
// bit, including the sign of zero, have different keys.
func (r Request) Key() string {
	h := fnv.New128a()
	binary.Write(h, binary.LittleEndian, [2]uint64{
		math.Float64bits(r.Pressure),
		math.Float64bits(r.CSZA),
	})
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Keyer is implemented by objects that provide their own cache key.
type Keyer interface {
	Key() string
}

// Hash returns a cache key for object. Keyers are keyed by their Key
// method; other objects are keyed by their gob encoding, or by their
// printed contents when gob can't encode them.
func Hash(object interface{}) string {
	if k, ok := object.(Keyer); ok {
		return k.Key()
	}
	h := fnv.New128a()
	if err := gob.NewEncoder(h).Encode(object); err == nil {
		return fmt.Sprintf("%x", h.Sum(nil))
	}
	h.Reset()
	printer := spew.ConfigState{
		Indent:                  " ",
		SortKeys:                true,
		DisableMethods:          true,
		SpewKeys:                true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
	printer.Fprintf(h, "%#v", object)
	return fmt.Sprintf("%x", h.Sum(nil))
}
