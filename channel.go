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
	"fmt"
	"strings"

	"github.com/spatialmodel/photolysis/science/xsec"
)

// Channel is a photolysis reaction pathway.
type Channel int

// Photolysis channels.
const (
	O3_O1D Channel = iota // O3 + hν -> O(¹D) + O2
	H2O2                  // H2O2 + hν -> 2OH
	CH2Oa                 // CH2O + hν -> 2HO2 + CO
	CH2Ob                 // CH2O + hν -> H2 + CO
	CH3OOH                // CH3OOH + hν -> OH + HO2 + CH2O
	NO2                   // NO2 + hν -> NO + O
	numChannels
)

// channelInfo holds the cross-section curve name and quantum yield of
// each channel.
var channelInfo = [numChannels]struct {
	name  string
	curve string
	phi   float64
}{
	O3_O1D: {name: "O3_O1D", curve: xsec.O3O1D, phi: 1},
	H2O2:   {name: "H2O2", curve: xsec.H2O2, phi: 1},
	CH2Oa:  {name: "CH2Oa", curve: xsec.CH2Oa, phi: 1},
	CH2Ob:  {name: "CH2Ob", curve: xsec.CH2Ob, phi: 1},
	CH3OOH: {name: "CH3OOH", curve: xsec.CH3OOH, phi: 1},
	NO2:    {name: "NO2", curve: xsec.NO2, phi: 1},
}

// Channels returns all of the photolysis channels.
func Channels() []Channel {
	o := make([]Channel, numChannels)
	for i := range o {
		o[i] = Channel(i)
	}
	return o
}

func (c Channel) valid() bool { return c >= 0 && c < numChannels }

func (c Channel) String() string {
	if !c.valid() {
		return fmt.Sprintf("Channel(%d)", int(c))
	}
	return channelInfo[c].name
}

// CurveName returns the name of the cross-section curve used by c.
func (c Channel) CurveName() string { return channelInfo[c].curve }

// QuantumYield returns the quantum yield of c.
func (c Channel) QuantumYield() float64 { return channelInfo[c].phi }

// ParseChannel returns the channel with the given name. Matching is not
// case sensitive.
func ParseChannel(name string) (Channel, error) {
	for i, ci := range channelInfo {
		if strings.EqualFold(ci.name, name) {
			return Channel(i), nil
		}
	}
	names := make([]string, numChannels)
	for i, ci := range channelInfo {
		names[i] = ci.name
	}
	return -1, fmt.Errorf("photolysis: invalid channel %q; valid channels are %v", name, names)
}
