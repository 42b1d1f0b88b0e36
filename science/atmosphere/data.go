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

// geos72Ap holds the hybrid-sigma Ap coefficients [hPa] at the 73 level
// edges of the GEOS 72-layer vertical grid. Each edge is used as the bottom
// of a layer, and the layer above the last edge extends to zero pressure.
var geos72Ap = []float64{
	0, 0.04804826, 6.593752, 13.1348, 19.61311,
	26.09201, 32.57081, 38.98201, 45.33901, 51.69611,
	58.05321, 64.36264, 70.62198, 78.83422, 89.09992,
	99.36521, 109.1817, 118.9586, 128.6959, 142.91,
	156.26, 169.609, 181.619, 193.097, 203.259,
	212.15, 218.776, 223.898, 224.363, 216.865,
	201.192, 176.93, 150.393, 127.837, 108.663,
	92.36572, 78.51231, 66.60341, 56.38791, 47.64391,
	40.17541, 33.81001, 28.36781, 23.73041, 19.7916,
	16.4571, 13.6434, 11.2769, 9.292942, 7.619842,
	6.216801, 5.046801, 4.076571, 3.276431, 2.620211,
	2.08497, 1.65079, 1.30051, 1.01944, 0.7951341,
	0.6167791, 0.4758061, 0.3650411, 0.2785261, 0.211349,
	0.159495, 0.119703, 0.08934502, 0.06600001, 0.04758501,
	0.0327, 0.02, 0.01,
}

// geos72Bp holds the hybrid-sigma Bp coefficients [-] matching geos72Ap.
var geos72Bp = []float64{
	1, 0.984952, 0.963406, 0.941865, 0.920387, 0.898908,
	0.877429, 0.856018, 0.8346609, 0.8133039, 0.7919469, 0.7706375,
	0.7493782, 0.721166, 0.6858999, 0.6506349, 0.6158184, 0.5810415,
	0.5463042, 0.4945902, 0.4437402, 0.3928911, 0.3433811, 0.2944031,
	0.2467411, 0.2003501, 0.1562241, 0.1136021, 0.06372006, 0.02801004,
	0.006960025, 8.175413e-09, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0,
	0,
}

// referenceT is the climatological mid-latitude temperature [K] of each layer.
var referenceT = []float64{
	287.7, 286.9, 286.1, 285.2, 284.3, 283.4, 282.6, 281.6, 280.7, 279.8,
	278.9, 277.9, 276.8, 275.3, 273.6, 271.8, 270.0, 268.2, 265.8, 262.8,
	259.7, 256.4, 252.9, 249.2, 245.2, 241.0, 236.4, 230.6, 223.6, 216.7,
	216.7, 216.7, 216.7, 216.7, 216.7, 216.7, 216.7, 216.7, 217.0, 218.1,
	219.2, 220.3, 221.4, 222.6, 223.8, 225.0, 226.2, 227.5, 229.1, 232.9,
	236.9, 241.0, 245.3, 249.8, 254.5, 259.3, 264.4, 269.7, 270.6, 270.6,
	266.2, 260.5, 254.9, 249.2, 243.6, 238.0, 232.4, 226.9, 221.1, 214.9,
	209.6, 202.8, 190.2,
}

// referenceO3 is the climatological O3 mixing ratio [mol/mol] of each layer,
// about 300 Dobson units in total.
var referenceO3 = []float64{
	3.772e-08, 3.772e-08, 3.773e-08, 3.773e-08, 3.774e-08, 3.774e-08,
	3.775e-08, 3.776e-08, 3.776e-08, 3.777e-08, 3.778e-08, 3.780e-08,
	3.781e-08, 3.783e-08, 3.787e-08, 3.790e-08, 3.795e-08, 3.801e-08,
	3.811e-08, 3.827e-08, 3.850e-08, 3.883e-08, 3.932e-08, 4.006e-08,
	4.118e-08, 4.292e-08, 4.570e-08, 5.120e-08, 6.231e-08, 8.084e-08,
	1.106e-07, 1.573e-07, 2.289e-07, 3.354e-07, 4.892e-07, 7.048e-07,
	9.996e-07, 1.394e-06, 1.905e-06, 2.550e-06, 3.336e-06, 4.260e-06,
	5.301e-06, 6.415e-06, 7.532e-06, 8.560e-06, 9.394e-06, 9.929e-06,
	1.008e-05, 9.800e-06, 9.065e-06, 7.932e-06, 6.522e-06, 5.004e-06,
	3.554e-06, 2.320e-06, 1.382e-06, 7.492e-07, 3.737e-07, 1.794e-07,
	9.110e-08, 5.588e-08, 4.330e-08, 3.925e-08, 3.808e-08, 3.778e-08,
	3.771e-08, 3.769e-08, 3.769e-08, 3.769e-08, 3.769e-08, 3.769e-08,
	3.769e-08,
}
