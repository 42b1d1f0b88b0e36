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

// Package solar calculates the solar geometry that drives photolysis.
//
// The declination formula is the simple cosine approximation used by
// Fast-JX rather than a precise ephemeris, and the magnitude of the latitude
// is used so southern-hemisphere locations see northern-hemisphere seasons.
package solar

import (
	"math"
	"time"
)

// degToRad converts an angle from degrees to radians.
func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

// Declination returns the solar declination [degrees] on the given day of
// the year.
func Declination(doy int) float64 {
	return -23.45 * math.Cos(degToRad(360.0/365.0*float64(doy+10)))
}

// LocalSolarTime returns the local solar hour [0, 24) at longitude lon
// [degrees, west positive] for time t: the UTC hour minus lon/15.
func LocalSolarTime(t time.Time, lon float64) float64 {
	t = t.UTC()
	h := float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600 +
		float64(t.Nanosecond())/3.6e12
	h = math.Mod(h-lon/15, 24)
	if h < 0 {
		h += 24
	}
	return h
}

// CosSZA returns the cosine of the solar zenith angle at time t,
// latitude lat, and longitude lon [degrees, west positive, so 90 is
// 90°W and -90 is 90°E].
// The result is in [-1, 1]; negative values mean the sun is below
// the horizon.
func CosSZA(t time.Time, lat, lon float64) float64 {
	dec := degToRad(Declination(t.UTC().YearDay()))
	ahr := degToRad(15 * (LocalSolarTime(t, lon) - 12))
	latRad := degToRad(math.Abs(lat))
	csza := math.Sin(latRad)*math.Sin(dec) + math.Cos(latRad)*math.Cos(dec)*math.Cos(ahr)
	return math.Max(-1, math.Min(1, csza))
}

// CosSZAUnix is CosSZA for a time given in seconds since the Unix epoch.
func CosSZAUnix(sec int64, lat, lon float64) float64 {
	return CosSZA(time.Unix(sec, 0), lat, lon)
}

// FluxScale returns the factor by which a top-of-atmosphere actinic flux
// is scaled at the given solar zenith angle cosine. There is no flux when the
// sun is below the horizon.
func FluxScale(csza float64) float64 {
	return math.Max(0, csza)
}
