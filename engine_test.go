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
	"context"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/photolysis/science/atmosphere"
	"github.com/spatialmodel/photolysis/science/xsec"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func uniformFlux(v float64) [xsec.NBins]float64 {
	var f [xsec.NBins]float64
	for i := range f {
		f[i] = v
	}
	return f
}

func referenceNodes(t *testing.T, name string) []xsec.Node {
	nodes, err := xsec.ReferenceNodes(name)
	if err != nil {
		t.Fatal(err)
	}
	return nodes
}

// O3 -> O(¹D) at a node temperature reproduces the tabulated cross sections.
func TestBinRatesO3O1D(t *testing.T) {
	e := DefaultEngine()
	nodes := referenceNodes(t, xsec.O3O1D)
	if nodes[0].T != 200 {
		t.Fatalf("first node is %g K", nodes[0].T)
	}
	r := e.BinRates(O3_O1D, uniformFlux(0.1), 200)
	for i := range r {
		if want := 0.1 * nodes[0].Sigma[i]; r[i] != want {
			t.Errorf("bin %d: have %g, want %g", i, r[i], want)
		}
	}
}

func TestBinRatesH2O2(t *testing.T) {
	e := DefaultEngine()
	nodes := referenceNodes(t, xsec.H2O2)
	n := nodes[len(nodes)-1]
	if n.T != 300 {
		t.Fatalf("last node is %g K", n.T)
	}
	r := e.BinRates(H2O2, uniformFlux(0.1), 300)
	for i := range r {
		if want := 0.1 * n.Sigma[i]; r[i] != want {
			t.Errorf("bin %d: have %g, want %g", i, r[i], want)
		}
	}
}

func TestCrossSectionCH2O(t *testing.T) {
	e := DefaultEngine()
	const T = 230.
	for _, c := range []Channel{CH2Oa, CH2Ob} {
		nodes := referenceNodes(t, c.CurveName())
		lo, hi := nodes[0], nodes[1]
		if lo.T != 223 || hi.T != 298 {
			t.Fatalf("%v nodes: %g, %g", c, lo.T, hi.T)
		}
		for b := 0; b < xsec.NBins; b++ {
			want := lo.Sigma[b] + (T-lo.T)/(hi.T-lo.T)*(hi.Sigma[b]-lo.Sigma[b])
			have := e.CrossSection(c, b, T)
			if math.Abs(have-want) > 1e-3 || (want != 0 && different(have, want, 1e-12)) {
				t.Errorf("%v bin %d: have %g, want %g", c, b, have, want)
			}
		}
		s := e.CrossSections(c, T)
		for b, v := range s {
			if v != e.CrossSection(c, b, T) {
				t.Errorf("%v bin %d: spectrum %g", c, b, v)
			}
		}
	}
}

func TestJNO2(t *testing.T) {
	e := DefaultEngine()
	noon := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	j := e.J(NO2, noon, 30, 0, 298)
	if j < 3e-3 || j > 3e-2 {
		t.Errorf("noon J(NO2) = %g", j)
	}
	midnight := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	if j := e.J(NO2, midnight, 30, 0, 298); j != 0 {
		t.Errorf("midnight J(NO2) = %g", j)
	}
	// Local noon moves with longitude.
	if jWest := e.J(NO2, noon.Add(6*time.Hour), 30, 90, 298); different(jWest, j, 1e-12) {
		t.Errorf("noon J(NO2) at 90W = %g, want %g", jWest, j)
	}
	if jNight := e.J(NO2, noon.Add(-6*time.Hour), 30, 90, 298); jNight != 0 {
		t.Errorf("midnight J(NO2) at 90W = %g, want 0", jNight)
	}

	ja, err := e.JAttenuated(context.Background(), NO2, noon, 30, 0, 298, 101325)
	if err != nil {
		t.Fatal(err)
	}
	if !(ja > 0 && ja < j) {
		t.Errorf("attenuated J(NO2) = %g, bulk %g", ja, j)
	}
	jTop, err := e.JAttenuated(context.Background(), NO2, noon, 30, 0, 298, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if jTop != j {
		t.Errorf("top of atmosphere J(NO2) = %g, want %g", jTop, j)
	}
	jNight, err := e.JAttenuated(context.Background(), NO2, midnight, 30, 0, 298, 101325)
	if err != nil {
		t.Fatal(err)
	}
	if jNight != 0 {
		t.Errorf("midnight attenuated J(NO2) = %g", jNight)
	}
}

func TestRates(t *testing.T) {
	e := DefaultEngine()
	noon := time.Date(2024, time.June, 21, 12, 0, 0, 0, time.UTC)
	r := e.Rates(noon, 40, 0, 280)
	if len(r) != len(Channels()) {
		t.Fatalf("%d rates", len(r))
	}
	for c, v := range r {
		if v != e.J(c, noon, 40, 0, 280) {
			t.Errorf("%v: %g", c, v)
		}
		if !(v > 0) {
			t.Errorf("%v: %g", c, v)
		}
	}
}

func TestCache(t *testing.T) {
	e, err := NewEngine(WithCacheSize(10))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	f1, err := e.AttenuatedFlux(ctx, 50000, 0.6)
	if err != nil {
		t.Fatal(err)
	}
	f2, err := e.AttenuatedFlux(ctx, 50000, 0.6)
	if err != nil {
		t.Fatal(err)
	}
	if f1 != f2 {
		t.Errorf("%v != %v", f1, f2)
	}
	r := e.CacheRequests()
	if r[0] != 2 || r[len(r)-1] != 1 {
		t.Errorf("requests: %v", r)
	}
	f3, err := e.AttenuatedFlux(ctx, 50000, math.Nextafter(0.6, 1))
	if err != nil {
		t.Fatal(err)
	}
	if r := e.CacheRequests(); r[len(r)-1] != 2 {
		t.Errorf("different inputs should not share results: %v", r)
	}
	want := e.Attenuator().Flux(e.Flux(), 50000, math.Nextafter(0.6, 1))
	if f3 != want {
		t.Errorf("%v != %v", f3, want)
	}
}

func TestCacheConcurrent(t *testing.T) {
	e, err := NewEngine()
	if err != nil {
		t.Fatal(err)
	}
	noon := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	want := make([]float64, 8)
	for i := range want {
		want[i], err = e.JAttenuated(context.Background(), NO2, noon, 30, 0, 298, float64(10000*(i+1)))
		if err != nil {
			t.Fatal(err)
		}
	}
	var wg sync.WaitGroup
	for k := 0; k < 4; k++ {
		for i := range want {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				j, err := e.JAttenuated(context.Background(), NO2, noon, 30, 0, 298, float64(10000*(i+1)))
				if err != nil {
					t.Error(err)
					return
				}
				if j != want[i] {
					t.Errorf("%d: %g != %g", i, j, want[i])
				}
			}(i)
		}
	}
	wg.Wait()
}

func TestCanceled(t *testing.T) {
	e, err := NewEngine()
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.AttenuatedFlux(ctx, 50000, 0.5); err == nil {
		t.Error("should be an error")
	}
}

func TestTransmission(t *testing.T) {
	e := DefaultEngine()
	s := e.TransmissionSpectrum(60000, 0.4)
	for b, v := range s {
		if v < 0 || v > 1 {
			t.Errorf("bin %d: %g", b, v)
		}
		if e.Transmission(60000, 0.4, b) != v {
			t.Errorf("bin %d: single bin %g != %g", b, e.Transmission(60000, 0.4, b), v)
		}
	}
	if e.Transmission(0.1, -0.5, 0) != 1 {
		t.Error("no attenuation above the model top")
	}
	if r, c := e.OpticalDepth().Dims(); r != atmosphere.Reference().Layers()+1 || c != xsec.NBins {
		t.Errorf("optical depth dims %d×%d", r, c)
	}
}

func TestOptions(t *testing.T) {
	curves, err := xsec.LoadTOML(strings.NewReader(`
[[Curve]]
Name = "NO2"
Temperatures = [250.0]
Sigma = [[0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
          0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 1.0e-19]]

[[Curve]]
Name = "O3"
Temperatures = [250.0]
Sigma = [[0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
          0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0]]

[[Curve]]
Name = "unused"
Temperatures = [250.0]
Sigma = [[0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
          0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0]]
`))
	if err != nil {
		t.Fatal(err)
	}
	log := logrus.New()
	log.Out = &strings.Builder{}
	e, err := NewEngine(WithCrossSections(curves), WithThreshold(10), WithLogger(log),
		WithFlux(uniformFlux(1e14)))
	if err != nil {
		t.Fatal(err)
	}
	if v := e.CrossSection(NO2, 17, 300); v != 1e-19 {
		t.Errorf("override cross section %g", v)
	}
	if v := e.CrossSection(H2O2, 0, 300); v != DefaultEngine().CrossSection(H2O2, 0, 300) {
		t.Errorf("reference cross section %g", v)
	}
	if e.Attenuator().Threshold != 10 {
		t.Errorf("threshold %g", e.Attenuator().Threshold)
	}
	// Without O3 absorption the Hartley band reaches the surface.
	if v := e.Transmission(101325, 1, 8); !(v > 0) {
		t.Errorf("Hartley band transmission %g", v)
	}
	if !strings.Contains(log.Out.(*strings.Builder).String(), "unused") {
		t.Error("unused curve should be logged")
	}

	p := atmosphere.Reference()
	if _, err := NewEngine(WithProfile(p, make([]float64, p.Layers()))); err != nil {
		t.Error(err)
	}

	bad := [][]Option{
		{WithProfile(p, []float64{1})},
		{WithProfile(nil, nil)},
		{WithThreshold(0)},
		{WithCacheSize(0)},
		{WithFlux(uniformFlux(-1))},
		{WithCrossSections(map[string]*xsec.Curve{"NO2": nil})},
	}
	for i, opts := range bad {
		if _, err := NewEngine(opts...); err == nil {
			t.Errorf("case %d should be an error", i)
		}
	}
}
