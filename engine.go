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

// Package photolysis calculates photolysis rate coefficients (J-values)
// for atmospheric chemistry, using the Fast-JX wavelength bins,
// temperature-dependent cross sections, and a pseudo-spherical model of
// the direct solar beam through a layered atmosphere.
package photolysis

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/ctessum/requestcache"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/photolysis/internal/hash"
	"github.com/spatialmodel/photolysis/science/atmosphere"
	"github.com/spatialmodel/photolysis/science/directflux"
	"github.com/spatialmodel/photolysis/science/solar"
	"github.com/spatialmodel/photolysis/science/xsec"
	"gonum.org/v1/gonum/mat"
)

// DefaultCacheSize is the default number of attenuated spectra kept in memory.
const DefaultCacheSize = 1000

// Engine calculates photolysis rates. Its tables are built when it is
// created and never modified afterward, so it is safe for concurrent use.
type Engine struct {
	curves     [numChannels]*xsec.Curve
	attenuator *directflux.Attenuator
	flux       [xsec.NBins]float64

	fluxCache *requestcache.Cache

	// Log receives information about the engine.
	Log logrus.FieldLogger
}

type engineConfig struct {
	curves    map[string]*xsec.Curve
	profile   *atmosphere.Profile
	o3        []float64
	flux      [xsec.NBins]float64
	threshold float64
	cacheSize int
	log       logrus.FieldLogger
}

// Option configures an Engine.
type Option func(*engineConfig) error

// WithCrossSections replaces the reference cross-section curves with the
// given curves, keyed by curve name (see the xsec package). It can
// replace channel cross sections as well as the O2 and O3 absorption
// used for the optical depth of the atmosphere.
func WithCrossSections(curves map[string]*xsec.Curve) Option {
	return func(c *engineConfig) error {
		for name, curve := range curves {
			if curve == nil {
				return fmt.Errorf("photolysis: nil cross section for %s", name)
			}
			c.curves[name] = curve
		}
		return nil
	}
}

// WithProfile replaces the reference atmosphere with profile p and O3
// mixing ratio o3 [mol/mol] in each layer.
func WithProfile(p *atmosphere.Profile, o3 []float64) Option {
	return func(c *engineConfig) error {
		if p == nil {
			return fmt.Errorf("photolysis: nil atmospheric profile")
		}
		if len(o3) != p.Layers() {
			return fmt.Errorf("photolysis: O3 profile has %d layers but atmosphere has %d", len(o3), p.Layers())
		}
		c.profile = p
		c.o3 = o3
		return nil
	}
}

// WithFlux replaces the reference top-of-atmosphere actinic flux.
func WithFlux(flux [xsec.NBins]float64) Option {
	return func(c *engineConfig) error {
		for b, f := range flux {
			if f < 0 {
				return fmt.Errorf("photolysis: negative actinic flux %g in bin %d", f, b)
			}
		}
		c.flux = flux
		return nil
	}
}

// WithThreshold sets the optical depth above which the direct beam is
// considered fully extinguished.
func WithThreshold(tau float64) Option {
	return func(c *engineConfig) error {
		if !(tau > 0) {
			return fmt.Errorf("photolysis: optical depth threshold must be positive; got %g", tau)
		}
		c.threshold = tau
		return nil
	}
}

// WithCacheSize sets the number of attenuated spectra kept in memory.
func WithCacheSize(n int) Option {
	return func(c *engineConfig) error {
		if n < 1 {
			return fmt.Errorf("photolysis: cache size must be at least 1; got %d", n)
		}
		c.cacheSize = n
		return nil
	}
}

// WithLogger sets the logger used by the engine.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *engineConfig) error {
		c.log = log
		return nil
	}
}

// curve returns the override curve with the given name if there is one,
// and otherwise the reference curve.
func (c *engineConfig) curve(name string) (*xsec.Curve, error) {
	if curve, ok := c.curves[name]; ok {
		return curve, nil
	}
	return xsec.Reference(name)
}

// NewEngine creates a photolysis engine. Without options it uses the
// reference cross sections, actinic flux, and atmosphere.
func NewEngine(opts ...Option) (*Engine, error) {
	c := &engineConfig{
		curves:    make(map[string]*xsec.Curve),
		flux:      xsec.ReferenceFlux(),
		threshold: directflux.DefaultThreshold,
		cacheSize: DefaultCacheSize,
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	e := &Engine{flux: c.flux, Log: c.log}

	used := map[string]bool{xsec.O2: true, xsec.O3: true}
	for _, ch := range Channels() {
		curve, err := c.curve(ch.CurveName())
		if err != nil {
			return nil, err
		}
		e.curves[ch] = curve
		used[ch.CurveName()] = true
	}
	for name := range c.curves {
		if !used[name] {
			e.Log.WithField("curve", name).Warn("photolysis: unused cross section")
		}
	}

	_, o2Override := c.curves[xsec.O2]
	_, o3Override := c.curves[xsec.O3]
	var err error
	if c.profile == nil && !o2Override && !o3Override {
		e.attenuator, err = directflux.New(atmosphere.Reference(), atmosphere.ReferenceOpticalDepth(), c.threshold)
	} else {
		e.attenuator, err = newAttenuator(c)
	}
	if err != nil {
		return nil, err
	}

	e.fluxCache = requestcache.NewCache(func(ctx context.Context, request interface{}) (interface{}, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r := request.(hash.Request)
		return e.attenuator.Flux(e.flux, r.Pressure, r.CSZA), nil
	}, runtime.GOMAXPROCS(-1), requestcache.Deduplicate(), requestcache.Memory(c.cacheSize))

	e.Log.WithFields(logrus.Fields{
		"layers":     e.attenuator.Profile.Layers(),
		"threshold":  e.attenuator.Threshold,
		"cache_size": c.cacheSize,
		"overrides":  len(c.curves),
	}).Debug("photolysis: created engine")
	return e, nil
}

func newAttenuator(c *engineConfig) (*directflux.Attenuator, error) {
	p, o3 := c.profile, c.o3
	if p == nil {
		p, o3 = atmosphere.Reference(), atmosphere.ReferenceO3()
	}
	o2Sigma, err := c.curve(xsec.O2)
	if err != nil {
		return nil, err
	}
	o3Sigma, err := c.curve(xsec.O3)
	if err != nil {
		return nil, err
	}
	od, err := atmosphere.BuildOpticalDepth(p, o3, o2Sigma, o3Sigma)
	if err != nil {
		return nil, err
	}
	return directflux.New(p, od, c.threshold)
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// DefaultEngine returns a shared engine with the reference tables.
func DefaultEngine() *Engine {
	defaultOnce.Do(func() {
		var err error
		defaultEngine, err = NewEngine()
		if err != nil {
			panic(err)
		}
	})
	return defaultEngine
}

// CrossSection returns the cross section [cm²] of channel c in
// wavelength bin at temperature T [K].
func (e *Engine) CrossSection(c Channel, bin int, T float64) float64 {
	return e.curves[c].Interpolate(bin, T)
}

// CrossSections returns the cross sections [cm²] of channel c in all
// wavelength bins at temperature T [K].
func (e *Engine) CrossSections(c Channel, T float64) [xsec.NBins]float64 {
	return e.curves[c].Spectrum(T)
}

func (e *Engine) sigma(c Channel, T float64) func(int) float64 {
	curve := e.curves[c]
	return func(b int) float64 { return curve.Interpolate(b, T) }
}

// BinRates returns the product of actinic flux, cross section, and
// quantum yield of channel c in each wavelength bin at temperature T [K].
func (e *Engine) BinRates(c Channel, flux [xsec.NBins]float64, T float64) [xsec.NBins]float64 {
	return BinRates(flux, e.sigma(c, T), c.QuantumYield())
}

// Flux returns the top-of-atmosphere actinic flux used by e.
func (e *Engine) Flux() [xsec.NBins]float64 { return e.flux }

// Attenuator returns the direct beam model used by e.
func (e *Engine) Attenuator() *directflux.Attenuator { return e.attenuator }

// JCosSZA returns the photolysis rate [s⁻¹] of channel c at temperature
// T [K] and solar zenith angle cosine csza, without attenuation by the
// atmosphere.
func (e *Engine) JCosSZA(c Channel, csza, T float64) float64 {
	return Integrate(e.flux, csza, e.sigma(c, T), c.QuantumYield())
}

// J returns the photolysis rate [s⁻¹] of channel c at time t, latitude
// lat, longitude lon [degrees], and temperature T [K], without attenuation
// by the atmosphere.
func (e *Engine) J(c Channel, t time.Time, lat, lon, T float64) float64 {
	return e.JCosSZA(c, solar.CosSZA(t, lat, lon), T)
}

// Rates returns the unattenuated photolysis rates [s⁻¹] of all channels.
func (e *Engine) Rates(t time.Time, lat, lon, T float64) map[Channel]float64 {
	csza := solar.CosSZA(t, lat, lon)
	o := make(map[Channel]float64, numChannels)
	for _, c := range Channels() {
		o[c] = e.JCosSZA(c, csza, T)
	}
	return o
}

// AttenuatedFlux returns the actinic flux in each wavelength bin that
// reaches pressure [Pa] when the cosine of the solar zenith angle is csza.
// Results are cached by their exact inputs.
func (e *Engine) AttenuatedFlux(ctx context.Context, pressure, csza float64) ([xsec.NBins]float64, error) {
	r := hash.Request{Pressure: pressure, CSZA: csza}
	result, err := e.fluxCache.NewRequest(ctx, r, r.Key()).Result()
	if err != nil {
		return [xsec.NBins]float64{}, fmt.Errorf("photolysis: attenuated flux: %v", err)
	}
	return result.([xsec.NBins]float64), nil
}

// JAttenuated returns the photolysis rate [s⁻¹] of channel c at time t,
// latitude lat, longitude lon [degrees], temperature T [K], and pressure
// [Pa], with the direct solar beam attenuated by the atmosphere above.
func (e *Engine) JAttenuated(ctx context.Context, c Channel, t time.Time, lat, lon, T, pressure float64) (float64, error) {
	csza := solar.CosSZA(t, lat, lon)
	flux, err := e.AttenuatedFlux(ctx, pressure, csza)
	if err != nil {
		return 0, err
	}
	return Integrate(flux, csza, e.sigma(c, T), c.QuantumYield()), nil
}

// Transmission returns the fraction of the direct beam in wavelength bin
// that reaches pressure [Pa] when the cosine of the solar zenith angle
// is csza.
func (e *Engine) Transmission(pressure, csza float64, bin int) float64 {
	return e.attenuator.Bin(pressure, csza, bin)
}

// TransmissionSpectrum is Transmission for all wavelength bins.
func (e *Engine) TransmissionSpectrum(pressure, csza float64) [xsec.NBins]float64 {
	return e.attenuator.Spectrum(pressure, csza)
}

// OpticalDepth returns the vertical optical depth of each layer in each
// wavelength bin.
func (e *Engine) OpticalDepth() mat.Matrix { return e.attenuator.OpticalDepth }

// CacheRequests returns the number of attenuated flux requests received
// by the deduplication cache, the memory cache, and the calculation,
// in that order.
func (e *Engine) CacheRequests() []int { return e.fluxCache.Requests() }
