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

package photutil

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/photolysis"
	"github.com/spatialmodel/photolysis/science/atmosphere"
	"github.com/spatialmodel/photolysis/science/xsec"
	"github.com/spf13/cast"
)

// Engine creates a photolysis engine from the settings in cfg.
func Engine(cfg *viper.Viper) (*photolysis.Engine, error) {
	threshold, err := cast.ToFloat64E(cfg.Get("Threshold"))
	if err != nil {
		return nil, fmt.Errorf("photolysis: invalid Threshold: %v", err)
	}
	cacheSize, err := cast.ToIntE(cfg.Get("CacheSize"))
	if err != nil {
		return nil, fmt.Errorf("photolysis: invalid CacheSize: %v", err)
	}
	opts := []photolysis.Option{
		photolysis.WithThreshold(threshold),
		photolysis.WithCacheSize(cacheSize),
		photolysis.WithLogger(logrus.StandardLogger()),
	}

	if path := os.ExpandEnv(cfg.GetString("CrossSectionFile")); path != "" {
		curves, err := loadCrossSections(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, photolysis.WithCrossSections(curves))
	}

	if path := os.ExpandEnv(cfg.GetString("ApBpFile")); path != "" {
		psurf, err := cast.ToFloat64E(cfg.Get("SurfacePressure"))
		if err != nil {
			return nil, fmt.Errorf("photolysis: invalid SurfacePressure: %v", err)
		}
		p, err := loadProfile(path, psurf)
		if err != nil {
			return nil, err
		}
		opts = append(opts, photolysis.WithProfile(p, atmosphere.ReferenceO3()))
	}
	return photolysis.NewEngine(opts...)
}

func loadCrossSections(path string) (map[string]*xsec.Curve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("photolysis: opening CrossSectionFile: %v", err)
	}
	defer f.Close()
	curves, err := xsec.LoadTOML(f)
	if err != nil {
		return nil, fmt.Errorf("photolysis: reading CrossSectionFile %s: %v", path, err)
	}
	logrus.WithFields(logrus.Fields{"file": path, "curves": len(curves)}).Info("loaded cross sections")
	return curves, nil
}

// loadProfile creates an atmospheric profile from the Ap/Bp coefficients
// in the netcdf file at path. The layers take the reference temperature.
func loadProfile(path string, psurf float64) (*atmosphere.Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("photolysis: opening ApBpFile: %v", err)
	}
	defer f.Close()
	ap, bp, err := atmosphere.LoadApBp(f)
	if err != nil {
		return nil, err
	}
	temp := atmosphere.ReferenceTemperature()
	if len(ap) != len(temp) {
		return nil, fmt.Errorf("photolysis: ApBpFile has %d levels; it needs %d", len(ap), len(temp))
	}
	p, err := atmosphere.NewProfile(ap, bp, psurf, temp)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"file": path, "layers": p.Layers()}).Info("loaded vertical grid")
	return p, nil
}

// getFloats returns the values of the named configuration variables
// as floats.
func getFloats(cfg *viper.Viper, names ...string) ([]float64, error) {
	o := make([]float64, len(names))
	for i, n := range names {
		v, err := cast.ToFloat64E(cfg.Get(n))
		if err != nil {
			return nil, fmt.Errorf("photolysis: invalid value for %s: %v", n, err)
		}
		o[i] = v
	}
	return o, nil
}

// parseTime parses an RFC 3339 time. An empty string gives the current
// time.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return t, fmt.Errorf("photolysis: invalid time: %v", err)
	}
	return t, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return t, fmt.Errorf("photolysis: invalid date: %v", err)
	}
	return t, nil
}

// outputFile expands environment variables in f, substituting def if
// f is empty, and makes sure its directory exists.
func outputFile(f, def string) (string, error) {
	if f == "" {
		f = def
	}
	f = os.ExpandEnv(f)
	if _, err := os.Stat(filepath.Dir(f)); err != nil {
		return f, fmt.Errorf("photolysis: the output directory doesn't exist: %v", err)
	}
	return f, nil
}
