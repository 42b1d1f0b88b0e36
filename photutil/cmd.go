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

// Package photutil holds the command-line interface to the photolysis
// engine.
package photutil

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ctessum/unit"
	"github.com/lnashier/viper"
	"github.com/spatialmodel/photolysis"
	"github.com/spatialmodel/photolysis/science/xsec"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel specifies the minimum level of log messages to print:
              debug, info, warning, or error.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "CrossSectionFile",
			usage: `
              CrossSectionFile specifies the path to a TOML file with
              cross sections that replace the built-in reference values.
              It can include environment variables.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "ApBpFile",
			usage: `
              ApBpFile specifies the path to a NetCDF file with hybrid-sigma
              vertical grid coefficients "ap" [hPa] and "bp" [-] that replace
              the built-in GEOS 72-layer grid. It must have the same number
              of levels as the built-in grid. It can include environment
              variables.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "SurfacePressure",
			usage: `
              SurfacePressure specifies the surface pressure [hPa] used with
              ApBpFile.`,
			defaultVal: 1013.25,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Threshold",
			usage: `
              Threshold specifies the optical depth above which the direct
              solar beam is considered fully extinguished.`,
			defaultVal: 76.0,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "CacheSize",
			usage: `
              CacheSize specifies the number of attenuated actinic flux
              spectra to keep in memory.`,
			defaultVal: 1000,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "channel",
			usage: `
              channel specifies the photolysis channel: O3_O1D, H2O2, CH2Oa,
              CH2Ob, CH3OOH, or NO2.`,
			shorthand:  "c",
			defaultVal: "NO2",
			flagsets:   []*pflag.FlagSet{jvalueCmd.Flags(), xsectionCmd.Flags(), plotCmd.Flags()},
		},
		{
			name: "time",
			usage: `
              time specifies the time in RFC 3339 format, for example
              2024-03-20T12:00:00Z. The current time is used if it is empty.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{jvalueCmd.Flags()},
		},
		{
			name: "date",
			usage: `
              date specifies the day to plot in YYYY-MM-DD format (UTC).`,
			defaultVal: "2024-03-20",
			flagsets:   []*pflag.FlagSet{plotCmd.Flags()},
		},
		{
			name: "lat",
			usage: `
              lat specifies the latitude [degrees].`,
			defaultVal: 40.0,
			flagsets:   []*pflag.FlagSet{jvalueCmd.Flags(), plotCmd.Flags()},
		},
		{
			name: "lon",
			usage: `
              lon specifies the longitude [degrees, west positive].`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{jvalueCmd.Flags(), plotCmd.Flags()},
		},
		{
			name: "temperature",
			usage: `
              temperature specifies the air temperature [K].`,
			shorthand:  "T",
			defaultVal: 298.0,
			flagsets:   []*pflag.FlagSet{jvalueCmd.Flags(), xsectionCmd.Flags(), plotCmd.Flags()},
		},
		{
			name: "pressure",
			usage: `
              pressure specifies the air pressure [Pa]. When it is zero,
              photolysis rates are calculated from the unattenuated
              top-of-atmosphere actinic flux.`,
			shorthand:  "p",
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{jvalueCmd.Flags(), transmissionCmd.Flags(), plotCmd.Flags()},
		},
		{
			name: "csza",
			usage: `
              csza specifies the cosine of the solar zenith angle.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{transmissionCmd.Flags()},
		},
		{
			name: "output",
			usage: `
              output specifies the path to the output file.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{profileCmd.Flags(), plotCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("PHOTOLYSIS")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	Root.AddCommand(versionCmd)
	Root.AddCommand(jvalueCmd)
	Root.AddCommand(xsectionCmd)
	Root.AddCommand(transmissionCmd)
	Root.AddCommand(profileCmd)
	Root.AddCommand(plotCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets up logging.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("photolysis: problem reading configuration file: %v", err)
		}
	}
	return setLogging(Cfg.GetString("LogLevel"))
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "photolysis",
	Short: "Photolysis rate coefficients for atmospheric chemistry.",
	Long: `photolysis calculates photolysis rate coefficients (J-values) using the
Fast-JX wavelength bins, temperature-dependent cross sections, and a
pseudo-spherical model of the direct solar beam through a layered atmosphere.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'PHOTOLYSIS_var' where 'var' is the
name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of photolysis.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "photolysis v%s\n", photolysis.Version)
	},
	DisableAutoGenTag: true,
}

var jvalueCmd = &cobra.Command{
	Use:   "jvalue",
	Short: "Calculate a photolysis rate.",
	Long: `jvalue calculates the photolysis rate coefficient of a channel at a
given time, location, temperature, and optionally pressure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := Engine(Cfg)
		if err != nil {
			return err
		}
		c, err := photolysis.ParseChannel(Cfg.GetString("channel"))
		if err != nil {
			return err
		}
		t, err := parseTime(Cfg.GetString("time"))
		if err != nil {
			return err
		}
		loc, err := getFloats(Cfg, "lat", "lon", "temperature", "pressure")
		if err != nil {
			return err
		}
		lat, lon, T, pressure := loc[0], loc[1], loc[2], loc[3]
		var j float64
		if pressure == 0 {
			j = e.J(c, t, lat, lon, T)
		} else {
			j, err = e.JAttenuated(context.Background(), c, t, lat, lon, T, pressure)
			if err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v %s: %g\n", c, t.Format("2006-01-02T15:04:05Z07:00"), unit.New(j, unit.Herz))
		return nil
	},
	DisableAutoGenTag: true,
}

var xsectionCmd = &cobra.Command{
	Use:   "xsection",
	Short: "Print cross sections.",
	Long: `xsection prints the cross section of a channel in each wavelength bin
at a given temperature.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := Engine(Cfg)
		if err != nil {
			return err
		}
		c, err := photolysis.ParseChannel(Cfg.GetString("channel"))
		if err != nil {
			return err
		}
		v, err := getFloats(Cfg, "temperature")
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 1, ' ', 0)
		fmt.Fprintln(w, "bin\twavelength (nm)\tcross section")
		for b, sigma := range e.CrossSections(c, v[0]) {
			// cm² to m²
			fmt.Fprintf(w, "%d\t%g\t%g\n", b, xsec.WL(b), unit.New(sigma*1.0e-4, unit.Meter2))
		}
		return w.Flush()
	},
	DisableAutoGenTag: true,
}

var transmissionCmd = &cobra.Command{
	Use:   "transmission",
	Short: "Print direct beam transmission.",
	Long: `transmission prints the fraction of the direct solar beam in each
wavelength bin that reaches a given pressure at a given solar zenith angle.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := Engine(Cfg)
		if err != nil {
			return err
		}
		v, err := getFloats(Cfg, "pressure", "csza")
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 1, ' ', 0)
		fmt.Fprintln(w, "bin\twavelength (nm)\ttransmission")
		for b, f := range e.TransmissionSpectrum(v[0], v[1]) {
			fmt.Fprintf(w, "%d\t%g\t%g\n", b, xsec.WL(b), f)
		}
		return w.Flush()
	},
	DisableAutoGenTag: true,
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Write the atmospheric profile.",
	Long: `profile writes the pressure, temperature, air density, height, and
optical depth of the atmosphere to a NetCDF file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := Engine(Cfg)
		if err != nil {
			return err
		}
		out, err := outputFile(Cfg.GetString("output"), "profile.ncf")
		if err != nil {
			return err
		}
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("photolysis: creating profile file: %v", err)
		}
		a := e.Attenuator()
		if err = a.Profile.WriteNCF(f, a.OpticalDepth); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
	DisableAutoGenTag: true,
}

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot photolysis rates over a day.",
	Long: `plot creates a plot of the photolysis rate of a channel over one day
at a given location and temperature. The output format is chosen by the
file extension, for example .png, .svg, or .pdf.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := Engine(Cfg)
		if err != nil {
			return err
		}
		c, err := photolysis.ParseChannel(Cfg.GetString("channel"))
		if err != nil {
			return err
		}
		day, err := parseDate(Cfg.GetString("date"))
		if err != nil {
			return err
		}
		v, err := getFloats(Cfg, "lat", "lon", "temperature", "pressure")
		if err != nil {
			return err
		}
		out, err := outputFile(Cfg.GetString("output"), "diurnal.png")
		if err != nil {
			return err
		}
		p, err := DiurnalPlot(e, c, day, v[0], v[1], v[2], v[3])
		if err != nil {
			return err
		}
		return SavePlot(p, out)
	},
	DisableAutoGenTag: true,
}

