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
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/spatialmodel/photolysis"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// diurnalSteps is the number of points per day in a diurnal plot.
const diurnalSteps = 96

// Diurnal returns the photolysis rate [s⁻¹] of channel c every 15 minutes
// over the UTC day starting at day. X is hours since the start of the day.
// If pressure [Pa] is greater than zero the rates use the attenuated flux
// at that pressure, otherwise they use the top-of-atmosphere flux.
func Diurnal(ctx context.Context, e *photolysis.Engine, c photolysis.Channel, day time.Time, lat, lon, T, pressure float64) (plotter.XYs, error) {
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	xy := make(plotter.XYs, diurnalSteps+1)
	for i := range xy {
		t := day.Add(time.Duration(i) * 24 * time.Hour / diurnalSteps)
		xy[i].X = t.Sub(day).Hours()
		if pressure > 0 {
			j, err := e.JAttenuated(ctx, c, t, lat, lon, T, pressure)
			if err != nil {
				return nil, err
			}
			xy[i].Y = j
		} else {
			xy[i].Y = e.J(c, t, lat, lon, T)
		}
	}
	return xy, nil
}

// DiurnalPlot creates a plot of the photolysis rate of channel c over the
// UTC day starting at day. When pressure is greater than zero, the
// attenuated rate is plotted along with the top-of-atmosphere rate.
func DiurnalPlot(e *photolysis.Engine, c photolysis.Channel, day time.Time, lat, lon, T, pressure float64) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = fmt.Sprintf("%v photolysis at (%.2f, %.2f)\n%s", c, lon, lat, day.Format("2006-01-02"))
	p.X.Label.Text = "Hour (UTC)"
	p.Y.Label.Text = "J (1/s)"
	p.X.Min, p.X.Max = 0, 24
	p.Y.Min = 0
	p.Legend.Top = true
	p.Legend.Left = true

	toa, err := Diurnal(context.Background(), e, c, day, lat, lon, T, 0)
	if err != nil {
		return nil, err
	}
	l, err := plotter.NewLine(toa)
	if err != nil {
		return nil, err
	}
	l.Color = color.NRGBA{0, 0, 0, 255}
	p.Add(l)
	p.Legend.Add("top of atmosphere", l)

	if pressure > 0 {
		att, err := Diurnal(context.Background(), e, c, day, lat, lon, T, pressure)
		if err != nil {
			return nil, err
		}
		l2, err := plotter.NewLine(att)
		if err != nil {
			return nil, err
		}
		l2.Color = color.NRGBA{255, 0, 0, 255}
		l2.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(l2)
		p.Legend.Add(fmt.Sprintf("%g Pa", pressure), l2)
	}
	return p, nil
}

// SavePlot saves p to file. The format is chosen from the file extension.
func SavePlot(p *plot.Plot, file string) error {
	if err := p.Save(6*vg.Inch, 4*vg.Inch, file); err != nil {
		return fmt.Errorf("photolysis: saving plot: %v", err)
	}
	return nil
}
