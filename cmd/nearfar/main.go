// Command nearfar projects recorded near-field monitor data onto a set of
// far-field observation angles, following the same flag-driven,
// single-file-argument CLI convention as modecalc.
package main

import (
	"encoding/json"
	"flag"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/waveguide/fields"
	"github.com/cpmech/waveguide/medium"
	"github.com/cpmech/waveguide/nearfar"
)

// surfaceDef is the on-disk shape of one Near2FarSurface: a planar box plus
// its recorded tangential field components, sampled on a matching (x,y,z)
// grid for every declared frequency.
type surfaceDef struct {
	Name      string     `json:"name"`
	Center    [3]float64 `json:"center"`
	Size      [3]float64 `json:"size"`
	NormalDir string     `json:"normal_dir"` // "+" or "-"
	X         []float64  `json:"x"`
	Y         []float64  `json:"y"`
	Z         []float64  `json:"z"`
	Ex        [][][][]float64 `json:"ex_re"`
	Ey        [][][][]float64 `json:"ey_re"`
	Hx        [][][][]float64 `json:"hx_re"`
	Hy        [][][][]float64 `json:"hy_re"`
}

func (s surfaceDef) fieldData(freqs []float64) fields.FieldData {
	build := func(vals [][][][]float64) fields.ScalarArray {
		a := fields.NewScalarArray(s.X, s.Y, s.Z, freqs)
		for i := range vals {
			for j := range vals[i] {
				for k := range vals[i][j] {
					for l := range vals[i][j][k] {
						a.Values[i][j][k][l] = complex(vals[i][j][k][l], 0)
					}
				}
			}
		}
		return a
	}
	zero := fields.NewScalarArray(s.X, s.Y, s.Z, freqs)
	return fields.FieldData{
		Ex: build(s.Ex), Ey: build(s.Ey), Ez: zero,
		Hx: build(s.Hx), Hy: build(s.Hy), Hz: zero,
	}
}

// inputFile is the on-disk shape of a far-field projection request.
type inputFile struct {
	Freqs       []float64    `json:"freqs_hz"`
	ThetaDeg    []float64    `json:"theta_deg"`
	PhiDeg      []float64    `json:"phi_deg"`
	Origin      [3]float64   `json:"origin"`
	BackgroundN float64      `json:"background_n"`
	BackgroundK float64      `json:"background_k"`
	SimCenter   [3]float64   `json:"sim_center"`
	SimSize     [3]float64   `json:"sim_size"`
	GridX       []float64    `json:"grid_x"`
	GridY       []float64    `json:"grid_y"`
	GridZ       []float64    `json:"grid_z"`
	Resample    bool         `json:"resample"`
	Surfaces    []surfaceDef `json:"surfaces"`
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("Please provide an input JSON file. Ex.: nearfar run.json")
	}
	fnamepath := flag.Arg(0)

	io.PfWhite("\nnearfar -- near-field to far-field projector\n\n")

	buf, err := io.ReadFile(fnamepath)
	if err != nil {
		chk.Panic("cannot read input file %q: %v", fnamepath, err)
	}
	var in inputFile
	if err := json.Unmarshal(buf, &in); err != nil {
		chk.Panic("cannot parse input file %q: %v", fnamepath, err)
	}

	bg := &medium.ConstantMedium{N: in.BackgroundN, K: in.BackgroundK}

	surfaces := make([]nearfar.Surface, len(in.Surfaces))
	simData := fields.SimulationData{
		MonitorData: map[string]fields.FieldData{},
		Monitors:    map[string]fields.FieldMonitor{},
		Medium:      bg,
		Center:      in.SimCenter,
		Size:        in.SimSize,
		Grid:        fields.Grid{BoundaryX: in.GridX, BoundaryY: in.GridY, BoundaryZ: in.GridZ},
	}
	for i, sdef := range in.Surfaces {
		dir := nearfar.Plus
		if sdef.NormalDir == "-" {
			dir = nearfar.Minus
		}
		mon := fields.FieldMonitor{Name: sdef.Name, Center: sdef.Center, Size: sdef.Size, Freqs: in.Freqs}
		s, err := nearfar.NewSurface(mon, dir)
		if err != nil {
			chk.Panic("surface %q: %v", sdef.Name, err)
		}
		surfaces[i] = s
		simData.Monitors[sdef.Name] = mon
		simData.MonitorData[sdef.Name] = sdef.fieldData(in.Freqs)
	}

	proj, err := nearfar.NewNear2Far(simData, surfaces, in.Origin, bg)
	if err != nil {
		chk.Panic("projector setup failed: %v", err)
	}
	proj.Resample = in.Resample

	angles := make([]nearfar.Angle, len(in.ThetaDeg))
	for i := range angles {
		angles[i] = nearfar.Angle{
			Theta: in.ThetaDeg[i] * math.Pi / 180,
			Phi:   in.PhiDeg[i] * math.Pi / 180,
		}
	}

	rv, err := proj.RadiationVectors(in.Freqs, angles)
	if err != nil {
		chk.Panic("radiation vector integration failed: %v", err)
	}

	for fi, f := range rv.Freqs {
		for ai := range rv.Angles {
			io.Pf("f=%g theta=%g phi=%g: Ntheta=%v Nphi=%v Ltheta=%v Lphi=%v\n",
				f, in.ThetaDeg[ai], in.PhiDeg[ai],
				rv.Ntheta[fi][ai], rv.Nphi[fi][ai], rv.Ltheta[fi][ai], rv.Lphi[fi][ai])
		}
	}
}
