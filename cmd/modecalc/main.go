// Command modecalc solves for the eigenmodes of a waveguide cross-section
// described by a JSON input file and prints the resulting effective
// indices, following the teacher's main.go convention of a flag-driven,
// single-file-argument CLI with gosl/chk for fatal errors and gosl/io for
// output formatting.
package main

import (
	"encoding/json"
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/waveguide/wgmode"
)

// inputFile is the on-disk shape of a mode-solve request: a uniform or
// piecewise cross-section plus the ModeSpec knobs from spec §3.
type inputFile struct {
	FreqHz      float64     `json:"freq_hz"`
	CoordsX     []float64   `json:"coords_x"`
	CoordsY     []float64   `json:"coords_y"`
	EpsXX       [][]float64 `json:"eps_xx"` // real part only; lossless cross-sections
	EpsYY       [][]float64 `json:"eps_yy"`
	EpsZZ       [][]float64 `json:"eps_zz"`
	NumModes    int         `json:"num_modes"`
	NumPMLX     int         `json:"num_pml_x"`
	NumPMLY     int         `json:"num_pml_y"`
	TargetNeff  *float64    `json:"target_neff"`
	SymmetryX   int         `json:"symmetry_x"`
	SymmetryY   int         `json:"symmetry_y"`
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
		chk.Panic("Please provide an input JSON file. Ex.: modecalc waveguide.json")
	}
	fnamepath := flag.Arg(0)

	io.PfWhite("\nmodecalc -- waveguide eigenmode solver\n\n")

	buf, err := io.ReadFile(fnamepath)
	if err != nil {
		chk.Panic("cannot read input file %q: %v", fnamepath, err)
	}
	var in inputFile
	if err := json.Unmarshal(buf, &in); err != nil {
		chk.Panic("cannot parse input file %q: %v", fnamepath, err)
	}

	nx, ny := len(in.CoordsX)-1, len(in.CoordsY)-1
	cs := wgmode.CrossSection{
		Nx: nx, Ny: ny,
		EpsXX: ravelReal(in.EpsXX, nx, ny),
		EpsYY: ravelReal(in.EpsYY, nx, ny),
		EpsZZ: ravelReal(in.EpsZZ, nx, ny),
	}

	spec := wgmode.NewSpec(in.NumModes)
	spec.NumPML = [2]int{in.NumPMLX, in.NumPMLY}
	spec.TargetNeff = in.TargetNeff

	modes, err := wgmode.ComputeModes(cs, [2][]float64{in.CoordsX, in.CoordsY}, in.FreqHz, spec,
		[2]int{in.SymmetryX, in.SymmetryY})
	if err != nil {
		chk.Panic("mode solve failed: %v", err)
	}

	for i, m := range modes {
		io.Pf("mode %d: n_eff=%v  k_eff=%v\n", i, m.Neff, m.Keff)
	}
}

// ravelReal flattens a row-major [ny][nx] JSON grid into the solver's
// column-major length-Nx*Ny layout (spec §4.A's index(i,j)=j*Nx+i).
func ravelReal(grid [][]float64, nx, ny int) []complex128 {
	out := make([]complex128, nx*ny)
	for j := 0; j < ny && j < len(grid); j++ {
		row := grid[j]
		for i := 0; i < nx && i < len(row); i++ {
			out[j*nx+i] = complex(row[i], 0)
		}
	}
	return out
}
