package nearfar

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/waveguide/fields"
	"github.com/cpmech/waveguide/medium"
)

// Near2Far is the NF2FF projector facade (component J): a fixed set of
// closed surfaces bounding the near-field region, a phase-reference
// origin, and the background medium used to compute the free-space
// wavenumber. Equivalent currents are extracted and cached lazily, on
// first use, rather than at construction (design notes §9's "lazy
// currents" property): a projector built for many (frequency, angle)
// queries should not pay the extraction cost for surfaces it never
// integrates.
type Near2Far struct {
	simData          fields.SimulationData
	surfaces         []Surface
	Origin           [3]float64
	Medium           medium.Medium
	Resample         bool
	PtsPerWavelength float64
	Verbose          bool // gate gosl/io progress printing, matching wgmode.Spec.Verbose

	currents map[string]Currents // lazily populated, keyed by monitor name
}

// NewNear2Far builds a projector over the given surfaces, validating that
// every surface's monitor is present in simData (MissingMonitor).
func NewNear2Far(simData fields.SimulationData, surfaces []Surface, origin [3]float64, bg medium.Medium) (*Near2Far, error) {
	for _, s := range surfaces {
		if _, ok := simData.MonitorData[s.Monitor.Name]; !ok {
			return nil, errMissingMonitor(s.Monitor.Name)
		}
	}
	return &Near2Far{
		simData:          simData,
		surfaces:         surfaces,
		Origin:           origin,
		Medium:           bg,
		PtsPerWavelength: defaultPtsPerWavelength,
		currents:         make(map[string]Currents),
	}, nil
}

// surfaceCurrents returns (extracting and caching on first call) the
// equivalent currents of one surface, sampled on whatever grid the
// resample setting calls for.
func (p *Near2Far) surfaceCurrents(s Surface) Resampled {
	c, ok := p.currents[s.Monitor.Name]
	if !ok {
		if p.Verbose {
			io.Pf("nearfar: extracting equivalent currents for surface %q\n", s.Monitor.Name)
		}
		fd := p.simData.AtCenters(s.Monitor.Name)
		c = ExtractCurrents(s, fd)
		p.currents[s.Monitor.Name] = c
	}
	if !p.Resample {
		return ResampleAtCenters(c)
	}
	return ResampleRegular(s, c, p.simData.Center, p.simData.Size, p.Medium, p.PtsPerWavelength)
}

// RadiationVectors computes the projector's radiation-vector result at the
// given frequencies and angles, summing every surface's contribution
// (spec §4.J: "Near2Far.radiation_vectors(theta, phi)").
func (p *Near2Far) RadiationVectors(freqs []float64, angles []Angle) (*RadiationVectors, error) {
	for _, s := range p.surfaces {
		for _, f := range freqs {
			if !hasFreq(s.Monitor.Freqs, f) {
				return nil, errFrequencyNotFound(f)
			}
		}
	}
	acc := NewRadiationVectors(freqs, angles)
	for _, s := range p.surfaces {
		r := p.surfaceCurrents(s)
		IntegrateSurface(s, r, p.Origin, p.Medium, acc)
	}
	return acc, nil
}

func hasFreq(freqs []float64, target float64) bool {
	for _, f := range freqs {
		if absF(f-target) < 1 {
			return true
		}
	}
	return false
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
