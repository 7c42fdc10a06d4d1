package hardware

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestModel builds a small Prime-Cam-style model: one LAT telescope with
// two tubes (c1 carrying wafers w09/w10 at PC_f350, i5 carrying w11 at
// PC_f280), one readout crate with one card per wafer, and six detectors.
func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel()

	require.NoError(t, m.Bands.Add("PC_f350", &Band{
		Center: 225.7, Low: 196.7, High: 254.7,
		NET: 724.4, NETCorr: 1.02, FKnee: 50.0, FMin: 0.01, Alpha: 3.5,
		A: 0.29, C: 0.62,
	}))
	require.NoError(t, m.Bands.Add("PC_f280", &Band{
		Center: 285.4, Low: 258.4, High: 312.4,
		NET: 1803.9, NETCorr: 1.00, FKnee: 50.0, FMin: 0.01, Alpha: 3.5,
		A: 0.36, C: 0.53,
	}))

	for _, card := range []string{"card_slot00", "card_slot01", "card_slot02"} {
		require.NoError(t, m.CardSlots.Add(card, &CardSlot{NBias: 12, NAMC: 2, NChannel: 1764}))
	}
	require.NoError(t, m.CrateSlots.Add("crate_slot00", &CrateSlot{
		CardSlots: []string{"card_slot00", "card_slot01", "card_slot02"},
		Telescope: "LAT",
	}))

	require.NoError(t, m.Telescopes.Add("LAT", &Telescope{
		Type:       "LAT",
		TubeSlots:  []string{"c1", "i5"},
		Platescale: 0.00495,
		TubeSpace:  359.6,
		FWHM:       map[string]float64{"PC_f350": 0.62, "PC_f280": 0.78},
	}))
	require.NoError(t, m.TubeSlots.Add("c1", &TubeSlot{
		Type: "PC_f350T", Telescope: "LAT",
		WaferSlots: []string{"w09", "w10"},
		WaferSpace: 128.4, Location: 0,
	}))
	require.NoError(t, m.TubeSlots.Add("i5", &TubeSlot{
		Type: "PC_f280T", Telescope: "LAT",
		WaferSlots: []string{"w11"},
		WaferSpace: 128.4, Location: 1,
	}))

	wafers := []struct {
		name, typ, tube, card, band string
	}{
		{"w09", "PC_f350T", "c1", "card_slot00", "PC_f350"},
		{"w10", "PC_f350T", "c1", "card_slot01", "PC_f350"},
		{"w11", "PC_f280T", "i5", "card_slot02", "PC_f280"},
	}
	for _, w := range wafers {
		require.NoError(t, m.WaferSlots.Add(w.name, &WaferSlot{
			Type: w.typ, TubeSlot: w.tube, Packing: "F",
			RhombusGap: 0.71, NPixel: 1728, PixSize: 2.75,
			Bands: []string{w.band}, CardSlot: w.card,
		}))
	}

	dets := []struct {
		wafer, pixel, band, pol string
		channel                 int
	}{
		{"w09", "000", "PC_f350", "A", 0},
		{"w09", "000", "PC_f350", "B", 1},
		{"w10", "000", "PC_f350", "A", 0},
		{"w10", "001", "PC_f350", "B", 1},
		{"w11", "000", "PC_f280", "A", 0},
		{"w11", "000", "PC_f280", "B", 1},
	}
	for i, d := range dets {
		wafer, _ := m.WaferSlots.Get(d.wafer)
		name := d.wafer + "_p" + d.pixel + "_" + d.band + "_" + d.pol
		require.NoError(t, m.Detectors.Add(name, &Detector{
			WaferSlot: d.wafer, ID: i, Pixel: d.pixel, Band: d.band,
			FWHM: 0.62, Pol: d.pol, CardSlot: wafer.CardSlot,
			Channel: d.channel, Quat: IdentityQuat,
		}))
	}

	require.NoError(t, m.Validate())
	return m
}

// newBichroicModel builds a model with a single multichroic wafer w09
// observing both PC_f350 and PC_f280, carrying one detector per band.
func newBichroicModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel()

	require.NoError(t, m.Bands.Add("PC_f350", &Band{Center: 225.7, Low: 196.7, High: 254.7}))
	require.NoError(t, m.Bands.Add("PC_f280", &Band{Center: 285.4, Low: 258.4, High: 312.4}))
	require.NoError(t, m.CardSlots.Add("card_slot00", &CardSlot{NBias: 12, NAMC: 2, NChannel: 1764}))
	require.NoError(t, m.CrateSlots.Add("crate_slot00", &CrateSlot{
		CardSlots: []string{"card_slot00"}, Telescope: "LAT",
	}))
	require.NoError(t, m.Telescopes.Add("LAT", &Telescope{Type: "LAT", TubeSlots: []string{"c1"}}))
	require.NoError(t, m.TubeSlots.Add("c1", &TubeSlot{
		Type: "PC_MF", Telescope: "LAT", WaferSlots: []string{"w09"},
	}))
	require.NoError(t, m.WaferSlots.Add("w09", &WaferSlot{
		Type: "PC_MF", TubeSlot: "c1", Packing: "F",
		Bands: []string{"PC_f350", "PC_f280"}, CardSlot: "card_slot00",
	}))
	require.NoError(t, m.Detectors.Add("w09_p000_PC_f350_A", &Detector{
		WaferSlot: "w09", ID: 0, Pixel: "000", Band: "PC_f350", Pol: "A",
		CardSlot: "card_slot00", Quat: IdentityQuat,
	}))
	require.NoError(t, m.Detectors.Add("w09_p000_PC_f280_A", &Detector{
		WaferSlot: "w09", ID: 1, Pixel: "000", Band: "PC_f280", Pol: "A",
		CardSlot: "card_slot00", Quat: IdentityQuat,
	}))

	require.NoError(t, m.Validate())
	return m
}
