package hardware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrim_EmptySelection(t *testing.T) {
	m := newTestModel(t)

	sub, err := m.Trim(nil)
	require.NoError(t, err)

	assert.Zero(t, sub.Telescopes.Len())
	assert.Zero(t, sub.TubeSlots.Len())
	assert.Zero(t, sub.WaferSlots.Len())
	assert.Zero(t, sub.CardSlots.Len())
	assert.Zero(t, sub.CrateSlots.Len())
	assert.Zero(t, sub.Bands.Len())
	assert.Zero(t, sub.Detectors.Len())
	require.NoError(t, sub.Validate())
}

func TestTrim_UnknownDetector(t *testing.T) {
	m := newTestModel(t)

	sub, err := m.Trim([]string{"w42_p000_SAT_f030_A"})
	assert.Nil(t, sub)

	var merr *MalformedModelError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "w42_p000_SAT_f030_A", merr.Ref)
}

func TestTrim_ClosureComplete(t *testing.T) {
	m := newTestModel(t)

	sub, err := m.Trim([]string{"w11_p000_PC_f280_A"})
	require.NoError(t, err)

	assert.Equal(t, []string{"w11_p000_PC_f280_A"}, sub.Detectors.Names())
	assert.Equal(t, []string{"w11"}, sub.WaferSlots.Names())
	assert.Equal(t, []string{"i5"}, sub.TubeSlots.Names())
	assert.Equal(t, []string{"LAT"}, sub.Telescopes.Names())
	assert.Equal(t, []string{"card_slot02"}, sub.CardSlots.Names())
	assert.Equal(t, []string{"crate_slot00"}, sub.CrateSlots.Names())
	assert.Equal(t, []string{"PC_f280"}, sub.Bands.Names())

	// Downward membership lists are filtered to retained members.
	tel, _ := sub.Telescopes.Get("LAT")
	assert.Equal(t, []string{"i5"}, tel.TubeSlots)
	tube, _ := sub.TubeSlots.Get("i5")
	assert.Equal(t, []string{"w11"}, tube.WaferSlots)
	crate, _ := sub.CrateSlots.Get("crate_slot00")
	assert.Equal(t, []string{"card_slot02"}, crate.CardSlots)

	// The sub-model independently satisfies the store invariants.
	require.NoError(t, sub.Validate())
}

// TestTrim_Minimal verifies no extraneous entities survive: every retained
// entity is reachable from at least one retained detector.
func TestTrim_Minimal(t *testing.T) {
	m := newTestModel(t)

	sub, err := m.Trim([]string{"w09_p000_PC_f350_A", "w09_p000_PC_f350_B"})
	require.NoError(t, err)

	wafers := map[string]bool{}
	bands := map[string]bool{}
	cards := map[string]bool{}
	for _, det := range sub.Detectors.Names() {
		d, _ := sub.Detectors.Get(det)
		wafers[d.WaferSlot] = true
		bands[d.Band] = true
		cards[d.CardSlot] = true
	}
	for _, name := range sub.WaferSlots.Names() {
		assert.True(t, wafers[name], "wafer %s retained but unreferenced", name)
		w, _ := sub.WaferSlots.Get(name)
		cards[w.CardSlot] = true
	}
	tubes := map[string]bool{}
	for name := range wafers {
		w, _ := sub.WaferSlots.Get(name)
		tubes[w.TubeSlot] = true
	}
	for _, name := range sub.TubeSlots.Names() {
		assert.True(t, tubes[name], "tube %s retained but unreferenced", name)
	}
	for _, name := range sub.Bands.Names() {
		assert.True(t, bands[name], "band %s retained but unreferenced", name)
	}
	for _, name := range sub.CardSlots.Names() {
		assert.True(t, cards[name], "card %s retained but unreferenced", name)
	}

	// Only the w09 chain survives.
	assert.Equal(t, []string{"w09"}, sub.WaferSlots.Names())
	assert.Equal(t, []string{"c1"}, sub.TubeSlots.Names())
	assert.Equal(t, []string{"card_slot00"}, sub.CardSlots.Names())
	assert.Equal(t, []string{"PC_f350"}, sub.Bands.Names())
}

func TestTrim_PreservesRelativeOrder(t *testing.T) {
	m := newTestModel(t)

	sub, err := m.Trim([]string{
		"w11_p000_PC_f280_B",
		"w09_p000_PC_f350_A",
		"w10_p000_PC_f350_A",
	})
	require.NoError(t, err)

	// Output order follows the source collections, not the input set.
	assert.Equal(t, []string{"w09", "w10", "w11"}, sub.WaferSlots.Names())
	assert.Equal(t, []string{"c1", "i5"}, sub.TubeSlots.Names())
	assert.Equal(t, []string{
		"w09_p000_PC_f350_A",
		"w10_p000_PC_f350_A",
		"w11_p000_PC_f280_B",
	}, sub.Detectors.Names())
}

func TestTrim_IndependentOwnership(t *testing.T) {
	m := newTestModel(t)

	sub, err := m.Trim([]string{"w09_p000_PC_f350_A"})
	require.NoError(t, err)

	// Mutating the sub-model's records must not leak into the source.
	band, _ := sub.Bands.Get("PC_f350")
	band.Center = -1
	wafer, _ := sub.WaferSlots.Get("w09")
	wafer.Bands[0] = "mutated"
	tel, _ := sub.Telescopes.Get("LAT")
	tel.FWHM["PC_f350"] = -1

	srcBand, _ := m.Bands.Get("PC_f350")
	assert.Equal(t, 225.7, srcBand.Center)
	srcWafer, _ := m.WaferSlots.Get("w09")
	assert.Equal(t, []string{"PC_f350"}, srcWafer.Bands)
	srcTel, _ := m.Telescopes.Get("LAT")
	assert.Equal(t, 0.62, srcTel.FWHM["PC_f350"])
}
