package hardware

// Telescope describes one telescope platform and the optics tube slots
// mounted on it.
type Telescope struct {
	// Type is the coarse instrument class, e.g. "LAT" or "SAT".
	Type string `yaml:"type" json:"type"`

	// TubeSlots lists the names of the tube slots owned by this telescope.
	TubeSlots []string `yaml:"tube_slots" json:"tube_slots"`

	// Platescale is the focal plane plate scale in degrees / mm.
	Platescale float64 `yaml:"platescale" json:"platescale"`

	// TubeSpace is the center-to-center tube spacing in mm.
	TubeSpace float64 `yaml:"tubespace" json:"tubespace"`

	// FWHM maps band name to the nominal beam FWHM in arcminutes. This is
	// a beam lookup table, not a hard reference: keys may cover bands that
	// are absent from a trimmed model.
	FWHM map[string]float64 `yaml:"fwhm" json:"fwhm"`

	// PlatformName is the as-built platform designation, if assigned.
	PlatformName string `yaml:"platform_name" json:"platform_name"`
}

// TubeSlot describes one optics tube slot within a telescope.
type TubeSlot struct {
	// Type is the tube type tag, which determines the band set,
	// e.g. "PC_f350T".
	Type string `yaml:"type" json:"type"`

	// Telescope names the owning telescope.
	Telescope string `yaml:"telescope" json:"telescope"`

	// WaferSlots lists the names of the wafer slots inside this tube.
	WaferSlots []string `yaml:"wafer_slots" json:"wafer_slots"`

	// WaferSpace is the center-to-center wafer spacing in mm.
	WaferSpace float64 `yaml:"waferspace" json:"waferspace"`

	// Location is the tube position index in the telescope layout.
	Location int `yaml:"location" json:"location"`

	// TubeName is the as-built tube designation, if assigned.
	TubeName string `yaml:"tube_name" json:"tube_name"`

	// ReceiverName is the as-built receiver designation, if assigned.
	ReceiverName string `yaml:"receiver_name" json:"receiver_name"`
}

// WaferSlot describes one detector wafer slot within a tube.
type WaferSlot struct {
	// Type is the wafer type tag, e.g. "PC_f350T".
	Type string `yaml:"type" json:"type"`

	// TubeSlot names the owning tube slot.
	TubeSlot string `yaml:"tube_slot" json:"tube_slot"`

	// Packing is the pixel packing scheme: "F" (feedhorn, rhombus) or
	// "S" (sinuous, hex).
	Packing string `yaml:"packing" json:"packing"`

	// RhombusGap is the gap between rhombi in mm (feedhorn packing only).
	RhombusGap float64 `yaml:"rhombusgap" json:"rhombusgap"`

	// NPixel is the number of optical pixels on the wafer.
	NPixel int `yaml:"npixel" json:"npixel"`

	// PixSize is the pixel center-to-center spacing in mm.
	PixSize float64 `yaml:"pixsize" json:"pixsize"`

	// Bands lists the names of the frequency bands this wafer observes.
	// Multichroic wafers carry more than one.
	Bands []string `yaml:"bands" json:"bands"`

	// CardSlot names the readout card slot wired to this wafer.
	CardSlot string `yaml:"card_slot" json:"card_slot"`

	// PositionX and PositionY are the wafer center offsets within the
	// tube in mm, and Rotation the wafer rotation in degrees.
	PositionX float64 `yaml:"position_x" json:"position_x"`
	PositionY float64 `yaml:"position_y" json:"position_y"`
	Rotation  float64 `yaml:"rotation" json:"rotation"`

	// WaferName is the as-built wafer designation, if assigned.
	WaferName string `yaml:"wafer_name" json:"wafer_name"`
}

// CardSlot describes one readout card slot.
type CardSlot struct {
	// NBias is the number of bias lines on the card.
	NBias int `yaml:"nbias" json:"nbias"`

	// NAMC is the number of AMC modules on the card.
	NAMC int `yaml:"nAMC" json:"nAMC"`

	// NChannel is the number of readout channels on the card.
	NChannel int `yaml:"nchannel" json:"nchannel"`

	// CardName is the as-built card designation, if assigned.
	CardName string `yaml:"card_name" json:"card_name"`
}

// CrateSlot describes one readout crate slot and the card slots it hosts.
type CrateSlot struct {
	// CardSlots lists the names of the card slots in this crate.
	CardSlots []string `yaml:"card_slots" json:"card_slots"`

	// Telescope names the telescope this crate serves.
	Telescope string `yaml:"telescope" json:"telescope"`

	// CrateName is the as-built crate designation, if assigned.
	CrateName string `yaml:"crate_name" json:"crate_name"`
}

// Band describes one frequency band.
type Band struct {
	// Center is the band center frequency in GHz.
	Center float64 `yaml:"center" json:"center"`

	// Low and High are the band edges in GHz.
	Low  float64 `yaml:"low" json:"low"`
	High float64 `yaml:"high" json:"high"`

	// Bandpass optionally names a measured bandpass profile.
	Bandpass string `yaml:"bandpass" json:"bandpass"`

	// NET is the typical detector noise-equivalent temperature in
	// uK * sqrt(s), and NETCorr the pair-correlation correction factor.
	NET     float64 `yaml:"NET" json:"NET"`
	NETCorr float64 `yaml:"NET_corr" json:"NET_corr"`

	// FKnee and FMin parameterize the 1/f noise model in Hz, with
	// spectral slope Alpha.
	FKnee float64 `yaml:"fknee" json:"fknee"`
	FMin  float64 `yaml:"fmin" json:"fmin"`
	Alpha float64 `yaml:"alpha" json:"alpha"`

	// A and C are the atmosphere scaling parameters.
	A float64 `yaml:"A" json:"A"`
	C float64 `yaml:"C" json:"C"`
}

// Detector describes a single detector. Detector names are globally unique
// within a model and structured as "<wafer>_p<pixel>_<band>_<pol>".
type Detector struct {
	// WaferSlot names the wafer slot this detector sits on.
	WaferSlot string `yaml:"wafer_slot" json:"wafer_slot"`

	// ID is the detector's numeric identifier, unique within a model.
	ID int `yaml:"ID" json:"ID"`

	// Pixel is the zero-padded optical pixel index on the wafer,
	// e.g. "000".
	Pixel string `yaml:"pixel" json:"pixel"`

	// Band names the frequency band this detector observes.
	Band string `yaml:"band" json:"band"`

	// FWHM is the nominal beam FWHM in arcminutes.
	FWHM float64 `yaml:"fwhm" json:"fwhm"`

	// Pol is the polarization tag, "A" or "B".
	Pol string `yaml:"pol" json:"pol"`

	// Handed is the sinuous antenna handedness, "L" or "R"; empty for
	// feedhorn-coupled detectors.
	Handed string `yaml:"handed,omitempty" json:"handed,omitempty"`

	// CardSlot names the readout card slot, with Channel the channel
	// index on that card.
	CardSlot string `yaml:"card_slot" json:"card_slot"`
	Channel  int    `yaml:"channel" json:"channel"`

	// AMC and Bias are the AMC module and bias line indices on the card.
	AMC  int `yaml:"AMC" json:"AMC"`
	Bias int `yaml:"bias" json:"bias"`

	// BondPad and MuxPosition locate the detector in the multiplexing
	// chain.
	BondPad     int `yaml:"bondpad" json:"bondpad"`
	MuxPosition int `yaml:"mux_position" json:"mux_position"`

	// Quat is the detector pointing quaternion relative to the boresight,
	// in (x, y, z, w) order. See FocalPlane for the projected position.
	Quat Quat `yaml:"quat" json:"quat"`

	// DetectorName is the as-built detector designation, if assigned.
	DetectorName string `yaml:"detector_name" json:"detector_name"`
}
