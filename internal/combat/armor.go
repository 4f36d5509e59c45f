package combat

// Armor carries exactly three classification axes (Rigidity, Padding,
// Coverage). Rigidity answers edges, padding answers mass. Coverage is
// tracked for a hit-chance layer outside this package and is not consumed
// by the resolvers here.

// Rigidity is the material hardness category.
type Rigidity int

const (
	// RigidityCloth is clothing or robes.
	RigidityCloth Rigidity = iota
	// RigidityLeather is cured hide or thick cloth.
	RigidityLeather
	// RigidityMail is interlocking rings.
	RigidityMail
	// RigidityPlate is solid metal.
	RigidityPlate
)

func (r Rigidity) String() string {
	switch r {
	case RigidityCloth:
		return "cloth"
	case RigidityLeather:
		return "leather"
	case RigidityMail:
		return "mail"
	case RigidityPlate:
		return "plate"
	default:
		return "unknown"
	}
}

// Rigidities lists every rigidity category.
func Rigidities() []Rigidity {
	return []Rigidity{RigidityCloth, RigidityLeather, RigidityMail, RigidityPlate}
}

// Padding is the impact absorption category.
type Padding int

const (
	// PaddingNone is bare skin or cloth only.
	PaddingNone Padding = iota
	// PaddingLight is a thin gambeson or leather backing.
	PaddingLight
	// PaddingHeavy is a full gambeson or layered padding.
	PaddingHeavy
)

func (p Padding) String() string {
	switch p {
	case PaddingNone:
		return "none"
	case PaddingLight:
		return "light"
	case PaddingHeavy:
		return "heavy"
	default:
		return "unknown"
	}
}

// Paddings lists every padding category.
func Paddings() []Padding {
	return []Padding{PaddingNone, PaddingLight, PaddingHeavy}
}

// Coverage describes how much of the body the armor protects.
type Coverage int

const (
	// CoverageNone is unarmored.
	CoverageNone Coverage = iota
	// CoveragePartial has gaps (standard armor).
	CoveragePartial
	// CoverageFull is a nearly complete harness.
	CoverageFull
)

func (c Coverage) String() string {
	switch c {
	case CoverageNone:
		return "none"
	case CoveragePartial:
		return "partial"
	case CoverageFull:
		return "full"
	default:
		return "unknown"
	}
}

// ArmorProperties is the complete classification of worn armor.
// Same ownership model as weapons: immutable per equipped instance.
type ArmorProperties struct {
	Rigidity Rigidity `json:"rigidity"`
	Padding  Padding  `json:"padding"`
	Coverage Coverage `json:"coverage"`
}

func (a ArmorProperties) String() string {
	return a.Rigidity.String() + "/" + a.Padding.String() + "/" + a.Coverage.String()
}

// Common armor presets.

// NoArmor is the unarmored default.
func NoArmor() ArmorProperties {
	return ArmorProperties{Rigidity: RigidityCloth, Padding: PaddingNone, Coverage: CoverageNone}
}

func LeatherArmor() ArmorProperties {
	return ArmorProperties{Rigidity: RigidityLeather, Padding: PaddingLight, Coverage: CoveragePartial}
}

func MailArmor() ArmorProperties {
	return ArmorProperties{Rigidity: RigidityMail, Padding: PaddingLight, Coverage: CoveragePartial}
}

func PlateArmor() ArmorProperties {
	return ArmorProperties{Rigidity: RigidityPlate, Padding: PaddingHeavy, Coverage: CoverageFull}
}
