package combat

// Weapons carry exactly three classification axes (Edge, Mass, Reach) plus
// optional special properties. Outcomes come from lookup tables over these
// categories, never from numeric modifiers.

// Edge is the sharpness category. It drives penetration resolution.
type Edge int

const (
	// EdgeRazor is surgical sharpness (scalpels, fine blades).
	EdgeRazor Edge = iota
	// EdgeSharp is combat sharpness (swords, axes).
	EdgeSharp
	// EdgeBlunt has no edge at all (maces, hammers, fists).
	EdgeBlunt
)

func (e Edge) String() string {
	switch e {
	case EdgeRazor:
		return "razor"
	case EdgeSharp:
		return "sharp"
	case EdgeBlunt:
		return "blunt"
	default:
		return "unknown"
	}
}

// Edges lists every edge category.
func Edges() []Edge {
	return []Edge{EdgeRazor, EdgeSharp, EdgeBlunt}
}

// Mass is the weight category. It drives trauma resolution.
type Mass int

const (
	// MassLight covers daggers and small weapons (<1kg).
	MassLight Mass = iota
	// MassMedium covers swords and axes (1-3kg).
	MassMedium
	// MassHeavy covers warhammers and greatswords (3-6kg).
	MassHeavy
	// MassMassive covers horse+rider and siege weapons (>100kg).
	MassMassive
)

func (m Mass) String() string {
	switch m {
	case MassLight:
		return "light"
	case MassMedium:
		return "medium"
	case MassHeavy:
		return "heavy"
	case MassMassive:
		return "massive"
	default:
		return "unknown"
	}
}

// Masses lists every mass category.
func Masses() []Mass {
	return []Mass{MassLight, MassMedium, MassHeavy, MassMassive}
}

// Reach is the distance category. It is a strict total order used only to
// decide strike order in an exchange, never to scale damage.
type Reach int

const (
	// ReachGrapple is touching distance (fists, daggers).
	ReachGrapple Reach = iota
	// ReachShort is arm's length (swords, maces).
	ReachShort
	// ReachMedium is an extended arm (bastard swords, axes).
	ReachMedium
	// ReachLong is spear length (spears, halberds).
	ReachLong
	// ReachPike is formation weapon length (pikes, lances).
	ReachPike
)

func (r Reach) String() string {
	switch r {
	case ReachGrapple:
		return "grapple"
	case ReachShort:
		return "short"
	case ReachMedium:
		return "medium"
	case ReachLong:
		return "long"
	case ReachPike:
		return "pike"
	default:
		return "unknown"
	}
}

// WeaponSpecial marks an optional weapon capability.
type WeaponSpecial int

const (
	// SpecialPiercing finds gaps in armor (estocs, bodkins).
	SpecialPiercing WeaponSpecial = iota
	// SpecialHooking pulls shields or riders (billhooks).
	SpecialHooking
	// SpecialThrowable can be thrown (javelins, axes).
	SpecialThrowable
	// SpecialTwoHanded requires both hands.
	SpecialTwoHanded
	// SpecialShieldbreaker is effective against shields (axes).
	SpecialShieldbreaker
)

func (s WeaponSpecial) String() string {
	switch s {
	case SpecialPiercing:
		return "piercing"
	case SpecialHooking:
		return "hooking"
	case SpecialThrowable:
		return "throwable"
	case SpecialTwoHanded:
		return "twohanded"
	case SpecialShieldbreaker:
		return "shieldbreaker"
	default:
		return "unknown"
	}
}

// WeaponProperties is the complete classification of an equipped weapon.
// Immutable per equipped instance; replaced wholesale on re-equip.
type WeaponProperties struct {
	Edge    Edge            `json:"edge"`
	Mass    Mass            `json:"mass"`
	Reach   Reach           `json:"reach"`
	Special []WeaponSpecial `json:"special,omitempty"`
}

// HasSpecial reports whether the weapon carries a given special property.
func (w WeaponProperties) HasSpecial(special WeaponSpecial) bool {
	for _, s := range w.Special {
		if s == special {
			return true
		}
	}
	return false
}

func (w WeaponProperties) String() string {
	s := w.Edge.String() + "/" + w.Mass.String() + "/" + w.Reach.String()
	for _, sp := range w.Special {
		s += "+" + sp.String()
	}
	return s
}

// Common loadout presets.

func Sword() WeaponProperties {
	return WeaponProperties{Edge: EdgeSharp, Mass: MassMedium, Reach: ReachShort}
}

func Mace() WeaponProperties {
	return WeaponProperties{Edge: EdgeBlunt, Mass: MassHeavy, Reach: ReachShort}
}

func Spear() WeaponProperties {
	return WeaponProperties{
		Edge:    EdgeSharp,
		Mass:    MassMedium,
		Reach:   ReachLong,
		Special: []WeaponSpecial{SpecialPiercing},
	}
}

func Dagger() WeaponProperties {
	return WeaponProperties{
		Edge:    EdgeSharp,
		Mass:    MassLight,
		Reach:   ReachGrapple,
		Special: []WeaponSpecial{SpecialPiercing},
	}
}

// Fists is the unarmed default.
func Fists() WeaponProperties {
	return WeaponProperties{Edge: EdgeBlunt, Mass: MassLight, Reach: ReachGrapple}
}

func Axe() WeaponProperties {
	return WeaponProperties{
		Edge:    EdgeSharp,
		Mass:    MassHeavy,
		Reach:   ReachMedium,
		Special: []WeaponSpecial{SpecialShieldbreaker},
	}
}

func Club() WeaponProperties {
	return WeaponProperties{Edge: EdgeBlunt, Mass: MassMedium, Reach: ReachShort}
}
