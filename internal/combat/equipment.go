package combat

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Role-based loadouts plus the string grammar the CLI and API use to
// describe equipment. The grammar is edge/mass/reach with optional
// +special suffixes, e.g. "sharp/medium/long+piercing", or a preset name
// like "spear". Armor is rigidity/padding/coverage or a preset name.

// Role is a social role supplied by the equipment/role collaborator.
type Role int

const (
	RoleSoldier Role = iota
	RoleGuard
	RoleNoble
	RoleFarmer
	RoleMiner
	RoleCraftsman
	RoleLaborer
	RoleScholar
	RoleCivilian
)

func (r Role) String() string {
	switch r {
	case RoleSoldier:
		return "soldier"
	case RoleGuard:
		return "guard"
	case RoleNoble:
		return "noble"
	case RoleFarmer:
		return "farmer"
	case RoleMiner:
		return "miner"
	case RoleCraftsman:
		return "craftsman"
	case RoleLaborer:
		return "laborer"
	case RoleScholar:
		return "scholar"
	case RoleCivilian:
		return "civilian"
	default:
		return "unknown"
	}
}

// WeaponForRole returns the default weapon for a role. Non-combat roles
// fight with tools or fists.
func WeaponForRole(role Role) WeaponProperties {
	switch role {
	case RoleSoldier, RoleNoble:
		return Sword()
	case RoleGuard:
		return Spear()
	case RoleFarmer:
		// Pitchfork-like tool.
		return WeaponProperties{Edge: EdgeSharp, Mass: MassMedium, Reach: ReachMedium}
	case RoleMiner:
		// Pick.
		return WeaponProperties{Edge: EdgeSharp, Mass: MassHeavy, Reach: ReachShort}
	case RoleCraftsman:
		// Workshop hammer.
		return WeaponProperties{Edge: EdgeBlunt, Mass: MassMedium, Reach: ReachShort}
	default:
		return Fists()
	}
}

// ArmorForRole returns the default armor for a role.
func ArmorForRole(role Role) ArmorProperties {
	switch role {
	case RoleSoldier, RoleNoble:
		return MailArmor()
	case RoleGuard:
		return LeatherArmor()
	default:
		return NoArmor()
	}
}

// CombatStateForRole builds a CombatState equipped for a role.
func CombatStateForRole(role Role) CombatState {
	s := NewCombatState()
	s.Weapon = WeaponForRole(role)
	s.Armor = ArmorForRole(role)
	return s
}

// ErrBadSpec reports an unparseable weapon or armor spec string.
var ErrBadSpec = errors.New("bad equipment spec")

var weaponSpecRe = regexp.MustCompile(`(?i)^\s*([a-z]+)\s*/\s*([a-z]+)\s*/\s*([a-z]+)((?:\s*\+\s*[a-z]+)*)\s*$`)

var weaponPresets = map[string]func() WeaponProperties{
	"sword":  Sword,
	"mace":   Mace,
	"spear":  Spear,
	"dagger": Dagger,
	"fists":  Fists,
	"axe":    Axe,
	"club":   Club,
}

var armorPresets = map[string]func() ArmorProperties{
	"none":    NoArmor,
	"leather": LeatherArmor,
	"mail":    MailArmor,
	"plate":   PlateArmor,
}

// ParseWeapon parses a preset name or an edge/mass/reach[+special...] spec.
func ParseWeapon(spec string) (WeaponProperties, error) {
	if preset, ok := weaponPresets[strings.ToLower(strings.TrimSpace(spec))]; ok {
		return preset(), nil
	}
	m := weaponSpecRe.FindStringSubmatch(spec)
	if m == nil {
		return WeaponProperties{}, fmt.Errorf("%w: %q", ErrBadSpec, spec)
	}
	edge, err := ParseEdge(m[1])
	if err != nil {
		return WeaponProperties{}, err
	}
	mass, err := ParseMass(m[2])
	if err != nil {
		return WeaponProperties{}, err
	}
	reach, err := ParseReach(m[3])
	if err != nil {
		return WeaponProperties{}, err
	}
	w := WeaponProperties{Edge: edge, Mass: mass, Reach: reach}
	for _, tok := range strings.Split(m[4], "+") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		sp, err := ParseWeaponSpecial(tok)
		if err != nil {
			return WeaponProperties{}, err
		}
		w.Special = append(w.Special, sp)
	}
	return w, nil
}

// ParseArmor parses a preset name or a rigidity/padding/coverage spec.
func ParseArmor(spec string) (ArmorProperties, error) {
	if preset, ok := armorPresets[strings.ToLower(strings.TrimSpace(spec))]; ok {
		return preset(), nil
	}
	parts := strings.Split(spec, "/")
	if len(parts) != 3 {
		return ArmorProperties{}, fmt.Errorf("%w: %q", ErrBadSpec, spec)
	}
	rigidity, err := ParseRigidity(parts[0])
	if err != nil {
		return ArmorProperties{}, err
	}
	padding, err := ParsePadding(parts[1])
	if err != nil {
		return ArmorProperties{}, err
	}
	coverage, err := ParseCoverage(parts[2])
	if err != nil {
		return ArmorProperties{}, err
	}
	return ArmorProperties{Rigidity: rigidity, Padding: padding, Coverage: coverage}, nil
}

func ParseEdge(s string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "razor":
		return EdgeRazor, nil
	case "sharp":
		return EdgeSharp, nil
	case "blunt":
		return EdgeBlunt, nil
	}
	return 0, fmt.Errorf("%w: edge %q", ErrBadSpec, s)
}

func ParseMass(s string) (Mass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return MassLight, nil
	case "medium":
		return MassMedium, nil
	case "heavy":
		return MassHeavy, nil
	case "massive":
		return MassMassive, nil
	}
	return 0, fmt.Errorf("%w: mass %q", ErrBadSpec, s)
}

func ParseReach(s string) (Reach, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grapple":
		return ReachGrapple, nil
	case "short":
		return ReachShort, nil
	case "medium":
		return ReachMedium, nil
	case "long":
		return ReachLong, nil
	case "pike":
		return ReachPike, nil
	}
	return 0, fmt.Errorf("%w: reach %q", ErrBadSpec, s)
}

func ParseWeaponSpecial(s string) (WeaponSpecial, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "piercing":
		return SpecialPiercing, nil
	case "hooking":
		return SpecialHooking, nil
	case "throwable":
		return SpecialThrowable, nil
	case "twohanded":
		return SpecialTwoHanded, nil
	case "shieldbreaker":
		return SpecialShieldbreaker, nil
	}
	return 0, fmt.Errorf("%w: special %q", ErrBadSpec, s)
}

func ParseRigidity(s string) (Rigidity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cloth":
		return RigidityCloth, nil
	case "leather":
		return RigidityLeather, nil
	case "mail":
		return RigidityMail, nil
	case "plate":
		return RigidityPlate, nil
	}
	return 0, fmt.Errorf("%w: rigidity %q", ErrBadSpec, s)
}

func ParsePadding(s string) (Padding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return PaddingNone, nil
	case "light":
		return PaddingLight, nil
	case "heavy":
		return PaddingHeavy, nil
	}
	return 0, fmt.Errorf("%w: padding %q", ErrBadSpec, s)
}

func ParseCoverage(s string) (Coverage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return CoverageNone, nil
	case "partial":
		return CoveragePartial, nil
	case "full":
		return CoverageFull, nil
	}
	return 0, fmt.Errorf("%w: coverage %q", ErrBadSpec, s)
}

// ParseSkill parses a skill level name.
func ParseSkill(s string) (SkillLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "novice":
		return SkillNovice, nil
	case "trained":
		return SkillTrained, nil
	case "veteran":
		return SkillVeteran, nil
	case "master":
		return SkillMaster, nil
	}
	return 0, fmt.Errorf("%w: skill %q", ErrBadSpec, s)
}

// ParseStance parses a stance name.
func ParseStance(s string) (Stance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pressing":
		return StancePressing, nil
	case "neutral":
		return StanceNeutral, nil
	case "defensive":
		return StanceDefensive, nil
	case "recovering":
		return StanceRecovering, nil
	case "broken":
		return StanceBroken, nil
	}
	return 0, fmt.Errorf("%w: stance %q", ErrBadSpec, s)
}

// ParseRole parses a role name.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "soldier":
		return RoleSoldier, nil
	case "guard":
		return RoleGuard, nil
	case "noble":
		return RoleNoble, nil
	case "farmer":
		return RoleFarmer, nil
	case "miner":
		return RoleMiner, nil
	case "craftsman":
		return RoleCraftsman, nil
	case "laborer":
		return RoleLaborer, nil
	case "scholar":
		return RoleScholar, nil
	case "civilian":
		return RoleCivilian, nil
	}
	return 0, fmt.Errorf("%w: role %q", ErrBadSpec, s)
}
