package api

import (
	"fmt"

	"github.com/Astreocclu/arc-citadel-sub001/internal/battle"
	"github.com/Astreocclu/arc-citadel-sub001/internal/combat"
)

// CombatantSpec describes one side of an exchange or duel in wire form.
// Weapon and Armor take either a preset name ("sword", "mail") or the
// slash grammar ("sharp/medium/long+piercing", "mail/light/full").
type CombatantSpec struct {
	Name   string `json:"name"`
	Weapon string `json:"weapon"`
	Armor  string `json:"armor"`
	Skill  string `json:"skill,omitempty"`
	Stance string `json:"stance,omitempty"`
}

// CombatState builds a fresh combat state from the wire form. Skill defaults
// to trained and stance to neutral when omitted.
func (s CombatantSpec) CombatState() (*combat.CombatState, error) {
	w, err := combat.ParseWeapon(s.Weapon)
	if err != nil {
		return nil, fmt.Errorf("weapon: %w", err)
	}
	a, err := combat.ParseArmor(s.Armor)
	if err != nil {
		return nil, fmt.Errorf("armor: %w", err)
	}
	skill := combat.SkillTrained
	if s.Skill != "" {
		skill, err = combat.ParseSkill(s.Skill)
		if err != nil {
			return nil, err
		}
	}
	st := combat.NewCombatState()
	st.Weapon = w
	st.Armor = a
	st.Skill = combat.CombatSkill{Level: skill}
	if s.Stance != "" {
		stance, err := combat.ParseStance(s.Stance)
		if err != nil {
			return nil, err
		}
		st.Stance = stance
	}
	return &st, nil
}

// ExchangeRequest asks the server to resolve a single attack exchange.
type ExchangeRequest struct {
	Attacker CombatantSpec `json:"attacker"`
	Defender CombatantSpec `json:"defender"`
}

// ExchangeResponse wraps the exchange outcome with the specs echoed back.
type ExchangeResponse struct {
	Attacker string                `json:"attacker"`
	Defender string                `json:"defender"`
	Result   combat.ExchangeResult `json:"result"`
}

// DuelRequest asks the server to run a full duel to completion.
type DuelRequest struct {
	A        CombatantSpec `json:"a"`
	B        CombatantSpec `json:"b"`
	MaxTicks int           `json:"max_ticks,omitempty"`
}

// DuelResponse carries the stored report id alongside the report itself.
type DuelResponse struct {
	ID     int64         `json:"id"`
	Report battle.Report `json:"report"`
}
