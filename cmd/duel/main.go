package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Astreocclu/arc-citadel-sub001/internal/api"
	"github.com/Astreocclu/arc-citadel-sub001/internal/battle"
	"github.com/Astreocclu/arc-citadel-sub001/internal/combat"
)

type sideFlags struct {
	name   string
	weapon string
	armor  string
	skill  string
	role   string
}

func registerSide(prefix, defName string) *sideFlags {
	f := &sideFlags{}
	flag.StringVar(&f.name, prefix+"-name", defName, "display name")
	flag.StringVar(&f.weapon, prefix+"-weapon", "sword", "weapon preset or edge/mass/reach spec")
	flag.StringVar(&f.armor, prefix+"-armor", "none", "armor preset or rigidity/padding/coverage spec")
	flag.StringVar(&f.skill, prefix+"-skill", "trained", "novice, trained, veteran or master")
	flag.StringVar(&f.role, prefix+"-role", "", "role loadout preset, overrides weapon and armor")
	return f
}

// buildState resolves a side's flags into a combat state. A role preset
// wins over explicit weapon and armor specs.
func buildState(f *sideFlags) (*combat.CombatState, error) {
	if f.role != "" {
		role, err := combat.ParseRole(f.role)
		if err != nil {
			return nil, err
		}
		st := combat.CombatStateForRole(role)
		return &st, nil
	}
	spec := api.CombatantSpec{Name: f.name, Weapon: f.weapon, Armor: f.armor, Skill: f.skill}
	return spec.CombatState()
}

func main() {
	a := registerSide("a", "alpha")
	b := registerSide("b", "beta")
	ticks := flag.Int("ticks", battle.DefaultMaxTicks, "tick cap for the duel")
	post := flag.String("post", "", "run the duel via a combat API server at this base URL")
	asJSON := flag.Bool("json", false, "print the full report as JSON")
	flag.Parse()

	if *post != "" {
		client := api.NewClient(*post)
		res, err := client.RunDuel(api.DuelRequest{
			A:        api.CombatantSpec{Name: a.name, Weapon: a.weapon, Armor: a.armor, Skill: a.skill},
			B:        api.CombatantSpec{Name: b.name, Weapon: b.weapon, Armor: b.armor, Skill: b.skill},
			MaxTicks: *ticks,
		})
		if err != nil {
			log.Fatalf("remote duel: %v", err)
		}
		printReport(res.Report, *asJSON)
		fmt.Printf("stored as report %d\n", res.ID)
		return
	}

	stateA, err := buildState(a)
	if err != nil {
		log.Fatalf("side a: %v", err)
	}
	stateB, err := buildState(b)
	if err != nil {
		log.Fatalf("side b: %v", err)
	}

	rep := battle.Duel(a.name, b.name, stateA, stateB, battle.Options{MaxTicks: *ticks})
	printReport(rep, *asJSON)
}

func printReport(rep battle.Report, asJSON bool) {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			log.Fatalf("encode report: %v", err)
		}
		return
	}
	for _, line := range rep.Logs {
		fmt.Println(line)
	}
	fmt.Printf("ticks: %d  exchanges: %d\n", rep.Ticks, rep.Exchanges)
	for _, sr := range []battle.SideReport{rep.A, rep.B} {
		fmt.Printf("%s: %d wounds, fatigue %.2f, stress %.2f, stance %s\n",
			sr.Name, sr.WoundCount, sr.Fatigue, sr.Stress, sr.FinalStance)
	}
}
