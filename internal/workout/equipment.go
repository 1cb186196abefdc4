// Package workout contains the pure rules of workout execution: equipment
// classification of catalog exercises, session progress and the rest timer.
package workout

import (
	"regexp"
	"strings"
)

// Equipment identifiers.
const (
	EquipmentDumbbells  = "halteres"
	EquipmentKettlebell = "kettlebell"
	EquipmentLandmine   = "landmine"
	EquipmentSwissBall  = "swiss_ball"
	EquipmentStraps     = "sangles"
	EquipmentBand       = "elastique"
	EquipmentCable      = "poulie"
	EquipmentMachine    = "machine"
	EquipmentBarbell    = "barre"
	EquipmentBodyweight = "poids_du_corps"
)

type equipmentRule struct {
	pattern   *regexp.Regexp
	unless    *regexp.Regexp
	equipment string
}

// Checked in order: specific gear first so that compound names such as
// "Kettlebell ... barre" resolve to the specific one.
var equipmentRules = []equipmentRule{
	{pattern: regexp.MustCompile(`halt[eè]re`), equipment: EquipmentDumbbells},
	{pattern: regexp.MustCompile(`kettlebell`), equipment: EquipmentKettlebell},
	{pattern: regexp.MustCompile(`landmine`), equipment: EquipmentLandmine},
	{pattern: regexp.MustCompile(`swiss\s*ball|ballon`), equipment: EquipmentSwissBall},
	{pattern: regexp.MustCompile(`sangles|trx|suspension`), equipment: EquipmentStraps},
	{pattern: regexp.MustCompile(`[eé]lastique|bande`), equipment: EquipmentBand},
	{pattern: regexp.MustCompile(`poulie|cable|câble|vis[- ]?[aà][- ]?vis`), equipment: EquipmentCable},
	{pattern: regexp.MustCompile(`machine|presse|smith|leg\s*press|hack\s*squat`), equipment: EquipmentMachine},
	{pattern: regexp.MustCompile(`barre|squat\s+barre`), equipment: EquipmentBarbell},
	{pattern: regexp.MustCompile(`d[eé]velopp[eé]\s+couch[eé]`), unless: regexp.MustCompile(`halt`), equipment: EquipmentBarbell},
}

// DeriveEquipment classifies an exercise by keywords in its name.
// Names matching no rule are bodyweight exercises.
func DeriveEquipment(name string) string {
	normalized := strings.ToLower(name)
	for _, rule := range equipmentRules {
		if !rule.pattern.MatchString(normalized) {
			continue
		}
		if rule.unless != nil && rule.unless.MatchString(normalized) {
			continue
		}
		return rule.equipment
	}
	return EquipmentBodyweight
}
