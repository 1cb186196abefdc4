package defaults

import (
	"github.com/mmynk/dayplanner/internal/models"
	"github.com/mmynk/dayplanner/internal/workout"
)

// Muscle groups of the exercise catalog.
const (
	MuscleChest      = "pectoraux"
	MuscleBack       = "dos"
	MuscleShoulders  = "epaules"
	MuscleBiceps     = "biceps"
	MuscleTriceps    = "triceps"
	MuscleAbs        = "abdominaux"
	MuscleQuads      = "quadriceps"
	MuscleGlutes     = "fessiers"
	MuscleHamstrings = "ischio_jambiers"
	MuscleCalves     = "mollets"
)

// MuscleGroups lists every muscle group in display order.
var MuscleGroups = []string{
	MuscleChest, MuscleBack, MuscleShoulders, MuscleBiceps, MuscleTriceps,
	MuscleAbs, MuscleQuads, MuscleGlutes, MuscleHamstrings, MuscleCalves,
}

type exerciseSeed struct {
	name        string
	muscleGroup string
	description string
}

var exerciseSeeds = []exerciseSeed{
	{"Développé couché barre", MuscleChest, "Allongé sur un banc plat, descendre la barre jusqu'à la poitrine puis pousser."},
	{"Développé couché haltères", MuscleChest, "Allongé sur un banc plat, pousser deux haltères au-dessus de la poitrine."},
	{"Développé incliné haltères", MuscleChest, "Sur un banc incliné à 30°, pousser les haltères vers le haut."},
	{"Écarté poulie vis-à-vis", MuscleChest, "Debout entre deux poulies hautes, ramener les mains devant la poitrine."},
	{"Pompes", MuscleChest, "En appui sur les mains et les pieds, fléchir les bras en gardant le corps gainé."},
	{"Dips", MuscleChest, "Entre deux barres parallèles, descendre buste penché puis remonter."},

	{"Tractions", MuscleBack, "Suspendu à une barre fixe, tirer jusqu'à passer le menton au-dessus."},
	{"Rowing barre", MuscleBack, "Buste penché, tirer la barre vers le nombril."},
	{"Rowing haltère unilatéral", MuscleBack, "Un genou sur le banc, tirer l'haltère le long du corps."},
	{"Tirage vertical poulie", MuscleBack, "Assis, tirer la barre de la poulie haute vers le haut de la poitrine."},
	{"Tirage horizontal poulie", MuscleBack, "Assis, tirer la poignée vers le ventre en serrant les omoplates."},
	{"Rowing TRX", MuscleBack, "Suspendu aux sangles, corps incliné, tirer la poitrine vers les mains."},
	{"Soulevé de terre barre", MuscleBack, "Dos neutre, soulever la barre du sol en poussant sur les jambes."},

	{"Développé militaire barre", MuscleShoulders, "Debout, pousser la barre de la poitrine au-dessus de la tête."},
	{"Développé épaules haltères", MuscleShoulders, "Assis, pousser les haltères au-dessus de la tête."},
	{"Élévations latérales haltères", MuscleShoulders, "Bras légèrement fléchis, lever les haltères sur les côtés jusqu'aux épaules."},
	{"Face pull poulie", MuscleShoulders, "Tirer la corde de la poulie vers le visage, coudes hauts."},
	{"Landmine press", MuscleShoulders, "Pousser l'extrémité de la barre landmine vers l'avant et le haut."},

	{"Curl barre", MuscleBiceps, "Debout, fléchir les coudes pour monter la barre."},
	{"Curl haltères", MuscleBiceps, "Debout, fléchir les coudes en alternant les bras."},
	{"Curl marteau haltères", MuscleBiceps, "Prise neutre, fléchir les coudes sans tourner les poignets."},
	{"Curl élastique", MuscleBiceps, "Pieds sur l'élastique, fléchir les coudes contre la résistance."},

	{"Extension triceps poulie haute", MuscleTriceps, "Coudes collés au corps, tendre les bras vers le bas."},
	{"Barre au front", MuscleTriceps, "Allongé, descendre la barre vers le front puis tendre les bras."},
	{"Pompes diamant", MuscleTriceps, "Pompes mains jointes sous la poitrine."},

	{"Gainage", MuscleAbs, "En appui sur les avant-bras, maintenir le corps aligné."},
	{"Crunch", MuscleAbs, "Allongé, enrouler le buste vers les genoux."},
	{"Crunch swiss ball", MuscleAbs, "Allongé sur le ballon, enrouler le buste."},
	{"Relevé de jambes", MuscleAbs, "Suspendu ou allongé, lever les jambes tendues."},
	{"Russian twist kettlebell", MuscleAbs, "Assis, pieds décollés, tourner le buste de chaque côté."},

	{"Squat barre", MuscleQuads, "Barre sur les trapèzes, descendre cuisses parallèles au sol."},
	{"Goblet squat kettlebell", MuscleQuads, "Kettlebell contre la poitrine, descendre en squat."},
	{"Presse à cuisses", MuscleQuads, "Assis à la machine, pousser la plateforme avec les pieds."},
	{"Fentes haltères", MuscleQuads, "Un grand pas en avant, descendre le genou arrière vers le sol."},
	{"Leg extension machine", MuscleQuads, "Assis, tendre les jambes contre le boudin."},

	{"Hip thrust barre", MuscleGlutes, "Dos contre un banc, pousser les hanches vers le haut."},
	{"Kettlebell swing", MuscleGlutes, "Balancer la kettlebell à hauteur d'épaules par extension de hanches."},
	{"Pont fessier", MuscleGlutes, "Allongé, pieds au sol, lever le bassin."},

	{"Soulevé de terre jambes tendues haltères", MuscleHamstrings, "Jambes presque tendues, descendre les haltères le long des jambes."},
	{"Leg curl machine", MuscleHamstrings, "Allongé, fléchir les jambes contre le boudin."},

	{"Mollets debout machine", MuscleCalves, "Monter sur la pointe des pieds sous la charge."},
	{"Mollets sur marche", MuscleCalves, "Sur une marche, monter et descendre sur la pointe des pieds."},
}

// Exercises returns the catalog with equipment derived from each name.
func Exercises() []models.Exercise {
	out := make([]models.Exercise, 0, len(exerciseSeeds))
	for _, s := range exerciseSeeds {
		out = append(out, models.Exercise{
			Name:        s.name,
			MuscleGroup: s.muscleGroup,
			Equipment:   workout.DeriveEquipment(s.name),
			Description: s.description,
		})
	}
	return out
}
