package astro

import (
	"math"
	"sort"

	"github.com/julianstephens/arcana/internal/models"
)

// CalculateAspects matches every unordered planet pair against the supplied
// aspect definitions. A pair may match several definitions independently;
// each match is its own entry. The result is sorted ascending by orb with a
// stable sort, so ties keep discovery order (pair order, then definition
// order).
func CalculateAspects(positions []models.PlanetPosition, definitions []models.AspectDefinition) []models.ChartAspect {
	var aspects []models.ChartAspect

	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			p1, p2 := positions[i], positions[j]

			separation := math.Abs(p1.TotalDegrees - p2.TotalDegrees)
			if separation > 180 {
				separation = 360 - separation
			}

			for _, def := range definitions {
				orbDistance := math.Abs(separation - def.Degrees)
				if orbDistance <= def.Orb {
					aspects = append(aspects, models.ChartAspect{
						Planet1:       p1.Planet,
						Planet2:       p2.Planet,
						AspectName:    def.Name,
						AspectSymbol:  def.Symbol,
						ExactDegrees:  def.Degrees,
						ActualDegrees: separation,
						Orb:           round2(orbDistance),
						Nature:        def.Nature,
					})
				}
			}
		}
	}

	sort.SliceStable(aspects, func(i, j int) bool {
		return aspects[i].Orb < aspects[j].Orb
	})
	return aspects
}
