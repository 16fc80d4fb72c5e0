// Package taxonomy holds the fixed Climate TRACE sector vocabulary and the
// country reference tables used by the emissions pipeline.
package taxonomy

import "sort"

// Unknown is returned for subsectors that have no parent sector.
const Unknown = "unknown"

// Top-level sector identifiers.
const (
	FluorinatedGases     = "fluorinated-gases"
	Waste                = "waste"
	Transportation       = "transportation"
	FossilFuelOperations = "fossil-fuel-operations"
	Agriculture          = "agriculture"
	Power                = "power"
	ForestryAndLandUse   = "forestry-and-land-use"
	Buildings            = "buildings"
	Manufacturing        = "manufacturing"
	MineralExtraction    = "mineral-extraction"
)

var sectors = [...]string{
	FluorinatedGases,
	Waste,
	Transportation,
	FossilFuelOperations,
	Agriculture,
	Power,
	ForestryAndLandUse,
	Buildings,
	Manufacturing,
	MineralExtraction,
}

// parentSector maps every known subsector to exactly one sector.
var parentSector = map[string]string{
	"aluminum":                     Manufacturing,
	"cement":                       Manufacturing,
	"chemicals":                    Manufacturing,
	"food-beverage-tobacco":        Manufacturing,
	"glass":                        Manufacturing,
	"iron-and-steel":               Manufacturing,
	"other-chemicals":              Manufacturing,
	"other-energy-use":             Manufacturing,
	"other-manufacturing":          Manufacturing,
	"other-metals":                 Manufacturing,
	"petrochemical-steam-cracking": Manufacturing,
	"pulp-and-paper":               Manufacturing,
	"textiles-leather-apparel":     Manufacturing,

	"bauxite-mining":         MineralExtraction,
	"copper-mining":          MineralExtraction,
	"iron-mining":            MineralExtraction,
	"lime":                   MineralExtraction,
	"other-mining-quarrying": MineralExtraction,
	"rock-quarrying":         MineralExtraction,
	"sand-quarrying":         MineralExtraction,

	"electricity-generation":    Power,
	"heat-plants":               Power,
	"solid-fuel-transformation": Power,

	"domestic-aviation":                Transportation,
	"domestic-shipping":                Transportation,
	"domestic-shipping-ship":           Transportation,
	"international-aviation":           Transportation,
	"international-shipping":           Transportation,
	"international-shipping-ship":      Transportation,
	"other-transport":                  Transportation,
	"railways":                         Transportation,
	"road-transportation":              Transportation,
	"road-transportation-road-segment": Transportation,

	"coal-mining":                  FossilFuelOperations,
	"oil-and-gas-production":       FossilFuelOperations,
	"oil-and-gas-refining":         FossilFuelOperations,
	"oil-and-gas-transport":        FossilFuelOperations,
	"other-fossil-fuel-operations": FossilFuelOperations,

	"cropland-fires":                        Agriculture,
	"crop-residues":                         Agriculture,
	"enteric-fermentation-cattle-operation": Agriculture,
	"enteric-fermentation-cattle-pasture":   Agriculture,
	"enteric-fermentation-other":            Agriculture,
	"manure-applied-to-soils":               Agriculture,
	"manure-left-on-pasture-cattle":         Agriculture,
	"manure-management-cattle-operation":    Agriculture,
	"manure-management-other":               Agriculture,
	"other-agricultural-soil-emissions":     Agriculture,
	"rice-cultivation":                      Agriculture,
	"synthetic-fertilizer-application":      Agriculture,

	"forest-land-clearing":    ForestryAndLandUse,
	"forest-land-degradation": ForestryAndLandUse,
	"forest-land-fires":       ForestryAndLandUse,
	"net-forest-land":         ForestryAndLandUse,
	"net-shrubgrass":          ForestryAndLandUse,
	"net-wetland":             ForestryAndLandUse,
	"removals":                ForestryAndLandUse,
	"shrubgrass-fires":        ForestryAndLandUse,
	"soil-organic-carbon":     ForestryAndLandUse,
	"water-reservoirs":        ForestryAndLandUse,
	"wetland-fires":           ForestryAndLandUse,
	"wood-and-wood-products":  ForestryAndLandUse,

	"non-residential-onsite-fuel-usage": Buildings,
	"other-onsite-fuel-usage":           Buildings,
	"residential-onsite-fuel-usage":     Buildings,

	"biological-treatment-of-solid-waste-and-biogenic": Waste,
	"domestic-wastewater-treatment-and-discharge":      Waste,
	"incineration-and-open-burning-of-waste":           Waste,
	"industrial-wastewater-treatment-and-discharge":    Waste,
	"solid-waste-disposal":                             Waste,

	"fluorinated-gases": FluorinatedGases,
}

// SectorOf returns the top-level sector for a subsector, or Unknown.
func SectorOf(subsector string) string {
	if sector, ok := parentSector[subsector]; ok {
		return sector
	}
	return Unknown
}

// IsSector reports whether s is one of the ten top-level sectors.
func IsSector(s string) bool {
	for _, sector := range sectors {
		if sector == s {
			return true
		}
	}
	return false
}

// IsSubsector reports whether s has a known parent sector.
func IsSubsector(s string) bool {
	_, ok := parentSector[s]
	return ok
}

// Sectors returns the ten sector identifiers in their canonical order.
func Sectors() []string {
	out := make([]string, len(sectors))
	copy(out, sectors[:])
	return out
}

// Subsectors returns every known subsector, sorted.
func Subsectors() []string {
	out := make([]string, 0, len(parentSector))
	for subsector := range parentSector {
		out = append(out, subsector)
	}
	sort.Strings(out)
	return out
}

// SubsectorsOf returns the sorted subsectors belonging to sector. An unknown
// sector yields an empty slice.
func SubsectorsOf(sector string) []string {
	var out []string
	for subsector, parent := range parentSector {
		if parent == sector {
			out = append(out, subsector)
		}
	}
	sort.Strings(out)
	return out
}

// Unmapped returns the entries of subsectors that have no parent sector,
// preserving input order.
func Unmapped(subsectors []string) []string {
	var out []string
	for _, s := range subsectors {
		if !IsSubsector(s) {
			out = append(out, s)
		}
	}
	return out
}
