package emissions

// Totals maps a country to an emissions total.
type Totals map[string]float64

// SectorBreakdown holds one sector's subsector totals for a country.
// SectorTotal is always the sum of Subsectors.
type SectorBreakdown struct {
	Subsectors  map[string]float64
	SectorTotal float64
}

// Recompute sets SectorTotal from the subsector values.
func (s *SectorBreakdown) Recompute() {
	var total float64
	for _, v := range s.Subsectors {
		total += v
	}
	s.SectorTotal = total
}

// Breakdown maps country to sector to that sector's subsector totals.
type Breakdown map[string]map[string]*SectorBreakdown

func (b Breakdown) add(r Record) {
	sectors, ok := b[r.Country]
	if !ok {
		sectors = make(map[string]*SectorBreakdown)
		b[r.Country] = sectors
	}

	sb, ok := sectors[r.Sector]
	if !ok {
		sb = &SectorBreakdown{Subsectors: make(map[string]float64)}
		sectors[r.Sector] = sb
	}
	sb.Subsectors[r.Subsector] += r.Emissions
}

func (b Breakdown) recompute() {
	for _, sectors := range b {
		for _, sb := range sectors {
			sb.Recompute()
		}
	}
}

// Summary holds the three views derived from one record collection.
type Summary struct {
	Net       Totals
	Gross     Totals
	Breakdown Breakdown
}

// NetEmissions sums every record's emissions per country.
func NetEmissions(records []Record) Totals {
	return Aggregate(records).Net
}

// GrossEmissions sums only strictly positive emissions per country. A
// country with no positive record is absent.
func GrossEmissions(records []Record) Totals {
	return Aggregate(records).Gross
}

// BuildBreakdown accumulates emissions per country, sector and subsector and
// computes each sector's total.
func BuildBreakdown(records []Record) Breakdown {
	return Aggregate(records).Breakdown
}

// Aggregate computes net totals, gross totals and the breakdown in one pass.
func Aggregate(records []Record) Summary {
	s := Summary{
		Net:       make(Totals),
		Gross:     make(Totals),
		Breakdown: make(Breakdown),
	}

	for _, r := range records {
		s.Net[r.Country] += r.Emissions
		if r.Emissions > 0 {
			s.Gross[r.Country] += r.Emissions
		}
		s.Breakdown.add(r)
	}
	s.Breakdown.recompute()

	return s
}
