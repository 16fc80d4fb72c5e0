package taxonomy

import "strings"

// defaultCountries is the full list of ISO 3166 alpha-3 codes the pipeline
// requests when no explicit list is configured.
var defaultCountries = [...]string{
	"AFG", "ALB", "DZA", "AND", "AGO", "ATG", "ARG", "ARM", "AUS", "AUT", "AZE", "BHS", "BHR", "BGD", "BRB",
	"BLR", "BEL", "BLZ", "BEN", "BTN", "BOL", "BIH", "BWA", "BRA", "BRN", "BGR", "BFA", "BDI", "KHM", "CMR",
	"CAN", "CPV", "CAF", "TCD", "CHL", "CHN", "COL", "COM", "COK", "CRI", "CIV", "HRV", "CUB", "CYP", "CZE",
	"COD", "DNK", "DJI", "DMA", "DOM", "ECU", "EGY", "SLV", "GNQ", "ERI", "EST", "SWZ", "ETH", "FJI", "FIN",
	"FRA", "GAB", "GMB", "GEO", "DEU", "GHA", "GRC", "GRD", "GTM", "GIN", "GNB", "GUY", "HTI", "HND", "HUN",
	"ISL", "IND", "IDN", "IRN", "IRQ", "IRL", "ISR", "ITA", "JAM", "JPN", "JOR", "KAZ", "KEN", "KIR", "KWT",
	"KGZ", "LAO", "LVA", "LBN", "LSO", "LBR", "LBY", "LIE", "LTU", "LUX", "MKD", "MDG", "MWI", "MYS", "MDV",
	"MLI", "MLT", "MHL", "MRT", "MUS", "MEX", "FSM", "MDA", "MNG", "MNE", "MAR", "MOZ", "MMR", "NAM", "NRU",
	"NPL", "NLD", "NZL", "NIC", "NER", "NGA", "NIU", "PRK", "NOR", "OMN", "PAK", "PLW", "PAN", "PNG", "PRY",
	"PER", "PHL", "POL", "PRT", "QAT", "COG", "ROU", "RUS", "RWA", "KNA", "LCA", "VCT", "WSM", "STP", "SAU",
	"SEN", "SRB", "SYC", "SLE", "SGP", "SVK", "SVN", "SLB", "SOM", "ZAF", "KOR", "SSD", "ESP", "LKA", "SDN",
	"SUR", "SWE", "CHE", "SYR", "TJK", "TZA", "THA", "TLS", "TGO", "TON", "TTO", "TUN", "TUR", "TKM", "TUV",
	"UGA", "UKR", "ARE", "GBR", "USA", "URY", "UZB", "VUT", "VEN", "VNM", "YEM", "ZMB", "ZWE",
}

// countryNames maps alpha-3 codes to display names.
var countryNames = map[string]string{
	"AFG": "Afghanistan",
	"ALB": "Albania",
	"DZA": "Algeria",
	"AND": "Andorra",
	"AGO": "Angola",
	"ATG": "Antigua and Barbuda",
	"ARG": "Argentina",
	"ARM": "Armenia",
	"AUS": "Australia",
	"AUT": "Austria",
	"AZE": "Azerbaijan",
	"BHS": "Bahamas",
	"BHR": "Bahrain",
	"BGD": "Bangladesh",
	"BRB": "Barbados",
	"BLR": "Belarus",
	"BEL": "Belgium",
	"BLZ": "Belize",
	"BEN": "Benin",
	"BTN": "Bhutan",
	"BOL": "Bolivia",
	"BIH": "Bosnia and Herzegovina",
	"BWA": "Botswana",
	"BRA": "Brazil",
	"BRN": "Brunei",
	"BGR": "Bulgaria",
	"BFA": "Burkina Faso",
	"BDI": "Burundi",
	"KHM": "Cambodia",
	"CMR": "Cameroon",
	"CAN": "Canada",
	"CPV": "Cape Verde",
	"CAF": "Central African Republic",
	"TCD": "Chad",
	"CHL": "Chile",
	"CHN": "China",
	"COL": "Colombia",
	"COM": "Comoros",
	"COK": "Cook Islands",
	"CRI": "Costa Rica",
	"CIV": "Côte d'Ivoire",
	"HRV": "Croatia",
	"CUB": "Cuba",
	"CYP": "Cyprus",
	"CZE": "Czechia",
	"COD": "Democratic Republic of the Congo",
	"DNK": "Denmark",
	"DJI": "Djibouti",
	"DMA": "Dominica",
	"DOM": "Dominican Republic",
	"ECU": "Ecuador",
	"EGY": "Egypt",
	"SLV": "El Salvador",
	"GNQ": "Equatorial Guinea",
	"ERI": "Eritrea",
	"EST": "Estonia",
	"SWZ": "Eswatini",
	"ETH": "Ethiopia",
	"FJI": "Fiji",
	"FIN": "Finland",
	"FRA": "France",
	"GAB": "Gabon",
	"GMB": "Gambia",
	"GEO": "Georgia",
	"DEU": "Germany",
	"GHA": "Ghana",
	"GRC": "Greece",
	"GRD": "Grenada",
	"GTM": "Guatemala",
	"GIN": "Guinea",
	"GNB": "Guinea-Bissau",
	"GUY": "Guyana",
	"HTI": "Haiti",
	"HND": "Honduras",
	"HUN": "Hungary",
	"ISL": "Iceland",
	"IND": "India",
	"IDN": "Indonesia",
	"IRN": "Iran",
	"IRQ": "Iraq",
	"IRL": "Ireland",
	"ISR": "Israel",
	"ITA": "Italy",
	"JAM": "Jamaica",
	"JPN": "Japan",
	"JOR": "Jordan",
	"KAZ": "Kazakhstan",
	"KEN": "Kenya",
	"KIR": "Kiribati",
	"KWT": "Kuwait",
	"KGZ": "Kyrgyzstan",
	"LAO": "Laos",
	"LVA": "Latvia",
	"LBN": "Lebanon",
	"LSO": "Lesotho",
	"LBR": "Liberia",
	"LBY": "Libya",
	"LIE": "Liechtenstein",
	"LTU": "Lithuania",
	"LUX": "Luxembourg",
	"MKD": "North Macedonia",
	"MDG": "Madagascar",
	"MWI": "Malawi",
	"MYS": "Malaysia",
	"MDV": "Maldives",
	"MLI": "Mali",
	"MLT": "Malta",
	"MHL": "Marshall Islands",
	"MRT": "Mauritania",
	"MUS": "Mauritius",
	"MEX": "Mexico",
	"FSM": "Micronesia",
	"MDA": "Moldova",
	"MNG": "Mongolia",
	"MNE": "Montenegro",
	"MAR": "Morocco",
	"MOZ": "Mozambique",
	"MMR": "Myanmar",
	"NAM": "Namibia",
	"NRU": "Nauru",
	"NPL": "Nepal",
	"NLD": "Netherlands",
	"NZL": "New Zealand",
	"NIC": "Nicaragua",
	"NER": "Niger",
	"NGA": "Nigeria",
	"NIU": "Niue",
	"PRK": "North Korea",
	"NOR": "Norway",
	"OMN": "Oman",
	"PAK": "Pakistan",
	"PLW": "Palau",
	"PAN": "Panama",
	"PNG": "Papua New Guinea",
	"PRY": "Paraguay",
	"PER": "Peru",
	"PHL": "Philippines",
	"POL": "Poland",
	"PRT": "Portugal",
	"QAT": "Qatar",
	"COG": "Republic of the Congo",
	"ROU": "Romania",
	"RUS": "Russia",
	"RWA": "Rwanda",
	"KNA": "Saint Kitts and Nevis",
	"LCA": "Saint Lucia",
	"VCT": "Saint Vincent and the Grenadines",
	"WSM": "Samoa",
	"STP": "Sao Tome and Principe",
	"SAU": "Saudi Arabia",
	"SEN": "Senegal",
	"SRB": "Serbia",
	"SYC": "Seychelles",
	"SLE": "Sierra Leone",
	"SGP": "Singapore",
	"SVK": "Slovakia",
	"SVN": "Slovenia",
	"SLB": "Solomon Islands",
	"SOM": "Somalia",
	"ZAF": "South Africa",
	"KOR": "South Korea",
	"SSD": "South Sudan",
	"ESP": "Spain",
	"LKA": "Sri Lanka",
	"SDN": "Sudan",
	"SUR": "Suriname",
	"SWE": "Sweden",
	"CHE": "Switzerland",
	"SYR": "Syria",
	"TJK": "Tajikistan",
	"TZA": "Tanzania",
	"THA": "Thailand",
	"TLS": "Timor-Leste",
	"TGO": "Togo",
	"TON": "Tonga",
	"TTO": "Trinidad and Tobago",
	"TUN": "Tunisia",
	"TUR": "Turkey",
	"TKM": "Turkmenistan",
	"TUV": "Tuvalu",
	"UGA": "Uganda",
	"UKR": "Ukraine",
	"ARE": "United Arab Emirates",
	"GBR": "United Kingdom",
	"USA": "United States",
	"URY": "Uruguay",
	"UZB": "Uzbekistan",
	"VUT": "Vanuatu",
	"VEN": "Venezuela",
	"VNM": "Vietnam",
	"YEM": "Yemen",
	"ZMB": "Zambia",
	"ZWE": "Zimbabwe",
}

// CountryCodes returns the default country code list in its canonical order.
func CountryCodes() []string {
	out := make([]string, len(defaultCountries))
	copy(out, defaultCountries[:])
	return out
}

// CountryName returns the display name for an alpha-3 code. Unknown codes are
// returned unchanged so callers can always label a node.
func CountryName(code string) string {
	if name, ok := countryNames[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// CountryCode resolves a display name (case-insensitive) or an alpha-3 code
// to its canonical upper-case code.
func CountryCode(nameOrCode string) (string, bool) {
	upper := strings.ToUpper(strings.TrimSpace(nameOrCode))
	if _, ok := countryNames[upper]; ok {
		return upper, true
	}
	for code, name := range countryNames {
		if strings.EqualFold(name, strings.TrimSpace(nameOrCode)) {
			return code, true
		}
	}
	return "", false
}
