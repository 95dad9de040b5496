package service

import (
	"regexp"
	"strings"
)

// residentialArea pairs an uppercase match token with the display caption
// reported for the area.
type residentialArea struct {
	match   string
	caption string
}

// district groups the residential areas managed by one city district.
type district struct {
	name  string
	areas []residentialArea
}

// districts is scanned in order; the first district owning a substring of
// the uppercased area caption wins. Distrikt Mitt goes last because its
// CENTRUM token is a substring of several outer-district captions.
var districts = []district{
	{
		name: "Distrikt Väst",
		areas: []residentialArea{
			{match: "BÄCKBY", caption: "Bäckby"},
			{match: "RÅBY", caption: "Råby"},
			{match: "VALLBY", caption: "Vallby"},
			{match: "VETTERSTORP", caption: "Vetterstorp"},
			{match: "SKALLBERGET", caption: "Skallberget"},
			{match: "PETTERSBERG", caption: "Pettersberg"},
			{match: "OXBACKEN", caption: "Oxbacken"},
			{match: "JAKOBSBERG", caption: "Jakobsberg"},
		},
	},
	{
		name: "Distrikt Öst",
		areas: []residentialArea{
			{match: "GIDEONSBERG", caption: "Gideonsberg"},
			{match: "MALMABERG", caption: "Malmaberg"},
			{match: "SKILJEBO", caption: "Skiljebo"},
			{match: "VIKSÄNG", caption: "Viksäng"},
			{match: "BJURHOVDA", caption: "Bjurhovda"},
			{match: "NORDANBY", caption: "Nordanby"},
			{match: "ÖNSTA", caption: "Önsta-Gryta"},
			{match: "HAGA", caption: "Haga"},
		},
	},
	{
		name: "Distrikt Norr",
		areas: []residentialArea{
			{match: "SKULTUNA", caption: "Skultuna"},
			{match: "HÖKÅSEN", caption: "Hökåsen"},
			{match: "TILLBERGA", caption: "Tillberga"},
			{match: "RÖNNBY", caption: "Rönnby"},
		},
	},
	{
		name: "Distrikt Söder",
		areas: []residentialArea{
			{match: "HAMMARBY", caption: "Hammarby"},
			{match: "PETTERSLUND", caption: "Petterslund"},
			{match: "HAMRE", caption: "Hamre"},
			{match: "TALLTORP", caption: "Talltorp"},
		},
	},
	{
		name: "Distrikt Mitt",
		areas: []residentialArea{
			{match: "CENTRUM", caption: "City"},
			{match: "KUNGSÄNGEN", caption: "Kungsängen"},
			{match: "VASASTAN", caption: "Vasastan"},
			{match: "ÖSTERMALM", caption: "Östermalm"},
		},
	},
}

// placeholder reported when a caption matches no known residential area.
const unknownCaption = "-"

var districtCodePattern = regexp.MustCompile(`^(\d+):`)

// classifyDistrict maps a free-text area caption (e.g. "12: GIDEONSBERG
// CENTRUM") to a district name, district code and residential area. The
// digits prefix, when present, is the district code. Matching is ordered,
// first-match-wins, case-insensitive substring search.
func classifyDistrict(areaCaption string) (districtName, districtCode, areaName, areaCode string) {
	districtName = unknownCaption
	areaName = unknownCaption

	if m := districtCodePattern.FindStringSubmatch(areaCaption); m != nil {
		districtCode = m[1]
	}

	upper := strings.ToUpper(areaCaption)
	for _, d := range districts {
		for _, area := range d.areas {
			if strings.Contains(upper, area.match) {
				return d.name, districtCode, area.caption, area.match
			}
		}
	}
	return districtName, districtCode, areaName, ""
}
