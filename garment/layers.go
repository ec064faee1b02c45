// Package garment classifies the node names of a loaded 3D garment model
// into the parts the customizer can restyle.
package garment

import "strings"

// Part is a garment part a 3D node belongs to
type Part string

const (
	PartCollar Part = "collar"
	PartLapel  Part = "lapel"
	PartSleeve Part = "sleeve"
	PartCuff   Part = "cuff"
	PartPocket Part = "pocket"
	PartButton Part = "button"
	PartVent   Part = "vent"
	PartLining Part = "lining"
	PartBack   Part = "back"
	PartBody   Part = "body"
	PartOther  Part = "other"
)

type layerRule struct {
	part     Part
	keywords []string
}

// Rules are checked in order; the first keyword contained in the node name wins.
// Specific parts come before body so "sleeve_front" is a sleeve, not body.
var layerRules = []layerRule{
	{PartButton, []string{"button", "btn"}},
	{PartLapel, []string{"lapel", "revers"}},
	{PartCollar, []string{"collar", "neck"}},
	{PartCuff, []string{"cuff"}},
	{PartSleeve, []string{"sleeve", "arm"}},
	{PartPocket, []string{"pocket", "flap"}},
	{PartVent, []string{"vent", "slit"}},
	{PartLining, []string{"lining", "inner"}},
	{PartBack, []string{"back"}},
	{PartBody, []string{"front", "body", "torso", "panel"}},
}

// ClassifyLayer returns the garment part a node name belongs to
func ClassifyLayer(nodeName string) Part {
	name := strings.ToLower(nodeName)
	for _, rule := range layerRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(name, keyword) {
				return rule.part
			}
		}
	}
	return PartOther
}

// ClassifyLayers groups node names by garment part, keeping input order
// within each part. Empty names are ignored.
func ClassifyLayers(nodeNames []string) map[Part][]string {
	layers := make(map[Part][]string)
	for _, name := range nodeNames {
		if strings.TrimSpace(name) == "" {
			continue
		}
		part := ClassifyLayer(name)
		layers[part] = append(layers[part], name)
	}
	return layers
}
