// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package answer

import (
	"fmt"
	"strings"
)

// displayNames maps category tags to report headings. Tags without an
// entry render as themselves with underscores opened up.
var displayNames = map[string]string{
	"mems_pressure":       "MEMS pressure sensing",
	"pitot_probes":        "Pitot and multi-hole probes",
	"flush_air_data":      "Flush air data systems",
	"lidar_optical":       "Lidar and optical sensing",
	"acoustic_ultrasonic": "Acoustic and ultrasonic sensing",
	"thermal_flow":        "Thermal flow sensing",
	"ai_estimation":       "Model-based and learned estimation",
}

func displayName(tag string) string {
	if name, ok := displayNames[tag]; ok {
		return name
	}
	return strings.ReplaceAll(tag, "_", " ")
}

// categoryFacts carries the fixed domain notes appended to each answer.
// The notes are curated by hand; generators must not synthesize new ones.
var categoryFacts = map[string][]string{
	"mems_pressure": {
		"MEMS barometric and differential pressure dies dominate small-UAV airspeed sensing on cost and weight.",
		"Piezoresistive diaphragms drift with temperature; most filings pair the die with on-chip compensation.",
	},
	"pitot_probes": {
		"Conventional pitot-static probes remain the certification baseline for airspeed.",
		"Multi-hole probes add angle-of-attack and sideslip at the cost of calibration complexity.",
	},
	"flush_air_data": {
		"Flush air data systems estimate the full air data state from surface pressure ports, removing protruding probes.",
		"Port placement and failure accommodation drive most of the filed claims.",
	},
	"lidar_optical": {
		"Doppler lidar measures true airspeed ahead of the vehicle, unaffected by the airframe's own flow field.",
		"Size, power draw, and eye-safety constraints keep optical sensing on larger platforms.",
	},
	"acoustic_ultrasonic": {
		"Ultrasonic transit-time anemometry has no moving parts and degrades gracefully in icing.",
		"Acoustic methods are sensitive to rotor noise on multirotor airframes.",
	},
	"thermal_flow": {
		"Hot-wire and thermal anemometers resolve low airspeeds where pressure-based sensing loses signal.",
		"Element fouling and fragility limit thermal sensing to protected installations.",
	},
	"ai_estimation": {
		"Estimation approaches fuse inertial, GNSS, and actuator data to synthesize airspeed without a dedicated sensor.",
		"Kalman-filter and learned models serve as analytical redundancy for probe failures.",
	},
	TagToolQualification: {
		"DO-330 governs qualification of development and verification tools used on airborne software.",
		"Tool qualification is distinct from equipment certification; the tool never flies.",
	},
	TagComparison: {
		"No single sensing modality covers the full UAV envelope; fielded systems mix two or more.",
		"Pressure-based sensing leads on maturity, optical on accuracy, estimation on weight.",
	},
	TagCertification: {
		"DO-254 covers airborne electronic hardware, DO-178C the software partition of an air data system.",
		"FAA and EASA both accept analytical redundancy only alongside a primary physical sensor.",
	},
	TagDistribution: {
		"Counts reflect the curated corpus, not the full patent landscape.",
	},
	TagMarket: {
		"Assignee counts approximate commercial activity; universities file under their own names.",
	},
	TagPapers: {
		"Papers are carried through curation unclassified; counts appear in collection metadata.",
	},
	TagTrends: {
		"Publication dates cluster on filing-driven cycles; a two-year window smooths them.",
	},
	TagOverview: {
		"The corpus covers airflow sensing for unmanned aircraft: sensors, probes, and estimation methods.",
	},
}

// writeFacts appends the tag's curated notes, when any exist.
func writeFacts(b *strings.Builder, tag string) {
	facts, ok := categoryFacts[tag]
	if !ok || len(facts) == 0 {
		return
	}
	fmt.Fprintln(b, "\nNotes:")
	for _, f := range facts {
		fmt.Fprintf(b, "- %s\n", f)
	}
}
