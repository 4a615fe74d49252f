// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

// defaultCategories is the built-in UAV airflow sensing taxonomy (R4.1).
// Keywords are kept lowercase; category order is load-bearing.
var defaultCategories = []Category{
	{
		Name: "mems_pressure",
		Keywords: []string{
			"mems",
			"pressure sensor",
			"pressure tap",
			"piezoresistive",
			"diaphragm",
			"barometric",
		},
	},
	{
		Name: "pitot_probes",
		Keywords: []string{
			"pitot",
			"air data probe",
			"total pressure",
			"angle of attack",
			"multi-hole probe",
		},
	},
	{
		Name: "flush_air_data",
		Keywords: []string{
			"flush air data",
			"fads",
			"pressure port",
			"surface pressure",
			"pressure distribution",
		},
	},
	{
		Name: "lidar_optical",
		Keywords: []string{
			"lidar",
			"laser",
			"doppler",
			"optical",
			"backscatter",
		},
	},
	{
		Name: "acoustic_ultrasonic",
		Keywords: []string{
			"acoustic",
			"ultrasonic",
			"transit time",
			"speed of sound",
		},
	},
	{
		Name: "thermal_flow",
		Keywords: []string{
			"thermal",
			"hot-wire",
			"hot wire",
			"anemometer",
			"heat transfer",
		},
	},
	{
		Name: "ai_estimation",
		Keywords: []string{
			"neural network",
			"machine learning",
			"kalman",
			"estimation",
			"sensor fusion",
		},
	},
}

// Default returns the built-in airflow sensing taxonomy. The category set
// is static and pre-folded, so construction bypasses New; a package test
// asserts the set passes validation.
func Default() *Taxonomy {
	return &Taxonomy{categories: defaultCategories}
}
