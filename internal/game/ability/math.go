package ability

import "math"

func cos32(a float32) float32 { return float32(math.Cos(float64(a))) }

func sin32(a float32) float32 { return float32(math.Sin(float64(a))) }
