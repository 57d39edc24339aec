package calc

import "math"

const (
	pi    = math.Pi
	euler = math.E
)

const degToRad = math.Pi / 180

func sinDeg(x float64) float64 { return math.Sin(x * degToRad) }
func cosDeg(x float64) float64 { return math.Cos(x * degToRad) }
func tanDeg(x float64) float64 { return math.Tan(x * degToRad) }

func log10(x float64) float64 { return math.Log10(x) }
func ln(x float64) float64    { return math.Log(x) }
func sqrt(x float64) float64  { return math.Sqrt(x) }
