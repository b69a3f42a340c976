package schedule

// ColorConfiguration is a display color state: color temperature in Kelvin
// and brightness as a fraction of full output. It is a plain value, compared
// field by field and freely copyable.
type ColorConfiguration struct {
	Temperature float64 // Kelvin, positive
	Brightness  float64 // 0.0 - 1.0
}

// blend interpolates between two configurations, field by field. The
// endpoints are returned verbatim so a completed transition lands exactly
// on the target configuration, not on a rounded neighbour of it.
func blend(from, to ColorConfiguration, weight float64) ColorConfiguration {
	switch weight {
	case 0:
		return from
	case 1:
		return to
	}
	return ColorConfiguration{
		Temperature: from.Temperature + (to.Temperature-from.Temperature)*weight,
		Brightness:  from.Brightness + (to.Brightness-from.Brightness)*weight,
	}
}
