package algorithms

import "fmt"

// floatParam reads a numeric parameter. Values arrive as float64 from the UI
// and TOML config, and as int from Go callers.
func floatParam(params map[string]interface{}, key string, def float64) (float64, error) {
	val, ok := params[key]
	if !ok {
		return def, nil
	}
	switch v := val.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%s must be a number, got %T", key, val)
	}
}

func stringParam(params map[string]interface{}, key, def string) (string, error) {
	val, ok := params[key]
	if !ok {
		return def, nil
	}
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string, got %T", key, val)
	}
	return s, nil
}

func checkRange(key string, v, lo, hi float64) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s must be between %g and %g", key, lo, hi)
	}
	return nil
}

func checkOddInt(key string, v float64) error {
	if v != float64(int(v)) || int(v)%2 == 0 {
		return fmt.Errorf("%s must be an odd integer", key)
	}
	return nil
}
