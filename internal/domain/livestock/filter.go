package livestock

import (
	"strconv"
	"strings"
	"time"
)

// Range es un rango numérico inclusivo con cotas opcionales.
type Range struct {
	Min *float64
	Max *float64
}

func (r Range) IsZero() bool { return r.Min == nil && r.Max == nil }

// Contains: un valor nulo no cumple un rango con alguna cota definida.
func (r Range) Contains(v *float64) bool {
	if r.IsZero() {
		return true
	}
	if v == nil {
		return false
	}
	if r.Min != nil && *v < *r.Min {
		return false
	}
	if r.Max != nil && *v > *r.Max {
		return false
	}
	return true
}

// ParseRange lee "<field>Min" / "<field>Max" desde los query params.
func ParseRange(field, minRaw, maxRaw string) (Range, error) {
	var r Range
	var err error
	if r.Min, err = parseBound(field+"Min", minRaw); err != nil {
		return Range{}, err
	}
	if r.Max, err = parseBound(field+"Max", maxRaw); err != nil {
		return Range{}, err
	}
	return r, nil
}

func parseBound(name, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	f := ParseNumber(raw)
	if f == nil {
		return nil, Errorf(KindValidation, "%s must be a number", name)
	}
	return f, nil
}

// ParseFlag implementa el filtro tri-estado: ausente => nil, "true"/"false" => valor exacto.
func ParseFlag(name, raw string) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return nil, nil
	case "true":
		v := true
		return &v, nil
	case "false":
		v := false
		return &v, nil
	default:
		return nil, Errorf(KindValidation, "%s must be true or false", name)
	}
}

// MatchFlag: nil no restringe.
func MatchFlag(want *bool, got bool) bool {
	return want == nil || *want == got
}

// ParseDays parsea timeInFarmDays (entero >= 0).
func ParseDays(name, raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, Errorf(KindValidation, "%s must be a non-negative integer", name)
	}
	return &n, nil
}

// Since convierte "días en el campo" a un corte sobre created_at.
func Since(now time.Time, days *int) *time.Time {
	if days == nil {
		return nil
	}
	t := now.AddDate(0, 0, -*days)
	return &t
}

// NameContains es la búsqueda por nombre: substring case-insensitive.
func NameContains(name, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(q))
}
