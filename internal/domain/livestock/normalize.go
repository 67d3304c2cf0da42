package livestock

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NotAvailable es el centinela que usan los formularios para "sin dato".
const NotAvailable = "N/A"

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func isBlank(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, NotAvailable)
}

// ParseDate devuelve nil para vacío, null, "N/A" o una fecha que no se puede parsear.
// Nunca falla. Las fechas se guardan en UTC.
func ParseDate(v any) *time.Time {
	switch x := v.(type) {
	case nil:
		return nil
	case time.Time:
		if x.IsZero() {
			return nil
		}
		t := x.UTC()
		return &t
	case *time.Time:
		if x == nil {
			return nil
		}
		return ParseDate(*x)
	case string:
		if isBlank(x) {
			return nil
		}
		s := strings.TrimSpace(x)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				t = t.UTC()
				return &t
			}
		}
		return nil
	default:
		return nil
	}
}

// ParseNumber devuelve nil para vacío, null, "N/A" o valores no numéricos.
// 0 sigue siendo 0.
func ParseNumber(v any) *float64 {
	var f float64
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case *float64:
		if x == nil {
			return nil
		}
		f = *x
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		if isBlank(x) {
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// ParseBool aplica coerción truthy: null, "", "false", "0", 0 y false son false;
// cualquier otro valor es true.
func ParseBool(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "", "false", "0":
			return false
		}
		return true
	case json.Number:
		f, err := x.Float64()
		return err != nil || f != 0
	case float64:
		return x != 0 && !math.IsNaN(x)
	case int:
		return x != 0
	default:
		return true
	}
}

// ParseString recorta espacios; null y "N/A" quedan como "".
func ParseString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		if isBlank(x) {
			return ""
		}
		return strings.TrimSpace(x)
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

// ParseTag normaliza un identificador asignado por el operador (cowId/calfId).
// Vacío significa "sin tag" y no participa de la unicidad.
func ParseTag(v any) *string {
	s := ParseString(v)
	if s == "" {
		return nil
	}
	return &s
}

// ParseCount parsea un entero >= min. Sin valor devuelve def.
func ParseCount(field string, v any, def, min int) (int, error) {
	f := ParseNumber(v)
	if f == nil {
		return def, nil
	}
	n := int(math.Trunc(*f))
	if n < min {
		return 0, Errorf(KindValidation, "%s must be >= %d", field, min)
	}
	return n, nil
}

// NonNegative valida que un campo numérico opcional no sea negativo.
func NonNegative(field string, v *float64) error {
	if v != nil && *v < 0 {
		return Errorf(KindValidation, "%s must not be negative", field)
	}
	return nil
}

// Required valida campos obligatorios en altas y actualizaciones.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return Errorf(KindValidation, "%s is required", field)
	}
	return nil
}

// ParseID valida el formato de una identidad del store.
func ParseID(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", Errorf(KindInvalidReference, "invalid id format: %s", raw)
	}
	return id.String(), nil
}

// NewID genera una identidad nueva.
func NewID() string {
	return uuid.NewString()
}
