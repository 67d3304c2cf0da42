package livestock

import "time"

// Medicine es una dosis administrada (historial).
type Medicine struct {
	Name      string     `json:"name"`
	DateGiven *time.Time `json:"dateGiven"`
	Dosage    string     `json:"dosage"`
	HasTaken  bool       `json:"hasTaken"`
	Note      string     `json:"note"`
}

// PlannedMedicine es una entrada del plan de medicación (todavía no administrada).
type PlannedMedicine struct {
	Name         string `json:"name"`
	MedicineNote string `json:"medicineNote"`
}

// Objects devuelve los elementos tipo objeto de un valor tipo array.
// Cualquier otra cosa produce una lista vacía.
func Objects(v any) []map[string]any {
	items, ok := v.([]any)
	if !ok {
		return []map[string]any{}
	}
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func NormalizeMedicines(v any) []Medicine {
	objs := Objects(v)
	out := make([]Medicine, 0, len(objs))
	for _, m := range objs {
		out = append(out, Medicine{
			Name:      ParseString(m["name"]),
			DateGiven: ParseDate(m["dateGiven"]),
			Dosage:    ParseString(m["dosage"]),
			HasTaken:  ParseBool(m["hasTaken"]),
			Note:      ParseString(m["note"]),
		})
	}
	return out
}

func NormalizePlannedMedicines(v any) []PlannedMedicine {
	objs := Objects(v)
	out := make([]PlannedMedicine, 0, len(objs))
	for _, m := range objs {
		out = append(out, PlannedMedicine{
			Name:         ParseString(m["name"]),
			MedicineNote: ParseString(m["medicineNote"]),
		})
	}
	return out
}

// CountTaken cuenta dosis administradas vs pendientes.
func CountTaken(meds []Medicine) (taken, pending int) {
	for _, m := range meds {
		if m.HasTaken {
			taken++
		} else {
			pending++
		}
	}
	return taken, pending
}
