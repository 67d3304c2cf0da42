package cows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"livestock-records/internal/domain/calves"
	"livestock-records/internal/domain/livestock"
	"livestock-records/internal/platform/logger"
)

// CalfLookup resuelve terneros por identidad. *calves.Service lo implementa.
type CalfLookup interface {
	GetByID(ctx context.Context, id string) (calves.Calf, error)
}

// LinkedCalf es la proyección de un link para mostrar en la respuesta.
// Resolved=false si el ternero no se pudo resolver.
type LinkedCalf struct {
	CalfID   string
	Name     string
	Image1   string
	Resolved bool
}

// LinkManager mantiene la asociación vaca -> terneros.
type LinkManager struct {
	calves CalfLookup
}

func NewLinkManager(calves CalfLookup) *LinkManager {
	return &LinkManager{calves: calves}
}

// Resolve valida el set de links pedido y devuelve la lista que reemplaza a la anterior.
// Orden de validación: formato (InvalidReference), existencia (NotFound),
// duplicados dentro del mismo request (DuplicateLink).
// null o ausente equivale a lista vacía; cualquier otro valor que no sea array se rechaza,
// porque el reemplazo desvincularía todo.
func (m *LinkManager) Resolve(ctx context.Context, requested any) ([]CalfLink, error) {
	items, ok := requested.([]any)
	if !ok && requested != nil {
		return nil, livestock.Errorf(livestock.KindValidation, "linkedCalves must be an array")
	}

	ids := make([]string, 0, len(items))
	for _, it := range items {
		raw := refValue(it)
		id, err := livestock.ParseID(raw)
		if err != nil {
			return nil, livestock.Errorf(livestock.KindInvalidReference, "invalid calf id format: %s", raw)
		}
		ids = append(ids, id)
	}

	for _, id := range ids {
		if _, err := m.calves.GetByID(ctx, id); err != nil {
			if errors.Is(err, livestock.ErrNotFound) {
				return nil, livestock.Errorf(livestock.KindNotFound, "calf not found for id: %s", id)
			}
			return nil, err
		}
	}

	seen := make(map[string]struct{}, len(ids))
	links := make([]CalfLink, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, livestock.Errorf(livestock.KindDuplicateLink, "calf %s is linked more than once", id)
		}
		seen[id] = struct{}{}
		links = append(links, CalfLink{CalfID: id})
	}
	return links, nil
}

// Enrich resuelve {name, image1} de cada link. Los fallos no son fatales:
// se loguean y el link queda sin enriquecer.
func (m *LinkManager) Enrich(ctx context.Context, links []CalfLink) []LinkedCalf {
	log := logger.FromContext(ctx)

	out := make([]LinkedCalf, 0, len(links))
	for _, l := range links {
		c, err := m.calves.GetByID(ctx, l.CalfID)
		if err != nil {
			log.Warn("linked calf not resolved", logger.Fields{"calf_id": l.CalfID, "err": err})
			out = append(out, LinkedCalf{CalfID: l.CalfID})
			continue
		}
		out = append(out, LinkedCalf{
			CalfID:   l.CalfID,
			Name:     c.Name,
			Image1:   c.Image1,
			Resolved: true,
		})
	}
	return out
}

// appendLink es la variante merge: agrega id al final si todavía no está.
func appendLink(links []CalfLink, id string) []CalfLink {
	for _, l := range links {
		if l.CalfID == id {
			return links
		}
	}
	out := make([]CalfLink, 0, len(links)+1)
	out = append(out, links...)
	return append(out, CalfLink{CalfID: id})
}

// refValue acepta "id", {"calfId": "id"}, {"calfId": {"id": "id", ...}} o {"id": "id"}.
// Si no reconoce la forma devuelve el valor serializado para el mensaje de error.
func refValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case map[string]any:
		if inner, ok := x["calfId"]; ok {
			return refValue(inner)
		}
		for _, k := range []string{"id", "_id"} {
			if s, ok := x[k].(string); ok {
				return s
			}
		}
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
