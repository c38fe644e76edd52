package services

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/motix/motix/internal/dtos"
	"github.com/motix/motix/internal/routes"
)

// Hypermedia link factory. Hrefs are absolute, resolved against the request
// base address and the versioned route constants; because the templates are
// compile-time constants, a missing route is a build failure rather than a
// silently empty link.

func SectorLinks(base string, id uuid.UUID) []dtos.Link {
	href := resourceHref(base, routes.Sectors, id)
	return []dtos.Link{
		{Rel: "self", Href: href, Method: http.MethodGet},
		{Rel: "update", Href: href, Method: http.MethodPut},
		{Rel: "delete", Href: href, Method: http.MethodDelete},
	}
}

func MotorcycleLinks(base string, id uuid.UUID) []dtos.Link {
	href := resourceHref(base, routes.Motorcycles, id)
	return []dtos.Link{
		{Rel: "self", Href: href, Method: http.MethodGet},
		{Rel: "update", Href: href, Method: http.MethodPut},
		{Rel: "delete", Href: href, Method: http.MethodDelete},
	}
}

// MovementLinks omits "update": movements are immutable.
func MovementLinks(base string, id uuid.UUID) []dtos.Link {
	href := resourceHref(base, routes.Movements, id)
	return []dtos.Link{
		{Rel: "self", Href: href, Method: http.MethodGet},
		{Rel: "delete", Href: href, Method: http.MethodDelete},
	}
}

func resourceHref(base, collection string, id uuid.UUID) string {
	if base == "" || collection == "" {
		panic("link factory: empty base URL or route template")
	}
	return base + collection + "/" + id.String()
}
