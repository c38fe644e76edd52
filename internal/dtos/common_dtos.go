package dtos

// Link is a named, method-tagged URI pointing to a related operation
// on a resource.
type Link struct {
	Rel    string `json:"rel"`
	Href   string `json:"href"`
	Method string `json:"method"`
}

// Resource wraps entity data with its hypermedia links.
type Resource[T any] struct {
	Data  T      `json:"data"`
	Links []Link `json:"links"`
}

type HealthCheckResponse struct {
	Status string `json:"status"`
}
