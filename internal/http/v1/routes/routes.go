package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/template-api/internal/http/v1/hello"
	"github.com/janisto/template-api/internal/service/greeting"
)

// Prefix is the path every v1 route is mounted under.
const Prefix = "/api/v1"

// Register mounts all v1 routes under Prefix.
func Register(api huma.API, greetings greeting.Service) {
	v1 := huma.NewGroup(api, Prefix)

	hello.Register(v1, greetings)
}
