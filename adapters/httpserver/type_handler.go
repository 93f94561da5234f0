package httpserver

import (
	"fmt"

	"github.com/SeaCloudHub/eventually/adapters/httpserver/model"
	"github.com/SeaCloudHub/eventually/pkg/apperror"
	"github.com/labstack/echo/v4"
)

// ListTypes lists every event source type, optionally filtered by the
// strict query parameter.
func (s *Server) ListTypes(c echo.Context) error {
	var req model.ListTypesRequest
	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	if err := req.Validate(); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	resp := make([]model.DeclarationResponse, 0)
	for _, decl := range s.Registry.All() {
		if !req.Matches(decl.IsStrict()) {
			continue
		}
		resp = append(resp, model.NewDeclarationResponse(decl))
	}

	return s.success(c, resp)
}

// GetType describes the declared events of one event source type.
func (s *Server) GetType(c echo.Context) error {
	name := c.Param("name")

	decl, ok := s.Registry.Lookup(name)
	if !ok {
		return s.error(c, apperror.ErrEntityNotFound(fmt.Errorf("type %q declares no events", name)))
	}

	return s.success(c, model.NewDeclarationResponse(decl))
}

func (s *Server) RegisterTypeRoutes(router *echo.Group) {
	router.GET("", s.ListTypes)
	router.GET("/:name", s.GetType)
}
