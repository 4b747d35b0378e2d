package handler

import (
	"net/http"

	"github.com/Eursukkul/tour-booking/tour-service/internal/catalog"
	"github.com/Eursukkul/tour-booking/tour-service/internal/dto"
	"github.com/Eursukkul/tour-booking/tour-service/internal/models"
	"github.com/Eursukkul/tour-booking/tour-service/internal/service"
	"github.com/labstack/echo/v4"
)

// Catalog is satisfied by *catalog.Catalog.
type Catalog interface {
	SiteInfo() models.SiteInfo
	Destinations() []models.Destination
	Packages() []models.Package
	FindDestination(id int) (models.Destination, bool)
	FindPackage(id int) (models.Package, bool)
	PackagesForDestination(id int) []models.Package
	Search(query string) catalog.SearchResult
}

type CatalogHandler struct {
	catalog Catalog
}

func NewCatalogHandler(c Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

func (h *CatalogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/site", h.GetSiteInfo)
	g.GET("/destinations", h.ListDestinations)
	g.GET("/destinations/:id", h.GetDestination)
	g.GET("/destinations/:id/packages", h.ListDestinationPackages)
	g.GET("/packages", h.ListPackages)
	g.GET("/packages/:id", h.GetPackage)
	g.GET("/search", h.Search)
}

func (h *CatalogHandler) GetSiteInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.SiteInfo())
}

func (h *CatalogHandler) ListDestinations(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.ToDestinationResponses(h.catalog.Destinations()))
}

func (h *CatalogHandler) GetDestination(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	d, ok := h.catalog.FindDestination(id)
	if !ok {
		return httpError(service.ErrDestinationNotFound)
	}
	return c.JSON(http.StatusOK, dto.ToDestinationResponse(d))
}

func (h *CatalogHandler) ListDestinationPackages(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if _, ok := h.catalog.FindDestination(id); !ok {
		return httpError(service.ErrDestinationNotFound)
	}
	return c.JSON(http.StatusOK, dto.ToPackageResponses(h.catalog.PackagesForDestination(id)))
}

func (h *CatalogHandler) ListPackages(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.ToPackageResponses(h.catalog.Packages()))
}

func (h *CatalogHandler) GetPackage(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	p, ok := h.catalog.FindPackage(id)
	if !ok {
		return httpError(service.ErrPackageNotFound)
	}
	return c.JSON(http.StatusOK, dto.ToPackageResponse(p))
}

func (h *CatalogHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	res := h.catalog.Search(q)
	return c.JSON(http.StatusOK, dto.SearchResponse{
		Query:        q,
		Destinations: dto.ToDestinationResponses(res.Destinations),
		Packages:     dto.ToPackageResponses(res.Packages),
	})
}
