package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"archivo/internal/service"
)

type seriesItem struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
}

type subseriesItem struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

type userItem struct {
	Username string `json:"username"`
}

// ListSeries returns every documentary series.
// @Summary List series
// @Tags catalogo
// @Produce json
// @Security BearerAuth
// @Success 200 {array} seriesItem
// @Router /api/series [get]
func ListSeries(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		all, err := svc.Series(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		out := make([]seriesItem, 0, len(all))
		for _, s := range all {
			out = append(out, seriesItem{Codigo: s.Code, Nombre: s.Name})
		}
		return c.JSON(out)
	}
}

// ListSubseries returns the subseries of ?serie_id=.
// @Summary List subseries of a series
// @Tags catalogo
// @Produce json
// @Security BearerAuth
// @Param serie_id query int true "Series id"
// @Success 200 {array} subseriesItem
// @Failure 400 {object} errorPayload
// @Router /api/subseries [get]
func ListSubseries(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Query("serie_id"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_REQUEST", "serie_id is required")
		}
		all, err := svc.Subseries(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		out := make([]subseriesItem, 0, len(all))
		for _, s := range all {
			out = append(out, subseriesItem{ID: s.ID, Nombre: s.Name})
		}
		return c.JSON(out)
	}
}

// ListUsers returns the usernames offered by the candidate filter.
// @Summary List usernames
// @Tags catalogo
// @Produce json
// @Security BearerAuth
// @Success 200 {array} userItem
// @Router /api/usuarios [get]
func ListUsers(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		names, err := svc.Usernames(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		out := make([]userItem, 0, len(names))
		for _, n := range names {
			out = append(out, userItem{Username: n})
		}
		return c.JSON(out)
	}
}
