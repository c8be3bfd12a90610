package handler

import (
	"github.com/gofiber/fiber/v2"

	"archivo/internal/service"
	"archivo/internal/stats"
)

// statsFailed is the body of every statistics failure. Details are logged by
// the stats service.
func statsFailed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "no fue posible calcular las estadísticas"})
}

// serveStats writes the aggregate or the statistics failure body, also when
// the aggregation panics.
func serveStats[T any](c *fiber.Ctx, compute func() (*T, error)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = statsFailed(c)
		}
	}()

	out, err := compute()
	if err != nil {
		return statsFailed(c)
	}
	return c.JSON(out)
}

// RecordStats aggregates archive records.
// @Summary Archive record statistics
// @Tags estadisticas
// @Produce json
// @Security BearerAuth
// @Param fecha_inicio query string false "Archived on or after (YYYY-MM-DD)"
// @Param fecha_fin query string false "Archived on or before (YYYY-MM-DD)"
// @Success 200 {object} stats.RecordStats
// @Router /api/estadisticas/registros [get]
func RecordStats(svc service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return serveStats(c, func() (*stats.RecordStats, error) {
			return svc.Records(c.UserContext(), c.Query("fecha_inicio"), c.Query("fecha_fin"))
		})
	}
}

// FUIDStats aggregates FUIDs, optionally those created by ?usuario=.
// @Summary FUID statistics
// @Tags estadisticas
// @Produce json
// @Security BearerAuth
// @Param usuario query string false "Creator username"
// @Success 200 {object} stats.FUIDStats
// @Router /api/estadisticas/fuids [get]
func FUIDStats(svc service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return serveStats(c, func() (*stats.FUIDStats, error) {
			return svc.FUIDs(c.UserContext(), c.Query("usuario"))
		})
	}
}

// PatientStats aggregates patient records including the age summary.
// @Summary Patient statistics
// @Tags estadisticas
// @Produce json
// @Security BearerAuth
// @Param usuario query string false "Creator username"
// @Success 200 {object} stats.PatientStats
// @Router /api/estadisticas/pacientes [get]
func PatientStats(svc service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return serveStats(c, func() (*stats.PatientStats, error) {
			return svc.Patients(c.UserContext(), c.Query("usuario"))
		})
	}
}
