package handler

import (
	"github.com/gofiber/fiber/v2"

	"archivo/internal/grid"
	"archivo/internal/service"
)

// ListPatients serves the patient grid. Filters come as named parameters and
// sorting is by column position.
// @Summary Patient record grid
// @Tags fichas
// @Produce json
// @Security BearerAuth
// @Param draw query int false "Draw counter echoed back"
// @Param start query int false "Zero-based offset"
// @Param length query int false "Page size"
// @Param fecha_inicio query string false "Born on or after (YYYY-MM-DD)"
// @Param fecha_fin query string false "Born on or before (YYYY-MM-DD)"
// @Param filtro_identificacion query string false "Identification number contains"
// @Param filtro_historia query string false "Clinical history number contains"
// @Param filtro_nombre query string false "First name or first surname contains"
// @Param filtro_similar query string false "Any name part contains"
// @Success 200 {object} grid.Response
// @Router /api/fichas [get]
func ListPatients(svc service.PatientService, opts grid.Options) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := grid.ParseRequest(c.Queries(), opts)
		if err != nil {
			return writeServiceError(c, err)
		}
		// Patient grids send no columns[]; positional order and named filters only.
		q.Terms = nil
		q.WithTerm("identificacion", c.Query("filtro_identificacion"))
		q.WithTerm("historia", c.Query("filtro_historia"))
		q.WithTerm("nombre", c.Query("filtro_nombre"))
		q.WithTerm("similar", c.Query("filtro_similar"))
		q.WithDateRange("fecha_nacimiento", c.Query("fecha_inicio"), c.Query("fecha_fin"))

		res, err := svc.List(c.UserContext(), q)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(grid.NewResponse(q.Draw, res.Total, res.Filtered, patientColumns.Project(res.Items)))
	}
}

// CreatePatient requires the global add capability.
// @Summary Create patient record
// @Tags fichas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.PatientInput true "Patient"
// @Success 201 {object} model.PatientRecord
// @Failure 403 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /api/fichas [post]
func CreatePatient(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pr, err := principal(c)
		if err != nil {
			return err
		}
		var in service.PatientInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		p, err := svc.Create(c.UserContext(), pr, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// GetPatient returns one patient record.
// @Summary Get patient record
// @Tags fichas
// @Produce json
// @Security BearerAuth
// @Param consecutivo path int true "Consecutivo"
// @Success 200 {object} model.PatientRecord
// @Failure 404 {object} errorPayload
// @Router /api/fichas/{consecutivo} [get]
func GetPatient(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c, "consecutivo")
		if !ok {
			return invalidID(c)
		}
		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(p)
	}
}

// UpdatePatient requires the global change capability.
// @Summary Update patient record
// @Tags fichas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param consecutivo path int true "Consecutivo"
// @Param body body service.PatientInput true "Patient"
// @Success 200 {object} model.PatientRecord
// @Failure 403 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /api/fichas/{consecutivo} [put]
func UpdatePatient(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pr, err := principal(c)
		if err != nil {
			return err
		}
		id, ok := idParam(c, "consecutivo")
		if !ok {
			return invalidID(c)
		}
		var in service.PatientInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		p, err := svc.Update(c.UserContext(), pr, id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(p)
	}
}
