package handler

import (
	"github.com/gofiber/fiber/v2"

	"archivo/internal/grid"
	"archivo/internal/model"
	"archivo/internal/service"
)

// ListRecords serves an archive record grid projected through cols.
// @Summary Archive record grid
// @Description DataTables server-side endpoint. Each columns[i][data] / columns[i][search][value] pair filters one column.
// @Tags registros
// @Produce json
// @Security BearerAuth
// @Param draw query int false "Draw counter echoed back"
// @Param start query int false "Zero-based offset"
// @Param length query int false "Page size"
// @Success 200 {object} grid.Response
// @Failure 400 {object} errorPayload
// @Router /api/registros [get]
// @Router /api/registros/completo [get]
// @Router /api/registros/con-id [get]
func ListRecords(svc service.RecordService, cols grid.ColumnSet[model.ArchiveRecord], opts grid.Options) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := grid.ParseRequest(c.Queries(), opts)
		if err != nil {
			return writeServiceError(c, err)
		}
		res, err := svc.List(c.UserContext(), q)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(grid.NewResponse(q.Draw, res.Total, res.Filtered, cols.Project(res.Items)))
	}
}

// CreateRecord creates an archive record owned by the caller.
// @Summary Create archive record
// @Tags registros
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.RecordInput true "Record"
// @Success 201 {object} model.ArchiveRecord
// @Failure 422 {object} errorPayload
// @Router /api/registros [post]
func CreateRecord(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pr, err := principal(c)
		if err != nil {
			return err
		}
		var in service.RecordInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		rec, err := svc.Create(c.UserContext(), pr, in, nil)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// GetRecord returns one archive record.
// @Summary Get archive record
// @Tags registros
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 200 {object} model.ArchiveRecord
// @Failure 404 {object} errorPayload
// @Router /api/registros/{id} [get]
func GetRecord(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pr, err := principal(c)
		if err != nil {
			return err
		}
		id, ok := idParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		rec, err := svc.Get(c.UserContext(), pr, id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}

// UpdateRecord edits a record. Only its creator holding the edit grant, or a
// superuser, may do so.
// @Summary Update archive record
// @Tags registros
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Param body body service.RecordInput true "Record"
// @Success 200 {object} model.ArchiveRecord
// @Failure 403 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /api/registros/{id} [put]
func UpdateRecord(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pr, err := principal(c)
		if err != nil {
			return err
		}
		id, ok := idParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		var in service.RecordInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		rec, err := svc.Update(c.UserContext(), pr, id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}

// DeleteRecord removes a record.
// @Summary Delete archive record
// @Tags registros
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 204
// @Failure 403 {object} errorPayload
// @Router /api/registros/{id} [delete]
func DeleteRecord(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pr, err := principal(c)
		if err != nil {
			return err
		}
		id, ok := idParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		if err := svc.Delete(c.UserContext(), pr, id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
