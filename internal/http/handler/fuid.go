package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"archivo/internal/grid"
	"archivo/internal/model"
	"archivo/internal/service"
)

// inlineRecordResult is the envelope of the inline record form of a FUID.
type inlineRecordResult struct {
	OK       bool                 `json:"ok"`
	Message  string               `json:"message"`
	Registro any                  `json:"registro,omitempty"`
	Errors   []service.FieldError `json:"errors,omitempty"`
}

// ListFUIDs serves the FUID grid, restricted to the caller's oficina unless
// the caller is a superuser.
// @Summary FUID grid
// @Tags fuids
// @Produce json
// @Security BearerAuth
// @Param draw query int false "Draw counter echoed back"
// @Param start query int false "Zero-based offset"
// @Param length query int false "Page size"
// @Success 200 {object} grid.Response
// @Router /api/fuids [get]
func ListFUIDs(svc service.FUIDService, opts grid.Options) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pr, err := principal(c)
		if err != nil {
			return err
		}
		q, err := grid.ParseRequest(c.Queries(), opts)
		if err != nil {
			return writeServiceError(c, err)
		}
		res, err := svc.List(c.UserContext(), pr, q)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(grid.NewResponse(q.Draw, res.Total, res.Filtered, fuidColumns.Project(res.Items)))
	}
}

// ListCandidates returns the records that belong to no FUID yet.
// @Summary Records available for a FUID
// @Tags fuids
// @Produce json
// @Security BearerAuth
// @Param usuario query string false "Creator id or username"
// @Param fecha_inicio query string false "Created on or after (YYYY-MM-DD)"
// @Param fecha_fin query string false "Created on or before (YYYY-MM-DD)"
// @Success 200 {array} object
// @Router /api/fuids/candidatos [get]
func ListCandidates(svc service.FUIDService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.Candidates(c.UserContext(), service.CandidateQuery{
			Usuario:     c.Query("usuario"),
			FechaInicio: c.Query("fecha_inicio"),
			FechaFin:    c.Query("fecha_fin"),
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(recordsWithID.Project(items))
	}
}

// CreateFUID creates a FUID with its initial record set.
// @Summary Create FUID
// @Tags fuids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.FUIDInput true "FUID"
// @Success 201 {object} model.FUID
// @Failure 409 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /api/fuids [post]
func CreateFUID(svc service.FUIDService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pr, err := principal(c)
		if err != nil {
			return err
		}
		var in service.FUIDInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		f, err := svc.Create(c.UserContext(), pr, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(f)
	}
}

// GetFUID returns a FUID with its records.
// @Summary Get FUID
// @Tags fuids
// @Produce json
// @Security BearerAuth
// @Param id path int true "FUID id"
// @Success 200 {object} model.FUID
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/fuids/{id} [get]
func GetFUID(svc service.FUIDService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pr, err := principal(c)
		if err != nil {
			return err
		}
		id, ok := idParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		f, err := svc.Get(c.UserContext(), pr, id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(f)
	}
}

// UpdateFUID saves the header and replaces the record set.
// @Summary Update FUID
// @Tags fuids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "FUID id"
// @Param body body service.FUIDInput true "FUID"
// @Success 200 {object} model.FUID
// @Failure 403 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /api/fuids/{id} [put]
func UpdateFUID(svc service.FUIDService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pr, err := principal(c)
		if err != nil {
			return err
		}
		id, ok := idParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		var in service.FUIDInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		f, err := svc.Update(c.UserContext(), pr, id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(f)
	}
}

// CreateFUIDRecord creates a record and attaches it to the FUID in one step.
// Validation failures answer with the inline envelope instead of the error body.
// @Summary Create a record inside a FUID
// @Tags fuids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "FUID id"
// @Param body body service.RecordInput true "Record"
// @Success 201 {object} inlineRecordResult
// @Failure 422 {object} inlineRecordResult
// @Router /api/fuids/{id}/registros [post]
func CreateFUIDRecord(svc service.FUIDService) fiber.Handler {
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
		rec, err := svc.CreateRecord(c.UserContext(), pr, id, in)
		if err != nil {
			var verr *service.ValidationError
			if errors.As(err, &verr) {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(inlineRecordResult{
					Message: "El formulario contiene errores",
					Errors:  verr.Fields,
				})
			}
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(inlineRecordResult{
			OK:       true,
			Message:  "Registro creado y asociado al FUID",
			Registro: recordsWithID.Project([]model.ArchiveRecord{*rec})[0],
		})
	}
}

// AttachFUIDRecord adds an existing record to the FUID.
// @Summary Attach a record to a FUID
// @Tags fuids
// @Security BearerAuth
// @Param id path int true "FUID id"
// @Param registroId path int true "Record id"
// @Success 204
// @Failure 409 {object} errorPayload
// @Router /api/fuids/{id}/registros/{registroId} [post]
func AttachFUIDRecord(svc service.FUIDService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pr, err := principal(c)
		if err != nil {
			return err
		}
		id, ok := idParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		recordID, ok := idParam(c, "registroId")
		if !ok {
			return invalidID(c)
		}
		if err := svc.AttachRecord(c.UserContext(), pr, id, recordID); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ExportFUID sends the FUID workbook as an attachment.
// @Summary Export FUID to xlsx
// @Tags fuids
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path int true "FUID id"
// @Success 200 {file} file
// @Failure 404 {object} errorPayload
// @Router /api/fuids/{id}/export [get]
func ExportFUID(svc service.FUIDService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pr, err := principal(c)
		if err != nil {
			return err
		}
		id, ok := idParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		file, err := svc.Export(c.UserContext(), pr, id)
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Attachment(file.Name)
		c.Set(fiber.HeaderContentType, file.ContentType)
		return c.Send(file.Data)
	}
}

// ArchiveFUIDExport stores the workbook in object storage and returns a
// presigned download link.
// @Summary Archive FUID export
// @Tags fuids
// @Produce json
// @Security BearerAuth
// @Param id path int true "FUID id"
// @Success 201 {object} service.ArchivedExport
// @Failure 503 {object} errorPayload
// @Router /api/fuids/{id}/export/archive [post]
func ArchiveFUIDExport(svc service.FUIDService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pr, err := principal(c)
		if err != nil {
			return err
		}
		id, ok := idParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		out, err := svc.Archive(c.UserContext(), pr, id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}
