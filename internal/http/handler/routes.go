package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"archivo/internal/grid"
	"archivo/internal/service"
)

// Services bundles the use cases exposed over HTTP.
type Services struct {
	Records  service.RecordService
	FUIDs    service.FUIDService
	Patients service.PatientService
	Catalog  service.CatalogService
	Stats    service.StatsService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Static
// segments are registered before their :id siblings.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services, opts grid.Options) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	api.Get("/series", ListSeries(svc.Catalog))
	api.Get("/subseries", ListSubseries(svc.Catalog))
	api.Get("/usuarios", ListUsers(svc.Catalog))

	api.Get("/registros", ListRecords(svc.Records, recordsBasic, opts))
	api.Get("/registros/completo", ListRecords(svc.Records, recordsComplete, opts))
	api.Get("/registros/con-id", ListRecords(svc.Records, recordsWithID, opts))
	api.Post("/registros", CreateRecord(svc.Records))
	api.Get("/registros/:id", GetRecord(svc.Records))
	api.Put("/registros/:id", UpdateRecord(svc.Records))
	api.Delete("/registros/:id", DeleteRecord(svc.Records))

	api.Get("/fuids", ListFUIDs(svc.FUIDs, opts))
	api.Get("/fuids/candidatos", ListCandidates(svc.FUIDs))
	api.Post("/fuids", CreateFUID(svc.FUIDs))
	api.Get("/fuids/:id", GetFUID(svc.FUIDs))
	api.Put("/fuids/:id", UpdateFUID(svc.FUIDs))
	api.Post("/fuids/:id/registros", CreateFUIDRecord(svc.FUIDs))
	api.Post("/fuids/:id/registros/:registroId", AttachFUIDRecord(svc.FUIDs))
	api.Get("/fuids/:id/export", ExportFUID(svc.FUIDs))
	api.Post("/fuids/:id/export/archive", ArchiveFUIDExport(svc.FUIDs))

	api.Get("/fichas", ListPatients(svc.Patients, opts))
	api.Post("/fichas", CreatePatient(svc.Patients))
	api.Get("/fichas/:consecutivo", GetPatient(svc.Patients))
	api.Put("/fichas/:consecutivo", UpdatePatient(svc.Patients))

	api.Get("/estadisticas/registros", RecordStats(svc.Stats))
	api.Get("/estadisticas/fuids", FUIDStats(svc.Stats))
	api.Get("/estadisticas/pacientes", PatientStats(svc.Stats))
}
