package migration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"archivo/internal/database"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id           BIGSERIAL PRIMARY KEY,
  username     TEXT      NOT NULL UNIQUE,
  is_superuser BOOLEAN   NOT NULL DEFAULT false,
  oficina      TEXT      NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_table_series",
		SQL: `CREATE TABLE IF NOT EXISTS series (
  id     BIGSERIAL PRIMARY KEY,
  codigo TEXT      NOT NULL UNIQUE,
  nombre TEXT      NOT NULL
);`,
	},
	{
		Name: "create_table_subseries",
		SQL: `CREATE TABLE IF NOT EXISTS subseries (
  id       BIGSERIAL PRIMARY KEY,
  serie_id BIGINT    NOT NULL REFERENCES series (id),
  codigo   TEXT      NOT NULL,
  nombre   TEXT      NOT NULL,
  UNIQUE (id, serie_id)
);`,
	},
	{
		Name: "create_table_registros",
		SQL: `CREATE TABLE IF NOT EXISTS registros (
  id                               BIGSERIAL   PRIMARY KEY,
  numero_orden                     INTEGER     NOT NULL,
  codigo                           TEXT        NOT NULL DEFAULT '',
  codigo_serie_id                  BIGINT      NOT NULL REFERENCES series (id),
  codigo_subserie_id               BIGINT,
  unidad_documental                TEXT        NOT NULL DEFAULT '',
  fecha_archivo                    DATE,
  fecha_inicial                    DATE,
  fecha_final                      DATE,
  soporte_fisico                   BOOLEAN     NOT NULL DEFAULT false,
  soporte_electronico              BOOLEAN     NOT NULL DEFAULT false,
  caja                             TEXT        NOT NULL DEFAULT '',
  carpeta                          TEXT        NOT NULL DEFAULT '',
  tomo_legajo_libro                TEXT        NOT NULL DEFAULT '',
  numero_folios                    INTEGER,
  tipo                             TEXT        NOT NULL DEFAULT '',
  cantidad                         INTEGER,
  ubicacion                        TEXT        NOT NULL DEFAULT '',
  cantidad_documentos_electronicos INTEGER,
  tamano_documentos_electronicos   TEXT        NOT NULL DEFAULT '',
  notas                            TEXT        NOT NULL DEFAULT '',
  creado_por_id                    BIGINT      REFERENCES users (id) ON DELETE SET NULL,
  fecha_creacion                   TIMESTAMPTZ NOT NULL DEFAULT now(),
  FOREIGN KEY (codigo_subserie_id, codigo_serie_id) REFERENCES subseries (id, serie_id)
);`,
	},
	{
		Name: "create_table_fuids",
		SQL: `CREATE TABLE IF NOT EXISTS fuids (
  id                    BIGSERIAL   PRIMARY KEY,
  entidad_productora    TEXT        NOT NULL DEFAULT '',
  unidad_administrativa TEXT        NOT NULL DEFAULT '',
  oficina_productora    TEXT        NOT NULL DEFAULT '',
  objeto                TEXT        NOT NULL DEFAULT '',
  elaborado_por_nombre  TEXT        NOT NULL DEFAULT '',
  elaborado_por_cargo   TEXT        NOT NULL DEFAULT '',
  elaborado_por_lugar   TEXT        NOT NULL DEFAULT '',
  elaborado_por_fecha   DATE,
  entregado_por_nombre  TEXT        NOT NULL DEFAULT '',
  entregado_por_cargo   TEXT        NOT NULL DEFAULT '',
  entregado_por_lugar   TEXT        NOT NULL DEFAULT '',
  entregado_por_fecha   DATE,
  recibido_por_nombre   TEXT        NOT NULL DEFAULT '',
  recibido_por_cargo    TEXT        NOT NULL DEFAULT '',
  recibido_por_lugar    TEXT        NOT NULL DEFAULT '',
  recibido_por_fecha    DATE,
  creado_por_id         BIGINT      REFERENCES users (id) ON DELETE SET NULL,
  fecha_creacion        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_fuid_registros",
		SQL: `CREATE TABLE IF NOT EXISTS fuid_registros (
  fuid_id     BIGINT NOT NULL REFERENCES fuids (id) ON DELETE CASCADE,
  registro_id BIGINT NOT NULL UNIQUE REFERENCES registros (id) ON DELETE CASCADE,
  PRIMARY KEY (fuid_id, registro_id)
);`,
	},
	{
		Name: "create_table_fichas_paciente",
		SQL: `CREATE TABLE IF NOT EXISTS fichas_paciente (
  consecutivo             BIGSERIAL PRIMARY KEY,
  tipo_identificacion     TEXT      NOT NULL,
  num_identificacion      TEXT      NOT NULL,
  primer_nombre           TEXT      NOT NULL,
  segundo_nombre          TEXT      NOT NULL DEFAULT '',
  primer_apellido         TEXT      NOT NULL,
  segundo_apellido        TEXT      NOT NULL DEFAULT '',
  sexo                    TEXT      NOT NULL,
  fecha_nacimiento        DATE,
  numero_historia_clinica TEXT      NOT NULL DEFAULT '',
  activo                  BOOLEAN   NOT NULL DEFAULT true,
  creado_por_id           BIGINT    REFERENCES users (id) ON DELETE SET NULL
);`,
	},
	{
		Name: "create_table_object_permissions",
		SQL: `CREATE TABLE IF NOT EXISTS object_permissions (
  user_id     BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  object_type TEXT   NOT NULL,
  object_id   BIGINT NOT NULL,
  codename    TEXT   NOT NULL,
  PRIMARY KEY (user_id, object_type, object_id, codename)
);`,
	},
	{
		Name: "create_index_registros_fecha_creacion",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_registros_fecha_creacion ON registros (fecha_creacion);`,
	},
	{
		Name: "create_index_registros_creado_por",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_registros_creado_por ON registros (creado_por_id);`,
	},
	{
		Name: "create_index_fuids_oficina",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_fuids_oficina ON fuids (oficina_productora);`,
	},
	{
		Name: "create_index_fichas_num_identificacion",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_fichas_num_identificacion ON fichas_paciente (num_identificacion);`,
	},
	{
		Name: "create_index_object_permissions_object",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_object_permissions_object ON object_permissions (object_type, object_id);`,
	},
}

// lockKey identifies the schema migration in pg_advisory_xact_lock.
const lockKey int64 = 0x61726368697630

var errSchemaExists = errors.New("schema already exists")

// EnsureMigrated creates the schema when the 'registros' table is missing.
// Every step runs in one transaction holding an advisory lock, so a failed
// step leaves nothing behind and concurrent instances migrate once.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.Named("database").With(zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	err := database.WithTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
			return fmt.Errorf("failed to acquire migration lock: %w", err)
		}

		var exists bool
		query := "SELECT to_regclass('public.registros') IS NOT NULL"
		if err := tx.QueryRowContext(ctx, query).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check sentinel table: %w", err)
		}
		if exists {
			return errSchemaExists
		}

		log.Info("db_migration_start", zap.String("status", "in_progress"))

		for _, step := range steps {
			stepStart := time.Now()
			if _, err := tx.ExecContext(ctx, step.SQL); err != nil {
				log.Error("db_migration_step_failed",
					zap.String("status", "error"),
					zap.String("migration_step", step.Name),
					zap.Error(err),
					zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
				)
				return fmt.Errorf("migration step %s failed: %w", step.Name, err)
			}

			log.Info("db_migration_step",
				zap.String("status", "success"),
				zap.String("migration_step", step.Name),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
		}
		return nil
	})

	switch {
	case errors.Is(err, errSchemaExists):
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("reason", "schema already exists"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	case err != nil:
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return err
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}
