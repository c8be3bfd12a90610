package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"archivo/internal/database"
	"archivo/internal/grid"
	"archivo/internal/model"
	"archivo/internal/repository"
)

// RecordPostgres is a PostgreSQL implementation of repository.RecordRepository.
type RecordPostgres struct {
	db *sql.DB
}

// NewRecordPostgres creates a new RecordPostgres repository.
func NewRecordPostgres(db *sql.DB) *RecordPostgres {
	return &RecordPostgres{db: db}
}

var _ repository.RecordRepository = (*RecordPostgres)(nil)

const recordSelect = `
	SELECT r.id, r.numero_orden, r.codigo, r.codigo_serie_id, COALESCE(s.nombre, ''),
		r.codigo_subserie_id, COALESCE(ss.nombre, ''), r.unidad_documental,
		r.fecha_archivo, r.fecha_inicial, r.fecha_final, r.soporte_fisico, r.soporte_electronico,
		r.caja, r.carpeta, r.tomo_legajo_libro, r.numero_folios, r.tipo, r.cantidad, r.ubicacion,
		r.cantidad_documentos_electronicos, r.tamano_documentos_electronicos, r.notas,
		r.creado_por_id, COALESCE(u.username, ''), r.fecha_creacion`

const recordFrom = `
	FROM registros r
	LEFT JOIN series s ON s.id = r.codigo_serie_id
	LEFT JOIN subseries ss ON ss.id = r.codigo_subserie_id
	LEFT JOIN users u ON u.id = r.creado_por_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(s rowScanner, r *model.ArchiveRecord) error {
	return s.Scan(
		&r.ID, &r.NumeroOrden, &r.Codigo, &r.SerieID, &r.SerieNombre,
		&r.SubserieID, &r.SubserieNombre, &r.UnidadDocumental,
		&r.FechaArchivo, &r.FechaInicial, &r.FechaFinal, &r.SoporteFisico, &r.SoporteElectronico,
		&r.Caja, &r.Carpeta, &r.TomoLegajoLibro, &r.NumeroFolios, &r.Tipo, &r.Cantidad, &r.Ubicacion,
		&r.CantidadElectronico, &r.TamanoElectronico, &r.Notas,
		&r.CreadoPorID, &r.CreadoPor, &r.FechaCreacion,
	)
}

func scanRecords(rows *sql.Rows) ([]model.ArchiveRecord, error) {
	defer rows.Close()
	items := make([]model.ArchiveRecord, 0)
	for rows.Next() {
		var r model.ArchiveRecord
		if err := scanRecord(rows, &r); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// recordValues are the writable columns in insert order.
func recordValues(r *model.ArchiveRecord) []any {
	return []any{
		r.NumeroOrden, r.Codigo, r.SerieID, r.SubserieID, r.UnidadDocumental,
		r.FechaArchivo, r.FechaInicial, r.FechaFinal, r.SoporteFisico, r.SoporteElectronico,
		r.Caja, r.Carpeta, r.TomoLegajoLibro, r.NumeroFolios, r.Tipo, r.Cantidad, r.Ubicacion,
		r.CantidadElectronico, r.TamanoElectronico, r.Notas,
	}
}

// Create inserts the record, grants its creator view/edit/delete on it and
// optionally attaches it to a FUID, atomically.
func (p *RecordPostgres) Create(ctx context.Context, rec *model.ArchiveRecord, fuidID *int64) (*model.ArchiveRecord, error) {
	const q = `
		INSERT INTO registros (
			numero_orden, codigo, codigo_serie_id, codigo_subserie_id, unidad_documental,
			fecha_archivo, fecha_inicial, fecha_final, soporte_fisico, soporte_electronico,
			caja, carpeta, tomo_legajo_libro, numero_folios, tipo, cantidad, ubicacion,
			cantidad_documentos_electronicos, tamano_documentos_electronicos, notas, creado_por_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id
	`
	var id int64
	err := database.WithTx(ctx, p.db, func(tx *sql.Tx) error {
		args := append(recordValues(rec), rec.CreadoPorID)
		if err := tx.QueryRowContext(ctx, q, args...).Scan(&id); err != nil {
			return mapError(err)
		}
		if rec.CreadoPorID != nil {
			if err := grantAll(ctx, tx, *rec.CreadoPorID, model.ObjectRegistro, id, model.RegistroOwnerGrants); err != nil {
				return mapError(err)
			}
		}
		if fuidID != nil {
			return attachRecord(ctx, tx, *fuidID, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p.FindByID(ctx, id)
}

// FindByID fetches a single record with its series, subseries and owner names.
func (p *RecordPostgres) FindByID(ctx context.Context, id int64) (*model.ArchiveRecord, error) {
	var r model.ArchiveRecord
	if err := scanRecord(p.db.QueryRowContext(ctx, recordSelect+recordFrom+` WHERE r.id = $1`, id), &r); err != nil {
		return nil, mapError(err)
	}
	return &r, nil
}

// Update overwrites the writable columns. Ownership and creation time are kept.
func (p *RecordPostgres) Update(ctx context.Context, rec *model.ArchiveRecord) (*model.ArchiveRecord, error) {
	const q = `
		UPDATE registros SET
			numero_orden = $1, codigo = $2, codigo_serie_id = $3, codigo_subserie_id = $4,
			unidad_documental = $5, fecha_archivo = $6, fecha_inicial = $7, fecha_final = $8,
			soporte_fisico = $9, soporte_electronico = $10, caja = $11, carpeta = $12,
			tomo_legajo_libro = $13, numero_folios = $14, tipo = $15, cantidad = $16, ubicacion = $17,
			cantidad_documentos_electronicos = $18, tamano_documentos_electronicos = $19, notas = $20
		WHERE id = $21
	`
	res, err := p.db.ExecContext(ctx, q, append(recordValues(rec), rec.ID)...)
	if err != nil {
		return nil, mapError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, repository.ErrNotFound
	}
	return p.FindByID(ctx, rec.ID)
}

// Delete removes the record and every grant issued on it.
func (p *RecordPostgres) Delete(ctx context.Context, id int64) error {
	return database.WithTx(ctx, p.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM object_permissions WHERE object_type = $1 AND object_id = $2`,
			model.ObjectRegistro, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM registros WHERE id = $1`, id)
		if err != nil {
			return mapError(err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
}

// List returns one grid page. Pages past the filtered size are empty.
func (p *RecordPostgres) List(ctx context.Context, q grid.Query) (*repository.PageResult[model.ArchiveRecord], error) {
	var args grid.Args
	filter := recordTable.Where(q, &args)

	total, filtered, err := countPage(ctx, p.db, recordFrom, "", filter, args.Values(), 0)
	if err != nil {
		return nil, err
	}
	out := &repository.PageResult[model.ArchiveRecord]{Items: []model.ArchiveRecord{}, Total: total, Filtered: filtered}
	if q.Page.Offset >= filtered {
		return out, nil
	}

	query := recordSelect + recordFrom + grid.WhereClause(filter) +
		" ORDER BY " + recordTable.OrderBy(q) +
		" LIMIT " + args.Add(q.Page.Size) + " OFFSET " + args.Add(q.Page.Offset)
	rows, err := p.db.QueryContext(ctx, query, args.Values()...)
	if err != nil {
		return nil, err
	}
	if out.Items, err = scanRecords(rows); err != nil {
		return nil, err
	}
	return out, nil
}

// ListUnassigned returns the records that no FUID contains yet, oldest first.
// The To bound includes the whole day.
func (p *RecordPostgres) ListUnassigned(ctx context.Context, f repository.CandidateFilter) ([]model.ArchiveRecord, error) {
	var args grid.Args
	conds := []string{`NOT EXISTS (SELECT 1 FROM fuid_registros fr WHERE fr.registro_id = r.id)`}
	if f.CreatorID > 0 {
		conds = append(conds, "r.creado_por_id = "+args.Add(f.CreatorID))
	}
	if f.Creator != "" {
		conds = append(conds, "u.username = "+args.Add(f.Creator))
	}
	if f.From != nil {
		conds = append(conds, "r.fecha_creacion >= "+args.Add(*f.From))
	}
	if f.To != nil {
		conds = append(conds, "r.fecha_creacion < "+args.Add(f.To.Add(24*time.Hour)))
	}

	rows, err := p.db.QueryContext(ctx,
		recordSelect+recordFrom+grid.WhereClause(conds...)+" ORDER BY r.id",
		args.Values()...)
	if err != nil {
		return nil, err
	}
	return scanRecords(rows)
}

// attachRecord adds recordID to fuidID. A record already in another FUID is a
// conflict; attaching it to the same FUID again is a no-op.
func attachRecord(ctx context.Context, q querier, fuidID, recordID int64) error {
	var owner int64
	err := q.QueryRowContext(ctx, `SELECT fuid_id FROM fuid_registros WHERE registro_id = $1`, recordID).Scan(&owner)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return err
	case owner == fuidID:
		return nil
	default:
		return fmt.Errorf("%w: registro %d ya pertenece al FUID %d", repository.ErrConflict, recordID, owner)
	}

	if _, err := q.ExecContext(ctx,
		`INSERT INTO fuid_registros (fuid_id, registro_id) VALUES ($1, $2)`,
		fuidID, recordID); err != nil {
		return mapError(err)
	}
	return nil
}
