package postgres

import (
	"context"
	"database/sql"

	"archivo/internal/authz"
	"archivo/internal/database"
	"archivo/internal/grid"
	"archivo/internal/model"
	"archivo/internal/repository"
)

// FUIDPostgres is a PostgreSQL implementation of repository.FUIDRepository.
type FUIDPostgres struct {
	db *sql.DB
}

// NewFUIDPostgres creates a new FUIDPostgres repository.
func NewFUIDPostgres(db *sql.DB) *FUIDPostgres {
	return &FUIDPostgres{db: db}
}

var _ repository.FUIDRepository = (*FUIDPostgres)(nil)

const fuidSelect = `
	SELECT f.id, f.entidad_productora, f.unidad_administrativa, f.oficina_productora, f.objeto,
		f.elaborado_por_nombre, f.elaborado_por_cargo, f.elaborado_por_lugar, f.elaborado_por_fecha,
		f.entregado_por_nombre, f.entregado_por_cargo, f.entregado_por_lugar, f.entregado_por_fecha,
		f.recibido_por_nombre, f.recibido_por_cargo, f.recibido_por_lugar, f.recibido_por_fecha,
		f.creado_por_id, COALESCE(u.username, ''), f.fecha_creacion`

const fuidFrom = `
	FROM fuids f
	LEFT JOIN users u ON u.id = f.creado_por_id`

func scanFUID(s rowScanner, f *model.FUID) error {
	return s.Scan(
		&f.ID, &f.EntidadProductora, &f.UnidadAdministrativa, &f.OficinaProductora, &f.Objeto,
		&f.ElaboradoPor.Nombre, &f.ElaboradoPor.Cargo, &f.ElaboradoPor.Lugar, &f.ElaboradoPor.Fecha,
		&f.EntregadoPor.Nombre, &f.EntregadoPor.Cargo, &f.EntregadoPor.Lugar, &f.EntregadoPor.Fecha,
		&f.RecibidoPor.Nombre, &f.RecibidoPor.Cargo, &f.RecibidoPor.Lugar, &f.RecibidoPor.Fecha,
		&f.CreadoPorID, &f.CreadoPor, &f.FechaCreacion,
	)
}

func fuidValues(f *model.FUID) []any {
	return []any{
		f.EntidadProductora, f.UnidadAdministrativa, f.OficinaProductora, f.Objeto,
		f.ElaboradoPor.Nombre, f.ElaboradoPor.Cargo, f.ElaboradoPor.Lugar, f.ElaboradoPor.Fecha,
		f.EntregadoPor.Nombre, f.EntregadoPor.Cargo, f.EntregadoPor.Lugar, f.EntregadoPor.Fecha,
		f.RecibidoPor.Nombre, f.RecibidoPor.Cargo, f.RecibidoPor.Lugar, f.RecibidoPor.Fecha,
	}
}

// Create inserts the FUID, grants its creator view/edit/delete and attaches
// f.RegistroIDs in one transaction.
func (p *FUIDPostgres) Create(ctx context.Context, f *model.FUID) (*model.FUID, error) {
	const q = `
		INSERT INTO fuids (
			entidad_productora, unidad_administrativa, oficina_productora, objeto,
			elaborado_por_nombre, elaborado_por_cargo, elaborado_por_lugar, elaborado_por_fecha,
			entregado_por_nombre, entregado_por_cargo, entregado_por_lugar, entregado_por_fecha,
			recibido_por_nombre, recibido_por_cargo, recibido_por_lugar, recibido_por_fecha,
			creado_por_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`
	var id int64
	err := database.WithTx(ctx, p.db, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, q, append(fuidValues(f), f.CreadoPorID)...).Scan(&id); err != nil {
			return mapError(err)
		}
		if f.CreadoPorID != nil {
			if err := grantAll(ctx, tx, *f.CreadoPorID, model.ObjectFUID, id, model.FUIDOwnerGrants); err != nil {
				return mapError(err)
			}
		}
		for _, rid := range f.RegistroIDs {
			if err := attachRecord(ctx, tx, id, rid); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p.FindByID(ctx, id)
}

// FindByID returns the FUID with its records ordered by numero_orden.
func (p *FUIDPostgres) FindByID(ctx context.Context, id int64) (*model.FUID, error) {
	var f model.FUID
	if err := scanFUID(p.db.QueryRowContext(ctx, fuidSelect+fuidFrom+` WHERE f.id = $1`, id), &f); err != nil {
		return nil, mapError(err)
	}

	rows, err := p.db.QueryContext(ctx,
		recordSelect+recordFrom+`
	JOIN fuid_registros fr ON fr.registro_id = r.id
	WHERE fr.fuid_id = $1
	ORDER BY r.numero_orden, r.id`, id)
	if err != nil {
		return nil, err
	}
	if f.Registros, err = scanRecords(rows); err != nil {
		return nil, err
	}
	f.RegistroIDs = make([]int64, len(f.Registros))
	for i := range f.Registros {
		f.RegistroIDs[i] = f.Registros[i].ID
	}
	return &f, nil
}

// Update saves the header and replaces the record set wholesale.
func (p *FUIDPostgres) Update(ctx context.Context, f *model.FUID) (*model.FUID, error) {
	const q = `
		UPDATE fuids SET
			entidad_productora = $1, unidad_administrativa = $2, oficina_productora = $3, objeto = $4,
			elaborado_por_nombre = $5, elaborado_por_cargo = $6, elaborado_por_lugar = $7, elaborado_por_fecha = $8,
			entregado_por_nombre = $9, entregado_por_cargo = $10, entregado_por_lugar = $11, entregado_por_fecha = $12,
			recibido_por_nombre = $13, recibido_por_cargo = $14, recibido_por_lugar = $15, recibido_por_fecha = $16
		WHERE id = $17
	`
	err := database.WithTx(ctx, p.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, q, append(fuidValues(f), f.ID)...)
		if err != nil {
			return mapError(err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return repository.ErrNotFound
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM fuid_registros WHERE fuid_id = $1`, f.ID); err != nil {
			return err
		}
		for _, rid := range f.RegistroIDs {
			if err := attachRecord(ctx, tx, f.ID, rid); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p.FindByID(ctx, f.ID)
}

// AttachRecord adds an existing record to the FUID.
func (p *FUIDPostgres) AttachRecord(ctx context.Context, fuidID, recordID int64) error {
	return database.WithTx(ctx, p.db, func(tx *sql.Tx) error {
		return attachRecord(ctx, tx, fuidID, recordID)
	})
}

// List returns one page of FUIDs inside scope.
func (p *FUIDPostgres) List(ctx context.Context, scope authz.FUIDScope, q grid.Query) (*repository.PageResult[model.FUID], error) {
	var args grid.Args
	scopeCond := ""
	if scope.Restricted {
		scopeCond = "f.oficina_productora = " + args.Add(scope.Oficina)
	}
	scopeArgs := len(args.Values())
	filter := fuidTable.Where(q, &args)

	total, filtered, err := countPage(ctx, p.db, fuidFrom, scopeCond, filter, args.Values(), scopeArgs)
	if err != nil {
		return nil, err
	}
	out := &repository.PageResult[model.FUID]{Items: []model.FUID{}, Total: total, Filtered: filtered}
	if q.Page.Offset >= filtered {
		return out, nil
	}

	query := fuidSelect + fuidFrom + grid.WhereClause(scopeCond, filter) +
		" ORDER BY " + fuidTable.OrderBy(q) +
		" LIMIT " + args.Add(q.Page.Size) + " OFFSET " + args.Add(q.Page.Offset)
	rows, err := p.db.QueryContext(ctx, query, args.Values()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var f model.FUID
		if err := scanFUID(rows, &f); err != nil {
			return nil, err
		}
		out.Items = append(out.Items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
