package postgres

import (
	"context"
	"database/sql"

	"archivo/internal/grid"
	"archivo/internal/model"
	"archivo/internal/repository"
)

// PatientPostgres is a PostgreSQL implementation of repository.PatientRepository.
type PatientPostgres struct {
	db *sql.DB
}

// NewPatientPostgres creates a new PatientPostgres repository.
func NewPatientPostgres(db *sql.DB) *PatientPostgres {
	return &PatientPostgres{db: db}
}

var _ repository.PatientRepository = (*PatientPostgres)(nil)

const patientSelect = `
	SELECT p.consecutivo, p.tipo_identificacion, p.num_identificacion,
		p.primer_nombre, p.segundo_nombre, p.primer_apellido, p.segundo_apellido,
		p.sexo, p.fecha_nacimiento, p.numero_historia_clinica, p.activo,
		p.creado_por_id, COALESCE(u.username, '')`

const patientFrom = `
	FROM fichas_paciente p
	LEFT JOIN users u ON u.id = p.creado_por_id`

func scanPatient(s rowScanner, p *model.PatientRecord) error {
	return s.Scan(
		&p.Consecutivo, &p.TipoIdentificacion, &p.NumIdentificacion,
		&p.PrimerNombre, &p.SegundoNombre, &p.PrimerApellido, &p.SegundoApellido,
		&p.Sexo, &p.FechaNacimiento, &p.NumeroHistoriaClinica, &p.Activo,
		&p.CreadoPorID, &p.CreadoPor,
	)
}

func patientValues(p *model.PatientRecord) []any {
	return []any{
		p.TipoIdentificacion, p.NumIdentificacion,
		p.PrimerNombre, p.SegundoNombre, p.PrimerApellido, p.SegundoApellido,
		p.Sexo, p.FechaNacimiento, p.NumeroHistoriaClinica, p.Activo,
	}
}

// Create inserts a patient record; consecutivo is assigned by the database.
func (r *PatientPostgres) Create(ctx context.Context, p *model.PatientRecord) (*model.PatientRecord, error) {
	const q = `
		INSERT INTO fichas_paciente (
			tipo_identificacion, num_identificacion, primer_nombre, segundo_nombre,
			primer_apellido, segundo_apellido, sexo, fecha_nacimiento,
			numero_historia_clinica, activo, creado_por_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING consecutivo
	`
	var id int64
	if err := r.db.QueryRowContext(ctx, q, append(patientValues(p), p.CreadoPorID)...).Scan(&id); err != nil {
		return nil, mapError(err)
	}
	return r.FindByConsecutivo(ctx, id)
}

// FindByConsecutivo fetches a single patient record.
func (r *PatientPostgres) FindByConsecutivo(ctx context.Context, consecutivo int64) (*model.PatientRecord, error) {
	var p model.PatientRecord
	row := r.db.QueryRowContext(ctx, patientSelect+patientFrom+` WHERE p.consecutivo = $1`, consecutivo)
	if err := scanPatient(row, &p); err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

// Update overwrites the editable fields.
func (r *PatientPostgres) Update(ctx context.Context, p *model.PatientRecord) (*model.PatientRecord, error) {
	const q = `
		UPDATE fichas_paciente SET
			tipo_identificacion = $1, num_identificacion = $2, primer_nombre = $3, segundo_nombre = $4,
			primer_apellido = $5, segundo_apellido = $6, sexo = $7, fecha_nacimiento = $8,
			numero_historia_clinica = $9, activo = $10
		WHERE consecutivo = $11
	`
	res, err := r.db.ExecContext(ctx, q, append(patientValues(p), p.Consecutivo)...)
	if err != nil {
		return nil, mapError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, repository.ErrNotFound
	}
	return r.FindByConsecutivo(ctx, p.Consecutivo)
}

// List returns one page of the patient grid. Total is the unfiltered count.
func (r *PatientPostgres) List(ctx context.Context, q grid.Query) (*repository.PageResult[model.PatientRecord], error) {
	var args grid.Args
	filter := patientTable.Where(q, &args)

	total, filtered, err := countPage(ctx, r.db, patientFrom, "", filter, args.Values(), 0)
	if err != nil {
		return nil, err
	}
	out := &repository.PageResult[model.PatientRecord]{Items: []model.PatientRecord{}, Total: total, Filtered: filtered}
	if q.Page.Offset >= filtered {
		return out, nil
	}

	query := patientSelect + patientFrom + grid.WhereClause(filter) +
		" ORDER BY " + patientTable.OrderBy(q) +
		" LIMIT " + args.Add(q.Page.Size) + " OFFSET " + args.Add(q.Page.Offset)
	rows, err := r.db.QueryContext(ctx, query, args.Values()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p model.PatientRecord
		if err := scanPatient(rows, &p); err != nil {
			return nil, err
		}
		out.Items = append(out.Items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
