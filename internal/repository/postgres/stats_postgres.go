package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"archivo/internal/grid"
	"archivo/internal/repository"
	"archivo/internal/stats"
)

// StatsPostgres runs the aggregate queries of the statistics endpoints.
type StatsPostgres struct {
	db *sql.DB
}

// NewStatsPostgres creates a new StatsPostgres repository.
func NewStatsPostgres(db *sql.DB) *StatsPostgres {
	return &StatsPostgres{db: db}
}

var _ repository.StatsRepository = (*StatsPostgres)(nil)

// RecordStats counts records, optionally bounded by fecha_archivo (inclusive).
func (r *StatsPostgres) RecordStats(ctx context.Context, from, to *time.Time) (*stats.RecordStats, error) {
	const base = `
	FROM registros r
	LEFT JOIN series s ON s.id = r.codigo_serie_id`

	var args grid.Args
	var conds []string
	if from != nil {
		conds = append(conds, "r.fecha_archivo >= "+args.Add(*from))
	}
	if to != nil {
		conds = append(conds, "r.fecha_archivo <= "+args.Add(*to))
	}
	where := grid.WhereClause(conds...)

	out := &stats.RecordStats{}
	var err error
	if out.Total, err = r.count(ctx, base+where, args.Values()); err != nil {
		return nil, err
	}
	if out.PorSerie, err = r.groups(ctx,
		`SELECT COALESCE(s.nombre, ''), COUNT(r.id)`+base+where+` GROUP BY s.nombre`,
		args.Values(), "codigo_serie__nombre"); err != nil {
		return nil, err
	}
	if out.PorSoporte, err = r.groups(ctx,
		`SELECT r.soporte_fisico, r.soporte_electronico, COUNT(r.id)`+base+where+` GROUP BY r.soporte_fisico, r.soporte_electronico`,
		args.Values(), "soporte_fisico", "soporte_electronico"); err != nil {
		return nil, err
	}
	if out.PorTipo, err = r.groups(ctx,
		`SELECT r.tipo, COUNT(r.id)`+base+where+` GROUP BY r.tipo`,
		args.Values(), "tipo"); err != nil {
		return nil, err
	}
	return out, nil
}

// FUIDStats counts FUIDs, optionally only those created by username.
func (r *StatsPostgres) FUIDStats(ctx context.Context, username string) (*stats.FUIDStats, error) {
	base, args := ownedBy(`
	FROM fuids f
	LEFT JOIN users u ON u.id = f.creado_por_id`, username)

	out := &stats.FUIDStats{}
	var err error
	if out.Total, err = r.count(ctx, base, args); err != nil {
		return nil, err
	}
	if out.PorOficina, err = r.groups(ctx,
		`SELECT f.oficina_productora, COUNT(f.id)`+base+` GROUP BY f.oficina_productora`,
		args, "oficina_productora__nombre"); err != nil {
		return nil, err
	}
	if out.PorObjeto, err = r.groups(ctx,
		`SELECT f.objeto, COUNT(f.id)`+base+` GROUP BY f.objeto`,
		args, "objeto__nombre"); err != nil {
		return nil, err
	}
	if out.PorEntidad, err = r.groups(ctx,
		`SELECT f.entidad_productora, COUNT(f.id)`+base+` GROUP BY f.entidad_productora`,
		args, "entidad_productora__nombre"); err != nil {
		return nil, err
	}
	return out, nil
}

// PatientStats counts patient records, optionally only those created by username.
func (r *StatsPostgres) PatientStats(ctx context.Context, username string) (*stats.PatientStats, error) {
	base, args := ownedBy(`
	FROM fichas_paciente p
	LEFT JOIN users u ON u.id = p.creado_por_id`, username)

	out := &stats.PatientStats{}
	var err error
	if out.Total, err = r.count(ctx, base, args); err != nil {
		return nil, err
	}
	if out.PorGenero, err = r.groups(ctx,
		`SELECT p.sexo, COUNT(p.sexo)`+base+` GROUP BY p.sexo`,
		args, "sexo"); err != nil {
		return nil, err
	}
	if out.PorTipoIdentificacion, err = r.groups(ctx,
		`SELECT p.tipo_identificacion, COUNT(p.tipo_identificacion)`+base+` GROUP BY p.tipo_identificacion`,
		args, "tipo_identificacion"); err != nil {
		return nil, err
	}
	if out.Activos, err = r.count(ctx, base+andOrWhere(args)+"p.activo", args); err != nil {
		return nil, err
	}
	return out, nil
}

// PatientBirthDates returns the known birth dates of the selected patients.
func (r *StatsPostgres) PatientBirthDates(ctx context.Context, username string) ([]time.Time, error) {
	base, args := ownedBy(`
	FROM fichas_paciente p
	LEFT JOIN users u ON u.id = p.creado_por_id`, username)

	rows, err := r.db.QueryContext(ctx,
		`SELECT p.fecha_nacimiento`+base+andOrWhere(args)+`p.fecha_nacimiento IS NOT NULL`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]time.Time, 0)
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ownedBy appends the owner username condition to a FROM clause.
func ownedBy(from, username string) (string, []any) {
	if username == "" {
		return from, nil
	}
	return from + ` WHERE u.username = $1`, []any{username}
}

// andOrWhere continues a WHERE clause built by ownedBy.
func andOrWhere(args []any) string {
	if len(args) == 0 {
		return " WHERE "
	}
	return " AND "
}

func (r *StatsPostgres) count(ctx context.Context, from string, args []any) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*)"+from, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// groups scans rows of (key values..., count) into stats groups.
func (r *StatsPostgres) groups(ctx context.Context, query string, args []any, keys ...string) ([]stats.Group, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("group by %v: %w", keys, err)
	}
	defer rows.Close()

	out := make([]stats.Group, 0)
	for rows.Next() {
		vals := make([]any, len(keys))
		dest := make([]any, len(keys)+1)
		for i := range vals {
			dest[i] = &vals[i]
		}
		var n int64
		dest[len(keys)] = &n
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		g := stats.Group{Values: make(map[string]any, len(keys)), Cantidad: n}
		for i, k := range keys {
			if b, ok := vals[i].([]byte); ok {
				vals[i] = string(b)
			}
			g.Values[k] = vals[i]
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
