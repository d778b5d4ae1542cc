package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/lib/pq"

	"github.com/erino/leadcrm/internal/entity"
)

const leadColumns = `id, first_name, last_name, email, phone, company, city, state,
	source, status, score, lead_value, is_qualified, last_activity_at, created_at, updated_at`

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, first_name, last_name, email, phone, company, city, state,
			source, status, score, lead_value, is_qualified, last_activity_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.FirstName,
		lead.LastName,
		lead.Email,
		lead.Phone,
		lead.Company,
		lead.City,
		lead.State,
		lead.Source,
		lead.Status,
		lead.Score,
		lead.LeadValue,
		lead.IsQualified,
		lead.LastActivityAt,
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrEmailAlreadyExists
		}
		log.Printf("lead insert failed: %v", err)
		return err
	}

	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	return scanLead(r.DB.QueryRowContext(ctx, query, id))
}

// Update applies only the fields set on the update; the row's updated_at is
// always refreshed. With no fields set it degenerates to a fetch.
func (r *LeadRepository) Update(ctx context.Context, id string, update entity.LeadUpdate) (*entity.Lead, error) {
	var sets []string
	var args []any

	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if update.FirstName != nil {
		set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		set("last_name", *update.LastName)
	}
	if update.Email != nil {
		set("email", *update.Email)
	}
	if update.Phone != nil {
		set("phone", *update.Phone)
	}
	if update.Company != nil {
		set("company", *update.Company)
	}
	if update.City != nil {
		set("city", *update.City)
	}
	if update.State != nil {
		set("state", *update.State)
	}
	if update.Source != nil {
		set("source", *update.Source)
	}
	if update.Status != nil {
		set("status", *update.Status)
	}
	if update.Score != nil {
		set("score", *update.Score)
	}
	if update.LeadValue != nil {
		set("lead_value", *update.LeadValue)
	}
	if update.IsQualified != nil {
		set("is_qualified", *update.IsQualified)
	}
	if update.LastActivityAt != nil {
		set("last_activity_at", *update.LastActivityAt)
	}

	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE leads SET %s WHERE id = $%d RETURNING `+leadColumns,
		strings.Join(sets, ", "), len(args))

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entity.ErrEmailAlreadyExists
		}
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// CountAndList runs COUNT and the page SELECT inside one repeatable-read,
// read-only transaction so total and data come from the same snapshot.
func (r *LeadRepository) CountAndList(ctx context.Context, filter entity.LeadFilter, skip, limit int) ([]entity.Lead, int, error) {
	where, args := buildLeadWhere(filter)

	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if err != nil {
		return nil, 0, err
	}
	defer tx.Rollback()

	var total int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listArgs := append(args, limit, skip)
	query := fmt.Sprintf(`SELECT %s FROM leads%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		leadColumns, where, len(args)+1, len(args)+2)

	rows, err := tx.QueryContext(ctx, query, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		var lead entity.Lead
		if err := scanLeadFields(rows, &lead); err != nil {
			return nil, 0, err
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}

// buildLeadWhere renders the compiled filter as a WHERE clause with
// positional args. An empty filter yields an empty clause.
func buildLeadWhere(f entity.LeadFilter) (string, []any) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	stringMatch := func(col string, m *entity.StringMatch) {
		if m == nil {
			return
		}
		if m.Contains != "" {
			conds = append(conds, fmt.Sprintf("%s ILIKE %s", col, arg("%"+escapeLike(m.Contains)+"%")))
		} else {
			conds = append(conds, fmt.Sprintf("LOWER(%s) = LOWER(%s)", col, arg(m.Equals)))
		}
	}

	enumMatch := func(col string, m *entity.EnumMatch) {
		if m == nil {
			return
		}
		if len(m.In) > 0 {
			conds = append(conds, fmt.Sprintf("%s = ANY(%s)", col, arg(pq.Array(m.In))))
		} else {
			conds = append(conds, fmt.Sprintf("%s = %s", col, arg(m.Equals)))
		}
	}

	stringMatch("email", f.Email)
	stringMatch("company", f.Company)
	stringMatch("city", f.City)
	enumMatch("status", f.Status)
	enumMatch("source", f.Source)

	if f.Score != nil {
		if f.Score.Equals != nil {
			conds = append(conds, fmt.Sprintf("score = %s", arg(*f.Score.Equals)))
		}
		if f.Score.GT != nil {
			conds = append(conds, fmt.Sprintf("score > %s", arg(*f.Score.GT)))
		}
		if f.Score.LT != nil {
			conds = append(conds, fmt.Sprintf("score < %s", arg(*f.Score.LT)))
		}
		if f.Score.GTE != nil {
			conds = append(conds, fmt.Sprintf("score >= %s", arg(*f.Score.GTE)))
		}
		if f.Score.LTE != nil {
			conds = append(conds, fmt.Sprintf("score <= %s", arg(*f.Score.LTE)))
		}
	}

	if f.CreatedAt != nil {
		if f.CreatedAt.GTE != nil {
			conds = append(conds, fmt.Sprintf("created_at >= %s", arg(*f.CreatedAt.GTE)))
		}
		if f.CreatedAt.LT != nil {
			conds = append(conds, fmt.Sprintf("created_at < %s", arg(*f.CreatedAt.LT)))
		}
	}

	if f.IsQualified != nil {
		conds = append(conds, fmt.Sprintf("is_qualified = %s", arg(*f.IsQualified)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// escapeLike neutralizes the LIKE metacharacters in user input.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row *sql.Row) (*entity.Lead, error) {
	var lead entity.Lead
	if err := scanLeadFields(row, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

func scanLeadFields(row rowScanner, lead *entity.Lead) error {
	err := row.Scan(
		&lead.ID,
		&lead.FirstName,
		&lead.LastName,
		&lead.Email,
		&lead.Phone,
		&lead.Company,
		&lead.City,
		&lead.State,
		&lead.Source,
		&lead.Status,
		&lead.Score,
		&lead.LeadValue,
		&lead.IsQualified,
		&lead.LastActivityAt,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}
	return err
}
