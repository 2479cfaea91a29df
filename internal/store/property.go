package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"primespace/internal/database"
	"primespace/internal/model"

	"github.com/jackc/pgx/v5"
)

// PropertyFilter narrows ListProperties. Zero values mean "no constraint";
// Location matches as a case-insensitive substring.
type PropertyFilter struct {
	Type     string
	Status   string
	Location string
}

const propertyColumns = `id, title, location, price, description, type, status,
	 bedrooms, bathrooms, area, image, COALESCE(created_by, 0), created_at`

func scanProperty(row pgx.Row, p *model.Property) error {
	return row.Scan(
		&p.ID,
		&p.Title,
		&p.Location,
		&p.Price,
		&p.Description,
		&p.Type,
		&p.Status,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.Area,
		&p.Image,
		&p.CreatedBy,
		&p.CreatedAt,
	)
}

// ListProperties returns every listing matching the filter, newest first.
func ListProperties(ctx context.Context, db database.DB, f PropertyFilter) ([]model.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties`
	var conds []string
	var args []any
	if f.Type != "" {
		args = append(args, f.Type)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Location != "" {
		args = append(args, "%"+f.Location+"%")
		conds = append(conds, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListProperties: %w", err)
	}
	defer rows.Close()

	properties := []model.Property{}
	for rows.Next() {
		var p model.Property
		if err := scanProperty(rows, &p); err != nil {
			return nil, fmt.Errorf("ListProperties: %w", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProperties: %w", err)
	}
	return properties, nil
}

func GetPropertyByID(ctx context.Context, db database.DB, id int) (*model.Property, error) {
	row := db.QueryRow(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE id = $1`,
		id,
	)
	p := &model.Property{}
	if err := scanProperty(row, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetPropertyByID: %w", err)
	}
	return p, nil
}

func CreateProperty(ctx context.Context, db database.DB, p *model.Property) (*model.Property, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO properties (title, location, price, description, type, status,
		                         bedrooms, bathrooms, area, image, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at`,
		p.Title,
		p.Location,
		p.Price,
		p.Description,
		p.Type,
		p.Status,
		p.Bedrooms,
		p.Bathrooms,
		p.Area,
		p.Image,
		p.CreatedBy,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateProperty: %w", err)
	}
	return p, nil
}

// UpdateProperty writes the merged row back. id, created_by and created_at
// are never touched.
func UpdateProperty(ctx context.Context, db database.DB, p *model.Property) error {
	tag, err := db.Exec(ctx,
		`UPDATE properties
		 SET title = $1, location = $2, price = $3, description = $4, type = $5,
		     status = $6, bedrooms = $7, bathrooms = $8, area = $9, image = $10
		 WHERE id = $11`,
		p.Title,
		p.Location,
		p.Price,
		p.Description,
		p.Type,
		p.Status,
		p.Bedrooms,
		p.Bathrooms,
		p.Area,
		p.Image,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateProperty: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteProperty(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM properties WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteProperty: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
