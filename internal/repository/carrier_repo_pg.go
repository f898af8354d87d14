package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CarrierRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Carrier, error)
}

type PGCarrierRepository struct {
	db *pgxpool.Pool
}

func NewCarrierRepository(db *pgxpool.Pool) CarrierRepository {
	return &PGCarrierRepository{db: db}
}

func (r *PGCarrierRepository) GetByID(ctx context.Context, id int64) (*domain.Carrier, error) {
	row := conn(ctx, r.db).QueryRow(ctx, `SELECT id, name, refund_percentage FROM carriers WHERE id=$1`, id)
	var c domain.Carrier
	if err := row.Scan(&c.ID, &c.Name, &c.RefundPercentage); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCarrierNotFound
		}
		return nil, fmt.Errorf("get carrier: %w", err)
	}
	return &c, nil
}

var _ CarrierRepository = (*PGCarrierRepository)(nil)
