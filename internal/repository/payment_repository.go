package repository

import (
	"context"

	"github.com/unclebandit/influencer-admin/internal/model"
)

type PaymentRepository struct {
	DB DBTX
}

func (r *PaymentRepository) ListAll(ctx context.Context) ([]model.Payment, error) {
	rows, err := r.DB.QueryContext(ctx, `
        SELECT payment_id, collab_id, amount_paid, payment_date, status, mode
        FROM payments
        ORDER BY payment_id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []model.Payment{}
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.CollabID, &p.AmountPaid, &p.PaymentDate, &p.Status, &p.Mode); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *PaymentRepository) Insert(ctx context.Context, rec model.Record) (int64, error) {
	p, err := recordAs[model.Payment](rec)
	if err != nil {
		return 0, err
	}
	query := `
        INSERT INTO payments (collab_id, amount_paid, payment_date, status, mode)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING payment_id
    `
	var id int64
	err = r.DB.QueryRowContext(ctx, query, p.CollabID, p.AmountPaid, p.PaymentDate, string(p.Status), p.Mode).Scan(&id)
	return id, mapError(err)
}

func (r *PaymentRepository) Replace(ctx context.Context, id int64, rec model.Record) error {
	p, err := recordAs[model.Payment](rec)
	if err != nil {
		return err
	}
	query := `
        UPDATE payments
        SET collab_id=$1, amount_paid=$2, payment_date=$3, status=$4, mode=$5
        WHERE payment_id=$6
    `
	res, err := r.DB.ExecContext(ctx, query, p.CollabID, p.AmountPaid, p.PaymentDate, string(p.Status), p.Mode, id)
	return checkAffected(res, err, model.EntityPayment, id)
}

func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM payments WHERE payment_id=$1`, id)
	return checkAffected(res, err, model.EntityPayment, id)
}

var _ RecordRepository = (*PaymentRepository)(nil)
