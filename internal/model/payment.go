// internal/model/payment.go
package model

import appErrors "github.com/unclebandit/influencer-admin/internal/errors"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

type Payment struct {
	ID          int64         `json:"payment_id"`
	CollabID    int64         `json:"collab_id"`
	AmountPaid  Money         `json:"amount_paid"`
	PaymentDate Date          `json:"payment_date"`
	Status      PaymentStatus `json:"status"`
	Mode        string        `json:"mode"`
}

func (p *Payment) Entity() Entity { return EntityPayment }

func (p *Payment) Validate() error {
	if p.Status == "" {
		p.Status = PaymentPending
	}
	if !p.Status.Valid() {
		return appErrors.NewValidation("status %q is not one of Pending, Completed, Failed", p.Status)
	}
	return firstError(
		requireRef("collab_id", p.CollabID),
		nonNegativeMoney("amount_paid", p.AmountPaid),
		requireDate("payment_date", p.PaymentDate),
	)
}
