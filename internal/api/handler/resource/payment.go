package resource

import "time"

// Payment generalizes the concrete card and bank settlement entities. The
// mapping condition "bank" targets the bank variant; anything else falls
// back to the card one.
type Payment struct {
	ID          *uint      `json:"id,omitempty"`
	OrderID     *uint      `json:"orderId,omitempty"`
	AmountCents *int64     `json:"amountCents,omitempty"`
	Reference   *string    `json:"reference,omitempty"`
	CapturedAt  *time.Time `json:"capturedAt,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty" mapper:"-"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" mapper:"-"`
}

// ConditionBank routes Payment onto the bank settlement entity.
const ConditionBank = "bank"
