package cancel_sale

import (
	"time"

	"github.com/google/uuid"
)

type Request struct {
	SaleID      uuid.UUID
	Reason      *string
	CancelledBy *uuid.UUID
}

type Response struct {
	SaleID        uuid.UUID
	CancelledAt   time.Time
	RefundedTotal float64
	RestockedQty  int
}
