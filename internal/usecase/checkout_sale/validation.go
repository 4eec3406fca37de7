package checkout_sale

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

func validateRequest(req *Request) error {
	if len(req.Items) == 0 {
		return ErrEmptyCart
	}

	for i, item := range req.Items {
		if item.ItemType != domain.ItemProduct && item.ItemType != domain.ItemService {
			return fmt.Errorf("%w: items[%d]: unknown type %q", ErrInvalidInput, i, item.ItemType)
		}
		if item.ItemID == uuid.Nil {
			return fmt.Errorf("%w: items[%d]: itemId is required", ErrInvalidInput, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: items[%d]: quantity must be positive", ErrInvalidInput, i)
		}
	}

	if !req.PaymentMethod.IsValid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.PaymentMethod)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
