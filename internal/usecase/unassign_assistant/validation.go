package unassign_assistant

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.AssistantID <= 0 {
		return fmt.Errorf("%w: assistantID must be positive", ErrInvalidInput)
	}

	return nil
}
