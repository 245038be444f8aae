package jobs

import (
	"context"

	"rentwheels-backend/internal/logger"
)

// ExpireOverdueBookings auto-returns active bookings past their end date and
// releases their vehicles. The same reconciliation runs before every booking
// listing; the nightly job keeps vehicle availability fresh even when no one
// is listing.
func (jr *JobRunner) ExpireOverdueBookings() {
	jr.runWithRecovery("ExpireOverdueBookings", func() {
		ctx := context.Background()

		count, err := jr.services.Booking.ExpireOverdueBookings(ctx)
		if err != nil {
			logger.Error("Failed to expire overdue bookings", "error", err)
			return
		}

		logger.Info("Expired overdue bookings", "count", count)
	})
}
