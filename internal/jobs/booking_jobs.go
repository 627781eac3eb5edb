package jobs

import (
	"context"
	"time"

	"github.com/joshbaje/Drively-sub000/internal/logger"
)

// ActivateDueBookings moves CONFIRMED bookings whose start date has arrived
// into IN_PROGRESS
func (jr *JobRunner) ActivateDueBookings() {
	jr.runWithRecovery("ActivateDueBookings", func() error {
		ctx := context.Background()

		query := `
			UPDATE bookings
			SET status = 'IN_PROGRESS',
			    updated_on = NOW()
			WHERE status = 'CONFIRMED'
			  AND start_date <= $1
			RETURNING id, vehicle_id, renter_id, start_date
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().UTC().Format("2006-01-02"))
		if err != nil {
			return err
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id, vehicleID, renterID int
			var startDate string
			if err := rows.Scan(&id, &vehicleID, &renterID, &startDate); err != nil {
				logger.Error("Failed to scan activated booking", "error", err)
				continue
			}
			logger.Debug("Activated booking",
				"booking_id", id, "vehicle_id", vehicleID,
				"renter_id", renterID, "start_date", startDate)
			count++
		}
		if err := rows.Err(); err != nil {
			return err
		}

		logger.Info("Activated due bookings", "count", count)
		return nil
	})
}

// CompleteFinishedBookings moves IN_PROGRESS bookings past their end date into
// COMPLETED
func (jr *JobRunner) CompleteFinishedBookings() {
	jr.runWithRecovery("CompleteFinishedBookings", func() error {
		ctx := context.Background()

		query := `
			UPDATE bookings
			SET status = 'COMPLETED',
			    updated_on = NOW()
			WHERE status = 'IN_PROGRESS'
			  AND end_date < $1
			RETURNING id, vehicle_id, renter_id, end_date
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().UTC().Format("2006-01-02"))
		if err != nil {
			return err
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id, vehicleID, renterID int
			var endDate string
			if err := rows.Scan(&id, &vehicleID, &renterID, &endDate); err != nil {
				logger.Error("Failed to scan completed booking", "error", err)
				continue
			}
			logger.Debug("Completed booking",
				"booking_id", id, "vehicle_id", vehicleID,
				"renter_id", renterID, "end_date", endDate)
			count++
		}
		if err := rows.Err(); err != nil {
			return err
		}

		logger.Info("Completed finished bookings", "count", count)
		return nil
	})
}

// ExpireStaleRequests declines PENDING requests the owner never acted on.
// The age threshold comes from booking.stale_request_age_days.
func (jr *JobRunner) ExpireStaleRequests() {
	jr.runWithRecovery("ExpireStaleRequests", func() error {
		ctx := context.Background()
		cutoff := time.Now().UTC().AddDate(0, 0, -jr.config.Booking.StaleRequestAgeDays)

		query := `
			UPDATE bookings
			SET status = 'DECLINED',
			    rejection_reason = 'request expired without owner response',
			    updated_on = NOW()
			WHERE status = 'PENDING'
			  AND created_on < $1
			RETURNING id, vehicle_id, renter_id
		`

		rows, err := jr.db.QueryContext(ctx, query, cutoff)
		if err != nil {
			return err
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id, vehicleID, renterID int
			if err := rows.Scan(&id, &vehicleID, &renterID); err != nil {
				logger.Error("Failed to scan expired request", "error", err)
				continue
			}
			logger.Debug("Expired stale booking request",
				"booking_id", id, "vehicle_id", vehicleID, "renter_id", renterID)
			count++
		}
		if err := rows.Err(); err != nil {
			return err
		}

		logger.Info("Expired stale booking requests", "count", count)
		return nil
	})
}
