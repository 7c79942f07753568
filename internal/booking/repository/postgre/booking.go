package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
)

const bookingSelect = `
	SELECT b.id, b.start_date, b.end_date, b.status,
	       i.id, i.name, i.description, i.is_available, i.owner_id, i.request_id,
	       u.id, u.name, u.email
	FROM bookings b
	JOIN items i ON i.id = b.item_id
	JOIN users u ON u.id = b.booker_id`

// newestStartFirst is the single ordering used by every booking list.
const newestStartFirst = `b.start_date DESC, b.id DESC`

func scanBooking(row interface{ Scan(...any) error }) (model.Booking, error) {
	var (
		b         model.Booking
		status    string
		requestID sql.NullInt64
	)
	err := row.Scan(
		&b.ID, &b.Start, &b.End, &status,
		&b.Item.ID, &b.Item.Name, &b.Item.Description, &b.Item.Available, &b.Item.OwnerID, &requestID,
		&b.Booker.ID, &b.Booker.Name, &b.Booker.Email,
	)
	if err != nil {
		return model.Booking{}, err
	}
	b.Status = model.BookingStatus(status)
	if requestID.Valid {
		id := requestID.Int64
		b.Item.RequestID = &id
	}
	return b, nil
}

// CreateBooking inserts a new Booking and returns it joined with item and booker.
func (r *implRepository) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (model.Booking, error) {
	const query = `
		INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query, opt.Start, opt.End, opt.ItemID, opt.BookerID, string(opt.Status)).Scan(&id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBooking"), err)
		return model.Booking{}, repo.ErrFailedToInsert
	}

	b, err := r.GetOneBooking(ctx, id)
	if err != nil {
		return model.Booking{}, err
	}
	return b, nil
}

// GetOneBooking fetches a booking by id.
func (r *implRepository) GetOneBooking(ctx context.Context, id int64) (model.Booking, error) {
	query := bookingSelect + ` WHERE b.id = $1`

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneBooking"), err)
		return model.Booking{}, repo.ErrFailedToGet
	}
	return b, nil
}

// UpdateBookingStatus sets the status of a booking. The last write wins.
func (r *implRepository) UpdateBookingStatus(ctx context.Context, id int64, status model.BookingStatus) (model.Booking, error) {
	const query = `UPDATE bookings SET status = $1 WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateBookingStatus"), err)
		return model.Booking{}, repo.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Booking{}, nil
	}
	return r.GetOneBooking(ctx, id)
}

// ListBookings returns bookings matching opt, newest start first.
func (r *implRepository) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]model.Booking, error) {
	where, args := r.buildListQuery(opt)
	query := fmt.Sprintf("%s WHERE %s ORDER BY %s", bookingSelect, where, newestStartFirst)
	query, args = r.appendPaging(query, args, opt)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBookings"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	bookings := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListBookings"), err)
			return nil, repo.ErrFailedToList
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListBookings"), err)
		return nil, repo.ErrFailedToList
	}
	return bookings, nil
}
