package reservation

import (
	"context"

	"gorm.io/gorm"
)

const listLimit = 50

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts the reservation and fills in the generated id.
func (r *Repo) Create(ctx context.Context, res *Reservation) error {
	return r.db.WithContext(ctx).Create(res).Error
}

// List returns the most recent reservations (date desc, then time desc),
// optionally filtered by guest email. At most 50 rows.
func (r *Repo) List(ctx context.Context, email string) ([]Reservation, error) {
	q := r.db.WithContext(ctx).
		Order("reservation_date DESC, reservation_time DESC").
		Limit(listLimit)

	if email != "" {
		q = q.Where("guest_email = ?", email)
	}

	var out []Reservation
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// BookedByTime sums party sizes per time slot for one date.
func (r *Repo) BookedByTime(ctx context.Context, date string) (map[string]int, error) {
	type row struct {
		ReservationTime string
		TotalGuests     int
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&Reservation{}).
		Select("reservation_time, SUM(party_size) AS total_guests").
		Where("reservation_date = ?", date).
		Group("reservation_time").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	booked := make(map[string]int, len(rows))
	for _, r := range rows {
		booked[r.ReservationTime] = r.TotalGuests
	}
	return booked, nil
}
