package reservation

import "time"

const StatusConfirmed = "confirmed"

type Reservation struct {
	ID         uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	GuestName  string  `gorm:"type:varchar(128);not null" json:"guest_name"`
	GuestEmail *string `gorm:"type:varchar(255);index" json:"guest_email,omitempty"`
	GuestPhone *string `gorm:"type:varchar(32)" json:"guest_phone,omitempty"`

	// Date and time are stored as text, matching the wire format:
	// YYYY-MM-DD and 24-hour HH:MM.
	ReservationDate string `gorm:"type:varchar(10);not null;index:idx_reservations_date_time,priority:1" json:"reservation_date"`
	ReservationTime string `gorm:"type:varchar(5);not null;index:idx_reservations_date_time,priority:2" json:"reservation_time"`

	PartySize       int     `gorm:"not null" json:"party_size"`
	SpecialRequests *string `gorm:"type:text" json:"special_requests,omitempty"`
	Status          string  `gorm:"type:varchar(16);not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

func (Reservation) TableName() string { return "reservations" }
