package bookings_service_api

type CreateBookingRequest struct {
	FlightID   int64  `json:"flight_id"`
	UserID     int64  `json:"user_id"`
	SeatClass  string `json:"seat_class"`
	TravelDate string `json:"travel_date"`
	SeatCount  int    `json:"seat_count"`
}

type BookingIDRequest struct {
	BookingID string `json:"booking_id"`
}

type UserBookingsRequest struct {
	UserID int64 `json:"user_id"`
}

// AvailabilityRequest leaves SeatClass empty to ask for every class.
type AvailabilityRequest struct {
	FlightID   int64  `json:"flight_id"`
	TravelDate string `json:"travel_date"`
	SeatClass  string `json:"seat_class,omitempty"`
}

type Booking struct {
	ID             string `json:"id"`
	FlightID       int64  `json:"flight_id"`
	UserID         int64  `json:"user_id"`
	SeatClass      string `json:"seat_class"`
	TravelDate     string `json:"travel_date"`
	SeatCount      int    `json:"seat_count"`
	GrossAmount    string `json:"gross_amount"`
	DiscountAmount string `json:"discount_amount"`
	NetAmount      string `json:"net_amount"`
	DiscountReason string `json:"discount_reason"`
	Status         string `json:"status"`
	Origin         string `json:"origin,omitempty"`
	Destination    string `json:"destination,omitempty"`
	CarrierName    string `json:"carrier_name,omitempty"`
}

type BookingList struct {
	Bookings []*Booking `json:"bookings"`
}

type CancellationReceipt struct {
	BookingID        string `json:"booking_id"`
	FlightID         int64  `json:"flight_id"`
	UserID           int64  `json:"user_id"`
	SeatClass        string `json:"seat_class"`
	TravelDate       string `json:"travel_date"`
	SeatCount        int    `json:"seat_count"`
	BookingAmount    string `json:"booking_amount"`
	RefundAmount     string `json:"refund_amount"`
	RefundPercentage string `json:"refund_percentage"`
	Status           string `json:"status"`
	Origin           string `json:"origin"`
	Destination      string `json:"destination"`
	CarrierName      string `json:"carrier_name"`
}

type Availability struct {
	FlightID   int64          `json:"flight_id"`
	TravelDate string         `json:"travel_date"`
	Available  map[string]int `json:"available"`
	Capacity   map[string]int `json:"capacity,omitempty"`
	Booked     map[string]int `json:"booked,omitempty"`
}
