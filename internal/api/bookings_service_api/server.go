package bookings_service_api

import (
	"context"

	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/Domenick1991/flightinventory/internal/service/booking"
)

// Server implements BookingsServiceServer on top of the booking lifecycle.
type Server struct {
	bookings booking.BookingUseCase
}

func NewServer(bookings booking.BookingUseCase) *Server {
	return &Server{bookings: bookings}
}

func (s *Server) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	class, err := domain.ParseSeatClass(req.SeatClass)
	if err != nil {
		return nil, err
	}
	travelDate, err := domain.ParseDate(req.TravelDate)
	if err != nil {
		return nil, err
	}

	created, err := s.bookings.CreateBooking(ctx, booking.CreateBookingInput{
		FlightID:   req.FlightID,
		UserID:     req.UserID,
		SeatClass:  class,
		TravelDate: travelDate,
		SeatCount:  req.SeatCount,
	})
	if err != nil {
		return nil, err
	}
	return toBooking(created), nil
}

func (s *Server) CancelBooking(ctx context.Context, req *BookingIDRequest) (*CancellationReceipt, error) {
	r, err := s.bookings.CancelBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	return &CancellationReceipt{
		BookingID:        r.BookingID,
		FlightID:         r.FlightID,
		UserID:           r.UserID,
		SeatClass:        r.SeatClass.String(),
		TravelDate:       r.TravelDate.Format(domain.DateLayout),
		SeatCount:        r.SeatCount,
		BookingAmount:    r.BookingAmount.StringFixed(2),
		RefundAmount:     r.RefundAmount.StringFixed(2),
		RefundPercentage: r.RefundPercentage.StringFixed(2),
		Status:           string(r.Status),
		Origin:           r.Origin,
		Destination:      r.Destination,
		CarrierName:      r.CarrierName,
	}, nil
}

func (s *Server) GetBooking(ctx context.Context, req *BookingIDRequest) (*Booking, error) {
	d, err := s.bookings.GetBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	return toBookingDetails(d), nil
}

func (s *Server) ListUserBookings(ctx context.Context, req *UserBookingsRequest) (*BookingList, error) {
	list, err := s.bookings.ListUserBookings(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	resp := &BookingList{Bookings: make([]*Booking, 0, len(list))}
	for i := range list {
		resp.Bookings = append(resp.Bookings, toBookingDetails(&list[i]))
	}
	return resp, nil
}

func (s *Server) GetAvailability(ctx context.Context, req *AvailabilityRequest) (*Availability, error) {
	travelDate, err := domain.ParseDate(req.TravelDate)
	if err != nil {
		return nil, err
	}

	if req.SeatClass != "" {
		class, err := domain.ParseSeatClass(req.SeatClass)
		if err != nil {
			return nil, err
		}
		n, err := s.bookings.GetAvailability(ctx, req.FlightID, travelDate, class)
		if err != nil {
			return nil, err
		}
		return &Availability{
			FlightID:   req.FlightID,
			TravelDate: req.TravelDate,
			Available:  map[string]int{class.String(): n},
		}, nil
	}

	a, err := s.bookings.GetInventory(ctx, req.FlightID, travelDate)
	if err != nil {
		return nil, err
	}
	return &Availability{
		FlightID:   a.FlightID,
		TravelDate: a.TravelDate.Format(domain.DateLayout),
		Available:  perClass(a.Available),
		Capacity:   perClass(a.Capacity),
		Booked:     perClass(a.Booked),
	}, nil
}

func toBooking(b *domain.Booking) *Booking {
	return &Booking{
		ID:             b.ID,
		FlightID:       b.FlightID,
		UserID:         b.UserID,
		SeatClass:      b.SeatClass.String(),
		TravelDate:     b.TravelDate.Format(domain.DateLayout),
		SeatCount:      b.SeatCount,
		GrossAmount:    b.GrossAmount.StringFixed(2),
		DiscountAmount: b.DiscountAmount.StringFixed(2),
		NetAmount:      b.NetAmount().StringFixed(2),
		DiscountReason: b.DiscountReason,
		Status:         string(b.Status),
	}
}

func toBookingDetails(d *domain.BookingDetails) *Booking {
	out := toBooking(&d.Booking)
	out.Origin = d.Origin
	out.Destination = d.Destination
	out.CarrierName = d.CarrierName
	return out
}

func perClass(counts domain.SeatCounts) map[string]int {
	m := make(map[string]int, domain.NumSeatClasses)
	for _, class := range domain.SeatClasses {
		m[class.String()] = counts.Of(class)
	}
	return m
}

var _ BookingsServiceServer = (*Server)(nil)
