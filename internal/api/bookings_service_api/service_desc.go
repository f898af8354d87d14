package bookings_service_api

import (
	"context"

	"github.com/Domenick1991/flightinventory/internal/api/rpc"
	"google.golang.org/grpc"
)

const ServiceName = "flightinventory.bookings.v1.BookingsService"

const (
	createBookingMethod    = "/" + ServiceName + "/CreateBooking"
	cancelBookingMethod    = "/" + ServiceName + "/CancelBooking"
	getBookingMethod       = "/" + ServiceName + "/GetBooking"
	listUserBookingsMethod = "/" + ServiceName + "/ListUserBookings"
	getAvailabilityMethod  = "/" + ServiceName + "/GetAvailability"
)

type BookingsServiceServer interface {
	CreateBooking(context.Context, *CreateBookingRequest) (*Booking, error)
	CancelBooking(context.Context, *BookingIDRequest) (*CancellationReceipt, error)
	GetBooking(context.Context, *BookingIDRequest) (*Booking, error)
	ListUserBookings(context.Context, *UserBookingsRequest) (*BookingList, error)
	GetAvailability(context.Context, *AvailabilityRequest) (*Availability, error)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BookingsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateBooking", Handler: rpc.Unary(createBookingMethod, BookingsServiceServer.CreateBooking)},
		{MethodName: "CancelBooking", Handler: rpc.Unary(cancelBookingMethod, BookingsServiceServer.CancelBooking)},
		{MethodName: "GetBooking", Handler: rpc.Unary(getBookingMethod, BookingsServiceServer.GetBooking)},
		{MethodName: "ListUserBookings", Handler: rpc.Unary(listUserBookingsMethod, BookingsServiceServer.ListUserBookings)},
		{MethodName: "GetAvailability", Handler: rpc.Unary(getAvailabilityMethod, BookingsServiceServer.GetAvailability)},
	},
	Metadata: "bookings.v1",
}

func RegisterBookingsServiceServer(s grpc.ServiceRegistrar, srv BookingsServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

// Client calls BookingsService over the JSON codec.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) CreateBooking(ctx context.Context, in *CreateBookingRequest) (*Booking, error) {
	out := new(Booking)
	if err := c.cc.Invoke(ctx, createBookingMethod, in, out, rpc.CallOption()); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CancelBooking(ctx context.Context, in *BookingIDRequest) (*CancellationReceipt, error) {
	out := new(CancellationReceipt)
	if err := c.cc.Invoke(ctx, cancelBookingMethod, in, out, rpc.CallOption()); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBooking(ctx context.Context, in *BookingIDRequest) (*Booking, error) {
	out := new(Booking)
	if err := c.cc.Invoke(ctx, getBookingMethod, in, out, rpc.CallOption()); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListUserBookings(ctx context.Context, in *UserBookingsRequest) (*BookingList, error) {
	out := new(BookingList)
	if err := c.cc.Invoke(ctx, listUserBookingsMethod, in, out, rpc.CallOption()); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAvailability(ctx context.Context, in *AvailabilityRequest) (*Availability, error) {
	out := new(Availability)
	if err := c.cc.Invoke(ctx, getAvailabilityMethod, in, out, rpc.CallOption()); err != nil {
		return nil, err
	}
	return out, nil
}
