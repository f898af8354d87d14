package flights_service_api

import (
	"context"

	"github.com/Domenick1991/flightinventory/internal/api/rpc"
	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/Domenick1991/flightinventory/internal/service/flights"
	"google.golang.org/grpc"
)

const ServiceName = "flightinventory.flights.v1.FlightsService"

const (
	listFlightsMethod = "/" + ServiceName + "/ListFlights"
	getFlightMethod   = "/" + ServiceName + "/GetFlight"
)

type ListFlightsRequest struct{}

type GetFlightRequest struct {
	ID int64 `json:"id"`
}

type Flight struct {
	ID          int64          `json:"id"`
	CarrierID   int64          `json:"carrier_id"`
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	Fare        string         `json:"fare"`
	Capacity    map[string]int `json:"capacity"`
}

type ListFlightsResponse struct {
	Flights []*Flight `json:"flights"`
}

type FlightsServiceServer interface {
	ListFlights(context.Context, *ListFlightsRequest) (*ListFlightsResponse, error)
	GetFlight(context.Context, *GetFlightRequest) (*Flight, error)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FlightsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListFlights", Handler: rpc.Unary(listFlightsMethod, FlightsServiceServer.ListFlights)},
		{MethodName: "GetFlight", Handler: rpc.Unary(getFlightMethod, FlightsServiceServer.GetFlight)},
	},
	Metadata: "flights.v1",
}

func RegisterFlightsServiceServer(s grpc.ServiceRegistrar, srv FlightsServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

// Server implements FlightsServiceServer over the flight catalog.
type Server struct {
	flights flights.FlightUseCase
}

func NewServer(flights flights.FlightUseCase) *Server {
	return &Server{flights: flights}
}

func (s *Server) ListFlights(ctx context.Context, _ *ListFlightsRequest) (*ListFlightsResponse, error) {
	list, err := s.flights.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := &ListFlightsResponse{
		Flights: make([]*Flight, 0, len(list)),
	}
	for i := range list {
		resp.Flights = append(resp.Flights, toFlight(&list[i]))
	}
	return resp, nil
}

func (s *Server) GetFlight(ctx context.Context, req *GetFlightRequest) (*Flight, error) {
	flight, err := s.flights.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return toFlight(flight), nil
}

func toFlight(f *domain.Flight) *Flight {
	capacity := make(map[string]int, domain.NumSeatClasses)
	for _, class := range domain.SeatClasses {
		capacity[class.String()] = f.Capacity.Of(class)
	}
	return &Flight{
		ID:          f.ID,
		CarrierID:   f.CarrierID,
		Origin:      f.Origin,
		Destination: f.Destination,
		Fare:        f.Fare.StringFixed(2),
		Capacity:    capacity,
	}
}

// Client calls FlightsService over the JSON codec.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) ListFlights(ctx context.Context) (*ListFlightsResponse, error) {
	out := new(ListFlightsResponse)
	if err := c.cc.Invoke(ctx, listFlightsMethod, &ListFlightsRequest{}, out, rpc.CallOption()); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetFlight(ctx context.Context, id int64) (*Flight, error) {
	out := new(Flight)
	if err := c.cc.Invoke(ctx, getFlightMethod, &GetFlightRequest{ID: id}, out, rpc.CallOption()); err != nil {
		return nil, err
	}
	return out, nil
}

var _ FlightsServiceServer = (*Server)(nil)
