package bookingpb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestServiceDescriptorRegistered(t *testing.T) {
	d, err := protoregistry.GlobalFiles.FindDescriptorByName(protoreflect.FullName(BookingService_ServiceDesc.ServiceName))
	require.NoError(t, err)

	svc, ok := d.(protoreflect.ServiceDescriptor)
	require.True(t, ok)
	require.Equal(t, len(BookingService_ServiceDesc.Methods), svc.Methods().Len())

	for _, m := range BookingService_ServiceDesc.Methods {
		md := svc.Methods().ByName(protoreflect.Name(m.MethodName))
		require.NotNil(t, md, m.MethodName)
		assert.False(t, md.IsStreamingClient())
		assert.False(t, md.IsStreamingServer())
	}
}

func TestReservationWireFormat(t *testing.T) {
	startsAt := time.Date(2025, 12, 1, 19, 0, 0, 0, time.UTC)
	in := &ListReservationsResponse{
		Reservations: []*Reservation{{
			Id:        7,
			TableId:   3,
			StartsAt:  timestamppb.New(startsAt),
			PartySize: 4,
			Status:    "pendiente",
		}},
		Total:   1,
		HasNext: false,
	}

	data, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &ListReservationsResponse{}
	require.NoError(t, proto.Unmarshal(data, out))
	require.Len(t, out.GetReservations(), 1)
	assert.True(t, out.GetReservations()[0].GetStartsAt().AsTime().Equal(startsAt))
	assert.True(t, proto.Equal(in, out))

	var nilCell *CalendarCell
	assert.Equal(t, CellKind_CELL_KIND_UNSPECIFIED, nilCell.GetKind())
	assert.Equal(t, "CELL_KIND_DAY", CellKind_CELL_KIND_DAY.String())
}
