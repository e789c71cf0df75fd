// Package bookingpb содержит gRPC-контракт сервиса доступности ресторана,
// сгенерированный из api/booking/v1/booking.proto.
package bookingpb

//go:generate protoc -I ../../../../api --go_out=../../../.. --go_opt=module=github.com/Leganyst/restaurant-booking --go-grpc_out=../../../.. --go-grpc_opt=module=github.com/Leganyst/restaurant-booking booking/v1/booking.proto
