package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/robgonnella/yunmon/internal/exception"
	"github.com/robgonnella/yunmon/internal/gateway"
	mock_gateway "github.com/robgonnella/yunmon/internal/mock/gateway"
	"github.com/stretchr/testify/assert"
)

func TestRemoteGateway(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	mockTransport := mock_gateway.NewMockTransport(ctrl)

	gw := gateway.New(mockTransport)

	ctx := context.Background()

	t.Run("returns result payload", func(st *testing.T) {
		result := json.RawMessage(`{"deviceinfo":{}}`)

		mockTransport.EXPECT().
			Call(ctx, &gateway.Request{Method: gateway.OpNetInfo, Args: gateway.Args{}}).
			Return(&gateway.Response{Result: result}, nil)

		payload, err := gw.Invoke(ctx, gateway.OpNetInfo, gateway.Args{})

		assert.NoError(st, err)
		assert.Equal(st, result, payload)
	})

	t.Run("sends empty args when args are nil", func(st *testing.T) {
		mockTransport.EXPECT().
			Call(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req *gateway.Request) (*gateway.Response, error) {
				assert.NotNil(st, req.Args)
				assert.Equal(st, 0, len(req.Args))
				return &gateway.Response{Result: json.RawMessage(`"ok"`)}, nil
			})

		_, err := gw.Invoke(ctx, gateway.OpIWInfo, nil)

		assert.NoError(st, err)
	})

	t.Run("propagates remote string error verbatim", func(st *testing.T) {
		mockTransport.EXPECT().
			Call(ctx, gomock.Any()).
			Return(&gateway.Response{Error: json.RawMessage(`"permission denied"`)}, nil)

		payload, err := gw.Invoke(ctx, gateway.OpNetInfo, nil)

		assert.Nil(st, payload)

		remoteErr := &exception.RemoteError{}

		assert.True(st, errors.As(err, &remoteErr))
		assert.Equal(st, "permission denied", err.Error())
	})

	t.Run("propagates remote structured error verbatim", func(st *testing.T) {
		mockTransport.EXPECT().
			Call(ctx, gomock.Any()).
			Return(&gateway.Response{Error: json.RawMessage(`{"code":3}`)}, nil)

		_, err := gw.Invoke(ctx, gateway.OpNetInfo, nil)

		remoteErr := &exception.RemoteError{}

		assert.True(st, errors.As(err, &remoteErr))
		assert.Equal(st, `{"code":3}`, err.Error())
	})

	t.Run("returns no response error when reply is empty", func(st *testing.T) {
		mockTransport.EXPECT().
			Call(ctx, gomock.Any()).
			Return(&gateway.Response{}, nil)

		_, err := gw.Invoke(ctx, gateway.OpNetInfo, nil)

		assert.ErrorIs(st, err, exception.ErrNoResponse)
	})

	t.Run("returns no response error when reply is nil", func(st *testing.T) {
		mockTransport.EXPECT().
			Call(ctx, gomock.Any()).
			Return(nil, nil)

		_, err := gw.Invoke(ctx, gateway.OpNetInfo, nil)

		assert.ErrorIs(st, err, exception.ErrNoResponse)
	})

	t.Run("treats falsy result and error as no response", func(st *testing.T) {
		mockTransport.EXPECT().
			Call(ctx, gomock.Any()).
			Return(&gateway.Response{
				Result: json.RawMessage(`""`),
				Error:  json.RawMessage(`null`),
			}, nil)

		_, err := gw.Invoke(ctx, gateway.OpIWInfo, nil)

		assert.ErrorIs(st, err, exception.ErrNoResponse)
	})

	t.Run("wraps transport errors", func(st *testing.T) {
		transportErr := errors.New("connection refused")

		mockTransport.EXPECT().
			Call(ctx, gomock.Any()).
			Return(nil, transportErr)

		_, err := gw.Invoke(ctx, gateway.OpNetInfo, nil)

		wrapped := &exception.TransportError{}

		assert.True(st, errors.As(err, &wrapped))
		assert.ErrorIs(st, err, transportErr)
		assert.Equal(
			st,
			"failed to get response from device: connection refused",
			err.Error(),
		)
	})

	t.Run("rejects empty operation", func(st *testing.T) {
		_, err := gw.Invoke(ctx, "", nil)

		assert.Error(st, err)
	})

	t.Run("closes transport", func(st *testing.T) {
		mockTransport.EXPECT().Close().Return(nil)

		assert.NoError(st, gw.Close())
	})
}
