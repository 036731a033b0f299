package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{in: "599.99", want: 59999},
		{in: "600", want: 60000},
		{in: "0", want: 0},
		{in: "0.5", want: 50},
		{in: "  ", wantErr: e.ErrInvalidPrice},
		{in: "abc", wantErr: e.ErrInvalidPrice},
		{in: "-1", wantErr: e.ErrInvalidPrice},
		{in: "1000000001", wantErr: e.ErrInvalidPrice},
		{in: "9.999", wantErr: e.ErrPricePrecision},
	}

	for _, tc := range cases {
		got, err := parsePriceToCents(tc.in)
		if tc.wantErr != nil {
			assert.ErrorIs(t, err, tc.wantErr, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "25.00", formatCents(2500))
	assert.Equal(t, "0.00", formatCents(0))
	assert.Equal(t, "0.05", formatCents(5))
	assert.Equal(t, "599.99", formatCents(59999))
}

func TestFormatCentsRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 59999, 100_000_00} {
		parsed, err := parsePriceToCents(formatCents(cents))
		require.NoError(t, err)
		assert.Equal(t, cents, parsed)
	}
}

func TestToHTTPResponse(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{e.ErrEmptyCart, http.StatusBadRequest},
		{e.ErrInvalidPrice, http.StatusBadRequest},
		{e.ErrNotFound, http.StatusNotFound},
		{e.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{e.ErrUsernameTaken, http.StatusConflict},
		{e.ErrInsufficientStock, http.StatusConflict},
		{e.ErrInvalidTransition, http.StatusConflict},
		{e.ErrPaymentExists, http.StatusConflict},
		{e.ErrStoreUnavailable, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		code, msg := ToHTTPResponse(tc.err)
		assert.Equal(t, tc.code, code, "error %v", tc.err)
		assert.NotEmpty(t, msg)
	}

	// Обёрнутые ошибки разворачиваются до сентинела
	code, _ := ToHTTPResponse(e.Wrap("OrderUseCase.PlaceOrder", e.ErrInsufficientStock))
	assert.Equal(t, http.StatusConflict, code)
}

func TestParseIDParam(t *testing.T) {
	newReq := func(raw string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/orders/"+raw, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", raw)
		return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}

	id, err := parseIDParam(newReq("42"), "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"0", "-5", "abc", ""} {
		_, err := parseIDParam(newReq(raw), "id")
		assert.ErrorIs(t, err, e.ErrStatusBadRequest, "raw %q", raw)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	var dst struct {
		Quantity int64 `json:"quantity"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"quantity": 2}`))
	require.NoError(t, decodeJSONBody(r, &dst))
	assert.Equal(t, int64(2), dst.Quantity)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"quantity": 2, "extra": true}`))
	assert.ErrorIs(t, decodeJSONBody(r, &dst), e.ErrStatusBadRequest)
}
