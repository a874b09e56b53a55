package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/IRP-BookingService/internal/api/handlers"
	"github.com/m04kA/IRP-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/IRP-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/IRP-BookingService/pkg/authtoken"
)

type useCaseMock struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (m *useCaseMock) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	m.gotReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

type tokenValidatorMock struct {
	claims *authtoken.Claims
	err    error
}

func (m *tokenValidatorMock) Validate(_ string) (*authtoken.Claims, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.claims, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newServer(uc *useCaseMock, validator *tokenValidatorMock) http.Handler {
	handler := NewHandler(uc, nopLogger{})
	authMw := middleware.NewAuth(validator)
	return authMw.RequireUser(http.HandlerFunc(handler.Handle))
}

func doRequest(t *testing.T, srv http.Handler, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(payload))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func validBody() CreateBookingRequest {
	return CreateBookingRequest{
		SlotID:         "2025-10-06-s1",
		TeamLeadName:   "Alice",
		TeamLeadRollNo: "CS-042",
		ProjectName:    "Drone Swarm",
	}
}

func userClaims() *authtoken.Claims {
	return &authtoken.Claims{SubjectID: "user-1", Role: authtoken.RoleUser}
}

func TestHandleCreatesBooking(t *testing.T) {
	uc := &useCaseMock{resp: &createBooking.Response{
		ID:          "booking-1",
		UserID:      "user-1",
		SlotID:      "2025-10-06-s1",
		SlotDate:    time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC),
		SlotTime:    "1:45 PM - 2:15 PM",
		Status:      "confirmed",
		ProjectName: "Drone Swarm",
		CreatedAt:   time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC),
	}}
	srv := newServer(uc, &tokenValidatorMock{claims: userClaims()})

	rec := doRequest(t, srv, validBody(), "token")
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "booking-1", resp.ID)
	require.Equal(t, "2025-10-06", resp.SlotDate)

	// ID пользователя берется из токена, не из тела запроса
	require.Equal(t, "user-1", uc.gotReq.UserID)
}

func TestHandleRequiresToken(t *testing.T) {
	srv := newServer(&useCaseMock{}, &tokenValidatorMock{err: authtoken.ErrInvalidToken})

	rec := doRequest(t, srv, validBody(), "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, srv, validBody(), "garbage")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleMapsUseCaseErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{createBooking.ErrSystemInactive, http.StatusServiceUnavailable},
		{createBooking.ErrSlotTaken, http.StatusConflict},
		{createBooking.ErrAlreadyBooked, http.StatusConflict},
		{createBooking.ErrSlotNotFound, http.StatusNotFound},
		{createBooking.ErrEnrollmentClosed, http.StatusForbidden},
		{createBooking.ErrUserNotFound, http.StatusNotFound},
		{createBooking.ErrInvalidInput, http.StatusBadRequest},
		{createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		srv := newServer(&useCaseMock{err: tc.err}, &tokenValidatorMock{claims: userClaims()})
		rec := doRequest(t, srv, validBody(), "token")
		require.Equal(t, tc.code, rec.Code, "error=%v", tc.err)

		var body handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotEmpty(t, body.Message)
	}
}

func TestHandleRejectsMalformedBody(t *testing.T) {
	srv := newServer(&useCaseMock{}, &tokenValidatorMock{claims: userClaims()})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Authorization", "Bearer token")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
