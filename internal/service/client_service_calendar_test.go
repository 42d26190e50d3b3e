package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/riegum-client/internal/logger"
	"github.com/MKhiriev/riegum-client/internal/mock"
	"github.com/MKhiriev/riegum-client/internal/validators"
	"github.com/MKhiriev/riegum-client/models"
)

func newTestCalendarSvc(t *testing.T, ctrl *gomock.Controller) (ClientCalendarService, *mock.MockRiegumAPI) {
	t.Helper()
	mockAPI := mock.NewMockRiegumAPI(ctrl)
	return NewClientCalendarService(mockAPI, validators.NewRiegumValidator(), logger.Nop()), mockAPI
}

func TestClientCalendarService_UpdateEventTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAPI := newTestCalendarSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAPI.EXPECT().GetCalendarSettings(ctx).Return(models.CalendarSettings{EventTime: "09:00:00", Linked: true}, nil),
		mockAPI.EXPECT().UpdateCalendarTime(ctx, "07:45").Return("Hora actualizada", nil),
	)

	msg, err := svc.UpdateEventTime(ctx, "07:45")
	require.NoError(t, err)
	assert.Equal(t, "Hora actualizada", msg)
}

func TestClientCalendarService_UpdateEventTime_NotLinked(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAPI := newTestCalendarSvc(t, ctrl)

	mockAPI.EXPECT().GetCalendarSettings(gomock.Any()).Return(models.CalendarSettings{EventTime: "09:00:00"}, nil)

	_, err := svc.UpdateEventTime(context.Background(), "07:45")
	assert.ErrorIs(t, err, ErrCalendarNotLinked)
}

func TestClientCalendarService_UpdateEventTime_BadFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestCalendarSvc(t, ctrl)

	_, err := svc.UpdateEventTime(context.Background(), "7:45pm")
	assert.ErrorIs(t, err, validators.ErrInvalidEventTime)
}

func TestClientCalendarService_StatusAndDisconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAPI := newTestCalendarSvc(t, ctrl)

	mockAPI.EXPECT().CalendarStatus(gomock.Any()).Return(models.CalendarStatus{Linked: true}, nil)
	mockAPI.EXPECT().DisconnectCalendar(gomock.Any()).Return("Calendario desvinculado con éxito.", nil)
	mockAPI.EXPECT().CalendarLinkURL().Return("http://riegum.local/google-calendar/auth/")

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Linked)

	msg, err := svc.Disconnect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Calendario desvinculado con éxito.", msg)

	assert.Equal(t, "http://riegum.local/google-calendar/auth/", svc.LinkURL())
}
