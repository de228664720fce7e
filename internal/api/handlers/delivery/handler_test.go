package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/plmkit/notifier/internal/api/dto"
	"github.com/plmkit/notifier/internal/dispatcher"
	mocks "github.com/plmkit/notifier/internal/mocks/api/handlers/delivery"
	"github.com/plmkit/notifier/internal/model"
	repo "github.com/plmkit/notifier/internal/repository/delivery"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockdispatchService, *mocks.MockdeliveryReader) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := mocks.NewMockdispatchService(ctrl)
	mockReader := mocks.NewMockdeliveryReader(ctrl)
	handler := NewHandler(mockService, mockReader, validator.New())
	return handler, mockService, mockReader
}

func TestHandler_Send_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	reqBody := dto.SendRequest{
		AlertID:    "alert-1",
		Recipients: []int64{7, 9},
		Channels:   []string{"system", "email"},
		Category:   "task",
		Title:      "Task overdue",
		Content:    "Task #42 is overdue",
		Severity:   "WARNING",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/notify/", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		Dispatch(gomock.Any(), gomock.AssignableToTypeOf(dispatcher.Request{})).
		Return(dispatcher.Result{AlertID: "alert-1", Created: 3}, nil)

	handler.Send(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Send_ValidationError(t *testing.T) {
	handler, _, _ := setupHandler(t)

	// No recipients and no channels.
	reqBody := dto.SendRequest{AlertID: "alert-1", Title: "Task overdue"}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/notify/", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Broadcast_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	reqBody := dto.BroadcastRequest{
		AlertID:  "alert-2",
		Rule:     dto.BroadcastRule{OwnerID: 7, HandlerID: 9, Channels: []string{"wecom"}},
		Category: "inspection",
		Title:    "Inspection failed",
		Content:  "Batch #7 failed inspection",
		Severity: "CRITICAL",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/notify/broadcast", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		Dispatch(gomock.Any(), gomock.AssignableToTypeOf(dispatcher.Request{})).
		DoAndReturn(func(_ context.Context, dreq dispatcher.Request) (dispatcher.Result, error) {
			assert.NotNil(t, dreq.Rule)
			assert.Equal(t, int64(7), dreq.Rule.OwnerID)
			return dispatcher.Result{AlertID: "alert-2", Created: 2}, nil
		})

	handler.Broadcast(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_GetStatus_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/notify/status/"+id.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().RecordStatus(gomock.Any(), id).Return(model.StatusPending, nil)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_GetStatus_NotFound(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/notify/status/"+id.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().RecordStatus(gomock.Any(), id).Return(model.DeliveryStatus(""), repo.ErrRecordNotFound)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_GetStatus_InvalidID(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notify/status/not-a-uuid", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	handler.GetStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_ListByAlert_Success(t *testing.T) {
	handler, _, mockReader := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notify/alerts/alert-1", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "alertID", Value: "alert-1"}}

	mockReader.EXPECT().ListRecordsByAlert(gomock.Any(), "alert-1").
		Return([]model.DeliveryRecord{{AlertID: "alert-1", Channel: model.ChannelSystem}}, nil)

	handler.ListByAlert(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Inbox_Success(t *testing.T) {
	handler, _, mockReader := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notify/inbox/7", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "userID", Value: "7"}}

	mockReader.EXPECT().ListInbox(gomock.Any(), int64(7)).
		Return([]model.InboxNotification{{UserID: 7, Title: "Task overdue"}}, nil)

	handler.Inbox(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_MarkRead_Success(t *testing.T) {
	handler, _, mockReader := setupHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPut, "/api/notify/inbox/"+id.String()+"/read", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockReader.EXPECT().MarkInboxRead(gomock.Any(), id).Return(nil)

	handler.MarkRead(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}
