package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/smolentsev/lostradar/internal/apperrors"
	"github.com/smolentsev/lostradar/internal/config"
	"github.com/smolentsev/lostradar/internal/geo"
	"github.com/smolentsev/lostradar/internal/models"
	"github.com/smolentsev/lostradar/internal/service"
	"github.com/smolentsev/lostradar/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	area  *mocks.MockAreaService
	event *mocks.MockEventService
	chat  *mocks.MockChatService
	group *mocks.MockGroupService
}

var testUserID = uuid.MustParse("6f1c73c6-74f9-4bcb-9c5a-31a1c1b4e9aa")

// newTestHandler создает новый экземпляр Handler с мокированными сервисами.
// Вместо session middleware подставляется заглушка с фиксированным пользователем.
func newTestHandler(t *testing.T) (*Handler, serviceMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		area:  mocks.NewMockAreaService(ctrl),
		event: mocks.NewMockEventService(ctrl),
		chat:  mocks.NewMockChatService(ctrl),
		group: mocks.NewMockGroupService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{PublicBaseURL: "http://localhost:8080"}

	handler := NewHandler(m.area, m.event, m.chat, m.group, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api, func(c *gin.Context) {
		c.Set(userIDKey, testUserID)
		c.Next()
	})

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateArea_HTTP_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	areaID := uuid.New()
	reqBody := CreateAreaRequest{
		Name:         "Test Area",
		Latitude:     -34.6037,
		Longitude:    -58.3816,
		RadiusMeters: 5000,
		Visibility:   models.AreaVisibilityPublic,
	}

	m.area.EXPECT().
		CreateArea(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, area *models.Area) error {
			assert.Equal(t, testUserID, area.CreatorID)
			area.ID = areaID
			area.CreatedAt = time.Now()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/areas", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp AreaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, areaID, resp.ID)
	assert.Equal(t, reqBody.Name, resp.Name)
}

func TestCreateArea_HTTP_InvalidVisibility(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := CreateAreaRequest{
		Name:         "Test Area",
		Latitude:     -34.6037,
		Longitude:    -58.3816,
		RadiusMeters: 5000,
		Visibility:   "FRIENDS_ONLY",
	}

	m.area.EXPECT().CreateArea(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/areas", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateArea_HTTP_RadiusOutOfRange(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := CreateAreaRequest{
		Name:         "Test Area",
		Latitude:     -34.6037,
		Longitude:    -58.3816,
		RadiusMeters: 50,
		Visibility:   models.AreaVisibilityPublic,
	}

	// Границы радиуса решает сервис
	m.area.EXPECT().
		CreateArea(gomock.Any(), gomock.Any()).
		Return(apperrors.Validation("radius must be between 100 and 10000 meters")).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/areas", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "radius")
}

func TestGetArea_HTTP_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	areaID := uuid.New()

	m.area.EXPECT().
		GetArea(gomock.Any(), testUserID, areaID).
		Return(nil, apperrors.NotFound("area %s not found", areaID)).Times(1)

	w := makeRequest(router, "GET", "/api/v1/areas/"+areaID.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetArea_HTTP_InvalidID(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.area.EXPECT().GetArea(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/areas/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestJoin_HTTP_Conflict(t *testing.T) {
	_, m, router := newTestHandler(t)
	areaID := uuid.New()

	m.area.EXPECT().
		RequestJoin(gomock.Any(), testUserID, areaID).
		Return(nil, apperrors.Conflict("user is already a member of this area")).Times(1)

	w := makeRequest(router, "POST", "/api/v1/areas/"+areaID.String()+"/request-join", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLeaveArea_HTTP_CreatorForbidden(t *testing.T) {
	_, m, router := newTestHandler(t)
	areaID := uuid.New()

	m.area.EXPECT().
		Leave(gomock.Any(), testUserID, areaID).
		Return(apperrors.Authorization("creator cannot leave the area, delete it instead")).Times(1)

	w := makeRequest(router, "POST", "/api/v1/areas/"+areaID.String()+"/leave", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAcceptInvitation_HTTP_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	areaID := uuid.New()
	invID := uuid.New()
	member := &models.AreaMember{AreaID: areaID, UserID: uuid.New(), Role: models.AreaRoleMember}

	m.area.EXPECT().
		AcceptInvitation(gomock.Any(), testUserID, areaID, invID).
		Return(member, nil).Times(1)

	url := "/api/v1/areas/" + areaID.String() + "/invitations/" + invID.String() + "/accept"
	w := makeRequest(router, "POST", url, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp MemberResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, member.UserID, resp.UserID)
}

func TestListEvents_HTTP_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	events := []*models.Event{
		{ID: uuid.New(), Type: models.EventTypeTheft, Status: models.EventStatusInProgress, IsPublic: true},
	}

	m.event.EXPECT().
		ListVisibleEvents(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, box geo.BoundingBox, filters service.EventFilters) ([]*models.Event, error) {
			assert.InDelta(t, -34.58, box.NorthEast.Lat, 1e-9)
			assert.InDelta(t, -58.40, box.SouthWest.Lng, 1e-9)
			assert.Equal(t, models.EventTypeTheft, filters.Type)
			assert.Equal(t, service.SortOrderDesc, filters.SortOrder)
			return events, nil
		}).Times(1)

	url := "/api/v1/events?northEast=-34.58,-58.36&southWest=-34.62,-58.40&type=THEFT&sortOrder=desc"
	w := makeRequest(router, "GET", url, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []*EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, events[0].ID, resp[0].ID)
}

func TestListEvents_HTTP_MissingViewport(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.event.EXPECT().ListVisibleEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/events?northEast=-34.58,-58.36", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "viewport")
}

func TestListEvents_HTTP_MalformedCorner(t *testing.T) {
	// Угол без запятой или с нечисловой частью отклоняется
	_, m, router := newTestHandler(t)

	m.event.EXPECT().ListVisibleEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/events?northEast=-34.58&southWest=-34.62,-58.40", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "northEast")
}

func TestCreateEvent_HTTP_AttachedDevices(t *testing.T) {
	// Ссылки на трекер и телефон из запроса доходят до доменной модели
	_, m, router := newTestHandler(t)
	deviceID := uuid.New()
	phoneDeviceID := uuid.New()
	deviceIDStr := deviceID.String()
	phoneDeviceIDStr := phoneDeviceID.String()
	reqBody := CreateEventRequest{
		Type:          models.EventTypeTheft,
		Latitude:      -34.6037,
		Longitude:     -58.3816,
		IsPublic:      true,
		DeviceID:      &deviceIDStr,
		PhoneDeviceID: &phoneDeviceIDStr,
	}

	m.event.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.Event) error {
			require.NotNil(t, event.DeviceID)
			assert.Equal(t, deviceID, *event.DeviceID)
			require.NotNil(t, event.PhoneDeviceID)
			assert.Equal(t, phoneDeviceID, *event.PhoneDeviceID)
			event.ID = uuid.New()
			event.Status = models.EventStatusInProgress
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/events", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.PhoneDeviceID)
	assert.Equal(t, phoneDeviceID, *resp.PhoneDeviceID)
}

func TestCloseEvent_HTTP_AlreadyClosed(t *testing.T) {
	_, m, router := newTestHandler(t)
	eventID := uuid.New()

	m.event.EXPECT().
		CloseEvent(gomock.Any(), testUserID, eventID, false).
		Return(nil, apperrors.InvalidState("event is not in progress")).Times(1)

	w := makeRequest(router, "POST", "/api/v1/events/"+eventID.String()+"/close", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestStartChat_HTTP_ReturnsSessionToken(t *testing.T) {
	// Публичный маршрут: сессия пользователя не нужна, токен нашедшего в ответе
	_, m, router := newTestHandler(t)
	chatID := uuid.New()

	m.chat.EXPECT().
		StartChat(gomock.Any(), "qr-abc-123", "Ivan", "", "found it").
		Return(&models.FoundChat{
			ID:              chatID,
			DeviceID:        uuid.New(),
			FinderSessionID: "opaque-session-token",
			FinderName:      "Ivan",
			Status:          models.ChatStatusActive,
		}, nil).Times(1)

	reqBody := StartChatRequest{FinderName: "Ivan", Message: "found it"}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/public/device/qr-abc-123/chat", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, chatID, resp.ID)
	assert.Equal(t, "opaque-session-token", resp.SessionID)
}

func TestQRLanding_HTTP_UnknownCode(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.chat.EXPECT().
		PublicDevice(gomock.Any(), "ghost").
		Return(nil, apperrors.NotFound("qr code is not registered")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/qr/ghost/public", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQRLanding_HTTP_EscapesDeviceName(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.chat.EXPECT().
		PublicDevice(gomock.Any(), "qr-abc-123").
		Return(&models.Device{
			ID:               uuid.New(),
			Name:             "<script>alert(1)</script>",
			QRCode:           "qr-abc-123",
			QRSharingEnabled: true,
		}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/qr/qr-abc-123/public", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<script>")
}

func TestPostFinderMessage_HTTP_WrongSession(t *testing.T) {
	_, m, router := newTestHandler(t)
	chatID := uuid.New()

	m.chat.EXPECT().
		PostFinderMessage(gomock.Any(), chatID, "stolen", "hi").
		Return(nil, apperrors.Authorization("invalid chat session")).Times(1)

	reqBody := ChatMessageRequest{Content: "hi"}
	bodyBytes, _ := json.Marshal(reqBody)
	url := "/api/v1/public/chat/" + chatID.String() + "/session/stolen/message"
	w := makeRequest(router, "POST", url, bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSetChatStatus_HTTP_IllegalTarget(t *testing.T) {
	_, m, router := newTestHandler(t)
	chatID := uuid.New()

	m.chat.EXPECT().SetStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	reqBody := SetChatStatusRequest{Status: "ACTIVE"}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/chats/"+chatID.String()+"/status", bytes.NewBuffer(bodyBytes))

	// Отсекается тегом валидатора, до сервиса не доходит
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGroupPositions_HTTP_NotMember(t *testing.T) {
	_, m, router := newTestHandler(t)
	groupID := uuid.New()

	m.group.EXPECT().
		Positions(gomock.Any(), testUserID, groupID).
		Return(nil, apperrors.Authorization("group membership required")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/groups/"+groupID.String()+"/positions", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReportDevicePosition_HTTP_MissingKey(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.group.EXPECT().ReportDevicePosition(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	reqBody := ReportPositionRequest{Latitude: -34.6, Longitude: -58.38}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/devices/position", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReportPosition_HTTP_EquatorAccepted(t *testing.T) {
	// Нулевая широта - валидная координата, а не пропущенное поле
	_, m, router := newTestHandler(t)

	m.group.EXPECT().
		ReportUserPosition(gomock.Any(), testUserID, 0.0, 9.5085).
		Return(nil).Times(1)

	reqBody := ReportPositionRequest{Latitude: 0, Longitude: 9.5085}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/positions", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReportDevicePosition_HTTP_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.group.EXPECT().
		ReportDevicePosition(gomock.Any(), "tracker-key", -34.6, -58.38).
		Return(nil).Times(1)

	reqBody := ReportPositionRequest{Latitude: -34.6, Longitude: -58.38}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/devices/position", bytes.NewBuffer(bodyBytes),
		map[string]string{"X-Device-Key": "tracker-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthCheck_HTTP(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestSessionAuth_MissingToken(t *testing.T) {
	// Без заголовка Authorization middleware отвечает 401 до обращения к redis
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	cfg := &config.Config{SessionKeyPrefix: "session:"}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", SessionAuthMiddleware(nil, cfg, logger), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/protected", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
