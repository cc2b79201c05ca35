package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/turma62/fundraiser/internal/apperrors"
	"github.com/turma62/fundraiser/internal/core/domain"
	"github.com/turma62/fundraiser/internal/dto"
	"github.com/turma62/fundraiser/internal/handlers"
	"github.com/turma62/fundraiser/internal/middleware"
	"github.com/turma62/fundraiser/internal/platform/config"
	"github.com/turma62/fundraiser/internal/realtime"
)

// --- Test Suite ---
type LedgerHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockLedger *MockLedgerService
	hub        *realtime.Hub
	cfg        *config.Config
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockLedger = new(MockLedgerService)
	suite.hub = realtime.NewHub(nil)
	suite.cfg = &config.Config{
		CampaignName:  "Turma 62 Solidária",
		CampaignGoal:  decimal.NewFromInt(5000),
		PixKey:        "62comissaolxii@gmail.com",
		ProofRequired: true,
		MaxProofBytes: 5 * 1024 * 1024,
	}

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterLedgerRoutes(v1, suite.cfg, suite.mockLedger, suite.hub, nil, nil)
}

// donationForm builds a multipart body; proof is omitted when data is nil.
func donationForm(fields map[string]string, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		_ = w.WriteField(k, v)
	}
	if data != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="proof"; filename="%s"`, filename))
		h.Set("Content-Type", contentType)
		part, _ := w.CreatePart(h)
		_, _ = part.Write(data)
	}
	_ = w.Close()
	return body, w.FormDataContentType()
}

func sampleRecord(name string, amount string) *domain.LedgerRecord {
	now := time.Now()
	return &domain.LedgerRecord{
		ID:          uuid.NewString(),
		DonorName:   name,
		Amount:      decimal.RequireFromString(amount),
		Method:      domain.MethodPix,
		Kind:        domain.KindDonation,
		OccurredAt:  now,
		AuditFields: domain.AuditFields{CreatedAt: now},
	}
}

// --- Test Cases ---

func (suite *LedgerHandlerTestSuite) TestGetCampaign() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/campaign", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CampaignResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("62comissaolxii@gmail.com", resp.PixKey)
	suite.Equal("R$ 5.000,00", resp.GoalFormatted)
	suite.True(resp.ProofRequired)
	suite.Equal(int64(5*1024*1024), resp.MaxProofBytes)
}

func (suite *LedgerHandlerTestSuite) TestGetPixQRCode() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/campaign/pix-qr.png", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("image/png", w.Header().Get("Content-Type"))
	suite.True(bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))
}

func (suite *LedgerHandlerTestSuite) TestGetSummary_Success() {
	suite.mockLedger.On("GetCampaignSummary", mock.Anything).Return(&domain.CampaignSummary{
		Total:        decimal.NewFromInt(150),
		Goal:         decimal.NewFromInt(5000),
		Progress:     decimal.NewFromInt(3),
		Participants: 2,
	}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/ledger/summary", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SummaryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("R$ 150,00", resp.TotalFormatted)
	suite.Equal(2, resp.Participants)
	suite.True(resp.Progress.Equal(decimal.NewFromInt(3)))
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestGetSummary_StorageError() {
	suite.mockLedger.On("GetCampaignSummary", mock.Anything).
		Return(nil, apperrors.NewStorageError("list records", fmt.Errorf("connection refused"))).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/ledger/summary", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Contains(w.Body.String(), "Não foi possível carregar")
}

func (suite *LedgerHandlerTestSuite) TestGetHistory_WithLimit() {
	records := []domain.LedgerRecord{*sampleRecord("Ana", "50"), *sampleRecord(domain.AnonymousDonor, "20")}
	suite.mockLedger.On("ListHistory", mock.Anything, 3).Return(records, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/ledger/history?limit=3", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.HistoryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Records, 2)
	suite.Equal("Ana", resp.Records[0].DonorName)
	suite.Equal("há menos de um minuto", resp.Records[0].TimeAgo)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestGetHistory_InvalidLimit() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/ledger/history?limit=abc", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "ListHistory", mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestSubmitDonation_Success() {
	png := []byte("\x89PNG\r\n\x1a\nfake-image")
	record := sampleRecord("Ana", "50.5")

	suite.mockLedger.On("SubmitDonation", mock.Anything, mock.MatchedBy(func(r dto.SubmitDonationRequest) bool {
		return r.DonorName == "Ana" &&
			r.Amount == "50,50" &&
			r.Proof != nil &&
			r.Proof.Filename == "comprovante.png" &&
			r.Proof.ContentType == "image/png" &&
			r.Proof.Size == int64(len(png)) &&
			bytes.Equal(r.Proof.Data, png)
	})).Return(record, nil).Once()

	body, contentType := donationForm(map[string]string{"donorName": "Ana", "amount": "50,50"}, "comprovante.png", "image/png", png)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/donations", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp struct {
		Message string             `json:"message"`
		Record  dto.RecordResponse `json:"record"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Doação registrada com sucesso! Muito obrigado! 🎉", resp.Message)
	suite.Equal(record.ID, resp.Record.ID)
	suite.Equal("R$ 50,50", resp.Record.AmountFormatted)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestSubmitDonation_NoProofPassesNil() {
	suite.mockLedger.On("SubmitDonation", mock.Anything, mock.MatchedBy(func(r dto.SubmitDonationRequest) bool {
		return r.Proof == nil && r.Amount == "20"
	})).Return(nil, apperrors.NewValidationError(apperrors.CodeProofRequired, "Por favor, anexe o comprovante de pagamento")).Once()

	body, contentType := donationForm(map[string]string{"amount": "20"}, "", "", nil)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/donations", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp handlers.ErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(apperrors.CodeProofRequired, resp.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestSubmitDonation_InvalidAmount() {
	suite.mockLedger.On("SubmitDonation", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError(apperrors.CodeAmountInvalid, "Por favor, insira um valor válido")).Once()

	body, contentType := donationForm(map[string]string{"amount": "abc"}, "p.png", "image/png", []byte("x"))
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/donations", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp handlers.ErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(apperrors.CodeAmountInvalid, resp.Code)
	suite.Equal("Por favor, insira um valor válido", resp.Error)
}

func (suite *LedgerHandlerTestSuite) TestSubmitDonation_StorageError() {
	suite.mockLedger.On("SubmitDonation", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewStorageError("upload proof", fmt.Errorf("disk full"))).Once()

	body, contentType := donationForm(map[string]string{"amount": "10"}, "p.png", "image/png", []byte("x"))
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/donations", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	var resp handlers.ErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Erro ao registrar doação. Tente novamente.", resp.Error)
}

func (suite *LedgerHandlerTestSuite) TestSubmitDonation_RateLimited() {
	lim, err := middleware.NewMemoryLimiter("2-M")
	suite.Require().NoError(err)

	router := gin.New()
	handlers.RegisterLedgerRoutes(router.Group("/api/v1"), suite.cfg, suite.mockLedger, suite.hub, lim, nil)
	suite.mockLedger.On("SubmitDonation", mock.Anything, mock.Anything).Return(sampleRecord("Ana", "10"), nil).Twice()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		body, contentType := donationForm(map[string]string{"amount": "10"}, "p.png", "image/png", []byte("x"))
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/donations", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	suite.Equal([]int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestStreamLedger_RefreshesOnChange() {
	var refreshes atomic.Int32
	suite.mockLedger.On("GetCampaignSummary", mock.Anything).Return(&domain.CampaignSummary{
		Total:    decimal.NewFromInt(10),
		Goal:     decimal.NewFromInt(5000),
		Progress: decimal.RequireFromString("0.2"),
	}, nil).Run(func(mock.Arguments) { refreshes.Add(1) })
	suite.mockLedger.On("ListHistory", mock.Anything, 0).Return([]domain.LedgerRecord{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/api/v1/ledger/stream", nil)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		suite.router.ServeHTTP(w, req)
		close(done)
	}()

	suite.Eventually(func() bool {
		return refreshes.Load() == 1 && suite.hub.Len() == 1
	}, time.Second, 5*time.Millisecond)

	suite.hub.Publish(domain.ChangeEvent{Op: domain.ChangeInsert, RecordID: uuid.NewString()})

	suite.Eventually(func() bool { return refreshes.Load() == 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		suite.FailNow("stream did not stop after the client went away")
	}

	suite.Equal("text/event-stream", w.Header().Get("Content-Type"))
	suite.Equal(2, strings.Count(w.Body.String(), "event:summary"))
	suite.Equal(2, strings.Count(w.Body.String(), "event:history"))
	suite.Equal(0, suite.hub.Len())
}

// --- Run Test Suite ---
func TestLedgerHandler(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
