package v1handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campaigner/internal/api/handler/v1handler"
	"campaigner/internal/campaign"
	mockcampaign "campaigner/internal/campaign/mock"
	mockeditor "campaigner/internal/editor/mock"
	"campaigner/internal/estimator"
	mockestimator "campaigner/internal/estimator/mock"
	mockreporting "campaigner/internal/reporting/mock"
	"campaigner/pkg/demo"
	"campaigner/pkg/domain"
	"campaigner/pkg/estimate"
	"campaigner/pkg/serrors"
	"campaigner/pkg/storage"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testUserID     = domain.UserID(uuid.MustParse("6b0c5e1e-0d55-4a4b-9d0b-6f7e1c7b2a01"))
	testAudienceID = domain.AudienceID(uuid.MustParse("0f3c2b8a-52a1-4f7e-8d57-0bb2d4a3c9e2"))
	testCampaignID = domain.CampaignID(uuid.MustParse("9a1d7d2e-3b4c-4f4e-8c1a-2f6b5d7e8a90"))
)

type testDeps struct {
	campaigns *mockcampaign.MockManager
	estimator *mockestimator.MockEstimator
	reporter  *mockreporting.MockReporter
	editor    *mockeditor.MockEditor
	router    http.Handler
}

func newTestRouter(t *testing.T) testDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := testDeps{
		campaigns: mockcampaign.NewMockManager(ctrl),
		estimator: mockestimator.NewMockEstimator(ctrl),
		reporter:  mockreporting.NewMockReporter(ctrl),
		editor:    mockeditor.NewMockEditor(ctrl),
	}
	h := v1handler.New(v1handler.Deps{
		Campaigns: d.campaigns,
		Estimator: d.estimator,
		Reporter:  d.reporter,
		Editor:    d.editor,
	})

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), v1handler.UserIDKey, testUserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	h.Routes(r)
	d.router = r

	return d
}

func (d testDeps) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)

	return rec
}

func TestCreateEstimate(t *testing.T) {
	d := newTestRouter(t)

	d.estimator.EXPECT().Estimate(gomock.Any(), testUserID, estimator.Request{
		AudienceID: testAudienceID,
		Subject:    "Save 20% today!",
		Segment:    domain.SegmentHighValue,
		Generation: 3,
		Session:    "tab-1",
	}).Return(estimate.Result{
		Projection: domain.Projection{
			AudienceSize:     1000,
			EstimatedOpens:   300,
			ThirtyDayRevenue: 303.75,
			Confidence:       domain.ConfidenceLow,
			ConfidenceScore:  45,
		},
		Base:         estimate.DefaultRates(),
		Boost:        estimate.SegmentBoost{OpenRate: 1.15, ConversionRate: 1.25},
		SubjectBoost: 1.2474,
	}, nil)

	rec := d.do(http.MethodPost, "/estimates", `{
		"audienceId": "0f3c2b8a-52a1-4f7e-8d57-0bb2d4a3c9e2",
		"subject": "Save 20% today!",
		"segment": "high-value",
		"generation": 3,
		"session": "tab-1"
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res v1handler.EstimateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.True(t, res.Available)
	require.Equal(t, uint64(3), res.Generation)
	require.NotNil(t, res.Projection)
	require.Equal(t, int64(300), res.Projection.EstimatedOpens)
	require.Equal(t, domain.ConfidenceLow, res.Projection.Confidence)
	require.InDelta(t, 1.15, res.SegmentBoost.OpenRate, 1e-9)
}

func TestCreateEstimate_Unavailable(t *testing.T) {
	d := newTestRouter(t)

	d.estimator.EXPECT().Estimate(gomock.Any(), testUserID, gomock.Any()).
		Return(estimate.Result{}, serrors.With(serrors.ErrDataUnavailable, "audience not found"))

	rec := d.do(http.MethodPost, "/estimates", `{"audienceId":"0f3c2b8a-52a1-4f7e-8d57-0bb2d4a3c9e2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"available":false,"historicalCount":0}`, rec.Body.String())
}

func TestCreateEstimate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
		code   string
	}{
		{
			name:   "stale generation",
			body:   `{"audienceId":"0f3c2b8a-52a1-4f7e-8d57-0bb2d4a3c9e2","generation":1}`,
			err:    serrors.With(serrors.ErrConflict, "stale estimate"),
			status: http.StatusConflict,
			code:   "CONFLICT",
		},
		{
			name:   "unknown segment",
			body:   `{"audienceId":"0f3c2b8a-52a1-4f7e-8d57-0bb2d4a3c9e2","segment":"vip"}`,
			err:    serrors.With(serrors.ErrInvalidSegmentTag, "unknown segment tag vip"),
			status: http.StatusBadRequest,
			code:   "INVALID_SEGMENT_TAG",
		},
		{
			name:   "missing audience",
			body:   `{"subject":"hi"}`,
			status: http.StatusBadRequest,
			code:   "BAD_REQUEST",
		},
		{
			name:   "malformed body",
			body:   `{"audienceId":`,
			status: http.StatusBadRequest,
			code:   "BAD_REQUEST",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestRouter(t)
			if tt.err != nil {
				d.estimator.EXPECT().Estimate(gomock.Any(), testUserID, gomock.Any()).
					Return(estimate.Result{}, tt.err)
			}

			rec := d.do(http.MethodPost, "/estimates", tt.body)
			require.Equal(t, tt.status, rec.Code)

			var body v1handler.ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, tt.code, body.Code)
		})
	}
}

func TestCampaignRoutes(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		d := newTestRouter(t)
		rec := d.do(http.MethodGet, "/campaigns/not-a-uuid", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		d := newTestRouter(t)
		d.campaigns.EXPECT().Campaign(gomock.Any(), testUserID, testCampaignID).
			Return(nil, serrors.With(serrors.ErrNotFound, "campaign not found"))

		rec := d.do(http.MethodGet, "/campaigns/"+testCampaignID.String(), "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.JSONEq(t, `{"code":"NOT_FOUND","message":"campaign not found"}`, rec.Body.String())
	})

	t.Run("list filters by status", func(t *testing.T) {
		d := newTestRouter(t)
		d.campaigns.EXPECT().Campaigns(gomock.Any(), testUserID, domain.CampaignStatusDraft).Return(nil, nil)

		rec := d.do(http.MethodGet, "/campaigns?status=draft", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"items":[]}`, rec.Body.String())
	})

	t.Run("update clears audience on null", func(t *testing.T) {
		d := newTestRouter(t)
		name := "Spring sale"
		d.campaigns.EXPECT().UpdateCampaign(gomock.Any(), testUserID, testCampaignID, storage.CampaignUpdates{
			Name:          &name,
			ClearAudience: true,
		}).Return(&domain.Campaign{ID: testCampaignID, Name: name}, nil)

		rec := d.do(http.MethodPut, "/campaigns/"+testCampaignID.String(), `{"name":"Spring sale","audienceId":null}`)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("update sets audience", func(t *testing.T) {
		d := newTestRouter(t)
		aid := testAudienceID
		d.campaigns.EXPECT().UpdateCampaign(gomock.Any(), testUserID, testCampaignID, storage.CampaignUpdates{
			AudienceID: &aid,
		}).Return(&domain.Campaign{ID: testCampaignID, AudienceID: &aid}, nil)

		rec := d.do(http.MethodPut, "/campaigns/"+testCampaignID.String(),
			`{"audienceId":"0f3c2b8a-52a1-4f7e-8d57-0bb2d4a3c9e2"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("save design", func(t *testing.T) {
		d := newTestRouter(t)
		d.campaigns.EXPECT().SaveDesign(gomock.Any(), testUserID, testCampaignID,
			json.RawMessage(`{"page":{"rows":[]}}`), "<p>hi</p>").
			Return(&domain.Campaign{ID: testCampaignID, EmailHTML: "<p>hi</p>"}, nil)

		rec := d.do(http.MethodPut, "/campaigns/"+testCampaignID.String()+"/design",
			`{"json":{"page":{"rows":[]}},"html":"<p>hi</p>"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("design falls back to starter", func(t *testing.T) {
		d := newTestRouter(t)
		d.campaigns.EXPECT().Design(gomock.Any(), testUserID, testCampaignID).Return(campaign.Design{
			JSON:    json.RawMessage(`{"page":{}}`),
			Status:  domain.DesignStatusReady,
			Initial: true,
		}, nil)

		rec := d.do(http.MethodGet, "/campaigns/"+testCampaignID.String()+"/design", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"json":{"page":{}},"html":"","status":"ready","initial":true}`, rec.Body.String())
	})

	t.Run("import template is accepted", func(t *testing.T) {
		d := newTestRouter(t)
		d.campaigns.EXPECT().ImportTemplate(gomock.Any(), testUserID, testCampaignID, "<html></html>").
			Return(&domain.Campaign{ID: testCampaignID, DesignStatus: domain.DesignStatusConverting}, nil)

		rec := d.do(http.MethodPost, "/campaigns/"+testCampaignID.String()+"/template", `{"html":"<html></html>"}`)
		require.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("predict", func(t *testing.T) {
		d := newTestRouter(t)
		d.campaigns.EXPECT().Predict(gomock.Any(), testUserID, testCampaignID).
			Return(&domain.PredictionSnapshot{CampaignID: testCampaignID, PredictedRevenue: 303.75}, nil)

		rec := d.do(http.MethodPost, "/campaigns/"+testCampaignID.String()+"/predictions", "")
		require.Equal(t, http.StatusCreated, rec.Code)

		var res v1handler.PredictionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		require.True(t, res.Available)
		require.NotNil(t, res.Prediction)
		require.InDelta(t, 303.75, res.Prediction.PredictedRevenue, 1e-9)
	})

	t.Run("predict without data", func(t *testing.T) {
		d := newTestRouter(t)
		d.campaigns.EXPECT().Predict(gomock.Any(), testUserID, testCampaignID).
			Return(nil, fmt.Errorf("could not estimate campaign: %w",
				serrors.With(serrors.ErrDataUnavailable, "estimation inputs unavailable")))

		rec := d.do(http.MethodPost, "/campaigns/"+testCampaignID.String()+"/predictions", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"available":false}`, rec.Body.String())
	})

	t.Run("delete", func(t *testing.T) {
		d := newTestRouter(t)
		d.campaigns.EXPECT().DeleteCampaign(gomock.Any(), testUserID, testCampaignID).Return(nil)

		rec := d.do(http.MethodDelete, "/campaigns/"+testCampaignID.String(), "")
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestAudienceRoutes(t *testing.T) {
	d := newTestRouter(t)
	d.campaigns.EXPECT().CreateAudience(gomock.Any(), testUserID, domain.Audience{
		Name:            "VIP",
		SubscriberCount: 500,
	}).Return(&domain.Audience{ID: testAudienceID, Name: "VIP", SubscriberCount: 500}, nil)

	rec := d.do(http.MethodPost, "/audiences", `{"name":"VIP","subscriberCount":500}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var a domain.Audience
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
	require.Equal(t, testAudienceID, a.ID)

	rec = d.do(http.MethodPost, "/audiences", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportingRoutes(t *testing.T) {
	t.Run("insight missing", func(t *testing.T) {
		d := newTestRouter(t)
		d.reporter.EXPECT().Insight(gomock.Any(), testUserID).Return(estimate.Insight{}, false, nil)

		rec := d.do(http.MethodGet, "/analytics/insight", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"available":false}`, rec.Body.String())
	})

	t.Run("recommendations default product", func(t *testing.T) {
		d := newTestRouter(t)
		d.reporter.EXPECT().Recommendations(testUserID, demo.DefaultProduct).Return([]demo.Recommendation{
			{ProductID: "PROD-202", ProductName: "Smartphone Case", Confidence: 0.8},
		})

		rec := d.do(http.MethodGet, "/demo/recommendations", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var res v1handler.RecommendationList
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		require.True(t, res.Demo)
		require.Equal(t, demo.DefaultProduct, res.ProductID)
		require.Len(t, res.Items, 1)
	})
}

func TestCreateEditorToken(t *testing.T) {
	t.Run("passes token through", func(t *testing.T) {
		d := newTestRouter(t)
		d.editor.EXPECT().Token(gomock.Any(), testUserID).
			Return(json.RawMessage(`{"access_token":"abc","expires_in":300}`), nil)

		rec := d.do(http.MethodPost, "/editor/token", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"access_token":"abc","expires_in":300}`, rec.Body.String())
	})

	t.Run("credentials missing", func(t *testing.T) {
		d := newTestRouter(t)
		d.editor.EXPECT().Token(gomock.Any(), testUserID).
			Return(nil, serrors.With(serrors.ErrConfigurationMissing, "editor credentials not configured"))

		rec := d.do(http.MethodPost, "/editor/token", "")
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
