package estimator_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"campaigner/internal/estimator"
	"campaigner/pkg/domain"
	"campaigner/pkg/logger"
	"campaigner/pkg/serrors"
	mockstorage "campaigner/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	goleak.VerifyTestMain(m)
}

var (
	userID     = domain.UserID(uuid.MustParse("6b0c5e1e-0d55-4a4b-9d0b-6f7e1c7b2a01"))
	audienceID = domain.AudienceID(uuid.MustParse("0f3c2b8a-52a1-4f7e-8d57-0bb2d4a3c9e2"))
)

func newTestEstimator(t *testing.T) (*mockstorage.MockStorage, estimator.Estimator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	e, err := estimator.New(st, estimator.Options{ReadTimeout: time.Second})
	require.NoError(t, err)

	return st, e
}

func TestEstimator_Estimate_Defaults(t *testing.T) {
	st, e := newTestEstimator(t)

	st.EXPECT().AudienceByID(gomock.Any(), userID, audienceID).
		Return(&domain.Audience{ID: audienceID, SubscriberCount: 1000}, nil)
	st.EXPECT().RecentPerformanceRecords(gomock.Any(), userID, uint(10)).Return(nil, nil)

	res, err := e.Estimate(context.Background(), userID, estimator.Request{AudienceID: audienceID})
	require.NoError(t, err)
	require.Equal(t, 1000, res.Projection.AudienceSize)
	require.Equal(t, int64(220), res.Projection.EstimatedOpens)
	require.Equal(t, int64(28), res.Projection.EstimatedClicks)
	require.Equal(t, int64(1), res.Projection.EstimatedConversions)
	require.InDelta(t, 75, res.Projection.ImmediateRevenue, 1e-9)
	require.Equal(t, domain.ConfidenceLow, res.Projection.Confidence)
	require.Equal(t, 45, res.Projection.ConfidenceScore)
}

func TestEstimator_Estimate_UsesHistory(t *testing.T) {
	st, e := newTestEstimator(t)

	records := make([]domain.PerformanceRecord, 6)
	for i := range records {
		records[i] = domain.PerformanceRecord{SentCount: 1000, OpenedCount: 300, ClickedCount: 50, RevenueGenerated: 150}
	}
	st.EXPECT().AudienceByID(gomock.Any(), userID, audienceID).
		Return(&domain.Audience{ID: audienceID, SubscriberCount: 600}, nil)
	st.EXPECT().RecentPerformanceRecords(gomock.Any(), userID, uint(10)).Return(records, nil)

	res, err := e.Estimate(context.Background(), userID, estimator.Request{
		AudienceID: audienceID,
		Segment:    domain.SegmentGeneral,
	})
	require.NoError(t, err)
	require.Equal(t, 6, res.HistoricalCount)
	require.InDelta(t, 30, res.Base.OpenRate, 1e-9)
	require.Equal(t, domain.ConfidenceHigh, res.Projection.Confidence)
}

func TestEstimator_Estimate_InvalidSegmentSkipsReads(t *testing.T) {
	_, e := newTestEstimator(t)

	_, err := e.Estimate(context.Background(), userID, estimator.Request{
		AudienceID: audienceID,
		Segment:    "vip",
	})
	require.ErrorIs(t, err, serrors.ErrInvalidSegmentTag)
}

func TestEstimator_Estimate_Unavailable(t *testing.T) {
	t.Run("audience missing", func(t *testing.T) {
		st, e := newTestEstimator(t)
		st.EXPECT().AudienceByID(gomock.Any(), userID, audienceID).Return(nil, nil)
		st.EXPECT().RecentPerformanceRecords(gomock.Any(), userID, uint(10)).Return(nil, nil).AnyTimes()

		_, err := e.Estimate(context.Background(), userID, estimator.Request{AudienceID: audienceID})
		require.ErrorIs(t, err, serrors.ErrDataUnavailable)
	})

	t.Run("history read fails", func(t *testing.T) {
		st, e := newTestEstimator(t)
		boom := errors.New("boom")
		st.EXPECT().AudienceByID(gomock.Any(), userID, audienceID).
			Return(&domain.Audience{SubscriberCount: 10}, nil).AnyTimes()
		st.EXPECT().RecentPerformanceRecords(gomock.Any(), userID, uint(10)).Return(nil, boom)

		_, err := e.Estimate(context.Background(), userID, estimator.Request{AudienceID: audienceID})
		require.ErrorIs(t, err, serrors.ErrDataUnavailable)
		require.ErrorIs(t, err, boom)
	})
}

func TestEstimator_Estimate_StaleGenerationRejected(t *testing.T) {
	st, e := newTestEstimator(t)

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	audience := &domain.Audience{ID: audienceID, SubscriberCount: 500}

	gomock.InOrder(
		st.EXPECT().AudienceByID(gomock.Any(), userID, audienceID).
			DoAndReturn(func(context.Context, domain.UserID, domain.AudienceID) (*domain.Audience, error) {
				close(firstStarted)
				<-releaseFirst

				return audience, nil
			}),
		st.EXPECT().AudienceByID(gomock.Any(), userID, audienceID).Return(audience, nil),
	)
	st.EXPECT().RecentPerformanceRecords(gomock.Any(), userID, uint(10)).Return(nil, nil).Times(2)

	firstErr := make(chan error, 1)
	go func() {
		_, err := e.Estimate(context.Background(), userID, estimator.Request{
			AudienceID: audienceID,
			Generation: 1,
			Session:    "tab",
		})
		firstErr <- err
	}()
	<-firstStarted

	res, err := e.Estimate(context.Background(), userID, estimator.Request{
		AudienceID: audienceID,
		Generation: 2,
		Session:    "tab",
	})
	require.NoError(t, err)
	require.Equal(t, 500, res.Projection.AudienceSize)

	close(releaseFirst)
	err = <-firstErr
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestEstimator_Estimate_GenerationsAreScopedPerSession(t *testing.T) {
	st, e := newTestEstimator(t)

	st.EXPECT().AudienceByID(gomock.Any(), userID, audienceID).
		Return(&domain.Audience{SubscriberCount: 100}, nil).Times(3)
	st.EXPECT().RecentPerformanceRecords(gomock.Any(), userID, uint(10)).Return(nil, nil).Times(3)

	_, err := e.Estimate(context.Background(), userID, estimator.Request{AudienceID: audienceID, Generation: 5, Session: "a"})
	require.NoError(t, err)
	// a lower generation on another session is unaffected
	_, err = e.Estimate(context.Background(), userID, estimator.Request{AudienceID: audienceID, Generation: 1, Session: "b"})
	require.NoError(t, err)
	// untracked requests are never stale
	_, err = e.Estimate(context.Background(), userID, estimator.Request{AudienceID: audienceID, Session: "a"})
	require.NoError(t, err)
}

func TestEstimator_Estimate_RejectsLongSession(t *testing.T) {
	_, e := newTestEstimator(t)

	_, err := e.Estimate(context.Background(), userID, estimator.Request{
		AudienceID: audienceID,
		Generation: 1,
		Session:    strings.Repeat("s", estimator.MaxSessionLength+1),
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
