package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"campaigner/pkg/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PgAudience struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Name            string `db:"name"`
	Description     string `db:"description"`
	Criteria        string `db:"criteria"`
	SubscriberCount int    `db:"subscriber_count"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgAudience) ToDomain() (*domain.Audience, error) {
	criteria := map[string]any{}
	if p.Criteria != "" {
		if err := json.Unmarshal([]byte(p.Criteria), &criteria); err != nil {
			return nil, fmt.Errorf("could not unmarshal audience criteria: %w", err)
		}
	}

	return &domain.Audience{
		ID:              domain.AudienceID(p.ID),
		UserID:          domain.UserID(p.UserID),
		Name:            p.Name,
		Description:     p.Description,
		Criteria:        criteria,
		SubscriberCount: p.SubscriberCount,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}, nil
}

func (p *PgAudience) FromDomain(audience domain.Audience) error {
	criteria, err := marshalCriteria(audience.Criteria)
	if err != nil {
		return err
	}

	*p = PgAudience{
		ID:              uuid.UUID(audience.ID),
		UserID:          uuid.UUID(audience.UserID),
		Name:            audience.Name,
		Description:     audience.Description,
		Criteria:        criteria,
		SubscriberCount: max(audience.SubscriberCount, 0),
		CreatedAt:       audience.CreatedAt,
		UpdatedAt:       audience.UpdatedAt,
	}

	return nil
}

func marshalCriteria(criteria map[string]any) (string, error) {
	if criteria == nil {
		return "{}", nil
	}
	b, err := json.Marshal(criteria)
	if err != nil {
		return "", fmt.Errorf("could not marshal audience criteria: %w", err)
	}

	return string(b), nil
}

type PgCampaign struct {
	ID         uuid.UUID     `db:"id"          goqu:"skipinsert"`
	UserID     uuid.UUID     `db:"user_id"`
	AudienceID uuid.NullUUID `db:"audience_id"`

	Name        string `db:"name"`
	Subject     string `db:"subject"`
	PreviewText string `db:"preview_text"`
	Status      string `db:"status"`
	Segment     string `db:"segment"`

	DesignJSON   sql.NullString `db:"design_json"`
	DesignStatus string         `db:"design_status"`
	EmailHTML    string         `db:"email_html"`

	ScheduledAt sql.NullTime `db:"scheduled_at"`
	SentAt      sql.NullTime `db:"sent_at"`
	CreatedAt   time.Time    `db:"created_at"   goqu:"skipinsert"`
	UpdatedAt   time.Time    `db:"updated_at"   goqu:"skipinsert"`
}

func (p *PgCampaign) ToDomain() *domain.Campaign {
	c := &domain.Campaign{
		ID:           domain.CampaignID(p.ID),
		UserID:       domain.UserID(p.UserID),
		Name:         p.Name,
		Subject:      p.Subject,
		PreviewText:  p.PreviewText,
		Status:       domain.CampaignStatus(p.Status),
		Segment:      domain.Segment(p.Segment),
		DesignStatus: domain.DesignStatus(p.DesignStatus),
		EmailHTML:    p.EmailHTML,
		ScheduledAt:  p.ScheduledAt.Time,
		SentAt:       p.SentAt.Time,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.AudienceID.Valid {
		id := domain.AudienceID(p.AudienceID.UUID)
		c.AudienceID = &id
	}
	if p.DesignJSON.Valid {
		c.DesignJSON = json.RawMessage(p.DesignJSON.String)
	}

	return c
}

func (p *PgCampaign) FromDomain(c domain.Campaign) {
	*p = PgCampaign{
		ID:           uuid.UUID(c.ID),
		UserID:       uuid.UUID(c.UserID),
		Name:         c.Name,
		Subject:      c.Subject,
		PreviewText:  c.PreviewText,
		Status:       string(c.Status),
		Segment:      string(c.Segment),
		DesignStatus: string(c.DesignStatus),
		EmailHTML:    c.EmailHTML,
		DesignJSON: sql.NullString{
			String: string(c.DesignJSON),
			Valid:  len(c.DesignJSON) > 0,
		},
		ScheduledAt: sql.NullTime{Time: c.ScheduledAt, Valid: !c.ScheduledAt.IsZero()},
		SentAt:      sql.NullTime{Time: c.SentAt, Valid: !c.SentAt.IsZero()},
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.AudienceID != nil {
		p.AudienceID = uuid.NullUUID{UUID: uuid.UUID(*c.AudienceID), Valid: true}
	}
	if p.Status == "" {
		p.Status = string(domain.CampaignStatusDraft)
	}
	if p.Segment == "" {
		p.Segment = string(domain.SegmentGeneral)
	}
	if p.DesignStatus == "" {
		p.DesignStatus = string(domain.DesignStatusReady)
	}
}

type PgPerformanceRecord struct {
	ID         int64     `db:"id"          goqu:"skipinsert"`
	UserID     uuid.UUID `db:"user_id"`
	CampaignID uuid.UUID `db:"campaign_id"`

	SentCount         int64           `db:"sent_count"`
	DeliveredCount    int64           `db:"delivered_count"`
	OpenedCount       int64           `db:"opened_count"`
	ClickedCount      int64           `db:"clicked_count"`
	BouncedCount      int64           `db:"bounced_count"`
	UnsubscribedCount int64           `db:"unsubscribed_count"`
	RevenueGenerated  decimal.Decimal `db:"revenue_generated"`

	UpdatedAt time.Time `db:"updated_at"`
}

func (p *PgPerformanceRecord) ToDomain() domain.PerformanceRecord {
	return domain.PerformanceRecord{
		ID:                p.ID,
		UserID:            domain.UserID(p.UserID),
		CampaignID:        domain.CampaignID(p.CampaignID),
		SentCount:         p.SentCount,
		DeliveredCount:    p.DeliveredCount,
		OpenedCount:       p.OpenedCount,
		ClickedCount:      p.ClickedCount,
		BouncedCount:      p.BouncedCount,
		UnsubscribedCount: p.UnsubscribedCount,
		RevenueGenerated:  p.RevenueGenerated.InexactFloat64(),
		UpdatedAt:         p.UpdatedAt,
	}
}

func (p *PgPerformanceRecord) FromDomain(r domain.PerformanceRecord) {
	updatedAt := r.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	*p = PgPerformanceRecord{
		ID:                r.ID,
		UserID:            uuid.UUID(r.UserID),
		CampaignID:        uuid.UUID(r.CampaignID),
		SentCount:         r.SentCount,
		DeliveredCount:    r.DeliveredCount,
		OpenedCount:       r.OpenedCount,
		ClickedCount:      r.ClickedCount,
		BouncedCount:      r.BouncedCount,
		UnsubscribedCount: r.UnsubscribedCount,
		RevenueGenerated:  decimal.NewFromFloat(r.RevenueGenerated).Round(2),
		UpdatedAt:         updatedAt,
	}
}

type PgSubscriber struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Email        string    `db:"email"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Status       string    `db:"status"`
	Tags         string    `db:"tags"`
	SubscribedAt time.Time `db:"subscribed_at"`
}

func (p *PgSubscriber) ToDomain() (*domain.Subscriber, error) {
	var tags []string
	if p.Tags != "" {
		if err := json.Unmarshal([]byte(p.Tags), &tags); err != nil {
			return nil, fmt.Errorf("could not unmarshal subscriber tags: %w", err)
		}
	}

	return &domain.Subscriber{
		ID:           domain.SubscriberID(p.ID),
		UserID:       domain.UserID(p.UserID),
		Email:        p.Email,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Status:       domain.SubscriberStatus(p.Status),
		Tags:         tags,
		SubscribedAt: p.SubscribedAt,
	}, nil
}

func (p *PgSubscriber) FromDomain(s domain.Subscriber) error {
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("could not marshal subscriber tags: %w", err)
	}

	subscribedAt := s.SubscribedAt
	if subscribedAt.IsZero() {
		subscribedAt = time.Now().UTC()
	}
	status := s.Status
	if status == "" {
		status = domain.SubscriberStatusActive
	}

	*p = PgSubscriber{
		ID:           uuid.UUID(s.ID),
		UserID:       uuid.UUID(s.UserID),
		Email:        s.Email,
		FirstName:    s.FirstName,
		LastName:     s.LastName,
		Status:       string(status),
		Tags:         string(b),
		SubscribedAt: subscribedAt,
	}

	return nil
}

type PgPrediction struct {
	ID         uuid.UUID `db:"id"          goqu:"skipinsert"`
	UserID     uuid.UUID `db:"user_id"`
	CampaignID uuid.UUID `db:"campaign_id"`

	PredictedRevenue decimal.Decimal `db:"predicted_revenue"`
	ConfidenceScore  int             `db:"confidence_score"`
	Factors          string          `db:"factors"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgPrediction) ToDomain() (*domain.PredictionSnapshot, error) {
	var factors domain.PredictionFactors
	if err := json.Unmarshal([]byte(p.Factors), &factors); err != nil {
		return nil, fmt.Errorf("could not unmarshal prediction factors: %w", err)
	}

	return &domain.PredictionSnapshot{
		ID:               domain.PredictionID(p.ID),
		UserID:           domain.UserID(p.UserID),
		CampaignID:       domain.CampaignID(p.CampaignID),
		PredictedRevenue: p.PredictedRevenue.InexactFloat64(),
		ConfidenceScore:  p.ConfidenceScore,
		Factors:          factors,
		CreatedAt:        p.CreatedAt,
	}, nil
}

func (p *PgPrediction) FromDomain(s domain.PredictionSnapshot) error {
	factors, err := json.Marshal(s.Factors)
	if err != nil {
		return fmt.Errorf("could not marshal prediction factors: %w", err)
	}

	*p = PgPrediction{
		ID:               uuid.UUID(s.ID),
		UserID:           uuid.UUID(s.UserID),
		CampaignID:       uuid.UUID(s.CampaignID),
		PredictedRevenue: decimal.NewFromFloat(s.PredictedRevenue).Round(2),
		ConfidenceScore:  s.ConfidenceScore,
		Factors:          string(factors),
		CreatedAt:        s.CreatedAt,
	}

	return nil
}
