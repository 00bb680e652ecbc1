package campaign

import (
	"campaigner/pkg/domain"

	"github.com/riverqueue/river"
)

// ConvertTemplateArgs asks the worker to turn imported HTML into an editor
// design for a campaign.
type ConvertTemplateArgs struct {
	UserID     domain.UserID     `json:"user_id"`
	CampaignID domain.CampaignID `json:"campaign_id"`
	HTML       string            `json:"html"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the conversion worker.
func (args ConvertTemplateArgs) Kind() string { return "ConvertTemplateJob" }

// InsertOpts returns the River options used when enqueueing the job.
func (args ConvertTemplateArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
}
