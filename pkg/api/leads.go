package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rightimage-site/pkg/metrics"
	"rightimage-site/pkg/models"
	"rightimage-site/pkg/utils"
	"rightimage-site/pkg/validation"
)

// SubmitLead accepts a finished wizard as JSON, for clients that run the
// quiz and form themselves. Notification runs in the background, so a
// valid lead is accepted even when email delivery later fails.
func (h *Handlers) SubmitLead(c *gin.Context) {
	var req models.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn().Err(err).Msg("Error parsing lead JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	req.Form.Normalize()
	errs := validation.Struct(req.Form)
	if req.Quiz != nil {
		for field, msg := range validation.Struct(req.Quiz) {
			if errs == nil {
				errs = validation.Errors{}
			}
			errs[field] = msg
		}
		// A partial quiz counts as skipped.
		if !req.Quiz.Complete() {
			req.Quiz = nil
		}
	}
	if !errs.Empty() {
		metrics.ObserveValidation(errs.Fields())
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	lead := models.Lead{
		ID:          h.newID(),
		Quiz:        req.Quiz,
		Form:        req.Form,
		SubmittedAt: h.now().UTC(),
	}
	h.accept(lead)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"lead_id": lead.ID,
		"message": "Submission received and processing",
	})
}

// accept counts the lead and hands it to the notifier.
func (h *Handlers) accept(lead models.Lead) {
	metrics.LeadsSubmittedTotal.Inc()
	h.logger.Info().
		Str("lead_id", lead.ID).
		Str("email_hash", utils.RedactEmail(lead.Form.Email)).
		Strs("services", lead.Form.Services).
		Bool("quiz", lead.Quiz != nil).
		Msg("Lead accepted")
	h.submission.Dispatch(lead)
}
