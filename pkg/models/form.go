package models

import (
	"strings"
)

// ServiceTech unlocks the timeline and scope questions.
const ServiceTech = "tech"

// Option is a selectable value rendered by the contact form.
type Option struct {
	Value string
	Label string
	Icon  string
}

var (
	ServiceOptions = []Option{
		{Value: "branding", Label: "Branding & Identity", Icon: "palette"},
		{Value: "campaign", Label: "Campaign Strategy", Icon: "megaphone"},
		{Value: "performance", Label: "Performance Marketing", Icon: "trending-up"},
		{Value: ServiceTech, Label: "Custom Tech Solutions", Icon: "settings"},
	}
	IssueOptions = []Option{
		{Value: "visibility", Label: "Low brand visibility"},
		{Value: "acos", Label: "High ACOS / wasted ad spend"},
		{Value: "conversion", Label: "Poor conversion rates"},
		{Value: "growth", Label: "Stagnant sales growth"},
		{Value: "launch", Label: "Launching a new product"},
		{Value: "competition", Label: "Losing ground to competitors"},
	}
	BudgetOptions = []Option{
		{Value: "under-5k", Label: "Under $5k / month"},
		{Value: "5k-15k", Label: "$5k - $15k / month"},
		{Value: "15k-50k", Label: "$15k - $50k / month"},
		{Value: "50k-plus", Label: "$50k+ / month"},
	}
	TimelineOptions = []Option{
		{Value: "urgent", Label: "Urgent (1-2 weeks)"},
		{Value: "standard", Label: "Standard (1-2 months)"},
		{Value: "flexible", Label: "Flexible (3+ months)"},
	}
	ScopeOptions = []Option{
		{Value: "small", Label: "Small project"},
		{Value: "medium", Label: "Medium project"},
		{Value: "large", Label: "Large project"},
		{Value: "enterprise", Label: "Enterprise solution"},
	}
)

// ContactForm is the data collected by the contact form step.
type ContactForm struct {
	Name     string   `json:"name" form:"name" validate:"required,min=2,max=120"`
	Email    string   `json:"email" form:"email" validate:"required,email,max=254"`
	Services []string `json:"services" form:"services" validate:"required,min=1,dive,oneof=branding campaign performance tech"`
	Issues   []string `json:"issues,omitempty" form:"issues" validate:"omitempty,dive,oneof=visibility acos conversion growth launch competition"`
	Budget   string   `json:"budget,omitempty" form:"budget" validate:"omitempty,oneof=under-5k 5k-15k 15k-50k 50k-plus"`
	Message  string   `json:"message" form:"message" validate:"required,min=10,max=5000"`
	Timeline string   `json:"timeline,omitempty" form:"timeline" validate:"omitempty,oneof=urgent standard flexible"`
	Scope    string   `json:"scope,omitempty" form:"scope" validate:"omitempty,oneof=small medium large enterprise"`
}

// Normalize trims free text, drops blank and repeated tags, and clears the
// tech-only questions when the tech service is not selected.
func (f *ContactForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Message = strings.TrimSpace(f.Message)
	f.Budget = strings.TrimSpace(f.Budget)
	f.Timeline = strings.TrimSpace(f.Timeline)
	f.Scope = strings.TrimSpace(f.Scope)
	f.Services = uniqueTags(f.Services)
	f.Issues = uniqueTags(f.Issues)

	if !f.HasService(ServiceTech) {
		f.Timeline = ""
		f.Scope = ""
	}
}

// HasService reports whether the service tag is selected.
func (f ContactForm) HasService(value string) bool {
	for _, s := range f.Services {
		if s == value {
			return true
		}
	}
	return false
}

// HasIssue reports whether the challenge tag is selected.
func (f ContactForm) HasIssue(value string) bool {
	for _, s := range f.Issues {
		if s == value {
			return true
		}
	}
	return false
}

// ServiceLabels returns display labels for the selected services.
func (f ContactForm) ServiceLabels() []string {
	return labels(ServiceOptions, f.Services)
}

// IssueLabels returns display labels for the selected challenges.
func (f ContactForm) IssueLabels() []string {
	return labels(IssueOptions, f.Issues)
}

// Label looks up the display label for value, falling back to the value itself.
func Label(options []Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

func labels(options []Option, values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, Label(options, v))
	}
	return out
}

func uniqueTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
