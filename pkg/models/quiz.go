package models

// Quiz question identifiers, used as form field names.
const (
	QuestionBrandStatus = "brandStatus"
	QuestionPriorities  = "priorities"
)

// QuizOption is a single selectable answer.
type QuizOption struct {
	Value       string
	Label       string
	Description string
	Icon        string
}

// QuizQuestion is one step of the brand quiz.
type QuizQuestion struct {
	ID       string
	Question string
	Options  []QuizOption
}

var quizQuestions = []QuizQuestion{
	{
		ID:       QuestionBrandStatus,
		Question: "Where is your brand currently?",
		Options: []QuizOption{
			{Value: "starting", Label: "Just getting started", Description: "New business or rebrand", Icon: "rocket"},
			{Value: "growing", Label: "Growing and scaling", Description: "Established but expanding", Icon: "trending-up"},
			{Value: "established", Label: "Well-established", Description: "Looking to optimize", Icon: "building"},
			{Value: "transforming", Label: "Transforming", Description: "Major pivot or evolution", Icon: "refresh"},
		},
	},
	{
		ID:       QuestionPriorities,
		Question: "What matters most to you?",
		Options: []QuizOption{
			{Value: "awareness", Label: "Brand awareness", Description: "Get noticed in the market", Icon: "eye"},
			{Value: "conversion", Label: "Lead generation", Description: "Convert visitors to customers", Icon: "target"},
			{Value: "efficiency", Label: "Operational efficiency", Description: "Streamline processes", Icon: "zap"},
			{Value: "innovation", Label: "Innovation & growth", Description: "Stay ahead of competition", Icon: "lightbulb"},
		},
	},
}

// QuizQuestions returns the quiz questions in the order they are asked.
func QuizQuestions() []QuizQuestion {
	out := make([]QuizQuestion, len(quizQuestions))
	copy(out, quizQuestions)
	return out
}

// QuizAnswers holds the two quiz selections.
type QuizAnswers struct {
	BrandStatus string `json:"brandStatus" form:"brandStatus" validate:"omitempty,oneof=starting growing established transforming"`
	Priorities  string `json:"priorities" form:"priorities" validate:"omitempty,oneof=awareness conversion efficiency innovation"`
}

// Complete reports whether both questions are answered.
func (a QuizAnswers) Complete() bool {
	return a.BrandStatus != "" && a.Priorities != ""
}

// Get returns the answer recorded for a question ID.
func (a QuizAnswers) Get(questionID string) string {
	switch questionID {
	case QuestionBrandStatus:
		return a.BrandStatus
	case QuestionPriorities:
		return a.Priorities
	}
	return ""
}

// BrandStatusLabel returns the human label for the brand status answer.
func (a QuizAnswers) BrandStatusLabel() string {
	return OptionLabel(QuestionBrandStatus, a.BrandStatus)
}

// PrioritiesLabel returns the human label for the priority answer.
func (a QuizAnswers) PrioritiesLabel() string {
	return OptionLabel(QuestionPriorities, a.Priorities)
}

// ValidAnswer reports whether value is one of the options for questionID.
func ValidAnswer(questionID, value string) bool {
	for _, q := range quizQuestions {
		if q.ID != questionID {
			continue
		}
		for _, o := range q.Options {
			if o.Value == value {
				return true
			}
		}
	}
	return false
}

// OptionLabel maps an answer value to its label, falling back to the value.
func OptionLabel(questionID, value string) string {
	for _, q := range quizQuestions {
		if q.ID != questionID {
			continue
		}
		for _, o := range q.Options {
			if o.Value == value {
				return o.Label
			}
		}
	}
	return value
}
