// Package content loads the site copy rendered by the page templates.
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the location of the site copy inside the web filesystem.
const DefaultPath = "content/site.yaml"

// DefaultCarouselInterval is used when no interval is configured.
const DefaultCarouselInterval = 5 * time.Second

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type NavItem struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

type Brand struct {
	Name    string `yaml:"name"`
	Short   string `yaml:"short"`
	Suffix  string `yaml:"suffix"`
	Logo    string `yaml:"logo"`
	Email   string `yaml:"email"`
	Tagline string `yaml:"tagline"`
}

type FooterCTA struct {
	Lines []string `yaml:"lines"`
	Body  string   `yaml:"body"`
	CTA   Link     `yaml:"cta"`
}

type Hero struct {
	Headline    string `yaml:"headline"`
	Highlight   string `yaml:"highlight"`
	Tail        string `yaml:"tail"`
	Subheadline string `yaml:"subheadline"`
	Image       string `yaml:"image"`
	Primary     Link   `yaml:"primary"`
	Secondary   Link   `yaml:"secondary"`
	CTA         Link   `yaml:"cta"`
}

type Slide struct {
	Image       string `yaml:"image"`
	Caption     string `yaml:"caption"`
	Description string `yaml:"description"`
}

// Carousel is a rotating set of slides. Navigation wraps in both directions.
type Carousel struct {
	Slides   []Slide       `yaml:"slides"`
	Interval time.Duration `yaml:"-"`
}

func (c Carousel) Len() int { return len(c.Slides) }

// At returns the slide at index i, wrapping out-of-range indexes. An empty
// carousel yields the zero Slide.
func (c Carousel) At(i int) Slide {
	if len(c.Slides) == 0 {
		return Slide{}
	}
	return c.Slides[c.wrap(i)]
}

// Next returns the index after i.
func (c Carousel) Next(i int) int { return c.wrap(i + 1) }

// Prev returns the index before i.
func (c Carousel) Prev(i int) int { return c.wrap(i - 1) }

func (c Carousel) wrap(i int) int {
	n := len(c.Slides)
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// IntervalMillis is the advance interval handed to the browser script.
func (c Carousel) IntervalMillis() int64 {
	if c.Interval <= 0 {
		return DefaultCarouselInterval.Milliseconds()
	}
	return c.Interval.Milliseconds()
}

type Feature struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Section struct {
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Eyebrow  string    `yaml:"eyebrow"`
	Items    []Feature `yaml:"items"`
}

type Step struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	Details     string `yaml:"details"`
}

type Process struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Steps    []Step `yaml:"steps"`
}

// Metric is a numeric result such as "340%".
type Metric struct {
	Label       string  `yaml:"label"`
	Value       float64 `yaml:"value"`
	Suffix      string  `yaml:"suffix"`
	Description string  `yaml:"description"`
}

// Display formats the value with its suffix, without trailing zeros.
func (m Metric) Display() string {
	return strconv.FormatFloat(m.Value, 'f', -1, 64) + m.Suffix
}

type Project struct {
	Title       string   `yaml:"title"`
	Category    string   `yaml:"category"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Metrics     []Metric `yaml:"metrics"`
}

type Showcase struct {
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Projects []Project `yaml:"projects"`
}

type Home struct {
	Hero         Hero     `yaml:"hero"`
	Carousel     Carousel `yaml:"carousel"`
	Capabilities Section  `yaml:"capabilities"`
}

type Offering struct {
	Title       string   `yaml:"title"`
	Icon        string   `yaml:"icon"`
	Description string   `yaml:"description"`
	Details     []string `yaml:"details"`
	Benefits    []string `yaml:"benefits"`
}

type ServicesPage struct {
	Title             string     `yaml:"title"`
	Subtitle          string     `yaml:"subtitle"`
	Capabilities      Section    `yaml:"capabilities"`
	SolutionsTitle    string     `yaml:"solutionsTitle"`
	SolutionsSubtitle string     `yaml:"solutionsSubtitle"`
	Offerings         []Offering `yaml:"offerings"`
	DeliveryTitle     string     `yaml:"deliveryTitle"`
	DeliverySubtitle  string     `yaml:"deliverySubtitle"`
	Delivery          []Feature  `yaml:"delivery"`
}

type Method struct {
	Step         string   `yaml:"step"`
	Icon         string   `yaml:"icon"`
	Timeline     string   `yaml:"timeline"`
	Deliverables []string `yaml:"deliverables"`
	Outcomes     string   `yaml:"outcomes"`
}

type FunnelStage struct {
	Title  string   `yaml:"title"`
	Body   string   `yaml:"body"`
	Points []string `yaml:"points"`
}

type ApproachPage struct {
	Title               string        `yaml:"title"`
	Subtitle            string        `yaml:"subtitle"`
	MethodologyTitle    string        `yaml:"methodologyTitle"`
	MethodologySubtitle string        `yaml:"methodologySubtitle"`
	Methodology         []Method      `yaml:"methodology"`
	FunnelTitle         string        `yaml:"funnelTitle"`
	FunnelSubtitle      string        `yaml:"funnelSubtitle"`
	Funnel              []FunnelStage `yaml:"funnel"`
	PrinciplesTitle     string        `yaml:"principlesTitle"`
	Principles          []Feature     `yaml:"principles"`
}

type Stat struct {
	Value       string `yaml:"value"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

type CaseStudy struct {
	Title     string   `yaml:"title"`
	Challenge string   `yaml:"challenge"`
	Solution  string   `yaml:"solution"`
	Results   []Metric `yaml:"results"`
	Quote     string   `yaml:"quote"`
	Author    string   `yaml:"author"`
}

type Testimonial struct {
	Quote   string `yaml:"quote"`
	Author  string `yaml:"author"`
	Company string `yaml:"company"`
}

type ResultsPage struct {
	Title               string        `yaml:"title"`
	Subtitle            string        `yaml:"subtitle"`
	StatsTitle          string        `yaml:"statsTitle"`
	Stats               []Stat        `yaml:"stats"`
	CaseStudiesTitle    string        `yaml:"caseStudiesTitle"`
	CaseStudiesSubtitle string        `yaml:"caseStudiesSubtitle"`
	CaseStudies         []CaseStudy   `yaml:"caseStudies"`
	TestimonialsTitle   string        `yaml:"testimonialsTitle"`
	Testimonials        []Testimonial `yaml:"testimonials"`
	AnalysisTitle       string        `yaml:"analysisTitle"`
	AnalysisSubtitle    string        `yaml:"analysisSubtitle"`
	Analysis            []Feature     `yaml:"analysis"`
}

type Team struct {
	Image string `yaml:"image"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type ContactPage struct {
	Hero         Hero     `yaml:"hero"`
	QuizIntro    string   `yaml:"quizIntro"`
	FormTitle    string   `yaml:"formTitle"`
	FormSubtitle string   `yaml:"formSubtitle"`
	Team         Team     `yaml:"team"`
	Trust        []string `yaml:"trust"`
	SuccessTitle string   `yaml:"successTitle"`
	SuccessBody  string   `yaml:"successBody"`
	NextSteps    []string `yaml:"nextSteps"`
}

type DashboardMetric struct {
	Label  string `yaml:"label"`
	Value  string `yaml:"value"`
	Change string `yaml:"change"`
	Trend  string `yaml:"trend"`
}

type LoginPage struct {
	Title           string            `yaml:"title"`
	Subtitle        string            `yaml:"subtitle"`
	PreviewTitle    string            `yaml:"previewTitle"`
	PreviewSubtitle string            `yaml:"previewSubtitle"`
	Features        []Feature         `yaml:"features"`
	Metrics         []DashboardMetric `yaml:"metrics"`
}

// Site is the full copy deck for every page.
type Site struct {
	Brand     Brand        `yaml:"brand"`
	Nav       []NavItem    `yaml:"nav"`
	FooterCTA FooterCTA    `yaml:"footerCta"`
	Home      Home         `yaml:"home"`
	Process   Process      `yaml:"process"`
	Showcase  Showcase     `yaml:"showcase"`
	Services  ServicesPage `yaml:"services"`
	Approach  ApproachPage `yaml:"approach"`
	Results   ResultsPage  `yaml:"results"`
	Contact   ContactPage  `yaml:"contact"`
	Login     LoginPage    `yaml:"login"`
}

// Load reads and validates the site copy at path inside fsys.
func Load(fsys fs.FS, path string) (*Site, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read site content: %w", err)
	}
	return Parse(data)
}

// Parse decodes site copy from YAML and validates it.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("decode site content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	site.Home.Carousel.Interval = DefaultCarouselInterval
	return &site, nil
}

// Validate reports every required collection that is empty.
func (s *Site) Validate() error {
	var errs []error
	check := func(name string, n int) {
		if n == 0 {
			errs = append(errs, fmt.Errorf("site content: %s must not be empty", name))
		}
	}
	if s.Brand.Name == "" {
		errs = append(errs, errors.New("site content: brand.name is required"))
	}
	check("nav", len(s.Nav))
	check("home.carousel.slides", len(s.Home.Carousel.Slides))
	check("home.capabilities.items", len(s.Home.Capabilities.Items))
	check("process.steps", len(s.Process.Steps))
	check("showcase.projects", len(s.Showcase.Projects))
	check("services.offerings", len(s.Services.Offerings))
	check("approach.methodology", len(s.Approach.Methodology))
	check("results.stats", len(s.Results.Stats))
	check("results.caseStudies", len(s.Results.CaseStudies))
	check("contact.nextSteps", len(s.Contact.NextSteps))
	check("login.features", len(s.Login.Features))
	return errors.Join(errs...)
}
