package views

import (
	"suredoor/models"
	"suredoor/services"
	"suredoor/slider"
)

// Department describes one of the organisation's working units
type Department struct {
	Key         string
	Title       string
	Description string
	Activities  []string
}

var Departments = []Department{
	{
		Key:         models.DepartmentPublicEnlightenment,
		Title:       "Public Enlightenment Department",
		Description: "The oldest unit involved in Public Enlightenment Campaign aimed at sensitizing people on topical issues of great importance.",
		Activities:  []string{"Seminars and workshops", "Open-air activities", "Talk shows", "Coffee morning meetings", "Conferences", "One-on-one interactions"},
	},
	{
		Key:         models.DepartmentWomen,
		Title:       "Women Department",
		Description: "Creating the necessary awareness amongst women in most issues affecting the female folk.",
		Activities:  []string{"Family affairs education", "Reproductive health", "Skill acquisition", "Civic responsibilities", "Good morals", "Economic empowerment"},
	},
	{
		Key:         models.DepartmentYouth,
		Title:       "Youth Department",
		Description: "Drawing up programmes that enhance youth's overall development to meet their moral, educational and social needs.",
		Activities:  []string{"Mentorship", "Drama and cultural outreach", "Drug abuse prevention", "Career guidance", "Sports and recreation", "Leadership training"},
	},
}

// DonationPresets are the amounts offered on the donate page, in naira
var DonationPresets = []int64{1000, 5000, 10000, 25000, 50000, 100000}

type HomeData struct {
	Slides     []slider.Slide
	Current    int
	IntervalMs int64
	Programs   []models.Program
	Posts      []models.BlogPost
	Events     []models.Event
}

type AboutData struct {
	Team        []models.TeamMember
	Departments []Department
}

type ProgramsData struct {
	Departments []Department
	Programs    []models.Program
}

// ProgramsIn returns the programs of one department
func (d ProgramsData) ProgramsIn(department string) []models.Program {
	var out []models.Program
	for _, p := range d.Programs {
		if p.Department == department {
			out = append(out, p)
		}
	}
	return out
}

type ProgramData struct {
	Program    models.Program
	Department Department
}

type BlogData struct {
	Posts      []models.BlogPost
	Categories []string
	Category   string
}

type PostData struct {
	Post   models.BlogPost
	Recent []models.BlogPost
}

type GalleryData struct {
	Images     []models.GalleryImage
	Categories []string
	Category   string
}

type DonateData struct {
	Presets []int64
	Form    models.DonationRequest
	Done    bool
}

type ContactData struct {
	Form models.ContactRequest
	Done bool
}

type LoginData struct {
	Email string
	Next  string
}

type ErrorData struct {
	Status  int
	Message string
}

// Admin dashboard tabs
const (
	TabOverview  = "overview"
	TabBlog      = "blog"
	TabGallery   = "gallery"
	TabTeam      = "team"
	TabPrograms  = "programs"
	TabEvents    = "events"
	TabDonations = "donations"
	TabMessages  = "messages"
	TabSettings  = "settings"
)

type Tab struct {
	Key   string
	Label string
}

var Tabs = []Tab{
	{TabOverview, "Overview"},
	{TabBlog, "Blog Posts"},
	{TabGallery, "Gallery"},
	{TabTeam, "Team"},
	{TabPrograms, "Programs"},
	{TabEvents, "Events"},
	{TabDonations, "Donations"},
	{TabMessages, "Messages"},
	{TabSettings, "Settings"},
}

// ValidTab reports whether key names a dashboard tab
func ValidTab(key string) bool {
	for _, t := range Tabs {
		if t.Key == key {
			return true
		}
	}
	return false
}

// DashboardData carries whatever the active tab needs; other fields stay empty
type DashboardData struct {
	Tab  string
	Tabs []Tab

	Stats services.DashboardStats

	// filter inputs echoed back into the tab's filter form
	Search string
	Filter string

	Categories  []string
	Departments []Department

	Posts         []models.BlogPost
	Programs      []models.Program
	Events        []models.Event
	Team          []models.TeamMember
	Gallery       []models.GalleryImage
	Donations     services.DonationList
	DonationStats models.DonationStats
	Messages      []models.ContactMessage
	Settings      models.SiteSettings

	// form values for the tab's create/edit form; a zero ID means create
	EditPost    models.BlogPost
	EditProgram models.Program
	EditEvent   models.Event
	EditMember  models.TeamMember
}
