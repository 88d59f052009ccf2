package domain

// WebsiteContent is every piece of user-facing text on the site.
type WebsiteContent struct {
	Author   Author    `json:"author" yaml:"author"`
	Projects []Project `json:"projects" yaml:"projects"`
	Page     Page      `json:"page" yaml:"page"`
}

type Author struct {
	Name       string   `json:"name" yaml:"name"`
	Title      string   `json:"title" yaml:"title"`
	Bio        string   `json:"bio" yaml:"bio"`
	AvatarURL  string   `json:"avatarUrl" yaml:"avatarUrl"`
	AvatarHint string   `json:"avatarHint" yaml:"avatarHint"`
	Skills     []string `json:"skills" yaml:"skills"`
	Contact    Contact  `json:"contact" yaml:"contact"`
}

type Contact struct {
	Email  string `json:"email" yaml:"email"`
	Phone  string `json:"phone" yaml:"phone"`
	Social Social `json:"social" yaml:"social"`
}

type Social struct {
	GitHub    string `json:"github,omitempty" yaml:"github,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty" yaml:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty" yaml:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty" yaml:"facebook,omitempty"`
}

// Project is one gallery entry. ID is the stable key; slice order is display order.
type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
	ImageURL    string   `json:"imageUrl" yaml:"imageUrl"`
	ImageHint   string   `json:"imageHint" yaml:"imageHint"`
	SourceURL   string   `json:"sourceUrl" yaml:"sourceUrl"`
	LiveURL     string   `json:"liveUrl,omitempty" yaml:"liveUrl,omitempty"`
}

// Page holds the captions of each page section.
type Page struct {
	HeroTitle      string             `json:"heroTitle" yaml:"heroTitle"`
	HeroSubtitle   string             `json:"heroSubtitle" yaml:"heroSubtitle"`
	ViewWorkButton string             `json:"viewWorkButton" yaml:"viewWorkButton"`
	About          AboutCaptions      `json:"about" yaml:"about"`
	Credentials    CredentialCaptions `json:"credentials" yaml:"credentials"`
	MyWork         MyWorkCaptions     `json:"myWork" yaml:"myWork"`
	Contact        ContactCaptions    `json:"contact" yaml:"contact"`
	Footer         FooterCaptions     `json:"footer" yaml:"footer"`
}

type AboutCaptions struct {
	Title string `json:"title" yaml:"title"`
}

type CredentialCaptions struct {
	Title      string `json:"title" yaml:"title"`
	Subtitle   string `json:"subtitle" yaml:"subtitle"`
	CVButton   string `json:"cvButton" yaml:"cvButton"`
	ViewButton string `json:"viewButton" yaml:"viewButton"`
}

type MyWorkCaptions struct {
	Title           string `json:"title" yaml:"title"`
	LearnMoreButton string `json:"learnMoreButton" yaml:"learnMoreButton"`
}

type ContactCaptions struct {
	Title       string       `json:"title" yaml:"title"`
	Subtitle    string       `json:"subtitle" yaml:"subtitle"`
	ContactInfo string       `json:"contactInfo" yaml:"contactInfo"`
	FollowMe    string       `json:"followMe" yaml:"followMe"`
	SendMessage string       `json:"sendMessage" yaml:"sendMessage"`
	Form        FormCaptions `json:"form" yaml:"form"`
}

type FormCaptions struct {
	NameLabel          string `json:"nameLabel" yaml:"nameLabel"`
	NamePlaceholder    string `json:"namePlaceholder" yaml:"namePlaceholder"`
	EmailLabel         string `json:"emailLabel" yaml:"emailLabel"`
	EmailPlaceholder   string `json:"emailPlaceholder" yaml:"emailPlaceholder"`
	MessageLabel       string `json:"messageLabel" yaml:"messageLabel"`
	MessagePlaceholder string `json:"messagePlaceholder" yaml:"messagePlaceholder"`
	SendButton         string `json:"sendButton" yaml:"sendButton"`
	SendingButton      string `json:"sendingButton" yaml:"sendingButton"`
	SuccessMessage     string `json:"successMessage" yaml:"successMessage"`
	SuccessDescription string `json:"successDescription" yaml:"successDescription"`
	ErrorMessage       string `json:"errorMessage" yaml:"errorMessage"`
	ErrorDescription   string `json:"errorDescription" yaml:"errorDescription"`
}

type FooterCaptions struct {
	Copyright string `json:"copyright" yaml:"copyright"`
}

// Clone returns a deep copy of c.
func (c *WebsiteContent) Clone() *WebsiteContent {
	if c == nil {
		return nil
	}
	out := *c
	out.Author.Skills = cloneStrings(c.Author.Skills)
	if c.Projects != nil {
		out.Projects = make([]Project, len(c.Projects))
		for i, p := range c.Projects {
			p.Tags = cloneStrings(p.Tags)
			out.Projects[i] = p
		}
	}
	return &out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
