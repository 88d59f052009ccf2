package domain

import "fmt"

// FieldClass says what translation may do with a field.
type FieldClass int

const (
	// Translatable natural-language text.
	Translatable FieldClass = iota
	// Opaque identifiers, URLs, hints and contact data; never altered.
	Opaque
	// Label entries such as skills and tags; passed through untranslated.
	Label
)

func (c FieldClass) String() string {
	switch c {
	case Translatable:
		return "translatable"
	case Opaque:
		return "opaque"
	case Label:
		return "label"
	default:
		return fmt.Sprintf("FieldClass(%d)", int(c))
	}
}

// Walk visits every string leaf of c in a fixed order, reporting its path
// and classification. The classification is written out here by hand so it
// is settled when the schema is defined, not inferred at runtime.
func (c *WebsiteContent) Walk(visit func(path string, class FieldClass, value *string)) {
	a := &c.Author
	visit("author.name", Translatable, &a.Name)
	visit("author.title", Translatable, &a.Title)
	visit("author.bio", Translatable, &a.Bio)
	visit("author.avatarUrl", Opaque, &a.AvatarURL)
	visit("author.avatarHint", Opaque, &a.AvatarHint)
	for i := range a.Skills {
		visit(fmt.Sprintf("author.skills[%d]", i), Label, &a.Skills[i])
	}
	visit("author.contact.email", Opaque, &a.Contact.Email)
	visit("author.contact.phone", Opaque, &a.Contact.Phone)
	s := &a.Contact.Social
	visit("author.contact.social.github", Opaque, &s.GitHub)
	visit("author.contact.social.linkedin", Opaque, &s.LinkedIn)
	visit("author.contact.social.twitter", Opaque, &s.Twitter)
	visit("author.contact.social.instagram", Opaque, &s.Instagram)
	visit("author.contact.social.facebook", Opaque, &s.Facebook)

	for i := range c.Projects {
		p := &c.Projects[i]
		prefix := fmt.Sprintf("projects[%d].", i)
		visit(prefix+"id", Opaque, &p.ID)
		visit(prefix+"title", Translatable, &p.Title)
		visit(prefix+"description", Translatable, &p.Description)
		for j := range p.Tags {
			visit(fmt.Sprintf("%stags[%d]", prefix, j), Label, &p.Tags[j])
		}
		visit(prefix+"imageUrl", Opaque, &p.ImageURL)
		visit(prefix+"imageHint", Opaque, &p.ImageHint)
		visit(prefix+"sourceUrl", Opaque, &p.SourceURL)
		visit(prefix+"liveUrl", Opaque, &p.LiveURL)
	}

	pg := &c.Page
	visit("page.heroTitle", Translatable, &pg.HeroTitle)
	visit("page.heroSubtitle", Translatable, &pg.HeroSubtitle)
	visit("page.viewWorkButton", Translatable, &pg.ViewWorkButton)
	visit("page.about.title", Translatable, &pg.About.Title)
	visit("page.credentials.title", Translatable, &pg.Credentials.Title)
	visit("page.credentials.subtitle", Translatable, &pg.Credentials.Subtitle)
	visit("page.credentials.cvButton", Translatable, &pg.Credentials.CVButton)
	visit("page.credentials.viewButton", Translatable, &pg.Credentials.ViewButton)
	visit("page.myWork.title", Translatable, &pg.MyWork.Title)
	visit("page.myWork.learnMoreButton", Translatable, &pg.MyWork.LearnMoreButton)

	ct := &pg.Contact
	visit("page.contact.title", Translatable, &ct.Title)
	visit("page.contact.subtitle", Translatable, &ct.Subtitle)
	visit("page.contact.contactInfo", Translatable, &ct.ContactInfo)
	visit("page.contact.followMe", Translatable, &ct.FollowMe)
	visit("page.contact.sendMessage", Translatable, &ct.SendMessage)

	f := &ct.Form
	visit("page.contact.form.nameLabel", Translatable, &f.NameLabel)
	visit("page.contact.form.namePlaceholder", Translatable, &f.NamePlaceholder)
	visit("page.contact.form.emailLabel", Translatable, &f.EmailLabel)
	visit("page.contact.form.emailPlaceholder", Translatable, &f.EmailPlaceholder)
	visit("page.contact.form.messageLabel", Translatable, &f.MessageLabel)
	visit("page.contact.form.messagePlaceholder", Translatable, &f.MessagePlaceholder)
	visit("page.contact.form.sendButton", Translatable, &f.SendButton)
	visit("page.contact.form.sendingButton", Translatable, &f.SendingButton)
	visit("page.contact.form.successMessage", Translatable, &f.SuccessMessage)
	visit("page.contact.form.successDescription", Translatable, &f.SuccessDescription)
	visit("page.contact.form.errorMessage", Translatable, &f.ErrorMessage)
	visit("page.contact.form.errorDescription", Translatable, &f.ErrorDescription)

	visit("page.footer.copyright", Translatable, &pg.Footer.Copyright)
}

// Field is one classified string leaf.
type Field struct {
	Path  string
	Class FieldClass
	Value string
}

// Fields lists every string leaf of c with its classification.
func (c *WebsiteContent) Fields() []Field {
	var out []Field
	c.Walk(func(path string, class FieldClass, value *string) {
		out = append(out, Field{Path: path, Class: class, Value: *value})
	})
	return out
}

// TranslatableFields returns pointers to the translatable leaves of c, in Walk order.
func (c *WebsiteContent) TranslatableFields() []TranslatableField {
	var out []TranslatableField
	c.Walk(func(path string, class FieldClass, value *string) {
		if class == Translatable {
			out = append(out, TranslatableField{Path: path, Value: value})
		}
	})
	return out
}

type TranslatableField struct {
	Path  string
	Value *string
}

// OpaquePaths lists the JSON field names a translator must echo back unchanged.
var OpaquePaths = []string{"id", "avatarUrl", "avatarHint", "imageUrl", "imageHint", "sourceUrl", "liveUrl"}
