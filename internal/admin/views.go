// Package admin declares the admin dashboard as data: one View per managed
// entity, listing its columns, editable form fields and which field carries
// the uploaded image. Handlers and the dashboard endpoint are driven by this
// table instead of inspecting models at runtime.
package admin

// Field describes one editable form field.
type Field struct {
	Name     string `json:"name"`
	Type     string `json:"type"` // text, textarea, number, checkbox, file
	Required bool   `json:"required"`
}

// View describes the admin surface for one entity.
type View struct {
	Name        string   `json:"name"` // display label
	Slug        string   `json:"slug"` // URL segment under /admin
	ListColumns []string `json:"list_columns"`
	FormFields  []Field  `json:"form_fields"`
	ImageField  string   `json:"image_field"`
}

// Views is the complete registry, in dashboard order.
var Views = []View{
	{
		Name:        "Packages",
		Slug:        "packages",
		ListColumns: []string{"id", "name", "type", "price", "duration_days", "duration_nights", "image"},
		FormFields: []Field{
			{Name: "name", Type: "text", Required: true},
			{Name: "description", Type: "textarea"},
			{Name: "type", Type: "text", Required: true},
			{Name: "price", Type: "text"},
			{Name: "contact_name", Type: "text"},
			{Name: "contact_phone", Type: "text"},
			{Name: "duration_days", Type: "number"},
			{Name: "duration_nights", Type: "number"},
			{Name: "image", Type: "file"},
		},
		ImageField: "image",
	},
	{
		Name:        "Services",
		Slug:        "services",
		ListColumns: []string{"id", "name", "contact_person", "email", "phone", "image"},
		FormFields: []Field{
			{Name: "name", Type: "text", Required: true},
			{Name: "description", Type: "textarea"},
			{Name: "contact_person", Type: "text"},
			{Name: "email", Type: "text"},
			{Name: "phone", Type: "text"},
			{Name: "image", Type: "file"},
		},
		ImageField: "image",
	},
	{
		Name:        "Testimonials",
		Slug:        "testimonials",
		ListColumns: []string{"id", "name", "location", "rating", "image"},
		FormFields: []Field{
			{Name: "testimonial_text", Type: "textarea", Required: true},
			{Name: "name", Type: "text", Required: true},
			{Name: "location", Type: "text", Required: true},
			{Name: "rating", Type: "number", Required: true},
			{Name: "image", Type: "file", Required: true},
		},
		ImageField: "image",
	},
	{
		Name:        "Team Members",
		Slug:        "team-members",
		ListColumns: []string{"id", "name", "position", "is_head", "email", "phone", "image"},
		FormFields: []Field{
			{Name: "name", Type: "text", Required: true},
			{Name: "position", Type: "text", Required: true},
			{Name: "is_head", Type: "checkbox"},
			{Name: "email", Type: "text"},
			{Name: "phone", Type: "text"},
			{Name: "image", Type: "file", Required: true},
		},
		ImageField: "image",
	},
}

// Lookup returns the view for a slug.
func Lookup(slug string) (View, bool) {
	for _, v := range Views {
		if v.Slug == slug {
			return v, true
		}
	}
	return View{}, false
}
