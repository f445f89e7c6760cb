package types

// Metadata holds the identifying information of a converted book
type Metadata struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	Identifier string `json:"identifier"` // deterministic UUID, see internal/identity
	Language   string `json:"language"`   // BCP 47 tag, e.g. "zh-CN"
}

// Chapter represents a single chapter of a book
type Chapter struct {
	Number     int      `json:"number"` // 1-indexed position in reading order
	Title      string   `json:"title"`
	Paragraphs []string `json:"paragraphs"`
}

// Resource roles recognized by the resolver
const (
	RoleCover = "cover"
	RoleFont  = "font"
)

// Resource is a binary asset embedded into the book
type Resource struct {
	Role      string `json:"role"` // RoleCover or RoleFont
	Name      string `json:"name"` // file name, e.g. "cover.jpg"
	MediaType string `json:"media_type"`
	Data      []byte `json:"-"`
}

// Book aggregates everything the packager needs to emit one document.
// The table of contents is implied: one flat entry per chapter, in
// chapter order. A Book is not mutated after assembly.
type Book struct {
	Metadata   Metadata   `json:"metadata"`
	Chapters   []Chapter  `json:"chapters"`
	Cover      *Resource  `json:"cover,omitempty"`
	Fonts      []Resource `json:"fonts,omitempty"`
	Stylesheet string     `json:"stylesheet"`
}
