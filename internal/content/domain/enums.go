package domain

import "fmt"

// Each enum keeps its names and attribute tables in arrays sized by the
// enum's count constant. The blank index expressions fail to compile when a
// table and its enum drift apart, so every value always has a mapping.

type Color uint8

const (
	ColorBlue Color = iota
	ColorTeal
	ColorGreen
	ColorYellow
	ColorPink
	ColorPurple
	numColors
)

// Palette holds the style tokens used to render an entity tinted with a Color.
type Palette struct {
	Gradient string
	Border   string
	Button   string
	Glow     string
	Icon     string
	Bg       string
	Text     string
}

var colorNames = [...]string{
	ColorBlue:   "blue",
	ColorTeal:   "teal",
	ColorGreen:  "green",
	ColorYellow: "yellow",
	ColorPink:   "pink",
	ColorPurple: "purple",
}

var palettes = [...]Palette{
	ColorBlue:   tint("blue"),
	ColorTeal:   tint("teal"),
	ColorGreen:  tint("green"),
	ColorYellow: tint("yellow"),
	ColorPink:   tint("pink"),
	ColorPurple: tint("purple"),
}

var (
	_ = [1]struct{}{}[len(colorNames)-int(numColors)]
	_ = [1]struct{}{}[len(palettes)-int(numColors)]
)

func tint(c string) Palette {
	return Palette{
		Gradient: "from-" + c + "-600/90 to-" + c + "-800/90",
		Border:   "border-" + c + "-500/50",
		Button:   "from-" + c + "-500 to-" + c + "-600 hover:from-" + c + "-400 hover:to-" + c + "-500",
		Glow:     "shadow-" + c + "-500/25",
		Icon:     "text-" + c + "-400",
		Bg:       "bg-" + c + "-500/20",
		Text:     "text-" + c + "-400",
	}
}

func Colors() []Color {
	out := make([]Color, 0, numColors)
	for c := Color(0); c < numColors; c++ {
		out = append(out, c)
	}
	return out
}

func ParseColor(s string) (Color, error) {
	return parseEnum[Color](s, colorNames[:], ErrInvalidColor)
}

func (c Color) String() string               { return colorNames[c] }
func (c Color) Palette() Palette             { return palettes[c] }
func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

type Category uint8

const (
	CategoryWebDevelopment Category = iota
	CategoryMobileApp
	CategoryNetworking
	CategoryAIML
	CategoryUIUXDesign
	CategoryAutoCAD
	CategoryOther
	numCategories
)

var categoryNames = [...]string{
	CategoryWebDevelopment: "Web Development",
	CategoryMobileApp:      "Mobile App",
	CategoryNetworking:     "Networking",
	CategoryAIML:           "AI/ML",
	CategoryUIUXDesign:     "UI/UX Design",
	CategoryAutoCAD:        "AutoCAD Engineering",
	CategoryOther:          "Other",
}

var categoryIcons = [...]string{
	CategoryWebDevelopment: "globe",
	CategoryMobileApp:      "smartphone",
	CategoryNetworking:     "network",
	CategoryAIML:           "brain",
	CategoryUIUXDesign:     "palette",
	CategoryAutoCAD:        "ruler",
	CategoryOther:          "code",
}

var (
	_ = [1]struct{}{}[len(categoryNames)-int(numCategories)]
	_ = [1]struct{}{}[len(categoryIcons)-int(numCategories)]
)

func Categories() []Category {
	out := make([]Category, 0, numCategories)
	for c := Category(0); c < numCategories; c++ {
		out = append(out, c)
	}
	return out
}

func ParseCategory(s string) (Category, error) {
	return parseEnum[Category](s, categoryNames[:], ErrInvalidCategory)
}

func (c Category) String() string { return categoryNames[c] }

// Icon names the icon shown next to items of this category.
func (c Category) Icon() string                 { return categoryIcons[c] }
func (c Category) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

type ProjectStatus uint8

const (
	ProjectLive ProjectStatus = iota
	ProjectDevelopment
	ProjectCompleted
	numProjectStatuses
)

var projectStatusNames = [...]string{
	ProjectLive:        "Live",
	ProjectDevelopment: "Development",
	ProjectCompleted:   "Completed",
}

var _ = [1]struct{}{}[len(projectStatusNames)-int(numProjectStatuses)]

func ProjectStatuses() []ProjectStatus {
	return []ProjectStatus{ProjectLive, ProjectDevelopment, ProjectCompleted}
}

func ParseProjectStatus(s string) (ProjectStatus, error) {
	return parseEnum[ProjectStatus](s, projectStatusNames[:], ErrInvalidProjectStatus)
}

func (s ProjectStatus) String() string               { return projectStatusNames[s] }
func (s ProjectStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *ProjectStatus) UnmarshalText(b []byte) error {
	v, err := ParseProjectStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

type ContactStatus uint8

const (
	ContactNew ContactStatus = iota
	ContactRead
	ContactReplied
	numContactStatuses
)

var contactStatusNames = [...]string{
	ContactNew:     "new",
	ContactRead:    "read",
	ContactReplied: "replied",
}

var contactStatusBadges = [...]string{
	ContactNew:     "bg-blue-500/20 text-blue-400 border-blue-500/50",
	ContactRead:    "bg-yellow-500/20 text-yellow-400 border-yellow-500/50",
	ContactReplied: "bg-green-500/20 text-green-400 border-green-500/50",
}

var contactStatusActions = [...]string{
	ContactNew:     "Mark as New",
	ContactRead:    "Mark as Read",
	ContactReplied: "Mark as Replied",
}

var (
	_ = [1]struct{}{}[len(contactStatusNames)-int(numContactStatuses)]
	_ = [1]struct{}{}[len(contactStatusBadges)-int(numContactStatuses)]
	_ = [1]struct{}{}[len(contactStatusActions)-int(numContactStatuses)]
)

func ContactStatuses() []ContactStatus {
	return []ContactStatus{ContactNew, ContactRead, ContactReplied}
}

func ParseContactStatus(s string) (ContactStatus, error) {
	return parseEnum[ContactStatus](s, contactStatusNames[:], ErrInvalidContactStatus)
}

func (s ContactStatus) String() string { return contactStatusNames[s] }
func (s ContactStatus) Badge() string  { return contactStatusBadges[s] }

// Action is the label of the control that moves a contact into this status.
func (s ContactStatus) Action() string               { return contactStatusActions[s] }
func (s ContactStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *ContactStatus) UnmarshalText(b []byte) error {
	v, err := ParseContactStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func parseEnum[E ~uint8](s string, names []string, sentinel error) (E, error) {
	for i, n := range names {
		if n == s {
			return E(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", sentinel, s)
}
