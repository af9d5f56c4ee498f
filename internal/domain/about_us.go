package domain

// Story is the "about us" narrative.
type Story struct {
	Model
	Story string `json:"story" db:"story"`
}

type CreateStory struct {
	Story string `json:"story" validate:"required"`
}

func (c CreateStory) Build() *Story {
	return &Story{Story: c.Story}
}

type UpdateStory struct {
	Story *string `json:"story" validate:"omitempty,min=1"`
}

func (u UpdateStory) Apply(s *Story) {
	setIf(&s.Story, u.Story)
}

// TeamMember is a member of the cafe staff shown on the about page.
type TeamMember struct {
	Model
	Name       string  `json:"name" db:"name"`
	Position   string  `json:"position" db:"position"`
	Experience int     `json:"experience" db:"experience"` // years
	Skills     *string `json:"skills" db:"skills"`
	Image      *string `json:"image" db:"image"`
}

type CreateTeamMember struct {
	Name       string  `json:"name" validate:"required"`
	Position   string  `json:"position" validate:"required"`
	Experience *int    `json:"experience" validate:"required,gte=0"`
	Skills     *string `json:"skills"`
	Image      *string `json:"image"`
}

func (c CreateTeamMember) Build() *TeamMember {
	return &TeamMember{
		Name:       c.Name,
		Position:   c.Position,
		Experience: *c.Experience,
		Skills:     c.Skills,
		Image:      c.Image,
	}
}

type UpdateTeamMember struct {
	Name       *string `json:"name" validate:"omitempty,min=1"`
	Position   *string `json:"position" validate:"omitempty,min=1"`
	Experience *int    `json:"experience" validate:"omitempty,gte=0"`
	Skills     *string `json:"skills"`
	Image      *string `json:"image"`
}

func (u UpdateTeamMember) Apply(m *TeamMember) {
	setIf(&m.Name, u.Name)
	setIf(&m.Position, u.Position)
	setIf(&m.Experience, u.Experience)
	setOptional(&m.Skills, u.Skills)
	setOptional(&m.Image, u.Image)
}
