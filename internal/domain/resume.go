package domain

import (
	"strings"

	"github.com/google/uuid"
)

// EducationLevel matches the levels offered by the form wizard.
type EducationLevel string

const (
	LevelFundamental  EducationLevel = "fundamental"
	LevelMedio        EducationLevel = "medio"
	LevelTecnico      EducationLevel = "tecnico"
	LevelSuperior     EducationLevel = "superior"
	LevelPosGraduacao EducationLevel = "pos-graduacao"
	LevelMestrado     EducationLevel = "mestrado"
	LevelDoutorado    EducationLevel = "doutorado"
)

type SkillCategory string

const (
	SkillTechnical SkillCategory = "technical"
	SkillSoft      SkillCategory = "soft"
	SkillLanguage  SkillCategory = "language"
	SkillOther     SkillCategory = "other"
)

type LanguageLevel string

const (
	LangBasico        LanguageLevel = "basico"
	LangIntermediario LanguageLevel = "intermediario"
	LangAvancado      LanguageLevel = "avancado"
	LangFluente       LanguageLevel = "fluente"
	LangNativo        LanguageLevel = "nativo"
)

type PersonalInfo struct {
	FullName                string   `json:"full_name"`
	Email                   string   `json:"email"`
	Phone                   string   `json:"phone"`
	Address                 string   `json:"address,omitempty"`
	DesiredPosition         string   `json:"desired_position,omitempty"`
	PhotoRef                string   `json:"photo_ref,omitempty"`
	HasDriverLicense        bool     `json:"has_driver_license,omitempty"`
	DriverLicenseCategories []string `json:"driver_license_categories,omitempty"`
}

type Objective struct {
	Keywords    string `json:"keywords,omitempty"`
	Description string `json:"description,omitempty"`
}

type Experience struct {
	ID          uuid.UUID `json:"id"`
	Position    string    `json:"position"`
	Company     string    `json:"company"`
	StartDate   string    `json:"start_date,omitempty"`
	EndDate     string    `json:"end_date,omitempty"`
	IsCurrent   bool      `json:"is_current,omitempty"`
	Description string    `json:"description,omitempty"`
	Keywords    string    `json:"keywords,omitempty"`
}

type Education struct {
	ID          uuid.UUID      `json:"id"`
	Course      string         `json:"course"`
	Institution string         `json:"institution"`
	Level       EducationLevel `json:"level,omitempty"`
	StartDate   string         `json:"start_date,omitempty"`
	EndDate     string         `json:"end_date,omitempty"`
}

type Skill struct {
	ID       uuid.UUID     `json:"id"`
	Name     string        `json:"name"`
	Category SkillCategory `json:"category,omitempty"`
}

type Language struct {
	ID    uuid.UUID     `json:"id"`
	Name  string        `json:"name"`
	Level LanguageLevel `json:"level,omitempty"`
}

type Course struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Institution string    `json:"institution,omitempty"`
	Year        string    `json:"year,omitempty"`
}

type Project struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Year        string    `json:"year,omitempty"`
}

type Achievement struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Year        string    `json:"year,omitempty"`
}

// ResumeDocument is the full structured résumé a user has entered. Partial
// and fully empty documents are valid; no field is required by the model.
type ResumeDocument struct {
	PersonalInfo PersonalInfo  `json:"personal_info"`
	Objective    Objective     `json:"objective"`
	Experience   []Experience  `json:"experience,omitempty"`
	Education    []Education   `json:"education,omitempty"`
	Skills       []Skill       `json:"skills,omitempty"`
	Languages    []Language    `json:"languages,omitempty"`
	Courses      []Course      `json:"courses,omitempty"`
	Projects     []Project     `json:"projects,omitempty"`
	Achievements []Achievement `json:"achievements,omitempty"`
}

// IsEmpty reports whether the user has entered anything at all.
func (d *ResumeDocument) IsEmpty() bool {
	if d == nil {
		return true
	}
	p := d.PersonalInfo
	if strings.TrimSpace(p.FullName) != "" || strings.TrimSpace(p.Email) != "" ||
		strings.TrimSpace(p.Phone) != "" || strings.TrimSpace(p.Address) != "" ||
		strings.TrimSpace(p.DesiredPosition) != "" {
		return false
	}
	if strings.TrimSpace(d.Objective.Keywords) != "" || strings.TrimSpace(d.Objective.Description) != "" {
		return false
	}
	return len(d.Experience) == 0 && len(d.Education) == 0 && len(d.Skills) == 0 &&
		len(d.Languages) == 0 && len(d.Courses) == 0 && len(d.Projects) == 0 &&
		len(d.Achievements) == 0
}

// EnsureIDs assigns a uuid to any list entry created without one. IDs are
// stable identifiers for list diffing, not semantic keys.
func (d *ResumeDocument) EnsureIDs() {
	if d == nil {
		return
	}
	for i := range d.Experience {
		if d.Experience[i].ID == uuid.Nil {
			d.Experience[i].ID = uuid.New()
		}
	}
	for i := range d.Education {
		if d.Education[i].ID == uuid.Nil {
			d.Education[i].ID = uuid.New()
		}
	}
	for i := range d.Skills {
		if d.Skills[i].ID == uuid.Nil {
			d.Skills[i].ID = uuid.New()
		}
	}
	for i := range d.Languages {
		if d.Languages[i].ID == uuid.Nil {
			d.Languages[i].ID = uuid.New()
		}
	}
	for i := range d.Courses {
		if d.Courses[i].ID == uuid.Nil {
			d.Courses[i].ID = uuid.New()
		}
	}
	for i := range d.Projects {
		if d.Projects[i].ID == uuid.Nil {
			d.Projects[i].ID = uuid.New()
		}
	}
	for i := range d.Achievements {
		if d.Achievements[i].ID == uuid.Nil {
			d.Achievements[i].ID = uuid.New()
		}
	}
}
