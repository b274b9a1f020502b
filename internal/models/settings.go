package models

type Theme string

const (
	ThemeLight Theme = "LIGHT"
	ThemeDark  Theme = "DARK"
)

type DateFormat string

const (
	DateFormatDMY DateFormat = "DD/MM/YYYY"
	DateFormatMDY DateFormat = "MM/DD/YYYY"
	DateFormatISO DateFormat = "YYYY-MM-DD"
)

type Language string

const (
	LanguageEN Language = "EN"
	LanguageES Language = "ES"
)

// UserSettings holds per-user preferences. At most one row exists per user.
type UserSettings struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Theme           Theme      `json:"theme" gorm:"type:varchar(10);not null;default:'LIGHT'"`
	DateFormat      DateFormat `json:"dateFormat" gorm:"type:varchar(10);not null;default:'DD/MM/YYYY'"`
	Language        Language   `json:"language" gorm:"type:varchar(2);not null;default:'EN'"`
	DefaultPriority Priority   `json:"defaultPriority" gorm:"type:varchar(10);not null;default:'LOW'"`
	DefaultStatus   TaskStatus `json:"defaultStatus" gorm:"type:varchar(20);not null;default:'TODO'"`
	UserID          uint       `json:"userId" gorm:"uniqueIndex;not null"`
}

// DefaultSettings returns the settings a user starts with.
func DefaultSettings(userID uint) *UserSettings {
	return &UserSettings{
		Theme:           ThemeLight,
		DateFormat:      DateFormatDMY,
		Language:        LanguageEN,
		DefaultPriority: PriorityLow,
		DefaultStatus:   StatusTodo,
		UserID:          userID,
	}
}

// SettingsPatch is the body of PUT /api/settings.
type SettingsPatch struct {
	Theme           *Theme      `json:"theme" validate:"omitempty,oneof=LIGHT DARK"`
	DateFormat      *DateFormat `json:"dateFormat" validate:"omitempty,oneof=DD/MM/YYYY MM/DD/YYYY YYYY-MM-DD"`
	Language        *Language   `json:"language" validate:"omitempty,oneof=EN ES"`
	DefaultPriority *Priority   `json:"defaultPriority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	DefaultStatus   *TaskStatus `json:"defaultStatus" validate:"omitempty,oneof=TODO IN_PROGRESS DONE"`
}

func (p SettingsPatch) Apply(s *UserSettings) {
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.DateFormat != nil {
		s.DateFormat = *p.DateFormat
	}
	if p.Language != nil {
		s.Language = *p.Language
	}
	if p.DefaultPriority != nil {
		s.DefaultPriority = *p.DefaultPriority
	}
	if p.DefaultStatus != nil {
		s.DefaultStatus = *p.DefaultStatus
	}
}
