package domain

import (
	"strings"
	"time"
)

const (
	MaxSpecialties = 3
	MaxLocations   = 10
)

type CostType string

const (
	CostTypeHour  CostType = "hour"
	CostTypeDay   CostType = "day"
	CostTypeMonth CostType = "month"
)

func (t CostType) IsValid() bool {
	return t == CostTypeHour || t == CostTypeDay || t == CostTypeMonth
}

// Specialty — одна услуга профессионала с привязкой к категории,
// стоимостью и форматом работы. Удаляется только мягко (active=false),
// потому что на специальность могут ссылаться проекты портфолио и заявки.
type Specialty struct {
	ID                int64     `json:"id"`
	ProfessionalID    int64     `json:"professional_id"`
	CategoryID        int64     `json:"category_id"`
	ServiceName       string    `json:"service_name"`
	Description       string    `json:"description"`
	IncludesMaterials bool      `json:"includes_materials"`
	Cost              float64   `json:"cost"`
	CostType          CostType  `json:"cost_type"`
	IsPrincipal       bool      `json:"is_principal"`
	SortOrder         *int      `json:"sort_order"`
	WorkRemote        bool      `json:"work_remote"`
	WorkOnsite        bool      `json:"work_onsite"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// SpecialtyDTO приходит от клиента при синхронизации услуг.
// Положительный ID означает "обновить существующую запись",
// отсутствующий или нулевой — "создать новую".
type SpecialtyDTO struct {
	ID                int64    `json:"id"`
	CategoryID        int64    `json:"category_id" binding:"required"`
	ServiceName       string   `json:"service_name" binding:"required"`
	Description       string   `json:"description"`
	IncludesMaterials bool     `json:"includes_materials"`
	Cost              float64  `json:"cost"`
	CostType          CostType `json:"cost_type" binding:"required"`
	IsPrincipal       bool     `json:"is_principal"`
	WorkRemote        bool     `json:"work_remote"`
	WorkOnsite        bool     `json:"work_onsite"`
}

type Location struct {
	ID         int64  `json:"id"`
	AreaID     int64  `json:"area_id"`
	Department string `json:"department"`
	Province   string `json:"province"`
	District   string `json:"district"`
	SortOrder  int    `json:"sort_order"`
}

type LocationDTO struct {
	Department string `json:"department" binding:"required"`
	Province   string `json:"province"`
	District   string `json:"district"`
}

type CoverageArea struct {
	ID             int64      `json:"id"`
	ProfessionalID int64      `json:"professional_id"`
	Nationwide     bool       `json:"nationwide"`
	Locations      []Location `json:"locations"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type CoverageAreaDTO struct {
	Nationwide bool          `json:"nationwide"`
	Locations  []LocationDTO `json:"locations"`
}

type Weekday string

const (
	WeekdayMonday    Weekday = "monday"
	WeekdayTuesday   Weekday = "tuesday"
	WeekdayWednesday Weekday = "wednesday"
	WeekdayThursday  Weekday = "thursday"
	WeekdayFriday    Weekday = "friday"
	WeekdaySaturday  Weekday = "saturday"
	WeekdaySunday    Weekday = "sunday"
)

func (d Weekday) IsValid() bool {
	switch d {
	case WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday,
		WeekdayFriday, WeekdaySaturday, WeekdaySunday:
		return true
	}
	return false
}

// NormalizeWeekday приводит день недели к каноническому виду в нижнем регистре.
func NormalizeWeekday(s string) Weekday {
	return Weekday(strings.ToLower(strings.TrimSpace(s)))
}

type ShiftType string

const (
	ShiftFullDay   ShiftType = "full_day"
	ShiftMorning   ShiftType = "morning"
	ShiftAfternoon ShiftType = "afternoon"
	ShiftEvening   ShiftType = "evening"
)

func (t ShiftType) IsValid() bool {
	switch t {
	case ShiftFullDay, ShiftMorning, ShiftAfternoon, ShiftEvening:
		return true
	}
	return false
}

// Время хранится строками в формате "15:04", как и в остальных расписаниях.
const (
	FullDayDefaultStart = "08:00"
	FullDayDefaultEnd   = "17:00"
)

type DaySchedule struct {
	ID         int64     `json:"id"`
	ScheduleID int64     `json:"schedule_id"`
	Weekday    Weekday   `json:"weekday"`
	ShiftType  ShiftType `json:"shift_type"`
	StartTime  *string   `json:"start_time"`
	EndTime    *string   `json:"end_time"`
	SortOrder  int       `json:"sort_order"`
}

type DayScheduleDTO struct {
	Weekday   string  `json:"weekday" binding:"required"`
	ShiftType string  `json:"shift_type" binding:"required"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

type AvailabilitySchedule struct {
	ID              int64         `json:"id"`
	ProfessionalID  int64         `json:"professional_id"`
	AlwaysAvailable bool          `json:"always_available"`
	Days            []DaySchedule `json:"days"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type AvailabilityDTO struct {
	AlwaysAvailable bool             `json:"always_available"`
	Days            []DayScheduleDTO `json:"days"`
}

// ServiceProfile — полная конфигурация услуг профессионала.
// Три части создаются, обновляются и удаляются как единое целое.
type ServiceProfile struct {
	ProfessionalID int64                 `json:"professional_id"`
	Specialties    []Specialty           `json:"specialties"`
	CoverageArea   *CoverageArea         `json:"coverage_area"`
	Availability   *AvailabilitySchedule `json:"availability"`
}

type SyncServicesDTO struct {
	Specialties  []SpecialtyDTO  `json:"specialties" binding:"required"`
	CoverageArea CoverageAreaDTO `json:"coverage_area"`
	Availability AvailabilityDTO `json:"availability"`
}

type SyncResult struct {
	ProfessionalID int64 `json:"professional_id"`
	Created        bool  `json:"created"`
}

type AddSpecialtyDTO struct {
	CategoryID        int64    `json:"category_id" binding:"required"`
	ServiceName       string   `json:"service_name" binding:"required"`
	Description       string   `json:"description"`
	IncludesMaterials bool     `json:"includes_materials"`
	Cost              float64  `json:"cost"`
	CostType          CostType `json:"cost_type" binding:"required"`
	IsPrincipal       bool     `json:"is_principal"`
	WorkRemote        bool     `json:"work_remote"`
	WorkOnsite        bool     `json:"work_onsite"`
}
