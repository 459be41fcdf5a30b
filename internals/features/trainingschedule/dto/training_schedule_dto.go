package dto

import (
	"skillmatrix_backend/internals/features/trainingschedule/model"
)

type CreateTrainingScheduleRequest struct {
	Topic         string   `json:"topic" validate:"required,min=3,max=200"`
	SkillName     string   `json:"skill_name" validate:"required,min=1,max=120"`
	Trainer       string   `json:"trainer" validate:"required,min=1,max=120"`
	Venue         string   `json:"venue" validate:"required,min=1,max=200"`
	Date          string   `json:"date" validate:"required"` // DD/MM/YYYY
	Time          string   `json:"time" validate:"required"` // HH:MM
	EmployeeKeys  []string `json:"employee_keys" validate:"required,min=1,dive,required"`
	EmployeeNames []string `json:"employee_names" validate:"required,min=1,dive,required"`
}

type UpdateTrainingScheduleRequest struct {
	Topic         *string  `json:"topic" validate:"omitempty,min=3,max=200"`
	Trainer       *string  `json:"trainer" validate:"omitempty,min=1,max=120"`
	Venue         *string  `json:"venue" validate:"omitempty,min=1,max=200"`
	Date          *string  `json:"date"` // DD/MM/YYYY
	Time          *string  `json:"time"` // HH:MM
	EmployeeKeys  []string `json:"employee_keys" validate:"omitempty,min=1,dive,required"`
	EmployeeNames []string `json:"employee_names" validate:"omitempty,min=1,dive,required"`
}

type TrainingScheduleDTO struct {
	TrainingScheduleID string   `json:"training_schedule_id"`
	Topic              string   `json:"topic"`
	SkillName          string   `json:"skill_name"`
	Trainer            string   `json:"trainer"`
	Venue              string   `json:"venue"`
	Date               string   `json:"date"`
	Time               string   `json:"time"`
	EmployeeKeys       []string `json:"employee_keys"`
	EmployeeNames      []string `json:"employee_names"`
	PlantCode          int      `json:"plant_code"`
}

func ToTrainingScheduleDTO(m *model.TrainingScheduleModel) TrainingScheduleDTO {
	return TrainingScheduleDTO{
		TrainingScheduleID: m.TrainingScheduleID.String(),
		Topic:              m.TrainingScheduleTopic,
		SkillName:          m.TrainingScheduleSkillName,
		Trainer:            m.TrainingScheduleTrainer,
		Venue:              m.TrainingScheduleVenue,
		Date:               m.TrainingScheduleDate.Format("02/01/2006"),
		Time:               m.TrainingScheduleTime.Format("15:04"),
		EmployeeKeys:       m.TrainingScheduleEmployeeKeys,
		EmployeeNames:      m.TrainingScheduleEmployeeNames,
		PlantCode:          m.TrainingSchedulePlantCode,
	}
}
