package services

import (
	"context"
	"errors"
	"testing"

	"github.com/aydink/acadmin/internal/app/models"
	"github.com/aydink/acadmin/internal/app/models/dto"
	"github.com/aydink/acadmin/internal/pkg/apperrors"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		name    string
		raw     interface{}
		want    float64
		wantErr bool
	}{
		{"json number", float64(85), 85, false},
		{"numeric string", "92.5", 92.5, false},
		{"zero", float64(0), 0, false},
		{"non-numeric string", "excellent", 0, true},
		{"nil", nil, 0, true},
		{"bool", true, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScore(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseScore(%v) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("parseScore(%v) error = %v, want a validation error", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("parseScore(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

// Range and type validation must reject the request before the service
// touches any repository, so a service with nil repositories is enough.
func TestUpdateScore_RejectsBeforeAnyWrite(t *testing.T) {
	svc := &teacherServiceImpl{}

	tests := []struct {
		name  string
		score interface{}
	}{
		{"above range", float64(101)},
		{"below range", float64(-1)},
		{"above range as string", "150"},
		{"not a number", "abc"},
		{"missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.UpdateScoreRequest{CourseID: "C001", StudentID: "S001", Score: tt.score}
			err := svc.UpdateScore(context.Background(), "T001", models.RoleTeacher, req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("UpdateScore error = %v, want a validation error", err)
			}
		})
	}
}

func TestAnalyzeCourse_RequiresCourseID(t *testing.T) {
	svc := &teacherServiceImpl{}

	_, err := svc.AnalyzeCourse(context.Background(), "T001", models.RoleTeacher, "")
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("AnalyzeCourse error = %v, want a validation error", err)
	}
}
