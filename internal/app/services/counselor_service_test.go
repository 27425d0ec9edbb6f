package services

import (
	"testing"

	"github.com/aydink/acadmin/internal/app/models/dto"
)

func TestBuildStudentReport(t *testing.T) {
	tests := []struct {
		name           string
		grades         []dto.StudentGrade
		wantTotal      int
		wantFailed     int
		wantAvg        float64
		wantSuggestion string
	}{
		{
			name: "all passing",
			grades: []dto.StudentGrade{
				{CourseName: "Calculus", Score: 88},
				{CourseName: "Physics", Score: 92},
			},
			wantTotal:      2,
			wantFailed:     0,
			wantAvg:        90,
			wantSuggestion: suggestionKeepUp,
		},
		{
			name: "one failing course",
			grades: []dto.StudentGrade{
				{CourseName: "Calculus", Score: 45},
				{CourseName: "Physics", Score: 80},
			},
			wantTotal:      2,
			wantFailed:     1,
			wantAvg:        62.5,
			wantSuggestion: suggestionRetake,
		},
		{
			name: "boundary score of 60 passes",
			grades: []dto.StudentGrade{
				{CourseName: "History", Score: 60},
			},
			wantTotal:      1,
			wantFailed:     0,
			wantAvg:        60,
			wantSuggestion: suggestionKeepUp,
		},
		{
			name: "average rounds to two decimals",
			grades: []dto.StudentGrade{
				{CourseName: "A", Score: 70},
				{CourseName: "B", Score: 80},
				{CourseName: "C", Score: 95},
			},
			wantTotal:      3,
			wantFailed:     0,
			wantAvg:        81.67,
			wantSuggestion: suggestionKeepUp,
		},
		{
			name:           "no grades",
			grades:         nil,
			wantTotal:      0,
			wantFailed:     0,
			wantAvg:        0,
			wantSuggestion: suggestionKeepUp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := buildStudentReport("Jordan Lee", tt.grades)

			if report.StudentName != "Jordan Lee" {
				t.Errorf("StudentName = %q, want %q", report.StudentName, "Jordan Lee")
			}
			if report.TotalCourses != tt.wantTotal {
				t.Errorf("TotalCourses = %d, want %d", report.TotalCourses, tt.wantTotal)
			}
			if report.FailedCourses != tt.wantFailed {
				t.Errorf("FailedCourses = %d, want %d", report.FailedCourses, tt.wantFailed)
			}
			if report.AvgScore != tt.wantAvg {
				t.Errorf("AvgScore = %v, want %v", report.AvgScore, tt.wantAvg)
			}
			if report.Suggestion != tt.wantSuggestion {
				t.Errorf("Suggestion = %q, want %q", report.Suggestion, tt.wantSuggestion)
			}
		})
	}
}
