package controllers

import (
	"lms/config"
	"lms/progression"
	"testing"

	courseModels "lms/models/course"
)

func TestScoringConfigFallsBackToDeploymentDefault(t *testing.T) {
	config.AppConfig = &config.Config{DefaultRequiredScore: 85, DefaultMaxAttempts: 5}

	course := courseModels.Course{}
	module := courseModels.Module{}

	required, weights := scoringConfigFor(course, module)
	if required != 85 {
		t.Errorf("required = %v, want the deployment default 85", required)
	}
	if weights != progression.DefaultWeights() {
		t.Errorf("weights = %+v, want defaults when the course has none", weights)
	}
}

func TestScoringConfigCourseAndModuleOverride(t *testing.T) {
	config.AppConfig = &config.Config{DefaultRequiredScore: 85, DefaultMaxAttempts: 5}

	course := courseModels.Course{RequiredScore: 60}
	module := courseModels.Module{}

	required, _ := scoringConfigFor(course, module)
	if required != 60 {
		t.Errorf("required = %v, want the course value 60", required)
	}

	module.RequiredScore = 90
	required, _ = scoringConfigFor(course, module)
	if required != 90 {
		t.Errorf("required = %v, want the module override 90", required)
	}
}

func TestScoringConfigUsesCourseWeights(t *testing.T) {
	config.AppConfig = &config.Config{DefaultRequiredScore: 70, DefaultMaxAttempts: 3}

	course := courseModels.Course{
		RequiredScore:              70,
		WeightCourseContribution:   0.25,
		WeightQuizScore:            0.25,
		WeightAssignmentScore:      0.25,
		WeightFinalAssessmentScore: 0.25,
	}

	_, weights := scoringConfigFor(course, courseModels.Module{})
	want := progression.Weights{
		CourseContribution:   0.25,
		QuizScore:            0.25,
		AssignmentScore:      0.25,
		FinalAssessmentScore: 0.25,
	}
	if weights != want {
		t.Errorf("weights = %+v, want the course configuration %+v", weights, want)
	}
}

func TestModuleMaxAttemptsDefault(t *testing.T) {
	config.AppConfig = &config.Config{DefaultRequiredScore: 70, DefaultMaxAttempts: 5}

	if got := moduleMaxAttempts(4); got != 4 {
		t.Errorf("moduleMaxAttempts(4) = %d, want the requested value", got)
	}
	if got := moduleMaxAttempts(0); got != 5 {
		t.Errorf("moduleMaxAttempts(0) = %d, want the deployment default 5", got)
	}
	if got := moduleMaxAttempts(-2); got != 5 {
		t.Errorf("moduleMaxAttempts(-2) = %d, want the deployment default 5", got)
	}
}
