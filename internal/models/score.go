package models

// Score is a student's result in a subject for a term.
type Score struct {
	StudentID string  `json:"student_id"`
	SubjectID string  `json:"subject_id"`
	Term      string  `json:"term"`
	Score     float64 `json:"score"`
	MaxScore  float64 `json:"max_score"`
}

// Percent returns the score as a percentage of the maximum.
func (s Score) Percent() float64 {
	maxScore := s.MaxScore
	if maxScore <= 0 {
		maxScore = 100
	}
	return (s.Score / maxScore) * 100
}
