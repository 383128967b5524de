package query

import (
	"math"

	"competency-matrix/feature/catalog"
	"competency-matrix/feature/catalog/models"
)

// AccumulatedLevel is one level's full competency set inside an accumulation.
type AccumulatedLevel struct {
	Level         string   `json:"level"`
	LevelNumber   int      `json:"level_number"`
	Code          string   `json:"code"`
	Core          []string `json:"core"`
	Complementary []string `json:"complementary"`
	Indicators    []string `json:"indicators"`
}

// Accumulated is every level's competency set from level 1 up to a target.
type Accumulated struct {
	Role        string             `json:"role"`
	TargetLevel string             `json:"target_level"`
	Levels      []AccumulatedLevel `json:"levels"`
}

// GetAccumulatedCompetencies returns every level's competencies from level 1
// up to and including the target, ascending. Intermediate levels without a
// backing entry are skipped silently.
func (s *Service) GetAccumulatedCompetencies(role, targetLevel string) (*Accumulated, error) {
	target, err := s.parseInputs(role, targetLevel)
	if err != nil {
		return nil, err
	}
	entries, err := s.roleEntries(role)
	if err != nil {
		return nil, err
	}

	out := &Accumulated{
		Role:        s.translator.TranslateRoleName(role),
		TargetLevel: catalog.LevelLabel(target),
	}
	for _, entry := range entries {
		if entry.LevelNumber > target {
			break
		}
		translated := s.translator.TranslateEntry(entry)
		out.Levels = append(out.Levels, AccumulatedLevel{
			Level:         translated.Level,
			LevelNumber:   translated.LevelNumber,
			Code:          translated.Code,
			Core:          translated.CoreCompetencies,
			Complementary: translated.ComplementaryCompetencies,
			Indicators:    translated.Indicators,
		})
	}
	return out, nil
}

// CareerStage summarizes one level inside a career-path breakdown.
type CareerStage struct {
	Level        string `json:"level"`
	LevelNumber  int    `json:"level_number"`
	Code         string `json:"code"`
	Competencies int    `json:"competencies"`
	Indicators   int    `json:"indicators"`
}

// CareerSummary aggregates competency counts across the partitions.
type CareerSummary struct {
	MasteredCompetencies  int `json:"mastered_competencies"`
	CurrentCompetencies   int `json:"current_competencies"`
	RemainingCompetencies int `json:"remaining_competencies"`
	ProgressPercentage    int `json:"progress_percentage"`
}

// CareerPathComplete partitions a role's levels relative to a reference level.
type CareerPathComplete struct {
	Role           string        `json:"role"`
	CurrentLevel   *CareerStage  `json:"current_level"`
	MasteredLevels []CareerStage `json:"mastered_levels"`
	GrowthPath     []CareerStage `json:"growth_path"`
	Summary        CareerSummary `json:"summary"`
}

// GetCareerPathComplete partitions all levels of a role into mastered,
// current and growth relative to the given level, with per-partition
// competency aggregates and an overall progress percentage.
func (s *Service) GetCareerPathComplete(role, currentLevel string) (*CareerPathComplete, error) {
	current, err := s.parseInputs(role, currentLevel)
	if err != nil {
		return nil, err
	}
	entries, err := s.roleEntries(role)
	if err != nil {
		return nil, err
	}

	out := &CareerPathComplete{Role: s.translator.TranslateRoleName(role)}
	for _, entry := range entries {
		stage := stageOf(s.translator.TranslateEntry(entry))
		switch {
		case entry.LevelNumber < current:
			out.MasteredLevels = append(out.MasteredLevels, stage)
			out.Summary.MasteredCompetencies += stage.Competencies
		case entry.LevelNumber == current:
			out.CurrentLevel = &stage
			out.Summary.CurrentCompetencies = stage.Competencies
		default:
			out.GrowthPath = append(out.GrowthPath, stage)
			out.Summary.RemainingCompetencies += stage.Competencies
		}
	}
	if out.CurrentLevel == nil {
		return nil, catalog.LevelNotFound(role, catalog.LevelLabel(current))
	}

	attained := out.Summary.MasteredCompetencies + out.Summary.CurrentCompetencies
	total := attained + out.Summary.RemainingCompetencies
	if total > 0 {
		out.Summary.ProgressPercentage = int(math.Round(100 * float64(attained) / float64(total)))
	}
	return out, nil
}

func stageOf(entry *models.Entry) CareerStage {
	return CareerStage{
		Level:        entry.Level,
		LevelNumber:  entry.LevelNumber,
		Code:         entry.Code,
		Competencies: len(entry.CoreCompetencies) + len(entry.ComplementaryCompetencies),
		Indicators:   len(entry.Indicators),
	}
}
