package scoring

import "github.com/MingxuanGame/OsuDB/model"

// Accuracy returns the accuracy of s as a percentage, using the formula of its
// gameplay mode. A record without judgements gives NaN.
func Accuracy(s *model.ScoreReplay) float64 {
	g300 := float64(s.Hits300)
	g100 := float64(s.Hits100)
	g50 := float64(s.Hits50)
	geki := float64(s.HitsGeki)
	katu := float64(s.HitsKatu)
	miss := float64(s.Misses)

	var accuracy float64
	switch s.GameplayMode {
	case model.ModeTaiko:
		// 50s are not judged in taiko
		accuracy = (g300 + 0.5*g100) / (g300 + g100 + miss)
	case model.ModeCatch:
		// katu counts missed droplets
		accuracy = (g300 + g100 + g50) / (g300 + g100 + g50 + miss + katu)
	case model.ModeMania:
		// geki is a rainbow 300, katu a 200
		weight := 305.0
		if s.Mods.Has(model.ModScoreV2) {
			weight = 300
		}
		total := geki + g300 + g100 + g50 + miss
		accuracy = (weight*geki + 300*g300 + 200*katu + 100*g100 + 50*g50) / (weight * total)
	default:
		accuracy = (300*g300 + 100*g100 + 50*g50) / (300 * (g300 + g100 + g50 + miss))
	}
	return accuracy * 100
}

// BaseGrade is the grade of s before silver promotion.
func BaseGrade(s *model.ScoreReplay) model.Grade {
	switch s.GameplayMode {
	case model.ModeTaiko:
		return taikoGrade(s)
	case model.ModeCatch:
		return catchGrade(s)
	case model.ModeMania:
		return maniaGrade(s)
	default:
		return standardGrade(s)
	}
}

// PromoteSilver turns SS and S into their silver variants when a
// visibility-reducing mod was used. Other grades are returned as is.
func PromoteSilver(grade model.Grade, mods model.Mods) model.Grade {
	if !mods.HasAny(model.ModHidden, model.ModFlashlight, model.ModFadeIn) {
		return grade
	}
	switch grade {
	case model.GradeSS:
		return model.GradeSilverSS
	case model.GradeS:
		return model.GradeSilverS
	}
	return grade
}

func Grade(s *model.ScoreReplay) model.Grade {
	return PromoteSilver(BaseGrade(s), s.Mods)
}

func standardGrade(s *model.ScoreReplay) model.Grade {
	if s.Hits300 > 0 && s.Hits100 == 0 && s.Hits50 == 0 && s.Misses == 0 {
		return model.GradeSS
	}
	total := float64(s.Hits300) + float64(s.Hits100) + float64(s.Hits50) + float64(s.Misses)
	ratio300 := float64(s.Hits300) / total
	ratio50 := float64(s.Hits50) / total
	noMiss := s.Misses == 0
	switch {
	case ratio300 >= 0.9 && ratio50 <= 0.01 && noMiss:
		return model.GradeS
	case ratio300 >= 0.8 && noMiss, ratio300 >= 0.9:
		return model.GradeA
	case ratio300 >= 0.7 && noMiss, ratio300 >= 0.8:
		return model.GradeB
	case ratio300 >= 0.6:
		return model.GradeC
	}
	return model.GradeD
}

func taikoGrade(s *model.ScoreReplay) model.Grade {
	if s.Hits300 > 0 && s.Hits100 == 0 && s.Misses == 0 {
		return model.GradeSS
	}
	total := float64(s.Hits300) + float64(s.Hits100) + float64(s.Misses)
	ratioGreat := float64(s.Hits300) / total
	noMiss := s.Misses == 0
	switch {
	case ratioGreat >= 0.9 && noMiss:
		return model.GradeS
	case ratioGreat >= 0.8 && noMiss, ratioGreat >= 0.9:
		return model.GradeA
	case ratioGreat >= 0.7 && noMiss, ratioGreat >= 0.8:
		return model.GradeB
	case ratioGreat >= 0.6:
		return model.GradeC
	}
	return model.GradeD
}

func catchGrade(s *model.ScoreReplay) model.Grade {
	if s.Misses == 0 && s.HitsKatu == 0 {
		return model.GradeSS
	}
	switch accuracy := Accuracy(s); {
	case accuracy > 98:
		return model.GradeS
	case accuracy > 94:
		return model.GradeA
	case accuracy > 90:
		return model.GradeB
	case accuracy > 85:
		return model.GradeC
	}
	return model.GradeD
}

func maniaGrade(s *model.ScoreReplay) model.Grade {
	clean := s.Hits100 == 0 && s.Hits50 == 0 && s.HitsKatu == 0 && s.Misses == 0
	var perfect bool
	if s.Mods.Has(model.ModScoreV2) {
		// only rainbow 300s count as perfect under ScoreV2
		perfect = s.HitsGeki > 0 && s.Hits300 == 0
	} else {
		perfect = s.HitsGeki > 0 || s.Hits300 > 0
	}
	if clean && perfect {
		return model.GradeSS
	}
	switch accuracy := Accuracy(s); {
	case accuracy >= 95:
		return model.GradeS
	case accuracy >= 90:
		return model.GradeA
	case accuracy >= 80:
		return model.GradeB
	case accuracy >= 70:
		return model.GradeC
	}
	return model.GradeD
}
