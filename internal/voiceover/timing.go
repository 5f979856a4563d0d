package voiceover

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ivlev/directorkit/internal/model"
)

// DurationStage is one multiplicative adjustment of a line's base duration.
// Stages run in order and compound.
type DurationStage struct {
	Name  string
	Apply func(d float64, voice model.VoiceProfile, emotion model.Emotion) float64
}

func (e *Engine) durationStages() []DurationStage {
	t := e.tuning
	return []DurationStage{
		{
			Name: "pace",
			Apply: func(d float64, v model.VoiceProfile, _ model.Emotion) float64 {
				switch {
				case v.Pace < t.SlowPaceThreshold:
					return d * t.SlowPaceFactor
				case v.Pace > t.FastPaceThreshold:
					return d * t.FastPaceFactor
				}
				return d
			},
		},
		{
			Name: "emotion",
			Apply: func(d float64, _ model.VoiceProfile, em model.Emotion) float64 {
				switch em {
				case model.EmotionAnger, model.EmotionFear:
					return d * t.TenseEmotionFactor
				case model.EmotionSadness:
					return d * t.SadnessFactor
				}
				return d
			},
		},
	}
}

// Stages exposes the duration pipeline in evaluation order.
func (e *Engine) Stages() []DurationStage {
	return e.stages
}

// BaseDuration is the spoken length of text at the configured word rate.
func (e *Engine) BaseDuration(text string) float64 {
	if e.tuning.WordsPerSecond <= 0 {
		return 0
	}
	return float64(len(strings.Fields(text))) / e.tuning.WordsPerSecond
}

// ComputeTiming estimates how long the line takes to deliver and where its
// pauses and stressed words fall.
func (e *Engine) ComputeTiming(d model.DialogueBlock, voice model.VoiceProfile, emotion model.EmotionalContext) model.DialogueTiming {
	duration := e.BaseDuration(d.Dialogue)
	for _, s := range e.stages {
		duration = s.Apply(duration, voice, emotion.PrimaryEmotion)
	}
	if duration < 0 {
		duration = 0
	}

	words := strings.Fields(d.Dialogue)
	return model.DialogueTiming{
		Duration:       duration,
		Pauses:         e.pauses(words, duration, emotion.PrimaryEmotion),
		EmphasisPoints: e.emphasis(words, duration),
		Pacing:         e.pacing(voice.Pace),
	}
}

func (e *Engine) pacing(pace float64) model.Pacing {
	switch {
	case pace < e.tuning.SlowPaceThreshold:
		return model.PacingSlow
	case pace > e.tuning.FastPaceThreshold:
		return model.PacingFast
	}
	return model.PacingNormal
}

// wordPosition places the i-th word at its estimated onset, kept inside the line
func (e *Engine) wordPosition(i int, duration float64) float64 {
	return clamp(float64(i)*e.tuning.WordDuration, 0, duration)
}

func (e *Engine) pauses(words []string, duration float64, emotion model.Emotion) []model.Pause {
	pauses := []model.Pause{}
	for i, w := range words {
		var length float64
		switch {
		case strings.HasSuffix(w, "."):
			length = e.tuning.PeriodPause
		case strings.HasSuffix(w, ","):
			length = e.tuning.CommaPause
		default:
			continue
		}
		pauses = append(pauses, model.Pause{
			Position: e.wordPosition(i, duration),
			Duration: length,
			Type:     model.PauseNatural,
			Purpose:  model.PurposeBreath,
		})
	}

	if emotion == model.EmotionSadness || emotion == model.EmotionAnger {
		pauses = append(pauses, model.Pause{
			Position: duration / 2,
			Duration: e.tuning.DramaticPause,
			Type:     model.PauseDramatic,
			Purpose:  model.PurposeEmphasis,
		})
	}
	return pauses
}

var emphasisKeywords = map[string]bool{
	"never": true, "always": true, "must": true, "can't": true,
	"won't": true, "love": true, "hate": true, "fear": true,
}

func (e *Engine) emphasis(words []string, duration float64) []model.EmphasisPoint {
	points := []model.EmphasisPoint{}
	for i, w := range words {
		word := strings.TrimFunc(w, unicode.IsPunct)
		if word == "" {
			continue
		}
		pos := e.wordPosition(i, duration)

		first, _ := utf8.DecodeRuneInString(word)
		if utf8.RuneCountInString(word) >= e.tuning.MinEmphasisLength && unicode.IsUpper(first) {
			points = append(points, model.EmphasisPoint{
				Position:  pos,
				Word:      word,
				Intensity: e.tuning.CapitalEmphasis,
				Technique: model.EmphasisVolume,
			})
		}
		if e.keywords[strings.ToLower(normalizeQuotes(word))] {
			points = append(points, model.EmphasisPoint{
				Position:  pos,
				Word:      word,
				Intensity: e.tuning.KeywordEmphasis,
				Technique: model.EmphasisCombination,
			})
		}
	}
	return points
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
